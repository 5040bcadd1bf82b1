package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/dataset --output domain/dataset --outpkg datasetmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/rawdata --output domain/rawdata --outpkg rawdatamock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Source --dir ../domain/rawdata --output domain/rawdata --outpkg rawdatamock --filename source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name MatchdayFeed --dir ../usecase --output usecase --outpkg usecasemock --filename matchday_feed_mock.go
