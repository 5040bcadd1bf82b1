package normalize

import (
	"github.com/go-playground/validator/v10"
)

var structValidator = validator.New()

// checkStructure runs the required-key rules declared on the feed document
// types and reports a failure as ErrStructure with where.
func checkStructure(value any, where string) error {
	if err := structValidator.Struct(value); err != nil {
		return structuref("%s: %v", where, err)
	}
	return nil
}
