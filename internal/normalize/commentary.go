package normalize

import (
	"sort"

	"github.com/riskibarqy/matchday-scraper/external/bbcsport"
	"github.com/riskibarqy/matchday-scraper/internal/domain/matchevent"
)

// Commentary flattens every page of the live text stream. Entries keep their
// feed order within the same minute.
func Commentary(pages []bbcsport.CommentaryPage, gameDate string) ([]matchevent.Commentary, error) {
	out := make([]matchevent.Commentary, 0, len(pages)*20)
	for pageIdx, page := range pages {
		for resultIdx, result := range page.Results {
			entry, err := commentaryEntry(result, gameDate)
			if err != nil {
				return nil, structuref("commentary page %d entry %d: %v", pageIdx+1, resultIdx, err)
			}
			out = append(out, entry)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].GameDate != out[j].GameDate {
			return out[i].GameDate < out[j].GameDate
		}
		return out[i].Minute < out[j].Minute
	})
	return out, nil
}

func commentaryEntry(result bbcsport.CommentaryResult, gameDate string) (matchevent.Commentary, error) {
	if result.Dates == nil {
		return matchevent.Commentary{}, structuref("dates is missing")
	}
	minute, injury, err := SplitMinuteToken(result.Dates.Time)
	if err != nil {
		return matchevent.Commentary{}, err
	}

	if result.Content == nil {
		return matchevent.Commentary{}, structuref("content is missing")
	}
	paragraph, ok := firstBlock(result.Content)
	if !ok {
		return matchevent.Commentary{}, structuref("content has no paragraph block")
	}
	text, ok := firstBlock(paragraph)
	if !ok {
		return matchevent.Commentary{}, structuref("content paragraph has no text block")
	}

	entry := matchevent.Commentary{
		GameDate: gameDate,
		Minute:   minute,
		Injury:   injury,
		Text:     text.Model.Text,
	}

	if result.Headline != nil {
		headline, ok := firstBlock(result.Headline)
		if !ok {
			return matchevent.Commentary{}, structuref("headline has no text block")
		}
		value := headline.Model.Text
		entry.Headline = &value
	}
	return entry, nil
}

func firstBlock(block *bbcsport.Block) (*bbcsport.Block, bool) {
	if block == nil || len(block.Model.Blocks) == 0 {
		return nil, false
	}
	return &block.Model.Blocks[0], true
}
