package normalize

import (
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchday-scraper/external/bbcsport"
)

var minuteMarkers = strings.NewReplacer("'", "", `"`, "", "’", "", "′", "")

// ExtractEntityID returns the segment after the last ':' of a URN such as
// "urn:bbc:sportsdata:football:player:12345". Strings without a separator
// are returned unchanged.
func ExtractEntityID(urn string) string {
	if idx := strings.LastIndex(urn, ":"); idx >= 0 {
		return urn[idx+1:]
	}
	return urn
}

// SplitMinuteToken turns "45+2'" into (45, &2) and "67'" into (67, nil).
func SplitMinuteToken(token string) (int, *int, error) {
	cleaned := strings.TrimSpace(minuteMarkers.Replace(token))
	if cleaned == "" {
		return 0, nil, crerr.Wrapf(ErrMalformedToken, "empty minute token %q", token)
	}

	basePart, injuryPart, hasInjury := strings.Cut(cleaned, "+")
	base, err := strconv.Atoi(strings.TrimSpace(basePart))
	if err != nil {
		return 0, nil, crerr.Wrapf(ErrMalformedToken, "minute token %q", token)
	}
	if !hasInjury {
		return base, nil, nil
	}

	injury, err := strconv.Atoi(strings.TrimSpace(injuryPart))
	if err != nil {
		return 0, nil, crerr.Wrapf(ErrMalformedToken, "injury time in minute token %q", token)
	}
	return base, &injury, nil
}

// scoreTriple reads half-time, full-time and the optional shootout score.
func scoreTriple(scores *bbcsport.RunningScores) (int, int, *int, error) {
	if scores == nil || scores.Halftime == nil || scores.Fulltime == nil {
		return 0, 0, nil, structuref("runningScores is missing halftime or fulltime")
	}
	return scores.Halftime.Int(), scores.Fulltime.Int(), scores.PenaltyShootoutScore.IntPtr(), nil
}

type assistMinute struct {
	minute int
	injury *int
}

// ParseAssistToken splits "Josh Hawkes (12', 45+2')" into the player name and
// one minute per listed assist.
func ParseAssistToken(token string) (string, []assistMinute, error) {
	idx := strings.LastIndex(token, " (")
	if idx < 0 || !strings.HasSuffix(strings.TrimSpace(token), ")") {
		return "", nil, crerr.Wrapf(ErrMalformedToken, "assist token %q", token)
	}

	name := strings.TrimSpace(token[:idx])
	inner := strings.TrimSuffix(strings.TrimSpace(token[idx+2:]), ")")

	parts := strings.Split(inner, ",")
	minutes := make([]assistMinute, 0, len(parts))
	for _, part := range parts {
		minute, injury, err := SplitMinuteToken(part)
		if err != nil {
			return "", nil, crerr.Wrapf(err, "assist token %q", token)
		}
		minutes = append(minutes, assistMinute{minute: minute, injury: injury})
	}
	return name, minutes, nil
}
