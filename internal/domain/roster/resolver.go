package roster

import (
	"sort"
	"strings"
)

// Resolver answers "who is this player" for the tracked club. Lookups always
// go shirt number -> canonical name; short names are first turned into a
// shirt number. A miss returns ok=false and callers leave the cell empty.
type Resolver struct {
	nameByShirt  map[int]string
	shirtByShort map[string]int
}

// NewResolver builds the lookup tables once per batch. Squad rows of other
// seasons are ignored when season is set. Feed players are applied in shirt
// order so the lowest shirt wins when a short name was worn twice.
func NewResolver(season string, squad []SquadNumber, feed []FeedPlayer) *Resolver {
	r := &Resolver{
		nameByShirt:  make(map[int]string, len(squad)),
		shirtByShort: make(map[string]int, len(feed)),
	}

	for _, item := range squad {
		if season != "" && item.Season != "" && item.Season != season {
			continue
		}
		name := strings.TrimSpace(item.PlayerName)
		if name == "" {
			continue
		}
		if _, exists := r.nameByShirt[item.SquadNo]; !exists {
			r.nameByShirt[item.SquadNo] = name
		}
	}

	ordered := append([]FeedPlayer(nil), feed...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].ShirtNo < ordered[j].ShirtNo })
	for _, item := range ordered {
		short := strings.TrimSpace(item.ShortName)
		if short == "" {
			continue
		}
		if _, exists := r.shirtByShort[short]; !exists {
			r.shirtByShort[short] = item.ShirtNo
		}
	}

	return r
}

func (r *Resolver) NameByShirt(shirt int) (string, bool) {
	if r == nil {
		return "", false
	}
	name, ok := r.nameByShirt[shirt]
	return name, ok
}

func (r *Resolver) ShirtByShortName(short string) (int, bool) {
	if r == nil {
		return 0, false
	}
	shirt, ok := r.shirtByShort[strings.TrimSpace(short)]
	return shirt, ok
}

func (r *Resolver) NameByShortName(short string) (string, bool) {
	shirt, ok := r.ShirtByShortName(short)
	if !ok {
		return "", false
	}
	return r.NameByShirt(shirt)
}
