package dataset

import "strings"

// DateColumn is the column every persisted dataset is keyed by.
const DateColumn = "game_date"

// Dataset is a named table of string cells with a fixed column order.
type Dataset struct {
	Name   string
	Header []string
	Rows   [][]string
}

func (d Dataset) Len() int {
	return len(d.Rows)
}

func (d Dataset) columnIndex(name string) int {
	for i, column := range d.Header {
		if column == name {
			return i
		}
	}
	return -1
}

// Merge replaces every existing row whose game_date is in dates with the
// incoming rows, then drops exact duplicates while keeping first occurrence.
// Columns only present in incoming are appended to the header; missing cells
// are left empty.
func (d Dataset) Merge(incoming Dataset, dates []string) Dataset {
	header := append([]string(nil), d.Header...)
	if len(header) == 0 {
		header = append(header, incoming.Header...)
	} else {
		for _, column := range incoming.Header {
			if indexOf(header, column) < 0 {
				header = append(header, column)
			}
		}
	}

	replace := make(map[string]struct{}, len(dates))
	for _, date := range dates {
		replace[date] = struct{}{}
	}

	out := Dataset{Name: d.Name, Header: header}
	if out.Name == "" {
		out.Name = incoming.Name
	}

	seen := make(map[string]struct{}, len(d.Rows)+len(incoming.Rows))
	appendRows := func(src Dataset, skipReplaced bool) {
		dateIdx := src.columnIndex(DateColumn)
		mapping := make([]int, len(header))
		for i, column := range header {
			mapping[i] = src.columnIndex(column)
		}
		for _, row := range src.Rows {
			if skipReplaced && dateIdx >= 0 && dateIdx < len(row) {
				if _, ok := replace[row[dateIdx]]; ok {
					continue
				}
			}
			aligned := make([]string, len(header))
			for i, srcIdx := range mapping {
				if srcIdx >= 0 && srcIdx < len(row) {
					aligned[i] = row[srcIdx]
				}
			}
			key := strings.Join(aligned, "\x1f")
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out.Rows = append(out.Rows, aligned)
		}
	}

	appendRows(d, true)
	appendRows(incoming, false)

	return out
}

func indexOf(values []string, target string) int {
	for i, v := range values {
		if v == target {
			return i
		}
	}
	return -1
}
