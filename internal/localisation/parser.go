package localisation

import "strings"

// Parse parses one localisation file: one semicolon-delimited record per
// line, first field the key, second field the display text. Later fields
// (other languages, the trailing engine column) are ignored. Blank lines
// and lines starting with '#' are skipped. A duplicate key within one
// file keeps the first record, matching the aggregator's precedence rule.
func Parse(text string) (Table, error) {
	tbl := Table{}
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, rest, ok := strings.Cut(line, ";")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, &ParseError{Line: i + 1, Found: line}
		}
		value, _, _ := strings.Cut(rest, ";")
		if _, dup := tbl[key]; !dup {
			tbl[key] = value
		}
	}
	return tbl, nil
}
