package schema

import "strings"

// Mapping relates a target schema field to the source column label that
// satisfies it. Fields without a match are absent from the map and load as
// null. A mapping is computed fresh for every source file because header
// sets vary between exports.
type Mapping map[string]string

// Record is one source row reshaped to a fixed target column list. Values
// are trimmed strings; unmapped or empty fields are nil.
type Record map[string]any

// MapColumns matches target schema fields against arbitrary source column
// labels. Declared aliases are consulted first, then normalized equality.
// When several source columns normalize to the same key the first one wins.
func MapColumns(target, source []string) Mapping {
	bySource := make(map[string]string, len(source))
	for _, s := range source {
		key := NormalizeColumn(s)
		if _, ok := bySource[key]; !ok {
			bySource[key] = s
		}
	}
	m := make(Mapping, len(target))
	for _, field := range target {
		if src, ok := matchAlias(field, bySource); ok {
			m[field] = src
			continue
		}
		if src, ok := bySource[NormalizeColumn(field)]; ok {
			m[field] = src
		}
	}
	return m
}

func matchAlias(field string, bySource map[string]string) (string, bool) {
	for _, alias := range Aliases[field] {
		if src, ok := bySource[NormalizeColumn(alias)]; ok {
			return src, true
		}
	}
	return "", false
}

// BuildRecords reshapes raw rows into target-schema records using a mapping
// computed from the source headers. Every record carries every target field;
// unmapped fields and blank cells become nil.
func BuildRecords(target, headers []string, rows [][]string) []Record {
	mapping := MapColumns(target, headers)
	srcIdx := make(map[string]int, len(headers))
	for i, h := range headers {
		if _, ok := srcIdx[h]; !ok {
			srcIdx[h] = i
		}
	}
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec := make(Record, len(target))
		for _, field := range target {
			rec[field] = nil
			src, ok := mapping[field]
			if !ok {
				continue
			}
			idx := srcIdx[src]
			if idx >= len(row) {
				continue
			}
			if v := strings.TrimSpace(row[idx]); v != "" {
				rec[field] = v
			}
		}
		records = append(records, rec)
	}
	return records
}

// StringField returns the named field as a trimmed string, or "" when nil.
func (r Record) StringField(name string) string {
	v, ok := r[name]
	if !ok || v == nil {
		return ""
	}
	s, _ := v.(string)
	return strings.TrimSpace(s)
}
