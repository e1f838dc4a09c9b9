package tabular

import (
	"reflect"
	"strings"
	"testing"
)

func TestMergeAlignsByHeader(t *testing.T) {
	merged := Merge([]Table{
		{Headers: []string{"a", "b"}, Rows: [][]string{{"1", "2"}}},
		{Headers: []string{"b", "c"}, Rows: [][]string{{"3", "4"}}},
	})
	if !reflect.DeepEqual(merged.Headers, []string{"a", "b", "c"}) {
		t.Fatalf("headers = %v", merged.Headers)
	}
	want := [][]string{{"1", "2", ""}, {"", "3", "4"}}
	if !reflect.DeepEqual(merged.Rows, want) {
		t.Fatalf("rows = %v", merged.Rows)
	}
}

func TestDropColumns(t *testing.T) {
	in := Table{
		Headers: []string{"a", SourcePageColumn, TableNumberColumn},
		Rows:    [][]string{{"x", "1", "2"}, {"y"}},
	}
	out := in.DropColumns(SourcePageColumn, TableNumberColumn)
	if !reflect.DeepEqual(out.Headers, []string{"a"}) {
		t.Fatalf("headers = %v", out.Headers)
	}
	if !reflect.DeepEqual(out.Rows, [][]string{{"x"}, {"y"}}) {
		t.Fatalf("rows = %v", out.Rows)
	}
}

func TestColumnIndex(t *testing.T) {
	tb := Table{Headers: []string{"RO No", "Bay"}}
	lower := func(s string) string { return strings.ToLower(s) }
	if i := tb.ColumnIndex("ro no", lower); i != 0 {
		t.Fatalf("index = %d", i)
	}
	if i := tb.ColumnIndex("missing", lower); i != -1 {
		t.Fatalf("index = %d", i)
	}
}

func TestRowText(t *testing.T) {
	if got := RowText([]string{" Grand ", "", "Total "}); got != "Grand Total" {
		t.Fatalf("RowText = %q", got)
	}
	if got := RowText([]string{"", "  "}); got != "" {
		t.Fatalf("RowText = %q", got)
	}
}
