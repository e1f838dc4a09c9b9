package clean

import (
	"context"
	"path/filepath"
	"testing"

	"roflow/internal/tabular"
	"roflow/internal/util"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSummaryRow(t *testing.T) {
	cases := []struct {
		row  []string
		want bool
	}{
		{[]string{"Grand Total", "", "120"}, true},
		{[]string{"Sept 2024"}, true},
		{[]string{"JANUARY"}, true},
		{[]string{"2024-03-01", "45", "3", "6.67"}, false},
		{[]string{"", "", ""}, false},
		{[]string{"1001", "Ali"}, false},
	}
	for _, tc := range cases {
		if got := summaryRow(tc.row); got != tc.want {
			t.Errorf("summaryRow(%v) = %v, want %v", tc.row, got, tc.want)
		}
	}
}

func TestReworkCleaner(t *testing.T) {
	headers := []string{"Date", "Total Vehicle Delivered", "Repeat Repair Count"}
	src := &fakeSource{tables: []tabular.Table{
		{
			Headers: headers,
			Rows: [][]string{
				{"2024-03-01", "45", "3"},
				{"March 2024", "", ""},
				{"2024-03-02", "50", "1"},
				{"Total", "95", "4"},
			},
			Page:  1,
			Index: 1,
		},
		{
			Headers: headers,
			Rows: [][]string{
				{"2024-03-03", "40", "2"},
			},
			Page:  2,
			Index: 2,
		},
	}}

	outDir := t.TempDir()
	cleaner := NewReworkCleaner(src, zap.NewNop().Sugar())
	res, err := cleaner.Clean(context.Background(), "/tmp/repeat_repair.pdf", outDir)
	require.NoError(t, err)
	require.False(t, src.opts.IncludeProvenance)

	require.Equal(t, 2, res.Tables)
	require.Equal(t, 5, res.InitialRows)
	require.Equal(t, 3, res.FinalRows)
	require.Len(t, res.Sheets, 3)
	require.Equal(t, AllTablesSheet, res.Sheets[0].Sheet)
	require.Equal(t, 3, res.Sheets[0].FinalRows)
	require.Equal(t, 2, res.Sheets[1].FinalRows)
	require.Equal(t, 1, res.Sheets[2].FinalRows)

	require.Equal(t, filepath.Join(outDir, "repeat_repair_cleaned.xlsx"), res.OutputFile)
	combinedHeaders, combined, err := util.ReadXLSXSheet(res.OutputFile, AllTablesSheet)
	require.NoError(t, err)
	require.Equal(t, headers, combinedHeaders)
	require.Len(t, combined, 3)
	require.Equal(t, "2024-03-01", combined[0][0])
	require.Equal(t, "2024-03-03", combined[2][0])

	_, first, err := util.ReadXLSXSheet(res.OutputFile, "Table_1")
	require.NoError(t, err)
	require.Len(t, first, 2)
}

func TestReworkCleanerKeepsTableWhenFilterEmptiesIt(t *testing.T) {
	src := &fakeSource{tables: []tabular.Table{{
		Headers: []string{"col_1", "col_2"},
		Rows: [][]string{
			{"January", "10"},
			{"Total", "10"},
		},
		Page:  1,
		Index: 1,
	}}}

	cleaner := NewReworkCleaner(src, zap.NewNop().Sugar())
	res, err := cleaner.Clean(context.Background(), "/tmp/repeat.pdf", t.TempDir())
	require.NoError(t, err)
	require.Equal(t, 2, res.FinalRows)
	require.Len(t, res.Sheets, 2)
	require.True(t, res.Sheets[0].Restored)
	require.True(t, res.Sheets[1].Restored)

	_, rows, err := util.ReadXLSXSheet(res.OutputFile, AllTablesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
}
