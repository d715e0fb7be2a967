package datatable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSortRows(t *testing.T) {
	rows := []Row{
		{"id": 1, "n": 10, "s": "b"},
		{"id": 2, "n": 2.5, "s": "a"},
		{"id": 3, "s": "c"},
		{"id": 4, "n": 2.5, "s": "a"},
	}
	ids := func(rows []Row) (ids []any) {
		for _, row := range rows {
			ids = append(ids, row["id"])
		}
		return ids
	}

	require.Equal(t, []any{3, 2, 4, 1}, ids(SortRows(rows, "n", SortAsc)))
	require.Equal(t, []any{1, 2, 4, 3}, ids(SortRows(rows, "n", SortDesc)))
	require.Equal(t, []any{2, 4, 1, 3}, ids(SortRows(rows, "s", SortAsc)))
	require.Equal(t, []any{1, 2, 3, 4}, ids(SortRows(rows, "s", SortNone)))

	// Input order is not changed
	require.Equal(t, []any{1, 2, 3, 4}, ids(rows))
}

func TestCompareCells(t *testing.T) {
	early := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	late := early.Add(time.Hour)
	tests := []struct {
		name string
		a, b any
		want int
	}{
		{name: "nils", a: nil, b: nil, want: 0},
		{name: "nil first", a: nil, b: 1, want: -1},
		{name: "nil last", a: "x", b: nil, want: 1},
		{name: "mixed numbers", a: int64(9), b: float32(10), want: -1},
		{name: "numbers not strings", a: 9, b: 10, want: -1},
		{name: "times", a: late, b: early, want: 1},
		{name: "bools", a: false, b: true, want: -1},
		{name: "strings", a: "b", b: "a", want: 1},
		{name: "number and string", a: 10, b: "9", want: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CompareCells(tt.a, tt.b))
		})
	}
}
