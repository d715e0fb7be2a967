package datatable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNormalizeRows(t *testing.T) {
	columns, err := NormalizeColumns(
		ColumnName("Name"),
		ColumnDef{Name: "Age", Options: ColumnOptionsPatch{Display: Bool(false)}},
		ColumnName("City"),
	)
	require.NoError(t, err)

	tests := []struct {
		name   string
		inputs []RowInput
		want   []Row
	}{
		{
			name:   "no rows",
			inputs: nil,
			want:   []Row{},
		},
		{
			name:   "positional skips hidden column",
			inputs: []RowInput{Positional{"Alice", "Vienna"}},
			want:   []Row{{"Name": "Alice", "City": "Vienna"}},
		},
		{
			name:   "positional drops extra values",
			inputs: []RowInput{Positional{"Alice", "Vienna", "Austria"}},
			want:   []Row{{"Name": "Alice", "City": "Vienna"}},
		},
		{
			name:   "positional leaves missing values unset",
			inputs: []RowInput{Positional{"Alice"}},
			want:   []Row{{"Name": "Alice"}},
		},
		{
			name:   "keyed is copied as is",
			inputs: []RowInput{Keyed{"Name": "Bob", "Age": 25, "Other": true}},
			want:   []Row{{"Name": "Bob", "Age": 25, "Other": true}},
		},
		{
			name:   "nil inputs",
			inputs: []RowInput{nil, Keyed(nil), Positional(nil)},
			want:   []Row{{}, {}, {}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRows(columns, tt.inputs...)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeRows_CopiesKeyed(t *testing.T) {
	input := Keyed{"Name": "Bob"}
	rows := NormalizeRows(nil, input)
	rows[0]["Name"] = "Changed"
	require.Equal(t, "Bob", input["Name"])
}

func TestRowInputs(t *testing.T) {
	type person struct {
		Name     string
		Age      int    `col:"age"`
		Internal string `col:"-"`
	}
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	tests := []struct {
		name string
		data any
		want RowInput
	}{
		{name: "nil", data: nil, want: Keyed{}},
		{name: "Keyed", data: Keyed{"a": 1}, want: Keyed{"a": 1}},
		{name: "Positional", data: Positional{1}, want: Positional{1}},
		{name: "Row", data: Row{"a": 1}, want: Keyed{"a": 1}},
		{name: "map", data: map[string]any{"a": 1}, want: Keyed{"a": 1}},
		{name: "typed map", data: map[string]int{"a": 1}, want: Keyed{"a": 1}},
		{name: "int keyed map", data: map[int]string{1: "a"}, want: Positional{map[int]string{1: "a"}}},
		{name: "any slice", data: []any{"x", 2}, want: Positional{"x", 2}},
		{name: "string slice", data: []string{"x", "y"}, want: Positional{"x", "y"}},
		{name: "array", data: [2]int{1, 2}, want: Positional{1, 2}},
		{name: "bytes", data: []byte("abc"), want: Positional{[]byte("abc")}},
		{name: "struct", data: person{Name: "Alice", Age: 30, Internal: "x"}, want: Keyed{"Name": "Alice", "age": 30}},
		{name: "struct pointer", data: &person{Name: "Bob"}, want: Keyed{"Name": "Bob", "age": 0}},
		{name: "nil struct pointer", data: (*person)(nil), want: Keyed{}},
		{name: "time", data: now, want: Positional{now}},
		{name: "string", data: "single", want: Positional{"single"}},
		{name: "int", data: 42, want: Positional{42}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RowInputs(tt.data)
			require.Len(t, got, 1)
			require.Equal(t, tt.want, got[0])
		})
	}
}
