package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSort_Toggle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		toggles []SortField
		want    string
	}{
		{name: "no toggles", want: ""},
		{name: "first toggle ascends", toggles: []SortField{SortByPriority}, want: "priority_asc"},
		{name: "second toggle descends", toggles: []SortField{SortByPriority, SortByPriority}, want: "priority_dsc"},
		{name: "third toggle removes", toggles: []SortField{SortByPriority, SortByPriority, SortByPriority}, want: ""},
		{
			name:    "keys keep first-toggle order",
			toggles: []SortField{SortByPriority, SortByDueDate, SortByDueDate},
			want:    "priority_asc-duedate_dsc",
		},
		{
			name:    "flipping keeps position",
			toggles: []SortField{SortByDueDate, SortByPriority, SortByDueDate},
			want:    "duedate_dsc-priority_asc",
		},
		{
			name:    "removed field re-enters at the end",
			toggles: []SortField{SortByPriority, SortByDueDate, SortByPriority, SortByPriority, SortByPriority},
			want:    "duedate_asc-priority_asc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var s Sort
			for _, f := range tt.toggles {
				s = s.Toggle(f)
			}
			if got := s.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSort_ToggleDoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	base := Sort{}.Toggle(SortByPriority).Toggle(SortByDueDate)
	_ = base.Toggle(SortByPriority)
	_ = base.Toggle(SortByDueDate).Toggle(SortByDueDate)

	assert.Equal(t, "priority_asc-duedate_asc", base.String())
}

func TestSort_Direction(t *testing.T) {
	t.Parallel()

	s := Sort{}.Toggle(SortByDueDate).Toggle(SortByDueDate)
	assert.Equal(t, SortDesc, s.Direction(SortByDueDate))
	assert.Equal(t, SortDirection(""), s.Direction(SortByPriority))
}

func TestParseSort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    []SortKey
		wantErr bool
	}{
		{raw: "", want: []SortKey{}},
		{raw: "priority_asc", want: []SortKey{{SortByPriority, SortAsc}}},
		{raw: "duedate_dsc-priority_asc", want: []SortKey{{SortByDueDate, SortDesc}, {SortByPriority, SortAsc}}},
		{raw: "priority", wantErr: true},
		{raw: "title_asc", wantErr: true},
		{raw: "priority_desc", wantErr: true},
		{raw: "priority_asc-priority_dsc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			got, err := ParseSort(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Keys())
			assert.Equal(t, tt.raw, got.String())
		})
	}
}

func sortFieldGen() *rapid.Generator[SortField] {
	return rapid.SampledFrom([]SortField{SortByPriority, SortByDueDate})
}

func TestSort_Properties(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		var s Sort
		for _, f := range rapid.SliceOf(sortFieldGen()).Draw(t, "toggles") {
			s = s.Toggle(f)
		}
		field := sortFieldGen().Draw(t, "field")

		// Three toggles of a field not yet present leave the sort unchanged.
		if s.Direction(field) == "" {
			if got := s.Toggle(field).Toggle(field).Toggle(field); got.String() != s.String() {
				t.Fatalf("triple toggle of %q: got %q, want %q", field, got.String(), s.String())
			}
		}

		// The rendered string always parses back to the same keys.
		parsed, err := ParseSort(s.String())
		if err != nil {
			t.Fatalf("ParseSort(%q) error = %v", s.String(), err)
		}
		if parsed.String() != s.String() {
			t.Fatalf("round trip = %q, want %q", parsed.String(), s.String())
		}

		// A field appears at most once.
		seen := map[SortField]bool{}
		for _, k := range s.Keys() {
			if seen[k.Field] {
				t.Fatalf("field %q repeated in %q", k.Field, s.String())
			}
			seen[k.Field] = true
		}
	})
}
