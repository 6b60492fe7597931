package todo

import (
	"fmt"
	"strings"
)

// SortField names a column the remote API can order by.
type SortField string

const (
	SortByPriority SortField = "priority"
	SortByDueDate  SortField = "duedate"
)

// IsValid returns true if the field is one of the defined constants.
func (f SortField) IsValid() bool {
	return f == SortByPriority || f == SortByDueDate
}

// SortDirection is the ordering of a single sort key. The remote API spells
// descending as "dsc".
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "dsc"
)

// IsValid returns true if the direction is one of the defined constants.
func (d SortDirection) IsValid() bool {
	return d == SortAsc || d == SortDesc
}

// SortKey is one (field, direction) pair of a composite sort.
type SortKey struct {
	Field     SortField
	Direction SortDirection
}

// String renders the key as the "field_direction" wire token.
func (k SortKey) String() string {
	return string(k.Field) + "_" + string(k.Direction)
}

// Sort is an ordered composite sort. Keys keep the order in which the user
// first toggled their field. The zero value is "unsorted".
type Sort struct {
	keys []SortKey
}

// Keys returns a copy of the active sort keys in order.
func (s Sort) Keys() []SortKey {
	out := make([]SortKey, len(s.keys))
	copy(out, s.keys)
	return out
}

// IsZero reports whether no sort is active.
func (s Sort) IsZero() bool {
	return len(s.keys) == 0
}

// Direction returns the direction for field, or "" when the field is not
// part of the sort.
func (s Sort) Direction(field SortField) SortDirection {
	for _, k := range s.keys {
		if k.Field == field {
			return k.Direction
		}
	}
	return ""
}

// Toggle advances field through asc -> dsc -> removed. A field that is not
// yet sorted is appended as ascending; an existing field keeps its position
// when it flips to descending.
func (s Sort) Toggle(field SortField) Sort {
	keys := s.Keys()
	for i, k := range keys {
		if k.Field != field {
			continue
		}
		if k.Direction == SortAsc {
			keys[i].Direction = SortDesc
			return Sort{keys: keys}
		}
		return Sort{keys: append(keys[:i], keys[i+1:]...)}
	}
	return Sort{keys: append(keys, SortKey{Field: field, Direction: SortAsc})}
}

// String renders the canonical composite sort string, e.g.
// "priority_asc-duedate_dsc". The zero Sort renders as "".
func (s Sort) String() string {
	tokens := make([]string, len(s.keys))
	for i, k := range s.keys {
		tokens[i] = k.String()
	}
	return strings.Join(tokens, "-")
}

// ParseSort parses a composite sort string. The empty string yields the zero
// Sort. Unknown fields or directions and repeated fields are rejected.
func ParseSort(raw string) (Sort, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Sort{}, nil
	}

	tokens := strings.Split(raw, "-")
	keys := make([]SortKey, 0, len(tokens))
	seen := make(map[SortField]bool, len(tokens))

	for _, token := range tokens {
		field, dir, ok := strings.Cut(token, "_")
		if !ok {
			return Sort{}, fmt.Errorf("sort token %q: want field_direction", token)
		}
		k := SortKey{Field: SortField(field), Direction: SortDirection(dir)}
		if !k.Field.IsValid() {
			return Sort{}, fmt.Errorf("sort token %q: unknown field %q", token, field)
		}
		if !k.Direction.IsValid() {
			return Sort{}, fmt.Errorf("sort token %q: unknown direction %q", token, dir)
		}
		if seen[k.Field] {
			return Sort{}, fmt.Errorf("sort field %q repeated", field)
		}
		seen[k.Field] = true
		keys = append(keys, k)
	}

	return Sort{keys: keys}, nil
}
