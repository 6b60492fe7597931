package todo

import "testing"

func TestNewPagination(t *testing.T) {
	t.Parallel()

	if got := NewPagination(0).PageSize; got != DefaultPageSize {
		t.Errorf("NewPagination(0).PageSize = %d, want %d", got, DefaultPageSize)
	}
	if got := NewPagination(25); got.PageSize != 25 || got.CurrentPage != 0 {
		t.Errorf("NewPagination(25) = %+v, want size 25 page 0", got)
	}
}

func TestPagination_TotalPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		p    Pagination
		want int
		last int
	}{
		{name: "empty", p: Pagination{PageSize: 10}, want: 0, last: 0},
		{name: "exact", p: Pagination{PageSize: 10, TotalItems: 30}, want: 3, last: 2},
		{name: "partial", p: Pagination{PageSize: 10, TotalItems: 31}, want: 4, last: 3},
		{name: "single", p: Pagination{PageSize: 10, TotalItems: 1}, want: 1, last: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.p.TotalPages(); got != tt.want {
				t.Errorf("TotalPages() = %d, want %d", got, tt.want)
			}
			if got := tt.p.LastPage(); got != tt.last {
				t.Errorf("LastPage() = %d, want %d", got, tt.last)
			}
		})
	}
}

func TestPagination_Clamp(t *testing.T) {
	t.Parallel()

	p := Pagination{PageSize: 10, TotalItems: 25}

	tests := []struct {
		page int
		want int
	}{
		{page: -3, want: 0},
		{page: 0, want: 0},
		{page: 2, want: 2},
		{page: 7, want: 2},
	}

	for _, tt := range tests {
		if got := p.Clamp(tt.page); got != tt.want {
			t.Errorf("Clamp(%d) = %d, want %d", tt.page, got, tt.want)
		}
	}

	unknown := Pagination{PageSize: 10}
	if got := unknown.Clamp(4); got != 4 {
		t.Errorf("Clamp(4) with unknown total = %d, want 4", got)
	}
}

func TestPagination_InRange(t *testing.T) {
	t.Parallel()

	if !(Pagination{PageSize: 10, TotalItems: 25, CurrentPage: 2}).InRange() {
		t.Error("InRange() = false for last page, want true")
	}
	if (Pagination{PageSize: 10, TotalItems: 15, CurrentPage: 2}).InRange() {
		t.Error("InRange() = true past the last page, want false")
	}
}

func TestPagination_Request(t *testing.T) {
	t.Parallel()

	got := Pagination{PageSize: 5, CurrentPage: 3}.Request()
	if got.Number != 3 || got.Size != 5 {
		t.Errorf("Request() = %+v, want {Number:3 Size:5}", *got)
	}
}
