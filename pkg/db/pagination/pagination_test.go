package pagination

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   Pagination
		want Pagination
	}{
		{"zero values", Pagination{}, Pagination{Page: 1, PageSize: DefaultPageSize}},
		{"negative page", Pagination{Page: -3, PageSize: 20}, Pagination{Page: 1, PageSize: 20}},
		{"oversized limit", Pagination{Page: 2, PageSize: 500}, Pagination{Page: 2, PageSize: MaxPageSize}},
		{"passthrough", Pagination{Page: 4, PageSize: 25}, Pagination{Page: 4, PageSize: 25}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Normalize(); got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	p := Pagination{Page: 3, PageSize: 10}
	if got := p.Offset(); got != 20 {
		t.Fatalf("got offset %d, want 20", got)
	}
}
