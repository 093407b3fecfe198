package dto

import "testing"

// TestTotalPages 测试总页数向上取整
func TestTotalPages(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		perPage int
		want    int
	}{
		{name: "empty", total: 0, perPage: 10, want: 0},
		{name: "exact fit", total: 20, perPage: 10, want: 2},
		{name: "partial last page", total: 21, perPage: 10, want: 3},
		{name: "single row", total: 1, perPage: 10, want: 1},
		{name: "invalid per_page", total: 5, perPage: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalPages(tt.total, tt.perPage); got != tt.want {
				t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.perPage, got, tt.want)
			}
		})
	}
}
