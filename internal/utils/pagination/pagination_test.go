package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name           string
		items          []string
		total          int64
		page           int
		pageSize       int
		wantTotalPages int
	}{
		{"exact fit", []string{"a", "b"}, 4, 1, 2, 2},
		{"partial last page", []string{"a"}, 5, 3, 2, 3},
		{"empty", nil, 0, 1, 10, 0},
		{"zero page size guarded", nil, 3, 1, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := New(tt.items, tt.total, tt.page, tt.pageSize)
			assert.Equal(t, tt.items, page.Items)
			assert.Equal(t, tt.total, page.Total)
			assert.Equal(t, tt.page, page.Page)
			assert.Equal(t, tt.wantTotalPages, page.TotalPages)
		})
	}
}
