// file: internals/helpers/pagination_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	t.Run("middle page", func(t *testing.T) {
		p := BuildPaginationFromPage(95, 2, 20)
		assert.Equal(t, 2, p.Page)
		assert.Equal(t, 20, p.PerPage)
		assert.Equal(t, int64(95), p.Total)
		assert.Equal(t, 5, p.TotalPages)
		assert.True(t, p.HasNext)
		assert.True(t, p.HasPrev)
	})

	t.Run("single page", func(t *testing.T) {
		p := BuildPaginationFromPage(5, 1, 20)
		assert.Equal(t, 1, p.TotalPages)
		assert.False(t, p.HasNext)
		assert.False(t, p.HasPrev)
	})

	t.Run("empty result still reports one page", func(t *testing.T) {
		p := BuildPaginationFromPage(0, 1, 20)
		assert.Equal(t, 1, p.TotalPages)
	})

	t.Run("defends against zero per_page", func(t *testing.T) {
		p := BuildPaginationFromPage(40, 0, 0)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 20, p.PerPage)
	})
}
