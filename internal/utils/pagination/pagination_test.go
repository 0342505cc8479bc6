package pagination_test

import (
	"testing"

	"github.com/labledger/labledger_app/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	p := pagination.Normalize(0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, pagination.DefaultPageSize, p.PageSize)

	p = pagination.Normalize(3, 50)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 50, p.PageSize)
	assert.Equal(t, 100, p.Offset())

	p = pagination.Normalize(-2, 100000)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, pagination.MaxPageSize, p.PageSize)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, pagination.TotalPages(0, 20))
	assert.Equal(t, 1, pagination.TotalPages(20, 20))
	assert.Equal(t, 2, pagination.TotalPages(21, 20))
	assert.Equal(t, 5, pagination.TotalPages(100, 20))
}
