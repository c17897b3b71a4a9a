package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveFor(t *testing.T, target string) Paging {
	t.Helper()
	app := fiber.New()
	var got Paging
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendString("ok")
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePagingDefaults(t *testing.T) {
	p := resolveFor(t, "/x")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 0, p.Offset)
}

func TestResolvePagingExplicit(t *testing.T) {
	p := resolveFor(t, "/x?page=3&per_page=10")
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 10, p.PerPage)
	assert.Equal(t, 20, p.Offset)
}

func TestResolvePagingLimitAlias(t *testing.T) {
	p := resolveFor(t, "/x?limit=15")
	assert.Equal(t, 15, p.PerPage)
}

func TestResolvePagingClampsInvalid(t *testing.T) {
	p := resolveFor(t, "/x?page=-2&per_page=99999")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.PerPage, "per_page dipotong di maksimum")

	p = resolveFor(t, "/x?page=abc&per_page=0")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, p.TotalPages, "tanpa data tetap satu halaman")
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}
