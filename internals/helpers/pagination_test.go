package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func parseWith(t *testing.T, target string, opt PaginationOptions) PaginationParams {
	t.Helper()

	app := fiber.New()
	var got PaginationParams
	app.Get("/list", func(c *fiber.Ctx) error {
		got = ParsePaginationWith(c, "created_at", "desc", opt)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	return got
}

func TestParsePaginationDefaults(t *testing.T) {
	p := parseWith(t, "/list", DefaultOpts)
	if p.Page != 1 || p.PerPage != 25 {
		t.Fatalf("defaults = page %d per_page %d", p.Page, p.PerPage)
	}
	if p.SortBy != "created_at" || p.SortOrder != "desc" {
		t.Fatalf("sort defaults = %s %s", p.SortBy, p.SortOrder)
	}
}

func TestParsePaginationClampsPerPage(t *testing.T) {
	p := parseWith(t, "/list?per_page=9999", DefaultOpts)
	if p.PerPage != DefaultOpts.MaxPerPage {
		t.Fatalf("per_page = %d, want %d", p.PerPage, DefaultOpts.MaxPerPage)
	}
}

func TestParsePaginationRejectsGarbage(t *testing.T) {
	p := parseWith(t, "/list?page=-3&per_page=abc&sort_order=sideways", DefaultOpts)
	if p.Page != 1 || p.PerPage != 25 || p.SortOrder != "desc" {
		t.Fatalf("got %+v", p)
	}
}

func TestParsePaginationOffset(t *testing.T) {
	p := parseWith(t, "/list?page=3&per_page=10", DefaultOpts)
	if off := p.Offset(); off != 20 {
		t.Fatalf("offset = %d, want 20", off)
	}
}

func TestPaginationMetaTotalPages(t *testing.T) {
	p := PaginationParams{Page: 1, PerPage: 10}

	meta := PaginationMeta(p, 25)
	if meta["total_pages"] != 3 {
		t.Fatalf("total_pages = %v, want 3", meta["total_pages"])
	}

	meta = PaginationMeta(p, 0)
	if meta["total_pages"] != 1 {
		t.Fatalf("empty set total_pages = %v, want 1", meta["total_pages"])
	}
}
