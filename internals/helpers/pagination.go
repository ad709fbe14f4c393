package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
	Count      int   `json:"count"` // jumlah item di halaman ini
}

type Paging struct {
	Page    int
	PerPage int
	Offset  int
	Limit   int
}

// ResolvePaging membaca ?page= & ?per_page= (alias ?limit=) dan normalisasi.
func ResolvePaging(c *fiber.Ctx, defaultPerPage, maxPerPage int) Paging {
	page, _ := strconv.Atoi(strings.TrimSpace(c.Query("page", "1")))
	if page < 1 {
		page = 1
	}

	perPageStr := strings.TrimSpace(c.Query("per_page"))
	if perPageStr == "" {
		perPageStr = strings.TrimSpace(c.Query("limit", strconv.Itoa(defaultPerPage)))
	}
	perPage, _ := strconv.Atoi(perPageStr)
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if maxPerPage > 0 && perPage > maxPerPage {
		perPage = maxPerPage
	}

	return Paging{
		Page:    page,
		PerPage: perPage,
		Offset:  (page - 1) * perPage,
		Limit:   perPage,
	}
}

func BuildPagination(p Paging, total int64, count int) Pagination {
	totalPages := 0
	if p.PerPage > 0 {
		totalPages = int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
	}
	return Pagination{
		Page:       p.Page,
		PerPage:    p.PerPage,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
		HasPrev:    p.Page > 1,
		Count:      count,
	}
}
