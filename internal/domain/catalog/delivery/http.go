package delivery

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/minhtran/phimhub/internal/domain/catalog"
	"github.com/minhtran/phimhub/pkg/middleware"
	"github.com/minhtran/phimhub/pkg/response"
)

type CatalogUsecase interface {
	ListLatest(ctx context.Context, page int) (*catalog.PageResult, error)
	ListFiltered(ctx context.Context, page int, f catalog.Filter) (*catalog.PageResult, error)
	Search(ctx context.Context, keyword string, page int) (*catalog.PageResult, error)
	GetDetail(ctx context.Context, slug string) (*catalog.DetailResult, error)
	HomeRows(ctx context.Context) *catalog.HomeRows
	Categories(ctx context.Context) []catalog.Tag
	Countries(ctx context.Context) []catalog.Tag
}

type CatalogHandler struct {
	ctx     context.Context
	usecase CatalogUsecase
}

func NewCatalogHandler(ctx context.Context, usecase CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{
		ctx:     ctx,
		usecase: usecase,
	}
}

// ListMovies serves the main listing. A keyword switches to the search path
// and any supplied filters are ignored; otherwise non-empty filters use the
// filtered path and the plain latest listing is the fallback.
// GET /api/v1/movies?page=1&keyword=&category=&country=&year=&type=&quality=&lang=
func (h *CatalogHandler) ListMovies(c echo.Context) error {
	logger := middleware.GetLogger(c)
	ctx := h.ctx

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}

	keyword := strings.TrimSpace(c.QueryParam("keyword"))
	filter := catalog.Filter{
		Category: c.QueryParam("category"),
		Country:  c.QueryParam("country"),
		Year:     c.QueryParam("year"),
		Type:     c.QueryParam("type"),
		Quality:  c.QueryParam("quality"),
		Lang:     c.QueryParam("lang"),
	}

	var (
		result *catalog.PageResult
		err    error
	)
	switch {
	case keyword != "":
		result, err = h.usecase.Search(ctx, keyword, page)
	case !filter.IsZero():
		result, err = h.usecase.ListFiltered(ctx, page, filter)
	default:
		result, err = h.usecase.ListLatest(ctx, page)
	}

	if err != nil {
		// A dead batch renders as "no results", never as an error page.
		logger.Warn().Err(err).Int("page", page).Msg("listing aggregate failed")
		result = &catalog.PageResult{
			Items:      []catalog.MovieSummary{},
			Pagination: catalog.Pagination{CurrentPage: page, TotalPages: 0},
		}
	}

	return response.Success(c, http.StatusOK, "success", result)
}

// GetMovieDetail serves one movie's full record plus its related movies.
// GET /api/v1/movies/:slug
func (h *CatalogHandler) GetMovieDetail(c echo.Context) error {
	logger := middleware.GetLogger(c)
	ctx := h.ctx

	slug := c.Param("slug")
	if slug == "" {
		return response.Error(c, http.StatusBadRequest, "missing_slug", nil)
	}

	result, err := h.usecase.GetDetail(ctx, slug)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return response.Error(c, http.StatusNotFound, "movie_not_found", nil)
		}
		logger.Error().Err(err).Str("slug", slug).Msg("movie detail failed")
		return response.Error(c, http.StatusInternalServerError, "internal_server_error", nil)
	}

	return response.Success(c, http.StatusOK, "success", result)
}

// GetHomeRows serves the landing-page rows.
// GET /api/v1/home
func (h *CatalogHandler) GetHomeRows(c echo.Context) error {
	return response.Success(c, http.StatusOK, "success", h.usecase.HomeRows(h.ctx))
}

// GetCategories serves the category lookup table.
// GET /api/v1/genres
func (h *CatalogHandler) GetCategories(c echo.Context) error {
	return response.Success(c, http.StatusOK, "success", h.usecase.Categories(h.ctx))
}

// GetCountries serves the country lookup table.
// GET /api/v1/countries
func (h *CatalogHandler) GetCountries(c echo.Context) error {
	return response.Success(c, http.StatusOK, "success", h.usecase.Countries(h.ctx))
}
