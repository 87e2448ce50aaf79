package delivery

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/minhtran/phimhub/internal/domain/reels"
	"github.com/minhtran/phimhub/pkg/middleware"
	"github.com/minhtran/phimhub/pkg/response"
)

type ReelUsecase interface {
	ListReels(ctx context.Context) ([]reels.Reel, error)
}

type ReelHandler struct {
	ctx     context.Context
	usecase ReelUsecase
}

func NewReelHandler(ctx context.Context, usecase ReelUsecase) *ReelHandler {
	return &ReelHandler{
		ctx:     ctx,
		usecase: usecase,
	}
}

// ListReels serves the bonus clip list.
// GET /api/v1/reels
func (h *ReelHandler) ListReels(c echo.Context) error {
	logger := middleware.GetLogger(c)

	list, err := h.usecase.ListReels(h.ctx)
	if err != nil {
		logger.Error().Err(err).Msg("reel listing failed")
		return response.Error(c, http.StatusInternalServerError, "internal_server_error", nil)
	}

	return response.Success(c, http.StatusOK, "success", list)
}
