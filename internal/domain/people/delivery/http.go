package delivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/minhtran/phimhub/internal/domain/people"
	"github.com/minhtran/phimhub/pkg/middleware"
	"github.com/minhtran/phimhub/pkg/response"
)

type PeopleUsecase interface {
	ResolveActor(ctx context.Context, name string) (*people.ActorProfile, error)
	ActorImage(ctx context.Context, name string) (string, error)
}

type ActorHandler struct {
	ctx     context.Context
	usecase PeopleUsecase
}

func NewActorHandler(ctx context.Context, usecase PeopleUsecase) *ActorHandler {
	return &ActorHandler{
		ctx:     ctx,
		usecase: usecase,
	}
}

// GetActor serves an actor page payload resolved from a slugified name.
// GET /api/v1/actors/:name
func (h *ActorHandler) GetActor(c echo.Context) error {
	logger := middleware.GetLogger(c)
	ctx := h.ctx

	name := c.Param("name")
	if name == "" {
		return response.Error(c, http.StatusBadRequest, "missing_actor_name", nil)
	}

	profile, err := h.usecase.ResolveActor(ctx, name)
	if err != nil {
		if errors.Is(err, people.ErrPersonNotFound) {
			return response.Error(c, http.StatusNotFound, "actor_not_found", nil)
		}
		logger.Error().Err(err).Str("name", name).Msg("actor lookup failed")
		return response.Error(c, http.StatusInternalServerError, "internal_server_error", nil)
	}

	return response.Success(c, http.StatusOK, "success", profile)
}

// GetActorImage resolves a display name to a profile image URL. An
// unresolvable name yields a null payload, not an error.
// GET /api/v1/actors/image?name=
func (h *ActorHandler) GetActorImage(c echo.Context) error {
	ctx := h.ctx

	name := c.QueryParam("name")
	if name == "" {
		return response.Success(c, http.StatusOK, "success", nil)
	}

	image, err := h.usecase.ActorImage(ctx, name)
	if err != nil {
		return response.Success(c, http.StatusOK, "success", nil)
	}

	return response.Success(c, http.StatusOK, "success", people.ActorImage{
		Name:  name,
		Image: image,
	})
}
