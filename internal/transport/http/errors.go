package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/swblog/starwars-api/internal/domain"
	"github.com/swblog/starwars-api/internal/logging"
	"github.com/swblog/starwars-api/internal/service"
	"github.com/swblog/starwars-api/internal/util"
	"github.com/swblog/starwars-api/internal/validation"
)

// respondError maps service errors onto status codes. Anything unexpected is
// logged and answered with fallback.
func respondError(c echo.Context, err error, fallback string) error {
	var notFound *domain.NotFoundError
	var invalid *validation.Error
	switch {
	case errors.As(err, &notFound):
		return c.JSON(http.StatusNotFound, util.Error(notFound.Error()))
	case errors.As(err, &invalid):
		return c.JSON(http.StatusBadRequest, util.Envelope{"error": "validation failed", "fields": invalid.Fields})
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrUnknownFavoriteKind):
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	case errors.Is(err, service.ErrEmailTaken):
		return c.JSON(http.StatusConflict, util.Error(err.Error()))
	default:
		logging.Ctx(c.Request().Context()).Error().Err(err).
			Str("method", c.Request().Method).
			Str("route", c.Path()).
			Msg(fallback)
		return c.JSON(http.StatusInternalServerError, util.Error(fallback))
	}
}
