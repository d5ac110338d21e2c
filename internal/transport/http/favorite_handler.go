package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/swblog/starwars-api/internal/domain"
	"github.com/swblog/starwars-api/internal/logging"
	"github.com/swblog/starwars-api/internal/service"
	"github.com/swblog/starwars-api/internal/util"
)

type FavoriteHandler struct {
	favorites *service.FavoriteService
}

// Routes keep the original path segments: the starship relation is plural.
func RegisterFavorites(e *echo.Echo, favorites *service.FavoriteService) {
	handler := &FavoriteHandler{favorites: favorites}

	e.GET("/users/:userId/favorites", handler.listFavorites)

	e.POST("/users/:userId/character/:characterId", handler.addFavorite(domain.FavoriteKindCharacter, "characterId"))
	e.POST("/users/:userId/homeworld/:homeworldId", handler.addFavorite(domain.FavoriteKindHomeworld, "homeworldId"))
	e.POST("/users/:userId/starships/:starshipsId", handler.addFavorite(domain.FavoriteKindStarship, "starshipsId"))

	e.DELETE("/favorite/character/:favoriteId", handler.removeFavorite(domain.FavoriteKindCharacter))
	e.DELETE("/favorite/homeworld/:favoriteId", handler.removeFavorite(domain.FavoriteKindHomeworld))
	e.DELETE("/favorite/starships/:favoriteId", handler.removeFavorite(domain.FavoriteKindStarship))
}

func (h *FavoriteHandler) listFavorites(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	favorites, err := h.favorites.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err, "unable to load favorites")
	}
	return c.JSON(http.StatusOK, toFavoritesResponse(favorites))
}

func (h *FavoriteHandler) addFavorite(kind domain.FavoriteKind, targetParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := pathID(c, "userId")
		if err != nil {
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		}
		targetID, err := pathID(c, targetParam)
		if err != nil {
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		}

		ctx := c.Request().Context()
		favorite, err := h.favorites.Add(ctx, kind, userID, targetID)
		if err != nil {
			return respondError(c, err, "could not update favorites")
		}

		logging.Ctx(ctx).Info().
			Str("kind", string(kind)).
			Int64("user_id", userID).
			Int64("target_id", targetID).
			Int64("favorite_id", favorite.ID).
			Msg("favorite added")

		return c.JSON(http.StatusOK, util.Envelope{
			"message":  fmt.Sprintf("Favorite %s added", kind),
			"favorite": toFavoriteResponse(*favorite),
		})
	}
}

func (h *FavoriteHandler) removeFavorite(kind domain.FavoriteKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		favoriteID, err := pathID(c, "favoriteId")
		if err != nil {
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		}

		ctx := c.Request().Context()
		favorite, err := h.favorites.Remove(ctx, kind, favoriteID)
		if err != nil {
			return respondError(c, err, "could not update favorites")
		}

		logging.Ctx(ctx).Info().
			Str("kind", string(kind)).
			Int64("favorite_id", favoriteID).
			Msg("favorite removed")

		return c.JSON(http.StatusOK, util.Envelope{
			"message":  fmt.Sprintf("Favorite %s removed", kind),
			"favorite": toFavoriteResponse(*favorite),
		})
	}
}
