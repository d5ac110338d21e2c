package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/swblog/starwars-api/internal/service"
	"github.com/swblog/starwars-api/internal/util"
)

type CatalogHandler struct {
	catalog *service.CatalogService
}

func RegisterCatalog(e *echo.Echo, catalog *service.CatalogService) {
	handler := &CatalogHandler{catalog: catalog}

	e.GET("/character", handler.listCharacters)
	e.GET("/character/:id", handler.getCharacter)
	e.GET("/homeworld", handler.listHomeworlds)
	e.GET("/homeworld/:id", handler.getHomeworld)
	e.GET("/starships", handler.listStarships)
	e.GET("/starships/:id", handler.getStarship)
	e.GET("/users", handler.listUsers)
}

func (h *CatalogHandler) listCharacters(c echo.Context) error {
	items, err := h.catalog.ListCharacters(c.Request().Context())
	if err != nil {
		return respondError(c, err, "unable to load characters")
	}
	return c.JSON(http.StatusOK, mapSlice(items, toCharacterResponse))
}

func (h *CatalogHandler) getCharacter(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	character, err := h.catalog.GetCharacter(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "unable to load character")
	}
	return c.JSON(http.StatusOK, toCharacterResponse(*character))
}

func (h *CatalogHandler) listHomeworlds(c echo.Context) error {
	items, err := h.catalog.ListHomeworlds(c.Request().Context())
	if err != nil {
		return respondError(c, err, "unable to load homeworlds")
	}
	return c.JSON(http.StatusOK, mapSlice(items, toHomeworldResponse))
}

func (h *CatalogHandler) getHomeworld(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	homeworld, err := h.catalog.GetHomeworld(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "unable to load homeworld")
	}
	return c.JSON(http.StatusOK, toHomeworldResponse(*homeworld))
}

func (h *CatalogHandler) listStarships(c echo.Context) error {
	items, err := h.catalog.ListStarships(c.Request().Context())
	if err != nil {
		return respondError(c, err, "unable to load starships")
	}
	return c.JSON(http.StatusOK, mapSlice(items, toStarshipResponse))
}

func (h *CatalogHandler) getStarship(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	starship, err := h.catalog.GetStarship(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "unable to load starship")
	}
	return c.JSON(http.StatusOK, toStarshipResponse(*starship))
}

func (h *CatalogHandler) listUsers(c echo.Context) error {
	items, err := h.catalog.ListUsers(c.Request().Context())
	if err != nil {
		return respondError(c, err, "unable to load users")
	}
	return c.JSON(http.StatusOK, mapSlice(items, toUserResponse))
}
