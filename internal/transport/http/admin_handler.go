package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/swblog/starwars-api/internal/domain"
	"github.com/swblog/starwars-api/internal/service"
	"github.com/swblog/starwars-api/internal/util"
)

type AdminHandler struct {
	admin     *service.AdminService
	catalog   *service.CatalogService
	favorites *service.FavoriteService
}

type adminCreateUserRequest struct {
	Email    string  `json:"email" validate:"required,email,max=120"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type adminUpdateUserRequest struct {
	Email    string  `json:"email,omitempty" validate:"omitempty,email,max=120"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type adminFavoriteRequest struct {
	UserID   int64 `json:"user_id" validate:"required,gt=0"`
	TargetID int64 `json:"target_id" validate:"required,gt=0"`
}

// RegisterAdmin mounts the record editor under /admin. It has no
// authentication of its own and is expected to stay behind ENABLE_ADMIN.
func RegisterAdmin(e *echo.Echo, admin *service.AdminService, catalog *service.CatalogService, favorites *service.FavoriteService) {
	handler := &AdminHandler{admin: admin, catalog: catalog, favorites: favorites}

	g := e.Group("/admin")

	g.GET("/users", handler.listUsers)
	g.POST("/users", handler.createUser)
	g.GET("/users/:id", handler.getUser)
	g.PUT("/users/:id", handler.updateUser)
	g.DELETE("/users/:id", handler.deleteUser)

	g.GET("/characters", handler.listCharacters)
	g.POST("/characters", handler.createCharacter)
	g.GET("/characters/:id", handler.getCharacter)
	g.PUT("/characters/:id", handler.updateCharacter)
	g.DELETE("/characters/:id", handler.deleteCharacter)

	g.GET("/homeworlds", handler.listHomeworlds)
	g.POST("/homeworlds", handler.createHomeworld)
	g.GET("/homeworlds/:id", handler.getHomeworld)
	g.PUT("/homeworlds/:id", handler.updateHomeworld)
	g.DELETE("/homeworlds/:id", handler.deleteHomeworld)

	g.GET("/starships", handler.listStarships)
	g.POST("/starships", handler.createStarship)
	g.GET("/starships/:id", handler.getStarship)
	g.PUT("/starships/:id", handler.updateStarship)
	g.DELETE("/starships/:id", handler.deleteStarship)

	g.GET("/favorites/:kind", handler.listFavorites)
	g.POST("/favorites/:kind", handler.createFavorite)
	g.DELETE("/favorites/:kind/:id", handler.deleteFavorite)
}

// bindAndValidate writes the 400 response itself when it returns false.
func bindAndValidate(c echo.Context, dst any) (bool, error) {
	if err := c.Bind(dst); err != nil {
		return false, c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if err := c.Validate(dst); err != nil {
		return false, respondError(c, err, "invalid request body")
	}
	return true, nil
}

func badID(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
}

func (h *AdminHandler) listUsers(c echo.Context) error {
	items, err := h.catalog.ListUsers(c.Request().Context())
	if err != nil {
		return respondError(c, err, "unable to load users")
	}
	return c.JSON(http.StatusOK, mapSlice(items, toUserResponse))
}

func (h *AdminHandler) getUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badID(c, err)
	}
	user, err := h.catalog.GetUser(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "unable to load user")
	}
	return c.JSON(http.StatusOK, toUserResponse(*user))
}

func (h *AdminHandler) createUser(c echo.Context) error {
	var req adminCreateUserRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	user, err := h.admin.CreateUser(c.Request().Context(), service.AdminUserInput{
		Email:    req.Email,
		Password: req.Password,
		IsActive: req.IsActive,
	})
	if err != nil {
		return respondError(c, err, "could not create user")
	}
	return c.JSON(http.StatusCreated, toUserResponse(*user))
}

func (h *AdminHandler) updateUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badID(c, err)
	}
	var req adminUpdateUserRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	user, err := h.admin.UpdateUser(c.Request().Context(), id, service.AdminUserInput{
		Email:    req.Email,
		Password: req.Password,
		IsActive: req.IsActive,
	})
	if err != nil {
		return respondError(c, err, "could not update user")
	}
	return c.JSON(http.StatusOK, toUserResponse(*user))
}

func (h *AdminHandler) deleteUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badID(c, err)
	}
	if err := h.admin.DeleteUser(c.Request().Context(), id); err != nil {
		return respondError(c, err, "could not delete user")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) listCharacters(c echo.Context) error {
	items, err := h.catalog.ListCharacters(c.Request().Context())
	if err != nil {
		return respondError(c, err, "unable to load characters")
	}
	return c.JSON(http.StatusOK, mapSlice(items, toCharacterResponse))
}

func (h *AdminHandler) getCharacter(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badID(c, err)
	}
	character, err := h.catalog.GetCharacter(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "unable to load character")
	}
	return c.JSON(http.StatusOK, toCharacterResponse(*character))
}

func (h *AdminHandler) createCharacter(c echo.Context) error {
	var req domain.CharacterFields
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	character, err := h.admin.CreateCharacter(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err, "could not create character")
	}
	return c.JSON(http.StatusCreated, toCharacterResponse(*character))
}

func (h *AdminHandler) updateCharacter(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badID(c, err)
	}
	var req domain.CharacterFields
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	character, err := h.admin.UpdateCharacter(c.Request().Context(), id, req)
	if err != nil {
		return respondError(c, err, "could not update character")
	}
	return c.JSON(http.StatusOK, toCharacterResponse(*character))
}

func (h *AdminHandler) deleteCharacter(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badID(c, err)
	}
	if err := h.admin.DeleteCharacter(c.Request().Context(), id); err != nil {
		return respondError(c, err, "could not delete character")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) listHomeworlds(c echo.Context) error {
	items, err := h.catalog.ListHomeworlds(c.Request().Context())
	if err != nil {
		return respondError(c, err, "unable to load homeworlds")
	}
	return c.JSON(http.StatusOK, mapSlice(items, toHomeworldResponse))
}

func (h *AdminHandler) getHomeworld(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badID(c, err)
	}
	homeworld, err := h.catalog.GetHomeworld(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "unable to load homeworld")
	}
	return c.JSON(http.StatusOK, toHomeworldResponse(*homeworld))
}

func (h *AdminHandler) createHomeworld(c echo.Context) error {
	var req domain.HomeworldFields
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	homeworld, err := h.admin.CreateHomeworld(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err, "could not create homeworld")
	}
	return c.JSON(http.StatusCreated, toHomeworldResponse(*homeworld))
}

func (h *AdminHandler) updateHomeworld(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badID(c, err)
	}
	var req domain.HomeworldFields
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	homeworld, err := h.admin.UpdateHomeworld(c.Request().Context(), id, req)
	if err != nil {
		return respondError(c, err, "could not update homeworld")
	}
	return c.JSON(http.StatusOK, toHomeworldResponse(*homeworld))
}

func (h *AdminHandler) deleteHomeworld(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badID(c, err)
	}
	if err := h.admin.DeleteHomeworld(c.Request().Context(), id); err != nil {
		return respondError(c, err, "could not delete homeworld")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) listStarships(c echo.Context) error {
	items, err := h.catalog.ListStarships(c.Request().Context())
	if err != nil {
		return respondError(c, err, "unable to load starships")
	}
	return c.JSON(http.StatusOK, mapSlice(items, toStarshipResponse))
}

func (h *AdminHandler) getStarship(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badID(c, err)
	}
	starship, err := h.catalog.GetStarship(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "unable to load starship")
	}
	return c.JSON(http.StatusOK, toStarshipResponse(*starship))
}

func (h *AdminHandler) createStarship(c echo.Context) error {
	var req domain.StarshipFields
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	starship, err := h.admin.CreateStarship(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err, "could not create starship")
	}
	return c.JSON(http.StatusCreated, toStarshipResponse(*starship))
}

func (h *AdminHandler) updateStarship(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badID(c, err)
	}
	var req domain.StarshipFields
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	starship, err := h.admin.UpdateStarship(c.Request().Context(), id, req)
	if err != nil {
		return respondError(c, err, "could not update starship")
	}
	return c.JSON(http.StatusOK, toStarshipResponse(*starship))
}

func (h *AdminHandler) deleteStarship(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badID(c, err)
	}
	if err := h.admin.DeleteStarship(c.Request().Context(), id); err != nil {
		return respondError(c, err, "could not delete starship")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) listFavorites(c echo.Context) error {
	kind, err := domain.ParseFavoriteKind(c.Param("kind"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	items, err := h.favorites.List(c.Request().Context(), kind)
	if err != nil {
		return respondError(c, err, "unable to load favorites")
	}
	return c.JSON(http.StatusOK, toFavoriteList(items))
}

func (h *AdminHandler) createFavorite(c echo.Context) error {
	kind, err := domain.ParseFavoriteKind(c.Param("kind"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	var req adminFavoriteRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	favorite, err := h.favorites.Add(c.Request().Context(), kind, req.UserID, req.TargetID)
	if err != nil {
		return respondError(c, err, "could not create favorite")
	}
	return c.JSON(http.StatusCreated, toFavoriteResponse(*favorite))
}

func (h *AdminHandler) deleteFavorite(c echo.Context) error {
	kind, err := domain.ParseFavoriteKind(c.Param("kind"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	id, err := pathID(c, "id")
	if err != nil {
		return badID(c, err)
	}
	if _, err := h.favorites.Remove(c.Request().Context(), kind, id); err != nil {
		return respondError(c, err, "could not delete favorite")
	}
	return c.NoContent(http.StatusNoContent)
}
