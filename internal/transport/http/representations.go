package http

import (
	"github.com/swblog/starwars-api/internal/domain"
	"github.com/swblog/starwars-api/internal/util"
)

type CharacterResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	BirthYear   string `json:"birth_year"`
	EyeColor    string `json:"eye_color"`
	Gender      string `json:"gender"`
	HairColor   string `json:"hair_color"`
	Height      string `json:"height"`
	Films       string `json:"films"`
	Mass        string `json:"mass"`
	SkinColor   string `json:"skin_color"`
	Species     string `json:"species"`
	URL         string `json:"url"`
	Vehicles    string `json:"vehicles"`
	HomeworldID *int64 `json:"homeworld_id"`
	StarshipID  *int64 `json:"starships_id"`
}

type HomeworldResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Climate        string `json:"climate"`
	Diameter       string `json:"diameter"`
	Gravity        string `json:"gravity"`
	OrbitalPeriod  string `json:"orbital_period"`
	Population     string `json:"population"`
	RotationPeriod string `json:"rotation_period"`
	SurfaceWater   string `json:"surface_water"`
	Terrain        string `json:"terrain"`
	URL            string `json:"url"`
}

type StarshipResponse struct {
	ID                   int64  `json:"id"`
	Name                 string `json:"name"`
	Model                string `json:"model"`
	Manufacturer         string `json:"manufacturer"`
	StarshipClass        string `json:"starship_class"`
	CostInCredits        string `json:"cost_in_credits"`
	Length               string `json:"length"`
	Crew                 string `json:"crew"`
	Passengers           string `json:"passengers"`
	MaxAtmospheringSpeed string `json:"max_atmosphering_speed"`
	HyperdriveRating     string `json:"hyperdrive_rating"`
	CargoCapacity        string `json:"cargo_capacity"`
	URL                  string `json:"url"`
}

// UserResponse never carries credentials.
type UserResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

type FavoritesResponse struct {
	Characters []util.Envelope `json:"characters"`
	Homeworlds []util.Envelope `json:"homeworlds"`
	Starships  []util.Envelope `json:"starships"`
}

func toCharacterResponse(c domain.Character) CharacterResponse {
	return CharacterResponse{
		ID:          c.ID,
		Name:        c.Name,
		BirthYear:   c.BirthYear,
		EyeColor:    c.EyeColor,
		Gender:      c.Gender,
		HairColor:   c.HairColor,
		Height:      c.Height,
		Films:       c.Films,
		Mass:        c.Mass,
		SkinColor:   c.SkinColor,
		Species:     c.Species,
		URL:         c.URL,
		Vehicles:    c.Vehicles,
		HomeworldID: c.HomeworldID,
		StarshipID:  c.StarshipID,
	}
}

func toHomeworldResponse(h domain.Homeworld) HomeworldResponse {
	return HomeworldResponse{
		ID:             h.ID,
		Name:           h.Name,
		Climate:        h.Climate,
		Diameter:       h.Diameter,
		Gravity:        h.Gravity,
		OrbitalPeriod:  h.OrbitalPeriod,
		Population:     h.Population,
		RotationPeriod: h.RotationPeriod,
		SurfaceWater:   h.SurfaceWater,
		Terrain:        h.Terrain,
		URL:            h.URL,
	}
}

func toStarshipResponse(s domain.Starship) StarshipResponse {
	return StarshipResponse{
		ID:                   s.ID,
		Name:                 s.Name,
		Model:                s.Model,
		Manufacturer:         s.Manufacturer,
		StarshipClass:        s.StarshipClass,
		CostInCredits:        s.CostInCredits,
		Length:               s.Length,
		Crew:                 s.Crew,
		Passengers:           s.Passengers,
		MaxAtmospheringSpeed: s.MaxAtmospheringSpeed,
		HyperdriveRating:     s.HyperdriveRating,
		CargoCapacity:        s.CargoCapacity,
		URL:                  s.URL,
	}
}

func toUserResponse(u domain.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, IsActive: u.IsActive}
}

// toFavoriteResponse names the target field after the relation's column,
// e.g. {"id": 3, "user_id": 1, "starships_id": 9}.
func toFavoriteResponse(f domain.Favorite) util.Envelope {
	return util.Envelope{
		"id":                  f.ID,
		"user_id":             f.UserID,
		f.Kind.TargetColumn(): f.TargetID,
	}
}

func toFavoriteList(items []domain.Favorite) []util.Envelope {
	out := make([]util.Envelope, 0, len(items))
	for _, item := range items {
		out = append(out, toFavoriteResponse(item))
	}
	return out
}

func toFavoritesResponse(f *domain.UserFavorites) FavoritesResponse {
	return FavoritesResponse{
		Characters: toFavoriteList(f.Characters),
		Homeworlds: toFavoriteList(f.Homeworlds),
		Starships:  toFavoriteList(f.Starships),
	}
}

func mapSlice[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
