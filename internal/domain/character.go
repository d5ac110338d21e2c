package domain

type Character struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	BirthYear   string `db:"birth_year"`
	EyeColor    string `db:"eye_color"`
	Gender      string `db:"gender"`
	HairColor   string `db:"hair_color"`
	Height      string `db:"height"`
	Films       string `db:"films"`
	Mass        string `db:"mass"`
	SkinColor   string `db:"skin_color"`
	Species     string `db:"species"`
	URL         string `db:"url"`
	Vehicles    string `db:"vehicles"`
	HomeworldID *int64 `db:"homeworld_id"`
	StarshipID  *int64 `db:"starships_id"`
}

// CharacterFields is the writable part of a Character, used by the admin
// editor and the seed loader.
type CharacterFields struct {
	Name        string `db:"name" json:"name" validate:"required,max=250"`
	BirthYear   string `db:"birth_year" json:"birth_year"`
	EyeColor    string `db:"eye_color" json:"eye_color"`
	Gender      string `db:"gender" json:"gender"`
	HairColor   string `db:"hair_color" json:"hair_color"`
	Height      string `db:"height" json:"height"`
	Films       string `db:"films" json:"films"`
	Mass        string `db:"mass" json:"mass"`
	SkinColor   string `db:"skin_color" json:"skin_color"`
	Species     string `db:"species" json:"species"`
	URL         string `db:"url" json:"url"`
	Vehicles    string `db:"vehicles" json:"vehicles"`
	HomeworldID *int64 `db:"homeworld_id" json:"homeworld_id" validate:"omitempty,gt=0"`
	StarshipID  *int64 `db:"starships_id" json:"starships_id" validate:"omitempty,gt=0"`
}
