package domain

import (
	"fmt"
	"strings"
)

// FavoriteKind selects one of the three independent favorite relations.
type FavoriteKind string

const (
	FavoriteKindCharacter FavoriteKind = "character"
	FavoriteKindHomeworld FavoriteKind = "homeworld"
	FavoriteKindStarship  FavoriteKind = "starship"
)

// FavoriteKinds lists the relations in the order they are reported.
var FavoriteKinds = []FavoriteKind{
	FavoriteKindCharacter,
	FavoriteKindHomeworld,
	FavoriteKindStarship,
}

func ParseFavoriteKind(raw string) (FavoriteKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "character", "characters":
		return FavoriteKindCharacter, nil
	case "homeworld", "homeworlds":
		return FavoriteKindHomeworld, nil
	case "starship", "starships":
		return FavoriteKindStarship, nil
	default:
		return "", fmt.Errorf("unknown favorite kind %q", raw)
	}
}

// TargetColumn is the name of the foreign key column pointing at the
// favorited entity. Starships keep the plural column name of the schema.
func (k FavoriteKind) TargetColumn() string {
	switch k {
	case FavoriteKindCharacter:
		return "character_id"
	case FavoriteKindHomeworld:
		return "homeworld_id"
	case FavoriteKindStarship:
		return "starships_id"
	default:
		return ""
	}
}

func (k FavoriteKind) Valid() bool {
	return k.TargetColumn() != ""
}

type Favorite struct {
	ID       int64        `db:"id"`
	Kind     FavoriteKind `db:"-"`
	UserID   int64        `db:"user_id"`
	TargetID int64        `db:"target_id"`
}

// UserFavorites holds a user's favorites partitioned by kind.
type UserFavorites struct {
	UserID     int64
	Characters []Favorite
	Homeworlds []Favorite
	Starships  []Favorite
}

func (f *UserFavorites) Set(kind FavoriteKind, items []Favorite) {
	switch kind {
	case FavoriteKindCharacter:
		f.Characters = items
	case FavoriteKindHomeworld:
		f.Homeworlds = items
	case FavoriteKindStarship:
		f.Starships = items
	}
}
