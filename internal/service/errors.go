package service

import (
	"errors"

	"github.com/swblog/starwars-api/internal/domain"
	"github.com/swblog/starwars-api/internal/repository/sqldb"
)

var (
	ErrUserNotFound      = &domain.NotFoundError{Entity: "user"}
	ErrCharacterNotFound = &domain.NotFoundError{Entity: "character"}
	ErrHomeworldNotFound = &domain.NotFoundError{Entity: "homeworld"}
	ErrStarshipNotFound  = &domain.NotFoundError{Entity: "starship"}
	// ErrFavoriteNotFound matches a missing favorite record of any kind.
	ErrFavoriteNotFound = &domain.NotFoundError{Entity: "favorite"}

	ErrUnknownFavoriteKind = errors.New("unknown favorite kind")
)

func favoriteNotFound(kind domain.FavoriteKind) error {
	return &domain.NotFoundError{Entity: "favorite", Kind: kind}
}

func targetNotFound(kind domain.FavoriteKind) error {
	switch kind {
	case domain.FavoriteKindCharacter:
		return ErrCharacterNotFound
	case domain.FavoriteKindHomeworld:
		return ErrHomeworldNotFound
	case domain.FavoriteKindStarship:
		return ErrStarshipNotFound
	default:
		return ErrUnknownFavoriteKind
	}
}

func isNotFound(err error) bool {
	return sqldb.IsNotFound(err)
}

func isUniqueViolation(err error) bool {
	return sqldb.IsUniqueViolation(err)
}

func isForeignKeyViolation(err error) bool {
	return sqldb.IsForeignKeyViolation(err)
}
