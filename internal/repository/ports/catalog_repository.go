package ports

import (
	"context"

	"github.com/swblog/starwars-api/internal/domain"
)

// Catalog repositories report a missing record as sql.ErrNoRows.

type CharacterRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Character, error)
	FindByName(ctx context.Context, name string) (*domain.Character, error)
	List(ctx context.Context) ([]domain.Character, error)
	Create(ctx context.Context, fields domain.CharacterFields) (*domain.Character, error)
	Update(ctx context.Context, id int64, fields domain.CharacterFields) (*domain.Character, error)
	Delete(ctx context.Context, id int64) error
}

type HomeworldRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Homeworld, error)
	FindByName(ctx context.Context, name string) (*domain.Homeworld, error)
	List(ctx context.Context) ([]domain.Homeworld, error)
	Create(ctx context.Context, fields domain.HomeworldFields) (*domain.Homeworld, error)
	Update(ctx context.Context, id int64, fields domain.HomeworldFields) (*domain.Homeworld, error)
	Delete(ctx context.Context, id int64) error
}

type StarshipRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Starship, error)
	FindByName(ctx context.Context, name string) (*domain.Starship, error)
	List(ctx context.Context) ([]domain.Starship, error)
	Create(ctx context.Context, fields domain.StarshipFields) (*domain.Starship, error)
	Update(ctx context.Context, id int64, fields domain.StarshipFields) (*domain.Starship, error)
	Delete(ctx context.Context, id int64) error
}
