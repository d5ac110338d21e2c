package ports

import (
	"context"

	"github.com/swblog/starwars-api/internal/domain"
)

type FavoriteRepository interface {
	Add(ctx context.Context, kind domain.FavoriteKind, userID, targetID int64) (*domain.Favorite, error)
	FindByID(ctx context.Context, kind domain.FavoriteKind, id int64) (*domain.Favorite, error)
	Remove(ctx context.Context, kind domain.FavoriteKind, id int64) error
	ListByUser(ctx context.Context, kind domain.FavoriteKind, userID int64) ([]domain.Favorite, error)
	List(ctx context.Context, kind domain.FavoriteKind) ([]domain.Favorite, error)
}
