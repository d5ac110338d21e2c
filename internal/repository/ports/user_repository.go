package ports

import (
	"context"

	"github.com/swblog/starwars-api/internal/domain"
)

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, email string, passwordHash, passwordSalt []byte, isActive bool) (*domain.User, error)
	Update(ctx context.Context, id int64, email string, isActive bool) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash, passwordSalt []byte) error
	Delete(ctx context.Context, id int64) error
}
