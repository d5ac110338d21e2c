package service

import (
	"context"
	"fmt"

	"github.com/swblog/starwars-api/internal/domain"
	"github.com/swblog/starwars-api/internal/repository/ports"
)

// CatalogService serves the read-only catalog and the user directory.
type CatalogService struct {
	repos ports.Repositories
}

func NewCatalogService(repos ports.Repositories) *CatalogService {
	return &CatalogService{repos: repos}
}

func (s *CatalogService) ListCharacters(ctx context.Context) ([]domain.Character, error) {
	return s.repos.Characters().List(ctx)
}

func (s *CatalogService) GetCharacter(ctx context.Context, id int64) (*domain.Character, error) {
	character, err := s.repos.Characters().FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrCharacterNotFound
		}
		return nil, fmt.Errorf("find character: %w", err)
	}
	return character, nil
}

func (s *CatalogService) ListHomeworlds(ctx context.Context) ([]domain.Homeworld, error) {
	return s.repos.Homeworlds().List(ctx)
}

func (s *CatalogService) GetHomeworld(ctx context.Context, id int64) (*domain.Homeworld, error) {
	homeworld, err := s.repos.Homeworlds().FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrHomeworldNotFound
		}
		return nil, fmt.Errorf("find homeworld: %w", err)
	}
	return homeworld, nil
}

func (s *CatalogService) ListStarships(ctx context.Context) ([]domain.Starship, error) {
	return s.repos.Starships().List(ctx)
}

func (s *CatalogService) GetStarship(ctx context.Context, id int64) (*domain.Starship, error) {
	starship, err := s.repos.Starships().FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrStarshipNotFound
		}
		return nil, fmt.Errorf("find starship: %w", err)
	}
	return starship, nil
}

func (s *CatalogService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repos.Users().List(ctx)
}

func (s *CatalogService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repos.Users().FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
