package service

import (
	"context"
	"fmt"

	"github.com/swblog/starwars-api/internal/domain"
	"github.com/swblog/starwars-api/internal/metrics"
	"github.com/swblog/starwars-api/internal/repository/ports"
)

// FavoriteService manages the three favorite relations. It only reads the
// catalog; the favorite tables are the only thing it writes.
type FavoriteService struct {
	store ports.Store
}

func NewFavoriteService(store ports.Store) *FavoriteService {
	return &FavoriteService{store: store}
}

// Add links userID to targetID in the relation of the given kind. The user
// and target lookups and the insert share one transaction. Duplicate
// favorites are accepted.
func (s *FavoriteService) Add(ctx context.Context, kind domain.FavoriteKind, userID, targetID int64) (*domain.Favorite, error) {
	if !kind.Valid() {
		return nil, ErrUnknownFavoriteKind
	}

	var favorite *domain.Favorite
	err := s.store.WithinTx(ctx, func(repos ports.Repositories) error {
		if _, err := repos.Users().FindByID(ctx, userID); err != nil {
			if isNotFound(err) {
				metrics.FavoriteRejections.WithLabelValues(string(kind), "user").Inc()
				return ErrUserNotFound
			}
			return fmt.Errorf("find user: %w", err)
		}

		if err := ensureTargetExists(ctx, repos, kind, targetID); err != nil {
			if isNotFound(err) {
				metrics.FavoriteRejections.WithLabelValues(string(kind), "target").Inc()
				return targetNotFound(kind)
			}
			return fmt.Errorf("find %s: %w", kind, err)
		}

		created, err := repos.Favorites().Add(ctx, kind, userID, targetID)
		if err != nil {
			// The target vanished between the lookup and the insert.
			if isForeignKeyViolation(err) {
				return targetNotFound(kind)
			}
			return fmt.Errorf("add %s favorite: %w", kind, err)
		}
		favorite = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.FavoritesAdded.WithLabelValues(string(kind)).Inc()
	return favorite, nil
}

// Remove deletes the favorite record with the given id from the relation of
// the given kind.
func (s *FavoriteService) Remove(ctx context.Context, kind domain.FavoriteKind, favoriteID int64) (*domain.Favorite, error) {
	if !kind.Valid() {
		return nil, ErrUnknownFavoriteKind
	}

	var removed *domain.Favorite
	err := s.store.WithinTx(ctx, func(repos ports.Repositories) error {
		favorite, err := repos.Favorites().FindByID(ctx, kind, favoriteID)
		if err != nil {
			if isNotFound(err) {
				return favoriteNotFound(kind)
			}
			return fmt.Errorf("find %s favorite: %w", kind, err)
		}
		if err := repos.Favorites().Remove(ctx, kind, favoriteID); err != nil {
			if isNotFound(err) {
				return favoriteNotFound(kind)
			}
			return fmt.Errorf("remove %s favorite: %w", kind, err)
		}
		removed = favorite
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.FavoritesRemoved.WithLabelValues(string(kind)).Inc()
	return removed, nil
}

// ListForUser returns every favorite of userID partitioned by kind. Unknown
// users get three empty partitions; the user is not looked up.
func (s *FavoriteService) ListForUser(ctx context.Context, userID int64) (*domain.UserFavorites, error) {
	result := &domain.UserFavorites{UserID: userID}
	for _, kind := range domain.FavoriteKinds {
		items, err := s.store.Favorites().ListByUser(ctx, kind, userID)
		if err != nil {
			return nil, fmt.Errorf("list %s favorites: %w", kind, err)
		}
		result.Set(kind, items)
	}
	return result, nil
}

// List returns every favorite record of one kind.
func (s *FavoriteService) List(ctx context.Context, kind domain.FavoriteKind) ([]domain.Favorite, error) {
	if !kind.Valid() {
		return nil, ErrUnknownFavoriteKind
	}
	return s.store.Favorites().List(ctx, kind)
}

func ensureTargetExists(ctx context.Context, repos ports.Repositories, kind domain.FavoriteKind, id int64) error {
	var err error
	switch kind {
	case domain.FavoriteKindCharacter:
		_, err = repos.Characters().FindByID(ctx, id)
	case domain.FavoriteKindHomeworld:
		_, err = repos.Homeworlds().FindByID(ctx, id)
	case domain.FavoriteKindStarship:
		_, err = repos.Starships().FindByID(ctx, id)
	default:
		err = ErrUnknownFavoriteKind
	}
	return err
}
