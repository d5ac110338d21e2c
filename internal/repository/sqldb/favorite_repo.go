package sqldb

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/swblog/starwars-api/internal/domain"
	"github.com/swblog/starwars-api/internal/repository/ports"
)

// favoriteTables maps each kind to its own join table.
var favoriteTables = map[domain.FavoriteKind]string{
	domain.FavoriteKindCharacter: "favs_character",
	domain.FavoriteKindHomeworld: "favs_homeworld",
	domain.FavoriteKindStarship:  "favs_starships",
}

type FavoriteRepository struct {
	db sqlx.ExtContext
}

func NewFavoriteRepo(db sqlx.ExtContext) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func favoriteTable(kind domain.FavoriteKind) (string, string, error) {
	table, ok := favoriteTables[kind]
	if !ok {
		return "", "", fmt.Errorf("sqldb: unknown favorite kind %q", kind)
	}
	return table, kind.TargetColumn(), nil
}

func (r *FavoriteRepository) Add(ctx context.Context, kind domain.FavoriteKind, userID, targetID int64) (*domain.Favorite, error) {
	table, column, err := favoriteTable(kind)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		INSERT INTO %[1]s (user_id, %[2]s)
		VALUES (?, ?)
		RETURNING id, user_id, %[2]s AS target_id
	`, table, column)

	var favorite domain.Favorite
	if err := sqlx.GetContext(ctx, r.db, &favorite, r.db.Rebind(query), userID, targetID); err != nil {
		return nil, err
	}
	favorite.Kind = kind
	return &favorite, nil
}

func (r *FavoriteRepository) FindByID(ctx context.Context, kind domain.FavoriteKind, id int64) (*domain.Favorite, error) {
	table, column, err := favoriteTable(kind)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT id, user_id, %s AS target_id FROM %s WHERE id = ?`, column, table)

	var favorite domain.Favorite
	if err := sqlx.GetContext(ctx, r.db, &favorite, r.db.Rebind(query), id); err != nil {
		return nil, err
	}
	favorite.Kind = kind
	return &favorite, nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, kind domain.FavoriteKind, id int64) error {
	table, _, err := favoriteTable(kind)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, table)

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, kind domain.FavoriteKind, userID int64) ([]domain.Favorite, error) {
	table, column, err := favoriteTable(kind)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT id, user_id, %s AS target_id
		FROM %s
		WHERE user_id = ?
		ORDER BY id
	`, column, table)

	return r.selectFavorites(ctx, kind, r.db.Rebind(query), userID)
}

func (r *FavoriteRepository) List(ctx context.Context, kind domain.FavoriteKind) ([]domain.Favorite, error) {
	table, column, err := favoriteTable(kind)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT id, user_id, %s AS target_id FROM %s ORDER BY id`, column, table)

	return r.selectFavorites(ctx, kind, query)
}

func (r *FavoriteRepository) selectFavorites(ctx context.Context, kind domain.FavoriteKind, query string, args ...any) ([]domain.Favorite, error) {
	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.Favorite, 0)
	for rows.Next() {
		var item domain.Favorite
		if err := rows.StructScan(&item); err != nil {
			return nil, err
		}
		item.Kind = kind
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

var _ ports.FavoriteRepository = (*FavoriteRepository)(nil)
