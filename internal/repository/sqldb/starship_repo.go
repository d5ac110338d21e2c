package sqldb

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/swblog/starwars-api/internal/domain"
	"github.com/swblog/starwars-api/internal/repository/ports"
)

const starshipColumns = `id, name, model, manufacturer, starship_class, cost_in_credits, length,
	crew, passengers, max_atmosphering_speed, hyperdrive_rating, cargo_capacity, url`

type StarshipRepository struct {
	db sqlx.ExtContext
}

func NewStarshipRepo(db sqlx.ExtContext) *StarshipRepository {
	return &StarshipRepository{db: db}
}

func (r *StarshipRepository) FindByID(ctx context.Context, id int64) (*domain.Starship, error) {
	const query = `SELECT ` + starshipColumns + ` FROM starships WHERE id = ?`

	var starship domain.Starship
	if err := sqlx.GetContext(ctx, r.db, &starship, r.db.Rebind(query), id); err != nil {
		return nil, err
	}
	return &starship, nil
}

func (r *StarshipRepository) FindByName(ctx context.Context, name string) (*domain.Starship, error) {
	const query = `SELECT ` + starshipColumns + ` FROM starships WHERE name = ? ORDER BY id LIMIT 1`

	var starship domain.Starship
	if err := sqlx.GetContext(ctx, r.db, &starship, r.db.Rebind(query), name); err != nil {
		return nil, err
	}
	return &starship, nil
}

func (r *StarshipRepository) List(ctx context.Context) ([]domain.Starship, error) {
	const query = `SELECT ` + starshipColumns + ` FROM starships ORDER BY id`

	starships := make([]domain.Starship, 0)
	if err := sqlx.SelectContext(ctx, r.db, &starships, query); err != nil {
		return nil, err
	}
	return starships, nil
}

func (r *StarshipRepository) Create(ctx context.Context, fields domain.StarshipFields) (*domain.Starship, error) {
	const query = `
		INSERT INTO starships (
			name, model, manufacturer, starship_class, cost_in_credits, length,
			crew, passengers, max_atmosphering_speed, hyperdrive_rating, cargo_capacity, url
		) VALUES (
			:name, :model, :manufacturer, :starship_class, :cost_in_credits, :length,
			:crew, :passengers, :max_atmosphering_speed, :hyperdrive_rating, :cargo_capacity, :url
		)
		RETURNING ` + starshipColumns

	var starship domain.Starship
	if err := namedGet(ctx, r.db, &starship, query, fields); err != nil {
		return nil, err
	}
	return &starship, nil
}

func (r *StarshipRepository) Update(ctx context.Context, id int64, fields domain.StarshipFields) (*domain.Starship, error) {
	const query = `
		UPDATE starships SET
			name = :name, model = :model, manufacturer = :manufacturer,
			starship_class = :starship_class, cost_in_credits = :cost_in_credits,
			length = :length, crew = :crew, passengers = :passengers,
			max_atmosphering_speed = :max_atmosphering_speed,
			hyperdrive_rating = :hyperdrive_rating, cargo_capacity = :cargo_capacity, url = :url
		WHERE id = :id
		RETURNING ` + starshipColumns

	arg := struct {
		domain.StarshipFields
		ID int64 `db:"id"`
	}{StarshipFields: fields, ID: id}

	var starship domain.Starship
	if err := namedGet(ctx, r.db, &starship, query, arg); err != nil {
		return nil, err
	}
	return &starship, nil
}

func (r *StarshipRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM starships WHERE id = ?`
	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

var _ ports.StarshipRepository = (*StarshipRepository)(nil)
