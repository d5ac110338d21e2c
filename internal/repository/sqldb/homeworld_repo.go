package sqldb

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/swblog/starwars-api/internal/domain"
	"github.com/swblog/starwars-api/internal/repository/ports"
)

const homeworldColumns = `id, name, climate, diameter, gravity, orbital_period, population,
	rotation_period, surface_water, terrain, url`

type HomeworldRepository struct {
	db sqlx.ExtContext
}

func NewHomeworldRepo(db sqlx.ExtContext) *HomeworldRepository {
	return &HomeworldRepository{db: db}
}

func (r *HomeworldRepository) FindByID(ctx context.Context, id int64) (*domain.Homeworld, error) {
	const query = `SELECT ` + homeworldColumns + ` FROM homeworld WHERE id = ?`

	var homeworld domain.Homeworld
	if err := sqlx.GetContext(ctx, r.db, &homeworld, r.db.Rebind(query), id); err != nil {
		return nil, err
	}
	return &homeworld, nil
}

func (r *HomeworldRepository) FindByName(ctx context.Context, name string) (*domain.Homeworld, error) {
	const query = `SELECT ` + homeworldColumns + ` FROM homeworld WHERE name = ? ORDER BY id LIMIT 1`

	var homeworld domain.Homeworld
	if err := sqlx.GetContext(ctx, r.db, &homeworld, r.db.Rebind(query), name); err != nil {
		return nil, err
	}
	return &homeworld, nil
}

func (r *HomeworldRepository) List(ctx context.Context) ([]domain.Homeworld, error) {
	const query = `SELECT ` + homeworldColumns + ` FROM homeworld ORDER BY id`

	homeworlds := make([]domain.Homeworld, 0)
	if err := sqlx.SelectContext(ctx, r.db, &homeworlds, query); err != nil {
		return nil, err
	}
	return homeworlds, nil
}

func (r *HomeworldRepository) Create(ctx context.Context, fields domain.HomeworldFields) (*domain.Homeworld, error) {
	const query = `
		INSERT INTO homeworld (
			name, climate, diameter, gravity, orbital_period, population,
			rotation_period, surface_water, terrain, url
		) VALUES (
			:name, :climate, :diameter, :gravity, :orbital_period, :population,
			:rotation_period, :surface_water, :terrain, :url
		)
		RETURNING ` + homeworldColumns

	var homeworld domain.Homeworld
	if err := namedGet(ctx, r.db, &homeworld, query, fields); err != nil {
		return nil, err
	}
	return &homeworld, nil
}

func (r *HomeworldRepository) Update(ctx context.Context, id int64, fields domain.HomeworldFields) (*domain.Homeworld, error) {
	const query = `
		UPDATE homeworld SET
			name = :name, climate = :climate, diameter = :diameter, gravity = :gravity,
			orbital_period = :orbital_period, population = :population,
			rotation_period = :rotation_period, surface_water = :surface_water,
			terrain = :terrain, url = :url
		WHERE id = :id
		RETURNING ` + homeworldColumns

	arg := struct {
		domain.HomeworldFields
		ID int64 `db:"id"`
	}{HomeworldFields: fields, ID: id}

	var homeworld domain.Homeworld
	if err := namedGet(ctx, r.db, &homeworld, query, arg); err != nil {
		return nil, err
	}
	return &homeworld, nil
}

func (r *HomeworldRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM homeworld WHERE id = ?`
	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

var _ ports.HomeworldRepository = (*HomeworldRepository)(nil)
