package sqldb

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/swblog/starwars-api/internal/domain"
	"github.com/swblog/starwars-api/internal/repository/ports"
)

const characterColumns = `id, name, birth_year, eye_color, gender, hair_color, height, films,
	mass, skin_color, species, url, vehicles, homeworld_id, starships_id`

type CharacterRepository struct {
	db sqlx.ExtContext
}

func NewCharacterRepo(db sqlx.ExtContext) *CharacterRepository {
	return &CharacterRepository{db: db}
}

func (r *CharacterRepository) FindByID(ctx context.Context, id int64) (*domain.Character, error) {
	const query = `SELECT ` + characterColumns + ` FROM "character" WHERE id = ?`

	var character domain.Character
	if err := sqlx.GetContext(ctx, r.db, &character, r.db.Rebind(query), id); err != nil {
		return nil, err
	}
	return &character, nil
}

func (r *CharacterRepository) FindByName(ctx context.Context, name string) (*domain.Character, error) {
	const query = `SELECT ` + characterColumns + ` FROM "character" WHERE name = ? ORDER BY id LIMIT 1`

	var character domain.Character
	if err := sqlx.GetContext(ctx, r.db, &character, r.db.Rebind(query), name); err != nil {
		return nil, err
	}
	return &character, nil
}

func (r *CharacterRepository) List(ctx context.Context) ([]domain.Character, error) {
	const query = `SELECT ` + characterColumns + ` FROM "character" ORDER BY id`

	characters := make([]domain.Character, 0)
	if err := sqlx.SelectContext(ctx, r.db, &characters, query); err != nil {
		return nil, err
	}
	return characters, nil
}

func (r *CharacterRepository) Create(ctx context.Context, fields domain.CharacterFields) (*domain.Character, error) {
	const query = `
		INSERT INTO "character" (
			name, birth_year, eye_color, gender, hair_color, height, films,
			mass, skin_color, species, url, vehicles, homeworld_id, starships_id
		) VALUES (
			:name, :birth_year, :eye_color, :gender, :hair_color, :height, :films,
			:mass, :skin_color, :species, :url, :vehicles, :homeworld_id, :starships_id
		)
		RETURNING ` + characterColumns

	return r.namedOne(ctx, query, fields)
}

func (r *CharacterRepository) Update(ctx context.Context, id int64, fields domain.CharacterFields) (*domain.Character, error) {
	const query = `
		UPDATE "character" SET
			name = :name, birth_year = :birth_year, eye_color = :eye_color, gender = :gender,
			hair_color = :hair_color, height = :height, films = :films, mass = :mass,
			skin_color = :skin_color, species = :species, url = :url, vehicles = :vehicles,
			homeworld_id = :homeworld_id, starships_id = :starships_id
		WHERE id = :id
		RETURNING ` + characterColumns

	arg := struct {
		domain.CharacterFields
		ID int64 `db:"id"`
	}{CharacterFields: fields, ID: id}
	return r.namedOne(ctx, query, arg)
}

func (r *CharacterRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM "character" WHERE id = ?`
	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *CharacterRepository) namedOne(ctx context.Context, query string, arg any) (*domain.Character, error) {
	var character domain.Character
	if err := namedGet(ctx, r.db, &character, query, arg); err != nil {
		return nil, err
	}
	return &character, nil
}

var _ ports.CharacterRepository = (*CharacterRepository)(nil)
