package sqldb

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/swblog/starwars-api/internal/repository/ports"
)

type repositories struct {
	users      *UserRepository
	characters *CharacterRepository
	homeworlds *HomeworldRepository
	starships  *StarshipRepository
	favorites  *FavoriteRepository
}

func newRepositories(db sqlx.ExtContext) *repositories {
	return &repositories{
		users:      NewUserRepo(db),
		characters: NewCharacterRepo(db),
		homeworlds: NewHomeworldRepo(db),
		starships:  NewStarshipRepo(db),
		favorites:  NewFavoriteRepo(db),
	}
}

func (r *repositories) Users() ports.UserRepository           { return r.users }
func (r *repositories) Characters() ports.CharacterRepository { return r.characters }
func (r *repositories) Homeworlds() ports.HomeworldRepository { return r.homeworlds }
func (r *repositories) Starships() ports.StarshipRepository   { return r.starships }
func (r *repositories) Favorites() ports.FavoriteRepository   { return r.favorites }

// Store is the SQL-backed catalog and favorites store.
type Store struct {
	*repositories
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{
		repositories: newRepositories(db),
		db:           db,
	}
}

func (s *Store) DB() *sqlx.DB {
	return s.db
}

func (s *Store) WithinTx(ctx context.Context, fn func(ports.Repositories) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(newRepositories(tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

var _ ports.Store = (*Store)(nil)
