package ports

import "context"

// Repositories groups the repositories bound to one connection or
// transaction.
type Repositories interface {
	Users() UserRepository
	Characters() CharacterRepository
	Homeworlds() HomeworldRepository
	Starships() StarshipRepository
	Favorites() FavoriteRepository
}

// Store runs fn inside a single transaction. The transaction commits when
// fn returns nil and rolls back otherwise.
type Store interface {
	Repositories
	WithinTx(ctx context.Context, fn func(Repositories) error) error
}
