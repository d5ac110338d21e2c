package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/swblog/starwars-api/internal/domain"
	"github.com/swblog/starwars-api/internal/repository/ports"
)

// memoryState is the whole in-memory database. WithinTx works on a copy and
// swaps it in on success.
type memoryState struct {
	nextID     int64
	users      map[int64]domain.User
	characters map[int64]domain.Character
	homeworlds map[int64]domain.Homeworld
	starships  map[int64]domain.Starship
	favorites  map[domain.FavoriteKind]map[int64]domain.Favorite
}

func newMemoryState() *memoryState {
	s := &memoryState{
		users:      map[int64]domain.User{},
		characters: map[int64]domain.Character{},
		homeworlds: map[int64]domain.Homeworld{},
		starships:  map[int64]domain.Starship{},
		favorites:  map[domain.FavoriteKind]map[int64]domain.Favorite{},
	}
	for _, kind := range domain.FavoriteKinds {
		s.favorites[kind] = map[int64]domain.Favorite{}
	}
	return s
}

func (s *memoryState) clone() *memoryState {
	c := newMemoryState()
	c.nextID = s.nextID
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.characters {
		c.characters[k] = v
	}
	for k, v := range s.homeworlds {
		c.homeworlds[k] = v
	}
	for k, v := range s.starships {
		c.starships[k] = v
	}
	for kind, items := range s.favorites {
		for k, v := range items {
			c.favorites[kind][k] = v
		}
	}
	return c
}

func (s *memoryState) id() int64 {
	s.nextID++
	return s.nextID
}

type memoryStore struct {
	state *memoryState
	// failFavoriteAdd makes the next favorite insert fail with this error.
	failFavoriteAdd error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{state: newMemoryState()}
}

func (m *memoryStore) Users() ports.UserRepository           { return memoryUsers{m.state} }
func (m *memoryStore) Characters() ports.CharacterRepository { return memoryCharacters{m.state} }
func (m *memoryStore) Homeworlds() ports.HomeworldRepository { return memoryHomeworlds{m.state} }
func (m *memoryStore) Starships() ports.StarshipRepository   { return memoryStarships{m.state} }
func (m *memoryStore) Favorites() ports.FavoriteRepository {
	return &memoryFavorites{state: m.state, fail: &m.failFavoriteAdd}
}

func (m *memoryStore) WithinTx(ctx context.Context, fn func(ports.Repositories) error) error {
	tx := &memoryStore{state: m.state.clone(), failFavoriteAdd: m.failFavoriteAdd}
	err := fn(tx)
	m.failFavoriteAdd = tx.failFavoriteAdd
	if err != nil {
		return err
	}
	m.state = tx.state
	return nil
}

func (m *memoryStore) addUser(email string) domain.User {
	u := domain.User{ID: m.state.id(), Email: email, IsActive: true}
	m.state.users[u.ID] = u
	return u
}

func (m *memoryStore) addCharacter(name string) domain.Character {
	c := domain.Character{ID: m.state.id(), Name: name}
	m.state.characters[c.ID] = c
	return c
}

func (m *memoryStore) addHomeworld(name string) domain.Homeworld {
	h := domain.Homeworld{ID: m.state.id(), Name: name}
	m.state.homeworlds[h.ID] = h
	return h
}

func (m *memoryStore) addStarship(name string) domain.Starship {
	s := domain.Starship{ID: m.state.id(), Name: name}
	m.state.starships[s.ID] = s
	return s
}

func (m *memoryStore) favoriteCount(kind domain.FavoriteKind) int {
	return len(m.state.favorites[kind])
}

var uniqueViolation = &pgconn.PgError{Code: "23505"}
var foreignKeyViolation = &pgconn.PgError{Code: "23503"}

type memoryUsers struct{ s *memoryState }

func (r memoryUsers) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &u, nil
}

func (r memoryUsers) List(context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memoryUsers) emailTaken(email string, except int64) bool {
	for _, u := range r.s.users {
		if u.ID != except && u.Email == email {
			return true
		}
	}
	return false
}

func (r memoryUsers) Create(_ context.Context, email string, hash, salt []byte, isActive bool) (*domain.User, error) {
	if r.emailTaken(email, 0) {
		return nil, uniqueViolation
	}
	u := domain.User{ID: r.s.id(), Email: email, PasswordHash: hash, PasswordSalt: salt, IsActive: isActive}
	r.s.users[u.ID] = u
	return &u, nil
}

func (r memoryUsers) Update(_ context.Context, id int64, email string, isActive bool) (*domain.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if r.emailTaken(email, id) {
		return nil, uniqueViolation
	}
	u.Email, u.IsActive = email, isActive
	r.s.users[id] = u
	return &u, nil
}

func (r memoryUsers) UpdatePassword(_ context.Context, id int64, hash, salt []byte) error {
	u, ok := r.s.users[id]
	if !ok {
		return sql.ErrNoRows
	}
	u.PasswordHash, u.PasswordSalt = hash, salt
	r.s.users[id] = u
	return nil
}

func (r memoryUsers) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.users[id]; !ok {
		return sql.ErrNoRows
	}
	delete(r.s.users, id)
	for _, items := range r.s.favorites {
		for fid, f := range items {
			if f.UserID == id {
				delete(items, fid)
			}
		}
	}
	return nil
}

type memoryCharacters struct{ s *memoryState }

func characterFrom(id int64, f domain.CharacterFields) domain.Character {
	return domain.Character{
		ID: id, Name: f.Name, BirthYear: f.BirthYear, EyeColor: f.EyeColor, Gender: f.Gender,
		HairColor: f.HairColor, Height: f.Height, Films: f.Films, Mass: f.Mass, SkinColor: f.SkinColor,
		Species: f.Species, URL: f.URL, Vehicles: f.Vehicles, HomeworldID: f.HomeworldID, StarshipID: f.StarshipID,
	}
}

func (r memoryCharacters) FindByID(_ context.Context, id int64) (*domain.Character, error) {
	c, ok := r.s.characters[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &c, nil
}

func (r memoryCharacters) FindByName(_ context.Context, name string) (*domain.Character, error) {
	for _, c := range r.s.characters {
		if strings.EqualFold(c.Name, name) {
			return &c, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r memoryCharacters) List(context.Context) ([]domain.Character, error) {
	out := make([]domain.Character, 0, len(r.s.characters))
	for _, c := range r.s.characters {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memoryCharacters) Create(_ context.Context, f domain.CharacterFields) (*domain.Character, error) {
	c := characterFrom(r.s.id(), f)
	r.s.characters[c.ID] = c
	return &c, nil
}

func (r memoryCharacters) Update(_ context.Context, id int64, f domain.CharacterFields) (*domain.Character, error) {
	if _, ok := r.s.characters[id]; !ok {
		return nil, sql.ErrNoRows
	}
	c := characterFrom(id, f)
	r.s.characters[id] = c
	return &c, nil
}

func (r memoryCharacters) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.characters[id]; !ok {
		return sql.ErrNoRows
	}
	delete(r.s.characters, id)
	return nil
}

type memoryHomeworlds struct{ s *memoryState }

func (r memoryHomeworlds) FindByID(_ context.Context, id int64) (*domain.Homeworld, error) {
	h, ok := r.s.homeworlds[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &h, nil
}

func (r memoryHomeworlds) FindByName(_ context.Context, name string) (*domain.Homeworld, error) {
	for _, h := range r.s.homeworlds {
		if strings.EqualFold(h.Name, name) {
			return &h, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r memoryHomeworlds) List(context.Context) ([]domain.Homeworld, error) {
	out := make([]domain.Homeworld, 0, len(r.s.homeworlds))
	for _, h := range r.s.homeworlds {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memoryHomeworlds) Create(_ context.Context, f domain.HomeworldFields) (*domain.Homeworld, error) {
	h := domain.Homeworld{ID: r.s.id(), Name: f.Name, Climate: f.Climate, Terrain: f.Terrain, Population: f.Population}
	r.s.homeworlds[h.ID] = h
	return &h, nil
}

func (r memoryHomeworlds) Update(_ context.Context, id int64, f domain.HomeworldFields) (*domain.Homeworld, error) {
	if _, ok := r.s.homeworlds[id]; !ok {
		return nil, sql.ErrNoRows
	}
	h := domain.Homeworld{ID: id, Name: f.Name, Climate: f.Climate, Terrain: f.Terrain, Population: f.Population}
	r.s.homeworlds[id] = h
	return &h, nil
}

func (r memoryHomeworlds) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.homeworlds[id]; !ok {
		return sql.ErrNoRows
	}
	delete(r.s.homeworlds, id)
	return nil
}

type memoryStarships struct{ s *memoryState }

func (r memoryStarships) FindByID(_ context.Context, id int64) (*domain.Starship, error) {
	s, ok := r.s.starships[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &s, nil
}

func (r memoryStarships) FindByName(_ context.Context, name string) (*domain.Starship, error) {
	for _, s := range r.s.starships {
		if strings.EqualFold(s.Name, name) {
			return &s, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r memoryStarships) List(context.Context) ([]domain.Starship, error) {
	out := make([]domain.Starship, 0, len(r.s.starships))
	for _, s := range r.s.starships {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memoryStarships) Create(_ context.Context, f domain.StarshipFields) (*domain.Starship, error) {
	s := domain.Starship{ID: r.s.id(), Name: f.Name, Model: f.Model, Manufacturer: f.Manufacturer}
	r.s.starships[s.ID] = s
	return &s, nil
}

func (r memoryStarships) Update(_ context.Context, id int64, f domain.StarshipFields) (*domain.Starship, error) {
	if _, ok := r.s.starships[id]; !ok {
		return nil, sql.ErrNoRows
	}
	s := domain.Starship{ID: id, Name: f.Name, Model: f.Model, Manufacturer: f.Manufacturer}
	r.s.starships[id] = s
	return &s, nil
}

func (r memoryStarships) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.starships[id]; !ok {
		return sql.ErrNoRows
	}
	delete(r.s.starships, id)
	return nil
}

type memoryFavorites struct {
	state *memoryState
	fail  *error
}

func (r *memoryFavorites) Add(_ context.Context, kind domain.FavoriteKind, userID, targetID int64) (*domain.Favorite, error) {
	if *r.fail != nil {
		err := *r.fail
		*r.fail = nil
		return nil, err
	}
	f := domain.Favorite{ID: r.state.id(), Kind: kind, UserID: userID, TargetID: targetID}
	r.state.favorites[kind][f.ID] = f
	return &f, nil
}

func (r *memoryFavorites) FindByID(_ context.Context, kind domain.FavoriteKind, id int64) (*domain.Favorite, error) {
	f, ok := r.state.favorites[kind][id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &f, nil
}

func (r *memoryFavorites) Remove(_ context.Context, kind domain.FavoriteKind, id int64) error {
	if _, ok := r.state.favorites[kind][id]; !ok {
		return sql.ErrNoRows
	}
	delete(r.state.favorites[kind], id)
	return nil
}

func (r *memoryFavorites) ListByUser(_ context.Context, kind domain.FavoriteKind, userID int64) ([]domain.Favorite, error) {
	out := []domain.Favorite{}
	for _, f := range r.state.favorites[kind] {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryFavorites) List(_ context.Context, kind domain.FavoriteKind) ([]domain.Favorite, error) {
	out := []domain.Favorite{}
	for _, f := range r.state.favorites[kind] {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type memoryObjectStorage struct {
	objects map[string]string
}

func (s memoryObjectStorage) Open(_ context.Context, bucket, objectName string) (io.ReadCloser, error) {
	body, ok := s.objects[bucket+"/"+objectName]
	if !ok {
		return nil, errors.New("object not found")
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

var _ ports.Store = (*memoryStore)(nil)
