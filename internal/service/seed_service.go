package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"

	"github.com/swblog/starwars-api/internal/domain"
	"github.com/swblog/starwars-api/internal/repository/ports"
)

var ErrInvalidSeed = errors.New("invalid catalog seed")

// CatalogSeed is the document accepted by the seed loader. Characters may
// point at homeworlds and starships by name, either from the same document
// or already stored.
type CatalogSeed struct {
	Users      []SeedUser               `json:"users"`
	Homeworlds []domain.HomeworldFields `json:"homeworlds"`
	Starships  []domain.StarshipFields  `json:"starships"`
	Characters []SeedCharacter          `json:"characters"`
}

type SeedUser struct {
	Email    string  `json:"email"`
	Password *string `json:"password,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type SeedCharacter struct {
	domain.CharacterFields
	Homeworld string `json:"homeworld,omitempty"`
	Starship  string `json:"starship,omitempty"`
}

type SeedResult struct {
	Users      int `json:"users"`
	Homeworlds int `json:"homeworlds"`
	Starships  int `json:"starships"`
	Characters int `json:"characters"`
}

type SeedService struct {
	store ports.Store
}

func NewSeedService(store ports.Store) *SeedService {
	return &SeedService{store: store}
}

// Load decodes a CatalogSeed from r and inserts it in one transaction.
func (s *SeedService) Load(ctx context.Context, r io.Reader) (*SeedResult, error) {
	var seed CatalogSeed
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&seed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	return s.Apply(ctx, seed)
}

// LoadObject reads the seed document from object storage.
func (s *SeedService) LoadObject(ctx context.Context, storage ports.ObjectStorage, bucket, object string) (*SeedResult, error) {
	body, err := storage.Open(ctx, bucket, object)
	if err != nil {
		return nil, fmt.Errorf("open seed %s/%s: %w", bucket, object, err)
	}
	defer body.Close()
	return s.Load(ctx, body)
}

func (s *SeedService) Apply(ctx context.Context, seed CatalogSeed) (*SeedResult, error) {
	result := &SeedResult{}
	err := s.store.WithinTx(ctx, func(repos ports.Repositories) error {
		*result = SeedResult{}

		for _, u := range seed.Users {
			email := normalizeEmail(u.Email)
			if email == "" {
				return fmt.Errorf("%w: user without email", ErrInvalidSeed)
			}
			var cred struct{ hash, salt []byte }
			if u.Password != nil {
				c, err := buildCredential(*u.Password)
				if err != nil {
					return fmt.Errorf("%w: user %s: %v", ErrInvalidSeed, email, err)
				}
				cred.hash, cred.salt = c.Hash, c.Salt
			}
			active := true
			if u.IsActive != nil {
				active = *u.IsActive
			}
			if _, err := repos.Users().Create(ctx, email, cred.hash, cred.salt, active); err != nil {
				if isUniqueViolation(err) {
					return fmt.Errorf("%w: user %s already exists", ErrInvalidSeed, email)
				}
				return fmt.Errorf("seed user %s: %w", email, err)
			}
			result.Users++
		}

		homeworldIDs := make(map[string]int64, len(seed.Homeworlds))
		for _, fields := range seed.Homeworlds {
			if err := requireName(fields.Name); err != nil {
				return fmt.Errorf("%w: homeworld without name", ErrInvalidSeed)
			}
			homeworld, err := repos.Homeworlds().Create(ctx, fields)
			if err != nil {
				return fmt.Errorf("seed homeworld %s: %w", fields.Name, err)
			}
			homeworldIDs[seedKey(fields.Name)] = homeworld.ID
			result.Homeworlds++
		}

		starshipIDs := make(map[string]int64, len(seed.Starships))
		for _, fields := range seed.Starships {
			if err := requireName(fields.Name); err != nil {
				return fmt.Errorf("%w: starship without name", ErrInvalidSeed)
			}
			starship, err := repos.Starships().Create(ctx, fields)
			if err != nil {
				return fmt.Errorf("seed starship %s: %w", fields.Name, err)
			}
			starshipIDs[seedKey(fields.Name)] = starship.ID
			result.Starships++
		}

		for _, c := range seed.Characters {
			fields := c.CharacterFields
			if err := requireName(fields.Name); err != nil {
				return fmt.Errorf("%w: character without name", ErrInvalidSeed)
			}
			if c.Homeworld != "" {
				id, err := resolveHomeworld(ctx, repos, homeworldIDs, c.Homeworld)
				if err != nil {
					return err
				}
				fields.HomeworldID = &id
			}
			if c.Starship != "" {
				id, err := resolveStarship(ctx, repos, starshipIDs, c.Starship)
				if err != nil {
					return err
				}
				fields.StarshipID = &id
			}
			if err := checkCharacterReferences(ctx, repos, fields); err != nil {
				return fmt.Errorf("%w: character %s: %v", ErrInvalidSeed, fields.Name, err)
			}
			if _, err := repos.Characters().Create(ctx, fields); err != nil {
				return fmt.Errorf("seed character %s: %w", fields.Name, err)
			}
			result.Characters++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func resolveHomeworld(ctx context.Context, repos ports.Repositories, seeded map[string]int64, name string) (int64, error) {
	if id, ok := seeded[seedKey(name)]; ok {
		return id, nil
	}
	homeworld, err := repos.Homeworlds().FindByName(ctx, strings.TrimSpace(name))
	if err != nil {
		if isNotFound(err) {
			return 0, fmt.Errorf("%w: unknown homeworld %q", ErrInvalidSeed, name)
		}
		return 0, err
	}
	return homeworld.ID, nil
}

func resolveStarship(ctx context.Context, repos ports.Repositories, seeded map[string]int64, name string) (int64, error) {
	if id, ok := seeded[seedKey(name)]; ok {
		return id, nil
	}
	starship, err := repos.Starships().FindByName(ctx, strings.TrimSpace(name))
	if err != nil {
		if isNotFound(err) {
			return 0, fmt.Errorf("%w: unknown starship %q", ErrInvalidSeed, name)
		}
		return 0, err
	}
	return starship.ID, nil
}

func seedKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
