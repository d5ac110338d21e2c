package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/swblog/starwars-api/internal/domain"
	"github.com/swblog/starwars-api/internal/repository/ports"
	"github.com/swblog/starwars-api/internal/util"
)

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrInvalidInput = errors.New("invalid input")
)

type AdminUserInput struct {
	Email    string
	Password *string
	IsActive *bool
}

// AdminService is the record editor behind /admin. Unlike the public API it
// writes catalog rows.
type AdminService struct {
	store ports.Store
}

func NewAdminService(store ports.Store) *AdminService {
	return &AdminService{store: store}
}

func (s *AdminService) CreateUser(ctx context.Context, input AdminUserInput) (*domain.User, error) {
	email := normalizeEmail(input.Email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	var cred util.Credential
	if input.Password != nil {
		c, err := buildCredential(*input.Password)
		if err != nil {
			return nil, err
		}
		cred = c
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	user, err := s.store.Users().Create(ctx, email, cred.Hash, cred.Salt, active)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *AdminService) UpdateUser(ctx context.Context, id int64, input AdminUserInput) (*domain.User, error) {
	var updated *domain.User
	err := s.store.WithinTx(ctx, func(repos ports.Repositories) error {
		current, err := repos.Users().FindByID(ctx, id)
		if err != nil {
			if isNotFound(err) {
				return ErrUserNotFound
			}
			return fmt.Errorf("find user: %w", err)
		}

		email := current.Email
		if trimmed := normalizeEmail(input.Email); trimmed != "" {
			email = trimmed
		}
		active := current.IsActive
		if input.IsActive != nil {
			active = *input.IsActive
		}

		user, err := repos.Users().Update(ctx, id, email, active)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrEmailTaken
			}
			return fmt.Errorf("update user: %w", err)
		}

		if input.Password != nil {
			cred, err := buildCredential(*input.Password)
			if err != nil {
				return err
			}
			if err := repos.Users().UpdatePassword(ctx, id, cred.Hash, cred.Salt); err != nil {
				return fmt.Errorf("update password: %w", err)
			}
			user.PasswordHash, user.PasswordSalt = cred.Hash, cred.Salt
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *AdminService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.store.Users().Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (s *AdminService) CreateCharacter(ctx context.Context, fields domain.CharacterFields) (*domain.Character, error) {
	if err := requireName(fields.Name); err != nil {
		return nil, err
	}

	var created *domain.Character
	err := s.store.WithinTx(ctx, func(repos ports.Repositories) error {
		if err := checkCharacterReferences(ctx, repos, fields); err != nil {
			return err
		}
		character, err := repos.Characters().Create(ctx, fields)
		if err != nil {
			return fmt.Errorf("create character: %w", err)
		}
		created = character
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *AdminService) UpdateCharacter(ctx context.Context, id int64, fields domain.CharacterFields) (*domain.Character, error) {
	if err := requireName(fields.Name); err != nil {
		return nil, err
	}

	var updated *domain.Character
	err := s.store.WithinTx(ctx, func(repos ports.Repositories) error {
		if err := checkCharacterReferences(ctx, repos, fields); err != nil {
			return err
		}
		character, err := repos.Characters().Update(ctx, id, fields)
		if err != nil {
			if isNotFound(err) {
				return ErrCharacterNotFound
			}
			return fmt.Errorf("update character: %w", err)
		}
		updated = character
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *AdminService) DeleteCharacter(ctx context.Context, id int64) error {
	if err := s.store.Characters().Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrCharacterNotFound
		}
		return fmt.Errorf("delete character: %w", err)
	}
	return nil
}

func (s *AdminService) CreateHomeworld(ctx context.Context, fields domain.HomeworldFields) (*domain.Homeworld, error) {
	if err := requireName(fields.Name); err != nil {
		return nil, err
	}
	homeworld, err := s.store.Homeworlds().Create(ctx, fields)
	if err != nil {
		return nil, fmt.Errorf("create homeworld: %w", err)
	}
	return homeworld, nil
}

func (s *AdminService) UpdateHomeworld(ctx context.Context, id int64, fields domain.HomeworldFields) (*domain.Homeworld, error) {
	if err := requireName(fields.Name); err != nil {
		return nil, err
	}
	homeworld, err := s.store.Homeworlds().Update(ctx, id, fields)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrHomeworldNotFound
		}
		return nil, fmt.Errorf("update homeworld: %w", err)
	}
	return homeworld, nil
}

func (s *AdminService) DeleteHomeworld(ctx context.Context, id int64) error {
	if err := s.store.Homeworlds().Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrHomeworldNotFound
		}
		return fmt.Errorf("delete homeworld: %w", err)
	}
	return nil
}

func (s *AdminService) CreateStarship(ctx context.Context, fields domain.StarshipFields) (*domain.Starship, error) {
	if err := requireName(fields.Name); err != nil {
		return nil, err
	}
	starship, err := s.store.Starships().Create(ctx, fields)
	if err != nil {
		return nil, fmt.Errorf("create starship: %w", err)
	}
	return starship, nil
}

func (s *AdminService) UpdateStarship(ctx context.Context, id int64, fields domain.StarshipFields) (*domain.Starship, error) {
	if err := requireName(fields.Name); err != nil {
		return nil, err
	}
	starship, err := s.store.Starships().Update(ctx, id, fields)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrStarshipNotFound
		}
		return nil, fmt.Errorf("update starship: %w", err)
	}
	return starship, nil
}

func (s *AdminService) DeleteStarship(ctx context.Context, id int64) error {
	if err := s.store.Starships().Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrStarshipNotFound
		}
		return fmt.Errorf("delete starship: %w", err)
	}
	return nil
}

func checkCharacterReferences(ctx context.Context, repos ports.Repositories, fields domain.CharacterFields) error {
	if fields.HomeworldID != nil {
		if _, err := repos.Homeworlds().FindByID(ctx, *fields.HomeworldID); err != nil {
			if isNotFound(err) {
				return ErrHomeworldNotFound
			}
			return fmt.Errorf("find homeworld: %w", err)
		}
	}
	if fields.StarshipID != nil {
		if _, err := repos.Starships().FindByID(ctx, *fields.StarshipID); err != nil {
			if isNotFound(err) {
				return ErrStarshipNotFound
			}
			return fmt.Errorf("find starship: %w", err)
		}
	}
	return nil
}

func buildCredential(password string) (util.Credential, error) {
	if err := util.CheckPasswordStrength(password); err != nil {
		return util.Credential{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	return util.NewCredential(password)
}

func requireName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
