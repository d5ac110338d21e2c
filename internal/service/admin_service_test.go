package service

import (
	"context"
	"errors"
	"testing"

	"github.com/swblog/starwars-api/internal/domain"
	"github.com/swblog/starwars-api/internal/util"
)

func TestAdminService_CreateUserHashesPassword(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	svc := NewAdminService(store)

	password := "maytheforce4"
	user, err := svc.CreateUser(ctx, AdminUserInput{Email: "  Padme@Example.com ", Password: &password})
	if err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}
	if user.Email != "padme@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if !user.IsActive {
		t.Fatalf("expected new users to be active by default")
	}
	cred := util.Credential{Hash: user.PasswordHash, Salt: user.PasswordSalt}
	if !cred.Matches(password) {
		t.Fatalf("stored credential does not match password")
	}

	_, err = svc.CreateUser(ctx, AdminUserInput{Email: "padme@example.com"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAdminService_CreateUserValidation(t *testing.T) {
	svc := NewAdminService(newMemoryStore())

	if _, err := svc.CreateUser(context.Background(), AdminUserInput{Email: "   "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank email, got %v", err)
	}
	weak := "short"
	if _, err := svc.CreateUser(context.Background(), AdminUserInput{Email: "a@b.c", Password: &weak}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for weak password, got %v", err)
	}
}

func TestAdminService_UpdateUser(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	existing := store.addUser("anakin@example.com")
	store.addUser("vader@example.com")
	svc := NewAdminService(store)

	inactive := false
	user, err := svc.UpdateUser(ctx, existing.ID, AdminUserInput{IsActive: &inactive})
	if err != nil {
		t.Fatalf("UpdateUser returned error: %v", err)
	}
	if user.IsActive || user.Email != "anakin@example.com" {
		t.Fatalf("unexpected user after update: %+v", user)
	}

	_, err = svc.UpdateUser(ctx, existing.ID, AdminUserInput{Email: "vader@example.com"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	_, err = svc.UpdateUser(ctx, 999, AdminUserInput{})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAdminService_UpdateUserWeakPasswordRollsBack(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	existing := store.addUser("ahsoka@example.com")
	svc := NewAdminService(store)

	weak := "abc"
	_, err := svc.UpdateUser(ctx, existing.ID, AdminUserInput{Email: "tano@example.com", Password: &weak})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	stored, _ := store.Users().FindByID(ctx, existing.ID)
	if stored.Email != "ahsoka@example.com" {
		t.Fatalf("email change must roll back, got %q", stored.Email)
	}
}

func TestAdminService_DeleteUserRemovesFavorites(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	user := store.addUser("boba@example.com")
	starship := store.addStarship("Slave I")
	if _, err := NewFavoriteService(store).Add(ctx, domain.FavoriteKindStarship, user.ID, starship.ID); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	svc := NewAdminService(store)
	if err := svc.DeleteUser(ctx, user.ID); err != nil {
		t.Fatalf("DeleteUser returned error: %v", err)
	}
	if store.favoriteCount(domain.FavoriteKindStarship) != 0 {
		t.Fatalf("expected favorites of deleted user to be gone")
	}
	if err := svc.DeleteUser(ctx, user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAdminService_CharacterReferences(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	homeworld := store.addHomeworld("Naboo")
	svc := NewAdminService(store)

	missing := int64(999)
	_, err := svc.CreateCharacter(ctx, domain.CharacterFields{Name: "Jar Jar", HomeworldID: &missing})
	if !errors.Is(err, ErrHomeworldNotFound) {
		t.Fatalf("expected ErrHomeworldNotFound, got %v", err)
	}
	_, err = svc.CreateCharacter(ctx, domain.CharacterFields{Name: "Jar Jar", StarshipID: &missing})
	if !errors.Is(err, ErrStarshipNotFound) {
		t.Fatalf("expected ErrStarshipNotFound, got %v", err)
	}

	character, err := svc.CreateCharacter(ctx, domain.CharacterFields{Name: "Jar Jar", HomeworldID: &homeworld.ID})
	if err != nil {
		t.Fatalf("CreateCharacter returned error: %v", err)
	}
	if character.HomeworldID == nil || *character.HomeworldID != homeworld.ID {
		t.Fatalf("expected homeworld reference, got %v", character.HomeworldID)
	}

	if _, err := svc.UpdateCharacter(ctx, character.ID, domain.CharacterFields{Name: " "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}
	if _, err := svc.UpdateCharacter(ctx, 999, domain.CharacterFields{Name: "Ghost"}); !errors.Is(err, ErrCharacterNotFound) {
		t.Fatalf("expected ErrCharacterNotFound, got %v", err)
	}
	if err := svc.DeleteCharacter(ctx, character.ID); err != nil {
		t.Fatalf("DeleteCharacter returned error: %v", err)
	}
	if err := svc.DeleteCharacter(ctx, character.ID); !errors.Is(err, ErrCharacterNotFound) {
		t.Fatalf("expected ErrCharacterNotFound, got %v", err)
	}
}

func TestAdminService_HomeworldAndStarshipLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewAdminService(newMemoryStore())

	homeworld, err := svc.CreateHomeworld(ctx, domain.HomeworldFields{Name: "Hoth", Climate: "frozen"})
	if err != nil {
		t.Fatalf("CreateHomeworld returned error: %v", err)
	}
	updated, err := svc.UpdateHomeworld(ctx, homeworld.ID, domain.HomeworldFields{Name: "Hoth", Climate: "cold"})
	if err != nil {
		t.Fatalf("UpdateHomeworld returned error: %v", err)
	}
	if updated.Climate != "cold" {
		t.Fatalf("expected climate cold, got %q", updated.Climate)
	}
	if err := svc.DeleteHomeworld(ctx, homeworld.ID); err != nil {
		t.Fatalf("DeleteHomeworld returned error: %v", err)
	}
	if _, err := svc.UpdateHomeworld(ctx, homeworld.ID, domain.HomeworldFields{Name: "Hoth"}); !errors.Is(err, ErrHomeworldNotFound) {
		t.Fatalf("expected ErrHomeworldNotFound, got %v", err)
	}

	starship, err := svc.CreateStarship(ctx, domain.StarshipFields{Name: "TIE Fighter"})
	if err != nil {
		t.Fatalf("CreateStarship returned error: %v", err)
	}
	if _, err := svc.CreateStarship(ctx, domain.StarshipFields{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unnamed starship, got %v", err)
	}
	if err := svc.DeleteStarship(ctx, starship.ID); err != nil {
		t.Fatalf("DeleteStarship returned error: %v", err)
	}
	if err := svc.DeleteStarship(ctx, starship.ID); !errors.Is(err, ErrStarshipNotFound) {
		t.Fatalf("expected ErrStarshipNotFound, got %v", err)
	}
}
