package service

import (
	"context"
	"errors"
	"testing"

	"github.com/swblog/starwars-api/internal/domain"
)

func TestFavoriteService_AddThenListForUser(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	user := store.addUser("luke@example.com")
	character := store.addCharacter("Luke Skywalker")
	homeworld := store.addHomeworld("Tatooine")
	starship := store.addStarship("X-wing")

	svc := NewFavoriteService(store)

	targets := map[domain.FavoriteKind]int64{
		domain.FavoriteKindCharacter: character.ID,
		domain.FavoriteKindHomeworld: homeworld.ID,
		domain.FavoriteKindStarship:  starship.ID,
	}
	for kind, target := range targets {
		fav, err := svc.Add(ctx, kind, user.ID, target)
		if err != nil {
			t.Fatalf("Add %s returned error: %v", kind, err)
		}
		if fav.UserID != user.ID || fav.TargetID != target || fav.Kind != kind {
			t.Fatalf("unexpected %s favorite: %+v", kind, fav)
		}
	}

	favs, err := svc.ListForUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListForUser returned error: %v", err)
	}
	if len(favs.Characters) != 1 || favs.Characters[0].TargetID != character.ID {
		t.Fatalf("expected one character favorite, got %+v", favs.Characters)
	}
	if len(favs.Homeworlds) != 1 || favs.Homeworlds[0].TargetID != homeworld.ID {
		t.Fatalf("expected one homeworld favorite, got %+v", favs.Homeworlds)
	}
	if len(favs.Starships) != 1 || favs.Starships[0].TargetID != starship.ID {
		t.Fatalf("expected one starship favorite, got %+v", favs.Starships)
	}
}

func TestFavoriteService_AddMissingUser(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	character := store.addCharacter("Leia Organa")

	svc := NewFavoriteService(store)

	_, err := svc.Add(ctx, domain.FavoriteKindCharacter, 999, character.ID)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if store.favoriteCount(domain.FavoriteKindCharacter) != 0 {
		t.Fatalf("expected no favorite to be stored")
	}
}

func TestFavoriteService_AddMissingTarget(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	user := store.addUser("han@example.com")

	svc := NewFavoriteService(store)

	cases := []struct {
		kind domain.FavoriteKind
		want error
	}{
		{domain.FavoriteKindCharacter, ErrCharacterNotFound},
		{domain.FavoriteKindHomeworld, ErrHomeworldNotFound},
		{domain.FavoriteKindStarship, ErrStarshipNotFound},
	}
	for _, tc := range cases {
		_, err := svc.Add(ctx, tc.kind, user.ID, 404)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.kind, tc.want, err)
		}
		if errors.Is(err, ErrUserNotFound) {
			t.Fatalf("%s: missing target must not be reported as missing user", tc.kind)
		}
		if store.favoriteCount(tc.kind) != 0 {
			t.Fatalf("%s: expected no favorite to be stored", tc.kind)
		}
	}
}

func TestFavoriteService_AddTargetRemovedConcurrently(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	user := store.addUser("lando@example.com")
	starship := store.addStarship("Millennium Falcon")
	store.failFavoriteAdd = foreignKeyViolation

	svc := NewFavoriteService(store)

	_, err := svc.Add(ctx, domain.FavoriteKindStarship, user.ID, starship.ID)
	if !errors.Is(err, ErrStarshipNotFound) {
		t.Fatalf("expected ErrStarshipNotFound on foreign key violation, got %v", err)
	}
}

func TestFavoriteService_AddDuplicatesAllowed(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	user := store.addUser("chewie@example.com")
	homeworld := store.addHomeworld("Kashyyyk")

	svc := NewFavoriteService(store)

	first, err := svc.Add(ctx, domain.FavoriteKindHomeworld, user.ID, homeworld.ID)
	if err != nil {
		t.Fatalf("first Add returned error: %v", err)
	}
	second, err := svc.Add(ctx, domain.FavoriteKindHomeworld, user.ID, homeworld.ID)
	if err != nil {
		t.Fatalf("second Add returned error: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct favorite ids, got %d twice", first.ID)
	}

	favs, err := svc.ListForUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListForUser returned error: %v", err)
	}
	if len(favs.Homeworlds) != 2 {
		t.Fatalf("expected 2 homeworld favorites, got %d", len(favs.Homeworlds))
	}
}

func TestFavoriteService_Remove(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	user := store.addUser("obiwan@example.com")
	character := store.addCharacter("Yoda")

	svc := NewFavoriteService(store)

	fav, err := svc.Add(ctx, domain.FavoriteKindCharacter, user.ID, character.ID)
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	removed, err := svc.Remove(ctx, domain.FavoriteKindCharacter, fav.ID)
	if err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if removed.ID != fav.ID {
		t.Fatalf("expected removed favorite %d, got %d", fav.ID, removed.ID)
	}

	favs, _ := svc.ListForUser(ctx, user.ID)
	if len(favs.Characters) != 0 {
		t.Fatalf("expected no character favorites after removal, got %d", len(favs.Characters))
	}

	_, err = svc.Remove(ctx, domain.FavoriteKindCharacter, fav.ID)
	if !errors.Is(err, ErrFavoriteNotFound) {
		t.Fatalf("expected ErrFavoriteNotFound on second removal, got %v", err)
	}
}

func TestFavoriteService_RemoveIsScopedToKind(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	user := store.addUser("rey@example.com")
	homeworld := store.addHomeworld("Jakku")

	svc := NewFavoriteService(store)

	fav, err := svc.Add(ctx, domain.FavoriteKindHomeworld, user.ID, homeworld.ID)
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	_, err = svc.Remove(ctx, domain.FavoriteKindCharacter, fav.ID)
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) || nf.Kind != domain.FavoriteKindCharacter {
		t.Fatalf("expected character favorite not found, got %v", err)
	}
	if store.favoriteCount(domain.FavoriteKindHomeworld) != 1 {
		t.Fatalf("homeworld favorite must survive a character removal")
	}
}

func TestFavoriteService_ListForUnknownUserIsEmpty(t *testing.T) {
	svc := NewFavoriteService(newMemoryStore())

	favs, err := svc.ListForUser(context.Background(), 42)
	if err != nil {
		t.Fatalf("ListForUser returned error: %v", err)
	}
	if len(favs.Characters)+len(favs.Homeworlds)+len(favs.Starships) != 0 {
		t.Fatalf("expected empty favorites, got %+v", favs)
	}
	if favs.Characters == nil || favs.Homeworlds == nil || favs.Starships == nil {
		t.Fatalf("expected empty partitions rather than nil")
	}
}

func TestFavoriteService_UnknownKind(t *testing.T) {
	svc := NewFavoriteService(newMemoryStore())

	if _, err := svc.Add(context.Background(), domain.FavoriteKind("vehicle"), 1, 1); !errors.Is(err, ErrUnknownFavoriteKind) {
		t.Fatalf("expected ErrUnknownFavoriteKind from Add, got %v", err)
	}
	if _, err := svc.Remove(context.Background(), domain.FavoriteKind("vehicle"), 1); !errors.Is(err, ErrUnknownFavoriteKind) {
		t.Fatalf("expected ErrUnknownFavoriteKind from Remove, got %v", err)
	}
}
