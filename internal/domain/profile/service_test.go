package profile

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"petpal/internal/adapters/storage/memory"
	"petpal/internal/ports/auth"
	"petpal/internal/ports/kv"
)

func newTestService(t *testing.T) (*Service, kv.Store) {
	t.Helper()
	store := memory.NewStore()
	svc := NewService(NewRepository(store))
	svc.now = func() time.Time { return time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC) }
	return svc, store
}

func mustUser(t *testing.T, email string) auth.UserContext {
	t.Helper()
	uc, err := auth.NewUserContext(email)
	if err != nil {
		t.Fatalf("user %q: %v", email, err)
	}
	return uc
}

func TestService_SaveLoadRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	uc := mustUser(t, "ana@example.com")

	saved, err := svc.Save(ctx, uc, SaveInput{Name: "  Milo ", Breed: "Poodle", Age: 3, Health: "allergic to chicken"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := svc.Load(ctx, mustUser(t, "ANA@example.com"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != saved {
		t.Fatalf("round trip mismatch: saved=%+v got=%+v", saved, got)
	}
	if got.Name != "Milo" {
		t.Fatalf("expected trimmed name, got %q", got.Name)
	}
}

func TestService_SaveOverwrites(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	uc := mustUser(t, "ana@example.com")

	if _, err := svc.Save(ctx, uc, SaveInput{Name: "Milo", Age: 3, Health: "itchy"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := svc.Save(ctx, uc, SaveInput{Name: "Luna", Breed: "Siamese", Age: 1}); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := svc.Load(ctx, uc)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Profile{Name: "Luna", Breed: "Siamese", Age: 1}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestService_SaveDefaultsBreed(t *testing.T) {
	svc, _ := newTestService(t)
	p, err := svc.Save(context.Background(), mustUser(t, "ana@example.com"), SaveInput{Name: "Milo", Age: 2})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if p.Breed != string(BreedLabrador) {
		t.Fatalf("expected default breed, got %q", p.Breed)
	}
}

func TestService_SaveValidates(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	uc := mustUser(t, "ana@example.com")

	cases := []SaveInput{
		{Name: "", Age: 3},
		{Name: "   ", Age: 3},
		{Name: "Milo", Age: 0},
		{Name: "Milo", Age: -2},
	}
	for _, in := range cases {
		if _, err := svc.Save(ctx, uc, in); err != ErrInvalidInput {
			t.Fatalf("input %+v: expected ErrInvalidInput, got %v", in, err)
		}
	}

	if _, ok, _ := store.Get(ctx, "profile-ana@example.com"); ok {
		t.Fatalf("invalid input must not be written")
	}

	if _, err := svc.Save(ctx, auth.UserContext{}, SaveInput{Name: "Milo", Age: 3}); err != auth.ErrNoSession {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestService_StoredLayout(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Save(ctx, mustUser(t, "Ana@Example.com"), SaveInput{Name: "Milo", Age: 3}); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, ok, err := store.Get(ctx, "profile-ana@example.com")
	if err != nil || !ok {
		t.Fatalf("expected stored record, ok=%v err=%v", ok, err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("stored value is not json: %v", err)
	}
	for _, k := range []string{"email", "pet", "updatedAt"} {
		if _, ok := doc[k]; !ok {
			t.Fatalf("expected field %q in %s", k, raw)
		}
	}
}

func TestService_LoadCorruptIsNotFound(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	uc := mustUser(t, "ana@example.com")

	if err := store.Set(ctx, "profile-ana@example.com", "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := svc.Load(ctx, uc); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	exists, err := svc.Exists(ctx, uc)
	if err != nil || exists {
		t.Fatalf("corrupt profile must count as new user, exists=%v err=%v", exists, err)
	}
}

func TestService_ExistsAndPetName(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	uc := mustUser(t, "ana@example.com")

	if exists, _ := svc.Exists(ctx, uc); exists {
		t.Fatalf("expected new user")
	}
	if name := svc.PetName(ctx, uc); name != "" {
		t.Fatalf("expected empty name, got %q", name)
	}

	if _, err := svc.Save(ctx, uc, SaveInput{Name: "Milo", Age: 3}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if exists, _ := svc.Exists(ctx, uc); !exists {
		t.Fatalf("expected returning user")
	}
	if name := svc.PetName(ctx, uc); name != "Milo" {
		t.Fatalf("expected Milo, got %q", name)
	}
}
