package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"petpal/internal/platform/records"
	"petpal/internal/ports/auth"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("profile not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type SaveInput struct {
	Name   string
	Breed  string
	Age    int
	Health string
}

// Load devuelve ErrNotFound si no hay perfil o si el guardado no se puede decodificar.
func (s *Service) Load(ctx context.Context, uc auth.UserContext) (Profile, error) {
	rec, err := s.repo.Load(ctx, uc)
	switch {
	case err == nil:
		return rec.Pet, nil
	case errors.Is(err, records.ErrAbsent), records.IsDecodeError(err):
		return Profile{}, ErrNotFound
	default:
		return Profile{}, err
	}
}

// Save reemplaza el perfil completo (no hay merge con el anterior).
func (s *Service) Save(ctx context.Context, uc auth.UserContext, in SaveInput) (Profile, error) {
	if !uc.Valid() {
		return Profile{}, auth.ErrNoSession
	}

	p := Profile{
		Name:   strings.TrimSpace(in.Name),
		Breed:  strings.TrimSpace(in.Breed),
		Age:    in.Age,
		Health: strings.TrimSpace(in.Health),
	}
	if p.Name == "" || p.Age <= 0 {
		return Profile{}, ErrInvalidInput
	}
	if p.Breed == "" {
		p.Breed = string(DefaultBreed)
	}

	rec := Record{
		Email:     uc.Email,
		Pet:       p,
		UpdatedAt: s.now().UTC(),
	}
	if err := s.repo.Save(ctx, uc, rec); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Exists indica usuario recurrente: hay un perfil legible y completo.
func (s *Service) Exists(ctx context.Context, uc auth.UserContext) (bool, error) {
	p, err := s.Load(ctx, uc)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return p.Complete(), nil
}

// PetName devuelve "" si no hay perfil; pensado para personalizar textos.
func (s *Service) PetName(ctx context.Context, uc auth.UserContext) string {
	p, err := s.Load(ctx, uc)
	if err != nil {
		return ""
	}
	return p.Name
}
