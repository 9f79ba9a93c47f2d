package vets

import (
	"context"
	"math/rand/v2"
	"strings"

	"petpal/internal/domain/profile"
	"petpal/internal/ports/auth"
)

type Source interface {
	IntN(n int) int
	Float64() float64
}

type Profiles interface {
	Load(ctx context.Context, uc auth.UserContext) (profile.Profile, error)
}

type Service struct {
	profiles Profiles
	rnd      Source
}

func NewService(profiles Profiles, rnd Source) *Service {
	if rnd == nil {
		rnd = globalSource{}
	}
	return &Service{profiles: profiles, rnd: rnd}
}

// Directory devuelve una copia; el listado no se filtra ni se ordena.
func (s *Service) Directory() []Clinic {
	out := make([]Clinic, 0, len(directory))
	for _, c := range directory {
		c.Specialties = append([]string(nil), c.Specialties...)
		out = append(out, c)
	}
	return out
}

// Tip elige un consejo para elegir veterinario.
// Con raza (50%) "your pet" pasa a "your <raza>"; con nombre (30%) al nombre.
func (s *Service) Tip(ctx context.Context, uc auth.UserContext) string {
	tip := choosingTips[s.rnd.IntN(len(choosingTips))]
	p := s.profile(ctx, uc)

	if b := strings.TrimSpace(p.Breed); b != "" && s.rnd.Float64() > 0.5 {
		tip = strings.ReplaceAll(tip, "your pet", "your "+b)
		tip = strings.ReplaceAll(tip, "Your pet", "Your "+b)
	}
	if n := strings.TrimSpace(p.Name); n != "" && s.rnd.Float64() > 0.7 {
		tip = strings.ReplaceAll(tip, "your pet", n)
		tip = strings.ReplaceAll(tip, "Your pet", n)
	}
	return tip
}

func (s *Service) profile(ctx context.Context, uc auth.UserContext) profile.Profile {
	if s.profiles == nil || !uc.Valid() {
		return profile.Profile{}
	}
	p, err := s.profiles.Load(ctx, uc)
	if err != nil {
		return profile.Profile{}
	}
	return p
}

type globalSource struct{}

func (globalSource) IntN(n int) int   { return rand.IntN(n) }
func (globalSource) Float64() float64 { return rand.Float64() }
