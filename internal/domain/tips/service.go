package tips

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"

	"petpal/internal/domain/profile"
	"petpal/internal/ports/auth"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Source es el azar inyectable (*rand.Rand lo cumple).
type Source interface {
	IntN(n int) int
	Float64() float64
}

// Profiles da raza y nombre para personalizar.
type Profiles interface {
	Load(ctx context.Context, uc auth.UserContext) (profile.Profile, error)
}

type Service struct {
	profiles Profiles
	rnd      Source
}

// NewService: profiles puede ser nil; rnd nil usa el generador global de math/rand/v2.
func NewService(profiles Profiles, rnd Source) *Service {
	if rnd == nil {
		rnd = globalSource{}
	}
	return &Service{profiles: profiles, rnd: rnd}
}

// Random elige un consejo. category vacía = cualquiera.
// uc puede ser cero: sin perfil no hay personalización.
func (s *Service) Random(ctx context.Context, uc auth.UserContext, category Category) (Tip, error) {
	if category == "" {
		category = Categories[s.rnd.IntN(len(Categories))]
	}
	if !category.Valid() {
		return Tip{}, ErrInvalidInput
	}

	items := catalog[category]
	text := items[s.rnd.IntN(len(items))]

	p := s.profile(ctx, uc)
	text = Personalize(text, p.Breed, p.Name, s.rnd.Float64() > 0.5)

	return Tip{Category: category, Text: text}, nil
}

// All devuelve el catálogo sin personalizar.
func All(category Category) []string {
	items := catalog[category]
	out := make([]string, len(items))
	copy(out, items)
	return out
}

// Personalize reemplaza {breed} (o "pet" si no hay raza) y, si withName,
// "your pet"/"Your pet" por el nombre.
func Personalize(text, breed, name string, withName bool) string {
	breed = strings.TrimSpace(breed)
	if breed == "" {
		breed = "pet"
	}
	text = strings.ReplaceAll(text, "{breed}", breed)

	name = strings.TrimSpace(name)
	if withName && name != "" {
		text = strings.ReplaceAll(text, "your pet", name)
		text = strings.ReplaceAll(text, "Your pet", name)
	}
	return text
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
