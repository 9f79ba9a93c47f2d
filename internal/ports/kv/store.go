package kv

import (
	"context"
	"strings"
)

// Store es la persistencia clave/valor del lado del cliente.
// Cada Set reemplaza el valor completo de la key (last write wins).
type Store interface {
	// Get devuelve ok=false si la key nunca se escribió o fue removida.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// DefaultNamespace da keys como petpal-profile-<email> o petpal-current-user.
const DefaultNamespace = "petpal-"

type prefixed struct {
	next   Store
	prefix string
}

// Prefixed antepone namespace a todas las keys. Con namespace vacío, o si next ya
// tiene ese mismo namespace, devuelve el store tal cual.
func Prefixed(next Store, namespace string) Store {
	if strings.TrimSpace(namespace) == "" {
		return next
	}
	if p, ok := next.(*prefixed); ok && p.prefix == namespace {
		return next
	}
	return &prefixed{next: next, prefix: namespace}
}

func (p *prefixed) Get(ctx context.Context, key string) (string, bool, error) {
	return p.next.Get(ctx, p.prefix+key)
}

func (p *prefixed) Set(ctx context.Context, key, value string) error {
	return p.next.Set(ctx, p.prefix+key, value)
}

func (p *prefixed) Remove(ctx context.Context, key string) error {
	return p.next.Remove(ctx, p.prefix+key)
}
