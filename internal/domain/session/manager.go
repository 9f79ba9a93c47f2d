package session

import (
	"context"
	"fmt"

	"petpal/internal/platform/logger"
	"petpal/internal/ports/auth"
	"petpal/internal/ports/kv"
)

// PointerKey guarda el email del usuario actual (uno solo a la vez).
const PointerKey = "current-user"

// Manager es dueño del puntero de sesión. No toca registros por usuario.
type Manager struct {
	store kv.Store
	log   logger.Logger
}

func NewManager(store kv.Store, log logger.Logger) *Manager {
	if log == nil {
		log = logger.Nop()
	}
	return &Manager{store: store, log: log}
}

// Login normaliza el email y lo persiste como usuario actual.
// Reemplaza cualquier sesión previa.
func (m *Manager) Login(ctx context.Context, email string) (auth.UserContext, error) {
	uc, err := auth.NewUserContext(email)
	if err != nil {
		if err == auth.ErrNoSession {
			return auth.UserContext{}, auth.ErrInvalidEmail
		}
		return auth.UserContext{}, err
	}

	if err := m.store.Set(ctx, PointerKey, uc.Email); err != nil {
		return auth.UserContext{}, fmt.Errorf("session: write pointer: %w", err)
	}

	m.log.Info("session started", map[string]any{"user": uc.Email})
	return uc, nil
}

// Logout borra sólo el puntero; profile/health/reminders quedan intactos.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Remove(ctx, PointerKey); err != nil {
		return fmt.Errorf("session: remove pointer: %w", err)
	}
	m.log.Info("session closed", nil)
	return nil
}

// Current devuelve el usuario persistido. Un puntero ilegible cuenta como ausente.
func (m *Manager) Current(ctx context.Context) (auth.UserContext, bool, error) {
	raw, ok, err := m.store.Get(ctx, PointerKey)
	if err != nil {
		return auth.UserContext{}, false, fmt.Errorf("session: read pointer: %w", err)
	}
	if !ok {
		return auth.UserContext{}, false, nil
	}

	uc, err := auth.NewUserContext(raw)
	if err != nil {
		m.log.Warn("ignoring invalid session pointer", map[string]any{"value": raw})
		return auth.UserContext{}, false, nil
	}
	return uc, true, nil
}

var _ auth.SessionResolver = (*Manager)(nil)
