package dashboard

import (
	"context"
	"errors"
	"sync"

	"petpal/internal/domain/health"
	"petpal/internal/domain/profile"
	"petpal/internal/domain/reminders"
	"petpal/internal/platform/logger"
	"petpal/internal/platform/metrics"
	"petpal/internal/ports/auth"
)

var (
	ErrUnknownScreen = errors.New("unknown screen")
	ErrUnknownAction = errors.New("unknown action")
)

type Sessions interface {
	Login(ctx context.Context, email string) (auth.UserContext, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (auth.UserContext, bool, error)
}

type Profiles interface {
	Load(ctx context.Context, uc auth.UserContext) (profile.Profile, error)
}

type HealthLogs interface {
	Load(ctx context.Context, uc auth.UserContext) ([]health.Entry, error)
}

type Reminders interface {
	Load(ctx context.Context, uc auth.UserContext) (reminders.Book, error)
	Award(ctx context.Context, uc auth.UserContext, ev reminders.Event) (int, error)
}

type Deps struct {
	Sessions  Sessions
	Profiles  Profiles
	Health    HealthLogs
	Reminders Reminders
	Logger    logger.Logger
	Metrics   *metrics.Metrics
}

// Dashboard reemplaza al estado de vista + router de pantallas.
// Un solo usuario a la vez, igual que el puntero de sesión.
type Dashboard struct {
	deps Deps
	log  logger.Logger

	mu    sync.Mutex
	state State
}

type LoginResult struct {
	User    string `json:"user"`
	NewUser bool   `json:"new_user"`
	Screen  Screen `json:"screen"`
	State   State  `json:"state"`
}

func New(deps Deps) *Dashboard {
	l := deps.Logger
	if l == nil {
		l = logger.Nop()
	}
	return &Dashboard{
		deps:  deps,
		log:   l,
		state: anonymous(),
	}
}

// Login abre sesión y carga los registros del usuario en la vista.
// Usuario nuevo (sin perfil completo) va a onboarding (profile); recurrente a home.
func (d *Dashboard) Login(ctx context.Context, email string) (LoginResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	uc, err := auth.NewUserContext(email)
	if err != nil {
		return LoginResult{}, err
	}

	// El puntero se escribe sólo después de cargar los registros.
	next, newUser, err := d.load(ctx, uc)
	if err != nil {
		return LoginResult{}, err
	}
	if _, err := d.deps.Sessions.Login(ctx, uc.Email); err != nil {
		return LoginResult{}, err
	}
	if newUser {
		next.Screen = ScreenProfile
	} else {
		next.Screen = ScreenHome
	}
	d.state = next

	d.deps.Metrics.Login(newUser)
	d.log.Info("user logged in", map[string]any{"user": uc.Email, "new_user": newUser})

	return LoginResult{
		User:    uc.Email,
		NewUser: newUser,
		Screen:  next.Screen,
		State:   d.state.clone(),
	}, nil
}

// Logout borra el puntero y deja la vista en cero. Los registros no se tocan.
func (d *Dashboard) Logout(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.deps.Sessions.Logout(ctx); err != nil {
		return err
	}
	d.state = anonymous()
	return nil
}

// Restore adopta un puntero de sesión persistido (arranque de la app).
func (d *Dashboard) Restore(ctx context.Context) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	uc, ok, err := d.deps.Sessions.Current(ctx)
	if err != nil {
		return false, err
	}
	if !ok {
		d.state = anonymous()
		return false, nil
	}

	next, _, err := d.load(ctx, uc)
	if err != nil {
		return false, err
	}
	next.Screen = ScreenHome
	d.state = next

	d.log.Info("session restored", map[string]any{"user": uc.Email})
	return true, nil
}

func (d *Dashboard) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state.clone()
}

// User devuelve el usuario de la vista, si hay sesión.
func (d *Dashboard) User() (auth.UserContext, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.userLocked()
}

// Navigate no hace nada si ya está en esa pantalla.
func (d *Dashboard) Navigate(screen Screen) (State, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.userLocked(); !ok {
		return State{}, auth.ErrNoSession
	}
	if !screen.navigable() {
		return State{}, ErrUnknownScreen
	}
	d.navigateLocked(screen)
	return d.state.clone(), nil
}

// ClickAction navega a la pantalla del botón y premia +10.
func (d *Dashboard) ClickAction(ctx context.Context, action string) (State, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	uc, ok := d.userLocked()
	if !ok {
		return State{}, auth.ErrNoSession
	}
	screen, ok := actions[action]
	if !ok {
		return State{}, ErrUnknownAction
	}

	total, err := d.deps.Reminders.Award(ctx, uc, reminders.EventActionButton)
	if err != nil {
		return State{}, err
	}
	d.state.Points = total
	d.navigateLocked(screen)
	return d.state.clone(), nil
}

// PetAvatar premia +5 y abre/cierra el resumen del perfil.
func (d *Dashboard) PetAvatar(ctx context.Context) (State, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	uc, ok := d.userLocked()
	if !ok {
		return State{}, auth.ErrNoSession
	}

	total, err := d.deps.Reminders.Award(ctx, uc, reminders.EventAvatar)
	if err != nil {
		return State{}, err
	}
	d.state.Points = total
	d.state.AvatarOpen = !d.state.AvatarOpen
	return d.state.clone(), nil
}

// OnPointsAwarded mantiene Points en sync con el ledger persistido.
// Eventos de otro usuario se ignoran.
func (d *Dashboard) OnPointsAwarded(uc auth.UserContext, total int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.owns(uc) {
		d.state.Points = total
	}
}

func (d *Dashboard) OnProfileSaved(uc auth.UserContext, p profile.Profile) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.owns(uc) {
		d.state.Profile = &p
	}
}

func (d *Dashboard) OnHealthLogged(uc auth.UserContext, entries []health.Entry) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.owns(uc) {
		d.state.Entries = append([]health.Entry{}, entries...)
	}
}

func (d *Dashboard) OnRemindersChanged(uc auth.UserContext, items []reminders.Reminder) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.owns(uc) {
		d.state.Reminders = append([]reminders.Reminder{}, items...)
	}
}

func (d *Dashboard) load(ctx context.Context, uc auth.UserContext) (State, bool, error) {
	next := anonymous()
	next.Authenticated = true
	next.User = uc.Email

	newUser := true
	p, err := d.deps.Profiles.Load(ctx, uc)
	switch {
	case err == nil:
		next.Profile = &p
		newUser = !p.Complete()
	case errors.Is(err, profile.ErrNotFound):
	default:
		return State{}, false, err
	}

	entries, err := d.deps.Health.Load(ctx, uc)
	if err != nil {
		return State{}, false, err
	}
	next.Entries = entries

	book, err := d.deps.Reminders.Load(ctx, uc)
	if err != nil {
		return State{}, false, err
	}
	next.Reminders = book.Reminders
	next.Points = book.Points

	return next, newUser, nil
}

func (d *Dashboard) navigateLocked(screen Screen) {
	if d.state.Screen == screen {
		return
	}
	d.state.Screen = screen
	d.state.AvatarOpen = false
}

func (d *Dashboard) userLocked() (auth.UserContext, bool) {
	if !d.state.Authenticated {
		return auth.UserContext{}, false
	}
	return auth.UserContext{Email: d.state.User}, true
}

func (d *Dashboard) owns(uc auth.UserContext) bool {
	return d.state.Authenticated && uc.Valid() && d.state.User == uc.Email
}

var (
	_ profile.Listener   = (*Dashboard)(nil)
	_ health.Listener    = (*Dashboard)(nil)
	_ reminders.Listener = (*Dashboard)(nil)
)
