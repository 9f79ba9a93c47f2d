package dashboard

import (
	"context"
	"errors"
	"testing"

	"petpal/internal/adapters/storage/memory"
	"petpal/internal/domain/health"
	"petpal/internal/domain/profile"
	"petpal/internal/domain/reminders"
	"petpal/internal/domain/session"
	"petpal/internal/ports/auth"
	"petpal/internal/ports/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store     kv.Store
	profiles  *profile.Service
	health    *health.Service
	reminders *reminders.Service
	dash      *Dashboard
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureOn(t, memory.NewStore())
}

func newFixtureOn(t *testing.T, store kv.Store) *fixture {
	t.Helper()
	profiles := profile.NewService(profile.NewRepository(store))
	healthSvc := health.NewService(health.NewRepository(store))
	remSvc := reminders.NewService(reminders.NewRepository(store), profiles, nil)
	return &fixture{
		store:     store,
		profiles:  profiles,
		health:    healthSvc,
		reminders: remSvc,
		dash: New(Deps{
			Sessions:  session.NewManager(store, nil),
			Profiles:  profiles,
			Health:    healthSvc,
			Reminders: remSvc,
		}),
	}
}

func user(t *testing.T, email string) auth.UserContext {
	t.Helper()
	uc, err := auth.NewUserContext(email)
	require.NoError(t, err)
	return uc
}

func TestDashboard_StartsAnonymous(t *testing.T) {
	f := newFixture(t)
	st := f.dash.State()
	assert.False(t, st.Authenticated)
	assert.Equal(t, ScreenLogin, st.Screen)

	_, err := f.dash.Navigate(ScreenHome)
	assert.ErrorIs(t, err, auth.ErrNoSession)
	_, err = f.dash.PetAvatar(context.Background())
	assert.ErrorIs(t, err, auth.ErrNoSession)
}

func TestDashboard_NewVersusReturningUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.dash.Login(ctx, "new@example.com")
	require.NoError(t, err)
	assert.True(t, res.NewUser)
	assert.Equal(t, ScreenProfile, res.Screen)
	assert.Nil(t, res.State.Profile)

	_, err = f.profiles.Save(ctx, user(t, "old@example.com"), profile.SaveInput{Name: "Milo", Age: 4})
	require.NoError(t, err)

	res, err = f.dash.Login(ctx, "OLD@example.com")
	require.NoError(t, err)
	assert.False(t, res.NewUser)
	assert.Equal(t, ScreenHome, res.Screen)
	require.NotNil(t, res.State.Profile)
	assert.Equal(t, "Milo", res.State.Profile.Name)
	assert.Equal(t, "old@example.com", res.User)
}

func TestDashboard_LoginLoadsRecords(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uc := user(t, "ana@example.com")

	_, err := f.profiles.Save(ctx, uc, profile.SaveInput{Name: "Milo", Age: 4})
	require.NoError(t, err)
	_, err = f.reminders.Award(ctx, uc, reminders.EventAvatar)
	require.NoError(t, err)

	res, err := f.dash.Login(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Len(t, res.State.Entries, 2, "seeded health log")
	require.Len(t, res.State.Reminders, 2)
	assert.Equal(t, "Feed Milo morning meal", res.State.Reminders[0].Task)
	assert.Equal(t, 5, res.State.Points)
}

func TestDashboard_LogoutIsolation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := user(t, "ana@example.com")

	_, err := f.profiles.Save(ctx, ana, profile.SaveInput{Name: "Milo", Age: 4})
	require.NoError(t, err)
	_, _, _, err = f.health.Append(ctx, ana, health.AppendInput{Symptom: "ana-only symptom"})
	require.NoError(t, err)
	_, err = f.reminders.Create(ctx, ana, "ana-only task", "07:00")
	require.NoError(t, err)

	_, err = f.dash.Login(ctx, "ana@example.com")
	require.NoError(t, err)
	_, err = f.dash.PetAvatar(ctx)
	require.NoError(t, err)

	require.NoError(t, f.dash.Logout(ctx))
	st := f.dash.State()
	assert.False(t, st.Authenticated)
	assert.Empty(t, st.User)
	assert.Nil(t, st.Profile)
	assert.Empty(t, st.Entries)
	assert.Empty(t, st.Reminders)
	assert.Zero(t, st.Points)
	assert.Equal(t, ScreenLogin, st.Screen)

	res, err := f.dash.Login(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Nil(t, res.State.Profile)
	assert.Zero(t, res.State.Points)
	for _, e := range res.State.Entries {
		assert.NotEqual(t, "ana-only symptom", e.Symptom)
	}
	for _, r := range res.State.Reminders {
		assert.NotEqual(t, "ana-only task", r.Task)
	}

	// los registros de ana siguen persistidos
	p, err := f.profiles.Load(ctx, ana)
	require.NoError(t, err)
	assert.Equal(t, "Milo", p.Name)
}

func TestDashboard_RestorePersistedSession(t *testing.T) {
	store := memory.NewStore()
	first := newFixtureOn(t, store)
	ctx := context.Background()

	_, err := first.dash.Login(ctx, "ana@example.com")
	require.NoError(t, err)

	second := newFixtureOn(t, store)
	ok, err := second.dash.Restore(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	st := second.dash.State()
	assert.Equal(t, "ana@example.com", st.User)
	assert.Equal(t, ScreenHome, st.Screen)

	require.NoError(t, second.dash.Logout(ctx))
	third := newFixtureOn(t, store)
	ok, err = third.dash.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, ScreenLogin, third.dash.State().Screen)
}

func TestDashboard_NavigateAndRewards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.dash.Login(ctx, "ana@example.com")
	require.NoError(t, err)

	st, err := f.dash.PetAvatar(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, st.Points)
	assert.True(t, st.AvatarOpen)

	st, err = f.dash.ClickAction(ctx, "Care Tips")
	require.NoError(t, err)
	assert.Equal(t, ScreenCareTips, st.Screen)
	assert.Equal(t, 15, st.Points)
	assert.False(t, st.AvatarOpen, "navigating closes the avatar popup")

	st, err = f.dash.Navigate(ScreenCareTips)
	require.NoError(t, err)
	assert.Equal(t, ScreenCareTips, st.Screen)

	_, err = f.dash.Navigate(ScreenLogin)
	assert.ErrorIs(t, err, ErrUnknownScreen)
	_, err = f.dash.ClickAction(ctx, "Teleport")
	assert.ErrorIs(t, err, ErrUnknownAction)

	pts, err := f.reminders.Points(ctx, user(t, "ana@example.com"))
	require.NoError(t, err)
	assert.Equal(t, 15, pts, "view and ledger agree")
}

func TestDashboard_ListenersIgnoreOtherUsers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.dash.Login(ctx, "ana@example.com")
	require.NoError(t, err)

	bob := user(t, "bob@example.com")
	f.dash.OnPointsAwarded(bob, 999)
	f.dash.OnProfileSaved(bob, profile.Profile{Name: "Rex", Age: 2})
	f.dash.OnRemindersChanged(bob, nil)

	st := f.dash.State()
	assert.Zero(t, st.Points)
	assert.Nil(t, st.Profile)
	assert.Len(t, st.Reminders, 2)

	ana := user(t, "ana@example.com")
	f.dash.OnPointsAwarded(ana, 40)
	f.dash.OnProfileSaved(ana, profile.Profile{Name: "Milo", Age: 2})
	st = f.dash.State()
	assert.Equal(t, 40, st.Points)
	require.NotNil(t, st.Profile)
	assert.Equal(t, "Milo", st.Profile.Name)
}

func TestDashboard_LoginRejectsInvalidEmail(t *testing.T) {
	f := newFixture(t)
	_, err := f.dash.Login(context.Background(), "nope")
	assert.ErrorIs(t, err, auth.ErrInvalidEmail)
	assert.False(t, f.dash.State().Authenticated)
}

type flakyReminders struct {
	Reminders
	fail error
}

func (r *flakyReminders) Load(ctx context.Context, uc auth.UserContext) (reminders.Book, error) {
	if r.fail != nil {
		return reminders.Book{}, r.fail
	}
	return r.Reminders.Load(ctx, uc)
}

func TestDashboard_FailedLoginKeepsPreviousSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sessions := session.NewManager(f.store, nil)
	rem := &flakyReminders{Reminders: f.reminders}
	dash := New(Deps{
		Sessions:  sessions,
		Profiles:  f.profiles,
		Health:    f.health,
		Reminders: rem,
	})

	_, err := dash.Login(ctx, "a@example.com")
	require.NoError(t, err)

	rem.fail = errors.New("disk")
	_, err = dash.Login(ctx, "b@example.com")
	require.Error(t, err)

	cur, ok, err := sessions.Current(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "a@example.com", cur.Email)
	assert.Equal(t, "a@example.com", dash.State().User)
}
