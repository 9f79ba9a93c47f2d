package health

import (
	"context"
	"testing"
	"time"

	"petpal/internal/adapters/storage/memory"
	"petpal/internal/ports/auth"
	"petpal/internal/ports/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 1, 22, 9, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, kv.Store) {
	t.Helper()
	store := memory.NewStore()
	svc := NewService(NewRepository(store))
	svc.now = func() time.Time { return fixedNow }
	return svc, store
}

func user(t *testing.T, email string) auth.UserContext {
	t.Helper()
	uc, err := auth.NewUserContext(email)
	require.NoError(t, err)
	return uc
}

func TestService_LoadSeedsNewUser(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	uc := user(t, "ana@example.com")

	entries, err := svc.Load(ctx, uc)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Slight limping on left paw", entries[0].Symptom)
	assert.Equal(t, "45", entries[0].Weight)
	assert.Equal(t, "2024-01-15", entries[0].Date)
	assert.Equal(t, "Normal checkup - all good!", entries[1].Symptom)
	assert.Equal(t, "44.5", entries[1].Weight)
	assert.Equal(t, "2024-01-10", entries[1].Date)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)

	_, ok, err := store.Get(ctx, "health-ana@example.com")
	require.NoError(t, err)
	assert.True(t, ok, "seed must be persisted")

	again, err := svc.Load(ctx, uc)
	require.NoError(t, err)
	assert.Equal(t, entries, again, "second load must not reseed")
}

func TestService_CorruptRecordBecomesEmpty(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	uc := user(t, "ana@example.com")

	require.NoError(t, store.Set(ctx, "health-ana@example.com", "[[["))

	entries, err := svc.Load(ctx, uc)
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)

	raw, _, _ := store.Get(ctx, "health-ana@example.com")
	assert.JSONEq(t, `{"email":"ana@example.com","logs":[]}`, raw)
}

func TestService_NullLogsNeverNil(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "health-ana@example.com", `{"email":"ana@example.com","logs":null}`))

	entries, err := svc.Load(ctx, user(t, "ana@example.com"))
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestService_AppendOrderingNewestFirst(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	uc := user(t, "ana@example.com")

	e1, _, _, err := svc.Append(ctx, uc, AppendInput{Symptom: "sneezing", Weight: "40"})
	require.NoError(t, err)
	e2, _, entries, err := svc.Append(ctx, uc, AppendInput{Date: "2024-01-21", Symptom: "itchy ears"})
	require.NoError(t, err)

	require.Len(t, entries, 4, "two new entries on top of the seed")
	assert.Equal(t, e2.ID, entries[0].ID)
	assert.Equal(t, e1.ID, entries[1].ID)

	loaded, err := svc.Load(ctx, user(t, "ANA@example.com"))
	require.NoError(t, err)
	assert.Equal(t, entries, loaded)

	assert.Equal(t, "2024-01-22", e1.Date, "empty date defaults to today")
	assert.Equal(t, NotRecorded, e2.Weight)
}

func TestService_AppendAdviceUsesPriorEntries(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	uc := user(t, "ana@example.com")

	// el seed más reciente pesa 45
	_, advice, _, err := svc.Append(ctx, uc, AppendInput{Symptom: "seems fine", Weight: "48"})
	require.NoError(t, err)
	assert.Equal(t, KindWeightGain, advice.Kind)

	_, advice, _, err = svc.Append(ctx, uc, AppendInput{Symptom: "seems fine", Weight: "48.5"})
	require.NoError(t, err)
	assert.Equal(t, KindWeightStable, advice.Kind)
}

func TestService_AppendValidates(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	uc := user(t, "ana@example.com")

	bad := []AppendInput{
		{Symptom: "   "},
		{Symptom: "ok", Date: "22/01/2024"},
		{Symptom: "ok", Weight: "heavy"},
		{Symptom: "ok", Weight: "-3"},
		{Symptom: "ok", Weight: "NaN"},
		{Symptom: "ok", Weight: "Inf"},
		{Symptom: "ok", Weight: "-inf"},
	}
	for _, in := range bad {
		_, _, _, err := svc.Append(ctx, uc, in)
		assert.ErrorIs(t, err, ErrInvalidInput, "input %+v", in)
	}

	_, ok, _ := store.Get(ctx, "health-ana@example.com")
	assert.False(t, ok, "rejected input must not touch the store")

	_, _, _, err := svc.Append(ctx, auth.UserContext{}, AppendInput{Symptom: "ok"})
	assert.ErrorIs(t, err, auth.ErrNoSession)
}

func TestService_SuggestDoesNotWrite(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	uc := user(t, "ana@example.com")

	_, err := svc.Load(ctx, uc)
	require.NoError(t, err)
	before, _, _ := store.Get(ctx, "health-ana@example.com")

	advice, err := svc.Suggest(ctx, uc, "choking on a toy", "")
	require.NoError(t, err)
	assert.Equal(t, KindUrgent, advice.Kind)

	after, _, _ := store.Get(ctx, "health-ana@example.com")
	assert.Equal(t, before, after)
}
