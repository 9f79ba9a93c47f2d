package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"petpal/internal/platform/logger"
	"petpal/internal/platform/metrics"
	"petpal/internal/ports/auth"
	"petpal/internal/ports/kv"

	"github.com/go-playground/validator/v10"
)

var (
	ErrAbsent = errors.New("record absent")
)

// DecodeError indica que el valor guardado no es JSON válido o no pasa la validación del schema.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode record %s: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsDecodeError reporta si err (o alguno envuelto) es *DecodeError.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

var validate = validator.New()

// Repository es el repositorio tipado por kind: una key por usuario (<kind>-<email>),
// y cada escritura reemplaza el valor completo.
type Repository[T any] struct {
	store   kv.Store
	kind    string
	log     logger.Logger
	metrics *metrics.Metrics

	locks keyedMutex
}

type Option func(*options)

type options struct {
	log     logger.Logger
	metrics *metrics.Metrics
}

func WithLogger(l logger.Logger) Option {
	return func(o *options) { o.log = l }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

func New[T any](store kv.Store, kind string, opts ...Option) *Repository[T] {
	o := options{}
	for _, fn := range opts {
		fn(&o)
	}
	if o.log == nil {
		o.log = logger.Nop()
	}
	return &Repository[T]{
		store:   store,
		kind:    kind,
		log:     o.log.With(map[string]any{"record": kind}),
		metrics: o.metrics,
	}
}

func (r *Repository[T]) Kind() string { return r.kind }

func (r *Repository[T]) Key(uc auth.UserContext) string {
	return uc.Key(r.kind)
}

// Load devuelve ErrAbsent si la key no existe y *DecodeError si el payload es inválido.
func (r *Repository[T]) Load(ctx context.Context, uc auth.UserContext) (T, error) {
	var zero T
	if !uc.Valid() {
		return zero, auth.ErrNoSession
	}
	return r.load(ctx, r.Key(uc))
}

func (r *Repository[T]) load(ctx context.Context, key string) (T, error) {
	var v T

	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return v, fmt.Errorf("records: get %s: %w", key, err)
	}
	if !ok {
		return v, ErrAbsent
	}

	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return r.decodeFailed(key, err)
	}
	if err := validateValue(v); err != nil {
		return r.decodeFailed(key, err)
	}
	return v, nil
}

func (r *Repository[T]) decodeFailed(key string, err error) (T, error) {
	var zero T
	r.metrics.DecodeFailure(r.kind)
	r.log.Warn("stored record is invalid", map[string]any{"key": key, "err": err})
	return zero, &DecodeError{Key: key, Err: err}
}

// Save valida y reemplaza el valor completo de la key.
func (r *Repository[T]) Save(ctx context.Context, uc auth.UserContext, v T) error {
	if !uc.Valid() {
		return auth.ErrNoSession
	}
	return r.save(ctx, r.Key(uc), v)
}

func (r *Repository[T]) save(ctx context.Context, key string, v T) error {
	if err := validateValue(v); err != nil {
		return fmt.Errorf("records: validate %s: %w", key, err)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("records: marshal %s: %w", key, err)
	}
	if err := r.store.Set(ctx, key, string(b)); err != nil {
		return fmt.Errorf("records: set %s: %w", key, err)
	}
	return nil
}

func (r *Repository[T]) Delete(ctx context.Context, uc auth.UserContext) error {
	if !uc.Valid() {
		return auth.ErrNoSession
	}
	return r.store.Remove(ctx, r.Key(uc))
}

// UpdateFunc recibe el valor actual y su estado:
// - err == nil => registro presente
// - errors.Is(err, ErrAbsent) => nunca escrito
// - IsDecodeError(err) => payload inválido
// Debe devolver el valor completo a persistir. Si devuelve error no se escribe nada.
type UpdateFunc[T any] func(cur T, loadErr error) (T, error)

// Update es el read-modify-write serializado por key.
func (r *Repository[T]) Update(ctx context.Context, uc auth.UserContext, fn UpdateFunc[T]) (T, error) {
	var zero T
	if !uc.Valid() {
		return zero, auth.ErrNoSession
	}
	key := r.Key(uc)

	unlock := r.locks.lock(key)
	defer unlock()

	cur, err := r.load(ctx, key)
	if err != nil && !errors.Is(err, ErrAbsent) && !IsDecodeError(err) {
		return zero, err
	}

	next, err := fn(cur, err)
	if err != nil {
		return zero, err
	}
	if err := r.save(ctx, key, next); err != nil {
		return zero, err
	}
	return next, nil
}

func validateValue(v any) error {
	err := validate.Struct(v)
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		// T no es struct (p.ej. string): no hay schema que validar.
		return nil
	}
	return err
}

// keyedMutex serializa escritores por key.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*refMutex)
	}
	m, ok := k.locks[key]
	if !ok {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()
		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
