package profile

import (
	"context"

	"petpal/internal/platform/records"
	"petpal/internal/ports/auth"
	"petpal/internal/ports/kv"
)

// RecordKind es el prefijo de key: profile-<email>.
const RecordKind = "profile"

type Repository interface {
	Load(ctx context.Context, uc auth.UserContext) (Record, error)
	Save(ctx context.Context, uc auth.UserContext, rec Record) error
}

func NewRepository(store kv.Store, opts ...records.Option) *records.Repository[Record] {
	return records.New[Record](store, RecordKind, opts...)
}
