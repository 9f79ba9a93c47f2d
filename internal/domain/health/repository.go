package health

import (
	"context"

	"petpal/internal/platform/records"
	"petpal/internal/ports/auth"
	"petpal/internal/ports/kv"
)

const RecordKind = "health"

type Repository interface {
	Load(ctx context.Context, uc auth.UserContext) (Log, error)
	Update(ctx context.Context, uc auth.UserContext, fn records.UpdateFunc[Log]) (Log, error)
}

func NewRepository(store kv.Store, opts ...records.Option) *records.Repository[Log] {
	return records.New[Log](store, RecordKind, opts...)
}
