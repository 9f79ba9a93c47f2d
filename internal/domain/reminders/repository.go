package reminders

import (
	"context"

	"petpal/internal/platform/records"
	"petpal/internal/ports/auth"
	"petpal/internal/ports/kv"
)

const RecordKind = "reminders"

type Repository interface {
	Load(ctx context.Context, uc auth.UserContext) (Book, error)
	Update(ctx context.Context, uc auth.UserContext, fn records.UpdateFunc[Book]) (Book, error)
}

func NewRepository(store kv.Store, opts ...records.Option) *records.Repository[Book] {
	return records.New[Book](store, RecordKind, opts...)
}

// PetNamer da el nombre de la mascota para personalizar tareas. "" si no hay perfil.
type PetNamer interface {
	PetName(ctx context.Context, uc auth.UserContext) string
}
