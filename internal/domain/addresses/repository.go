package addresses

import (
	"context"
	"errors"
)

// ErrReferenced: la dirección todavía pertenece a una mascota y no se puede borrar.
var ErrReferenced = errors.New("address is referenced by a pet")

// Repository es el Address Store. Un faltante se informa con found=false, nunca con error.
type Repository interface {
	Create(ctx context.Context, in Input) (Address, error)
	GetByID(ctx context.Context, id int64) (Address, bool, error)
	Update(ctx context.Context, id int64, p Patch) (Address, bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
