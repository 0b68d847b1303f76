package pets

import (
	"context"

	"busca-pet/internal/domain/addresses"
)

// Repository es el Pet Store. Toda lectura devuelve Address ya resuelta.
type Repository interface {
	Create(ctx context.Context, p Pet) (Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, bool, error)
	Update(ctx context.Context, id int64, p Patch) (Pet, bool, error)
	Delete(ctx context.Context, id int64) (bool, error)

	// AddressInUse indica si alguna mascota distinta de exceptPetID apunta a la dirección.
	AddressInUse(ctx context.Context, addressID, exceptPetID int64) (bool, error)

	// Search devuelve la página pedida y el total de coincidencias sin paginar,
	// ordenado por created_at DESC, id DESC.
	Search(ctx context.Context, q SearchQuery) ([]Pet, int, error)
}

// Stores son los repos atados a una misma transacción.
type Stores struct {
	Pets      Repository
	Addresses addresses.Repository
}

// TxFunc corre dentro de una unidad de trabajo. Error => rollback.
type TxFunc func(ctx context.Context, s Stores) error

// UnitOfWork abre una transacción por llamada y garantiza commit o rollback
// en toda salida (incluido panic).
type UnitOfWork interface {
	Do(ctx context.Context, fn TxFunc) error
	// View es igual pero de solo lectura.
	View(ctx context.Context, fn TxFunc) error
}
