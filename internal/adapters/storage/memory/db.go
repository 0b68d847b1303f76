package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"busca-pet/internal/domain/addresses"
	"busca-pet/internal/domain/pets"
	"busca-pet/internal/platform/apperr"
)

var (
	errReadOnly   = errors.New("write attempted in read-only unit of work")
	errForeignKey = errors.New("foreign key violation")
)

// DB es un almacenamiento en memoria con semántica transaccional:
// cada unidad de trabajo opera sobre una copia y solo se publica si no hubo error.
// Pensado para dev y tests (no persiste nada).
type DB struct {
	mu    sync.Mutex
	now   func() time.Time
	state *state
}

func NewDB() *DB {
	return &DB{
		now:   time.Now,
		state: newState(),
	}
}

// SetClock permite fijar el reloj (tests).
func (db *DB) SetClock(now func() time.Time) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.now = now
}

// Counts devuelve la cantidad de filas por tabla.
func (db *DB) Counts() (petsN, addressesN int) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.state.pets), len(db.state.addresses)
}

type state struct {
	nextAddressID int64
	nextPetID     int64

	addresses map[int64]addresses.Address
	pets      map[int64]pets.Pet
}

func newState() *state {
	return &state{
		addresses: make(map[int64]addresses.Address),
		pets:      make(map[int64]pets.Pet),
	}
}

func (s *state) clone() *state {
	out := &state{
		nextAddressID: s.nextAddressID,
		nextPetID:     s.nextPetID,
		addresses:     make(map[int64]addresses.Address, len(s.addresses)),
		pets:          make(map[int64]pets.Pet, len(s.pets)),
	}
	for k, v := range s.addresses {
		out.addresses[k] = v
	}
	// Pet tiene punteros (Photo/Observations) pero nunca se mutan in-place.
	for k, v := range s.pets {
		out.pets[k] = v
	}
	return out
}

// UnitOfWork implementa pets.UnitOfWork sobre DB. Serializa todas las unidades.
type UnitOfWork struct {
	db *DB
}

func NewUnitOfWork(db *DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

func (u *UnitOfWork) Do(ctx context.Context, fn pets.TxFunc) error {
	if err := ctx.Err(); err != nil {
		return apperr.Storage("transaction", "begin", err)
	}

	u.db.mu.Lock()
	defer u.db.mu.Unlock()

	work := u.db.state.clone()
	if err := fn(ctx, u.db.stores(work, false)); err != nil {
		return err // la copia se descarta: rollback
	}
	if err := ctx.Err(); err != nil {
		return apperr.Storage("transaction", "commit", err)
	}

	u.db.state = work
	return nil
}

func (u *UnitOfWork) View(ctx context.Context, fn pets.TxFunc) error {
	if err := ctx.Err(); err != nil {
		return apperr.Storage("transaction", "begin", err)
	}

	u.db.mu.Lock()
	defer u.db.mu.Unlock()

	return fn(ctx, u.db.stores(u.db.state, true))
}

func (db *DB) stores(st *state, readOnly bool) pets.Stores {
	return pets.Stores{
		Pets:      &petRepo{st: st, now: db.now, readOnly: readOnly},
		Addresses: &addressRepo{st: st, now: db.now, readOnly: readOnly},
	}
}
