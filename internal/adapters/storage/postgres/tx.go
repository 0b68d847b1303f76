package postgres

import (
	"context"
	"database/sql"
	"errors"

	"busca-pet/internal/domain/pets"
	"busca-pet/internal/platform/apperr"
	"busca-pet/internal/platform/logger"
)

// UnitOfWork abre una *sql.Tx por llamada y le pasa al callback repos atados a ella.
type UnitOfWork struct {
	db  *sql.DB
	log logger.Logger
}

func NewUnitOfWork(db *sql.DB, log logger.Logger) *UnitOfWork {
	if log == nil {
		log = logger.Nop()
	}
	return &UnitOfWork{db: db, log: log}
}

func (u *UnitOfWork) Do(ctx context.Context, fn pets.TxFunc) error {
	return u.run(ctx, nil, fn)
}

func (u *UnitOfWork) View(ctx context.Context, fn pets.TxFunc) error {
	return u.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (u *UnitOfWork) run(ctx context.Context, opts *sql.TxOptions, fn pets.TxFunc) (err error) {
	tx, err := u.db.BeginTx(ctx, opts)
	if err != nil {
		return apperr.Storage("transaction", "begin", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				u.log.Error("rollback after panic failed", map[string]any{"err": rbErr})
			}
			panic(p)
		}
	}()

	if err := fn(ctx, Stores(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			u.log.Error("rollback failed", map[string]any{"err": rbErr, "cause": err})
			return errors.Join(err, apperr.Storage("transaction", "rollback", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return apperr.Storage("transaction", "commit", err)
	}
	return nil
}

// Stores arma los repos sobre q (una tx o el pool).
func Stores(q DBTX) pets.Stores {
	return pets.Stores{
		Pets:      NewPetsRepo(q),
		Addresses: NewAddressesRepo(q),
	}
}
