package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"busca-pet/internal/domain/addresses"
	"busca-pet/internal/platform/apperr"
	"busca-pet/internal/platform/patch"
)

const addressColumns = `id, postal_code, street, neighborhood, city, state, country, created_at, updated_at`

type AddressesRepo struct {
	q DBTX
}

func NewAddressesRepo(q DBTX) *AddressesRepo {
	return &AddressesRepo{q: q}
}

func (r *AddressesRepo) Create(ctx context.Context, in addresses.Input) (addresses.Address, error) {
	country := in.Country
	if country == "" {
		country = addresses.DefaultCountry
	}

	row := r.q.QueryRowContext(ctx, `
		INSERT INTO addresses (
			postal_code, street, neighborhood,
			city, state, country,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6, now(), now())
		RETURNING `+addressColumns,
		in.PostalCode,
		in.Street,
		in.Neighborhood,
		in.City,
		in.State,
		country,
	)

	a, err := scanAddress(row)
	if err != nil {
		return addresses.Address{}, apperr.Storage("address", "create", mapError(err))
	}
	return a, nil
}

func (r *AddressesRepo) GetByID(ctx context.Context, id int64) (addresses.Address, bool, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT `+addressColumns+`
		FROM addresses
		WHERE id = $1
	`, id)

	a, err := scanAddress(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return addresses.Address{}, false, nil
		}
		return addresses.Address{}, false, apperr.Storage("address", "get", err)
	}
	return a, true, nil
}

// Update sólo toca las columnas presentes en el patch; updated_at siempre se refresca.
func (r *AddressesRepo) Update(ctx context.Context, id int64, p addresses.Patch) (addresses.Address, bool, error) {
	var sets setBuilder
	addString(&sets, "postal_code", p.PostalCode)
	addString(&sets, "street", p.Street)
	addString(&sets, "neighborhood", p.Neighborhood)
	addString(&sets, "city", p.City)
	addString(&sets, "state", p.State)
	addString(&sets, "country", p.Country)
	sets.raw("updated_at = now()")

	args := append(sets.args, id)
	row := r.q.QueryRowContext(ctx, fmt.Sprintf(`
		UPDATE addresses
		SET %s
		WHERE id = $%d
		RETURNING %s`, sets.String(), len(args), addressColumns),
		args...,
	)

	a, err := scanAddress(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return addresses.Address{}, false, nil
		}
		return addresses.Address{}, false, apperr.Storage("address", "update", mapError(err))
	}
	return a, true, nil
}

func (r *AddressesRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			err = fmt.Errorf("%w: %w", addresses.ErrReferenced, mapError(err))
		} else {
			err = mapError(err)
		}
		return false, apperr.Storage("address", "delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, apperr.Storage("address", "delete", err)
	}
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAddress(row rowScanner) (addresses.Address, error) {
	var a addresses.Address
	err := row.Scan(
		&a.ID,
		&a.PostalCode,
		&a.Street,
		&a.Neighborhood,
		&a.City,
		&a.State,
		&a.Country,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

// setBuilder arma la lista "col = $n" de un UPDATE parcial.
type setBuilder struct {
	parts []string
	args  []any
}

func (b *setBuilder) add(col string, v any) {
	b.args = append(b.args, v)
	b.parts = append(b.parts, fmt.Sprintf("%s = $%d", col, len(b.args)))
}

func (b *setBuilder) raw(expr string) {
	b.parts = append(b.parts, expr)
}

func (b *setBuilder) String() string {
	return strings.Join(b.parts, ", ")
}

func addString(b *setBuilder, col string, f patch.Field[string]) {
	if f.Set {
		b.add(col, f.Value)
	}
}
