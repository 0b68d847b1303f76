package memory

import (
	"context"
	"time"

	"busca-pet/internal/domain/addresses"
	"busca-pet/internal/platform/apperr"
)

type addressRepo struct {
	st       *state
	now      func() time.Time
	readOnly bool
}

func (r *addressRepo) Create(ctx context.Context, in addresses.Input) (addresses.Address, error) {
	if r.readOnly {
		return addresses.Address{}, apperr.Storage("address", "create", errReadOnly)
	}

	r.st.nextAddressID++
	now := r.now()
	a := addresses.Address{
		ID:           r.st.nextAddressID,
		PostalCode:   in.PostalCode,
		Street:       in.Street,
		Neighborhood: in.Neighborhood,
		City:         in.City,
		State:        in.State,
		Country:      in.Country,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if a.Country == "" {
		a.Country = addresses.DefaultCountry
	}

	r.st.addresses[a.ID] = a
	return a, nil
}

func (r *addressRepo) GetByID(ctx context.Context, id int64) (addresses.Address, bool, error) {
	a, ok := r.st.addresses[id]
	return a, ok, nil
}

func (r *addressRepo) Update(ctx context.Context, id int64, p addresses.Patch) (addresses.Address, bool, error) {
	if r.readOnly {
		return addresses.Address{}, false, apperr.Storage("address", "update", errReadOnly)
	}

	a, ok := r.st.addresses[id]
	if !ok {
		return addresses.Address{}, false, nil
	}

	p.ApplyTo(&a)
	a.UpdatedAt = r.now()
	r.st.addresses[id] = a
	return a, true, nil
}

func (r *addressRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if r.readOnly {
		return false, apperr.Storage("address", "delete", errReadOnly)
	}

	if _, ok := r.st.addresses[id]; !ok {
		return false, nil
	}
	// Igual que la FK en Postgres: no se borra una dirección referenciada.
	for _, p := range r.st.pets {
		if p.AddressID == id {
			return false, apperr.Storage("address", "delete", addresses.ErrReferenced)
		}
	}

	delete(r.st.addresses, id)
	return true, nil
}
