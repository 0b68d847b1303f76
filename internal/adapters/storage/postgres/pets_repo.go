package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"busca-pet/internal/domain/pets"
	"busca-pet/internal/platform/apperr"
	"busca-pet/internal/platform/patch"
)

// petSelect lee la mascota con su dirección en una sola consulta.
// Se usa sobre la tabla pets o sobre un CTE llamado p.
const petSelect = `
	SELECT
		p.id, p.type, p.photo, p.name,
		p.age_category, p.size_category, p.breed,
		p.contact_info, p.sex, p.description, p.observations,
		p.disappeared_at, p.address_id, p.created_at, p.updated_at,
		a.id, a.postal_code, a.street, a.neighborhood,
		a.city, a.state, a.country, a.created_at, a.updated_at`

const petFrom = `
	FROM %s p
	JOIN addresses a ON a.id = p.address_id`

type PetsRepo struct {
	q DBTX
}

func NewPetsRepo(q DBTX) *PetsRepo {
	return &PetsRepo{q: q}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	row := r.q.QueryRowContext(ctx, `
		WITH p AS (
			INSERT INTO pets (
				type, photo, name,
				age_category, size_category, breed,
				contact_info, sex, description, observations,
				disappeared_at, address_id,
				created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12, now(), now())
			RETURNING *
		)`+petSelect+fmt.Sprintf(petFrom, "p"),
		string(p.Type),
		p.Photo,
		p.Name,
		string(p.AgeCategory),
		string(p.SizeCategory),
		p.Breed,
		p.ContactInfo,
		string(p.Sex),
		p.Description,
		p.Observations,
		p.DisappearedAt,
		p.AddressID,
	)

	out, err := scanPet(row)
	if err != nil {
		return pets.Pet{}, apperr.Storage("pet", "create", mapError(err))
	}
	return out, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, bool, error) {
	row := r.q.QueryRowContext(ctx, petSelect+fmt.Sprintf(petFrom, "pets")+`
		WHERE p.id = $1`, id)

	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, false, nil
		}
		return pets.Pet{}, false, apperr.Storage("pet", "get", err)
	}
	return p, true, nil
}

func (r *PetsRepo) Update(ctx context.Context, id int64, p pets.Patch) (pets.Pet, bool, error) {
	var sets setBuilder
	addEnum(&sets, "type", p.Type)
	addOptional(&sets, "photo", p.Photo)
	addString(&sets, "name", p.Name)
	addEnum(&sets, "age_category", p.AgeCategory)
	addEnum(&sets, "size_category", p.SizeCategory)
	addString(&sets, "breed", p.Breed)
	addString(&sets, "contact_info", p.ContactInfo)
	addEnum(&sets, "sex", p.Sex)
	addString(&sets, "description", p.Description)
	addOptional(&sets, "observations", p.Observations)
	if p.DisappearedAt.Set {
		sets.add("disappeared_at", p.DisappearedAt.Value)
	}
	if p.AddressID.Set {
		sets.add("address_id", p.AddressID.Value)
	}
	sets.raw("updated_at = now()")

	args := append(sets.args, id)
	row := r.q.QueryRowContext(ctx, fmt.Sprintf(`
		WITH p AS (
			UPDATE pets
			SET %s
			WHERE id = $%d
			RETURNING *
		)`, sets.String(), len(args))+petSelect+fmt.Sprintf(petFrom, "p"),
		args...,
	)

	out, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, false, nil
		}
		return pets.Pet{}, false, apperr.Storage("pet", "update", mapError(err))
	}
	return out, true, nil
}

func (r *PetsRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return false, apperr.Storage("pet", "delete", mapError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, apperr.Storage("pet", "delete", err)
	}
	return n > 0, nil
}

func (r *PetsRepo) AddressInUse(ctx context.Context, addressID, exceptPetID int64) (bool, error) {
	var inUse bool
	err := r.q.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM pets
			WHERE address_id = $1 AND id <> $2
		)`, addressID, exceptPetID,
	).Scan(&inUse)
	if err != nil {
		return false, apperr.Storage("pet", "address in use", err)
	}
	return inUse, nil
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var (
		p            pets.Pet
		photo        sql.NullString
		observations sql.NullString
	)
	err := row.Scan(
		&p.ID,
		&p.Type,
		&photo,
		&p.Name,
		&p.AgeCategory,
		&p.SizeCategory,
		&p.Breed,
		&p.ContactInfo,
		&p.Sex,
		&p.Description,
		&observations,
		&p.DisappearedAt,
		&p.AddressID,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.Address.ID,
		&p.Address.PostalCode,
		&p.Address.Street,
		&p.Address.Neighborhood,
		&p.Address.City,
		&p.Address.State,
		&p.Address.Country,
		&p.Address.CreatedAt,
		&p.Address.UpdatedAt,
	)
	if err != nil {
		return pets.Pet{}, err
	}

	p.Photo = fromNullString(photo)
	p.Observations = fromNullString(observations)
	return p, nil
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func addEnum[T ~string](b *setBuilder, col string, f patch.Field[T]) {
	if f.Set {
		b.add(col, string(f.Value))
	}
}

// addOptional: Value nil => NULL.
func addOptional(b *setBuilder, col string, f patch.Field[*string]) {
	if !f.Set {
		return
	}
	if f.Value == nil {
		b.add(col, nil)
		return
	}
	b.add(col, *f.Value)
}
