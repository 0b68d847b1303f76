package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"busca-pet/internal/domain/pets"
	"busca-pet/internal/platform/apperr"
)

type petRepo struct {
	st       *state
	now      func() time.Time
	readOnly bool
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	if r.readOnly {
		return pets.Pet{}, apperr.Storage("pet", "create", errReadOnly)
	}
	if _, ok := r.st.addresses[p.AddressID]; !ok {
		return pets.Pet{}, apperr.Storage("pet", "create", errForeignKey)
	}

	r.st.nextPetID++
	now := r.now()
	p.ID = r.st.nextPetID
	p.CreatedAt = now
	p.UpdatedAt = now

	r.st.pets[p.ID] = p
	return r.resolve(p), nil
}

func (r *petRepo) GetByID(ctx context.Context, id int64) (pets.Pet, bool, error) {
	p, ok := r.st.pets[id]
	if !ok {
		return pets.Pet{}, false, nil
	}
	return r.resolve(p), true, nil
}

func (r *petRepo) Update(ctx context.Context, id int64, patch pets.Patch) (pets.Pet, bool, error) {
	if r.readOnly {
		return pets.Pet{}, false, apperr.Storage("pet", "update", errReadOnly)
	}

	p, ok := r.st.pets[id]
	if !ok {
		return pets.Pet{}, false, nil
	}

	patch.ApplyTo(&p)
	if _, ok := r.st.addresses[p.AddressID]; !ok {
		return pets.Pet{}, false, apperr.Storage("pet", "update", errForeignKey)
	}
	p.UpdatedAt = r.now()

	r.st.pets[id] = p
	return r.resolve(p), true, nil
}

func (r *petRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if r.readOnly {
		return false, apperr.Storage("pet", "delete", errReadOnly)
	}

	if _, ok := r.st.pets[id]; !ok {
		return false, nil
	}
	delete(r.st.pets, id)
	return true, nil
}

func (r *petRepo) AddressInUse(ctx context.Context, addressID, exceptPetID int64) (bool, error) {
	for _, p := range r.st.pets {
		if p.AddressID == addressID && p.ID != exceptPetID {
			return true, nil
		}
	}
	return false, nil
}

func (r *petRepo) Search(ctx context.Context, q pets.SearchQuery) ([]pets.Pet, int, error) {
	f := q.Filter
	name := strings.ToLower(f.Name)
	city := strings.ToLower(f.City)

	matches := make([]pets.Pet, 0)
	for _, p := range r.st.pets {
		if name != "" && !strings.Contains(strings.ToLower(p.Name), name) {
			continue
		}
		if f.Type != "" && p.Type != f.Type {
			continue
		}
		if city != "" {
			a := r.st.addresses[p.AddressID]
			if !strings.Contains(strings.ToLower(a.City), city) {
				continue
			}
		}
		if f.HasDateRange() {
			if p.DisappearedAt.Before(*f.DisappearedFrom) || p.DisappearedAt.After(*f.DisappearedTo) {
				continue
			}
		}
		matches = append(matches, p)
	}

	// Orden estable: created_at desc, id desc
	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].CreatedAt.Equal(matches[j].CreatedAt) {
			return matches[i].CreatedAt.After(matches[j].CreatedAt)
		}
		return matches[i].ID > matches[j].ID
	})

	total := len(matches)
	start := q.Page.Offset()
	if start >= total {
		return []pets.Pet{}, total, nil
	}
	end := start + q.Page.Size
	if end > total {
		end = total
	}

	out := make([]pets.Pet, 0, end-start)
	for _, p := range matches[start:end] {
		out = append(out, r.resolve(p))
	}
	return out, total, nil
}

func (r *petRepo) resolve(p pets.Pet) pets.Pet {
	p.Address = r.st.addresses[p.AddressID]
	return p
}
