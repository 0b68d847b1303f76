package pets

import (
	"context"
	"errors"

	"busca-pet/internal/domain/addresses"
	"busca-pet/internal/platform/apperr"
	"busca-pet/internal/platform/logger"
	"busca-pet/internal/platform/metrics"
	"busca-pet/internal/platform/patch"
)

var (
	ErrAddressRequired = apperr.Validation("address", "address is required")
	ErrAddressNotFound = apperr.Validation("address_id", "address not found")
	ErrAddressConflict = apperr.Validation("address", "address and address_id cannot be sent together")
	ErrAddressInUse    = apperr.Validation("address_id", "address already belongs to another pet")
)

// Service es el agregado Pet+Address: cada escritura corre en una sola unidad de trabajo.
type Service struct {
	uow     UnitOfWork
	log     logger.Logger
	metrics *metrics.Metrics
}

func NewService(uow UnitOfWork, log logger.Logger, m *metrics.Metrics) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		uow:     uow,
		log:     log,
		metrics: m,
	}
}

type CreateInput struct {
	Pet     Fields
	Address *addresses.Input // obligatorio
}

// UpdateInput: Address actualiza la dirección actual in-place;
// Pet.AddressID re-apunta a una dirección existente. Son excluyentes.
type UpdateInput struct {
	Pet     Patch
	Address *addresses.Patch
}

func (s *Service) CreatePetWithAddress(ctx context.Context, in CreateInput) (Pet, error) {
	log := s.logger(ctx)

	if in.Address == nil {
		s.metrics.ObserveWrite("create", "invalid")
		log.Warn("create pet rejected", map[string]any{"reason": ErrAddressRequired.Error()})
		return Pet{}, ErrAddressRequired
	}

	fields := in.Pet.Normalize()
	addrIn := in.Address.Normalize()
	if err := firstErr(fields.Validate(), addrIn.Validate()); err != nil {
		s.metrics.ObserveWrite("create", "invalid")
		log.Warn("create pet rejected", map[string]any{"reason": err.Error()})
		return Pet{}, err
	}

	var created Pet
	err := s.uow.Do(ctx, func(ctx context.Context, st Stores) error {
		addr, err := st.Addresses.Create(ctx, addrIn)
		if err != nil {
			return err
		}

		p, err := st.Pets.Create(ctx, fields.toPet(addr.ID))
		if err != nil {
			return err
		}
		p.Address = addr
		created = p
		return nil
	})
	s.metrics.ObserveWrite("create", outcome(err, true))
	if err != nil {
		log.Error("create pet failed", map[string]any{"err": err})
		return Pet{}, err
	}

	log.Info("pet created", map[string]any{"pet_id": created.ID, "address_id": created.AddressID})
	return created, nil
}

func (s *Service) GetPetByID(ctx context.Context, id int64) (Pet, bool, error) {
	var (
		p     Pet
		found bool
	)
	err := s.uow.View(ctx, func(ctx context.Context, st Stores) error {
		var err error
		p, found, err = st.Pets.GetByID(ctx, id)
		return err
	})
	if err != nil {
		s.logger(ctx).Error("get pet failed", map[string]any{"pet_id": id, "err": err})
		return Pet{}, false, err
	}
	if !found {
		s.logger(ctx).Debug("pet not found", map[string]any{"pet_id": id})
	}
	return p, found, nil
}

func (s *Service) SearchPets(ctx context.Context, filter SearchFilter, page PageRequest) (Page, error) {
	log := s.logger(ctx)

	filter = filter.Normalize()
	if err := filter.Validate(); err != nil {
		return Page{}, err
	}
	page = NewPageRequest(page.Number, page.Size)

	var (
		items []Pet
		total int
	)
	err := s.uow.View(ctx, func(ctx context.Context, st Stores) error {
		var err error
		items, total, err = st.Pets.Search(ctx, SearchQuery{Filter: filter, Page: page})
		return err
	})
	if err != nil {
		log.Error("search pets failed", map[string]any{"err": err})
		return Page{}, apperr.Query("pet", err)
	}
	if items == nil {
		items = []Pet{}
	}

	out := Page{
		Items:      items,
		TotalCount: total,
		PageNumber: page.Number,
		PageSize:   page.Size,
	}

	fields := filter.LogFields()
	fields["found"] = len(items)
	fields["total"] = total
	fields["page_number"] = page.Number
	log.Debug("pets searched", fields)

	return out, nil
}

func (s *Service) UpdatePetWithAddress(ctx context.Context, id int64, in UpdateInput) (Pet, bool, error) {
	log := s.logger(ctx).With(map[string]any{"pet_id": id})

	petPatch := in.Pet.Normalize()
	if err := petPatch.Validate(); err != nil {
		s.metrics.ObserveWrite("update", "invalid")
		log.Warn("update pet rejected", map[string]any{"reason": err.Error()})
		return Pet{}, false, err
	}

	var addrPatch *addresses.Patch
	if in.Address != nil {
		n := in.Address.Normalize()
		if err := n.Validate(); err != nil {
			s.metrics.ObserveWrite("update", "invalid")
			log.Warn("update pet rejected", map[string]any{"reason": err.Error()})
			return Pet{}, false, err
		}
		addrPatch = &n
	}
	if addrPatch != nil && petPatch.AddressID.Set {
		s.metrics.ObserveWrite("update", "invalid")
		return Pet{}, false, ErrAddressConflict
	}

	var (
		updated Pet
		found   bool
	)
	err := s.uow.Do(ctx, func(ctx context.Context, st Stores) error {
		current, ok, err := st.Pets.GetByID(ctx, id)
		if err != nil || !ok {
			return err
		}

		switch {
		case addrPatch != nil:
			_, ok, err := st.Addresses.Update(ctx, current.AddressID, *addrPatch)
			if err != nil {
				return err
			}
			if !ok {
				// La dirección actual ya no existe: se crea una y se re-apunta.
				newIn := addrPatch.ToInput()
				if err := newIn.Validate(); err != nil {
					return err
				}
				addr, err := st.Addresses.Create(ctx, newIn)
				if err != nil {
					return err
				}
				log.Warn("pet address missing, created a new one", map[string]any{
					"old_address_id": current.AddressID,
					"new_address_id": addr.ID,
				})
				petPatch.AddressID = patch.Value(addr.ID)
			}

		case petPatch.AddressID.Set && petPatch.AddressID.Value != current.AddressID:
			_, ok, err := st.Addresses.GetByID(ctx, petPatch.AddressID.Value)
			if err != nil {
				return err
			}
			if !ok {
				return ErrAddressNotFound
			}
			inUse, err := st.Pets.AddressInUse(ctx, petPatch.AddressID.Value, id)
			if err != nil {
				return err
			}
			if inUse {
				return ErrAddressInUse
			}
		}

		updated, found, err = st.Pets.Update(ctx, id, petPatch)
		if err != nil || !found {
			return err
		}

		// Re-apuntada: la dirección anterior no puede quedar huérfana.
		if updated.AddressID != current.AddressID {
			if _, err := releaseAddress(ctx, st, current.AddressID, id); err != nil {
				return err
			}
		}
		return nil
	})
	s.metrics.ObserveWrite("update", outcome(err, found))
	if err != nil {
		if errors.Is(err, apperr.ErrValidation) {
			log.Warn("update pet rejected", map[string]any{"reason": err.Error()})
		} else {
			log.Error("update pet failed", map[string]any{"err": err})
		}
		return Pet{}, false, err
	}
	if !found {
		log.Warn("pet not found for update", nil)
		return Pet{}, false, nil
	}

	log.Info("pet updated", map[string]any{"address_id": updated.AddressID})
	return updated, true, nil
}

// DeletePet borra la mascota y su dirección en la misma transacción.
func (s *Service) DeletePet(ctx context.Context, id int64) (bool, error) {
	log := s.logger(ctx).With(map[string]any{"pet_id": id})

	var deleted bool
	err := s.uow.Do(ctx, func(ctx context.Context, st Stores) error {
		current, ok, err := st.Pets.GetByID(ctx, id)
		if err != nil || !ok {
			return err
		}

		ok, err = st.Pets.Delete(ctx, id)
		if err != nil || !ok {
			return err
		}
		released, err := releaseAddress(ctx, st, current.AddressID, id)
		if err != nil {
			return err
		}
		if !released {
			log.Warn("pet address not removed", map[string]any{"address_id": current.AddressID})
		}
		deleted = true
		return nil
	})
	s.metrics.ObserveWrite("delete", outcome(err, deleted))
	if err != nil {
		log.Error("delete pet failed", map[string]any{"err": err})
		return false, err
	}
	if !deleted {
		log.Warn("pet not found for deletion", nil)
		return false, nil
	}

	log.Info("pet deleted", nil)
	return true, nil
}

// releaseAddress borra la dirección salvo que otra mascota la siga usando.
func releaseAddress(ctx context.Context, st Stores, addressID, petID int64) (bool, error) {
	inUse, err := st.Pets.AddressInUse(ctx, addressID, petID)
	if err != nil || inUse {
		return false, err
	}
	return st.Addresses.Delete(ctx, addressID)
}

func (s *Service) logger(ctx context.Context) logger.Logger {
	if l, ok := logger.FromContext(ctx); ok {
		return l
	}
	return s.log
}

func outcome(err error, found bool) string {
	switch {
	case err == nil && !found:
		return "not_found"
	case err == nil:
		return "ok"
	case errors.Is(err, apperr.ErrValidation):
		return "invalid"
	default:
		return "error"
	}
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
