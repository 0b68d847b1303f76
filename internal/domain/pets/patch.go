package pets

import (
	"strings"
	"time"

	"busca-pet/internal/platform/apperr"
	"busca-pet/internal/platform/patch"
)

// Fields son los datos propios de la mascota al crearla (sin dirección).
type Fields struct {
	Type          Type
	Photo         *string
	Name          string
	AgeCategory   AgeCategory
	SizeCategory  SizeCategory
	Breed         string
	ContactInfo   string
	Sex           Sex
	Description   string
	Observations  *string
	DisappearedAt time.Time
}

func (f Fields) Normalize() Fields {
	f.Type = Type(strings.TrimSpace(string(f.Type)))
	f.Photo = trimOptional(f.Photo)
	f.Name = strings.TrimSpace(f.Name)
	f.AgeCategory = AgeCategory(strings.TrimSpace(string(f.AgeCategory)))
	f.SizeCategory = SizeCategory(strings.TrimSpace(string(f.SizeCategory)))
	f.Breed = strings.TrimSpace(f.Breed)
	f.ContactInfo = strings.TrimSpace(f.ContactInfo)
	f.Sex = Sex(strings.TrimSpace(string(f.Sex)))
	f.Description = strings.TrimSpace(f.Description)
	f.Observations = trimOptional(f.Observations)
	return f
}

func (f Fields) Validate() error {
	if !f.Type.Valid() {
		return apperr.Validation("type", "must be one of Dog, Cat, Bird, Other")
	}
	if !f.AgeCategory.Valid() {
		return apperr.Validation("age_category", "must be one of Puppy, Adult, Senior")
	}
	if !f.SizeCategory.Valid() {
		return apperr.Validation("size_category", "must be one of Small, Medium, Large")
	}
	if !f.Sex.Valid() {
		return apperr.Validation("sex", "must be one of Male, Female")
	}

	required := []struct {
		field string
		value string
	}{
		{"name", f.Name},
		{"breed", f.Breed},
		{"contact_info", f.ContactInfo},
		{"description", f.Description},
	}
	for _, r := range required {
		if r.value == "" {
			return apperr.Validation(r.field, "is required")
		}
	}

	if f.DisappearedAt.IsZero() {
		return apperr.Validation("disappeared_at", "is required")
	}
	return nil
}

func (f Fields) toPet(addressID int64) Pet {
	return Pet{
		Type:          f.Type,
		Photo:         f.Photo,
		Name:          f.Name,
		AgeCategory:   f.AgeCategory,
		SizeCategory:  f.SizeCategory,
		Breed:         f.Breed,
		ContactInfo:   f.ContactInfo,
		Sex:           f.Sex,
		Description:   f.Description,
		Observations:  f.Observations,
		DisappearedAt: f.DisappearedAt,
		AddressID:     addressID,
	}
}

// Patch enumera cada campo actualizable de Pet.
// Set=false => no se toca. Photo/Observations con Value nil => se limpian.
type Patch struct {
	Type          patch.Field[Type]
	Photo         patch.Field[*string]
	Name          patch.Field[string]
	AgeCategory   patch.Field[AgeCategory]
	SizeCategory  patch.Field[SizeCategory]
	Breed         patch.Field[string]
	ContactInfo   patch.Field[string]
	Sex           patch.Field[Sex]
	Description   patch.Field[string]
	Observations  patch.Field[*string]
	DisappearedAt patch.Field[time.Time]
	AddressID     patch.Field[int64]
}

func (p Patch) IsEmpty() bool {
	return !p.Type.Set && !p.Photo.Set && !p.Name.Set && !p.AgeCategory.Set &&
		!p.SizeCategory.Set && !p.Breed.Set && !p.ContactInfo.Set && !p.Sex.Set &&
		!p.Description.Set && !p.Observations.Set && !p.DisappearedAt.Set && !p.AddressID.Set
}

func (p Patch) Normalize() Patch {
	trim := func(f patch.Field[string]) patch.Field[string] {
		if f.Set {
			f.Value = strings.TrimSpace(f.Value)
		}
		return f
	}

	p.Name = trim(p.Name)
	p.Breed = trim(p.Breed)
	p.ContactInfo = trim(p.ContactInfo)
	p.Description = trim(p.Description)
	if p.Type.Set {
		p.Type.Value = Type(strings.TrimSpace(string(p.Type.Value)))
	}
	if p.AgeCategory.Set {
		p.AgeCategory.Value = AgeCategory(strings.TrimSpace(string(p.AgeCategory.Value)))
	}
	if p.SizeCategory.Set {
		p.SizeCategory.Value = SizeCategory(strings.TrimSpace(string(p.SizeCategory.Value)))
	}
	if p.Sex.Set {
		p.Sex.Value = Sex(strings.TrimSpace(string(p.Sex.Value)))
	}
	if p.Photo.Set {
		p.Photo.Value = trimOptional(p.Photo.Value)
	}
	if p.Observations.Set {
		p.Observations.Value = trimOptional(p.Observations.Value)
	}
	return p
}

// Validate: los campos obligatorios provistos no pueden quedar vacíos
// y los enums deben caer en su conjunto cerrado.
func (p Patch) Validate() error {
	if p.Type.Set && !p.Type.Value.Valid() {
		return apperr.Validation("type", "must be one of Dog, Cat, Bird, Other")
	}
	if p.AgeCategory.Set && !p.AgeCategory.Value.Valid() {
		return apperr.Validation("age_category", "must be one of Puppy, Adult, Senior")
	}
	if p.SizeCategory.Set && !p.SizeCategory.Value.Valid() {
		return apperr.Validation("size_category", "must be one of Small, Medium, Large")
	}
	if p.Sex.Set && !p.Sex.Value.Valid() {
		return apperr.Validation("sex", "must be one of Male, Female")
	}

	required := []struct {
		field string
		f     patch.Field[string]
	}{
		{"name", p.Name},
		{"breed", p.Breed},
		{"contact_info", p.ContactInfo},
		{"description", p.Description},
	}
	for _, r := range required {
		if r.f.Set && r.f.Value == "" {
			return apperr.Validation(r.field, "cannot be empty")
		}
	}

	if p.DisappearedAt.Set && p.DisappearedAt.Value.IsZero() {
		return apperr.Validation("disappeared_at", "cannot be empty")
	}
	if p.AddressID.Set && p.AddressID.Value <= 0 {
		return apperr.Validation("address_id", "must be a positive id")
	}
	return nil
}

// ApplyTo copia sobre pet solo los campos provistos.
// Si cambia AddressID, Address queda desactualizada: la resuelve el store.
func (p Patch) ApplyTo(pet *Pet) {
	p.Type.Apply(&pet.Type)
	p.Photo.Apply(&pet.Photo)
	p.Name.Apply(&pet.Name)
	p.AgeCategory.Apply(&pet.AgeCategory)
	p.SizeCategory.Apply(&pet.SizeCategory)
	p.Breed.Apply(&pet.Breed)
	p.ContactInfo.Apply(&pet.ContactInfo)
	p.Sex.Apply(&pet.Sex)
	p.Description.Apply(&pet.Description)
	p.Observations.Apply(&pet.Observations)
	p.DisappearedAt.Apply(&pet.DisappearedAt)
	p.AddressID.Apply(&pet.AddressID)
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
