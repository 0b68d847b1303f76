package addresses

import (
	"strings"

	"busca-pet/internal/platform/apperr"
	"busca-pet/internal/platform/patch"
)

// Patch lista explícitamente cada campo actualizable de Address.
// Campo no Set => no se toca.
type Patch struct {
	PostalCode   patch.Field[string]
	Street       patch.Field[string]
	Neighborhood patch.Field[string]
	City         patch.Field[string]
	State        patch.Field[string]
	Country      patch.Field[string]
}

func (p Patch) IsEmpty() bool {
	return !p.PostalCode.Set && !p.Street.Set && !p.Neighborhood.Set &&
		!p.City.Set && !p.State.Set && !p.Country.Set
}

// Normalize recorta los valores provistos. Country vacío vuelve al default.
func (p Patch) Normalize() Patch {
	trim := func(f patch.Field[string]) patch.Field[string] {
		if f.Set {
			f.Value = strings.TrimSpace(f.Value)
		}
		return f
	}

	out := Patch{
		PostalCode:   trim(p.PostalCode),
		Street:       trim(p.Street),
		Neighborhood: trim(p.Neighborhood),
		City:         trim(p.City),
		State:        trim(p.State),
		Country:      trim(p.Country),
	}
	if out.Country.Set && out.Country.Value == "" {
		out.Country.Value = DefaultCountry
	}
	return out
}

// Validate: un campo requerido provisto no puede quedar vacío.
func (p Patch) Validate() error {
	fields := []struct {
		name string
		f    patch.Field[string]
	}{
		{"address.postal_code", p.PostalCode},
		{"address.street", p.Street},
		{"address.neighborhood", p.Neighborhood},
		{"address.city", p.City},
		{"address.state", p.State},
	}
	for _, x := range fields {
		if x.f.Set && strings.TrimSpace(x.f.Value) == "" {
			return apperr.Validation(x.name, "cannot be empty")
		}
	}
	if p.PostalCode.Set {
		return validatePostalCode(p.PostalCode.Value)
	}
	return nil
}

// ApplyTo copia sobre a solo los campos provistos.
func (p Patch) ApplyTo(a *Address) {
	p.PostalCode.Apply(&a.PostalCode)
	p.Street.Apply(&a.Street)
	p.Neighborhood.Apply(&a.Neighborhood)
	p.City.Apply(&a.City)
	p.State.Apply(&a.State)
	p.Country.Apply(&a.Country)
}

// ToInput arma un Input con lo provisto (para crear una dirección nueva desde un patch).
// El resultado hay que validarlo: puede estar incompleto.
func (p Patch) ToInput() Input {
	var a Address
	p.ApplyTo(&a)
	return Input{
		PostalCode:   a.PostalCode,
		Street:       a.Street,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
		Country:      a.Country,
	}.Normalize()
}
