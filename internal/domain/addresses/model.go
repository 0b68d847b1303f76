package addresses

import (
	"strings"
	"time"
	"unicode/utf8"

	"busca-pet/internal/platform/apperr"
)

// DefaultCountry se aplica cuando no viene país.
const DefaultCountry = "Brasil"

// CEP con o sin guión.
const (
	PostalCodeMinLen = 8
	PostalCodeMaxLen = 10
)

// Address es el lugar donde la mascota desapareció.
type Address struct {
	ID int64

	PostalCode   string
	Street       string
	Neighborhood string
	City         string
	State        string
	Country      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Input son los datos para crear una dirección (id y timestamps los asigna el store).
type Input struct {
	PostalCode   string
	Street       string
	Neighborhood string
	City         string
	State        string
	Country      string
}

// Normalize recorta espacios y completa el país por defecto.
func (in Input) Normalize() Input {
	out := Input{
		PostalCode:   strings.TrimSpace(in.PostalCode),
		Street:       strings.TrimSpace(in.Street),
		Neighborhood: strings.TrimSpace(in.Neighborhood),
		City:         strings.TrimSpace(in.City),
		State:        strings.TrimSpace(in.State),
		Country:      strings.TrimSpace(in.Country),
	}
	if out.Country == "" {
		out.Country = DefaultCountry
	}
	return out
}

// Validate exige todos los campos salvo country.
func (in Input) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"address.postal_code", in.PostalCode},
		{"address.street", in.Street},
		{"address.neighborhood", in.Neighborhood},
		{"address.city", in.City},
		{"address.state", in.State},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return apperr.Validation(r.field, "is required")
		}
	}
	return validatePostalCode(in.PostalCode)
}

func validatePostalCode(code string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(code))
	if n < PostalCodeMinLen || n > PostalCodeMaxLen {
		return apperr.Validation("address.postal_code", "must be between 8 and 10 characters")
	}
	return nil
}
