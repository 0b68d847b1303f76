package pets

import (
	"time"

	"busca-pet/internal/domain/addresses"
)

// Type define el tipo de mascota.
// @Enum Dog, Cat, Bird, Other
type Type string

const (
	TypeDog   Type = "Dog"
	TypeCat   Type = "Cat"
	TypeBird  Type = "Bird"
	TypeOther Type = "Other"
)

// AgeCategory define la franja de edad.
type AgeCategory string

const (
	AgePuppy  AgeCategory = "Puppy"
	AgeAdult  AgeCategory = "Adult"
	AgeSenior AgeCategory = "Senior"
)

// SizeCategory define el porte.
type SizeCategory string

const (
	SizeSmall  SizeCategory = "Small"
	SizeMedium SizeCategory = "Medium"
	SizeLarge  SizeCategory = "Large"
)

// Sex define el sexo de la mascota.
// @Enum Male, Female
type Sex string

const (
	SexMale   Sex = "Male"
	SexFemale Sex = "Female"
)

func (t Type) Valid() bool {
	switch t {
	case TypeDog, TypeCat, TypeBird, TypeOther:
		return true
	}
	return false
}

func (a AgeCategory) Valid() bool {
	switch a {
	case AgePuppy, AgeAdult, AgeSenior:
		return true
	}
	return false
}

func (s SizeCategory) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

func (s Sex) Valid() bool {
	switch s {
	case SexMale, SexFemale:
		return true
	}
	return false
}

// Pet es un reporte de mascota perdida.
// Siempre tiene exactamente una dirección (AddressID); Address viene resuelta en toda lectura.
type Pet struct {
	ID int64

	Type         Type
	Photo        *string // URL o base64, opaco
	Name         string
	AgeCategory  AgeCategory
	SizeCategory SizeCategory
	Breed        string
	ContactInfo  string
	Sex          Sex
	Description  string
	Observations *string

	DisappearedAt time.Time

	AddressID int64
	Address   addresses.Address

	CreatedAt time.Time
	UpdatedAt time.Time
}
