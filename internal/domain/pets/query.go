package pets

import (
	"math"
	"strconv"
	"strings"
	"time"

	"busca-pet/internal/platform/apperr"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// SearchFilter: todos opcionales, se combinan con AND.
// Name y City son substring case-insensitive; City se resuelve vía la dirección.
// El rango de fechas aplica sobre DisappearedAt y requiere ambos extremos.
type SearchFilter struct {
	Name            string
	Type            Type
	City            string
	DisappearedFrom *time.Time
	DisappearedTo   *time.Time
}

func (f SearchFilter) Normalize() SearchFilter {
	f.Name = strings.TrimSpace(f.Name)
	f.Type = Type(strings.TrimSpace(string(f.Type)))
	f.City = strings.TrimSpace(f.City)
	return f
}

func (f SearchFilter) Validate() error {
	if f.Type != "" && !f.Type.Valid() {
		return apperr.Validation("type", "must be one of Dog, Cat, Bird, Other")
	}
	// Un solo extremo es ambiguo: se rechaza en vez de ignorarlo.
	if (f.DisappearedFrom == nil) != (f.DisappearedTo == nil) {
		return apperr.Validation("date_range", "start_date and end_date must be supplied together")
	}
	if f.HasDateRange() && f.DisappearedFrom.After(*f.DisappearedTo) {
		return apperr.Validation("date_range", "start_date must not be after end_date")
	}
	return nil
}

func (f SearchFilter) HasDateRange() bool {
	return f.DisappearedFrom != nil && f.DisappearedTo != nil
}

// LogFields describe los filtros activos (para logs).
func (f SearchFilter) LogFields() map[string]any {
	out := map[string]any{}
	if f.Name != "" {
		out["filter_name"] = f.Name
	}
	if f.Type != "" {
		out["filter_type"] = string(f.Type)
	}
	if f.City != "" {
		out["filter_city"] = f.City
	}
	if f.HasDateRange() {
		out["filter_from"] = f.DisappearedFrom.Format(time.RFC3339)
		out["filter_to"] = f.DisappearedTo.Format(time.RFC3339)
	}
	return out
}

// PageRequest es 1-based.
type PageRequest struct {
	Number int
	Size   int
}

// NewPageRequest: number < 1 => 1; size fuera de [1,100] => 20.
func NewPageRequest(number, size int) PageRequest {
	if number < 1 {
		number = 1
	}
	if size < 1 || size > MaxPageSize {
		size = DefaultPageSize
	}
	// Tope para que Offset no desborde; una página así siempre sale vacía.
	if limit := math.MaxInt/size + 1; number > limit {
		number = limit
	}
	return PageRequest{Number: number, Size: size}
}

// ParsePageRequest parte de query params crudos; lo no parseable cae en defaults.
func ParsePageRequest(rawNumber, rawSize string) PageRequest {
	number, err := strconv.Atoi(strings.TrimSpace(rawNumber))
	if err != nil {
		number = 1
	}
	size, err := strconv.Atoi(strings.TrimSpace(rawSize))
	if err != nil {
		size = DefaultPageSize
	}
	return NewPageRequest(number, size)
}

func (p PageRequest) Offset() int {
	return (p.Number - 1) * p.Size
}

// SearchQuery es lo que recibe el store: filtros ya validados + página normalizada.
type SearchQuery struct {
	Filter SearchFilter
	Page   PageRequest
}

// Page es el resultado del composer: la página pedida + el total sin paginar.
type Page struct {
	Items      []Pet
	TotalCount int
	PageNumber int
	PageSize   int
}

func (p Page) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.TotalCount + p.PageSize - 1) / p.PageSize
}

func (p Page) HasNext() bool { return p.PageNumber < p.TotalPages() }

func (p Page) HasPrev() bool { return p.PageNumber > 1 }
