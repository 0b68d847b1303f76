package pets

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"busca-pet/internal/domain/addresses"
	"busca-pet/internal/platform/apperr"
	"busca-pet/internal/platform/patch"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", searchPetsHandler(svc))
		pr.Post("/", createPetHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))
		// PUT y PATCH comparten semántica parcial
		pr.Put("/{petID}", updatePetHandler(svc))
		pr.Patch("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

// addressRequest es la dirección donde desapareció la mascota.
type addressRequest struct {
	PostalCode   string `json:"postal_code" validate:"required,min=8,max=10" example:"01310-100"`
	Street       string `json:"street" validate:"required,max=255" example:"Av. Paulista, 1000"`
	Neighborhood string `json:"neighborhood" validate:"required,max=100" example:"Bela Vista"`
	City         string `json:"city" validate:"required,max=100" example:"São Paulo"`
	State        string `json:"state" validate:"required,max=100" example:"SP"`
	Country      string `json:"country" validate:"omitempty,max=100" example:"Brasil"` // opcional, default Brasil
}

// createPetRequest es el cuerpo para registrar una mascota perdida.
type createPetRequest struct {
	Type          string          `json:"type" validate:"required,oneof=Dog Cat Bird Other" enums:"Dog,Cat,Bird,Other"`
	Photo         *string         `json:"photo"`
	Name          string          `json:"name" validate:"required,max=100"`
	AgeCategory   string          `json:"age_category" validate:"required,oneof=Puppy Adult Senior" enums:"Puppy,Adult,Senior"`
	SizeCategory  string          `json:"size_category" validate:"required,oneof=Small Medium Large" enums:"Small,Medium,Large"`
	Breed         string          `json:"breed" validate:"required,max=100"`
	ContactInfo   string          `json:"contact_info" validate:"required"`
	Sex           string          `json:"sex" validate:"required,oneof=Male Female" enums:"Male,Female"`
	Description   string          `json:"description" validate:"required"`
	Observations  *string         `json:"observations"`
	DisappearedAt string          `json:"disappeared_at" validate:"required" example:"2025-03-01T18:30:00Z"` // ISO-8601
	Address       *addressRequest `json:"address"`
}

// updateAddressRequest: sólo se tocan las claves presentes.
type updateAddressRequest struct {
	PostalCode   patch.Field[string] `json:"postal_code" swaggertype:"string"`
	Street       patch.Field[string] `json:"street" swaggertype:"string"`
	Neighborhood patch.Field[string] `json:"neighborhood" swaggertype:"string"`
	City         patch.Field[string] `json:"city" swaggertype:"string"`
	State        patch.Field[string] `json:"state" swaggertype:"string"`
	Country      patch.Field[string] `json:"country" swaggertype:"string"`
}

// updatePetRequest distingue clave ausente (no tocar) de null (limpiar photo/observations).
type updatePetRequest struct {
	Type          patch.Field[string]   `json:"type" swaggertype:"string" enums:"Dog,Cat,Bird,Other"`
	Photo         patch.Field[*string]  `json:"photo" swaggertype:"string"`
	Name          patch.Field[string]   `json:"name" swaggertype:"string"`
	AgeCategory   patch.Field[string]   `json:"age_category" swaggertype:"string" enums:"Puppy,Adult,Senior"`
	SizeCategory  patch.Field[string]   `json:"size_category" swaggertype:"string" enums:"Small,Medium,Large"`
	Breed         patch.Field[string]   `json:"breed" swaggertype:"string"`
	ContactInfo   patch.Field[string]   `json:"contact_info" swaggertype:"string"`
	Sex           patch.Field[string]   `json:"sex" swaggertype:"string" enums:"Male,Female"`
	Description   patch.Field[string]   `json:"description" swaggertype:"string"`
	Observations  patch.Field[*string]  `json:"observations" swaggertype:"string"`
	DisappearedAt patch.Field[*string]  `json:"disappeared_at" swaggertype:"string"`
	AddressID     patch.Field[int64]    `json:"address_id" swaggertype:"integer"`
	Address       *updateAddressRequest `json:"address"`
}

type addressResponse struct {
	ID           int64     `json:"id"`
	PostalCode   string    `json:"postal_code"`
	Street       string    `json:"street"`
	Neighborhood string    `json:"neighborhood"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Country      string    `json:"country"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// petResponse representa una mascota perdida con su dirección.
type petResponse struct {
	ID            int64           `json:"id"`
	Type          Type            `json:"type"`
	Photo         *string         `json:"photo"`
	Name          string          `json:"name"`
	AgeCategory   AgeCategory     `json:"age_category"`
	SizeCategory  SizeCategory    `json:"size_category"`
	Breed         string          `json:"breed"`
	ContactInfo   string          `json:"contact_info"`
	Sex           Sex             `json:"sex"`
	Description   string          `json:"description"`
	Observations  *string         `json:"observations"`
	DisappearedAt time.Time       `json:"disappeared_at"`
	AddressID     int64           `json:"address_id"`
	Address       addressResponse `json:"address"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type paginationResponse struct {
	PageNumber int  `json:"page_number"`
	PageSize   int  `json:"page_size"`
	TotalCount int  `json:"total_count"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

type petEnvelope struct {
	Message string      `json:"message"`
	Data    petResponse `json:"data"`
}

type petListEnvelope struct {
	Message    string             `json:"message"`
	Data       []petResponse      `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// los errores usan el nombre JSON del campo
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// searchPetsHandler godoc
// @Summary Buscar mascotas perdidas
// @Description Lista paginada de mascotas, de la más reciente a la más antigua. Todos los filtros son opcionales y se combinan con AND. `start_date` y `end_date` van juntos.
// @Tags pets
// @Produce json
// @Param name query string false "Substring del nombre (sin distinguir mayúsculas)"
// @Param type query string false "Tipo exacto" Enums(Dog, Cat, Bird, Other)
// @Param city query string false "Substring de la ciudad de desaparición"
// @Param start_date query string false "Inicio del rango de desaparición (ISO-8601)"
// @Param end_date query string false "Fin del rango de desaparición (ISO-8601)"
// @Param page_number query int false "Página, desde 1. Por defecto 1"
// @Param page_size query int false "Tamaño de página (1-100). Por defecto 20"
// @Success 200 {object} petListEnvelope
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /pets [get]
func searchPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		filter := SearchFilter{
			Name: q.Get("name"),
			Type: Type(q.Get("type")),
			City: q.Get("city"),
		}

		bad := map[string]string{}
		if raw := strings.TrimSpace(q.Get("start_date")); raw != "" {
			t, err := parseTimestamp(raw)
			if err != nil {
				bad["start_date"] = "must be an ISO-8601 date or date-time"
			}
			filter.DisappearedFrom = &t
		}
		if raw := strings.TrimSpace(q.Get("end_date")); raw != "" {
			t, err := parseTimestamp(raw)
			if err != nil {
				bad["end_date"] = "must be an ISO-8601 date or date-time"
			}
			filter.DisappearedTo = &t
		}
		if len(bad) > 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid query parameters", Errors: bad})
			return
		}

		page, err := svc.SearchPets(r.Context(), filter, ParsePageRequest(q.Get("page_number"), q.Get("page_size")))
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]petResponse, 0, len(page.Items))
		for _, p := range page.Items {
			out = append(out, toPetResponse(p))
		}

		writeJSON(w, http.StatusOK, petListEnvelope{
			Message: fmt.Sprintf("%d pets found (page %d of %d)", len(out), page.PageNumber, page.TotalPages()),
			Data:    out,
			Pagination: paginationResponse{
				PageNumber: page.PageNumber,
				PageSize:   page.PageSize,
				TotalCount: page.TotalCount,
				TotalPages: page.TotalPages(),
				HasNext:    page.HasNext(),
				HasPrev:    page.HasPrev(),
			},
		})
	}
}

// createPetHandler godoc
// @Summary Registrar mascota perdida
// @Description Crea la mascota y su dirección de desaparición en una sola transacción. `address` es obligatorio.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "Datos de la mascota; disappeared_at en ISO-8601"
// @Success 201 {object} petEnvelope
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := decodeJSON(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid json"})
			return
		}
		if err := validate.Struct(req); err != nil {
			writeValidation(w, err)
			return
		}

		disappearedAt, err := parseTimestamp(req.DisappearedAt)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Message: "invalid data",
				Errors:  map[string]string{"disappeared_at": "must be an ISO-8601 date or date-time"},
			})
			return
		}

		in := CreateInput{
			Pet: Fields{
				Type:          Type(req.Type),
				Photo:         req.Photo,
				Name:          req.Name,
				AgeCategory:   AgeCategory(req.AgeCategory),
				SizeCategory:  SizeCategory(req.SizeCategory),
				Breed:         req.Breed,
				ContactInfo:   req.ContactInfo,
				Sex:           Sex(req.Sex),
				Description:   req.Description,
				Observations:  req.Observations,
				DisappearedAt: disappearedAt,
			},
		}
		if a := req.Address; a != nil {
			in.Address = &addresses.Input{
				PostalCode:   a.PostalCode,
				Street:       a.Street,
				Neighborhood: a.Neighborhood,
				City:         a.City,
				State:        a.State,
				Country:      a.Country,
			}
		}

		p, err := svc.CreatePetWithAddress(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, petEnvelope{Message: "pet created", Data: toPetResponse(p)})
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Success 200 {object} petEnvelope
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(r)
		if !ok {
			writeNotFound(w)
			return
		}

		p, found, err := svc.GetPetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		if !found {
			writeNotFound(w)
			return
		}

		writeJSON(w, http.StatusOK, petEnvelope{Message: "pet found", Data: toPetResponse(p)})
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Actualización parcial: sólo cambian las claves enviadas. `photo` y `observations` aceptan null para limpiarlas. `address` edita la dirección actual; `address_id` re-apunta a otra existente que ninguna otra mascota use, y la anterior se borra (no ambos).
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param payload body updatePetRequest true "Campos a modificar"
// @Success 200 {object} petEnvelope
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /pets/{petID} [put]
// @Router /pets/{petID} [patch]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(r)
		if !ok {
			writeNotFound(w)
			return
		}

		var req updatePetRequest
		if err := decodeJSON(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid json"})
			return
		}

		in, bad := req.toUpdateInput()
		if len(bad) > 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid data", Errors: bad})
			return
		}

		p, found, err := svc.UpdatePetWithAddress(r.Context(), id, in)
		if err != nil {
			writeError(w, err)
			return
		}
		if !found {
			writeNotFound(w)
			return
		}

		writeJSON(w, http.StatusOK, petEnvelope{Message: "pet updated", Data: toPetResponse(p)})
	}
}

// deletePetHandler godoc
// @Summary Eliminar mascota
// @Description Borra la mascota y su dirección en una sola transacción.
// @Tags pets
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Success 200 {object} messageResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(r)
		if !ok {
			writeNotFound(w)
			return
		}

		deleted, err := svc.DeletePet(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		if !deleted {
			writeNotFound(w)
			return
		}

		writeJSON(w, http.StatusOK, messageResponse{Message: "pet deleted"})
	}
}

// minLengths y maxLengths replican los límites de las columnas VARCHAR.
var minLengths = map[string]int{
	"address.postal_code": addresses.PostalCodeMinLen,
}

var maxLengths = map[string]int{
	"name":                 100,
	"breed":                100,
	"address.postal_code":  addresses.PostalCodeMaxLen,
	"address.street":       255,
	"address.neighborhood": 100,
	"address.city":         100,
	"address.state":        100,
	"address.country":      100,
}

func (req updatePetRequest) toUpdateInput() (UpdateInput, map[string]string) {
	bad := map[string]string{}
	checkLen := func(field string, f patch.Field[string]) {
		if !f.Set {
			return
		}
		if limit, ok := minLengths[field]; ok {
			if err := validate.Var(strings.TrimSpace(f.Value), "min="+strconv.Itoa(limit)); err != nil {
				bad[field] = fmt.Sprintf("must be at least %d characters", limit)
			}
		}
		if limit, ok := maxLengths[field]; ok {
			if err := validate.Var(f.Value, "max="+strconv.Itoa(limit)); err != nil {
				bad[field] = fmt.Sprintf("must be at most %d characters", limit)
			}
		}
	}

	p := Patch{
		Type:         asEnum[Type](req.Type),
		Photo:        req.Photo,
		Name:         req.Name,
		AgeCategory:  asEnum[AgeCategory](req.AgeCategory),
		SizeCategory: asEnum[SizeCategory](req.SizeCategory),
		Breed:        req.Breed,
		ContactInfo:  req.ContactInfo,
		Sex:          asEnum[Sex](req.Sex),
		Description:  req.Description,
		Observations: req.Observations,
		AddressID:    req.AddressID,
	}
	checkLen("name", p.Name)
	checkLen("breed", p.Breed)

	if req.DisappearedAt.Set {
		// null queda en tiempo cero y lo rechaza el servicio
		p.DisappearedAt = patch.Field[time.Time]{Set: true}
		if raw := req.DisappearedAt.Value; raw != nil {
			t, err := parseTimestamp(*raw)
			if err != nil {
				bad["disappeared_at"] = "must be an ISO-8601 date or date-time"
			}
			p.DisappearedAt.Value = t
		}
	}

	in := UpdateInput{Pet: p}
	if a := req.Address; a != nil {
		ap := addresses.Patch{
			PostalCode:   a.PostalCode,
			Street:       a.Street,
			Neighborhood: a.Neighborhood,
			City:         a.City,
			State:        a.State,
			Country:      a.Country,
		}
		checkLen("address.postal_code", ap.PostalCode)
		checkLen("address.street", ap.Street)
		checkLen("address.neighborhood", ap.Neighborhood)
		checkLen("address.city", ap.City)
		checkLen("address.state", ap.State)
		checkLen("address.country", ap.Country)
		in.Address = &ap
	}
	return in, bad
}

func asEnum[T ~string](f patch.Field[string]) patch.Field[T] {
	return patch.Field[T]{Set: f.Set, Value: T(f.Value)}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:            p.ID,
		Type:          p.Type,
		Photo:         p.Photo,
		Name:          p.Name,
		AgeCategory:   p.AgeCategory,
		SizeCategory:  p.SizeCategory,
		Breed:         p.Breed,
		ContactInfo:   p.ContactInfo,
		Sex:           p.Sex,
		Description:   p.Description,
		Observations:  p.Observations,
		DisappearedAt: p.DisappearedAt,
		AddressID:     p.AddressID,
		Address: addressResponse{
			ID:           p.Address.ID,
			PostalCode:   p.Address.PostalCode,
			Street:       p.Address.Street,
			Neighborhood: p.Address.Neighborhood,
			City:         p.Address.City,
			State:        p.Address.State,
			Country:      p.Address.Country,
			CreatedAt:    p.Address.CreatedAt,
			UpdatedAt:    p.Address.UpdatedAt,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimestamp acepta ISO-8601 con o sin zona; sin zona se asume UTC.
func parseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", raw)
}

// Un id no numérico se trata como ruta inexistente.
func petIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func writeValidation(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid data"})
		return
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		// Namespace = "createPetRequest.address.city"
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		out[field] = validationMessage(fe)
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid data", Errors: out})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	}
	return "is invalid"
}

// writeError traduce la taxonomía de apperr a HTTP.
// Storage va primero: un rollback fallido puede venir unido a otra causa.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperr.ErrStorage), errors.Is(err, apperr.ErrQuery):
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal server error"})
	case errors.Is(err, apperr.ErrValidation):
		resp := errorResponse{Message: "invalid data"}
		var ve *apperr.ValidationError
		if errors.As(err, &ve) && ve.Field != "" {
			resp.Errors = map[string]string{ve.Field: ve.Message}
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, apperr.ErrNotFound):
		writeNotFound(w)
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal server error"})
	}
}

func writeNotFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, errorResponse{Message: "pet not found"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
