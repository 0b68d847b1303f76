package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"busca-pet/internal/domain/addresses"
	"busca-pet/internal/domain/pets"
	"busca-pet/internal/platform/apperr"
	"busca-pet/internal/platform/patch"
)

var (
	addressCols = []string{"id", "postal_code", "street", "neighborhood", "city", "state", "country", "created_at", "updated_at"}
	petCols     = append([]string{
		"id", "type", "photo", "name", "age_category", "size_category", "breed",
		"contact_info", "sex", "description", "observations",
		"disappeared_at", "address_id", "created_at", "updated_at",
	}, addressCols...)
	ts = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func addPetRow(rows *sqlmock.Rows, id int64, photo any) *sqlmock.Rows {
	return rows.AddRow(
		id, "Dog", photo, "Rex", "Adult", "Medium", "SRD",
		"Ana - 11 99999-9999", "Male", "caramelo", nil,
		ts, int64(10), ts, ts,
		int64(10), "01234567", "Rua A", "Centro", "Recife", "PE", "Brasil", ts, ts,
	)
}

func TestAddressesRepo_CreateDefaultsCountry(t *testing.T) {
	db, mock := newDB(t)
	repo := NewAddressesRepo(db)

	mock.ExpectQuery(`INSERT INTO addresses`).
		WithArgs("01234567", "Rua A", "Centro", "Recife", "PE", "Brasil").
		WillReturnRows(sqlmock.NewRows(addressCols).
			AddRow(int64(1), "01234567", "Rua A", "Centro", "Recife", "PE", "Brasil", ts, ts))

	a, err := repo.Create(context.Background(), addresses.Input{
		PostalCode: "01234567", Street: "Rua A", Neighborhood: "Centro", City: "Recife", State: "PE",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, "Brasil", a.Country)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressesRepo_UpdateOnlyProvidedColumns(t *testing.T) {
	db, mock := newDB(t)
	repo := NewAddressesRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE addresses SET city = $1, updated_at = now() WHERE id = $2`)).
		WithArgs("Olinda", int64(7)).
		WillReturnRows(sqlmock.NewRows(addressCols).
			AddRow(int64(7), "01234567", "Rua A", "Centro", "Olinda", "PE", "Brasil", ts, ts))

	a, ok, err := repo.Update(context.Background(), 7, addresses.Patch{City: patch.Value("Olinda")})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Olinda", a.City)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressesRepo_UpdateMissing(t *testing.T) {
	db, mock := newDB(t)
	repo := NewAddressesRepo(db)

	mock.ExpectQuery(`UPDATE addresses`).WillReturnRows(sqlmock.NewRows(addressCols))

	_, ok, err := repo.Update(context.Background(), 7, addresses.Patch{City: patch.Value("Olinda")})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAddressesRepo_DeleteReferenced(t *testing.T) {
	db, mock := newDB(t)
	repo := NewAddressesRepo(db)

	mock.ExpectExec(`DELETE FROM addresses`).
		WithArgs(int64(10)).
		WillReturnError(&pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "pets_address_id_fkey"})

	ok, err := repo.Delete(context.Background(), 10)
	assert.False(t, ok)
	assert.ErrorIs(t, err, apperr.ErrStorage)
	assert.ErrorIs(t, err, addresses.ErrReferenced)
	assert.True(t, isForeignKeyViolation(err))
	assert.Contains(t, err.Error(), "pets_address_id_fkey")
}

func TestAddressesRepo_DeleteMissing(t *testing.T) {
	db, mock := newDB(t)
	repo := NewAddressesRepo(db)

	mock.ExpectExec(`DELETE FROM addresses`).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.Delete(context.Background(), 3)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPetsRepo_GetByIDResolvesAddress(t *testing.T) {
	db, mock := newDB(t)
	repo := NewPetsRepo(db)

	mock.ExpectQuery(`JOIN addresses a ON a.id = p.address_id WHERE p.id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(addPetRow(sqlmock.NewRows(petCols), 5, "http://img/rex.png"))

	p, ok, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, pets.TypeDog, p.Type)
	require.NotNil(t, p.Photo)
	assert.Equal(t, "http://img/rex.png", *p.Photo)
	assert.Nil(t, p.Observations)
	assert.Equal(t, int64(10), p.Address.ID)
	assert.Equal(t, "Recife", p.Address.City)
}

func TestPetsRepo_GetByIDMissing(t *testing.T) {
	db, mock := newDB(t)
	repo := NewPetsRepo(db)

	mock.ExpectQuery(`FROM pets p`).WillReturnRows(sqlmock.NewRows(petCols))

	_, ok, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPetsRepo_UpdateClearsPhoto(t *testing.T) {
	db, mock := newDB(t)
	repo := NewPetsRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE pets SET photo = $1, name = $2, updated_at = now() WHERE id = $3`)).
		WithArgs(nil, "Toby", int64(5)).
		WillReturnRows(addPetRow(sqlmock.NewRows(petCols), 5, nil))

	p, ok, err := repo.Update(context.Background(), 5, pets.Patch{
		Photo: patch.Value[*string](nil),
		Name:  patch.Value("Toby"),
	})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Nil(t, p.Photo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPetsRepo_AddressInUse(t *testing.T) {
	db, mock := newDB(t)
	repo := NewPetsRepo(db)

	mock.ExpectQuery(`SELECT EXISTS \(\s*SELECT 1 FROM pets\s*WHERE address_id = \$1 AND id <> \$2`).
		WithArgs(int64(10), int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	inUse, err := repo.AddressInUse(context.Background(), 10, 5)
	require.NoError(t, err)
	assert.True(t, inUse)

	mock.ExpectQuery(`SELECT EXISTS`).WillReturnError(errors.New("connection refused"))
	_, err = repo.AddressInUse(context.Background(), 10, 5)
	assert.ErrorIs(t, err, apperr.ErrStorage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPetsRepo_CreateWrapsStorageError(t *testing.T) {
	db, mock := newDB(t)
	repo := NewPetsRepo(db)

	mock.ExpectQuery(`INSERT INTO pets`).WillReturnError(errors.New("connection refused"))

	_, err := repo.Create(context.Background(), pets.Pet{Type: pets.TypeDog, AddressID: 1, DisappearedAt: ts})
	var se *apperr.StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "pet", se.Entity)
	assert.Equal(t, "create", se.Op)
}

func TestSearchWhere(t *testing.T) {
	from, to := ts, ts.Add(24*time.Hour)

	tests := []struct {
		name     string
		filter   pets.SearchFilter
		wantSQL  string
		wantArgs []any
	}{
		{name: "no filters", filter: pets.SearchFilter{}, wantSQL: "", wantArgs: nil},
		{
			name:     "name escapes wildcards",
			filter:   pets.SearchFilter{Name: "50%_off"},
			wantSQL:  "\n\tWHERE p.name ILIKE $1",
			wantArgs: []any{`%50\%\_off%`},
		},
		{
			name:     "all filters",
			filter:   pets.SearchFilter{Name: "rex", Type: pets.TypeDog, City: "recife", DisappearedFrom: &from, DisappearedTo: &to},
			wantSQL:  "\n\tWHERE p.name ILIKE $1 AND p.type = $2 AND a.city ILIKE $3 AND p.disappeared_at BETWEEN $4 AND $5",
			wantArgs: []any{"%rex%", "Dog", "%recife%", from, to},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotSQL, gotArgs := searchWhere(tt.filter)
			assert.Equal(t, tt.wantSQL, gotSQL)
			assert.Equal(t, tt.wantArgs, gotArgs)
		})
	}
}

func TestPetsRepo_SearchEmptySkipsPageQuery(t *testing.T) {
	db, mock := newDB(t)
	repo := NewPetsRepo(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WithArgs("Cat").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	items, total, err := repo.Search(context.Background(), pets.SearchQuery{
		Filter: pets.SearchFilter{Type: pets.TypeCat},
		Page:   pets.NewPageRequest(1, 20),
	})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPetsRepo_SearchPaginates(t *testing.T) {
	db, mock := newDB(t)
	repo := NewPetsRepo(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY p.created_at DESC, p.id DESC LIMIT $1 OFFSET $2`)).
		WithArgs(10, 20).
		WillReturnRows(addPetRow(addPetRow(sqlmock.NewRows(petCols), 5, nil), 4, nil))

	items, total, err := repo.Search(context.Background(), pets.SearchQuery{Page: pets.NewPageRequest(3, 10)})
	require.NoError(t, err)
	assert.Equal(t, 25, total)
	require.Len(t, items, 2)
	assert.Equal(t, int64(5), items[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPetsRepo_SearchFailureIsQueryError(t *testing.T) {
	db, mock := newDB(t)
	repo := NewPetsRepo(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\)`).WillReturnError(errors.New("timeout"))

	_, _, err := repo.Search(context.Background(), pets.SearchQuery{Page: pets.NewPageRequest(1, 20)})
	assert.ErrorIs(t, err, apperr.ErrQuery)
}
