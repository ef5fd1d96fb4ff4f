package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"dealerapi/internal/model"
	"dealerapi/internal/repository"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var vehicleCols = []string{"id", "category", "brand", "model_name", "year", "kilometers", "fuel", "transmission", "description", "featured", "priority", "sold", "images", "created_at", "updated_at"}

func vehicleRow(id string, now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(vehicleCols).
		AddRow(id, "sedan", "Toyota", "Corolla", 2020, 45000, "petrol", "manual", "clean unit", false, 0, false, []byte(`["https://a/products/1-f.jpg"]`), now, now)
}

func TestVehiclePostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewVehiclePostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	v := &model.Vehicle{
		ID:           "test-uuid",
		Category:     "sedan",
		Brand:        "Toyota",
		ModelName:    "Corolla",
		Year:         2020,
		Kilometers:   45000,
		Fuel:         "petrol",
		Transmission: "manual",
		Description:  "clean unit",
		Images:       []string{"https://a/products/1-f.jpg"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectQuery("INSERT INTO vehicles").
		WithArgs(v.ID, v.Category, v.Brand, v.ModelName, v.Year, v.Kilometers, v.Fuel, v.Transmission,
			v.Description, v.Featured, v.Priority, v.Sold, []byte(`["https://a/products/1-f.jpg"]`), v.CreatedAt, v.UpdatedAt).
		WillReturnRows(vehicleRow(v.ID, now))

	result, err := repo.Create(ctx, v)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, v.ID, result.ID)
	assert.Equal(t, []string{"https://a/products/1-f.jpg"}, result.Images)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVehiclePostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewVehiclePostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE id = ?").
			WithArgs("test-id").
			WillReturnRows(vehicleRow("test-id", time.Now()))

		v, err := repo.FindByID(ctx, "test-id")

		assert.NoError(t, err)
		assert.NotNil(t, v)
		assert.Equal(t, "test-id", v.ID)
		assert.Equal(t, "Toyota", v.Brand)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		v, err := repo.FindByID(ctx, "missing")

		assert.Nil(t, v)
		assert.True(t, IsNoRowsError(err))
	})
}

func TestVehiclePostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewVehiclePostgres(db)
	ctx := context.Background()

	t.Run("no filter", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectQuery("SELECT (.+) FROM vehicles ORDER BY created_at DESC").
			WithArgs(10, 0).
			WillReturnRows(vehicleRow("v1", time.Now()))

		res, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 0}, repository.VehicleFilter{})

		assert.NoError(t, err)
		assert.Equal(t, 2, res.Total)
		assert.Len(t, res.Items, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sold and brand filter", func(t *testing.T) {
		sold := false
		f := repository.VehicleFilter{Sold: &sold, Brand: "Toyota"}

		mock.ExpectQuery("SELECT COUNT(.+) FROM vehicles WHERE sold = (.+) AND brand = ?").
			WithArgs(false, "Toyota").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE sold = (.+) AND brand = ?").
			WithArgs(false, "Toyota", 10, 0).
			WillReturnRows(vehicleRow("v1", time.Now()))

		res, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 0}, f)

		assert.NoError(t, err)
		assert.Equal(t, 1, res.Total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestVehiclePostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewVehiclePostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	v := &model.Vehicle{
		ID:           "v1",
		Category:     "sedan",
		Brand:        "Toyota",
		ModelName:    "Corolla",
		Year:         2020,
		Kilometers:   50000,
		Fuel:         "petrol",
		Transmission: "manual",
		Sold:         true,
		Images:       []string{"https://a/products/1-f.jpg"},
		UpdatedAt:    now,
	}

	t.Run("updated", func(t *testing.T) {
		mock.ExpectQuery("UPDATE vehicles SET").
			WithArgs(v.ID, v.Category, v.Brand, v.ModelName, v.Year, v.Kilometers, v.Fuel, v.Transmission,
				v.Description, v.Featured, v.Priority, v.Sold, []byte(`["https://a/products/1-f.jpg"]`), v.UpdatedAt).
			WillReturnRows(vehicleRow(v.ID, now))

		result, err := repo.Update(ctx, v)

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no matching row", func(t *testing.T) {
		mock.ExpectQuery("UPDATE vehicles SET").
			WillReturnError(sql.ErrNoRows)

		result, err := repo.Update(ctx, v)

		assert.Nil(t, result)
		assert.True(t, IsNoRowsError(err))
	})
}

func TestVehiclePostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewVehiclePostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM vehicles WHERE id = ?").
		WithArgs("v1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(ctx, "v1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
