package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"dealerapi/internal/model"
	"dealerapi/internal/repository"
)

// VehiclePostgres is a PostgreSQL implementation of repository.VehicleRepository.
type VehiclePostgres struct {
	db *sql.DB
}

// NewVehiclePostgres creates a new VehiclePostgres repository.
func NewVehiclePostgres(db *sql.DB) *VehiclePostgres {
	return &VehiclePostgres{db: db}
}

var _ repository.VehicleRepository = (*VehiclePostgres)(nil)

const vehicleColumns = `id, category, brand, model_name, year, kilometers, fuel, transmission, description, featured, priority, sold, images, created_at, updated_at`

func scanVehicle(row interface{ Scan(...any) error }) (*model.Vehicle, error) {
	var v model.Vehicle
	var images []byte
	if err := row.Scan(
		&v.ID,
		&v.Category,
		&v.Brand,
		&v.ModelName,
		&v.Year,
		&v.Kilometers,
		&v.Fuel,
		&v.Transmission,
		&v.Description,
		&v.Featured,
		&v.Priority,
		&v.Sold,
		&images,
		&v.CreatedAt,
		&v.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &v.Images); err != nil {
			return nil, fmt.Errorf("decode images: %w", err)
		}
	}
	return &v, nil
}

func encodeImages(urls []string) ([]byte, error) {
	if urls == nil {
		urls = []string{}
	}
	return json.Marshal(urls)
}

// Create inserts a new vehicle row and returns the stored record.
func (r *VehiclePostgres) Create(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error) {
	const q = `
		INSERT INTO vehicles (id, category, brand, model_name, year, kilometers, fuel, transmission, description, featured, priority, sold, images, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + vehicleColumns
	images, err := encodeImages(v.Images)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, q,
		v.ID,
		v.Category,
		v.Brand,
		v.ModelName,
		v.Year,
		v.Kilometers,
		v.Fuel,
		v.Transmission,
		v.Description,
		v.Featured,
		v.Priority,
		v.Sold,
		images,
		v.CreatedAt,
		v.UpdatedAt,
	)
	return scanVehicle(row)
}

// FindByID fetches a single vehicle by its ID.
func (r *VehiclePostgres) FindByID(ctx context.Context, id string) (*model.Vehicle, error) {
	const q = `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	return scanVehicle(r.db.QueryRowContext(ctx, q, id))
}

// List returns vehicles newest first using LIMIT/OFFSET pagination and a total count.
func (r *VehiclePostgres) List(ctx context.Context, pq repository.PageQuery, f repository.VehicleFilter) (*repository.PageResult[model.Vehicle], error) {
	where, args := vehicleWhere(f)

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vehicles`+where, args...).Scan(&total); err != nil {
		return nil, err
	}

	listArgs := append(args, pq.Limit, pq.Offset)
	q := fmt.Sprintf(`SELECT `+vehicleColumns+` FROM vehicles%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	rows, err := r.db.QueryContext(ctx, q, listArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Vehicle, 0)
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Vehicle]{Items: items, Total: total}, nil
}

func vehicleWhere(f repository.VehicleFilter) (string, []any) {
	var conds []string
	var args []any
	if f.Sold != nil {
		args = append(args, *f.Sold)
		conds = append(conds, fmt.Sprintf("sold = $%d", len(args)))
	}
	if f.Brand != "" {
		args = append(args, f.Brand)
		conds = append(conds, fmt.Sprintf("brand = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Update overwrites all mutable fields of the row identified by v.ID.
func (r *VehiclePostgres) Update(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error) {
	const q = `
		UPDATE vehicles
		SET category = $2, brand = $3, model_name = $4, year = $5, kilometers = $6, fuel = $7, transmission = $8, description = $9, featured = $10, priority = $11, sold = $12, images = $13, updated_at = $14
		WHERE id = $1
		RETURNING ` + vehicleColumns
	images, err := encodeImages(v.Images)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, q,
		v.ID,
		v.Category,
		v.Brand,
		v.ModelName,
		v.Year,
		v.Kilometers,
		v.Fuel,
		v.Transmission,
		v.Description,
		v.Featured,
		v.Priority,
		v.Sold,
		images,
		v.UpdatedAt,
	)
	return scanVehicle(row)
}

// Delete removes a vehicle by ID. It does not return an error if the row does not exist.
func (r *VehiclePostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM vehicles WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
