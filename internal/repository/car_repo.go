package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"car-api-go/internal/models"
	"car-api-go/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS cars (
	seq        BIGSERIAL,
	id         TEXT PRIMARY KEY,
	image      TEXT NOT NULL DEFAULT '',
	make       TEXT NOT NULL DEFAULT '',
	model      TEXT NOT NULL DEFAULT '',
	descript   TEXT NOT NULL DEFAULT '',
	year       INTEGER NOT NULL DEFAULT 0,
	color      TEXT NOT NULL DEFAULT '',
	is_new     BOOLEAN NOT NULL DEFAULT FALSE,
	num_doors  INTEGER NOT NULL DEFAULT 0,
	worth      JSONB
)`

const selectColumns = "id, image, make, model, descript, year, color, is_new, num_doors, worth"

const uniqueViolation = "23505"

// CarRepository is a store.CarStore backed by PostgreSQL
type CarRepository struct {
	pool *pgxpool.Pool
}

var _ store.CarStore = (*CarRepository)(nil)

func NewCarRepository(pool *pgxpool.Pool) *CarRepository {
	return &CarRepository{pool: pool}
}

// EnsureTable creates the cars table when it does not exist yet
func (r *CarRepository) EnsureTable(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create cars table: %w", err)
	}
	return nil
}

func (r *CarRepository) List(ctx context.Context) ([]models.Car, error) {
	rows, err := r.pool.Query(ctx, "SELECT "+selectColumns+" FROM cars ORDER BY seq")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cars := make([]models.Car, 0)
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		cars = append(cars, *car)
	}
	return cars, rows.Err()
}

func (r *CarRepository) FindByID(ctx context.Context, id string) (*models.Car, error) {
	car, err := scanCar(r.pool.QueryRow(ctx, "SELECT "+selectColumns+" FROM cars WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	return car, err
}

func (r *CarRepository) Append(ctx context.Context, car *models.Car) error {
	if car.ID == "" {
		car.ID = store.NewID()
	}
	return insertCar(ctx, r.pool, car)
}

func (r *CarRepository) Update(ctx context.Context, id string, patch models.CarPatch) (*models.Car, error) {
	var updated *models.Car
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		car, err := scanCar(tx.QueryRow(ctx, "SELECT "+selectColumns+" FROM cars WHERE id = $1 FOR UPDATE", id))
		if errors.Is(err, pgx.ErrNoRows) {
			return store.ErrNotFound
		}
		if err != nil {
			return err
		}
		if err := patch.Apply(car); err != nil {
			return err
		}

		worth, err := json.Marshal(car.Worth)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx,
			`UPDATE cars SET image = $1, make = $2, model = $3, descript = $4, year = $5,
			color = $6, is_new = $7, num_doors = $8, worth = $9 WHERE id = $10`,
			car.Image, car.Make, car.Model, car.Descript, car.Year,
			car.Color, car.IsNew, car.NumDoors, worth, car.ID,
		)
		if err != nil {
			return err
		}
		updated = car
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *CarRepository) RemoveByID(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM cars WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Reset replaces every row with the fixture cars
func (r *CarRepository) Reset(ctx context.Context) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "DELETE FROM cars"); err != nil {
			return err
		}
		for _, car := range store.Fixtures() {
			car := car
			if err := insertCar(ctx, tx, &car); err != nil {
				return err
			}
		}
		return nil
	})
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func insertCar(ctx context.Context, db execer, car *models.Car) error {
	worth, err := json.Marshal(car.Worth)
	if err != nil {
		return fmt.Errorf("invalid worth: %w", err)
	}

	_, err = db.Exec(ctx,
		`INSERT INTO cars (id, image, make, model, descript, year, color, is_new, num_doors, worth)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		car.ID, car.Image, car.Make, car.Model, car.Descript, car.Year,
		car.Color, car.IsNew, car.NumDoors, worth,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return &store.DuplicateCarError{CarID: car.ID}
	}
	return err
}

func scanCar(row pgx.Row) (*models.Car, error) {
	var car models.Car
	var worth []byte
	err := row.Scan(&car.ID, &car.Image, &car.Make, &car.Model, &car.Descript,
		&car.Year, &car.Color, &car.IsNew, &car.NumDoors, &worth)
	if err != nil {
		return nil, err
	}
	if len(worth) > 0 {
		if err := json.Unmarshal(worth, &car.Worth); err != nil {
			return nil, fmt.Errorf("invalid worth for car %s: %w", car.ID, err)
		}
	}
	return &car, nil
}
