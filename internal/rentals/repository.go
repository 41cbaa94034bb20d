// Package rentals records confirmed bookings so the dashboard can list a
// user's rental history.
package rentals

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/sreerojavusa/Travelgear/internal/domain"
)

type Repository struct {
	db     *sql.DB
	driver string
}

type RepoInterface interface {
	Save(ctx context.Context, rentals []domain.Rental) error
	ListByUser(ctx context.Context, userID string) ([]domain.Rental, error)
	Close() error
	RunMigrations(string) error
}

// NewSQLiteRepository opens a file-backed store; the default for a
// single-binary deployment.
func NewSQLiteRepository(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Repository{db: db, driver: "sqlite"}, nil
}

// NewPostgresRepository connects to a shared Postgres instance when the
// deployment outgrows the embedded store.
func NewPostgresRepository(dsn string) (*Repository, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(100)
	db.SetMaxIdleConns(10)
	return &Repository{db: db, driver: "postgres"}, nil
}

func (r *Repository) RunMigrations(migrationsPath string) error {
	m, err := r.newMigrate(migrationsPath)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}
	return nil
}

func (r *Repository) newMigrate(migrationsPath string) (*migrate.Migrate, error) {
	src := fmt.Sprintf("file://%s", migrationsPath)

	switch r.driver {
	case "postgres":
		drv, err := postgres.WithInstance(r.db, &postgres.Config{})
		if err != nil {
			return nil, fmt.Errorf("could not create migration driver: %w", err)
		}
		return migrate.NewWithDatabaseInstance(src, "postgres", drv)
	default:
		drv, err := sqlite.WithInstance(r.db, &sqlite.Config{})
		if err != nil {
			return nil, fmt.Errorf("could not create migration driver: %w", err)
		}
		return migrate.NewWithDatabaseInstance(src, "sqlite", drv)
	}
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) Save(ctx context.Context, rentals []domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := r.rebind(`
		INSERT INTO rentals (
			id, user_id, item_id, title, quantity, rental_days,
			size_selected, color_selected, total_amount, deposit_amount,
			status, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)

	for _, rental := range rentals {
		_, err := tx.ExecContext(ctx, query,
			rental.ID,
			rental.UserID,
			rental.ItemID,
			rental.Title,
			rental.Quantity,
			rental.RentalDays,
			rental.SizeSelected,
			rental.ColorSelected,
			rental.TotalAmount,
			rental.DepositAmount,
			rental.Status,
			rental.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert rental %s: %w", rental.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit rentals: %w", err)
	}
	return nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]domain.Rental, error) {
	query := r.rebind(`
		SELECT id, user_id, item_id, title, quantity, rental_days,
		       size_selected, color_selected, total_amount, deposit_amount,
		       status, created_at
		FROM rentals
		WHERE user_id = ?
		ORDER BY created_at DESC
	`)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rentals: %w", err)
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rental domain.Rental
		err := rows.Scan(
			&rental.ID,
			&rental.UserID,
			&rental.ItemID,
			&rental.Title,
			&rental.Quantity,
			&rental.RentalDays,
			&rental.SizeSelected,
			&rental.ColorSelected,
			&rental.TotalAmount,
			&rental.DepositAmount,
			&rental.Status,
			&rental.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rental: %w", err)
		}
		rentals = append(rentals, rental)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return rentals, nil
}

// rebind rewrites ? placeholders to $N for postgres.
func (r *Repository) rebind(query string) string {
	if r.driver != "postgres" {
		return query
	}
	var (
		out []byte
		n   int
	)
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			out = append(out, fmt.Sprintf("$%d", n)...)
			continue
		}
		out = append(out, query[i])
	}
	return string(out)
}
