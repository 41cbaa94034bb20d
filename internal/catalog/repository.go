package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/sreerojavusa/Travelgear/internal/domain"
)

var ErrItemNotFound = errors.New("item not found")

// ItemFilter narrows catalog listings. The zero value lists everything.
type ItemFilter struct {
	CategoryID    string
	OnlyAvailable bool
}

type Repository struct {
	db *sql.DB
}

func NewRepository(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) RunMigrations(migrationsPath string) error {
	driver, err := sqlite.WithInstance(r.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"sqlite",
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT id, name, description, icon, created_at
		FROM categories
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Icon, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return categories, nil
}

const itemColumns = `
	id, title, description, category_id, brand, condition,
	daily_rate, weekly_rate, deposit_amount,
	sizes, colors, image_urls,
	availability, stock_quantity, created_at, updated_at
`

func (r *Repository) ListItems(ctx context.Context, filter ItemFilter) ([]*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE 1=1`
	var args []any

	if filter.CategoryID != "" {
		query += ` AND category_id = ?`
		args = append(args, filter.CategoryID)
	}
	if filter.OnlyAvailable {
		query += ` AND availability = 1`
	}
	query += ` ORDER BY title`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []*domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return items, nil
}

func (r *Repository) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = ?`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query item: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("row iteration error: %w", err)
		}
		return nil, ErrItemNotFound
	}

	return scanItem(rows)
}

func scanItem(rows *sql.Rows) (*domain.Item, error) {
	var (
		item       domain.Item
		weeklyRate decimal.NullDecimal
		sizes      sql.NullString
		colors     sql.NullString
		images     sql.NullString
	)

	err := rows.Scan(
		&item.ID,
		&item.Title,
		&item.Description,
		&item.CategoryID,
		&item.Brand,
		&item.Condition,
		&item.DailyRate,
		&weeklyRate,
		&item.DepositAmount,
		&sizes,
		&colors,
		&images,
		&item.Availability,
		&item.StockQuantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan item: %w", err)
	}

	if weeklyRate.Valid {
		item.WeeklyRate = &weeklyRate.Decimal
	}
	if err := unmarshalList(sizes, &item.Sizes); err != nil {
		return nil, fmt.Errorf("bad sizes payload for item %s: %w", item.ID, err)
	}
	if err := unmarshalList(colors, &item.Colors); err != nil {
		return nil, fmt.Errorf("bad colors payload for item %s: %w", item.ID, err)
	}
	if err := unmarshalList(images, &item.ImageURLs); err != nil {
		return nil, fmt.Errorf("bad image_urls payload for item %s: %w", item.ID, err)
	}

	return &item, nil
}

// Variant lists are stored as JSON arrays in text columns; NULL means none.
func unmarshalList(col sql.NullString, dst *[]string) error {
	if !col.Valid || col.String == "" {
		return nil
	}
	return json.Unmarshal([]byte(col.String), dst)
}
