package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/ndudarev/campus-lostfound/internal/logger"
	"github.com/ndudarev/campus-lostfound/internal/models"
)

const itemColumns = `id, role, type, name, description, location, status, contact_info, created_at, updated_at`

// ItemReadRepository handles item read operations.
type ItemReadRepository struct {
	db *sqlx.DB
}

func NewItemReadRepository(db *sqlx.DB) *ItemReadRepository {
	return &ItemReadRepository{db: db}
}

// Get returns the item with the given id. Returns sql.ErrNoRows if absent.
func (r *ItemReadRepository) Get(ctx context.Context, id int64) (*models.ItemDB, error) {
	const query = `
		SELECT ` + itemColumns + `
		FROM items
		WHERE id = $1
	`

	var item models.ItemDB
	err := r.db.GetContext(ctx, &item, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns active items, newest first, optionally filtered by role and
// type. A nil filter means no restriction.
func (r *ItemReadRepository) List(ctx context.Context, role, itemType *string) ([]models.ItemDB, error) {
	const query = `
		SELECT ` + itemColumns + `
		FROM items
		WHERE status = 'active'
		  AND ($1::VARCHAR IS NULL OR role = $1)
		  AND ($2::VARCHAR IS NULL OR type = $2)
		ORDER BY created_at DESC
	`

	var items []models.ItemDB
	err := r.db.SelectContext(ctx, &items, query, role, itemType)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{role, itemType},
		"count", len(items),
		"error", err,
	)

	return items, err
}

// Search returns active items whose name, description or location contains
// the pattern, case-insensitively, newest first. The pattern must already be
// wrapped in SQL wildcards by the caller.
func (r *ItemReadRepository) Search(ctx context.Context, pattern string) ([]models.ItemDB, error) {
	const query = `
		SELECT ` + itemColumns + `
		FROM items
		WHERE status = 'active'
		  AND (name ILIKE $1 OR description ILIKE $1 OR location ILIKE $1)
		ORDER BY created_at DESC
	`

	var items []models.ItemDB
	err := r.db.SelectContext(ctx, &items, query, pattern)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{pattern},
		"count", len(items),
		"error", err,
	)

	return items, err
}

// Stats computes the dashboard counters in a single query. The keyword
// buckets are independent and may both match the same item.
func (r *ItemReadRepository) Stats(ctx context.Context) (*models.Stats, error) {
	const query = `
		SELECT
			COUNT(*) FILTER (WHERE status = 'active') AS active,
			COUNT(*) FILTER (WHERE status = 'returned') AS returned,
			COUNT(*) FILTER (WHERE status = 'active'
				AND (name ILIKE '%book%' OR name ILIKE '%textbook%' OR name ILIKE '%notebook%')) AS books,
			COUNT(*) FILTER (WHERE status = 'active'
				AND (name ILIKE '%phone%' OR name ILIKE '%laptop%' OR name ILIKE '%charger%'
					OR name ILIKE '%calculator%' OR name ILIKE '%airpods%' OR name ILIKE '%usb%')) AS electronics,
			COUNT(*) FILTER (WHERE status = 'active' AND type = 'lost') AS lost,
			COUNT(*) FILTER (WHERE status = 'active' AND type = 'found') AS found
		FROM items
	`

	var stats models.Stats
	err := r.db.GetContext(ctx, &stats, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", stats,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// ItemWriteRepository handles item write operations. Writes run on the
// per-request transaction when one is present in the context.
type ItemWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewItemWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ItemWriteRepository {
	return &ItemWriteRepository{db: db, txGetter: txGetter}
}

func (r *ItemWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new active item and returns the created row.
func (r *ItemWriteRepository) Save(ctx context.Context, role, itemType, name, description, location, contactInfo string) (*models.ItemDB, error) {
	const query = `
		INSERT INTO items (role, type, name, description, location, status, contact_info, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 'active', $6, NOW(), NOW())
		RETURNING ` + itemColumns + `
	`
	args := []any{role, itemType, name, description, location, contactInfo}

	var item models.ItemDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &item, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Update applies the non-nil fields among status, description and location,
// refreshes updated_at and returns the updated row. Returns sql.ErrNoRows if
// the id is absent.
func (r *ItemWriteRepository) Update(ctx context.Context, id int64, status, description, location *string) (*models.ItemDB, error) {
	const query = `
		UPDATE items
		SET status      = COALESCE($2::VARCHAR, status),
		    description = COALESCE($3::VARCHAR, description),
		    location    = COALESCE($4::VARCHAR, location),
		    updated_at  = NOW()
		WHERE id = $1
		RETURNING ` + itemColumns + `
	`
	args := []any{id, status, description, location}

	var item models.ItemDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &item, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &item, nil
}

// SetStatus sets the item status unconditionally and returns the updated
// row. Returns sql.ErrNoRows if the id is absent.
func (r *ItemWriteRepository) SetStatus(ctx context.Context, id int64, status string) (*models.ItemDB, error) {
	const query = `
		UPDATE items
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + itemColumns + `
	`
	args := []any{id, status}

	var item models.ItemDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &item, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes the item and returns the number of rows deleted.
func (r *ItemWriteRepository) Delete(ctx context.Context, id int64) (int64, error) {
	const query = `DELETE FROM items WHERE id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
