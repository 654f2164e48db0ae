package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ndudarev/campus-lostfound/internal/logger"
)

// schema is the full database schema. Every statement is idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS items (
    id           BIGSERIAL PRIMARY KEY,
    role         VARCHAR(20) NOT NULL CHECK (role IN ('student', 'teacher', 'staff')),
    type         VARCHAR(10) NOT NULL CHECK (type IN ('lost', 'found')),
    name         VARCHAR(100) NOT NULL,
    description  TEXT NOT NULL DEFAULT '',
    location     VARCHAR(200) NOT NULL DEFAULT '',
    status       VARCHAR(20) NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'returned', 'claimed')),
    contact_info VARCHAR(100) NOT NULL DEFAULT '',
    created_at   TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at   TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_items_status_created_at
    ON items (status, created_at DESC);

CREATE TABLE IF NOT EXISTS users (
    id         BIGSERIAL PRIMARY KEY,
    username   VARCHAR(80) NOT NULL UNIQUE,
    email      VARCHAR(120) NOT NULL UNIQUE,
    role       VARCHAR(20) NOT NULL,
    department VARCHAR(100),
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);
`

// Migrate creates the database schema. It runs before the server accepts
// traffic and is safe to run repeatedly.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

// sampleItem holds one row of seed data.
type sampleItem struct {
	role        string
	itemType    string
	name        string
	description string
	location    string
	contactInfo string
}

var sampleItems = []sampleItem{
	{
		role:        "student",
		itemType:    "lost",
		name:        "Engineering Drawing Set",
		description: "Includes compass, rulers, drawing pens. Lost in drafting room.",
		location:    "Drafting Room 302",
		contactInfo: "student@email.com",
	},
	{
		role:        "teacher",
		itemType:    "found",
		name:        "Laser Presenter",
		description: "Black, Logitech R400, found on podium",
		location:    "Multimedia Classroom 204",
		contactInfo: "faculty@email.com",
	},
	{
		role:        "staff",
		itemType:    "lost",
		name:        "Two-way Radio",
		description: "Security model H8, lost near gymnasium",
		location:    "Gymnasium West Entrance",
		contactInfo: "security@email.com",
	},
	{
		role:        "student",
		itemType:    "found",
		name:        "AirPods Charging Case",
		description: "Just the case, no earphones, has sticker on it",
		location:    "Library 2nd Floor",
		contactInfo: "library@email.com",
	},
	{
		role:        "teacher",
		itemType:    "lost",
		name:        "Teaching USB Drive",
		description: "32GB silver SanDisk, contains course materials",
		location:    "Admin Building Copy Room",
		contactInfo: "teacher@email.com",
	},
	{
		role:        "staff",
		itemType:    "found",
		name:        "Tool Kit",
		description: "Sata 12-piece set, left outside pump house",
		location:    "Maintenance Building 101",
		contactInfo: "maintenance@email.com",
	},
}

// Seed inserts the fixed sample items when the items table is empty.
// It runs once at startup, after Migrate, and is a no-op otherwise.
func Seed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM items`); err != nil {
		return fmt.Errorf("counting items: %w", err)
	}
	if count > 0 {
		return nil
	}

	const query = `
		INSERT INTO items (role, type, name, description, location, status, contact_info, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 'active', $6, NOW(), NOW())
	`
	for _, item := range sampleItems {
		if _, err := db.ExecContext(ctx, query,
			item.role, item.itemType, item.name, item.description, item.location, item.contactInfo,
		); err != nil {
			return fmt.Errorf("seeding item %q: %w", item.name, err)
		}
	}

	logger.Log.Infow("seeded sample items", "count", len(sampleItems))
	return nil
}
