package models

import "time"

// UserDB represents a user record in the database.
// The table exists for future authentication; no route reads or writes it.
type UserDB struct {
	ID         int64     `db:"id"`         // Primary key
	Username   string    `db:"username"`   // Unique username
	Email      string    `db:"email"`      // Unique email
	Role       string    `db:"role"`       // student, teacher, staff
	Department *string   `db:"department"` // Optional department
	CreatedAt  time.Time `db:"created_at"` // Creation timestamp
}
