package models

import (
	"fmt"
	"strings"
	"time"
)

// Reporter roles. Writes reject anything outside this set.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleStaff   = "staff"
)

// Report kinds.
const (
	TypeLost  = "lost"
	TypeFound = "found"
)

// Item lifecycle statuses.
const (
	StatusActive   = "active"
	StatusReturned = "returned"
	StatusClaimed  = "claimed"
)

// ValidRole reports whether role is one of the known reporter roles.
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleTeacher || role == RoleStaff
}

// ValidType reports whether itemType is one of the known report kinds.
func ValidType(itemType string) bool {
	return itemType == TypeLost || itemType == TypeFound
}

// ValidStatus reports whether status is one of the known lifecycle statuses.
func ValidStatus(status string) bool {
	return status == StatusActive || status == StatusReturned || status == StatusClaimed
}

// ItemDB represents an item row in the database
type ItemDB struct {
	ID          int64     `db:"id"`           // Primary key
	Role        string    `db:"role"`         // Reporter role: student, teacher, staff
	Type        string    `db:"type"`         // Report kind: lost, found
	Name        string    `db:"name"`         // Short title
	Description string    `db:"description"`  // Free text
	Location    string    `db:"location"`     // Where the item was lost or found
	Status      string    `db:"status"`       // active, returned, claimed
	ContactInfo string    `db:"contact_info"` // Optional contact information
	CreatedAt   time.Time `db:"created_at"`   // Creation timestamp
	UpdatedAt   time.Time `db:"updated_at"`   // Last update timestamp
}

// ItemResponse is the API representation of an item, including fields
// derived at serialization time.
// swagger:model ItemResponse
type ItemResponse struct {
	ID          int64  `json:"id"`
	Role        string `json:"role"`
	RoleDisplay string `json:"role_display"`
	Type        string `json:"type"`
	TypeDisplay string `json:"type_display"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	ContactInfo string `json:"contact_info"`
	CreatedAt   string `json:"created_at"`
	TimeAgo     string `json:"time_ago"`
}

var roleLabels = map[string]string{
	RoleStudent: "Student",
	RoleTeacher: "Teacher",
	RoleStaff:   "Staff",
}

// RoleDisplay returns the display label for a reporter role.
func RoleDisplay(role string) string {
	if label, ok := roleLabels[role]; ok {
		return label
	}
	if role == "" {
		return ""
	}
	return strings.ToUpper(role[:1]) + role[1:]
}

// TypeDisplay returns the display label for a report kind.
func TypeDisplay(itemType string) string {
	if itemType == TypeLost {
		return "LOST"
	}
	return "FOUND"
}

// ToResponse converts a database row to its API representation.
// Derived fields are computed against the current time and never persisted.
func (i ItemDB) ToResponse() ItemResponse {
	location := i.Location
	if location == "" {
		location = "Not specified"
	}

	return ItemResponse{
		ID:          i.ID,
		Role:        i.Role,
		RoleDisplay: RoleDisplay(i.Role),
		Type:        i.Type,
		TypeDisplay: TypeDisplay(i.Type),
		Name:        i.Name,
		Description: i.Description,
		Location:    location,
		Status:      i.Status,
		ContactInfo: i.ContactInfo,
		CreatedAt:   i.CreatedAt.Format("2006-01-02 15:04"),
		TimeAgo:     relativeTime(i.CreatedAt, time.Now().UTC()),
	}
}

// relativeTime renders the elapsed time between from and now using
// whole-unit truncation: days first, then hours, then minutes.
func relativeTime(from, now time.Time) string {
	diff := now.Sub(from)

	if days := int(diff.Hours()) / 24; days > 0 {
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	}

	if hours := int(diff.Hours()); hours >= 1 {
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	}

	if minutes := int(diff.Minutes()); minutes >= 1 {
		if minutes == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", minutes)
	}

	return "Just now"
}

// ToResponses converts a slice of rows, preserving order.
func ToResponses(items []ItemDB) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, item.ToResponse())
	}
	return out
}
