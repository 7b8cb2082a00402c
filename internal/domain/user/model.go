package user

import (
	"strings"
	"time"
)

type User struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Email            string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name             string    `gorm:"size:100" json:"name"`
	Password         string    `gorm:"size:255" json:"-"`
	Position         string    `gorm:"size:100" json:"position"`
	CanAccessFolders bool      `gorm:"default:false" json:"can_access_folders"`
	Placeholder      bool      `gorm:"default:false" json:"placeholder"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Actor is the authenticated caller of a workflow operation.
type Actor struct {
	ID       uint
	Email    string
	Name     string
	Elevated bool
}

// HasElevatedAccess reports the org-wide privilege that bypasses
// per-document role checks for deadline edits and deletion.
func (a Actor) HasElevatedAccess() bool {
	return a.Elevated
}

func (a Actor) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Email
}

func ActorFromUser(u User) Actor {
	return Actor{ID: u.ID, Email: u.Email, Name: u.Name, Elevated: u.CanAccessFolders}
}

// NormalizeEmail is the canonical form used for every email comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func EqualEmail(a, b string) bool {
	return NormalizeEmail(a) == NormalizeEmail(b)
}
