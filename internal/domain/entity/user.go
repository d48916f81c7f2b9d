// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity entity, representing one registered collector.
// The stored credential (bcrypt digest) deliberately never appears here; it
// lives only in the persistence model and is handled by the repository layer.
type User struct {
	ID             uuid.UUID      `json:"id"`                        // Global unique identifier for the user.
	Email          string         `json:"email"`                     // Primary login identifier; unique across the system.
	Nickname       string         `json:"nickname"`                  // Public handle shown to other collectors; unique across the system.
	Name           string         `json:"name,omitempty"`            // Optional display or real name.
	Bio            string         `json:"bio,omitempty"`             // Short free-form profile text.
	AvatarURL      string         `json:"avatar_url,omitempty"`      // URL of the profile picture.
	Phone          string         `json:"phone,omitempty"`           // Optional contact phone.
	SocialNetworks map[string]any `json:"social_networks,omitempty"` // Arbitrary social links keyed by network name.
	Role           Role           `json:"role"`                      // Privilege tier; defaults to RoleUser on registration.
	IsActive       bool           `json:"is_active"`                 // Soft-disable flag for the account.
	VisitCount     int            `json:"visit_count"`               // How many times this profile has been viewed.
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	LastSeen       time.Time      `json:"last_seen"`
}

// PublicProfile returns the subset of user data safe to embed in auth
// responses (registration and login payloads).
type PublicProfile struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Nickname string    `json:"nickname"`
}

// Public projects the user onto its auth-response shape.
func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:       u.ID,
		Email:    u.Email,
		Nickname: u.Nickname,
	}
}
