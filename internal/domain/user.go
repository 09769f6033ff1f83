package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

const (
	FullNameMinLength = 3
	FullNameMaxLength = 15
	PasswordMinLength = 8
)

// User is an account record. PasswordHash is empty for accounts created
// through Google sign-in only; GoogleID is nil for credential-only accounts.
// A record always carries at least one of the two.
type User struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username     string     `json:"userName" gorm:"uniqueIndex;not null"`
	FullName     string     `json:"fullName" gorm:"not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string     `json:"-"`
	Avatar       string     `json:"avatar"`
	Role         Role       `json:"role" gorm:"not null;default:USER"`
	RefreshToken string     `json:"-"`
	ResetToken   string     `json:"-"`
	ResetExpiry  *time.Time `json:"-"`
	GoogleID     *string    `json:"-" gorm:"uniqueIndex"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
