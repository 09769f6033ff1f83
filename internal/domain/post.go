package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const MaxPostCategories = 3

// ValidCategories is the fixed set of categories a post may carry.
var ValidCategories = []string{
	"Travel",
	"Nature",
	"City",
	"Adventure",
	"Culture",
	"Food",
	"Beaches",
	"Mountains",
	"Historical",
	"Wildlife",
}

func IsValidCategory(category string) bool {
	for _, c := range ValidCategories {
		if c == category {
			return true
		}
	}
	return false
}

type Post struct {
	ID             uuid.UUID                    `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title          string                       `json:"title" gorm:"not null"`
	AuthorName     string                       `json:"authorName" gorm:"not null"`
	ImageLink      string                       `json:"imageLink"`
	Categories     datatypes.JSONSlice[string]  `json:"categories"`
	Description    string                       `json:"description" gorm:"not null"`
	IsFeaturedPost bool                         `json:"isFeaturedPost" gorm:"default:false"`
	TimeOfPost     time.Time                    `json:"timeOfPost"`
	AuthorID       uuid.UUID                    `json:"authorId" gorm:"type:uuid;not null;index"`
	ViewCount      int                          `json:"viewCount" gorm:"default:0"`
	CreatedAt      time.Time                    `json:"createdAt"`
	UpdatedAt      time.Time                    `json:"updatedAt"`
}
