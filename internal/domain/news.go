package domain

import (
	"time"

	"github.com/google/uuid"
)

// NewsCategories is the fixed set of categories a news article may carry.
var NewsCategories = []string{
	"politics",
	"sports",
	"technology",
	"entertainment",
	"business",
	"health",
	"science",
	"other",
}

func IsValidNewsCategory(category string) bool {
	for _, c := range NewsCategories {
		if c == category {
			return true
		}
	}
	return false
}

type News struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string    `json:"title" gorm:"not null"`
	Content     string    `json:"content" gorm:"not null"`
	Summary     string    `json:"summary" gorm:"not null"`
	ImageURL    string    `json:"imageUrl" gorm:"not null"`
	SourceURL   string    `json:"sourceUrl" gorm:"not null"`
	SourceName  string    `json:"sourceName" gorm:"not null;default:NewsAPI"`
	Category    string    `json:"category" gorm:"not null;index"`
	PublishedAt time.Time `json:"publishedAt" gorm:"not null;index"`
	Author      string    `json:"author" gorm:"default:Unknown"`
	Views       int       `json:"views" gorm:"default:0"`
	IsFeatured  bool      `json:"isFeatured" gorm:"default:false"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
