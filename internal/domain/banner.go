package domain

import (
	"time"

	"github.com/google/uuid"
)

// BannerPositions is the set of placements the frontend knows how to render.
var BannerPositions = []string{
	"home_top",
	"above_search",
	"sidebar",
	"sidebar_left",
	"sidebar_right",
	"article_bottom",
}

func IsValidBannerPosition(position string) bool {
	for _, p := range BannerPositions {
		if p == position {
			return true
		}
	}
	return false
}

type Banner struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ImageURL  string    `json:"imageUrl" gorm:"not null"`
	TargetURL string    `json:"targetUrl" gorm:"not null"`
	IsActive  bool      `json:"isActive" gorm:"default:true"`
	Position  string    `json:"position" gorm:"not null;default:home_top"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
