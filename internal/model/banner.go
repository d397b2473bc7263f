package model

import (
	"github.com/google/uuid"
)

// Banner 首頁促銷橫幅
type Banner struct {
	BannerID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"banner_id"`
	Title     string    `gorm:"not null;type:varchar(200)" json:"title"`
	Subtitle  string    `gorm:"type:varchar(300)" json:"subtitle"`
	ImageURL  string    `gorm:"type:text" json:"image_url"`
	LinkURL   string    `gorm:"type:text" json:"link_url"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	BaseModel
}
