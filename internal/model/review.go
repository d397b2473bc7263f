package model

import (
	"github.com/google/uuid"
)

// Review 商品評價  需要管理員審核後才公開
type Review struct {
	ReviewID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"review_id"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	AuthorName string    `gorm:"not null;type:varchar(100)" json:"author_name"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    string    `gorm:"type:text" json:"comment"`
	Approved   bool      `gorm:"not null;default:false" json:"approved"`
	BaseModel
}
