package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID              string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name            string          `gorm:"type:varchar(255);not null" json:"name"`
	Slug            string          `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	Price           decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Image           string          `gorm:"type:varchar(500);not null" json:"image"`
	Description     string          `gorm:"type:text" json:"description"`
	FullDescription string          `gorm:"type:text" json:"fullDescription"`
	CreatedAt       time.Time       `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time       `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}
