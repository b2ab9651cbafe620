package model

import "time"

type Subscriber struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(255);not null" json:"email"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
}
