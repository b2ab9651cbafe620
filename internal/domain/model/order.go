package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
)

// processing ⇄ completed の2状態だけ（管理画面から切り替え）。
func (s OrderStatus) Valid() bool {
	return s == OrderStatusProcessing || s == OrderStatusCompleted
}

type Order struct {
	ID           string          `gorm:"type:varchar(20);primaryKey" json:"id"`
	CustomerName string          `gorm:"type:varchar(255);not null" json:"customerName"`
	Email        string          `gorm:"type:varchar(255);not null" json:"email"`
	Phone        string          `gorm:"type:varchar(50);not null" json:"phone"`
	City         string          `gorm:"type:varchar(100);not null" json:"city"`
	Address      string          `gorm:"type:text;not null" json:"address"`
	Status       OrderStatus     `gorm:"type:varchar(20);not null;index" json:"status"`
	Total        decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total"`
	CreatedAt    time.Time       `gorm:"not null;autoCreateTime" json:"createdAt"`
}
