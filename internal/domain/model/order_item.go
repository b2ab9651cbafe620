package model

import "github.com/shopspring/decimal"

// Priceは注文時点の単価スナップショット（カタログから再取得しない）。
type OrderItem struct {
	ID        string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	OrderID   string          `gorm:"type:varchar(20);not null;index" json:"orderId"`
	ProductID string          `gorm:"type:varchar(36);not null;index" json:"productId"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
}
