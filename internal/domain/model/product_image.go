package model

// display_order 0はproducts.imageを複製したメイン画像
type ProductImage struct {
	ID           string `gorm:"type:varchar(36);primaryKey" json:"id"`
	ProductID    string `gorm:"type:varchar(36);not null;index" json:"productId"`
	ImageURL     string `gorm:"type:varchar(500);not null" json:"imageUrl"`
	DisplayOrder int    `gorm:"not null" json:"displayOrder"`
}
