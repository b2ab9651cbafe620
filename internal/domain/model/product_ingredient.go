package model

type ProductIngredient struct {
	ID           string `gorm:"type:varchar(36);primaryKey" json:"id"`
	ProductID    string `gorm:"type:varchar(36);not null;index" json:"productId"`
	Ingredient   string `gorm:"type:varchar(255);not null" json:"ingredient"`
	DisplayOrder int    `gorm:"not null" json:"displayOrder"`
}
