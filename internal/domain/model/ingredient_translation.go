package model

// display_orderはベース言語のingredientの位置と対で合わせる。
type IngredientTranslation struct {
	ID           string `gorm:"type:varchar(36);primaryKey" json:"id"`
	ProductID    string `gorm:"type:varchar(36);not null;index" json:"productId"`
	Lang         string `gorm:"type:varchar(5);not null" json:"lang"`
	Ingredient   string `gorm:"type:varchar(255);not null" json:"ingredient"`
	DisplayOrder int    `gorm:"not null" json:"displayOrder"`
}
