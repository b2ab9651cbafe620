package model

// 1行 = 1言語。空のフィールドはベース言語へのフォールバック。
type ProductTranslation struct {
	ID              string  `gorm:"type:varchar(36);primaryKey" json:"id"`
	ProductID       string  `gorm:"type:varchar(36);not null;uniqueIndex:idx_product_lang" json:"productId"`
	Lang            string  `gorm:"type:varchar(5);not null;uniqueIndex:idx_product_lang" json:"lang"`
	Name            *string `gorm:"type:varchar(255)" json:"name"`
	Description     *string `gorm:"type:text" json:"description"`
	FullDescription *string `gorm:"type:text" json:"fullDescription"`
}
