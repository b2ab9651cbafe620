package model

type AdminUser struct {
	Username     string `gorm:"type:varchar(100);primaryKey" json:"username"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
}
