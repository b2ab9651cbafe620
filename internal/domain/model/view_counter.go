package model

// 1行だけ（id=1）の累計ページビュー。
type ViewCounter struct {
	ID    int   `gorm:"primaryKey" json:"id"`
	Count int64 `gorm:"not null" json:"count"`
}
