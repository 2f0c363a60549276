package db_models

type Question struct {
	ID         uint   `gorm:"primaryKey"`
	Text       string `gorm:"column:question"`
	Answer     string
	CategoryID uint `gorm:"column:category;not null;index"`
	Difficulty int
}
