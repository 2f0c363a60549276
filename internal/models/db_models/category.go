package db_models

// Category groups questions. Rows come from seeding only and are never
// updated through the API. The name lives in the "type" column.
type Category struct {
	ID        uint       `gorm:"primaryKey"`
	Name      string     `gorm:"column:type;not null"`
	Questions []Question `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}
