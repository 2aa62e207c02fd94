package models

// Skill is a category tag workers advertise and customers search by.
type Skill struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:100;uniqueIndex;not null"`
}

func (Skill) TableName() string {
	return "skills"
}
