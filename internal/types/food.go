package types

// Food is an immutable-per-load catalog row. SuitableFor is a comma list of
// meal slots ("breakfast,lunch,dinner").
type Food struct {
	ID                 uint    `gorm:"primaryKey" json:"id"`
	Name               string  `gorm:"not null;column:name" json:"name"`
	Description        string  `gorm:"column:description" json:"description,omitempty"`
	Calories           int     `gorm:"column:calories" json:"calories"`
	ProteinG           float64 `gorm:"column:protein_g" json:"protein_g"`
	FatG               float64 `gorm:"column:fat_g" json:"fat_g"`
	CarbsG             float64 `gorm:"column:carbs_g" json:"carbs_g"`
	Type               string  `gorm:"column:type" json:"type"`
	TargetGoal         Goal    `gorm:"column:target_goal" json:"target_goal"`
	ContraHypertension bool    `gorm:"column:contra_hypertension;default:false" json:"contra_hypertension"`
	ContraDiabetes     bool    `gorm:"column:contra_diabetes;default:false" json:"contra_diabetes"`
	IsActive           bool    `gorm:"column:is_active;default:true" json:"is_active"`
	SuitableFor        string  `gorm:"column:suitable_for;default:lunch,dinner" json:"suitable_for"`
}

func (Food) TableName() string { return "food" }
