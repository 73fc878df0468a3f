package types

// Exercise is an immutable-per-load catalog row. Intensity runs 1..3,
// CaloriesBurn30Min is the burn for a standard 30 minute session.
type Exercise struct {
	ID                 uint   `gorm:"primaryKey" json:"id"`
	Name               string `gorm:"not null;column:name" json:"name"`
	Description        string `gorm:"column:description" json:"description,omitempty"`
	Type               string `gorm:"column:type" json:"type"`
	Intensity          int    `gorm:"column:intensity" json:"intensity"`
	CaloriesBurn30Min  int    `gorm:"column:calories_burn_30min" json:"calories_burn_30min"`
	TargetGoal         Goal   `gorm:"column:target_goal" json:"target_goal"`
	MinAge             int    `gorm:"column:min_age;default:12" json:"min_age"`
	MaxAge             int    `gorm:"column:max_age;default:80" json:"max_age"`
	ContraHypertension bool   `gorm:"column:contra_hypertension;default:false" json:"contra_hypertension"`
	ContraDiabetes     bool   `gorm:"column:contra_diabetes;default:false" json:"contra_diabetes"`
	IsActive           bool   `gorm:"column:is_active;default:true" json:"is_active"`
}

func (Exercise) TableName() string { return "exercise" }
