package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WeeklyPlan stores a generated 7-day plan document as JSON. The document is
// written once by the planner and only read back for display and tracking;
// the engine never re-reads its own just-written plan.
type WeeklyPlan struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	User      *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	StartDate *time.Time     `gorm:"column:start_date" json:"start_date,omitempty"`
	EndDate   *time.Time     `gorm:"column:end_date" json:"end_date,omitempty"`
	PlanData  datatypes.JSON `gorm:"column:plan_data" json:"plan_data"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
}

func (WeeklyPlan) TableName() string { return "weekly_plan" }

// PlanTracking is one per-day, per-item completion record. Catalog items are
// matched by (plan, date, item type, item id); custom free-text items carry a
// synthetic InstanceID instead and store ItemID zero.
type PlanTracking struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	UserID       uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	User         *User       `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	WeeklyPlanID uint        `gorm:"not null;index" json:"weekly_plan_id"`
	WeeklyPlan   *WeeklyPlan `gorm:"constraint:OnDelete:CASCADE;foreignKey:WeeklyPlanID;references:ID" json:"weekly_plan,omitempty"`
	Date         *time.Time  `gorm:"column:date" json:"date,omitempty"`
	ItemType     string      `gorm:"column:item_type" json:"item_type"`
	ItemID       uint        `gorm:"column:item_id" json:"item_id"`
	InstanceID   string      `gorm:"column:instance_id;index" json:"instance_id,omitempty"`
	IsCompleted  bool        `gorm:"column:is_completed;default:false" json:"is_completed"`
	CreatedAt    time.Time   `gorm:"not null;default:now()" json:"created_at"`
}

func (PlanTracking) TableName() string { return "plan_tracking" }
