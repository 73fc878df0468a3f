package types

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email       string     `gorm:"uniqueIndex;not null;column:email" json:"email"`
	FullName    string     `gorm:"not null;column:full_name" json:"full_name"`
	Gender      string     `gorm:"column:gender" json:"gender"`
	DateOfBirth *time.Time `gorm:"column:date_of_birth" json:"date_of_birth,omitempty"`
	CreatedAt   time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (User) TableName() string { return "user" }
