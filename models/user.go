package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account. Email is the login key; Password holds a bcrypt hash and is never serialized.
type User struct {
	ID              uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name            string     `json:"name" db:"name" gorm:"type:text;not null"`
	Lastname        string     `json:"lastname" db:"lastname" gorm:"type:text;not null"`
	Email           string     `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex:idx_users_email"`
	Password        string     `json:"-" db:"password" gorm:"type:varchar(255);not null"`
	DepartmentEmail *string    `json:"departmentEmail,omitempty" db:"department_email" gorm:"type:text"`
	Deleted         bool       `json:"-" db:"deleted" gorm:"not null;default:false"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at" gorm:"not null"`
	Interests       []Interest `json:"interests,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string { return "users" }
