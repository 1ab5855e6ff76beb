package models

import (
	"time"

	"gorm.io/gorm"
)

// User is the application profile for an authenticated identity.
// Role is fixed at signup.
type User struct {
	gorm.Model
	FullName  string    `json:"full_name" gorm:"default:''"`
	Email     string    `json:"email" gorm:"unique;not null"`
	AvatarURL string    `json:"avatar_url" gorm:"default:''"`
	Role      string    `json:"role" gorm:"default:'STUDENT'"` // STUDENT, ADMIN
	Password  string    `json:"-" gorm:"not null"`
	LastLogin time.Time `json:"last_login" gorm:"default:NULL"`
	IsDeleted bool      `gorm:"default:false"`
}
