package models

import "gorm.io/gorm"

// Purchase is an enrollment grant: one purchase unlocks all lessons of one
// course for one user. Rows are never updated or deleted.
type Purchase struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null;uniqueIndex:idx_user_course_purchase"`
	CourseID  uint   `json:"course_id" gorm:"index;not null;uniqueIndex:idx_user_course_purchase"`
	PricePaid int    `json:"price_paid" gorm:"default:0"`
	Course    Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
