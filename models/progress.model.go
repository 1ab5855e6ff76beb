package models

import "gorm.io/gorm"

// Progress is the per-lesson completion marker for a user. At most one row
// exists per (user, lesson); completion events upsert on that key.
type Progress struct {
	gorm.Model
	UserID    uint `json:"user_id" gorm:"not null;uniqueIndex:idx_user_lesson_progress"`
	LessonID  uint `json:"lesson_id" gorm:"not null;uniqueIndex:idx_user_lesson_progress"`
	Completed bool `json:"completed" gorm:"default:false"`
}
