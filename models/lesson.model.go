package models

import "gorm.io/gorm"

// Lesson belongs to exactly one course. OrderIndex drives display order and
// the "first lesson is free" rule; it is not required to be unique.
type Lesson struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"index;not null"`
	Title      string `json:"title"`
	VideoURL   string `json:"video_url"`                    // external media link
	ObjectKey  string `json:"object_key" gorm:"default:''"` // uploaded media in the bucket, served via presigned URL
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `gorm:"default:false"`
}
