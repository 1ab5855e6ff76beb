package utils

import (
	"math"

	"coursecraft/models"
)

// FirstLessonID returns the id of the lesson with the lowest order index in
// the slice, breaking ties by the lower id. The second return is false for an
// empty slice.
func FirstLessonID(lessons []models.Lesson) (uint, bool) {
	if len(lessons) == 0 {
		return 0, false
	}

	first := lessons[0]
	for _, lesson := range lessons[1:] {
		if lesson.OrderIndex < first.OrderIndex ||
			(lesson.OrderIndex == first.OrderIndex && lesson.ID < first.ID) {
			first = lesson
		}
	}
	return first.ID, true
}

// PermittedLessonIDs is the single playback policy: a purchased course
// unlocks every lesson, otherwise only the first lesson in course order is
// playable. Both the detail view and the playback endpoint go through this.
func PermittedLessonIDs(lessons []models.Lesson, purchased bool) map[uint]bool {
	permitted := make(map[uint]bool, len(lessons))
	if purchased {
		for _, lesson := range lessons {
			permitted[lesson.ID] = true
		}
		return permitted
	}

	if firstID, ok := FirstLessonID(lessons); ok {
		permitted[firstID] = true
	}
	return permitted
}

// IsLessonPlayable reports whether a single lesson is playable under the
// policy above.
func IsLessonPlayable(lessons []models.Lesson, lessonID uint, purchased bool) bool {
	return PermittedLessonIDs(lessons, purchased)[lessonID]
}

// CompletionPercent computes the per-course completion percentage for a user.
// A course with zero lessons is 0 percent complete, never a division by zero.
func CompletionPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
