package models

import "gorm.io/gorm"

const (
	ProgressInProgress = "In Progress"
	ProgressCompleted  = "Completed"
)

// Progress tracks one student's completion state for one course. One record
// per (student, course) pair, created at enrollment. Percentage is always
// recomputed from CompletedLessons so the two cannot drift.
type Progress struct {
	gorm.Model
	StudentID        uint    `json:"studentId" gorm:"not null;index"`
	CourseID         uint    `json:"courseId" gorm:"not null;index"`
	CompletedLessons int     `json:"completedLessons" gorm:"default:0"`
	TotalLessons     int     `json:"totalLessons" gorm:"not null"`
	Percentage       float64 `json:"percentage" gorm:"default:0"`
	Status           string  `json:"status" gorm:"default:'In Progress'"` // In Progress, Completed
}
