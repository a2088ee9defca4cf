package models

import "gorm.io/gorm"

// Question is a multiple-choice quiz question attached to a video.
// CorrectAnswer never leaves the server on read paths; listing endpoints
// serialize questions through a projection without it.
type Question struct {
	gorm.Model
	VideoID       uint   `json:"videoId" gorm:"not null;index"`
	QuestionText  string `json:"questionText" gorm:"not null"`
	Options       string `json:"options"` // JSON array of option strings
	CorrectAnswer string `json:"-" gorm:"not null"`
}
