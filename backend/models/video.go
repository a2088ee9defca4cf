package models

import "gorm.io/gorm"

type Video struct {
	gorm.Model
	Title         string     `json:"title" gorm:"not null"`
	Description   string     `json:"description"`
	CourseID      uint       `json:"courseId" gorm:"not null;index"`
	VideoURL      string     `json:"videoUrl" gorm:"not null"`
	Duration      float64    `json:"duration"` // in seconds
	Thumbnail     string     `json:"thumbnail"`
	UploadedBy    string     `json:"uploadedBy" gorm:"not null"`
	SequenceOrder int        `json:"order" gorm:"default:0"` // course-scoped position
	Module        string     `json:"module"`                 // free-text label, not a FK
	Section       string     `json:"section"`                // free-text label, not a FK
	FileSize      int64      `json:"fileSize"`               // in bytes, zero for external URLs
	MimeType      string     `json:"mimeType"`
	ViewCount     int64      `json:"viewCount" gorm:"default:0"`
	IsPublished   bool       `json:"isPublished" gorm:"default:false"`
	Questions     []Question `json:"quiz"`
}
