package models

import "gorm.io/gorm"

// CourseCategories is the fixed set of accepted course categories.
var CourseCategories = []string{"Programming", "Design", "Business", "Science", "Math", "Languages", "Other"}

// CourseLevels is the fixed set of accepted difficulty levels.
var CourseLevels = []string{"Beginner", "Intermediate", "Advanced"}

type Course struct {
	gorm.Model
	Title           string         `json:"title" gorm:"not null"`
	Description     string         `json:"description" gorm:"not null"`
	Category        string         `json:"category" gorm:"not null"` // one of CourseCategories
	Instructor      string         `json:"instructor" gorm:"not null"`
	InstructorEmail string         `json:"instructorEmail" gorm:"not null"`
	Duration        float64        `json:"duration"` // in hours
	Level           string         `json:"level" gorm:"default:'Beginner'"`
	Thumbnail       string         `json:"thumbnail"`
	TotalStudents   int            `json:"totalStudents" gorm:"default:0"`
	Rating          float64        `json:"rating" gorm:"default:0"`
	IsPublished     bool           `json:"isPublished" gorm:"default:false"`
	Modules         []CourseModule `json:"modules"`
	// Videos is derived from Video.CourseID; the foreign key on the video
	// side is the single authoritative containment edge.
	Videos           []Video `json:"videos"`
	EnrolledStudents []User  `json:"enrolledStudents" gorm:"many2many:course_enrollments"`
}

type CourseModule struct {
	gorm.Model
	CourseID      uint            `json:"courseId"`
	Title         string          `json:"title" gorm:"not null"`
	Description   string          `json:"description"`
	SequenceOrder int             `json:"order"`
	Sections      []ModuleSection `json:"sections" gorm:"foreignKey:ModuleID"`
}

type ModuleSection struct {
	gorm.Model
	ModuleID      uint   `json:"moduleId"`
	Title         string `json:"title"`
	SequenceOrder int    `json:"order"`
	VideoIDs      string `json:"videoIds"` // JSON array of video ids, not FK-enforced
}

// IsValidCategory reports whether category is a member of CourseCategories.
func IsValidCategory(category string) bool {
	for _, c := range CourseCategories {
		if c == category {
			return true
		}
	}
	return false
}

// IsValidLevel reports whether level is a member of CourseLevels.
func IsValidLevel(level string) bool {
	for _, l := range CourseLevels {
		if l == level {
			return true
		}
	}
	return false
}
