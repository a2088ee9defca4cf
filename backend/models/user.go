package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	FullName       string `json:"fullName" gorm:"not null"`
	Email          string `json:"email" gorm:"unique;not null"`
	PasswordHash   string `json:"-" gorm:"not null"`
	Role           string `json:"role" gorm:"default:'student'"` // student, instructor, admin
	IsActive       bool   `json:"isActive" gorm:"default:true"`
	Bio            string `json:"bio"`
	ProfilePicture string `json:"profilePicture"`
}
