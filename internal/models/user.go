package models

import (
	"time"
)

type User struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	Email        string       `json:"email" gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string       `json:"-" gorm:"size:255;not null"`
	CreatedAt    time.Time    `json:"createdAt" gorm:"autoCreateTime"`
	Plans        []LessonPlan `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"` // one-to-many relation
}
