package models

import (
	"time"
)

// LessonPlan is a generated plan. PlanContent is the provider's text, stored
// as returned.
type LessonPlan struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"-" gorm:"not null;index"` // foreign key
	Grade       string    `json:"grade" gorm:"size:255"`
	Subject     string    `json:"subject" gorm:"size:255"`
	Topic       string    `json:"topic" gorm:"size:255"`
	PlanContent string    `json:"plan_content" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}

// PlanSummary is a history row: everything but the content.
type PlanSummary struct {
	ID        uint      `json:"id"`
	Grade     string    `json:"grade"`
	Subject   string    `json:"subject"`
	Topic     string    `json:"topic"`
	CreatedAt time.Time `json:"created_at"`
}

// PlanExport points at an archived copy of a plan.
type PlanExport struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}
