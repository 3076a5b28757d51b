// Package dto holds the JSON bodies exchanged by the HTTP API. The server
// encodes them and the client decodes them, so both sides share one shape
// per endpoint.
package dto

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/rohits-web03/lessonplanner/internal/models"
	"github.com/rohits-web03/lessonplanner/internal/utils"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// FlexID is a numeric id that also accepts a JSON string holding digits.
type FlexID uint

func (id *FlexID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*id = 0
		return nil
	}
	s := string(b)
	if len(b) >= 2 && b[0] == '"' && b[len(b)-1] == '"' {
		s = string(b[1 : len(b)-1])
		if s == "" {
			*id = 0
			return nil
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", s)
	}
	*id = FlexID(n)
	return nil
}

type GeneratePlanRequest struct {
	UserID  FlexID `json:"userId,omitempty"`
	Grade   string `json:"grade"`
	Subject string `json:"subject"`
	Topic   string `json:"topic"`
}

type AuthResponse struct {
	utils.Envelope
	UserID    uint      `json:"userId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type GeneratePlanResponse struct {
	utils.Envelope
	Plan      string    `json:"plan"`
	PlanID    uint      `json:"planId"`
	CreatedAt time.Time `json:"createdAt"`
}

type HistoryResponse struct {
	utils.Envelope
	History []models.PlanSummary `json:"history"`
}

type PlanResponse struct {
	utils.Envelope
	Plan *models.LessonPlan `json:"plan"`
}

type TemplatesResponse struct {
	utils.Envelope
	Templates []models.Template `json:"templates"`
}

type ExportResponse struct {
	utils.Envelope
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}
