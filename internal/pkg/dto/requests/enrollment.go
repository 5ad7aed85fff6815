package requests

import "time"

type EnrollClient struct {
	ClientID   string     `json:"clientId" validate:"required"`
	ProgramID  string     `json:"programId" validate:"required"`
	Status     string     `json:"status" validate:"omitempty,oneof=active completed cancelled"`
	EnrolledAt *time.Time `json:"enrolledAt" validate:"omitempty"`
	Notes      string     `json:"notes" validate:"omitempty,max=2000"`
}

type TransitionEnrollment struct {
	Status string `json:"status" validate:"required,oneof=active completed cancelled"`
}
