package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActType — тип действия риэлтора.
type ActType string

const (
	ActTypeClientMeeting ActType = "client_meeting"
	ActTypeShowing       ActType = "showing"
	ActTypeScheduledCall ActType = "scheduled_call"
)

// Act — запись о действии риэлтора: встреча, показ, звонок.
type Act struct {
	ID       uuid.UUID
	DateTime time.Time
	Duration int // минуты
	Type     ActType
	Comment  string
}

// Validate проверяет тип и длительность действия.
func (a Act) Validate() error {
	switch a.Type {
	case ActTypeClientMeeting, ActTypeShowing, ActTypeScheduledCall:
	default:
		return InvalidInput("unknown act type %q", a.Type)
	}
	if a.Duration <= 0 {
		return InvalidInput("act duration must be positive")
	}
	if a.DateTime.IsZero() {
		return InvalidInput("act date and time are required")
	}
	return nil
}
