// ABOUTME: Turn records the outcome of one request handled by the dispatcher
// ABOUTME: Carries the raw plan, parsed plan and whichever output the action produced
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Turn represents a single dispatcher turn
type Turn struct {
	TurnID       string      `json:"turn_id"`
	Timestamp    time.Time   `json:"timestamp"`
	Request      string      `json:"request"`
	RawPlan      string      `json:"raw_plan,omitempty"`
	Plan         *ActionPlan `json:"plan,omitempty"`
	Answer       string      `json:"answer,omitempty"`
	Confirmation string      `json:"confirmation,omitempty"`
}

// NewTurn starts a turn record for the given request
func NewTurn(request string) *Turn {
	return &Turn{
		TurnID:    generateTurnID(),
		Timestamp: time.Now().UTC(),
		Request:   request,
	}
}

// Output returns the text the turn produced for the user
func (t *Turn) Output() string {
	if t.Answer != "" {
		return t.Answer
	}
	return t.Confirmation
}

// generateTurnID generates a unique turn identifier
func generateTurnID() string {
	return fmt.Sprintf("turn_%s_%s", time.Now().Format("20060102_150405"), uuid.New().String()[:8])
}
