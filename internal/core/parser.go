// ABOUTME: Response parser that pulls an action plan out of free-form LLM output
// ABOUTME: Tolerates code fences and prose around the JSON object, optionally repairing bad JSON
package core

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/harper/research/internal/models"
	"github.com/kaptinlin/jsonrepair"
)

// Parser extracts action plans from LLM replies
type Parser struct {
	// Repair retries JSON syntax errors through jsonrepair before giving up
	Repair bool
}

// ParsePlan parses a reply with a strict parser (no repair)
func ParsePlan(raw string) (*models.ActionPlan, error) {
	return Parser{}.Parse(raw)
}

// Parse extracts the widest {...} span from raw and decodes it as an action plan.
// Missing action/input keys are tolerated; non-string values are a ParseError.
func (p Parser) Parse(raw string) (*models.ActionPlan, error) {
	span, ok := extractObject(raw)
	if !ok {
		return nil, &ParseError{Reason: ErrNoJSON}
	}

	fields, err := p.decode(span)
	if err != nil {
		return nil, &ParseError{Reason: ErrMalformedJSON, Err: err}
	}

	plan := &models.ActionPlan{}
	if v, ok := fields["action"]; ok && !isNull(v) {
		var action string
		if err := json.Unmarshal(v, &action); err != nil {
			return nil, &ParseError{Reason: ErrPlanShape, Err: err}
		}
		plan.Action = models.Action(action)
	}
	if v, ok := fields["input"]; ok && !isNull(v) {
		if err := json.Unmarshal(v, &plan.Input); err != nil {
			return nil, &ParseError{Reason: ErrPlanShape, Err: err}
		}
		plan.HasInput = true
	}
	return plan, nil
}

func (p Parser) decode(span string) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	err := json.Unmarshal([]byte(span), &fields)
	if err == nil {
		return fields, nil
	}

	var syntaxErr *json.SyntaxError
	if !p.Repair || !errors.As(err, &syntaxErr) {
		return nil, err
	}

	fixed, repairErr := jsonrepair.JSONRepair(span)
	if repairErr != nil {
		return nil, err
	}
	fields = nil
	if err := json.Unmarshal([]byte(fixed), &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// extractObject strips whitespace and backtick fences, then returns the text
// from the first '{' to the last '}'.
func extractObject(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimLeft(s, "`")
	s = strings.TrimRight(s, "`")
	s = strings.TrimSpace(s)

	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end < start {
		return "", false
	}
	return s[start : end+1], true
}

func isNull(v json.RawMessage) bool {
	return strings.TrimSpace(string(v)) == "null"
}
