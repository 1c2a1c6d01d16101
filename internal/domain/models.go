package domain

import (
	"errors"
	"fmt"

	"github.com/swaggest/jsonschema-go"
)

var ErrInvalidStatus = errors.New("invalid task status")

// Status describes where a task is in its workflow.
type Status string

const (
	StatusTodo     Status = "TODO"
	StatusProgress Status = "PROGRESS"
	StatusDone     Status = "DONE"
)

// Statuses returns every valid status in display order.
func Statuses() []Status {
	return []Status{StatusTodo, StatusProgress, StatusDone}
}

func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusProgress, StatusDone:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus converts user input into a Status, rejecting anything outside
// the enum.
func ParseStatus(text string) (Status, error) {
	s := Status(text)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, text)
	}
	return s, nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

var _ jsonschema.Exposer = Status("")

// JSONSchema exposes Status JSON schema, implements jsonschema.Exposer.
func (Status) JSONSchema() (jsonschema.Schema, error) {
	s := jsonschema.Schema{}
	s.
		WithType(jsonschema.String.Type()).
		WithTitle("Task Status").
		WithEnum(StatusTodo, StatusProgress, StatusDone)

	return s, nil
}

type Task struct {
	ID          string `json:"id"`
	Status      Status `json:"status"`
	Requirement string `json:"requirement"`
	Deadline    string `json:"deadline"` // YYYY-MM-DD
}
