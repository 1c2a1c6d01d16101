// Package clock provides the calendar date source used when tasks are created.
package clock

import (
	"time"

	"git.sr.ht/~jakintosh/tasks/internal/domain"
)

const DateLayout = "2006-01-02"

var (
	_ domain.DateProvider = System{}
	_ domain.DateProvider = Fixed("")
	_ domain.DateProvider = Func(nil)
)

// System reads the wall clock. A nil Location means time.Local.
type System struct {
	Location *time.Location
}

func (s System) Today() string {
	loc := s.Location
	if loc == nil {
		loc = time.Local
	}
	return time.Now().In(loc).Format(DateLayout)
}

// Fixed always reports the same date.
type Fixed string

func (f Fixed) Today() string {
	return string(f)
}

type Func func() string

func (f Func) Today() string {
	return f()
}
