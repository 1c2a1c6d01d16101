package domain

// DateProvider supplies the current calendar date as YYYY-MM-DD.
type DateProvider interface {
	Today() string
}

type Store interface {
	Create(requirement string) Task
	UpdateStatus(id string, status Status)
	UpdateRequirement(id string, requirement string)
	UpdateDeadline(id string, deadline string)
	Remove(id string)

	Get(id string) (Task, bool)
	Deadline(id string) (string, bool)
	Len() int

	List() []Task
	ListByStatus(status Status) []Task
	Todo() []Task
	InProgress() []Task
	Done() []Task
}
