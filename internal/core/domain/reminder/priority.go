package reminder

import "errors"

var ErrParsePriority = errors.New("invalid priority")

type Priority struct {
	v string
}

func (p Priority) String() string {
	return p.v
}

func ParsePriority(value string) (Priority, error) {
	switch value {
	case "high":
		return PriorityHigh, nil
	case "medium":
		return PriorityMedium, nil
	case "low":
		return PriorityLow, nil
	default:
		return PriorityUnknown, ErrParsePriority
	}
}

var (
	PriorityUnknown = Priority{}
	PriorityHigh    = Priority{v: "high"}
	PriorityMedium  = Priority{v: "medium"}
	PriorityLow     = Priority{v: "low"}
)
