package reservation

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// cancelled and completed accept no further transitions
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

var legalTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range legalTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}
