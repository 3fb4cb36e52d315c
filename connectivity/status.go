package connectivity

type Status int

const (
	Unavailable Status = iota
	Available
	Losing
	Lost
)

func (s Status) String() string {
	switch s {
	case Available:
		return "Available"
	case Losing:
		return "Losing"
	case Lost:
		return "Lost"
	default:
		return "Unavailable"
	}
}

// Message is the notice shown instead of the screens while offline.
func (s Status) Message() string {
	switch s {
	case Losing:
		return "Losing internet connection..."
	case Lost:
		return "Lost internet connection"
	case Unavailable:
		return "Unable to connect to the internet"
	default:
		return ""
	}
}

// next returns the status after a probe. failures is the number of
// consecutive failed probes including this one.
func next(prev Status, ok bool, failures, lostAfter int) Status {
	if ok {
		return Available
	}
	switch prev {
	case Unavailable:
		return Unavailable
	case Available:
		if failures >= lostAfter {
			return Lost
		}
		return Losing
	case Losing:
		if failures >= lostAfter {
			return Lost
		}
		return Losing
	default:
		return Lost
	}
}
