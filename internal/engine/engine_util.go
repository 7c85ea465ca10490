package engine

func NewEmptyState() State {
	return State{
		Allies:  make([]string, TeamSize),
		Enemies: make([]string, TeamSize),
	}
}

func ContainsEvent(events []Event, eventType EventType) bool {
	for _, event := range events {
		if event.Type == eventType {
			return true
		}
	}
	return false
}

// Picked returns the occupied slots of one side in slot order.
func Picked(s State, side Side) []string {
	slots, err := s.slots(side)
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(slots))
	for _, c := range slots {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

func ParseSide(side string) (Side, bool) {
	switch side {
	case "ally", "allies":
		return SideAlly, true
	case "enemy", "enemies":
		return SideEnemy, true
	default:
		return "", false
	}
}
