package trace

import "github.com/templetoayurveda/backend/internal/entity"

// Stages is the full journey of a waste log, in order.
var Stages = []entity.WasteLogStatus{
	entity.WasteCollected,
	entity.WasteSegregated,
	entity.WasteProcessed,
	entity.WasteProduct,
}

// Index returns the position of a status on the journey. An unknown status
// maps to the first stage so a corrupted record still renders a sane trace.
func Index(status entity.WasteLogStatus) int {
	for i, s := range Stages {
		if s == status {
			return i
		}
	}

	return 0
}

// Next returns the stage after the given one, and false when the journey has
// already ended.
func Next(status entity.WasteLogStatus) (entity.WasteLogStatus, bool) {
	i := Index(status)
	if i >= len(Stages)-1 {
		return status, false
	}

	return Stages[i+1], true
}

// IsTerminal reports whether a status is the end of the journey.
func IsTerminal(status entity.WasteLogStatus) bool {
	return status == Stages[len(Stages)-1]
}
