package domain

// Presentation reference data consumed by rendering collaborators.
// The engine itself never reads these.

// StatusColors maps a status to its block background color
var StatusColors = map[ReservationStatus]string{
	StatusPending:   "#FCD34D", // yellow
	StatusConfirmed: "#3B82F6", // blue
	StatusSeated:    "#10B981", // green
	StatusFinished:  "#9CA3AF", // gray
	StatusNoShow:    "#EF4444", // red
	StatusCancelled: "#6B7280", // dark gray
}

// StatusTextColors maps a status to its text color (for contrast)
var StatusTextColors = map[ReservationStatus]string{
	StatusPending:   "#78350F",
	StatusConfirmed: "#1E3A8A",
	StatusSeated:    "#064E3B",
	StatusFinished:  "#1F2937",
	StatusNoShow:    "#7F1D1D",
	StatusCancelled: "#1F2937",
}

// PriorityLabels maps a priority to its badge text (empty = no badge)
var PriorityLabels = map[Priority]string{
	PriorityStandard:   "",
	PriorityVIP:        "VIP",
	PriorityLargeGroup: "Large Group",
}

// PriorityColors maps a priority to its badge color
var PriorityColors = map[Priority]string{
	PriorityStandard:   "",
	PriorityVIP:        "#8B5CF6", // purple
	PriorityLargeGroup: "#F59E0B", // amber
}
