package domain

// Alert names a moment the user may want an audible cue for
type Alert string

const (
	AlertBreakOver Alert = "break_over" // a time-boxed break ran out
	AlertFinished  Alert = "finished"   // a work session was recorded
)
