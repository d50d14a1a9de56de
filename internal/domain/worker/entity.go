package worker

import "time"

type Shift string

const (
	ShiftDay   Shift = "Day"
	ShiftNight Shift = "Night"
)

type Worker struct {
	ID         string
	Name       string
	Shift      Shift
	LeaveDates []time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
