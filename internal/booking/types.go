package booking

import "time"

// --- UseCase Inputs ---

type CreateInput struct {
	ItemID int64
	Start  time.Time
	End    time.Time
}

type DecideInput struct {
	ID       int64
	Approved bool
}

// ListInput selects bookings by state. State is parsed case-insensitively; empty means ALL.
type ListInput struct {
	State string
	From  int
	Size  int
}

// CalendarConfig says where approved bookings are published.
type CalendarConfig struct {
	CalendarID string
	Timezone   string
}
