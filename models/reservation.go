package models

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCompleted ReservationStatus = "completed"
	StatusCanceled  ReservationStatus = "canceled"
	StatusRejected  ReservationStatus = "rejected"
)

// Reservation periods within a day.
const (
	PeriodMorning   = "morning"
	PeriodAfternoon = "afternoon"
	PeriodEvening   = "evening"
)

// Reservation links a client and a goalkeeper for a date and period.
// TotalPrice is snapshotted at creation time from the goalkeeper's hourly
// rate and is never recomputed.
type Reservation struct {
	ID           int               `bson:"id" json:"id"`
	UserID       int               `bson:"user_id" json:"userId"`
	GoalkeeperID int               `bson:"goalkeeper_id" json:"goalkeeperId"`
	Date         string            `bson:"date" json:"date"` // YYYY-MM-DD
	Period       string            `bson:"period" json:"period"`
	Duration     int               `bson:"duration" json:"duration"` // hours, >= 1
	TotalPrice   float64           `bson:"total_price" json:"totalPrice"`
	Status       ReservationStatus `bson:"status" json:"status"`
}

// IsValid reports whether s is a recognized status value.
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCanceled, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is defined out of s.
func (s ReservationStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCanceled, StatusRejected:
		return true
	}
	return false
}

// Transitions each role may perform, keyed by current status.
var (
	clientTransitions = map[ReservationStatus][]ReservationStatus{
		StatusPending: {StatusCanceled},
	}
	goalkeeperTransitions = map[ReservationStatus][]ReservationStatus{
		StatusPending:   {StatusConfirmed, StatusRejected},
		StatusConfirmed: {StatusCompleted},
	}
)

// CanTransition reports whether an actor with the given role may move a
// reservation from its current status to the target status.
func (s ReservationStatus) CanTransition(role Role, target ReservationStatus) bool {
	var table map[ReservationStatus][]ReservationStatus
	switch role {
	case RoleClient:
		table = clientTransitions
	case RoleGoalkeeper:
		table = goalkeeperTransitions
	default:
		return false
	}
	for _, allowed := range table[s] {
		if allowed == target {
			return true
		}
	}
	return false
}
