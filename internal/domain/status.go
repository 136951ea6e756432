package domain

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// forward is the single-step fulfillment chain. Terminal statuses have no
// entry.
var forward = map[OrderStatus]OrderStatus{
	StatusPending:   StatusConfirmed,
	StatusConfirmed: StatusPreparing,
	StatusPreparing: StatusReady,
	StatusReady:     StatusCompleted,
}

var statusLabels = map[OrderStatus]string{
	StatusPending:   "Pending",
	StatusConfirmed: "Confirmed",
	StatusPreparing: "Preparing",
	StatusReady:     "Ready for Pickup",
	StatusCompleted: "Completed",
	StatusCancelled: "Cancelled",
}

// ParseStatus validates a client-supplied status value.
func ParseStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if !status.Valid() {
		return "", invalidStatus(s)
	}
	return status, nil
}

func (s OrderStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Terminal statuses have no outgoing transitions.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Next returns the designated forward successor, if any.
func (s OrderStatus) Next() (OrderStatus, bool) {
	next, ok := forward[s]
	return next, ok
}

// CanTransition reports whether the edge s -> to exists: either the single
// forward step, or a cancel from any non-terminal status. Same-status
// transitions are not edges.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	if to == StatusCancelled {
		return !s.Terminal()
	}
	return forward[s] == to
}

// Label is the display name shown on trackers and the dashboard.
func (s OrderStatus) Label() string {
	return statusLabels[s]
}

// Statuses lists every recognized status in fulfillment order.
func Statuses() []OrderStatus {
	return []OrderStatus{
		StatusPending,
		StatusConfirmed,
		StatusPreparing,
		StatusReady,
		StatusCompleted,
		StatusCancelled,
	}
}
