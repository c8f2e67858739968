package shop

// Alert is a toast message with a remaining lifetime in ticks.
type Alert struct {
	Message string
	TTL     int
}

// AlertQueue holds active toasts, newest last.
type AlertQueue struct {
	alerts []Alert
	ttl    int
	limit  int
}

// NewAlertQueue creates a queue whose alerts live for ttl ticks. At most
// limit alerts are kept; older ones are dropped first.
func NewAlertQueue(ttl, limit int) *AlertQueue {
	if limit < 1 {
		limit = 1
	}
	return &AlertQueue{ttl: ttl, limit: limit}
}

// Push adds a message.
func (q *AlertQueue) Push(msg string) {
	q.alerts = append(q.alerts, Alert{Message: msg, TTL: q.ttl})
	if over := len(q.alerts) - q.limit; over > 0 {
		q.alerts = q.alerts[over:]
	}
}

// Tick ages every alert by one tick and drops expired ones.
func (q *AlertQueue) Tick() {
	valid := q.alerts[:0]
	for _, a := range q.alerts {
		a.TTL--
		if a.TTL > 0 {
			valid = append(valid, a)
		}
	}
	q.alerts = valid
}

// Active returns the current alerts, oldest first.
func (q *AlertQueue) Active() []Alert {
	return append([]Alert(nil), q.alerts...)
}
