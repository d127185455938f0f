package tracker

// Subscription identifies one live tick stream. A tick carrying any other
// token belongs to a torn-down stream and must be ignored.
type Subscription uint64

// NoSubscription is never live.
const NoSubscription Subscription = 0

// tokens issues monotonically increasing subscriptions, at most one live at a time
type tokens struct {
	issued Subscription
	live   Subscription
}

func (t *tokens) issue() Subscription {
	t.issued++
	t.live = t.issued
	return t.live
}

func (t *tokens) cancel() {
	t.live = NoSubscription
}

func (t *tokens) current() Subscription {
	return t.live
}

func (t *tokens) valid(s Subscription) bool {
	return s != NoSubscription && s == t.live
}
