package widget

// VisibleThreshold is the visible fraction beyond which a row counts as
// visible.
const VisibleThreshold = 0.1

// Observer forwards visible-fraction events from a host's visibility
// tracker to an optional callback. It holds no visibility state of its
// own: each notification is evaluated independently, so duplicate or
// dropped deliveries cannot corrupt rendering.
type Observer struct {
	// Callback is invoked once per notification with whether the row's
	// visible fraction exceeds VisibleThreshold. May be nil.
	Callback func(visible bool)
}

// Notify delivers one visible-fraction observation. Events are expected
// in the order the host's tracker observed them; the observer neither
// reorders nor coalesces them.
func (o *Observer) Notify(fraction float32) {
	if o.Callback == nil {
		return
	}
	o.Callback(fraction > VisibleThreshold)
}
