package collect

// Tracker keeps the remaining-acceptance counts for one category and, during
// the targeted phase, for each target within it. Callers must check Remaining
// before decrementing; counts never go below zero.
type Tracker struct {
	category int
	targets  map[string]int
}

// NewTracker creates a tracker with the category's full quota remaining.
func NewTracker(categoryTarget int) *Tracker {
	return &Tracker{
		category: categoryTarget,
		targets:  make(map[string]int),
	}
}

// Remaining returns how many more records the category may accept.
func (t *Tracker) Remaining() int {
	return t.category
}

// Decrement consumes one unit of the category quota.
func (t *Tracker) Decrement() {
	if t.category > 0 {
		t.category--
	}
}

// InitTarget starts a fresh counter for a target at the configured cap.
func (t *Tracker) InitTarget(name string, limit int) {
	t.targets[name] = limit
}

// TargetRemaining returns how many more records the target may accept.
func (t *Tracker) TargetRemaining(name string) int {
	return t.targets[name]
}

// DecrementTarget consumes one unit of a target's cap. The category counter
// is independent; callers decrement both on acceptance.
func (t *Tracker) DecrementTarget(name string) {
	if t.targets[name] > 0 {
		t.targets[name]--
	}
}
