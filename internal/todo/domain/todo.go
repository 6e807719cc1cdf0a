package domain

import "time"

type Todo struct {
	ID          string
	Text        string
	Completed   bool
	CompletedAt *time.Time // set iff Completed
	CreatorID   string     // empty for anonymous todos
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Complete sets the completion state and keeps CompletedAt consistent with
// it. Completing an already completed todo keeps the original timestamp.
func (t *Todo) Complete(done bool, now time.Time) {
	switch {
	case !done:
		t.Completed = false
		t.CompletedAt = nil
	case !t.Completed || t.CompletedAt == nil:
		at := now.UTC()
		t.Completed = true
		t.CompletedAt = &at
	}
}
