package entity

import "time"

// Story is a time-bounded piece of content. It is created Active with an
// expiry 24 hours after creation, becomes invisible the moment the expiry
// passes, and is flipped to Inactive either by its owner (soft delete) or by
// the expiry sweep. The flip is monotonic; a story never becomes Active again.
type Story struct {
	ID         int64          // Numeric identity, generated by the database.
	UserID     int64          // The owning user's ID.
	ContentURL string         // Stable URL of the story's media in the media store.
	State      LifecycleState // Active until soft-deleted or swept.
	CreatedAt  time.Time      // Timestamp of creation.
	ExpireAt   *time.Time     // End of the visibility window; nil means no expiry.
}

// Visible reports whether the story satisfies the visibility predicate at the
// given instant: Active AND (no expiry OR now before expiry). Reads apply this
// predicate regardless of whether the sweep has run, so visibility is correct
// even when the sweep lags.
func (s *Story) Visible(now time.Time) bool {
	if !s.State.Active() {
		return false
	}
	if s.ExpireAt == nil {
		return true
	}

	return now.Before(*s.ExpireAt)
}
