package soil

import "time"

// PacificNow returns the server-side capture timestamp: UTC now shifted by a
// fixed civil offset (7h during DST, 8h otherwise), stored without a timezone
// tag. The offset tracks the server clock's DST state at request time, not the
// capture time, so stored timestamps around a DST transition keep the old
// basis. Client query filters assume this same basis.
func PacificNow() time.Time {
	offset := 8 * time.Hour
	if time.Now().IsDST() {
		offset = 7 * time.Hour
	}
	return time.Now().UTC().Add(-offset)
}
