package utils

import "time"

// Now returns the current UTC time truncated to microseconds, the precision
// Postgres keeps for timestamp columns. Use it for every persisted timestamp
// so values read back compare equal to the ones written.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// NextAfter returns Now, or prev plus one microsecond when the clock has not
// advanced past prev. It keeps updated_at strictly increasing.
func NextAfter(prev time.Time) time.Time {
	now := Now()
	if !now.After(prev) {
		return prev.Add(time.Microsecond).UTC()
	}
	return now
}
