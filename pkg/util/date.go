package util

import "time"

// AlignBucket truncates t down to the start of its interval bucket.
// Charts should only show completed buckets, so queries cut off here.
func AlignBucket(t time.Time, interval time.Duration) time.Time {
	if interval <= 0 {
		return t
	}
	return t.Truncate(interval)
}

// BucketRange returns the half-open [from, to) window covering the n most
// recent completed buckets before t.
func BucketRange(t time.Time, interval time.Duration, n int) (time.Time, time.Time) {
	to := AlignBucket(t, interval)
	from := to.Add(-time.Duration(n) * interval)
	return from, to
}
