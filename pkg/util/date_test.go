package util

import (
	"testing"
	"time"
)

func TestAlignBucket(t *testing.T) {
	ts := time.Date(2024, 10, 10, 10, 17, 42, 0, time.UTC)

	got := AlignBucket(ts, 5*time.Minute)
	want := time.Date(2024, 10, 10, 10, 15, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	if !AlignBucket(ts, 0).Equal(ts) {
		t.Fatalf("zero interval should be identity")
	}
}

func TestBucketRange(t *testing.T) {
	ts := time.Date(2024, 10, 10, 10, 17, 42, 0, time.UTC)
	from, to := BucketRange(ts, time.Minute, 100)

	if !to.Equal(time.Date(2024, 10, 10, 10, 17, 0, 0, time.UTC)) {
		t.Fatalf("unexpected to %v", to)
	}
	if got := to.Sub(from); got != 100*time.Minute {
		t.Fatalf("unexpected span %v", got)
	}
}
