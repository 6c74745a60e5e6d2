package metrics

import (
	"testing"
	"time"
)

func TestCollectorRecordsRequests(t *testing.T) {
	c := New()
	c.Record(200, 10*time.Millisecond)
	c.Record(404, 5*time.Millisecond)
	c.Record(500, 15*time.Millisecond)

	snap := c.Snapshot()
	if snap["totalRequests"] != int64(3) {
		t.Fatalf("expected 3 requests, got %v", snap["totalRequests"])
	}
	if snap["errorRequests"] != int64(1) {
		t.Fatalf("expected 1 error request, got %v", snap["errorRequests"])
	}
}

func TestCollectorNilSafe(t *testing.T) {
	var c *Collector
	c.Record(200, time.Millisecond)
}
