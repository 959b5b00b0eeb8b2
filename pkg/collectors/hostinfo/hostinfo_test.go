package hostinfo

import (
	"testing"

	"github.com/danpilch/sysnap/pkg/snapshot"
)

func TestCollect(t *testing.T) {
	snap := &snapshot.Snapshot{}
	if err := New().Collect(snapshot.Options{}, snap); err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if snap.Hostname == "" {
		t.Error("expected a hostname")
	}
	if snap.OSName == "" {
		t.Error("expected an OS name")
	}
	if snap.UptimeSeconds == nil || *snap.UptimeSeconds == 0 {
		t.Error("expected a non-zero uptime")
	}
}
