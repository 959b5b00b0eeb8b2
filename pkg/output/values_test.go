package output

import (
	"strings"
	"testing"

	"github.com/danpilch/sysnap/pkg/snapshot"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds uint64
		want    string
	}{
		{0, "00:00:00"},
		{61, "00:01:01"},
		{3661, "01:01:01"},
		{86400, "1d 00:00:00"},
		{266645, "3d 02:04:05"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.seconds); got != tt.want {
			t.Errorf("formatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFreqSummary(t *testing.T) {
	snap := &snapshot.Snapshot{}
	if got := freqSummary(snap); got != Unknown {
		t.Errorf("got %q for empty frequency, want %q", got, Unknown)
	}

	snap.FreqCurrentMHz = snapshot.Float(2600)
	if got := freqSummary(snap); got != "2600.0" {
		t.Errorf("got %q, want plain current value without a range", got)
	}

	snap.FreqMinMHz = snapshot.Float(800)
	snap.FreqMaxMHz = snapshot.Float(4500)
	want := "2600.0 (min 800.0, max 4500.0)"
	if got := freqSummary(snap); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFeatureList(t *testing.T) {
	if got := featureList(nil, false); got != Unknown {
		t.Errorf("got %q for no features, want %q", got, Unknown)
	}

	few := []string{"fpu", "sse"}
	if got := featureList(few, false); got != "fpu, sse" {
		t.Errorf("got %q, want full short list", got)
	}

	many := make([]string, 15)
	for i := range many {
		many[i] = "flag"
	}
	got := featureList(many, false)
	if !strings.HasSuffix(got, "(+5)") {
		t.Errorf("got %q, want truncation with (+5) remainder", got)
	}
	if got = featureList(many, true); strings.Contains(got, "(+") {
		t.Errorf("got %q, full listing should not truncate", got)
	}
}

func TestCacheSummary(t *testing.T) {
	if got := cacheSummary(nil); got != Unknown {
		t.Errorf("got %q for no cache info, want %q", got, Unknown)
	}

	cache := &snapshot.CacheSizes{
		L1: snapshot.String("32K"),
		L3: snapshot.String("12M"),
	}
	want := "L1: 32K, L2: N/A, L3: 12M"
	if got := cacheSummary(cache); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
