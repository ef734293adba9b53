package intake

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

var protocolPattern = regexp.MustCompile(`^PI[0-9A-Z]+$`)

func TestNewProtocol(t *testing.T) {
	t.Run("shape", func(t *testing.T) {
		p := NewProtocol(time.Now())
		if !strings.HasPrefix(p, ProtocolPrefix) {
			t.Fatalf("expected %q prefix, got %q", ProtocolPrefix, p)
		}
		if !protocolPattern.MatchString(p) {
			t.Fatalf("protocol %q does not match %v", p, protocolPattern)
		}
	})

	t.Run("unique across distinct timestamps", func(t *testing.T) {
		now := time.Now()
		seen := make(map[string]bool, 10000)
		for i := 0; i < 10000; i++ {
			p := NewProtocol(now.Add(time.Duration(i) * time.Millisecond))
			if seen[p] {
				t.Fatalf("duplicate protocol %q at iteration %d", p, i)
			}
			seen[p] = true
		}
	})

	t.Run("same timestamp still varies", func(t *testing.T) {
		now := time.Now()
		a, b := NewProtocol(now), NewProtocol(now)
		if len(a) != len(b) {
			t.Fatalf("lengths differ: %q vs %q", a, b)
		}
		// The random suffix makes same-millisecond submissions distinct with
		// high probability; the conditional put is the hard guarantee.
		if a[:len(a)-4] != b[:len(b)-4] {
			t.Fatalf("timestamp part differs: %q vs %q", a, b)
		}
	})
}
