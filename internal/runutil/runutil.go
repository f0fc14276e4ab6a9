// internal/runutil/runutil.go
package runutil

import (
	"runtime"
	"strings"
)

// EffectiveThreads resolves a --threads value: <=0 means one worker per CPU.
func EffectiveThreads(n int) int {
	if n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// CleanList trims entries, splits comma-joined values, and drops empties
// and repeats while keeping first-seen order. Flag values like
// "--kinds CDS,gene --kinds CDS" collapse to [CDS gene].
func CleanList(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		for _, p := range strings.Split(s, ",") {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}
