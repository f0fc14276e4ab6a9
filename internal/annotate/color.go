// internal/annotate/color.go
package annotate

import (
	"crypto/md5"
	"encoding/hex"
)

// Color maps a label to "#" + the first six hex digits of its MD5 digest.
// Pure and safe for concurrent use.
func Color(name string) string {
	sum := md5.Sum([]byte(name))
	return "#" + hex.EncodeToString(sum[:3])
}

// ValidColor reports whether s has the form #rrggbb with lowercase hex.
func ValidColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for i := 1; i < 7; i++ {
		c := s[i]
		if !(c >= '0' && c <= '9') && !(c >= 'a' && c <= 'f') {
			return false
		}
	}
	return true
}
