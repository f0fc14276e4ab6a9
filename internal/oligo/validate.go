// internal/oligo/validate.go
package oligo

import "fmt"

// Normalize drops whitespace and quotes, upper-cases, and maps U to T.
func Normalize(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\'' || c == '"' {
			continue
		}
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c == 'U' {
			c = 'T'
		}
		out = append(out, c)
	}
	return string(out)
}

// Validate normalizes raw and rejects anything that is not an IUPAC code.
func Validate(raw string) (string, error) {
	s := Normalize(raw)
	if s == "" {
		return s, fmt.Errorf("empty oligo")
	}
	for i := 0; i < len(s); i++ {
		if !IsIUPAC(s[i]) {
			return "", fmt.Errorf("invalid base %q at %d; allowed: A C G T U R Y S W K M B D H V N", s[i], i+1)
		}
	}
	return s, nil
}
