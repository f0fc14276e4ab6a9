// internal/genbank/location.go
package genbank

import (
	"fmt"
	"strconv"
	"strings"

	"seqviz/internal/feature"
)

// span is one local part of a location, zero-based half-open.
type span struct {
	start, end int
	comp       bool
}

// parseLocation flattens a feature location into its overall extent and
// strand. Compound locations cover min(part start)..max(part end); the
// strand is reverse when every part is complemented, forward when none is,
// unknown when mixed. Coordinates are not reordered, so a location written
// as "50..10" comes back as start=49 end=10 for the caller to reject.
func parseLocation(loc string) (start, end int, strand feature.Strand, err error) {
	p := locParser{s: strings.ReplaceAll(loc, " ", "")}
	parts, err := p.parse(false)
	if err != nil {
		return 0, 0, feature.Unknown, err
	}
	if p.pos != len(p.s) {
		return 0, 0, feature.Unknown, fmt.Errorf("trailing input %q in location %q", p.s[p.pos:], loc)
	}
	if len(parts) == 0 {
		return 0, 0, feature.Unknown, fmt.Errorf("location %q has no local parts", loc)
	}

	start, end = parts[0].start, parts[0].end
	ncomp := 0
	for _, sp := range parts {
		if sp.start < start {
			start = sp.start
		}
		if sp.end > end {
			end = sp.end
		}
		if sp.comp {
			ncomp++
		}
	}
	switch ncomp {
	case 0:
		strand = feature.Forward
	case len(parts):
		strand = feature.Reverse
	default:
		strand = feature.Unknown
	}
	return start, end, strand, nil
}

type locParser struct {
	s   string
	pos int
}

func (p *locParser) errorf(format string, a ...any) error {
	return fmt.Errorf("location %q at %d: %s", p.s, p.pos, fmt.Sprintf(format, a...))
}

func (p *locParser) eat(prefix string) bool {
	if strings.HasPrefix(p.s[p.pos:], prefix) {
		p.pos += len(prefix)
		return true
	}
	return false
}

func (p *locParser) parse(comp bool) ([]span, error) {
	switch {
	case p.eat("complement("):
		parts, err := p.parse(!comp)
		if err != nil {
			return nil, err
		}
		if !p.eat(")") {
			return nil, p.errorf("missing ')'")
		}
		return parts, nil
	case p.eat("join("), p.eat("order("), p.eat("bond("):
		var all []span
		for {
			parts, err := p.parse(comp)
			if err != nil {
				return nil, err
			}
			all = append(all, parts...)
			if p.eat(",") {
				continue
			}
			if p.eat(")") {
				return all, nil
			}
			return nil, p.errorf("expected ',' or ')'")
		}
	}
	return p.simple(comp)
}

// simple parses a|<a..>b|a^b|a.b|ACC.1:a..b. Remote references yield no part.
func (p *locParser) simple(comp bool) ([]span, error) {
	startPos := p.pos
	for p.pos < len(p.s) && p.s[p.pos] != ',' && p.s[p.pos] != ')' {
		p.pos++
	}
	tok := p.s[startPos:p.pos]
	if tok == "" {
		return nil, p.errorf("empty location part")
	}
	if strings.Contains(tok, ":") {
		return nil, nil
	}

	if a, b, ok := strings.Cut(tok, ".."); ok {
		x, err := coord(a)
		if err != nil {
			return nil, p.errorf("%v", err)
		}
		y, err := coord(b)
		if err != nil {
			return nil, p.errorf("%v", err)
		}
		return []span{{start: x - 1, end: y, comp: comp}}, nil
	}
	if a, _, ok := strings.Cut(tok, "^"); ok {
		x, err := coord(a)
		if err != nil {
			return nil, p.errorf("%v", err)
		}
		return []span{{start: x, end: x, comp: comp}}, nil
	}
	if a, b, ok := strings.Cut(tok, "."); ok {
		// "one of" site between a and b
		x, err := coord(a)
		if err != nil {
			return nil, p.errorf("%v", err)
		}
		y, err := coord(b)
		if err != nil {
			return nil, p.errorf("%v", err)
		}
		return []span{{start: x - 1, end: y, comp: comp}}, nil
	}
	x, err := coord(tok)
	if err != nil {
		return nil, p.errorf("%v", err)
	}
	return []span{{start: x - 1, end: x, comp: comp}}, nil
}

func coord(s string) (int, error) {
	s = strings.TrimLeft(s, "<>")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad coordinate %q", s)
	}
	return n, nil
}
