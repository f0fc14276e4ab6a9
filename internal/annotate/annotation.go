// internal/annotate/annotation.go
package annotate

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSpan reports a negative coordinate or end before start.
	ErrInvalidSpan = errors.New("invalid span")
	// ErrInvalidDirection reports a direction outside {1, -1, 0}.
	ErrInvalidDirection = errors.New("invalid direction")
)

// Annotation is an immutable, display-ready feature. It holds no reference
// back to the feature it was projected from.
type Annotation struct {
	Name      string
	Start     int
	End       int
	Direction int // 1 forward, -1 reverse, 0 unknown
	Type      string
	Color     string // "#rrggbb", lowercase
}

// NewAnnotation validates the span and direction and returns the value.
func NewAnnotation(name string, start, end, direction int, typ, color string) (Annotation, error) {
	if start < 0 || end < start {
		return Annotation{}, fmt.Errorf("%w: start=%d end=%d", ErrInvalidSpan, start, end)
	}
	switch direction {
	case 1, -1, 0:
	default:
		return Annotation{}, fmt.Errorf("%w: %d", ErrInvalidDirection, direction)
	}
	return Annotation{
		Name:      name,
		Start:     start,
		End:       end,
		Direction: direction,
		Type:      typ,
		Color:     color,
	}, nil
}

// Len is End-Start.
func (a Annotation) Len() int { return a.End - a.Start }

// FeatureError ties a validation failure to the offending input feature.
type FeatureError struct {
	Index int
	Kind  string
	Err   error
}

func (e *FeatureError) Error() string {
	return fmt.Sprintf("feature #%d (kind %q): %v", e.Index, e.Kind, e.Err)
}

func (e *FeatureError) Unwrap() error { return e.Err }
