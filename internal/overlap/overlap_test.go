package overlap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"seqviz/internal/annotate"
)

func ann(name string, start, end int) annotate.Annotation {
	return annotate.Annotation{Name: name, Start: start, End: end, Direction: 1, Type: "CDS", Color: annotate.Color(name)}
}

func names(as []annotate.Annotation) []string {
	out := []string{}
	for _, a := range as {
		out = append(out, a.Name)
	}
	return out
}

func sample() []annotate.Annotation {
	return []annotate.Annotation{
		ann("big", 0, 100),
		ann("inner", 10, 20),
		ann("right", 90, 150),
		ann("site", 30, 30),
		ann("dupA", 200, 210),
		ann("dupB", 200, 210),
	}
}

func TestOverlapping(t *testing.T) {
	ix := New(sample())
	assert.Equal(t, 6, ix.Len())
	assert.Equal(t, []string{"big", "inner"}, names(ix.Overlapping(15, 25)))
	assert.Equal(t, []string{"big", "right"}, names(ix.Overlapping(95, 96)))
	// half-open: [100,101) misses big (ends at 100)
	assert.Equal(t, []string{"right"}, names(ix.Overlapping(100, 101)))
	assert.Equal(t, []string{"big", "site"}, names(ix.At(30)))
	assert.Empty(t, ix.Overlapping(300, 400))
	assert.Empty(t, ix.Overlapping(50, 50))
	assert.Empty(t, ix.Overlapping(60, 10))
}

func TestContainedAndCulled(t *testing.T) {
	ix := New(sample())
	assert.Equal(t, []string{"inner", "site", "dupB"}, names(ix.Contained()))
	assert.Equal(t, []string{"big", "right", "dupA"}, names(ix.Culled()))
}

func TestEmptyIndex(t *testing.T) {
	ix := New(nil)
	assert.Empty(t, ix.Overlapping(0, 10))
	assert.Empty(t, ix.Contained())
	assert.Empty(t, ix.Culled())
}
