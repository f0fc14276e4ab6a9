// internal/annotate/project.go
package annotate

import (
	"errors"
	"fmt"
	"strings"

	"seqviz/internal/feature"
)

// DefaultKind is the only kind accepted when Options.AcceptedKinds is empty.
const DefaultKind = "CDS"

// Policy selects how malformed accepted features are handled.
type Policy int

const (
	// AbortOnError stops at the first malformed feature and returns no annotations.
	AbortOnError Policy = iota
	// CollectErrors keeps well-formed annotations and joins every FeatureError.
	CollectErrors
)

func (p Policy) String() string {
	switch p {
	case AbortOnError:
		return "abort"
	case CollectErrors:
		return "collect"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy accepts "abort" or "collect".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "abort":
		return AbortOnError, nil
	case "collect":
		return CollectErrors, nil
	}
	return AbortOnError, fmt.Errorf("unknown error policy %q (want abort|collect)", s)
}

// Options configures a projection.
type Options struct {
	AcceptedKinds []string     // empty => {"CDS"}
	Resolver      NameResolver // zero value => gene, product, kind
	Policy        Policy
}

type projector struct {
	accept   map[string]struct{}
	resolver NameResolver
}

func newProjector(o Options) projector {
	p := projector{accept: make(map[string]struct{}, len(o.AcceptedKinds)+1), resolver: o.Resolver}
	for _, k := range o.AcceptedKinds {
		if k == "" {
			continue
		}
		p.accept[k] = struct{}{}
	}
	if len(p.accept) == 0 {
		p.accept[DefaultKind] = struct{}{}
	}
	return p
}

// one projects features[i]. ok=false means the kind is not accepted.
func (p projector) one(i int, f *feature.SequenceFeature) (Annotation, bool, error) {
	if _, ok := p.accept[f.Kind]; !ok {
		return Annotation{}, false, nil
	}
	if !f.Strand.Valid() {
		return Annotation{}, true, &FeatureError{
			Index: i, Kind: f.Kind,
			Err: fmt.Errorf("%w: strand %d", ErrInvalidDirection, int8(f.Strand)),
		}
	}
	name := p.resolver.Resolve(f.Qualifiers, f.Kind)
	a, err := NewAnnotation(name, f.Start, f.End, f.Strand.Direction(), f.Kind, Color(name))
	if err != nil {
		return Annotation{}, true, &FeatureError{Index: i, Kind: f.Kind, Err: err}
	}
	return a, true, nil
}

// Project converts the accepted features into annotations, in input order.
// The input slice is not modified. An empty input yields an empty, non-nil
// result.
func Project(features []feature.SequenceFeature, opts Options) ([]Annotation, error) {
	p := newProjector(opts)
	out := make([]Annotation, 0, len(features))
	var errs []error
	for i := range features {
		a, ok, err := p.one(i, &features[i])
		if err != nil {
			if opts.Policy == AbortOnError {
				return nil, err
			}
			errs = append(errs, err)
			continue
		}
		if ok {
			out = append(out, a)
		}
	}
	return out, errors.Join(errs...)
}
