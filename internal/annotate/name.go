// internal/annotate/name.go
package annotate

import "seqviz/internal/feature"

// DefaultNameKeys is the qualifier priority used when none is configured.
var DefaultNameKeys = []string{"gene", "product"}

// NameResolver picks a label from qualifiers in key priority order and
// falls back to the feature kind.
type NameResolver struct {
	Keys []string
}

// Resolve returns the first non-empty first value among r.Keys, else kind.
// Only the first value of each key is considered. An empty key list means
// DefaultNameKeys.
func (r NameResolver) Resolve(q feature.Qualifiers, kind string) string {
	keys := r.Keys
	if len(keys) == 0 {
		keys = DefaultNameKeys
	}
	for _, k := range keys {
		if v, ok := q.First(k); ok {
			return v
		}
	}
	return kind
}

// ResolveName applies the default gene → product → kind chain.
func ResolveName(q feature.Qualifiers, kind string) string {
	return NameResolver{}.Resolve(q, kind)
}
