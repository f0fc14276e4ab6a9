// Package annotate projects parsed sequence features into display-ready
// annotations for a sequence viewer.
//
// Pipeline per accepted feature:
//   • name  = first non-empty of qualifiers gene, product, then the feature kind
//   • color = "#" + first 6 hex chars of MD5(name)
//   • direction from strand (1, -1, 0)
//
// Output order follows input order. Features whose kind is not accepted are
// skipped silently; malformed accepted features always surface as a
// *FeatureError carrying the feature index and kind.
package annotate
