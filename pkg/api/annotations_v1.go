// pkg/api/annotations_v1.go
package api

// AnnotationV1 is the stable JSON/JSONL schema for one display annotation.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type AnnotationV1 struct {
	Name      string `json:"name"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Direction int    `json:"direction"` // 1 | -1 | 0
	Type      string `json:"type"`
	Color     string `json:"color"` // "#rrggbb"

	// Set when output spans several records.
	RecordID   string `json:"record_id,omitempty"`
	SourceFile string `json:"source_file,omitempty"`
}

// RecordSummaryV1 describes a fetched record without its sequence.
type RecordSummaryV1 struct {
	Accession string `json:"accession"`
	ID        string `json:"id"`
	Length    int    `json:"length"`
	Topology  string `json:"topology"` // "circular" | "linear"
	Alphabet  string `json:"alphabet"` // "dna" | "rna" | "aa"
	Features  int    `json:"features"`
	Accepted  int    `json:"accepted"`
}

// NameColorV1 is one `seqviz color` result.
type NameColorV1 struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// EnzymeV1 is one registry entry as listed by `seqviz enzymes`.
type EnzymeV1 struct {
	Name string `json:"name"`
	Site string `json:"site"`
	FCut int    `json:"fcut"`
	RCut int    `json:"rcut"`
}
