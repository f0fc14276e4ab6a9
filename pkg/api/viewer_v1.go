// pkg/api/viewer_v1.go
package api

// ViewerPropsV1 mirrors the props the sequence viewer widget takes. JSON
// names follow the widget's prop names.
type ViewerPropsV1 struct {
	Name           string         `json:"name"`
	Seq            string         `json:"seq"`
	Annotations    []AnnotationV1 `json:"annotations"`
	Viewer         string         `json:"viewer"` // linear | circular | both | both_flip
	Zoom           ZoomV1         `json:"zoom"`
	Search         SearchV1       `json:"search"`
	ShowComplement bool           `json:"showComplement"`
	ShowIndex      bool           `json:"showIndex"`
	Enzymes        []string       `json:"enzymes"`

	Alphabet string `json:"alphabet,omitempty"`
	Circular bool   `json:"circular"` // molecule topology, not the layout
}

type ZoomV1 struct {
	Linear int `json:"linear"`
}

type SearchV1 struct {
	Query    string `json:"query"`
	Mismatch int    `json:"mismatch"`
}

// ViewerStateV1 carries what the widget reports back: search hits and
// enzyme cut sites for the current props.
type ViewerStateV1 struct {
	Props    ViewerPropsV1   `json:"props"`
	Search   []SearchMatchV1 `json:"searchResults"`
	CutSites []CutSiteV1     `json:"cutSites"`
	Warnings []string        `json:"warnings,omitempty"`
}

type SearchMatchV1 struct {
	Start      int `json:"start"`
	End        int `json:"end"`
	Direction  int `json:"direction"`
	Mismatches int `json:"mismatches,omitempty"`
}

type CutSiteV1 struct {
	Enzyme    string `json:"name"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Direction int    `json:"direction"`
	FCut      int    `json:"fcut"`
	RCut      int    `json:"rcut"`
}
