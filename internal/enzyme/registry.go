// internal/enzyme/registry.go
package enzyme

import "strings"

var registry = []Enzyme{
	{Name: "AgeI", Site: "ACCGGT", FCut: 1, RCut: 5},
	{Name: "ApaI", Site: "GGGCCC", FCut: 5, RCut: 1},
	{Name: "BamHI", Site: "GGATCC", FCut: 1, RCut: 5},
	{Name: "BbsI", Site: "GAAGAC", FCut: 8, RCut: 12},
	{Name: "BglII", Site: "AGATCT", FCut: 1, RCut: 5},
	{Name: "BsaI", Site: "GGTCTC", FCut: 7, RCut: 11},
	{Name: "BsmBI", Site: "CGTCTC", FCut: 7, RCut: 11},
	{Name: "ClaI", Site: "ATCGAT", FCut: 2, RCut: 4},
	{Name: "DpnII", Site: "GATC", FCut: 0, RCut: 4},
	{Name: "EcoRI", Site: "GAATTC", FCut: 1, RCut: 5},
	{Name: "EcoRV", Site: "GATATC", FCut: 3, RCut: 3},
	{Name: "HaeIII", Site: "GGCC", FCut: 2, RCut: 2},
	{Name: "HindIII", Site: "AAGCTT", FCut: 1, RCut: 5},
	{Name: "KpnI", Site: "GGTACC", FCut: 5, RCut: 1},
	{Name: "MluI", Site: "ACGCGT", FCut: 1, RCut: 5},
	{Name: "NcoI", Site: "CCATGG", FCut: 1, RCut: 5},
	{Name: "NdeI", Site: "CATATG", FCut: 2, RCut: 4},
	{Name: "NheI", Site: "GCTAGC", FCut: 1, RCut: 5},
	{Name: "NotI", Site: "GCGGCCGC", FCut: 2, RCut: 6},
	{Name: "PstI", Site: "CTGCAG", FCut: 5, RCut: 1},
	{Name: "PvuII", Site: "CAGCTG", FCut: 3, RCut: 3},
	{Name: "SacI", Site: "GAGCTC", FCut: 5, RCut: 1},
	{Name: "SalI", Site: "GTCGAC", FCut: 1, RCut: 5},
	{Name: "ScaI", Site: "AGTACT", FCut: 3, RCut: 3},
	{Name: "SmaI", Site: "CCCGGG", FCut: 3, RCut: 3},
	{Name: "SpeI", Site: "ACTAGT", FCut: 1, RCut: 5},
	{Name: "SphI", Site: "GCATGC", FCut: 5, RCut: 1},
	{Name: "StyI", Site: "CCWWGG", FCut: 1, RCut: 5},
	{Name: "XbaI", Site: "TCTAGA", FCut: 1, RCut: 5},
	{Name: "XhoI", Site: "CTCGAG", FCut: 1, RCut: 5},
}

// DefaultNames are the enzymes the demo viewer shows out of the box.
var DefaultNames = []string{"PstI", "EcoRI", "XbaI", "SpeI"}

var byName = func() map[string]Enzyme {
	m := make(map[string]Enzyme, len(registry))
	for _, e := range registry {
		m[strings.ToLower(e.Name)] = e
	}
	return m
}()
