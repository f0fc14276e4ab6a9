package oligo

import "testing"

// Snapshot: RevComp over the full ambiguity alphabet + ACGT.
func TestRevComp_Snapshot(t *testing.T) {
	in := []byte("RYSWKMBDHVNACGT")
	want := "ACGTNBDHVKMWSRY"
	if got := string(RevComp(in)); got != want {
		t.Fatalf("complement table changed:\n got  %s\n want %s", got, want)
	}
	if got := string(RevComp([]byte("acgX"))); got != "Ncgt" {
		t.Fatalf("case/unknown handling: got %s", got)
	}
}

func TestBaseMatch(t *testing.T) {
	if !BaseMatch('A', 'N') || !BaseMatch('g', 'R') || !BaseMatch('U', 'T') {
		t.Fatalf("expected matches")
	}
	if BaseMatch('N', 'N') || BaseMatch('A', 'C') || BaseMatch('-', 'N') {
		t.Fatalf("sequence-side N or gap must not match")
	}
}

func TestScanExact(t *testing.T) {
	hits := Scan([]byte("ACGTACGTACGT"), []byte("GTAC"), 0, 0)
	if len(hits) != 2 || hits[0].Pos != 2 || hits[1].Pos != 6 {
		t.Fatalf("unexpected hits: %+v", hits)
	}
	capped := Scan([]byte("AAAAAA"), []byte("AA"), 0, 3)
	if len(capped) != 3 {
		t.Fatalf("cap ignored: %+v", capped)
	}
}

func TestScanMismatchAndAmbiguity(t *testing.T) {
	hits := Scan([]byte("CTGCAGTTCTGAAG"), []byte("CTGCAG"), 1, 0)
	if len(hits) != 2 {
		t.Fatalf("want exact + 1mm hit, got %+v", hits)
	}
	if hits[1].Pos != 8 || hits[1].Mismatches != 1 || len(hits[1].MismatchIdx) != 1 || hits[1].MismatchIdx[0] != 3 {
		t.Fatalf("unexpected mismatch hit: %+v", hits[1])
	}
	amb := Scan([]byte("GGATCCGGTTCC"), []byte("GGWTCC"), 0, 0)
	if len(amb) != 2 {
		t.Fatalf("IUPAC W should match A and T: %+v", amb)
	}
}

func TestValidate(t *testing.T) {
	s, err := Validate(" ac'gu ")
	if err != nil || s != "ACGT" {
		t.Fatalf("got %q, %v", s, err)
	}
	if _, err := Validate("ACGZ"); err == nil {
		t.Fatalf("expected invalid base error")
	}
	if _, err := Validate("  "); err == nil {
		t.Fatalf("expected empty error")
	}
}

func TestDetect(t *testing.T) {
	cases := map[string]Alphabet{
		"TTGACGGCTAGCTCAGTCCTAGG": DNA,
		"acgtnnn":                 DNA,
		"ACGUUAGC":                RNA,
		"MVSKGEEDNMAIIKEFMRFKVHM": Protein,
		"":                        DNA,
	}
	for in, want := range cases {
		if got := Detect(in); got != want {
			t.Fatalf("Detect(%q) = %s, want %s", in, got, want)
		}
	}
	if !DNA.Nucleic() || !RNA.Nucleic() || Protein.Nucleic() {
		t.Fatalf("Nucleic mapping changed")
	}
}
