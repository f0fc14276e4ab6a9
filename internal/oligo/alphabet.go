// internal/oligo/alphabet.go
package oligo

// Alphabet is the residue alphabet of a sequence.
type Alphabet string

const (
	DNA     Alphabet = "dna"
	RNA     Alphabet = "rna"
	Protein Alphabet = "aa"
)

// Nucleic reports whether a is DNA or RNA.
func (a Alphabet) Nucleic() bool { return a == DNA || a == RNA }

// Detect guesses the alphabet: any byte outside the IUPAC nucleotide codes
// (gaps and whitespace aside) makes it protein; U without T makes it RNA.
func Detect(seq string) Alphabet {
	var hasT, hasU bool
	for i := 0; i < len(seq); i++ {
		c := seq[i]
		switch c {
		case '-', '.', ' ', '\n', '\r', '\t':
			continue
		case 'T', 't':
			hasT = true
		case 'U', 'u':
			hasU = true
		}
		if !IsIUPAC(c) {
			return Protein
		}
	}
	if hasU && !hasT {
		return RNA
	}
	return DNA
}
