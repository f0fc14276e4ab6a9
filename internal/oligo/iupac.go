// internal/oligo/iupac.go
package oligo

/* -------------------------- IUPAC lookup table -------------------------- */

var iupacMask [256]byte // bit0=A bit1=C bit2=G bit3=T

func init() {
	set := func(c byte, bits byte) {
		iupacMask[c] = bits
		iupacMask[c|0x20] = bits // lowercase
	}
	set('A', 1)       // 0001
	set('C', 2)       // 0010
	set('G', 4)       // 0100
	set('T', 8)       // 1000
	set('U', 8)       // RNA
	set('R', 1|4)     // A/G
	set('Y', 2|8)     // C/T
	set('S', 2|4)     // C/G
	set('W', 1|8)     // A/T
	set('K', 4|8)     // G/T
	set('M', 1|2)     // A/C
	set('B', 2|4|8)   // C/G/T
	set('D', 1|4|8)   // A/G/T
	set('H', 1|2|8)   // A/C/T
	set('V', 1|2|4)   // A/C/G
	set('N', 1|2|4|8) // any (pattern side only)
}

// IsIUPAC reports whether c is a nucleotide or ambiguity code (either case).
func IsIUPAC(c byte) bool { return iupacMask[c] != 0 }

// BaseMatch reports whether pattern base p can pair with sequence base g.
// The sequence side must be a concrete base (A/C/G/T/U); an N or any other
// byte in the sequence is a hard mismatch so N-runs never produce hits.
func BaseMatch(g, p byte) bool {
	switch g | 0x20 {
	case 'a', 'c', 'g', 't', 'u':
	default:
		return false
	}
	return iupacMask[p]&iupacMask[g] != 0
}
