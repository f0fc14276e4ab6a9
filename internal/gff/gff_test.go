package gff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqviz/internal/feature"
)

func TestLoadSample(t *testing.T) {
	recs, err := Load("testdata/sample.gff3", "")
	require.NoError(t, err)
	require.Len(t, recs, 2)

	chr := recs[0]
	assert.Equal(t, "chr1", chr.ID)
	assert.True(t, chr.Circular)
	assert.Len(t, chr.Seq, 40)
	require.Len(t, chr.Features, 4)

	cds := chr.Features[2]
	assert.Equal(t, "CDS", cds.Kind)
	assert.Equal(t, 0, cds.Start)
	assert.Equal(t, 12, cds.End)
	assert.Equal(t, feature.Forward, cds.Strand)
	g, _ := cds.Qualifiers.First("gene")
	assert.Equal(t, "dnaA", g)
	p, _ := cds.Qualifiers.First("product")
	assert.Equal(t, "DNA polymerase", p)

	rev := chr.Features[3]
	assert.Equal(t, feature.Reverse, rev.Strand)
	assert.Equal(t, 19, rev.Start)
	assert.Equal(t, []string{"helicase", "primase"}, rev.Qualifiers["product"])

	pl := recs[1]
	assert.Equal(t, "plasmid", pl.ID)
	assert.Empty(t, pl.Seq)
	require.Len(t, pl.Features, 1)
	assert.Equal(t, feature.Unknown, pl.Features[0].Strand)
	assert.False(t, pl.Circular)
}

func TestLoadWithFasta(t *testing.T) {
	recs, err := Load("testdata/sample.gff3", "testdata/plasmid.fa")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "ACGTACGTAC", recs[1].Seq)
	assert.Len(t, recs[0].Seq, 40)
}

func TestReadFastaOnlyIDsAppended(t *testing.T) {
	in := "chr1\tsrc\tCDS\t1\t3\t.\t+\t0\tID=a\n##FASTA\n>chr1\nATG\n>extra\nGGG\n"
	recs, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "extra", recs[1].ID)
	assert.Empty(t, recs[1].Features)
	assert.Equal(t, "GGG", recs[1].Seq)
}

func TestReadEmpty(t *testing.T) {
	recs, err := Read(strings.NewReader("##gff-version 3\n"))
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/nope.gff3", "")
	assert.Error(t, err)
}
