package recordfs

import (
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqviz/internal/record"
)

func TestFormatOf(t *testing.T) {
	cases := map[string]Format{
		"a.gb": GenBank, "a.GBK.gz": GenBank, "a.txt": GenBank,
		"a.gff3": GFF3, "a.gff.gz": GFF3,
		"a.fa": FASTA, "a.fasta.gz": FASTA, "a.fna": FASTA,
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatOf(in), in)
	}
}

func TestDirSourceGenBank(t *testing.T) {
	d := DirSource{Dir: "testdata"}
	rec, err := d.Fetch(context.Background(), record.Key{Accession: "SV0001"})
	require.NoError(t, err)
	assert.Equal(t, "SV0001.1", rec.ID)
	assert.True(t, rec.Circular)
	assert.Equal(t, 60, rec.Len())
}

func TestDirSourceGFF(t *testing.T) {
	d := DirSource{Dir: "testdata"}
	rec, err := d.Fetch(context.Background(), record.Key{Accession: "chr1"})
	require.NoError(t, err)
	assert.Equal(t, "chr1", rec.ID)
	assert.Equal(t, 40, rec.Len())
	assert.NotEmpty(t, rec.Features)
}

func TestDirSourceGzip(t *testing.T) {
	dir := t.TempDir()
	raw, err := os.ReadFile("testdata/SV0001.gb")
	require.NoError(t, err)
	f, err := os.Create(filepath.Join(dir, "SV0001.gbk.gz"))
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	rec, err := DirSource{Dir: dir}.Fetch(context.Background(), record.Key{Accession: "SV0001"})
	require.NoError(t, err)
	assert.Equal(t, "SV0001.1", rec.ID)
}

func TestDirSourceMissing(t *testing.T) {
	_, err := DirSource{Dir: "testdata"}.Fetch(context.Background(), record.Key{Accession: "NOPE"})
	assert.ErrorIs(t, err, record.ErrNotFound)
}

func TestDirSourceRejectsTraversal(t *testing.T) {
	for _, acc := range []string{"", "..", "../SV0001", `a\b`} {
		_, err := DirSource{Dir: "testdata"}.Fetch(context.Background(), record.Key{Accession: acc})
		assert.ErrorIs(t, err, ErrBadAccession, acc)
	}
}

func TestReadFileFasta(t *testing.T) {
	recs, err := ReadFile("testdata/plain.fasta", "")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "seqA", recs[0].ID)
	assert.Equal(t, "ACGTACGT", recs[0].Seq)
	assert.Empty(t, recs[0].Features)
}

func TestReadFileGenBankAllRecords(t *testing.T) {
	recs, err := ReadFile("testdata/SV0001.gb", "")
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}
