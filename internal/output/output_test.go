package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"seqviz/internal/annotate"
	"seqviz/pkg/api"
)

func TestFormats_Stable(t *testing.T) {
	if FormatText != "text" || FormatJSON != "json" || FormatJSONL != "jsonl" {
		t.Fatalf("output format constants changed")
	}
	if CheckFormat("fasta") == nil {
		t.Fatalf("fasta is not an annotation format")
	}
}

func TestTSVHeader_Stable(t *testing.T) {
	const want = "source_file\trecord_id\tname\tstart\tend\tdirection\ttype\tcolor"
	if TSVHeader != want {
		t.Fatalf("TSVHeader changed:\n got:  %q\n want: %q", TSVHeader, want)
	}
}

func row(rec, name string, start, end int) Row {
	return Row{SourceFile: "a.gb", RecordID: rec, Annotation: annotate.Annotation{
		Name: name, Start: start, End: end, Direction: -1, Type: "CDS", Color: annotate.Color(name),
	}}
}

func TestWriteTSV(t *testing.T) {
	var b bytes.Buffer
	if err := WriteTSV(&b, []Row{row("r1", "geneX", 0, 30)}, true); err != nil {
		t.Fatal(err)
	}
	want := TSVHeader + "\na.gb\tr1\tgeneX\t0\t30\t-1\tCDS\t#922305\n"
	if b.String() != want {
		t.Fatalf("unexpected TSV:\n%s", b.String())
	}
}

func TestStreamTSVNoHeader(t *testing.T) {
	in := make(chan Row, 2)
	in <- row("r1", "a", 1, 2)
	in <- row("r1", "b", 3, 4)
	close(in)
	var b bytes.Buffer
	if err := StreamTSV(&b, in, false); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(b.String(), "\n"); n != 2 {
		t.Fatalf("want 2 lines, got %d", n)
	}
}

func TestSortRows(t *testing.T) {
	rows := []Row{row("r2", "z", 0, 1), row("r1", "b", 5, 9), row("r1", "a", 5, 9), row("r1", "c", 1, 2)}
	SortRows(rows)
	got := []string{}
	for _, r := range rows {
		got = append(got, r.Name)
	}
	if strings.Join(got, ",") != "c,a,b,z" {
		t.Fatalf("unexpected order %v", got)
	}
}

func TestWriteJSON(t *testing.T) {
	var b bytes.Buffer
	if err := WriteJSON(&b, []Row{row("r1", "geneX", 0, 30)}); err != nil {
		t.Fatal(err)
	}
	var got []api.AnnotationV1
	if err := json.Unmarshal(b.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, b.String())
	}
	if len(got) != 1 || got[0].Color != "#922305" || got[0].RecordID != "r1" || got[0].Direction != -1 {
		t.Fatalf("unexpected: %+v", got)
	}
}

func TestWriteJSONEmptyIsArray(t *testing.T) {
	var b bytes.Buffer
	if err := WriteJSON(&b, nil); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(b.String()) != "[]" {
		t.Fatalf("want [], got %q", b.String())
	}
}
