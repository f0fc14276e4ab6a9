// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seqviz/internal/app"
	"seqviz/pkg/api"
)

func run(t *testing.T, argv ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := app.Run(argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestAnnotateText(t *testing.T) {
	code, out, stderr := run(t, "annotate", "testdata/sample.gb")
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, stderr)
	}
	want := strings.Join([]string{
		"source_file\trecord_id\tname\tstart\tend\tdirection\ttype\tcolor",
		"testdata/sample.gb\tSV0001.1\tgeneX\t0\t21\t1\tCDS\t#922305",
		"testdata/sample.gb\tSV0001.1\tDNA polymerase\t24\t45\t-1\tCDS\t#0e446e",
		"testdata/sample.gb\tSV0001.1\tCDS\t49\t60\t1\tCDS\t#b1da78",
	}, "\n") + "\n"
	if out != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", out, want)
	}
}

func TestAnnotateJSONWithKinds(t *testing.T) {
	code, out, stderr := run(t, "annotate", "--kinds", "CDS,gene", "-o", "json", "testdata/sample.gb")
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, stderr)
	}
	var got []api.AnnotationV1
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("bad JSON: %v\n%s", err, out)
	}
	if len(got) != 4 || got[0].Type != "gene" || got[0].Name != "geneX" || got[0].Color != got[1].Color {
		t.Fatalf("unexpected: %+v", got)
	}
}

func TestAnnotateNameKeys(t *testing.T) {
	code, out, _ := run(t, "annotate", "--name-keys", "locus_tag", "--no-header", "testdata/sample.gb")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(out, "\tSV_003\t49\t60\t") {
		t.Fatalf("locus_tag should name the third CDS:\n%s", out)
	}
}

func TestAnnotateNoMatchExitCode(t *testing.T) {
	if code, _, _ := run(t, "annotate", "--kinds", "tRNA", "testdata/sample.gb"); code != 1 {
		t.Fatalf("want exit 1, got %d", code)
	}
	if code, _, _ := run(t, "annotate", "--kinds", "tRNA", "--no-match-exit-code", "0", "testdata/sample.gb"); code != 0 {
		t.Fatalf("want exit 0, got %d", code)
	}
}

func TestAnnotateMalformedPolicies(t *testing.T) {
	code, out, stderr := run(t, "annotate", "testdata/bad.gb")
	if code != 2 {
		t.Fatalf("abort: want exit 2, got %d", code)
	}
	if strings.Contains(out, "geneX") {
		t.Fatalf("abort must not emit partial output:\n%s", out)
	}
	if !strings.Contains(stderr, "feature #1") || !strings.Contains(stderr, "invalid span") {
		t.Fatalf("error should name the feature:\n%s", stderr)
	}

	code, out, stderr = run(t, "annotate", "--error-policy", "collect", "testdata/bad.gb")
	if code != 0 {
		t.Fatalf("collect: want exit 0, got %d (%s)", code, stderr)
	}
	if !strings.Contains(out, "geneX") || strings.Contains(out, "backwards") {
		t.Fatalf("collect keeps only well-formed features:\n%s", out)
	}
	if !strings.Contains(stderr, "WARN:") {
		t.Fatalf("collect should warn:\n%s", stderr)
	}
	_, _, stderr = run(t, "annotate", "-q", "--error-policy", "collect", "testdata/bad.gb")
	if stderr != "" {
		t.Fatalf("--quiet should silence warnings, got %q", stderr)
	}
}

func TestAnnotateGFF(t *testing.T) {
	code, out, stderr := run(t, "annotate", "--gff", "testdata/genes.gff3", "-o", "jsonl")
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, stderr)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("want 3 CDS lines, got %d:\n%s", len(lines), out)
	}
	var first api.AnnotationV1
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatal(err)
	}
	if first.Name != "dnaA" || first.Color != "#901b3a" || first.RecordID != "chr1" {
		t.Fatalf("unexpected: %+v", first)
	}
}

func TestColor(t *testing.T) {
	code, out, _ := run(t, "color", "geneX", "dnaA", "")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if out != "geneX\t#922305\ndnaA\t#901b3a\n\t#d41d8c\n" {
		t.Fatalf("unexpected:\n%q", out)
	}
}

func TestFetchUsesCache(t *testing.T) {
	dir := t.TempDir()
	raw, err := os.ReadFile("testdata/sample.gb")
	if err != nil {
		t.Fatal(err)
	}
	gb := filepath.Join(dir, "SV0001.gb")
	if err := os.WriteFile(gb, raw, 0o644); err != nil {
		t.Fatal(err)
	}
	cache := filepath.Join(dir, "records.db")

	code, out, stderr := run(t, "fetch", "--dir", dir, "--cache", cache, "SV0001")
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, stderr)
	}
	if !strings.Contains(out, "SV0001\tSV0001.1\t60\tcircular\tdna\t6\t3\n") {
		t.Fatalf("unexpected summary:\n%s", out)
	}

	// The file is gone; the bolt cache still answers.
	if err := os.Remove(gb); err != nil {
		t.Fatal(err)
	}
	if code, _, stderr = run(t, "fetch", "--dir", dir, "--cache", cache, "SV0001"); code != 0 {
		t.Fatalf("cached fetch: exit %d, stderr=%s", code, stderr)
	}
	// A different contact is a different cache key.
	if code, _, _ = run(t, "fetch", "--dir", dir, "--cache", cache, "--contact", "me@lab.org", "SV0001"); code != 2 {
		t.Fatalf("uncached contact should miss: exit %d", code)
	}
}

func TestPropsResolve(t *testing.T) {
	code, out, stderr := run(t, "props", "testdata/sample.gb", "--resolve", "--search", "AAAGAA", "--compact")
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, stderr)
	}
	var st api.ViewerStateV1
	if err := json.Unmarshal([]byte(out), &st); err != nil {
		t.Fatalf("bad JSON: %v\n%s", err, out)
	}
	if st.Props.Viewer != "both" || st.Props.Zoom.Linear != 50 || len(st.Props.Annotations) != 3 || !st.Props.Circular {
		t.Fatalf("unexpected props: %+v", st.Props)
	}
	if len(st.Search) != 1 || st.Search[0].Start != 3 {
		t.Fatalf("unexpected search: %+v", st.Search)
	}
	if len(st.CutSites) != 4 {
		t.Fatalf("want 4 cut sites, got %+v", st.CutSites)
	}
}

func TestPropsProteinWarns(t *testing.T) {
	code, out, stderr := run(t, "props", "testdata/sample.gb", "--record", "SVP001", "--kinds", "Protein")
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, stderr)
	}
	if !strings.Contains(stderr, "WARN:") || !strings.Contains(out, `"alphabet": "aa"`) {
		t.Fatalf("protein props:\n%s\n%s", out, stderr)
	}
}

func TestPropsValidation(t *testing.T) {
	if code, _, _ := run(t, "props", "testdata/sample.gb", "--zoom", "120"); code != 2 {
		t.Fatalf("zoom 120: want 2, got %d", code)
	}
	if code, _, _ := run(t, "props", "testdata/sample.gb", "--enzymes", "NopeI"); code != 2 {
		t.Fatalf("unknown enzyme: want 2, got %d", code)
	}
}

func TestOverlapWindow(t *testing.T) {
	code, out, stderr := run(t, "overlap", "testdata/sample.gb", "--start", "20", "--end", "30", "--no-header")
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, stderr)
	}
	if n := strings.Count(out, "\n"); n != 2 {
		t.Fatalf("want geneX and DNA polymerase, got:\n%s", out)
	}
	if code, _, _ := run(t, "overlap", "testdata/sample.gb", "--contained"); code != 1 {
		t.Fatalf("nothing is contained: want exit 1, got %d", code)
	}
	if code, _, _ := run(t, "overlap", "testdata/sample.gb", "--at", "5", "--contained"); code != 2 {
		t.Fatalf("two modes: want exit 2, got %d", code)
	}
}

func TestUsageErrors(t *testing.T) {
	cases := [][]string{
		{"annotate"},
		{"annotate", "--bogus", "testdata/sample.gb"},
		{"annotate", "-o", "fasta", "testdata/sample.gb"},
		{"annotate", "--error-policy", "maybe", "testdata/sample.gb"},
		{"annotate", "testdata/missing.gb"},
		{"nosuchcommand"},
		{"fetch"},
	}
	for _, argv := range cases {
		if code, _, stderr := run(t, argv...); code != 2 || stderr == "" {
			t.Fatalf("%v: want exit 2 with a message, got %d %q", argv, code, stderr)
		}
	}
}

func TestVersionAndHelp(t *testing.T) {
	code, out, _ := run(t, "--version")
	if code != 0 || !strings.HasPrefix(out, "seqviz version ") {
		t.Fatalf("version: %d %q", code, out)
	}
	code, out, _ = run(t)
	if code != 0 || !strings.Contains(out, "annotate") {
		t.Fatalf("bare invocation should print help: %d\n%s", code, out)
	}
}

func TestEnzymesList(t *testing.T) {
	code, out, _ := run(t, "enzymes")
	if code != 0 || !strings.Contains(out, "\nEcoRI\tGAATTC\t1\t5\n") {
		t.Fatalf("enzymes: %d\n%s", code, out)
	}
}

func TestConfigInitShowAndDocs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seqviz.yaml")
	if code, _, stderr := run(t, "config", "init", path); code != 0 {
		t.Fatalf("init: %d %s", code, stderr)
	}
	if code, _, _ := run(t, "config", "init", path); code != 2 {
		t.Fatalf("init over existing file should fail, got %d", code)
	}
	code, out, _ := run(t, "--config", path, "config", "show")
	if code != 0 || !strings.Contains(out, "zoom: 50") || !strings.Contains(out, "contact: example@domain.com") {
		t.Fatalf("show: %d\n%s", code, out)
	}

	docs := filepath.Join(dir, "docs")
	if code, _, stderr := run(t, "docs", docs); code != 0 {
		t.Fatalf("docs: %d %s", code, stderr)
	}
	if _, err := os.Stat(filepath.Join(docs, "seqviz_annotate.md")); err != nil {
		t.Fatalf("docs not generated: %v", err)
	}
}
