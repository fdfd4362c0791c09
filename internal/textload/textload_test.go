package textload

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCorpus(t *testing.T) {
	path := writeFile(t, "corpus.jsonl", `{"subject": "essay-01", "text": "I am happy."}
not json at all
{"subject": "essay-02", "text": "I am sad."}

`)

	docs, err := LoadCorpus(path)
	if err != nil {
		t.Fatalf("LoadCorpus: %v", err)
	}

	if len(docs) != 2 {
		t.Fatalf("Expected 2 documents, got %d", len(docs))
	}
	if docs[0].Subject != "essay-01" || docs[1].Subject != "essay-02" {
		t.Errorf("subjects = %q, %q", docs[0].Subject, docs[1].Subject)
	}
	if docs[0].Text != "I am happy." {
		t.Errorf("text = %q", docs[0].Text)
	}
}

func TestLoadCorpusFallbackSubject(t *testing.T) {
	path := writeFile(t, "corpus.jsonl", `{"text": "No subject here."}`)

	docs, err := LoadCorpus(path)
	if err != nil {
		t.Fatalf("LoadCorpus: %v", err)
	}
	if docs[0].Subject != "doc-1" {
		t.Errorf("Subject = %q, want doc-1", docs[0].Subject)
	}
}

func TestLoadCorpusNoValidLines(t *testing.T) {
	path := writeFile(t, "corpus.jsonl", "garbage\nmore garbage\n")

	if _, err := LoadCorpus(path); err == nil {
		t.Error("Should error when no line parses")
	}
}

func TestLoadCorpusMissingFile(t *testing.T) {
	if _, err := LoadCorpus("/nonexistent/corpus.jsonl"); err == nil {
		t.Error("Should error on missing file")
	}
}

func TestReadSubjectFile(t *testing.T) {
	path := writeFile(t, "essay-01.txt", "I am happy and good.")

	doc, err := ReadSubjectFile(path)
	if err != nil {
		t.Fatalf("ReadSubjectFile: %v", err)
	}
	if doc.Subject != "essay-01" {
		t.Errorf("Subject = %q, want essay-01", doc.Subject)
	}
	if doc.Text != "I am happy and good." {
		t.Errorf("Text = %q", doc.Text)
	}
}

func TestReadSubjectFileHTML(t *testing.T) {
	path := writeFile(t, "page.html",
		`<html><head><script>var x = 1;</script></head><body><p>Hello there.</p></body></html>`)

	doc, err := ReadSubjectFile(path)
	if err != nil {
		t.Fatalf("ReadSubjectFile: %v", err)
	}
	if doc.Subject != "page" {
		t.Errorf("Subject = %q, want page", doc.Subject)
	}
	if doc.Text != "Hello there." {
		t.Errorf("Text = %q, want Hello there.", doc.Text)
	}
}

func TestDiscoverInputs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.html", "notes.md", "c.TXT"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.txt"), 0755); err != nil {
		t.Fatal(err)
	}

	paths, err := DiscoverInputs(dir)
	if err != nil {
		t.Fatalf("DiscoverInputs: %v", err)
	}

	want := []string{
		filepath.Join(dir, "a.html"),
		filepath.Join(dir, "b.txt"),
		filepath.Join(dir, "c.TXT"),
	}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestExtractText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text",
			input: "no markup here",
			want:  "no markup here",
		},
		{
			name:  "simple tags",
			input: "<p>Hello <b>world</b></p>",
			want:  "Hello world",
		},
		{
			name:  "script dropped",
			input: "<body><script>var x = 1;</script>visible</body>",
			want:  "visible",
		},
		{
			name:  "style dropped",
			input: "<style>p { color: red }</style>text",
			want:  "text",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractText(tt.input)
			if got != tt.want {
				t.Errorf("ExtractText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
