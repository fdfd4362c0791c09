package dict

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eur-rsm/personality-recognizer/pkg/liwc/internalerr"
)

const sampleSource = "\tPOSITIVE\n" +
	"\t\tHappy (1)\n" +
	"\t\tgood (2)\n" +
	"\tNEGATIVE\n" +
	"\t\tsad (3)\n" +
	"\tNUMBERS\n" +
	"\t\tone (4)\n" +
	"\t\ttwo (5)\n"

func TestParseOrder(t *testing.T) {
	d, err := Parse(strings.NewReader(sampleSource))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if d.Len() != 3 {
		t.Fatalf("Len = %d, want 3", d.Len())
	}
	want := []string{"POSITIVE", "NEGATIVE", "NUMBERS"}
	for i, cat := range d.Categories() {
		if cat.Name != want[i] {
			t.Errorf("category %d = %q, want %q", i, cat.Name, want[i])
		}
	}
}

func TestParseLowercasesMembers(t *testing.T) {
	d, err := Parse(strings.NewReader(sampleSource))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	positive := d.Categories()[0]
	if !positive.Pattern.MatchString("happy") {
		t.Error("POSITIVE should match lowercased token \"happy\"")
	}
	if positive.Pattern.MatchString("Happy") {
		t.Error("patterns are built for lowercased tokens, \"Happy\" should not match")
	}
}

func TestParseWildcardStem(t *testing.T) {
	src := "\tAFFECT\n" +
		"\t\thapp* (1)\n" +
		"\t\thappy* (2)\n"
	d, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	pattern := d.Categories()[0].Pattern

	for _, word := range []string{"happ", "happy", "happily", "happy's"} {
		if !pattern.MatchString(word) {
			t.Errorf("happ* should match %q", word)
		}
	}
	// Stems anchor at the word start, never mid-word.
	if pattern.MatchString("unhappy") {
		t.Error("happ* must not match \"unhappy\"")
	}
}

func TestParseMemberFirstFieldOnly(t *testing.T) {
	src := "\tFILLERS\n" +
		"\t\tkind of (12)\n"
	d, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	pattern := d.Categories()[0].Pattern

	if !pattern.MatchString("kind") {
		t.Error("member word is the first field, should match \"kind\"")
	}
	if pattern.MatchString("of") {
		t.Error("annotation trailer must not become a member")
	}
}

func TestParseEmptyCategoryDropped(t *testing.T) {
	src := "\tEMPTY\n" +
		"\tREAL\n" +
		"\t\tword (1)\n"
	d, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if d.Len() != 1 {
		t.Fatalf("Len = %d, want 1", d.Len())
	}
	if d.Has("EMPTY") {
		t.Error("category without members should be dropped")
	}
	if !d.Has("REAL") {
		t.Error("expected category REAL")
	}
}

func TestParseRepeatedHeaderKeepsPosition(t *testing.T) {
	src := "\tFIRST\n" +
		"\t\told (1)\n" +
		"\tSECOND\n" +
		"\t\tother (2)\n" +
		"\tFIRST\n" +
		"\t\tnew (3)\n"
	d, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if d.Len() != 2 {
		t.Fatalf("Len = %d, want 2", d.Len())
	}
	first := d.Categories()[0]
	if first.Name != "FIRST" {
		t.Fatalf("first category = %q, want FIRST", first.Name)
	}
	if first.Pattern.MatchString("old") || !first.Pattern.MatchString("new") {
		t.Error("repeated header should replace the earlier members")
	}
}

func TestParseNoCategories(t *testing.T) {
	_, err := Parse(strings.NewReader("no structure at all\njust prose\n"))
	if !errors.Is(err, internalerr.ErrDictionaryFormat) {
		t.Errorf("err = %v, want ErrDictionaryFormat", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "liwc.cat")
	if err := os.WriteFile(path, []byte(sampleSource), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Len() != 3 {
		t.Errorf("Len = %d, want 3", d.Len())
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.cat"))
	if !errors.Is(err, internalerr.ErrDictionaryNotFound) {
		t.Errorf("err = %v, want ErrDictionaryNotFound", err)
	}
}
