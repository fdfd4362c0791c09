package dict

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/eur-rsm/personality-recognizer/pkg/liwc/internalerr"
)

// NumbersCategory is the category name whose score also receives the
// structurally counted numeral tokens.
const NumbersCategory = "NUMBERS"

var (
	headerLine = regexp.MustCompile(`^\t[\w ]+$`)
	memberLine = regexp.MustCompile(`^\t\t.+ \(\d+\)$`)
)

// Category is one word category with its compiled member pattern. The
// pattern is a word-boundary-anchored disjunction of every member, with
// wildcard stems expanded to match any word sharing the prefix.
type Category struct {
	Name    string
	Pattern *regexp.Regexp
}

// Dictionary is an ordered set of compiled categories. Order is the order
// in which category headers first appear in the source, and it determines
// the field order of every analysis result. A Dictionary is immutable
// after construction and safe for concurrent use.
type Dictionary struct {
	cats  []Category
	index map[string]int
}

// Load reads and compiles a category file, conventionally LIWC.CAT: a
// header line is a tab followed by the category name, and each member
// line is two tabs, the member word and a numeric annotation such as
// "(19)" that is ignored.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, internalerr.ErrDictionaryNotFound)
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return d, nil
}

// Parse compiles a dictionary from category-file source. Each category
// becomes one pattern: members are lowercased, joined with alternation,
// anchored with word boundaries on both sides, wrapped in a group, and
// any "*" expands to `[\w']*`. Categories without members are dropped.
// A repeated header replaces that category's members but keeps its
// original position.
func Parse(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{index: make(map[string]int)}

	scanner := bufio.NewScanner(r)
	current := ""
	var members []string
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case headerLine.MatchString(line):
			if err := d.add(current, members); err != nil {
				return nil, err
			}
			current = strings.Split(line, "\t")[1]
			members = members[:0]
		case memberLine.MatchString(line):
			members = append(members, strings.ToLower(strings.Fields(line)[0]))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	if err := d.add(current, members); err != nil {
		return nil, err
	}

	if len(d.cats) == 0 {
		return nil, fmt.Errorf("no categories found: %w", internalerr.ErrDictionaryFormat)
	}
	return d, nil
}

// add compiles the pending category and stores it, keeping the position
// of an already known name. Empty member lists compile to a pattern that
// matches everything, so they are skipped.
func (d *Dictionary) add(name string, members []string) error {
	if len(members) == 0 {
		return nil
	}

	alts := make([]string, len(members))
	for i, m := range members {
		alts[i] = `\b` + m + `\b`
	}
	expr := "(" + strings.Join(alts, "|") + ")"
	expr = strings.ReplaceAll(expr, "*", `[\w']*`)

	pattern, err := regexp.Compile(expr)
	if err != nil {
		return fmt.Errorf("category %q: %v: %w", name, err, internalerr.ErrDictionaryFormat)
	}

	if i, ok := d.index[name]; ok {
		d.cats[i].Pattern = pattern
		return nil
	}
	d.index[name] = len(d.cats)
	d.cats = append(d.cats, Category{Name: name, Pattern: pattern})
	return nil
}

// Categories returns the compiled categories in source order. The
// returned slice is shared; callers must not modify it.
func (d *Dictionary) Categories() []Category {
	return d.cats
}

// Len reports the number of compiled categories.
func (d *Dictionary) Len() int {
	return len(d.cats)
}

// Has reports whether the dictionary defines the named category.
func (d *Dictionary) Has(name string) bool {
	_, ok := d.index[name]
	return ok
}
