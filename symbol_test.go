package huffman

import (
	"errors"
	"testing"
)

func TestParseSequences(t *testing.T) {
	table, err := NewFrequencyTable([]byte("abab"), 2, 4, ParseSequences)
	if err != nil {
		t.Fatalf("NewFrequencyTable failed: %v", err)
	}

	expect := map[string]uint64{"ab": 2, "ba": 1}
	if table.Len() != len(expect) {
		t.Errorf("wrong element count:\n\texpect: %d\n\tactual: %d", len(expect), table.Len())
	}
	for key, count := range expect {
		n := table.Find([]byte(key))
		if n == nil || n.Count != count {
			t.Errorf("wrong entry for %q: %v", key, n)
		}
	}
}

func TestParseWords(t *testing.T) {
	table, err := NewFrequencyTable([]byte("  to be  or\tnot to\nbe "), 1, 4, ParseWords)
	if err != nil {
		t.Fatalf("NewFrequencyTable failed: %v", err)
	}

	expect := map[string]uint64{"to": 2, "be": 2, "or": 1, "not": 1}
	if table.Len() != len(expect) {
		t.Errorf("wrong element count:\n\texpect: %d\n\tactual: %d", len(expect), table.Len())
	}
	for key, count := range expect {
		n := table.Find([]byte(key))
		if n == nil || n.Count != count {
			t.Errorf("wrong entry for %q: %v", key, n)
		}
	}
}

func TestNewFrequencyTable_Errors(t *testing.T) {
	type testRow struct {
		name      string
		input     string
		specifier int
		parse     Parser
		err       error
	}

	testData := [...]testRow{
		{name: "empty", input: "", specifier: 1, parse: ParseSequences, err: ErrEmptyInput},
		{name: "zero-specifier", input: "abc", specifier: 0, parse: ParseSequences, err: ErrInvalidSpecifier},
		{name: "wide-specifier", input: "abc", specifier: 4, parse: ParseSequences, err: ErrInvalidSpecifier},
		{name: "only-spaces", input: " \t\n", specifier: 1, parse: ParseWords, err: ErrEmptyInput},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := NewFrequencyTable([]byte(row.input), row.specifier, DefaultBuckets, row.parse)
			if !errors.Is(err, row.err) {
				t.Errorf("wrong error:\n\texpect: %v\n\tactual: %v", row.err, err)
			}
		})
	}
}
