package args

import "strings"

// Entry is a single key/value pair taken from the command line.
// Tokens without '=' produce an Entry with an empty Value.
type Entry struct {
	Key   string
	Value string
}

// Arguments holds the parsed command line entries in their original order.
// Keys are not required to be unique; lookups return the first match.
type Arguments struct {
	entries []Entry
}

// Parse tokenizes the given arguments (without the program path) on '='.
//
// Parameters:
//   - tokens: The raw arguments, e.g. os.Args[1:].
//
// Returns:
//   - *Arguments: The parsed entries. Parsing never fails.
func Parse(tokens []string) *Arguments {
	a := &Arguments{entries: make([]Entry, 0, len(tokens))}
	for _, tok := range tokens {
		key, value, found := strings.Cut(tok, "=")
		if !found {
			a.entries = append(a.entries, Entry{Key: trim(tok)})
			continue
		}
		a.entries = append(a.entries, Entry{Key: trim(key), Value: trim(value)})
	}
	return a
}

// New builds Arguments from already split entries.
func New(entries ...Entry) *Arguments {
	return &Arguments{entries: append([]Entry(nil), entries...)}
}

// Merge returns a new Arguments with the entries of a followed by those of other.
// Entries of a win lookups against duplicate keys in other.
func (a *Arguments) Merge(other *Arguments) *Arguments {
	merged := New(a.entries...)
	if other != nil {
		merged.entries = append(merged.entries, other.entries...)
	}
	return merged
}

// Has reports whether any entry carries the given key.
func (a *Arguments) Has(key string) bool {
	_, ok := a.lookup(key)
	return ok
}

// Get returns the value of the first entry with the given key, or "" if none.
func (a *Arguments) Get(key string) string {
	v, _ := a.lookup(key)
	return v
}

// Len returns the number of entries.
func (a *Arguments) Len() int {
	return len(a.entries)
}

// At returns the entry at index i.
func (a *Arguments) At(i int) Entry {
	return a.entries[i]
}

// Last returns the final entry and false when there are no entries.
func (a *Arguments) Last() (Entry, bool) {
	if len(a.entries) == 0 {
		return Entry{}, false
	}
	return a.entries[len(a.entries)-1], true
}

func (a *Arguments) lookup(key string) (string, bool) {
	for _, e := range a.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// trim strips surrounding spaces, then quotes, then spaces again.
func trim(s string) string {
	s = strings.Trim(s, " ")
	s = strings.Trim(s, `"`)
	return strings.Trim(s, " ")
}
