// Package journal keeps a journal and, separately, the means to persist it.
//
// Journal only manages entries. Saving and loading live in PersistenceManager,
// so a change of storage never touches the journal itself.
package journal

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Journal is an ordered list of numbered entries.
// Numbers keep increasing after entries are removed.
type Journal struct {
	entries []string
	count   int
}

func New() *Journal {
	return &Journal{}
}

// AddEntry appends text as "<n>: <text>" and returns n.
// An entry is a single line: text containing a newline is rejected.
func (j *Journal) AddEntry(text string) (int, error) {
	if strings.Contains(text, "\n") {
		return 0, errors.Wrapf(ErrMultilineEntry, "%q", text)
	}
	n := j.count
	j.entries = append(j.entries, strconv.Itoa(n)+": "+text)
	j.count++
	return n, nil
}

// RemoveEntry removes the entry at position pos, counted from zero.
func (j *Journal) RemoveEntry(pos int) error {
	if pos < 0 || pos >= len(j.entries) {
		return errors.Wrapf(ErrEntryOutOfRange, "position %d of %d", pos, len(j.entries))
	}
	j.entries = append(j.entries[:pos], j.entries[pos+1:]...)
	return nil
}

// Entries returns a copy of the formatted entries.
func (j *Journal) Entries() []string {
	return append([]string(nil), j.entries...)
}

func (j *Journal) Len() int {
	return len(j.entries)
}

func (j *Journal) String() string {
	return strings.Join(j.entries, "\n")
}

// parse rebuilds a journal from its String form.
func parse(text string) (*Journal, error) {
	j := New()
	if text == "" {
		return j, nil
	}
	for i, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		num, _, ok := strings.Cut(line, ": ")
		if !ok {
			return nil, errors.Wrapf(ErrMalformedEntry, "line %d", i+1)
		}
		n, err := strconv.Atoi(num)
		if err != nil || n < j.count {
			return nil, errors.Wrapf(ErrMalformedEntry, "line %d: bad number %q", i+1, num)
		}
		j.entries = append(j.entries, line)
		j.count = n + 1
	}
	return j, nil
}
