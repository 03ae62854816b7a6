package icicle

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/napalu/icicle/parse"
	"github.com/napalu/icicle/util"
)

// Args holds parsed command-line arguments: a mapping from option names
// (including their leading dashes) to string values, and the ordered list of
// positional values. Args is a freestanding value - it is produced by a single
// Parse pass and consumed by the action or help callback it was produced for.
type Args struct {
	opts *orderedmap.OrderedMap[string, string]
	pos  []string
}

func newArgs() *Args {
	return &Args{
		opts: orderedmap.New[string, string](),
	}
}

// NewArgs parses argv without a command tree - every token is classified as
// an option or a positional
func NewArgs(argv []string) *Args {
	_, args, _ := New("").Parse(argv)

	return args
}

// NewArgsString is like NewArgs but splits a single shell-quoted string first
func NewArgsString(s string) (*Args, error) {
	argv, err := parse.Split(s)
	if err != nil {
		return nil, err
	}

	return NewArgs(argv), nil
}

// Has returns true when an option with the given name was seen
func (a *Args) Has(name string) bool {
	_, found := a.opts.Get(name)

	return found
}

// HasOr returns true when either of the two option names was seen
func (a *Args) HasOr(name, other string) bool {
	return a.Has(name) || a.Has(other)
}

// HasAt returns true when a positional value exists at the given index
func (a *Args) HasAt(pos int) bool {
	return pos >= 0 && pos < len(a.pos)
}

// GetString returns the raw value of an option and true when it was seen
func (a *Args) GetString(name string) (string, bool) {
	return a.opts.Get(name)
}

// GetStringOr returns the value of the first of the two option names which
// was seen
func (a *Args) GetStringOr(name, other string) (string, bool) {
	if value, found := a.opts.Get(name); found {
		return value, true
	}

	return a.opts.Get(other)
}

// AtString returns the positional value at the given index and true when it
// exists
func (a *Args) AtString(pos int) (string, bool) {
	if !a.HasAt(pos) {
		return "", false
	}

	return a.pos[pos], true
}

// Pos returns the positional values in the order they were seen
func (a *Args) Pos() []string {
	return a.pos
}

// Count returns the number of positional values
func (a *Args) Count() int {
	return len(a.pos)
}

// Opts returns the parsed options as KeyValue pairs in insertion order
func (a *Args) Opts() []KeyValue {
	keyValues := make([]KeyValue, 0, a.opts.Len())
	for pair := a.opts.Oldest(); pair != nil; pair = pair.Next() {
		keyValues = append(keyValues, KeyValue{Key: pair.Key, Value: pair.Value})
	}

	return keyValues
}

// OptCount returns the number of distinct options seen
func (a *Args) OptCount() int {
	return a.opts.Len()
}

// Join concatenates the positional values with the given separator
func (a *Args) Join(separator string) string {
	return strings.Join(a.pos, separator)
}

// setOpt inserts or overwrites an option value - last occurrence wins
func (a *Args) setOpt(name, value string) {
	a.opts.Set(name, value)
}

func (a *Args) hasAny(names []string) bool {
	for _, name := range names {
		if a.Has(name) {
			return true
		}
	}

	return false
}

// Get returns the value of an option converted to T. The second return value
// is false when the option was not seen or its value does not parse as T.
func Get[T util.Parseable](a *Args, name string) (T, bool) {
	var out T
	value, found := a.GetString(name)
	if !found {
		return out, false
	}
	if err := util.ConvertString(value, &out); err != nil {
		return out, false
	}

	return out, true
}

// GetOr returns the converted value of the first of the two option names
// which was seen
func GetOr[T util.Parseable](a *Args, name, other string) (T, bool) {
	if a.Has(name) {
		return Get[T](a, name)
	}

	return Get[T](a, other)
}

// At returns the positional value at the given index converted to T
func At[T util.Parseable](a *Args, pos int) (T, bool) {
	var out T
	value, found := a.AtString(pos)
	if !found {
		return out, false
	}
	if err := util.ConvertString(value, &out); err != nil {
		return out, false
	}

	return out, true
}

// Range converts the positional values in the half-open interval
// [start, end) to a slice of T. Returns ErrIndexOutOfBounds when the interval
// does not lie within the parsed positionals.
func Range[T util.Parseable](a *Args, start, end int) ([]T, error) {
	if start < 0 || end < start || end > len(a.pos) {
		return nil, ErrIndexOutOfBounds
	}

	out := make([]T, 0, end-start)
	for _, value := range a.pos[start:end] {
		var item T
		if err := util.ConvertString(value, &item); err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, nil
}
