package argparser

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map"
)

// Result holds the outcome of classifying one argument list. Options are keyed by their
// standard spelling; an option which was not used has no entry (Values reports false)
// and an option occurrence which carried no value contributes a nil element.
type Result struct {
	arguments    []string
	opts         *orderedmap.OrderedMap
	table        *orderedmap.OrderedMap
	files        []string
	unrecognised []string
	aliased      bool
}

func newResult(arguments []string, options []*Option, table *orderedmap.OrderedMap) *Result {
	r := &Result{
		arguments: arguments,
		opts:      orderedmap.New(),
		table:     table,
		files:     []string{},
	}
	for _, opt := range options {
		r.opts.Set(opt.standard, []*string(nil))
	}

	return r
}

// resolve maps name to the key its values are stored under
func (r *Result) resolve(name string) string {
	if !r.aliased {
		return name
	}
	if e, found := r.table.Get(name); found {
		return e.(*tableEntry).standard
	}

	return name
}

// Values returns the captured values of an option and true when the option was used.
// Once SupportAlternatives has been called any spelling of the option can be used as name.
func (r *Result) Values(name string) ([]*string, bool) {
	v, found := r.opts.Get(r.resolve(name))
	if !found {
		return nil, false
	}
	values := v.([]*string)

	return values, values != nil
}

// Used returns true when the option occurred at least once
func (r *Result) Used(name string) bool {
	_, used := r.Values(name)
	return used
}

// Count returns the number of occurrences of an option, or for a variadic option the number of values
func (r *Result) Count(name string) int {
	values, _ := r.Values(name)
	return len(values)
}

// Strings returns the values of an option, leaving out occurrences without a value
func (r *Result) Strings(name string) []string {
	values, _ := r.Values(name)
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != nil {
			out = append(out, *v)
		}
	}

	return out
}

// Get returns the last value given to an option and true if there is one
func (r *Result) Get(name string) (string, bool) {
	values, _ := r.Values(name)
	for i := len(values) - 1; i >= 0; i-- {
		if values[i] != nil {
			return *values[i], true
		}
	}

	return "", false
}

// Names returns the standard spellings of all declared options in registration order,
// followed by every alternative spelling once SupportAlternatives has been called.
func (r *Result) Names() []string {
	names := make([]string, 0, r.opts.Len())
	for pair := r.opts.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key.(string))
	}
	if !r.aliased {
		return names
	}

	for pair := r.table.Oldest(); pair != nil; pair = pair.Next() {
		name := pair.Key.(string)
		if name != pair.Value.(*tableEntry).standard {
			names = append(names, name)
		}
	}

	return names
}

// standardOf returns the standard spelling of any declared spelling
func (r *Result) standardOf(name string) string {
	if e, found := r.table.Get(name); found {
		return e.(*tableEntry).standard
	}

	return name
}

// SupportAlternatives makes every alternative spelling resolve to the values of its
// standard spelling, so that e.g. Values("--help") returns what was stored for "-h".
func (r *Result) SupportAlternatives() {
	r.aliased = true
}

// Files returns the arguments which are neither options nor option values
func (r *Result) Files() []string {
	return r.files
}

// Message returns the files joined by blank spaces and false when there are no files
func (r *Result) Message() (string, bool) {
	if len(r.files) == 0 {
		return "", false
	}

	return strings.Join(r.files, " "), true
}

// UnrecognisedCount returns the number of unrecognised options
func (r *Result) UnrecognisedCount() int {
	return len(r.unrecognised)
}

// Unrecognised returns the unrecognised options in the order they were found
func (r *Result) Unrecognised() []string {
	return r.unrecognised
}

// Clean returns true when no unrecognised option was encountered
func (r *Result) Clean() bool {
	return len(r.unrecognised) == 0
}

// Arguments returns the arguments which were parsed
func (r *Result) Arguments() []string {
	return r.arguments
}

// ArgumentCount returns the number of arguments which were parsed
func (r *Result) ArgumentCount() int {
	return len(r.arguments)
}
