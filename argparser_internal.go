package argparser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ef-ds/deque"
	"github.com/napalu/argparser/parse"
)

// occurrence is a single use of an option in the argument list
type occurrence struct {
	standard string
	value    *string
}

// scanState is the mutable state of one classification pass. Nothing in it is shared
// with the Parser, which is only read.
type scanState struct {
	parser            *Parser
	result            *Result
	args              parse.State
	dashed            bool // everything which follows is a file
	tmpdashed         bool // the next argument is a file
	pendingValueCount int
	pending           deque.Deque // indexes of argumented occurrences waiting for a value
	occurrences       []occurrence
	variadic          int // index of the triggered variadic occurrence, -1 if none
	variadicAnchor    int // number of files collected before the variadic option
}

func newScanState(p *Parser, args []string) *scanState {
	arguments := make([]string, len(args))
	copy(arguments, args)

	return &scanState{
		parser:   p,
		result:   newResult(arguments, p.options, p.table),
		args:     parse.NewState(arguments),
		variadic: -1,
	}
}

func (s *scanState) run() *Result {
	for s.args.Advance() {
		arg := s.args.CurrentArg()
		switch {
		case s.pendingValueCount > 0:
			s.pendingValueCount--
			s.fillPending(arg)
		case s.tmpdashed:
			s.tmpdashed = false
			s.addFile(arg)
		case s.dashed:
			s.addFile(arg)
		case arg == "++":
			s.trace(arg, "next argument is a file")
			s.tmpdashed = true
		case arg == "--":
			s.trace(arg, "end of options")
			s.dashed = true
		case len(arg) > 1 && isSign(arg[0]):
			if len(arg) > 2 && arg[1] == arg[0] {
				s.long(arg)
			} else {
				s.cluster(arg)
			}
		default:
			s.addFile(arg)
		}
	}

	s.finish()

	return s.result
}

// long classifies "--name", "++name" and "--name=value", expanding abbreviations of names which are unknown
func (s *scanState) long(arg string) {
	if s.classifyLong(arg) {
		return
	}
	if expanded, ok := s.expand(arg); ok {
		s.trace(arg, "abbreviation", "expanded", expanded)
		if s.classifyLong(expanded) {
			return
		}
	}
	s.unrecognised(arg)
}

func (s *scanState) classifyLong(arg string) bool {
	entry, found := s.parser.lookup(arg)
	if found && entry.arity == Argumentless {
		s.record(entry, nil)
		return true
	}

	if eq := strings.IndexByte(arg, '='); eq >= 0 {
		name, value := arg[:eq], arg[eq+1:]
		if e, ok := s.parser.lookup(name); ok && e.arity >= Argumented {
			s.record(e, &value)
			if e.arity == Variadic {
				s.openVariadic()
			}
			return true
		}
	}

	switch {
	case found && entry.arity == Argumented:
		s.pend(s.record(entry, nil))
	case found && entry.arity == Variadic:
		s.record(entry, nil)
		s.openVariadic()
	default:
		return false
	}

	return true
}

// cluster classifies "-abc" as "-a", "-b", "-c" sharing the sign of the argument. An
// argumented or variadic option takes the rest of the argument as its value.
func (s *scanState) cluster(arg string) {
	sign := arg[:1]
	for i := 1; i < len(arg); {
		_, size := utf8.DecodeRuneInString(arg[i:])
		name := sign + arg[i:i+size]
		rest := arg[i+size:]
		i += size

		entry, found := s.parser.lookup(name)
		if !found {
			s.unrecognised(name)
			continue
		}

		switch entry.arity {
		case Argumentless:
			s.record(entry, nil)
		case Argumented:
			if rest == "" {
				s.pend(s.record(entry, nil))
			} else {
				s.record(entry, &rest)
			}
			return
		case Variadic:
			if rest == "" {
				s.record(entry, nil)
			} else {
				s.record(entry, &rest)
			}
			s.openVariadic()
			return
		}
	}
}

// expand resolves an abbreviated long option, keeping any "=value" suffix
func (s *scanState) expand(arg string) (string, bool) {
	if s.parser.abbreviations == nil {
		return "", false
	}

	name, suffix := arg, ""
	if eq := strings.IndexByte(arg, '='); eq >= 0 {
		name, suffix = arg[:eq], arg[eq:]
	}

	expanded, ok := s.parser.abbreviations(name, s.parser.Spellings())
	if !ok || expanded == name {
		return "", false
	}

	return expanded + suffix, true
}

func (s *scanState) record(entry *tableEntry, value *string) int {
	s.occurrences = append(s.occurrences, occurrence{standard: entry.standard, value: value})
	if value != nil {
		s.trace(s.args.CurrentArg(), "option", "option", entry.standard, "value", *value)
	} else {
		s.trace(s.args.CurrentArg(), "option", "option", entry.standard)
	}

	return len(s.occurrences) - 1
}

// pend makes the next argument the value of the occurrence at idx
func (s *scanState) pend(idx int) {
	s.pending.PushBack(idx)
	s.pendingValueCount++
}

func (s *scanState) fillPending(value string) {
	v, ok := s.pending.PopFront()
	if !ok {
		return
	}
	idx := v.(int)
	s.occurrences[idx].value = &value
	s.trace(value, "option value", "option", s.occurrences[idx].standard)
}

// openVariadic ends option scanning. The files which follow become the values of the
// first variadic option used.
func (s *scanState) openVariadic() {
	if s.variadic < 0 {
		s.variadic = len(s.occurrences) - 1
		s.variadicAnchor = len(s.result.files)
	}
	s.dashed = true
}

func (s *scanState) addFile(arg string) {
	s.trace(arg, "file")
	s.result.files = append(s.result.files, arg)
}

func (s *scanState) unrecognised(arg string) {
	s.result.unrecognised = append(s.result.unrecognised, arg)
	s.trace(arg, "unrecognised")
	if len(s.result.unrecognised) <= unrecognisedReportLimit {
		s.parser.warn(fmt.Sprintf("%s: warning: unrecognised option %s", s.parser.program, arg))
	}
}

func (s *scanState) finish() {
	opts := s.result.opts
	for idx, occ := range s.occurrences {
		if idx == s.variadic {
			continue
		}
		existing, _ := opts.Get(occ.standard)
		values, _ := existing.([]*string)
		opts.Set(occ.standard, append(values, occ.value))
	}

	if s.variadic >= 0 {
		occ := s.occurrences[s.variadic]
		values := make([]*string, 0, 1+len(s.result.files)-s.variadicAnchor)
		if occ.value != nil {
			values = append(values, occ.value)
		}
		for i := s.variadicAnchor; i < len(s.result.files); i++ {
			values = append(values, &s.result.files[i])
		}
		s.parser.logger.Debug("reattached files to variadic option",
			"option", occ.standard, "count", len(values))
		opts.Set(occ.standard, values)
		s.result.files = s.result.files[:s.variadicAnchor:s.variadicAnchor]
	}

	if more := len(s.result.unrecognised) - unrecognisedReportLimit; more > 0 {
		noun := "options"
		if more == 1 {
			noun = "option"
		}
		s.parser.warn(fmt.Sprintf("%s: warning: %d more unrecognised %s", s.parser.program, more, noun))
	}
}

func (s *scanState) trace(arg, kind string, attrs ...any) {
	s.parser.logger.Debug("classified argument",
		append([]any{"pos", s.args.Pos(), "arg", arg, "kind", kind}, attrs...)...)
}

func isSign(c byte) bool {
	return c == '-' || c == '+'
}
