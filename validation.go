package argparser

import (
	"fmt"
	"strings"
)

// ExitWith makes a failing check terminate the process with code through the exit function of the Parser
func ExitWith(code int) ConfigureCheckFunc {
	return func(check *checkConfig) {
		check.exit = true
		check.exitCode = code
	}
}

func newCheckConfig(configs []ConfigureCheckFunc) *checkConfig {
	check := &checkConfig{}
	for _, config := range configs {
		config(check)
	}

	return check
}

// fail records err and exits when the check was configured to
func (p *Parser) fail(check *checkConfig, err error) {
	p.addError(err)
	if check.exit {
		p.exit(check.exitCode)
	}
}

// usedNames returns the names of the current result which were used, in the order Result.Names returns them
func (p *Parser) usedNames() []string {
	var used []string
	for _, name := range p.result.Names() {
		if p.result.Used(name) {
			used = append(used, name)
		}
	}

	return used
}

// annotate appends the standard spelling of name in parentheses when name is an alternative spelling
func (p *Parser) annotate(name string) string {
	standard := p.result.standardOf(name)
	if standard == name {
		return name
	}

	return name + "(" + standard + ")"
}

// TestExclusiveness checks that at most one of exclusives was used. When more were, a single line
// naming every conflicting option is written. Returns true when the check passes.
func (p *Parser) TestExclusiveness(exclusives []string, configs ...ConfigureCheckFunc) bool {
	check := newCheckConfig(configs)
	if p.result == nil {
		p.fail(check, ErrNotParsed)
		return false
	}

	set := toSet(exclusives)
	var conflicting []string
	for _, name := range p.usedNames() {
		if set[name] {
			conflicting = append(conflicting, p.annotate(name))
		}
	}
	if len(conflicting) <= 1 {
		return true
	}

	p.warn(fmt.Sprintf("%s: conflicting options: %s", p.program, strings.Join(conflicting, " ")))
	p.fail(check, fmt.Errorf(FmtErrorWithString, ErrConflictingOptions, strings.Join(conflicting, " ")))

	return false
}

// TestAllowed checks that only options in allowed were used. Every option used out of context is
// reported on its own line. Returns true when the check passes.
func (p *Parser) TestAllowed(allowed []string, configs ...ConfigureCheckFunc) bool {
	check := newCheckConfig(configs)
	if p.result == nil {
		p.fail(check, ErrNotParsed)
		return false
	}

	set := toSet(allowed)
	ok := true
	for _, name := range p.usedNames() {
		if set[name] {
			continue
		}
		annotated := p.annotate(name)
		p.warn(fmt.Sprintf("%s: option used out of context: %s", p.program, annotated))
		p.addError(fmt.Errorf(FmtErrorWithString, ErrOutOfContext, annotated))
		ok = false
	}
	if !ok && check.exit {
		p.exit(check.exitCode)
	}

	return ok
}

// TestFiles checks that the number of files is between min and max inclusive. A negative max
// means there is no upper bound.
func (p *Parser) TestFiles(min, max int, configs ...ConfigureCheckFunc) bool {
	check := newCheckConfig(configs)
	if p.result == nil {
		p.fail(check, ErrNotParsed)
		return false
	}

	n := len(p.result.Files())
	if n >= min && (max < 0 || n <= max) {
		return true
	}

	bounds := fmt.Sprintf("%d files, expected at least %d", n, min)
	if max >= 0 {
		bounds = fmt.Sprintf("%d files, expected %d to %d", n, min, max)
	}
	p.fail(check, fmt.Errorf(FmtErrorWithString, ErrFileCount, bounds))

	return false
}

// TestFilesMin checks that there are at least min files
func (p *Parser) TestFilesMin(min int, configs ...ConfigureCheckFunc) bool {
	return p.TestFiles(min, -1, configs...)
}

// TestFilesMax checks that there are at most max files
func (p *Parser) TestFilesMax(max int, configs ...ConfigureCheckFunc) bool {
	return p.TestFiles(0, max, configs...)
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}

	return set
}
