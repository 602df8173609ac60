package argparser

// WithAlternatives sets the spellings of an option. Each spelling is prefixed by '-' or '+';
// spellings with a doubled prefix ("--line", "++hidden") are long options, all others are
// single characters which may be clustered ("-abc").
func WithAlternatives(alternatives ...string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Alternatives = alternatives
	}
}

// WithArity defines how many values the option consumes
func WithArity(arity Arity) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		if arity < Argumentless || arity > Variadic {
			*err = ErrInvalidArity
			return
		}
		option.Arity = arity
	}
}

// WithDefault selects the standard spelling by its index in the alternatives.
// Negative indexes count from the end, so -1 is the last alternative.
func WithDefault(index int) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Default = index
	}
}

// WithDefaultName selects the standard spelling by name. The name must be one of the alternatives.
func WithDefaultName(name string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.DefaultName = name
	}
}

// WithArgument sets the value label displayed in help, for example LINE in "--line LINE"
func WithArgument(argument string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Argument = argument
	}
}

// WithHelp sets the help text. An option without help is still parsed but not shown in help.
func WithHelp(help string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Help = help
	}
}
