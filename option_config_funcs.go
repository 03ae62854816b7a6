package icicle

// NewOption creates an option declaration from configuration functions
func NewOption(configs ...ConfigureOptionFunc) *Option {
	option := &Option{}
	for _, config := range configs {
		config(option)
	}

	return option
}

// NewPosArg creates a positional argument declaration
func NewPosArg(desc string, required, array bool) *PosArg {
	return &PosArg{Description: desc, Required: required, Array: array}
}

// WithOptionNames sets the accepted spellings, leading dashes included.
// The first name is canonical.
func WithOptionNames(names ...string) ConfigureOptionFunc {
	return func(option *Option) {
		option.Names = names
	}
}

// WithOptionDescription sets the description shown in help output
func WithOptionDescription(description string) ConfigureOptionFunc {
	return func(option *Option) {
		option.Description = description
	}
}

// SetOptionRequired when true, the option must be supplied on the command line
func SetOptionRequired(required bool) ConfigureOptionFunc {
	return func(option *Option) {
		option.Required = required
	}
}

// WithSecurePrompt marks the option as secure: a missing required value is
// solicited from the terminal without echoing, using the given prompt
func WithSecurePrompt(prompt string) ConfigureOptionFunc {
	return func(option *Option) {
		option.Secure = Secure{IsSecure: true, Prompt: prompt}
	}
}
