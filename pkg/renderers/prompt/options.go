package prompt

// Theme captures optional message prefixes.
type Theme struct {
	ErrorPrefix string
	InfoPrefix  string
}

// DefaultTheme is applied when no theme is configured.
var DefaultTheme = Theme{
	ErrorPrefix: "✗ ",
	InfoPrefix:  "  ",
}

// Option configures the Runner.
type Option func(*Runner)

// WithPromptDriver overrides the prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Runner) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Runner) {
		r.theme = theme
	}
}

// WithMaxAttempts bounds the number of submit attempts. Zero or less means
// unbounded.
func WithMaxAttempts(n int) Option {
	return func(r *Runner) {
		r.maxAttempts = n
	}
}
