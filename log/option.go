package log

import "io"

// Option configures a [Logger].
type Option func(*config)

// WithOutput sets the destination of log messages.
// A nil writer discards everything.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w == nil {
			w = io.Discard
		}

		c.output = w
	}
}

// WithLevel sets the minimum log level.
// Messages below this level are discarded.
func WithLevel(level Level) Option {
	return func(c *config) { c.level = level }
}

// WithFormat sets the output format of log messages.
func WithFormat(format Format) Option {
	return func(c *config) { c.format = format }
}

// WithTimeLayout sets the layout used to format log timestamps.
//
// The layout may name one of the layouts from the [time] package, such as
// "RFC3339" or "Kitchen", ignoring case. Otherwise it is passed verbatim to
// [time.Time.Format]. An empty layout or "none" disables timestamps.
func WithTimeLayout(layout string) Option {
	return func(c *config) { c.formatTime = makeFormatTimeFunc(layout) }
}

// WithCaller controls whether the source location of the logging call is
// included in log output.
func WithCaller(enable bool) Option {
	return func(c *config) { c.caller = enable }
}

// WithPretty controls whether log output is colorized.
// Text output drops quoting and colors keys and values; JSON output is
// indented across multiple lines.
func WithPretty(enable bool) Option {
	return func(c *config) { c.pretty = enable }
}
