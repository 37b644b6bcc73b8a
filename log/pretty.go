package log

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// prettyStyles holds the colors used by [prettyHandler]. Styles are bound to
// a renderer for the output writer, so color is dropped automatically when
// the writer is not a terminal.
type prettyStyles struct {
	key, str, num, yes, no, dur, null lipgloss.Style
	trace, debug, info, warn, err     lipgloss.Style
}

func newPrettyStyles(w io.Writer) *prettyStyles {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return &prettyStyles{
		key:   fg("8"),
		str:   fg("6"),
		num:   fg("3"),
		yes:   fg("2"),
		no:    fg("1"),
		dur:   fg("5"),
		null:  fg("8"),
		trace: fg("8"),
		debug: fg("4"),
		info:  fg("2"),
		warn:  fg("3").Bold(true),
		err:   fg("1").Bold(true),
	}
}

func (s *prettyStyles) level(l slog.Level) lipgloss.Style {
	switch {
	case l >= slog.LevelError:
		return s.err
	case l >= slog.LevelWarn:
		return s.warn
	case l >= slog.LevelInfo:
		return s.info
	case l >= slog.LevelDebug:
		return s.debug
	default:
		return s.trace
	}
}

// prettyHandler is a colorized [slog.Handler] writing either single-line
// key=value text or indented JSON-like records.
type prettyHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	styles *prettyStyles
	attrs  []slog.Attr // added with WithAttrs, already nested under groups
	groups []string
	json   bool
}

func newPrettyHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
	json bool,
) *prettyHandler {
	return &prettyHandler{
		opts:   *opts,
		mu:     &sync.Mutex{},
		w:      w,
		styles: newPrettyStyles(w),
		json:   json,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	threshold := slog.LevelInfo
	if h.opts.Level != nil {
		threshold = h.opts.Level.Level()
	}

	return level >= threshold
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	c := *h
	c.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], nest(h.groups, attrs)...)

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.groups = append(h.groups[:len(h.groups):len(h.groups)], name)

	return &c
}

// nest wraps attrs in the named groups, outermost first.
func nest(groups []string, attrs []slog.Attr) []slog.Attr {
	for i := len(groups) - 1; i >= 0; i-- {
		args := make([]any, len(attrs))
		for j, a := range attrs {
			args[j] = a
		}

		attrs = []slog.Attr{slog.Group(groups[i], args...)}
	}

	return attrs
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	var builtin []slog.Attr

	if !r.Time.IsZero() {
		builtin = append(builtin, h.replace(slog.Time(slog.TimeKey, r.Time)))
	}

	builtin = append(builtin, h.replace(slog.Any(slog.LevelKey, r.Level)))

	if h.opts.AddSource {
		if src := r.Source(); src != nil && src.File != "" {
			builtin = append(builtin,
				slog.String(slog.SourceKey, src.File+":"+strconv.Itoa(src.Line)))
		}
	}

	builtin = append(builtin, slog.String(slog.MessageKey, r.Message))

	own := make([]slog.Attr, 0, r.NumAttrs())
	r.Attrs(func(a slog.Attr) bool {
		own = append(own, a)

		return true
	})

	all := append(builtin, h.attrs...)
	all = append(all, nest(h.groups, own)...)

	buf := new(bytes.Buffer)

	if h.json {
		h.writeObject(buf, all, 1, r.Level)
	} else {
		h.writeText(buf, "", all, r.Level)
	}

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

// replace applies the configured ReplaceAttr to a built-in attribute.
func (h *prettyHandler) replace(a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr == nil {
		return a
	}

	return h.opts.ReplaceAttr(nil, a)
}

func (h *prettyHandler) writeText(
	buf *bytes.Buffer,
	prefix string,
	attrs []slog.Attr,
	level slog.Level,
) {
	for _, a := range attrs {
		a.Value = a.Value.Resolve()
		if a.Equal(slog.Attr{}) {
			continue
		}

		if a.Value.Kind() == slog.KindGroup {
			p := prefix
			if a.Key != "" {
				p += a.Key + "."
			}

			h.writeText(buf, p, a.Value.Group(), level)

			continue
		}

		if buf.Len() > 0 {
			buf.WriteByte(' ')
		}

		buf.WriteString(h.styles.key.Render(prefix + a.Key))
		buf.WriteByte('=')
		buf.WriteString(h.value(a, level, false))
	}
}

func (h *prettyHandler) writeObject(
	buf *bytes.Buffer,
	attrs []slog.Attr,
	depth int,
	level slog.Level,
) {
	indent := strings.Repeat("  ", depth)
	first := true

	buf.WriteString("{\n")

	for _, a := range attrs {
		a.Value = a.Value.Resolve()
		if a.Equal(slog.Attr{}) {
			continue
		}

		if !first {
			buf.WriteString(",\n")
		}

		first = false

		buf.WriteString(indent)
		buf.WriteString(h.styles.key.Render(strconv.Quote(a.Key)))
		buf.WriteString(": ")

		if a.Value.Kind() == slog.KindGroup {
			h.writeObject(buf, a.Value.Group(), depth+1, level)
		} else {
			buf.WriteString(h.value(a, level, true))
		}
	}

	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat("  ", depth-1))
	buf.WriteByte('}')
}

// value renders a non-group attribute value. Strings are quoted only in
// JSON mode.
func (h *prettyHandler) value(a slog.Attr, level slog.Level, quote bool) string {
	v := a.Value
	s := h.styles

	str := func(x string) string {
		if quote {
			return strconv.Quote(x)
		}

		return x
	}

	if a.Key == slog.LevelKey {
		return s.level(level).Render(str(v.String()))
	}

	switch v.Kind() {
	case slog.KindString:
		return s.str.Render(str(v.String()))

	case slog.KindInt64:
		return s.num.Render(strconv.FormatInt(v.Int64(), 10))

	case slog.KindUint64:
		return s.num.Render(strconv.FormatUint(v.Uint64(), 10))

	case slog.KindFloat64:
		return s.num.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64))

	case slog.KindBool:
		if v.Bool() {
			return s.yes.Render("true")
		}

		return s.no.Render("false")

	case slog.KindDuration:
		return s.dur.Render(str(v.Duration().String()))

	case slog.KindTime:
		return s.str.Render(str(v.Time().Format(time.RFC3339)))

	default:
		if v.Any() == nil {
			return s.null.Render("null")
		}

		if err, ok := v.Any().(error); ok {
			return s.no.Render(str(err.Error()))
		}

		return s.str.Render(str(v.String()))
	}
}
