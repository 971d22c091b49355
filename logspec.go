package logspec

import (
	"os"
	"strings"
	"sync"
)

// Event is the filter's view of a single log event. Any structured
// context attached to the event stays opaque to this layer and travels
// with the event to the sink; only the rendered message is inspected,
// and only when a content filter is installed.
type Event interface {
	Level() Level
	Module() string

	// AppendMessage appends the rendered message text to buf and
	// returns the extended buffer.
	AppendMessage(buf []byte) []byte
}

// Sink receives the events that pass filtering. If a sink is shared
// across goroutines, serializing its writes is the sink's own business.
type Sink interface {
	Log(e Event) error
}

// Logger filters events against a parsed specification before forwarding
// them to the sink it wraps. It is immutable after Build and safe for
// concurrent use.
type Logger struct {
	sink       Sink
	directives []directive
	filter     Filter
}

// New builds a Logger around sink, configured from the LOGSPEC
// environment variable. A nil sink is allowed when the Logger is used
// only to answer Enabled checks.
func New(sink Sink) *Logger {
	b := NewBuilder(sink)
	if s, ok := os.LookupEnv(envVar); ok {
		b.Parse(s)
	}
	return b.Build()
}

// Enabled reports whether an event at level from module would pass the
// level gate. The directive list is pre-sorted by prefix length, so the
// first hit of the reverse scan is the most specific applicable rule.
func (l *Logger) Enabled(level Level, module string) bool {
	for i := len(l.directives) - 1; i >= 0; i-- {
		d := l.directives[i]
		if d.module != "" && !strings.HasPrefix(module, d.module) {
			continue
		}
		return level <= d.level
	}
	return false
}

// MaxLevel returns the most verbose level any directive allows. Adapters
// use it as a cheap pre-check before an event's module is known.
func (l *Logger) MaxLevel() Level {
	max := Off
	for _, d := range l.directives {
		if d.level > max {
			max = d.level
		}
	}
	return max
}

// Filter returns the active content filter, or nil if none is installed.
func (l *Logger) Filter() Filter { return l.filter }

// Log forwards e to the wrapped sink if it passes the level gate and the
// content filter. A dropped event reports success, exactly like one the
// sink accepted; a sink error is returned unchanged.
func (l *Logger) Log(e Event) error {
	if !l.Enabled(e.Level(), e.Module()) {
		return nil
	}
	if l.filter != nil {
		buf := bufPool.Get().(buffer)
		msg := e.AppendMessage(buf[:0])
		ok := l.filter.Match(msg)
		bufPool.Put(buffer(msg[:0]))
		if !ok {
			return nil
		}
	}
	if l.sink == nil {
		return nil
	}
	return l.sink.Log(e)
}

// Scratch buffers for rendering messages ahead of the content filter.
// Initial capacity accommodates *most* log lines.
type buffer []byte

var bufPool = sync.Pool{
	New: func() interface{} {
		return make(buffer, 0, 256)
	},
}

// Builder accumulates directives before freezing them into a Logger.
type Builder struct {
	sink    Sink
	dirs    []directive
	filter  Filter
	literal bool
}

func NewBuilder(sink Sink) *Builder {
	return &Builder{sink: sink}
}

// Directive adds a single module/level rule. The given module will log at
// most at the given level; an empty module applies the rule to every
// module.
func (b *Builder) Directive(module string, level Level) *Builder {
	b.dirs = append(b.dirs, directive{module: module, level: level})
	return b
}

// MatchLiteral switches the content filter to plain substring matching
// instead of regular expressions. Call it before Parse.
func (b *Builder) MatchLiteral() *Builder {
	b.literal = true
	return b
}

// Parse adds the directives from a specification string in the LOGSPEC
// form. See the package documentation for the grammar.
func (b *Builder) Parse(spec string) *Builder {
	dirs, filter := parseSpec(spec, b.literal)
	b.dirs = append(b.dirs, dirs...)
	b.filter = filter
	return b
}

// Build freezes the directive set. With no directives at all the logger
// defaults to errors only.
func (b *Builder) Build() *Logger {
	dirs := b.dirs
	if len(dirs) == 0 {
		dirs = []directive{{level: Error}}
	} else {
		sortDirectives(dirs)
	}
	return &Logger{
		sink:       b.sink,
		directives: dirs,
		filter:     b.filter,
	}
}
