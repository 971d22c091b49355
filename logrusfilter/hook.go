// Package logrusfilter routes logrus entries through a logspec
// specification. Attach the hook to a logger whose own output is
// discarded and whose level is set to trace, so every entry reaches the
// hook; entries that pass the gates are formatted with the logger's
// formatter and written to the hook's writer.
//
//	log := logrus.New()
//	log.SetOutput(io.Discard)
//	log.SetLevel(logrus.TraceLevel)
//	log.AddHook(logrusfilter.New(os.Stderr))
//
// The module path of an entry is read from its "module" field.
package logrusfilter

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/waimea/logspec"
)

// FieldKey is the entry field consulted for the module path.
const FieldKey = "module"

// Hook filters entries and writes the survivors to a writer.
type Hook struct {
	res *logspec.Logger
}

var _ logrus.Hook = (*Hook)(nil)

// New builds a hook writing to out, configured from the LOGSPEC
// environment variable.
func New(out io.Writer) *Hook {
	return &Hook{res: logspec.New(writerSink{out})}
}

// NewSpec builds a hook writing to out from an explicit specification
// string.
func NewSpec(out io.Writer, spec string) *Hook {
	return &Hook{res: logspec.NewBuilder(writerSink{out}).Parse(spec).Build()}
}

func (h *Hook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *Hook) Fire(e *logrus.Entry) error {
	module, _ := e.Data[FieldKey].(string)
	return h.res.Log(entryEvent{entry: e, module: module})
}

// entryEvent adapts a logrus entry to the logspec event contract.
type entryEvent struct {
	entry  *logrus.Entry
	module string
}

func (ev entryEvent) Level() logspec.Level { return fromLogrus(ev.entry.Level) }
func (ev entryEvent) Module() string       { return ev.module }

func (ev entryEvent) AppendMessage(buf []byte) []byte {
	return append(buf, ev.entry.Message...)
}

// writerSink formats surviving entries and writes them out.
type writerSink struct {
	out io.Writer
}

func (s writerSink) Log(e logspec.Event) error {
	entry := e.(entryEvent).entry
	b, err := entry.Logger.Formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = s.out.Write(b)
	return err
}

func fromLogrus(l logrus.Level) logspec.Level {
	switch l {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return logspec.Error
	case logrus.WarnLevel:
		return logspec.Warn
	case logrus.InfoLevel:
		return logspec.Info
	case logrus.DebugLevel:
		return logspec.Debug
	default:
		return logspec.Trace
	}
}
