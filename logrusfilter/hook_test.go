package logrusfilter

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestLogger(spec string) (*logrus.Logger, *bytes.Buffer) {
	out := new(bytes.Buffer)
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.TraceLevel)
	log.AddHook(NewSpec(out, spec))
	return log, out
}

func lines(out *bytes.Buffer) []string {
	s := strings.TrimSpace(out.String())
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestFireFiltersByModuleField(t *testing.T) {
	log, out := newTestLogger("warn,app.db=debug")

	log.Info("dropped")
	log.Warn("kept")
	log.WithField(FieldKey, "app.db").Debug("kept too")
	log.WithField(FieldKey, "app.net").Debug("dropped too")

	got := lines(out)
	if assert.Len(t, got, 2) {
		assert.Contains(t, got[0], "kept")
		assert.Contains(t, got[1], "kept too")
	}
}

func TestOffSilencesModule(t *testing.T) {
	log, out := newTestLogger("info,app.db=off")

	log.WithField(FieldKey, "app.db").Error("dropped")
	log.Error("kept")

	assert.Len(t, lines(out), 1)
}

func TestMessageFilter(t *testing.T) {
	log, out := newTestLogger("debug/slow")

	log.Info("fast query")
	log.Info("slow query")

	got := lines(out)
	if assert.Len(t, got, 1) {
		assert.Contains(t, got[0], "slow query")
	}
}

func TestDefaultPosture(t *testing.T) {
	log, out := newTestLogger("")

	log.Warn("dropped")
	log.Error("kept")

	assert.Len(t, lines(out), 1)
}
