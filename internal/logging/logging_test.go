package logging

import (
	"bytes"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, charmlog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, charmlog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, charmlog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, charmlog.InfoLevel, ParseLevel("nonsense"))
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "warn", Output: &buf})

	l.Info("hidden")
	assert.Empty(t, buf.String())

	WithComponent(l, "host").Warn("unknown tag", "tag", "queryparam")
	out := buf.String()
	assert.Contains(t, out, "unknown tag")
	assert.Contains(t, out, "component=host")
	assert.Contains(t, out, "tag=queryparam")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	New(Config{Level: "debug", Output: &buf, JSON: true}).Debug("finalized", "doclet", "getUser")
	assert.Contains(t, buf.String(), `"msg":"finalized"`)
	assert.Contains(t, buf.String(), `"doclet":"getUser"`)
}

func TestOrDiscard(t *testing.T) {
	assert.NotNil(t, OrDiscard(nil))
	l := New(DefaultConfig())
	assert.Same(t, l, OrDiscard(l))
}
