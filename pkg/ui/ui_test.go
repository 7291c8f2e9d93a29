package ui

import (
	"bytes"
	"errors"
	"testing"

	"apodwall/pkg/platform"

	"github.com/stretchr/testify/assert"
)

func TestConsolePlainOutput(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.PrintError("Fetch failed", errors.New("timeout"))
	c.PrintSuccess("done")
	c.PrintWarning("careful")
	c.PrintInfo("Page", "https://apod.nasa.gov")

	assert.Equal(t, "Fetch failed: timeout\ndone\ncareful\nPage: https://apod.nasa.gov\n", buf.String())
}

func TestConsoleColor(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	c.SetColor(true)

	c.PrintSuccess("ok")
	assert.Equal(t, "\033[32mok\033[0m\n", buf.String())
}

func TestConsoleQuiet(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	c.SetQuiet(true)

	c.PrintLogo()
	c.PrintInfo("Page", "x")
	c.PrintHighlight("[FETCHING]")
	assert.Empty(t, buf.String())

	c.PrintWarning("still shown")
	assert.Equal(t, "still shown\n", buf.String())
}

func TestPuts(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Puts("line\n")
	c.Puts("no newline")
	c.Puts("")
	assert.Equal(t, "line\nno newline\n\n", buf.String())
}

type recordingSender struct {
	titles []string
	err    error
}

func (r *recordingSender) Send(title, message string) error {
	r.titles = append(r.titles, title)
	return r.err
}

func TestNotifier(t *testing.T) {
	rec := &recordingSender{}
	n := NewNotifierWithSender(rec)
	assert.True(t, n.Enabled())
	assert.NoError(t, n.Send("APOD", "set"))
	assert.Equal(t, []string{"APOD"}, rec.titles)

	rec.err = errors.New("no daemon")
	assert.Error(t, n.Send("APOD", "set"))
}

func TestNewNotifierPlatforms(t *testing.T) {
	assert.True(t, NewNotifier(platform.Linux).Enabled())
	assert.True(t, NewNotifier(platform.MacOSX).Enabled())
	assert.True(t, NewNotifier(platform.Windows).Enabled())
	assert.False(t, NewNotifier(platform.Unknown).Enabled())
	assert.NoError(t, NewNotifier(platform.Unknown).Send("a", "b"))

	var nilNotifier *Notifier
	assert.False(t, nilNotifier.Enabled())
}
