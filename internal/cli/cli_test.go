package cli

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	if c.Logger == nil {
		t.Fatal("New() returned CLI with nil logger")
	}

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Error("debug message logged at info level")
	}

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	if buf.Len() == 0 {
		t.Error("debug message dropped at debug level")
	}
}

func TestRootCommand(t *testing.T) {
	c := New(&bytes.Buffer{}, log.InfoLevel)
	root := c.RootCommand()

	if root.Use != appName {
		t.Errorf("root.Use = %q, want %q", root.Use, appName)
	}
	if !root.SilenceUsage {
		t.Error("root command should silence usage on errors")
	}

	want := map[string]bool{"demo": false, "completion": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
