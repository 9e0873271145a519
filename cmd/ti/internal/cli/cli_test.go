//go:build unit

package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vizioz/task-issues/pkg/fs"
)

func TestGetConfigPath(t *testing.T) {
	original := ConfigPath
	defer func() { ConfigPath = original }()

	ConfigPath = ""
	assert.Equal(t, "~/.ti/config.yaml", GetConfigPath())

	ConfigPath = "/etc/ti.toml"
	assert.Equal(t, "/etc/ti.toml", GetConfigPath())
	assert.Equal(t, "/etc/ti.toml", NewConfigManager(fs.NewFS()).GetConfigPath())
}

func TestNotice(t *testing.T) {
	original := Quiet
	defer func() { Quiet = original }()

	var buf bytes.Buffer
	Quiet = false
	Notice(&buf, "No issue reference (#number) was found in the selected task.")
	assert.Equal(t, "Task Issues: No issue reference (#number) was found in the selected task.\n", buf.String())

	buf.Reset()
	Warn(&buf, "Could not open %s", "https://example.com/1")
	assert.Contains(t, buf.String(), "Task Issues: Could not open https://example.com/1")

	buf.Reset()
	Quiet = true
	Notice(&buf, "hidden")
	Warn(&buf, "hidden")
	assert.Empty(t, buf.String())
}
