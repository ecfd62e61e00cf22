package root_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nickymouseeeeeee/bankstatement/cmd/root"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "bankstatement", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "bank statement PDFs")
	assert.Contains(t, root.Cmd.Long, "CSV")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
}

func TestRootCommand_Flags(t *testing.T) {
	root.Init()

	assert.NotNil(t, root.Cmd.PersistentFlags().Lookup("input"))
	assert.NotNil(t, root.Cmd.PersistentFlags().Lookup("output-dir"))
	assert.NotNil(t, root.Cmd.PersistentFlags().Lookup("password"))
}
