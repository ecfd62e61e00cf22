package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nickymouseeeeeee/bankstatement/cmd/extract"
)

func TestExtractCommand_Metadata(t *testing.T) {
	assert.Equal(t, "extract", extract.Cmd.Use)
	assert.Contains(t, extract.Cmd.Short, "Extract transactions and headers")
	assert.Contains(t, extract.Cmd.Long, "CSV")
	assert.NotNil(t, extract.Cmd.Run)
}

func TestExtractCommand_Structure(t *testing.T) {
	assert.NotEmpty(t, extract.Cmd.Use)
	assert.NotEmpty(t, extract.Cmd.Short)
	assert.NotEmpty(t, extract.Cmd.Long)
	assert.NotNil(t, extract.Cmd.Run)
}
