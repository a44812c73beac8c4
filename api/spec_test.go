package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	doc, err := Load()
	require.NoError(t, err)
	require.NotNil(t, doc.Paths)

	for _, path := range []string{
		"/api/automata/types",
		"/api/automata/process",
		"/api/automata/{automataType}/graph",
	} {
		assert.NotNil(t, doc.Paths.Value(path), "missing path %s", path)
	}

	process := doc.Paths.Value("/api/automata/process")
	require.NotNil(t, process.Post)
	assert.Equal(t, "processInput", process.Post.OperationID)
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "0.1.0", Version())
}
