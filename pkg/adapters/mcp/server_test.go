package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestListAutomata(t *testing.T) {
	s := NewServer(automata.New())

	res, err := s.handleListAutomata(context.Background(), callRequest(nil))
	require.NoError(t, err)
	assert.False(t, res.IsError)

	var types []domain.Descriptor
	require.NoError(t, json.Unmarshal([]byte(textOf(t, res)), &types))
	require.Len(t, types, 4)
	assert.Equal(t, domain.ParImpar, types[0].ID)
}

func TestEvaluate(t *testing.T) {
	s := NewServer(automata.New())
	ctx := context.Background()

	tests := []struct {
		name     string
		args     map[string]interface{}
		accepted bool
		final    string
		wantErr  string
	}{
		{"Binary", map[string]interface{}{"automata_type": "binario", "input": "0101"}, true, "q1", ""},
		{"Vowels", map[string]interface{}{"automata_type": "vocales", "input": "aaa"}, true, "3", ""},
		{"CustomRejects", map[string]interface{}{"automata_type": "custom", "input": "xz"}, false, "ERROR", ""},
		{"Unknown", map[string]interface{}{"automata_type": "pila", "input": "a"}, false, "", "Tipo de autómata no válido"},
		{"Missing", map[string]interface{}{"automata_type": "binario"}, false, "", "Se requiere input y tipo de autómata"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := s.handleEvaluate(ctx, callRequest(tt.args), tt.args)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.True(t, resp.Success)
			assert.Equal(t, tt.accepted, resp.Result.Accepted)
			assert.Equal(t, tt.final, resp.Result.FinalState)
		})
	}
}

func TestEvaluate_InvalidArguments(t *testing.T) {
	s := NewServer(automata.New())

	args := map[string]interface{}{"automata_type": "binario", "input": []int{1}}
	_, err := s.handleEvaluate(context.Background(), callRequest(args), args)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid arguments")
}

func TestGetDiagram(t *testing.T) {
	s := NewServer(automata.New())
	ctx := context.Background()

	t.Run("JSON", func(t *testing.T) {
		res, err := s.handleGetDiagram(ctx, callRequest(map[string]any{"automata_type": "custom"}))
		require.NoError(t, err)
		require.False(t, res.IsError)

		var d domain.Diagram
		require.NoError(t, json.Unmarshal([]byte(textOf(t, res)), &d))
		assert.Equal(t, "A", d.Initial)
		assert.ElementsMatch(t, []string{"A", "D"}, d.Accepting)
	})

	t.Run("MermaidWithOverlay", func(t *testing.T) {
		res, err := s.handleGetDiagram(ctx, callRequest(map[string]any{
			"automata_type": "custom", "format": "mermaid", "input": "xy",
		}))
		require.NoError(t, err)
		text := textOf(t, res)
		assert.Contains(t, text, "graph LR")
		assert.Contains(t, text, "class s_D current;")
	})

	t.Run("Unknown", func(t *testing.T) {
		res, err := s.handleGetDiagram(ctx, callRequest(map[string]any{"automata_type": "pila"}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Equal(t, "Tipo de autómata no válido", textOf(t, res))
	})

	t.Run("BadFormat", func(t *testing.T) {
		res, err := s.handleGetDiagram(ctx, callRequest(map[string]any{"automata_type": "custom", "format": "dot"}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
	})
}

func TestReadTypes(t *testing.T) {
	s := NewServer(automata.New())

	contents, err := s.readTypes(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, TypesURI, text.URI)
	assert.Contains(t, text.Text, `"par_impar"`)
}
