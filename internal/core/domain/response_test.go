package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gdmcp/internal/core/domain"
)

func TestErrorResponse(t *testing.T) {
	r := domain.ErrorResponse("Invalid path", "first fix", "second fix")

	assert.True(t, r.IsError)
	require.Len(t, r.Content, 2)
	assert.Equal(t, "Invalid path", r.Text())
	assert.Equal(t, "Possible solutions:\n- first fix\n- second fix", r.Content[1].Text)
}

func TestErrorResponse_NoSolutions(t *testing.T) {
	r := domain.ErrorResponse("boom")

	assert.True(t, r.IsError)
	assert.Len(t, r.Content, 1)
}

func TestResponse_JSONShape(t *testing.T) {
	out, err := json.Marshal(domain.TextResponse("ok"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"content":[{"type":"text","text":"ok"}]}`, string(out))

	out, err = json.Marshal(domain.ErrorResponse("bad"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"content":[{"type":"text","text":"bad"}],"isError":true}`, string(out))
}

func TestTool_InputSchema(t *testing.T) {
	tool, ok := domain.LookupTool(domain.ToolExportMeshLibrary)
	require.True(t, ok)

	schema := tool.InputSchema()
	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, []string{domain.ParamProjectPath, domain.ParamScenePath, domain.ParamOutputPath}, schema["required"])

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	mesh, ok := props[domain.ParamMeshItemNames].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "array", mesh["type"])
	assert.Equal(t, map[string]any{"type": "string"}, mesh["items"])
}

func TestTools_CatalogIsComplete(t *testing.T) {
	names := make(map[string]bool, len(domain.Tools))
	for _, tool := range domain.Tools {
		assert.False(t, names[tool.Name], "duplicate tool %s", tool.Name)
		names[tool.Name] = true
	}
	assert.Len(t, names, 14)

	_, ok := domain.LookupTool("nope")
	assert.False(t, ok)
}
