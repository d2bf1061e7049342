package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logcheck/logcheck/internal/adapters/outbound/config"
	"github.com/logcheck/logcheck/internal/adapters/outbound/csvreader"
	"github.com/logcheck/logcheck/internal/adapters/outbound/scanner"
	"github.com/logcheck/logcheck/internal/application"
	"github.com/logcheck/logcheck/internal/domain"
)

func testService() *application.ValidateService {
	return application.NewValidateService(
		scanner.New(),
		config.New(),
		func(cfg domain.Config) domain.RowReader { return csvreader.New(cfg.DropEmptyFields) },
		zerolog.Nop(),
	)
}

func callTool(t *testing.T, h func(context.Context, mcplib.CallToolRequest) (*mcplib.CallToolResult, error), args map[string]any) *mcplib.CallToolResult {
	t.Helper()
	req := mcplib.CallToolRequest{}
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func resultText(t *testing.T, res *mcplib.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(mcplib.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestHandleValidate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "SmithJohnLog.csv"), []byte("Smith,John\nCS 4501\n"), 0644))

	res := callTool(t, handleValidate(dir, testService()), nil)
	assert.False(t, res.IsError)

	var got validateResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	assert.Equal(t, 1, got.Errors)
	assert.Contains(t, got.Text, "Now Validating Log File 'SmithJohnLog.csv'")
	assert.Contains(t, got.Text, "Line 2 Error:")
}

func TestHandleValidate_NoLogs(t *testing.T) {
	res := callTool(t, handleValidate(t.TempDir(), testService()), nil)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "no CSV files")
}

func TestHandleValidateRow(t *testing.T) {
	h := handleValidateRow(t.TempDir(), testService())

	res := callTool(t, h, map[string]any{"row": "01/15/2024,09:00,10:30,3,7,wrote tests"})
	var got rowResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	assert.True(t, got.Valid)
	assert.Empty(t, got.Lines)

	res = callTool(t, h, map[string]any{"row": "01/15/2024,09:00,10:30,3,Q", "line": float64(7)})
	got = rowResult{}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	assert.False(t, got.Valid)
	assert.Equal(t, []string{"Line 7 Error: Activity Code Is Not Valid"}, got.Lines)
}

func TestHandleValidateRow_MissingRow(t *testing.T) {
	res := callTool(t, handleValidateRow(t.TempDir(), testService()), map[string]any{})
	assert.True(t, res.IsError)
}

func TestHandleActivityCodes(t *testing.T) {
	res := callTool(t, handleActivityCodes(), nil)

	var codes []activityCode
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &codes))
	assert.Len(t, codes, len(domain.Kinds()))
}
