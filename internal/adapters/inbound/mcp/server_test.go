package mcp_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpadapter "github.com/logcheck/logcheck/internal/adapters/inbound/mcp"
	"github.com/logcheck/logcheck/internal/adapters/outbound/config"
	"github.com/logcheck/logcheck/internal/adapters/outbound/csvreader"
	"github.com/logcheck/logcheck/internal/adapters/outbound/scanner"
	"github.com/logcheck/logcheck/internal/application"
	"github.com/logcheck/logcheck/internal/domain"
)

func newService() *application.ValidateService {
	return application.NewValidateService(
		scanner.New(),
		config.New(),
		func(cfg domain.Config) domain.RowReader { return csvreader.New(cfg.DropEmptyFields) },
		zerolog.Nop(),
	)
}

func TestNewLogcheckMCPServer(t *testing.T) {
	s := mcpadapter.NewLogcheckMCPServer(".", newService())
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewLogcheckMCPServer(".", newService())
	require.NotNil(t, s)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"logcheck_validate",
		"logcheck_validate_row",
		"logcheck_activity_codes",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}
