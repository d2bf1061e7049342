package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/logcheck/logcheck/internal/application"
	"github.com/logcheck/logcheck/internal/domain"
)

// registerTools registers all logcheck MCP tools on the given server.
func registerTools(s *server.MCPServer, dir string, svc *application.ValidateService) {
	s.AddTool(
		mcplib.NewTool("logcheck_validate",
			mcplib.WithDescription("Validate every activity log in the folder and return the report text and per-file findings"),
		),
		handleValidate(dir, svc),
	)

	s.AddTool(
		mcplib.NewTool("logcheck_validate_row",
			mcplib.WithDescription("Validate a single activity row such as '01/15/2024,09:00,10:30,3,7,wrote parser'"),
			mcplib.WithString("row",
				mcplib.Required(),
				mcplib.Description("Comma-separated log row: Date,StartTime,EndTime,GroupSize,ActivityCode[,Note]"),
			),
			mcplib.WithNumber("line", mcplib.Description("1-based line number used in findings (default 3)")),
		),
		handleValidateRow(dir, svc),
	)

	s.AddTool(
		mcplib.NewTool("logcheck_activity_codes",
			mcplib.WithDescription("List the activity codes accepted in log rows"),
		),
		handleActivityCodes(),
	)
}

type validateResult struct {
	Text     string         `json:"text"`
	Errors   int            `json:"errors"`
	Warnings int            `json:"warnings"`
	Report   *domain.Report `json:"report"`
}

func handleValidate(dir string, svc *application.ValidateService) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := svc.LoadConfig(dir)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		report, err := svc.Run(ctx, dir, cfg)
		if err != nil {
			return errorResult(fmt.Sprintf("validation failed: %v", err)), nil
		}

		errs, warns := report.Totals()
		return jsonResult(validateResult{
			Text:     report.Text(),
			Errors:   errs,
			Warnings: warns,
			Report:   report,
		})
	}
}

type rowResult struct {
	Valid    bool             `json:"valid"`
	Findings []domain.Finding `json:"findings"`
	Lines    []string         `json:"lines"`
}

func handleValidateRow(dir string, svc *application.ValidateService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		row, err := request.RequireString("row")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		line := 3
		if v, ok := request.GetArguments()["line"].(float64); ok && v >= 1 {
			line = int(v)
		}

		cfg, err := svc.LoadConfig(dir)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		findings := svc.CheckRow(row, line-1, cfg)
		result := rowResult{Valid: true, Findings: findings, Lines: []string{}}
		for _, f := range findings {
			if f.IsError() {
				result.Valid = false
			}
			result.Lines = append(result.Lines, f.String())
		}
		return jsonResult(result)
	}
}

type activityCode struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func handleActivityCodes() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		var codes []activityCode
		for _, k := range domain.Kinds() {
			code, _ := k.Code()
			codes = append(codes, activityCode{Code: string(code), Name: k.String()})
		}
		return jsonResult(codes)
	}
}

// jsonResult marshals v as indented JSON into a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
