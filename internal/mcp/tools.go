package mcp

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hatchling-dev/jobscout/internal/domain"
	"github.com/hatchling-dev/jobscout/internal/domain/job"
	"github.com/hatchling-dev/jobscout/internal/domain/match"
	"github.com/hatchling-dev/jobscout/pkg/logging"
)

// JobSearchParams defines the arguments for the job_search tool
type JobSearchParams struct {
	Query   string `json:"query" jsonschema:"Keyword query sent to every enabled source"`
	Filters struct {
		Country    string `json:"country,omitempty" jsonschema:"Exact country match"`
		Location   string `json:"location,omitempty" jsonschema:"Location contains"`
		Company    string `json:"company,omitempty" jsonschema:"Company contains"`
		RemoteOnly bool   `json:"remote_only,omitempty" jsonschema:"Keep only confirmed-remote postings"`
	} `json:"filters,omitempty"`
	Page        int      `json:"page,omitempty" jsonschema:"1-based result page"`
	Limit       int      `json:"limit,omitempty" jsonschema:"Max records to return (1-100)"`
	Sources     []string `json:"sources,omitempty" jsonschema:"Source families to query, or all"`
	ProfileText string   `json:"profile_text,omitempty" jsonschema:"Candidate profile text; when present results are scored and ranked"`
}

// JobMatchParams defines the arguments for the job_match tool
type JobMatchParams struct {
	ProfileText string       `json:"profile_text" jsonschema:"Candidate profile text (target role and/or CV plain text)"`
	Jobs        []domain.Job `json:"jobs" jsonschema:"Job records to score, e.g. a previous job_search result"`
}

// JobMatchResult wraps the ranked list returned by job_match
type JobMatchResult struct {
	Jobs  []domain.MatchedJob `json:"jobs"`
	Count int                 `json:"count"`
}

// SheetsExportParams defines the arguments for the sheets_export tool
type SheetsExportParams struct {
	Jobs  []domain.MatchedJob `json:"jobs" jsonschema:"Ranked jobs to write, e.g. a job_search result"`
	Sheet struct {
		SpreadsheetID string `json:"spreadsheet_id" jsonschema:"Google Sheets document ID"`
		Tab           string `json:"tab,omitempty" jsonschema:"Tab name to write into"`
	} `json:"sheet"`
	ClearTab bool `json:"clear_tab,omitempty" jsonschema:"If true, clears the tab before writing"`
}

// SheetsExportResult summarizes an export
type SheetsExportResult struct {
	SpreadsheetID string    `json:"spreadsheet_id"`
	Tab           string    `json:"tab,omitempty"`
	WrittenRows   int       `json:"written_rows"`
	CompletedAt   time.Time `json:"completed_at"`
}

type toolHandlers struct {
	res    *Resources
	logger *logging.Logger
}

// registerTools wires the pipeline tools into the MCP server
func registerTools(s *sdkmcp.Server, res *Resources, logger *logging.Logger) {
	h := &toolHandlers{res: res, logger: logger.Named("tools")}

	sdkmcp.AddTool(s, &sdkmcp.Tool{
		Name:        "job_search",
		Description: "Search the enabled job sources concurrently, deduplicate across them, and optionally rank against a candidate profile",
	}, h.jobSearch)

	sdkmcp.AddTool(s, &sdkmcp.Tool{
		Name:        "job_match",
		Description: "Score and rank a provided job list against a candidate profile without fetching anything",
	}, h.jobMatch)

	sdkmcp.AddTool(s, &sdkmcp.Tool{
		Name:        "sheets_export",
		Description: "Write ranked job results to a Google Sheets tab",
	}, h.sheetsExport)
}

func (h *toolHandlers) jobSearch(ctx context.Context, req *sdkmcp.CallToolRequest, params *JobSearchParams) (*sdkmcp.CallToolResult, any, error) {
	_ = req

	if params == nil {
		return nil, nil, fmt.Errorf("job_search: params are required")
	}

	searchReq := domain.SearchRequest{
		Query:       params.Query,
		Page:        params.Page,
		Limit:       params.Limit,
		Sources:     params.Sources,
		ProfileText: params.ProfileText,
	}
	searchReq.Filters = domain.SearchFilters{
		Country:    params.Filters.Country,
		Location:   params.Filters.Location,
		Company:    params.Filters.Company,
		RemoteOnly: params.Filters.RemoteOnly,
	}

	resp, err := h.res.JobService.Search(ctx, searchReq)
	if err != nil {
		if errors.Is(err, job.ErrAllSourcesFailed) {
			h.logger.Warn("job_search: all sources failed", "query", params.Query)
		}
		return nil, nil, err
	}

	h.logger.Info("job_search completed",
		"query", params.Query,
		"count", resp.Count,
		"source_errors", len(resp.Errors),
		"cached", resp.Cached,
	)

	msg := fmt.Sprintf("[job_search] %d job(s) for %q (%d source error(s), cached=%t)",
		resp.Count, params.Query, len(resp.Errors), resp.Cached)
	return textResult(msg), resp, nil
}

func (h *toolHandlers) jobMatch(ctx context.Context, req *sdkmcp.CallToolRequest, params *JobMatchParams) (*sdkmcp.CallToolResult, any, error) {
	_ = req

	if params == nil {
		return nil, nil, fmt.Errorf("job_match: params are required")
	}

	matched, err := h.res.JobService.Match(ctx, params.ProfileText, params.Jobs)
	if err != nil {
		if errors.Is(err, match.ErrEmptyProfile) {
			return nil, nil, fmt.Errorf("job_match: %w", err)
		}
		return nil, nil, err
	}

	result := JobMatchResult{Jobs: matched, Count: len(matched)}

	msg := fmt.Sprintf("[job_match] ranked %d job(s)", result.Count)
	return textResult(msg), result, nil
}

func (h *toolHandlers) sheetsExport(ctx context.Context, req *sdkmcp.CallToolRequest, params *SheetsExportParams) (*sdkmcp.CallToolResult, any, error) {
	_ = req

	if params == nil || params.Sheet.SpreadsheetID == "" {
		return nil, nil, fmt.Errorf("sheets_export: spreadsheet_id is required")
	}
	if h.res.SheetsClient == nil {
		return nil, nil, fmt.Errorf("sheets_export: sheets credentials are not configured")
	}

	tab := params.Sheet.Tab
	if tab == "" {
		tab = "Sheet1"
	}
	writeRange := tab + "!A1"

	if params.ClearTab {
		if err := h.res.SheetsClient.ClearValues(ctx, params.Sheet.SpreadsheetID, tab); err != nil {
			return nil, nil, fmt.Errorf("sheets_export: clear tab: %w", err)
		}
	}

	rows := make([][]any, 0, len(params.Jobs)+1)
	rows = append(rows, []any{"Title", "Company", "Location", "Source", "Score", "Apply URL"})
	for _, j := range params.Jobs {
		rows = append(rows, []any{
			j.Title, j.Company, j.Location, j.Source,
			strconv.FormatFloat(j.MatchScore, 'f', 2, 64), j.ApplyURL,
		})
	}

	if err := h.res.SheetsClient.AppendValues(ctx, params.Sheet.SpreadsheetID, writeRange, rows); err != nil {
		return nil, nil, fmt.Errorf("sheets_export: append rows: %w", err)
	}

	result := SheetsExportResult{
		SpreadsheetID: params.Sheet.SpreadsheetID,
		Tab:           tab,
		WrittenRows:   len(params.Jobs),
		CompletedAt:   time.Now().UTC(),
	}

	msg := fmt.Sprintf("[sheets_export] wrote %d row(s) to %q", result.WrittenRows, tab)
	return textResult(msg), result, nil
}

// textResult produces a text-only ToolResult
func textResult(msg string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: msg},
		},
	}
}
