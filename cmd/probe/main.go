// Command probe drives a running jobscout server end to end over MCP:
// a job_search round, then job_match against a canned profile.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	endpoint := flag.String("endpoint", "http://localhost:8080/mcp/stream", "MCP stream endpoint")
	query := flag.String("query", "software engineer", "search query")
	profile := flag.String("profile", "", "optional profile text for ranking")
	flag.Parse()

	ctx := context.Background()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "jobscout-probe",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: *endpoint,
	}, nil)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("connected (session ID: %s)", session.ID())

	runJobSearch(ctx, session, *query, *profile)
	runJobMatch(ctx, session)

	fmt.Println("\nprobe completed")
}

func runJobSearch(ctx context.Context, session *mcp.ClientSession, query, profile string) {
	fmt.Println("\nCALL: job_search")

	args := map[string]any{
		"query": query,
		"limit": 10,
	}
	if profile != "" {
		args["profile_text"] = profile
	}

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "job_search",
		Arguments: args,
	})
	if err != nil {
		log.Printf("job_search failed: %v", err)
		return
	}

	printResult(result)
}

func runJobMatch(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nCALL: job_match")

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "job_match",
		Arguments: map[string]any{
			"profile_text": "chemical engineer with process safety experience",
			"jobs": []map[string]any{
				{
					"source":      "probe",
					"external_id": "1",
					"title":       "Chemical Engineer",
					"company":     "Acme",
					"location":    "Cape Town",
					"description": "engineer role",
					"apply_url":   "https://example.com/1",
				},
				{
					"source":      "probe",
					"external_id": "2",
					"title":       "Baker",
					"company":     "Bread Co",
					"location":    "Durban",
					"apply_url":   "https://example.com/2",
				},
			},
		},
	})
	if err != nil {
		log.Printf("job_match failed: %v", err)
		return
	}

	printResult(result)
}

func printResult(result *mcp.CallToolResult) {
	for _, content := range result.Content {
		if tc, ok := content.(*mcp.TextContent); ok {
			fmt.Println(tc.Text)
		}
	}

	if result.StructuredContent != nil {
		pretty, err := json.MarshalIndent(result.StructuredContent, "", "  ")
		if err == nil {
			fmt.Println(string(pretty))
		}
	}
}
