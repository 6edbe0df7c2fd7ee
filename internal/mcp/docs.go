package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `team-wellbeing answers questions about a team's recent activity: chat messages,
repository issues ("issues A") and tracker tickets ("issues B"), plus a coarse wellbeing summary.

Workflow:
1) get_wellbeing_status for the headline mood, stress level and overloaded members.
2) Drill down with get_messages / get_issues_a_for_user / get_issues_b_for_user.
3) get_issues_a_stats and get_issues_b_stats give counts without full records.
4) collect_data reloads from the configured source; clear_all_data empties the store.

All reads are served from one in-memory snapshot and never modify it.

Docs:
- wellbeing://docs/index
- wellbeing://docs/heuristics
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "wellbeing://docs/index",
		Name:        "docs_index",
		Title:       "team-wellbeing docs index",
		Description: "Tool overview and data model summary.",
		Content: `# team-wellbeing: Agent Docs Index

## Tools

| Tool | Returns |
|---|---|
| ` + "`test_connections`" + ` | ` + "`{slack, github, jira, overall}`" + ` reachability flags |
| ` + "`collect_data`" + ` | ` + "`{status, message}`" + `; reloads the store from the source |
| ` + "`get_messages(channel)`" + ` | messages in the channel, or all messages when the channel has none |
| ` + "`get_channels`" + ` | sorted channel names |
| ` + "`get_issues_a`" + ` / ` + "`get_issues_a_stats`" + ` / ` + "`get_issues_a_for_user(username)`" + ` | repository issues |
| ` + "`get_issues_b`" + ` / ` + "`get_issues_b_stats`" + ` / ` + "`get_issues_b_for_user(username)`" + ` | tracker tickets |
| ` + "`get_all_data`" + ` | ` + "`{messages, issues_a, issues_b, statistics}`" + ` |
| ` + "`clear_all_data`" + ` | ` + "`{status, message}`" + `; empties the store |
| ` + "`get_wellbeing_status`" + ` | mood, stress level, overloaded members, member feelings |

## Data model

- Repository issues have numeric ids and state ` + "`open`" + ` or ` + "`closed`" + `.
  A user is involved when they are the author or an assignee.
- Tickets have string keys such as ` + "`TEAM-101`" + ` and a free-form status.
  A user is involved when they are the reporter or the assignee.
- Stats values are strings. Story points are rendered with one decimal (` + "`16.0`" + `).

## Limitations

- ` + "`recent_activity`" + ` and ` + "`average_cycle_time`" + ` are fixed placeholders.
- There is no pagination; every list returns the full collection.
`,
	},
	{
		URI:         "wellbeing://docs/heuristics",
		Name:        "docs_heuristics",
		Title:       "Wellbeing heuristics",
		Description: "The thresholds behind get_wellbeing_status.",
		Content: `# Wellbeing heuristics

Signals:
- total messages
- open repository issues
- tickets with status exactly "In Progress"

## Mood (first match wins)

1. messages > 5 and open issues < 3: **positive**
2. open issues > 5 or in-progress tickets > 2: **stressed**
3. otherwise: **neutral**

## Stress

1. open issues > 3 or in-progress tickets > 1: **high**
2. open issues > 1: **medium**
3. otherwise: **low**

## Workload

When in-progress tickets > 1 the summary lists ` + "`alice.dev`" + ` and ` + "`charlie.tech`" + ` as
overloaded and reports ` + "`charlie.tech`" + ` as overwhelmed; otherwise nobody is overloaded.
Member feelings are a fixed placeholder view, not inferred from message text.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
