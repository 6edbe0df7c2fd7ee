package datasource

import (
	"context"
	"time"

	"github.com/abcstark/team-wellbeing/internal/domain/message"
	"github.com/abcstark/team-wellbeing/internal/domain/repoissue"
	"github.com/abcstark/team-wellbeing/internal/domain/ticket"
)

// Fixture serves the built-in sample dataset.
type Fixture struct{}

// NewFixture creates the sample-data source.
func NewFixture() *Fixture {
	return &Fixture{}
}

func (f *Fixture) Name() string { return NameFixture }

// Fetch returns a fresh copy of the sample dataset on every call.
func (f *Fixture) Fetch(ctx context.Context) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return SampleDataset(), nil
}

// CheckConnections always succeeds for the fixture.
func (f *Fixture) CheckConnections(context.Context) ConnectionStatus {
	return newConnectionStatus(true, true, true)
}

// SampleDataset builds the default team dataset.
func SampleDataset() *Dataset {
	return &Dataset{
		Messages:   sampleMessages(),
		RepoIssues: sampleRepoIssues(),
		Tickets:    sampleTickets(),
	}
}

func at(month time.Month, day, hour, minute int) time.Time {
	return time.Date(2024, month, day, hour, minute, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

func sampleMessages() []message.Message {
	return []message.Message{
		{
			ID:            "msg1",
			ChannelID:     "C1234567890",
			ChannelName:   "general",
			UserID:        "U1111111111",
			Username:      "alice.dev",
			Text:          "Good morning team! Ready for the sprint planning today 🚀",
			Timestamp:     at(time.January, 15, 9, 0),
			ReactionCount: 5,
		},
		{
			ID:            "msg2",
			ChannelID:     "C1234567890",
			ChannelName:   "general",
			UserID:        "U2222222222",
			Username:      "bob.eng",
			Text:          "The deployment went smoothly yesterday, great work everyone!",
			Timestamp:     at(time.January, 15, 10, 30),
			ReactionCount: 8,
		},
		{
			ID:            "msg3",
			ChannelID:     "C0987654321",
			ChannelName:   "development",
			UserID:        "U3333333333",
			Username:      "charlie.tech",
			Text:          "Need help with the new API design, anyone available for a quick review?",
			Timestamp:     at(time.January, 15, 14, 15),
			ReactionCount: 3,
		},
	}
}

func sampleRepoIssues() []repoissue.Issue {
	const repo = "team-wellbeing-agent"
	return []repoissue.Issue{
		{
			ID:            1001,
			Number:        101,
			Title:         "Add user authentication to API",
			Body:          ptr("We need to implement JWT-based authentication for the new API endpoints."),
			State:         repoissue.StateOpen,
			Author:        "alice.dev",
			Assignees:     []string{"bob.eng"},
			Labels:        []string{"enhancement", "security"},
			CreatedAt:     at(time.January, 10, 9, 0),
			UpdatedAt:     ptr(at(time.January, 15, 10, 0)),
			Repository:    repo,
			CommentsCount: 5,
		},
		{
			ID:            1002,
			Number:        102,
			Title:         "Fix memory leak in data collector",
			Body:          ptr("The data collection service is consuming too much memory over time."),
			State:         repoissue.StateOpen,
			Author:        "charlie.tech",
			Assignees:     []string{"alice.dev", "charlie.tech"},
			Labels:        []string{"bug", "high-priority"},
			CreatedAt:     at(time.January, 12, 14, 30),
			UpdatedAt:     ptr(at(time.January, 15, 11, 45)),
			Repository:    repo,
			CommentsCount: 8,
		},
		{
			ID:            1003,
			Number:        103,
			Title:         "Update documentation for new endpoints",
			Body:          ptr("Add documentation for the new MCP server endpoints."),
			State:         repoissue.StateClosed,
			Author:        "bob.eng",
			Assignees:     []string{"bob.eng"},
			Labels:        []string{"documentation"},
			CreatedAt:     at(time.January, 8, 16, 0),
			UpdatedAt:     ptr(at(time.January, 14, 17, 30)),
			ClosedAt:      ptr(at(time.January, 14, 17, 30)),
			Repository:    repo,
			CommentsCount: 2,
		},
	}
}

func sampleTickets() []ticket.Ticket {
	const project = "TEAM"
	return []ticket.Ticket{
		{
			ID:          "10001",
			Key:         "TEAM-101",
			Summary:     "Implement team mood analytics dashboard",
			Description: ptr("Create a dashboard to visualize team mood trends over time."),
			Status:      ticket.StatusInProgress,
			Priority:    "High",
			IssueType:   "Story",
			Reporter:    "alice.dev",
			Assignee:    ptr("bob.eng"),
			Labels:      []string{"analytics", "dashboard"},
			Components:  []string{"Frontend", "Analytics"},
			Created:     at(time.January, 8, 10, 0),
			Updated:     ptr(at(time.January, 15, 9, 30)),
			ProjectKey:  project,
			StoryPoints: ptr(8.0),
			TimeSpent:   ptr(int64(14400)),
		},
		{
			ID:          "10002",
			Key:         "TEAM-102",
			Summary:     "Set up automated slack message analysis",
			Description: ptr("Configure the system to automatically analyze slack messages for sentiment."),
			Status:      ticket.StatusToDo,
			Priority:    "Medium",
			IssueType:   "Task",
			Reporter:    "charlie.tech",
			Assignee:    ptr("alice.dev"),
			Labels:      []string{"automation", "slack"},
			Components:  []string{"Backend", "Integrations"},
			Created:     at(time.January, 12, 11, 0),
			Updated:     ptr(at(time.January, 15, 8, 45)),
			ProjectKey:  project,
			StoryPoints: ptr(5.0),
		},
		{
			ID:          "10003",
			Key:         "TEAM-103",
			Summary:     "Research burnout detection algorithms",
			Description: ptr("Investigate different approaches for detecting team member burnout."),
			Status:      ticket.StatusDone,
			Priority:    "Low",
			IssueType:   "Research",
			Reporter:    "bob.eng",
			Assignee:    ptr("charlie.tech"),
			Labels:      []string{"research", "algorithms"},
			Components:  []string{"Analytics"},
			Created:     at(time.January, 5, 14, 0),
			Updated:     ptr(at(time.January, 11, 16, 0)),
			Resolved:    ptr(at(time.January, 11, 16, 0)),
			ProjectKey:  project,
			StoryPoints: ptr(3.0),
			TimeSpent:   ptr(int64(10800)),
		},
	}
}
