package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/creativeops/studio-mcp/pkg/types"
)

var meetingAgendas = map[string][]string{
	"one_on_one":    {"Wins since last time", "Current blockers", "Growth and feedback", "Action items"},
	"team":          {"Metrics review", "Project status round", "Risks and dependencies", "Decisions needed", "Action items with owners"},
	"client":        {"Relationship check-in", "Deliverable walkthrough", "Feedback capture", "Next milestones"},
	"interview":     {"Warm-up and role overview", "Experience deep-dive", "Scenario questions", "Candidate questions", "Next-step timeline"},
	"presentation":  {"Context and objective", "Core content in three parts", "Demo or evidence", "Q&A", "Summary and ask"},
	"brainstorming": {"Problem framing", "Silent idea generation", "Round-robin sharing", "Clustering and voting", "Owner assignment"},
}

var meetingLengths = map[string]string{
	"short":  "25 minutes",
	"medium": "50 minutes",
	"long":   "80 minutes with a mid-point break",
}

func newMeetingAssistantTool() Tool {
	descriptor := types.ToolDescriptor{
		Name: "ai_meeting_calendar_assistant",
		Description: RichDescription{
			Description: "Schedule, transcribe, and optimize meetings",
			UseWhen:     "When you need to manage meetings, schedule appointments, or optimize calendar productivity",
		}.JSON(),
		Params: []types.ParamSpec{
			{
				Name:        "meeting_type",
				Type:        types.ParamString,
				Description: "Kind of meeting to plan",
				Required:    true,
				Enum:        []string{"one_on_one", "team", "client", "interview", "presentation", "brainstorming"},
			},
			{
				Name:        "duration",
				Type:        types.ParamString,
				Description: "Meeting length",
				Default:     "medium",
				Enum:        []string{"short", "medium", "long"},
			},
			{
				Name:        "participants",
				Type:        types.ParamString,
				Description: "Group size",
				Default:     "small",
				Enum:        []string{"small", "medium", "large"},
			},
		},
	}

	return newTool(descriptor, renderMeetingPlan)
}

func renderMeetingPlan(ctx context.Context, args map[string]any) (string, error) {
	meetingType := argString(args, "meeting_type", "team")
	duration := argString(args, "duration", "medium")
	participants := argString(args, "participants", "small")

	agenda, ok := meetingAgendas[meetingType]
	if !ok {
		return "", fmt.Errorf("unsupported meeting type: %s", meetingType)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Meeting Plan: %s\n\n", titleize(meetingType))
	fmt.Fprintf(&b, "**Length:** %s | **Group:** %s | **Prepared:** %s\n\n",
		meetingLengths[duration], titleize(participants), stamp())

	b.WriteString("## Agenda\n")
	for i, item := range agenda {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item)
	}

	b.WriteString("\n## Scheduling Guidance\n")
	b.WriteString("- Book mid-morning slots; avoid the first and last hour of the day\n")
	b.WriteString("- End 5 minutes early to leave transition time\n")
	if participants == "large" {
		b.WriteString("- Assign a facilitator and a note-taker in advance\n")
	} else {
		b.WriteString("- Share the agenda at least a day ahead\n")
	}

	b.WriteString("\n## Follow-up\n")
	b.WriteString("- Circulate transcript highlights within 24 hours\n")
	b.WriteString("- Every action item gets an owner and a due date\n")
	b.WriteString("- Cancel the next occurrence if there is no agenda\n")

	return b.String(), nil
}
