package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/creativeops/studio-mcp/pkg/types"
)

var automationPlays = map[string][]string{
	"email":            {"Label and triage inbound mail with rules", "Draft replies from templates", "Batch-send follow-ups on a schedule"},
	"data_entry":       {"Validate inputs against a schema before insert", "Bulk-import from spreadsheets", "Flag anomalies for human review"},
	"file_management":  {"Auto-sort downloads by type and date", "Deduplicate with content hashing", "Archive files untouched for 90 days"},
	"social_media":     {"Queue posts across platforms from one calendar", "Auto-resize media per platform", "Collect engagement metrics nightly"},
	"reporting":        {"Pull source data on a cron schedule", "Render dashboards from templates", "Distribute summaries to stakeholders"},
	"customer_service": {"Classify tickets by intent", "Suggest knowledge-base answers", "Escalate sentiment outliers immediately"},
}

func newTaskAutomatorTool() Tool {
	descriptor := types.ToolDescriptor{
		Name: "ai_task_automator",
		Description: RichDescription{
			Description: "Automate repetitive tasks and create workflows",
			UseWhen:     "When you want to automate daily tasks, create workflows, or streamline processes",
		}.JSON(),
		Params: []types.ParamSpec{
			{
				Name:        "task_type",
				Type:        types.ParamString,
				Description: "Category of task to automate",
				Required:    true,
				Enum:        []string{"email", "data_entry", "file_management", "social_media", "reporting", "customer_service"},
			},
			{
				Name:        "frequency",
				Type:        types.ParamString,
				Description: "How often the automation runs",
				Default:     "daily",
				Enum:        []string{"daily", "weekly", "monthly", "on_demand"},
			},
			{
				Name:        "complexity",
				Type:        types.ParamString,
				Description: "Workflow complexity",
				Default:     "moderate",
				Enum:        []string{"simple", "moderate", "complex"},
			},
		},
	}

	return newTool(descriptor, renderAutomationPlan)
}

func renderAutomationPlan(ctx context.Context, args map[string]any) (string, error) {
	taskType := argString(args, "task_type", "email")
	frequency := argString(args, "frequency", "daily")
	complexity := argString(args, "complexity", "moderate")

	plays, ok := automationPlays[taskType]
	if !ok {
		return "", fmt.Errorf("unsupported task type: %s", taskType)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Automation Plan: %s\n\n", titleize(taskType))
	fmt.Fprintf(&b, "**Cadence:** %s | **Complexity:** %s | **Drafted:** %s\n\n",
		titleize(frequency), titleize(complexity), stamp())

	b.WriteString("## Recommended Automations\n")
	for _, play := range plays {
		fmt.Fprintf(&b, "- %s\n", play)
	}

	b.WriteString("\n## Rollout Steps\n")
	b.WriteString("1. Document the current manual process end to end\n")
	b.WriteString("2. Automate the single most repetitive step first\n")
	fmt.Fprintf(&b, "3. Schedule the workflow to run %s with alerting on failure\n", strings.ReplaceAll(frequency, "_", " "))
	b.WriteString("4. Keep a manual fallback until two clean cycles pass\n\n")

	b.WriteString("## Measuring Impact\n")
	b.WriteString("- Hours saved per cycle against the manual baseline\n")
	b.WriteString("- Error rate before and after automation\n")
	b.WriteString("- Time from trigger to completion\n")

	return b.String(), nil
}
