package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/creativeops/studio-mcp/pkg/types"
)

var platformPlaybooks = map[string][]string{
	"twitch":    {"Stream 3-4 fixed slots per week", "Raid a similar-sized channel at sign-off", "Use channel point rewards for interaction"},
	"youtube":   {"Publish stream highlights as standalone videos", "Schedule premieres to seed live chat", "Optimize titles for search intent"},
	"facebook":  {"Lean on groups for community announcements", "Go live at consistent local-time slots", "Cross-post clips to Reels"},
	"tiktok":    {"Clip stream moments into vertical cuts daily", "Go live after a viral clip lands", "Reply to comments with video"},
	"instagram": {"Announce streams in Stories with countdowns", "Post clip carousels after each session", "Collaborate on Lives with peers"},
}

var experienceFocus = map[string]string{
	"beginner":     "nail a consistent schedule and stable audio before anything else",
	"intermediate": "invest in overlays, alerts, and a clip pipeline to grow discovery",
	"advanced":     "diversify revenue (sponsors, memberships) and delegate moderation",
}

func newStreamerAssistantTool() Tool {
	descriptor := types.ToolDescriptor{
		Name: "ai_streamer_creator_assistant",
		Description: RichDescription{
			Description: "Live streaming tools and audience engagement",
			UseWhen:     "When you want to improve your live streaming, engage with audiences, or grow your streaming channel",
		}.JSON(),
		Params: []types.ParamSpec{
			{
				Name:        "streaming_platform",
				Type:        types.ParamString,
				Description: "Primary streaming platform",
				Required:    true,
				Enum:        []string{"twitch", "youtube", "facebook", "tiktok", "instagram"},
			},
			{
				Name:        "content_type",
				Type:        types.ParamString,
				Description: "Stream content category",
				Default:     "gaming",
				Enum:        []string{"gaming", "just_chatting", "creative", "irl", "educational"},
			},
			{
				Name:        "experience_level",
				Type:        types.ParamString,
				Description: "Streamer experience level",
				Default:     "beginner",
				Enum:        []string{"beginner", "intermediate", "advanced"},
			},
		},
	}

	return newTool(descriptor, renderStreamerPlaybook)
}

func renderStreamerPlaybook(ctx context.Context, args map[string]any) (string, error) {
	platform := argString(args, "streaming_platform", "twitch")
	content := argString(args, "content_type", "gaming")
	level := argString(args, "experience_level", "beginner")

	playbook, ok := platformPlaybooks[platform]
	if !ok {
		return "", fmt.Errorf("unsupported streaming platform: %s", platform)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Streaming Playbook: %s on %s\n\n", titleize(content), titleize(platform))
	fmt.Fprintf(&b, "**Experience:** %s | **Prepared:** %s\n\n", titleize(level), stamp())

	b.WriteString("## Platform Tactics\n")
	for _, tactic := range playbook {
		fmt.Fprintf(&b, "- %s\n", tactic)
	}

	b.WriteString("\n## Current Priority\n")
	fmt.Fprintf(&b, "At the %s stage, %s.\n\n", level, experienceFocus[level])

	b.WriteString("## Engagement Loop\n")
	b.WriteString("1. Greet every first-time chatter by name\n")
	b.WriteString("2. Ask chat a question every 10 minutes of dead air\n")
	b.WriteString("3. Celebrate milestones on stream, then clip them\n")
	b.WriteString("4. End with a clear next-stream hook\n")

	return b.String(), nil
}
