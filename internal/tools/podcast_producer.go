package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/creativeops/studio-mcp/pkg/types"
)

var episodeFormats = map[string][]string{
	"interview":    {"Cold open with guest highlight", "Host intro and guest bio", "Three-act interview arc", "Rapid-fire questions", "Guest plugs and outro"},
	"solo":         {"Hook within the first 30 seconds", "Personal story tie-in", "Three core teaching points", "Actionable takeaway", "Call to action"},
	"panel":        {"Topic framing by the host", "Round-robin first impressions", "Moderated debate segment", "Audience questions", "One-line closing takes"},
	"storytelling": {"Scene-setting cold open", "Character and stakes introduction", "Rising tension with act breaks", "Climax and resolution", "Reflection and teaser"},
	"educational":  {"Learning objectives up front", "Concept explained with an analogy", "Worked example", "Common mistakes", "Recap and homework"},
}

func newPodcastProducerTool() Tool {
	descriptor := types.ToolDescriptor{
		Name: "ai_podcast_producer",
		Description: RichDescription{
			Description: "Generate podcast topics, scripts, and episode ideas",
			UseWhen:     "When you want to create podcast content, plan episodes, or develop podcast strategies",
		}.JSON(),
		Params: []types.ParamSpec{
			{
				Name:        "podcast_topic",
				Type:        types.ParamString,
				Description: "Main topic or theme for your podcast",
				Required:    true,
			},
			{
				Name:        "episode_type",
				Type:        types.ParamString,
				Description: "Episode format",
				Default:     "solo",
				Enum:        []string{"interview", "solo", "panel", "storytelling", "educational"},
			},
			{
				Name:        "target_audience",
				Type:        types.ParamString,
				Description: "Audience experience level",
				Default:     "general",
				Enum:        []string{"beginners", "intermediate", "advanced", "general"},
			},
		},
	}

	return newTool(descriptor, renderPodcastPlan)
}

func renderPodcastPlan(ctx context.Context, args map[string]any) (string, error) {
	topic := argString(args, "podcast_topic", "")
	episodeType := argString(args, "episode_type", "solo")
	audience := argString(args, "target_audience", "general")

	segments, ok := episodeFormats[episodeType]
	if !ok {
		return "", fmt.Errorf("unsupported episode type: %s", episodeType)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Podcast Production Plan: %s\n\n", topic)
	fmt.Fprintf(&b, "**Format:** %s episode for a %s audience\n", titleize(episodeType), audience)
	fmt.Fprintf(&b, "**Planned:** %s\n\n", stamp())

	b.WriteString("## Episode Structure\n")
	for i, segment := range segments {
		fmt.Fprintf(&b, "%d. %s\n", i+1, segment)
	}
	b.WriteString("\n## Episode Ideas\n")
	fmt.Fprintf(&b, "- \"%s 101\": the foundations episode\n", topic)
	fmt.Fprintf(&b, "- \"The biggest myths about %s\"\n", topic)
	fmt.Fprintf(&b, "- \"Where %s is heading next year\"\n", topic)
	fmt.Fprintf(&b, "- Listener Q&A special on %s\n\n", topic)

	b.WriteString("## Production Notes\n")
	b.WriteString("- Target length: 25-40 minutes for best completion rates\n")
	b.WriteString("- Record a 60-second trailer cut for social promotion\n")
	fmt.Fprintf(&b, "- Pitch depth at the %s level; define jargon on first use\n", audience)
	b.WriteString("- Publish on a fixed weekly schedule\n")

	return b.String(), nil
}
