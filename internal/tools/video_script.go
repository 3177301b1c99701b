package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/creativeops/studio-mcp/pkg/types"
)

var videoBeats = map[string][]string{
	"youtube":       {"Hook stating the payoff (0:00-0:15)", "Context and stakes (0:15-1:00)", "Main content in chapters", "Mid-roll retention spike", "End screen with next video"},
	"tiktok":        {"Pattern interrupt in the first second", "Single idea, fast cuts", "Text overlay for silent viewers", "Loop-friendly ending"},
	"instagram":     {"Visual hook in frame one", "Caption-first storytelling", "15-30 second arc", "Save/share prompt"},
	"commercial":    {"Problem in the customer's words", "Product as the turning point", "Social proof beat", "Single clear call to action"},
	"educational":   {"Learning outcome stated up front", "Concept, example, counter-example", "Recap checklist", "Practice prompt"},
	"entertainment": {"Cold open at the peak moment", "Rewind and build-up", "Escalating beats", "Payoff and tag"},
}

var videoLengths = map[string]string{
	"short":  "under 60 seconds",
	"medium": "3-8 minutes",
	"long":   "10-20 minutes",
}

func newVideoScriptTool() Tool {
	descriptor := types.ToolDescriptor{
		Name: "ai_video_script_generator",
		Description: RichDescription{
			Description: "Create viral video scripts and storyboards",
			UseWhen:     "When you need to create engaging video content, scripts, or storyboards for social media or marketing",
		}.JSON(),
		Params: []types.ParamSpec{
			{
				Name:        "video_type",
				Type:        types.ParamString,
				Description: "Platform or genre of the video",
				Required:    true,
				Enum:        []string{"youtube", "tiktok", "instagram", "commercial", "educational", "entertainment"},
			},
			{
				Name:        "target_audience",
				Type:        types.ParamString,
				Description: "Primary audience",
				Default:     "general",
				Enum:        []string{"gen_z", "millennials", "professionals", "students", "general"},
			},
			{
				Name:        "video_length",
				Type:        types.ParamString,
				Description: "Target runtime",
				Default:     "medium",
				Enum:        []string{"short", "medium", "long"},
			},
		},
	}

	return newTool(descriptor, renderVideoScript)
}

func renderVideoScript(ctx context.Context, args map[string]any) (string, error) {
	videoType := argString(args, "video_type", "youtube")
	audience := argString(args, "target_audience", "general")
	length := argString(args, "video_length", "medium")

	beats, ok := videoBeats[videoType]
	if !ok {
		return "", fmt.Errorf("unsupported video type: %s", videoType)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Video Script Blueprint: %s\n\n", titleize(videoType))
	fmt.Fprintf(&b, "**Audience:** %s | **Runtime:** %s | **Drafted:** %s\n\n",
		titleize(audience), videoLengths[length], stamp())

	b.WriteString("## Story Beats\n")
	for i, beat := range beats {
		fmt.Fprintf(&b, "%d. %s\n", i+1, beat)
	}

	b.WriteString("\n## Storyboard Notes\n")
	b.WriteString("- One visual change every 3-5 seconds to hold attention\n")
	b.WriteString("- Shoot B-roll for every spoken claim\n")
	fmt.Fprintf(&b, "- Match pacing and references to a %s audience\n", titleize(audience))
	b.WriteString("- Caption everything; most feeds autoplay muted\n\n")

	b.WriteString("## Retention Tactics\n")
	b.WriteString("- Tease the payoff early, deliver it late\n")
	b.WriteString("- Use open loops between sections\n")
	b.WriteString("- Cut every sentence that does not earn its seconds\n")

	return b.String(), nil
}
