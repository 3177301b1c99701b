package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/creativeops/studio-mcp/pkg/types"
)

var thumbnailCanvas = map[string]string{
	"youtube":   "1280x720, 16:9, readable at 168px wide",
	"tiktok":    "1080x1920 vertical cover frame",
	"instagram": "1080x1080 square grid tile",
	"twitter":   "1200x675 in-feed card",
	"linkedin":  "1200x627 link preview",
	"gaming":    "1280x720 with space for channel branding",
}

var styleTreatments = map[string]string{
	"bold":         "high-contrast colors, oversized type, hard drop shadows",
	"minimal":      "single subject, generous whitespace, two-color palette",
	"colorful":     "saturated complementary palette, gradient backdrops",
	"professional": "muted palette, clean sans-serif, consistent grid",
	"trendy":       "current platform aesthetics, meme-aware framing",
	"vintage":      "grain, faded palette, retro type treatments",
}

func newThumbnailDesignerTool() Tool {
	descriptor := types.ToolDescriptor{
		Name: "ai_thumbnail_designer",
		Description: RichDescription{
			Description: "Generate eye-catching thumbnails and social media graphics",
			UseWhen:     "When you need to create compelling thumbnails, social media posts, or visual graphics",
		}.JSON(),
		Params: []types.ParamSpec{
			{
				Name:        "content_type",
				Type:        types.ParamString,
				Description: "Destination platform",
				Required:    true,
				Enum:        []string{"youtube", "tiktok", "instagram", "twitter", "linkedin", "gaming"},
			},
			{
				Name:        "style_preference",
				Type:        types.ParamString,
				Description: "Visual style",
				Default:     "bold",
				Enum:        []string{"bold", "minimal", "colorful", "professional", "trendy", "vintage"},
			},
			{
				Name:        "target_audience",
				Type:        types.ParamString,
				Description: "Primary audience",
				Default:     "general",
				Enum:        []string{"gen_z", "millennials", "professionals", "gamers", "general"},
			},
		},
	}

	return newTool(descriptor, renderThumbnailBrief)
}

func renderThumbnailBrief(ctx context.Context, args map[string]any) (string, error) {
	platform := argString(args, "content_type", "youtube")
	style := argString(args, "style_preference", "bold")
	audience := argString(args, "target_audience", "general")

	canvas, ok := thumbnailCanvas[platform]
	if !ok {
		return "", fmt.Errorf("unsupported content type: %s", platform)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Thumbnail Design Brief: %s\n\n", titleize(platform))
	fmt.Fprintf(&b, "**Style:** %s | **Audience:** %s | **Created:** %s\n\n",
		titleize(style), titleize(audience), stamp())

	b.WriteString("## Canvas\n")
	fmt.Fprintf(&b, "- %s\n", canvas)
	b.WriteString("- Export PNG for graphics, JPEG 80%+ for photos\n\n")

	b.WriteString("## Treatment\n")
	fmt.Fprintf(&b, "- %s\n", styleTreatments[style])
	b.WriteString("- Maximum 4 words of overlay text\n")
	b.WriteString("- Faces with strong expressions lift click-through\n")
	b.WriteString("- Keep a consistent visual signature across uploads\n\n")

	b.WriteString("## Pre-publish Checks\n")
	b.WriteString("1. Legible at mobile size\n")
	b.WriteString("2. Distinct from neighboring results\n")
	b.WriteString("3. Honest to the content; no bait\n")

	return b.String(), nil
}
