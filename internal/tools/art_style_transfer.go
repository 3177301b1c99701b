package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/creativeops/studio-mcp/pkg/types"
)

var artStyleNotes = map[string]string{
	"van_gogh":     "Bold swirling brushstrokes, vibrant yellows and blues, thick impasto texture. Best for landscapes and portraits.",
	"picasso":      "Cubist geometric forms, bold contrasting colors, fragmented composition. Best for portraits and abstract subjects.",
	"monet":        "Impressionist brushwork, soft natural light, loose atmospheric strokes. Best for landscapes and outdoor scenes.",
	"anime":        "Japanese animation style, bright saturated colors, stylized proportions. Best for characters and fantasy scenes.",
	"sketch":       "Pencil or charcoal drawing, monochromatic palette, fine lines and shading. Best for portraits and studies.",
	"watercolor":   "Transparent paint washes, soft flowing transitions, fluid organic blending. Best for landscapes and soft subjects.",
	"oil_painting": "Traditional oil technique, rich layered colors, smooth blended brushwork. Best for portraits and still life.",
	"digital_art":  "Modern digital painting, vibrant contemporary palette, clean finish. Best for concept art and illustrations.",
}

var moodPalettes = map[string]string{
	"bright":   "vibrant yellows and oranges with pure white accents",
	"dark":     "deep blues and purples with bright highlight contrast",
	"vibrant":  "saturated primaries with electric green and hot pink accents",
	"muted":    "soft grays and pastels with dusty pink and sage accents",
	"dramatic": "deep reds and blacks with stark white and gold contrast",
	"peaceful": "soft blues and lavenders with gentle cream accents",
}

func newArtStyleTransferTool() Tool {
	descriptor := types.ToolDescriptor{
		Name: "ai_art_style_transfer",
		Description: RichDescription{
			Description: "Transform photos into different art styles using AI",
			UseWhen:     "When you want to convert photos into different artistic styles like paintings, sketches, or digital art",
		}.JSON(),
		Params: []types.ParamSpec{
			{
				Name:        "image_description",
				Type:        types.ParamString,
				Description: "Description of the image you want to transform",
				Required:    true,
			},
			{
				Name:        "art_style",
				Type:        types.ParamString,
				Description: "Art style to apply",
				Required:    true,
				Enum:        []string{"van_gogh", "picasso", "monet", "anime", "sketch", "watercolor", "oil_painting", "digital_art"},
			},
			{
				Name:        "mood",
				Type:        types.ParamString,
				Description: "Mood of the transformed image",
				Default:     "vibrant",
				Enum:        []string{"bright", "dark", "vibrant", "muted", "dramatic", "peaceful"},
			},
		},
	}

	return newTool(descriptor, renderArtStyleGuide)
}

func renderArtStyleGuide(ctx context.Context, args map[string]any) (string, error) {
	image := argString(args, "image_description", "")
	style := argString(args, "art_style", "digital_art")
	mood := argString(args, "mood", "vibrant")

	notes, ok := artStyleNotes[style]
	if !ok {
		return "", fmt.Errorf("unsupported art style: %s", style)
	}
	palette := moodPalettes[mood]
	if palette == "" {
		palette = moodPalettes["vibrant"]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# AI Art Style Transfer: %s\n\n", titleize(style))
	fmt.Fprintf(&b, "**Image:** %s\n", image)
	fmt.Fprintf(&b, "**Mood:** %s\n", titleize(mood))
	fmt.Fprintf(&b, "**Processing Date:** %s\n\n", stamp())

	b.WriteString("## Style Characteristics\n")
	fmt.Fprintf(&b, "%s\n\n", notes)

	b.WriteString("## Color Palette\n")
	fmt.Fprintf(&b, "%s palette: %s.\n\n", titleize(mood), palette)

	b.WriteString("## Technical Specifications\n")
	b.WriteString("- Resolution: 2048x2048 px, 300 DPI print-ready\n")
	b.WriteString("- Style strength: 85%, content preservation: 70%\n")
	fmt.Fprintf(&b, "- Texture detail enhanced for the %s style\n", titleize(style))
	b.WriteString("- Output: PNG primary, JPEG for web\n\n")

	b.WriteString("## Tips\n")
	b.WriteString("- Match the style to your audience and platform\n")
	b.WriteString("- Keep the original image before transformation\n")
	b.WriteString("- Test different moods to match the content tone\n")

	return b.String(), nil
}
