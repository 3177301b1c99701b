package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/creativeops/studio-mcp/pkg/types"
)

var voiceProfiles = map[string]string{
	"professional": "Clear, measured delivery with neutral intonation. Suited to corporate narration and e-learning.",
	"casual":       "Relaxed conversational pacing with natural fillers. Suited to vlogs and social content.",
	"narrator":     "Warm, steady storytelling cadence with deliberate pauses. Suited to audiobooks and documentaries.",
	"character":    "Exaggerated pitch range and distinct personality quirks. Suited to animation and games.",
	"celebrity":    "Recognizable timbre and signature phrasing. Requires explicit consent and licensing.",
}

var contentSpecs = map[string]string{
	"voice_over":      "60-90 second scripts, 140-160 words per minute, music bed at -18 dB",
	"podcast":         "long-form delivery, consistent room tone, loudness target -16 LUFS",
	"audiobook":       "chapter-length sessions, 150 wpm, ACX spec: -23 to -18 dB RMS",
	"commercial":      "15/30/60 second cuts, energetic reads, hard time limits",
	"character_voice": "short takes with multiple emotional variants per line",
}

func newVoiceCloningTool() Tool {
	descriptor := types.ToolDescriptor{
		Name: "ai_voice_cloning_audio",
		Description: RichDescription{
			Description: "Create voice-overs and audio content with AI voice cloning",
			UseWhen:     "When you need professional voice-overs, audio content, or voice cloning for projects",
		}.JSON(),
		Params: []types.ParamSpec{
			{
				Name:        "voice_type",
				Type:        types.ParamString,
				Description: "Type of voice to generate",
				Required:    true,
				Enum:        []string{"professional", "casual", "narrator", "character", "celebrity"},
			},
			{
				Name:        "content_type",
				Type:        types.ParamString,
				Description: "Kind of audio content to produce",
				Default:     "voice_over",
				Enum:        []string{"voice_over", "podcast", "audiobook", "commercial", "character_voice"},
			},
			{
				Name:        "language",
				Type:        types.ParamString,
				Description: "Output language",
				Default:     "english",
				Enum:        []string{"english", "spanish", "french", "german", "hindi", "chinese"},
			},
		},
	}

	return newTool(descriptor, renderVoiceCloningGuide)
}

func renderVoiceCloningGuide(ctx context.Context, args map[string]any) (string, error) {
	voice := argString(args, "voice_type", "professional")
	content := argString(args, "content_type", "voice_over")
	language := argString(args, "language", "english")

	profile, ok := voiceProfiles[voice]
	if !ok {
		return "", fmt.Errorf("unsupported voice type: %s", voice)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# AI Voice Production Plan: %s %s\n\n", titleize(voice), titleize(content))
	fmt.Fprintf(&b, "**Language:** %s\n", titleize(language))
	fmt.Fprintf(&b, "**Prepared:** %s\n\n", stamp())

	b.WriteString("## Voice Profile\n")
	fmt.Fprintf(&b, "%s\n\n", profile)

	b.WriteString("## Production Specifications\n")
	if spec, ok := contentSpecs[content]; ok {
		fmt.Fprintf(&b, "- Format: %s\n", spec)
	}
	b.WriteString("- Sample rate: 48 kHz / 24-bit WAV masters\n")
	b.WriteString("- Reference audio: 3-5 minutes of clean source speech\n")
	b.WriteString("- Noise floor below -60 dB before cloning\n\n")

	b.WriteString("## Workflow\n")
	b.WriteString("1. Collect consent and reference recordings\n")
	b.WriteString("2. Train or select the voice model\n")
	fmt.Fprintf(&b, "3. Generate a %s test read and review pronunciation\n", titleize(language))
	b.WriteString("4. Produce final takes, then master to the target loudness\n")

	return b.String(), nil
}
