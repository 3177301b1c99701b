package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/creativeops/studio-mcp/pkg/types"
)

type genreSpec struct {
	tempo      string
	key        string
	instrument string
}

var genreSpecs = map[string]genreSpec{
	"pop":        {tempo: "100-120 BPM", key: "C major or A minor", instrument: "synth leads, punchy drums, layered vocals"},
	"rock":       {tempo: "110-140 BPM", key: "E minor or D major", instrument: "distorted guitars, live drums, bass"},
	"electronic": {tempo: "120-128 BPM", key: "F minor", instrument: "synth arps, sidechained pads, electronic percussion"},
	"jazz":       {tempo: "90-140 BPM swing", key: "Bb major with ii-V-I movement", instrument: "piano trio, upright bass, brushed drums"},
	"classical":  {tempo: "adagio to allegro", key: "D major", instrument: "string quartet or full orchestra"},
	"hip_hop":    {tempo: "80-95 BPM", key: "minor pentatonic", instrument: "808s, sampled loops, tight hi-hats"},
	"country":    {tempo: "95-110 BPM", key: "G major", instrument: "acoustic guitar, pedal steel, fiddle"},
	"ambient":    {tempo: "60-80 BPM or rubato", key: "modal drones", instrument: "evolving pads, field recordings, sparse piano"},
}

var songDurations = map[string]string{
	"short":  "1:30-2:30, single verse and chorus",
	"medium": "3:00-4:00, full verse-chorus-bridge form",
	"long":   "5:00+, extended intro and instrumental sections",
}

func newMusicComposerTool() Tool {
	descriptor := types.ToolDescriptor{
		Name: "ai_music_composer",
		Description: RichDescription{
			Description: "Generate melodies, lyrics, and full songs with AI",
			UseWhen:     "When you need music composition, songwriting, or musical content creation",
		}.JSON(),
		Params: []types.ParamSpec{
			{
				Name:        "music_genre",
				Type:        types.ParamString,
				Description: "Genre of the composition",
				Required:    true,
				Enum:        []string{"pop", "rock", "electronic", "jazz", "classical", "hip_hop", "country", "ambient"},
			},
			{
				Name:        "mood",
				Type:        types.ParamString,
				Description: "Emotional tone",
				Default:     "energetic",
				Enum:        []string{"energetic", "calm", "melancholic", "uplifting", "dramatic", "romantic"},
			},
			{
				Name:        "duration",
				Type:        types.ParamString,
				Description: "Target length of the piece",
				Default:     "medium",
				Enum:        []string{"short", "medium", "long"},
			},
		},
	}

	return newTool(descriptor, renderCompositionBrief)
}

func renderCompositionBrief(ctx context.Context, args map[string]any) (string, error) {
	genre := argString(args, "music_genre", "pop")
	mood := argString(args, "mood", "energetic")
	duration := argString(args, "duration", "medium")

	spec, ok := genreSpecs[genre]
	if !ok {
		return "", fmt.Errorf("unsupported music genre: %s", genre)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Composition Brief: %s %s\n\n", titleize(mood), titleize(genre))
	fmt.Fprintf(&b, "**Created:** %s\n\n", stamp())

	b.WriteString("## Musical Direction\n")
	fmt.Fprintf(&b, "- Tempo: %s\n", spec.tempo)
	fmt.Fprintf(&b, "- Key/harmony: %s\n", spec.key)
	fmt.Fprintf(&b, "- Instrumentation: %s\n", spec.instrument)
	fmt.Fprintf(&b, "- Length: %s\n\n", songDurations[duration])

	b.WriteString("## Arrangement\n")
	b.WriteString("1. Intro establishing the main motif\n")
	fmt.Fprintf(&b, "2. Verse with restrained dynamics to set the %s mood\n", mood)
	b.WriteString("3. Chorus with the full arrangement and hook\n")
	b.WriteString("4. Bridge with a harmonic or textural shift\n")
	b.WriteString("5. Final chorus and outro\n\n")

	b.WriteString("## Lyric Starters\n")
	fmt.Fprintf(&b, "- A %s opening image that anchors the first verse\n", mood)
	b.WriteString("- A one-line chorus hook of eight syllables or fewer\n")
	b.WriteString("- A bridge that reframes the chorus from a new angle\n")

	return b.String(), nil
}
