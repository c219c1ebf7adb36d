package experiment

import (
	"math/rand"
	"time"
)

var (
	adjectives = []string{
		"amber", "bright", "clear", "coral", "crimson", "crystal", "dappled",
		"dim", "distant", "faint", "frosted", "gilded", "glassy", "glossy",
		"hazy", "hollow", "iridescent", "ivory", "jade", "lucid", "luminous",
		"matte", "misty", "molten", "nested", "opal", "pale", "pearl", "polished",
		"prismatic", "quiet", "radiant", "scarlet", "shaded", "sheer", "silver",
		"smoky", "soft", "stained", "still", "tinted", "twilight", "velvet",
		"violet", "warm", "wavy",
	}

	nouns = []string{
		"aperture", "aurora", "beam", "caustic", "corona", "dawn", "dew",
		"droplet", "dusk", "ember", "facet", "filament", "flare", "fringe",
		"glare", "glint", "glow", "halo", "highlight", "horizon", "lantern",
		"lens", "mirage", "mirror", "moon", "pane", "penumbra", "pool", "prism",
		"rainbow", "ray", "reflection", "ripple", "shadow", "shimmer", "sky",
		"spark", "spectrum", "sphere", "star", "sun", "umbra", "veil", "window",
	}
)

// GenerateExperimentName creates a memorable experiment identifier
// in the format "adjective-noun"
func GenerateExperimentName() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	adj := adjectives[rng.Intn(len(adjectives))]
	noun := nouns[rng.Intn(len(nouns))]

	return adj + "-" + noun
}

// GenerateExperimentID creates a unique experiment identifier by combining
// the memorable name with a timestamp
func GenerateExperimentID() string {
	timestamp := time.Now().UTC().Format("20060102-150405.000")
	return GenerateExperimentName() + "-" + timestamp
}
