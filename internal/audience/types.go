package audience

import (
	"fmt"
	"strings"

	"commsagent/internal/domain/models"
)

// Profile describes how one stakeholder audience should be written to.
type Profile struct {
	// Audience identifier (set during YAML unmarshaling)
	ID models.Audience `yaml:"-" json:"id"`

	DisplayName string `yaml:"display_name" json:"display_name"`

	// WordLimit bounds draft length. Enforced only through the prompt.
	WordLimit int `yaml:"word_limit" json:"word_limit"`

	Tone       string   `yaml:"tone" json:"tone"`
	Guidelines []string `yaml:"guidelines" json:"guidelines"`
}

// PromptGuidelines renders the profile as the bullet block embedded in draft
// prompts.
func (p *Profile) PromptGuidelines() string {
	var b strings.Builder
	for _, g := range p.Guidelines {
		fmt.Fprintf(&b, "- %s\n", g)
	}
	fmt.Fprintf(&b, "- Keep it under %d words\n", p.WordLimit)
	fmt.Fprintf(&b, "- Use a %s tone\n", p.Tone)
	return b.String()
}
