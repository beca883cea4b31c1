package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/cristianoliveira/commentview/internal/domain"
)

// ProfileMarkdown renders the profile as a markdown document.
func ProfileMarkdown(p domain.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", orDash(p.Name))
	if h := p.Handle(); h != "" {
		fmt.Fprintf(&b, "_%s_\n\n", h)
	}

	b.WriteString("## Contact\n\n")
	fmt.Fprintf(&b, "- **Email:** %s\n", orDash(p.Email))
	fmt.Fprintf(&b, "- **Phone:** %s\n", orDash(p.Phone))
	if url := p.WebsiteURL(); url != "" {
		fmt.Fprintf(&b, "- **Website:** [%s](%s)\n", p.Website, url)
	} else {
		b.WriteString("- **Website:** -\n")
	}

	b.WriteString("\n## Address\n\n")
	a := p.Address
	fmt.Fprintf(&b, "%s, %s  \n%s %s\n\n", orDash(a.Street), orDash(a.Suite), orDash(a.City), a.Zipcode)
	if a.Geo.Lat != "" || a.Geo.Lng != "" {
		fmt.Fprintf(&b, "Coordinates: `%s, %s`\n", a.Geo.Lat, a.Geo.Lng)
	}

	b.WriteString("\n## Company\n\n")
	fmt.Fprintf(&b, "**%s**\n\n", orDash(p.Company.Name))
	if p.Company.CatchPhrase != "" {
		fmt.Fprintf(&b, "> %s\n\n", p.Company.CatchPhrase)
	}
	if p.Company.BS != "" {
		fmt.Fprintf(&b, "%s\n", p.Company.BS)
	}
	return b.String()
}

// Profile renders the profile markdown for the terminal. When glamour
// cannot render, the plain markdown is returned together with the error.
func Profile(p domain.Profile, width int, theme Theme) (string, error) {
	md := ProfileMarkdown(p)
	if width <= 0 {
		width = defaultWidth
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme.GlamourStyle),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md, fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return md, fmt.Errorf("render profile: %w", err)
	}
	return out, nil
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
