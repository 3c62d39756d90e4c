package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
)

// ConsentCLIRenderer renders the output of `pptb consent` subcommands.
type ConsentCLIRenderer struct {
	theme *Theme
}

func NewConsentCLIRenderer(theme *Theme) *ConsentCLIRenderer {
	return &ConsentCLIRenderer{theme: theme}
}

func (r *ConsentCLIRenderer) RenderList(consents []*entity.CSPConsent, now time.Time) string {
	if len(consents) == 0 {
		return r.theme.Subtle.Render("No tool has been granted CSP exceptions.")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n\n", r.theme.Highlight.Render(IconShield), r.theme.Title.Render("CSP consents")))

	rows := make([][]string, 0, len(consents))
	for _, c := range consents {
		fingerprint := c.Fingerprint
		if len(fingerprint) > 12 {
			fingerprint = fingerprint[:12]
		}
		rows = append(rows, []string{
			string(c.ToolID),
			relativeTime(time.Unix(c.GrantedAt, 0), now),
			fingerprint,
		})
	}
	b.WriteString(newTable(r.theme, []string{"TOOL", "GRANTED", "FINGERPRINT"}, rows).String())
	return b.String()
}

func (r *ConsentCLIRenderer) RenderRevoked(toolID entity.ToolID) string {
	return fmt.Sprintf("%s Consent for %s revoked. The tool will ask again on next launch.",
		r.theme.SuccessStyle.Render(IconTrash),
		r.theme.Highlight.Render(string(toolID)),
	)
}

func (r *ConsentCLIRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}
