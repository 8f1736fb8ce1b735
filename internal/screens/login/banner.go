package login

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/engpower/internal/ui/theme"
)

const bannerArt = `
 ███████╗███╗   ██╗ ██████╗ ██████╗  ██████╗ ██╗    ██╗███████╗██████╗
 ██╔════╝████╗  ██║██╔════╝ ██╔══██╗██╔═══██╗██║    ██║██╔════╝██╔══██╗
 █████╗  ██╔██╗ ██║██║  ███╗██████╔╝██║   ██║██║ █╗ ██║█████╗  ██████╔╝
 ██╔══╝  ██║╚██╗██║██║   ██║██╔═══╝ ██║   ██║██║███╗██║██╔══╝  ██╔══██╗
 ███████╗██║ ╚████║╚██████╔╝██║     ╚██████╔╝╚███╔███╔╝███████╗██║  ██║
 ╚══════╝╚═╝  ╚═══╝ ╚═════╝ ╚═╝      ╚═════╝  ╚══╝╚══╝ ╚══════╝╚═╝  ╚═╝`

const bannerCompact = "E N G P O W E R"

// bannerMinWidth is the narrowest terminal that fits the full banner.
const bannerMinWidth = 73

// RenderBanner returns the ENGPOWER banner styled in the primary color.
// Uses a compact fallback for narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
