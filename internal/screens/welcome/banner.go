package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/owlery/internal/ui/theme"
)

const bannerArt = `
  ██████╗ ██╗    ██╗██╗     ███████╗██████╗ ██╗   ██╗
 ██╔═══██╗██║    ██║██║     ██╔════╝██╔══██╗╚██╗ ██╔╝
 ██║   ██║██║ █╗ ██║██║     █████╗  ██████╔╝ ╚████╔╝
 ██║   ██║██║███╗██║██║     ██╔══╝  ██╔══██╗  ╚██╔╝
 ╚██████╔╝╚███╔███╔╝███████╗███████╗██║  ██║   ██║
  ╚═════╝  ╚══╝╚══╝ ╚══════╝╚══════╝╚═╝  ╚═╝   ╚═╝`

const bannerCompact = "O W L E R Y"

// RenderBanner returns the OWLERY banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 56 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 56 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
