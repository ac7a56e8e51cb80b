package shell

import "github.com/charmbracelet/lipgloss"

// inputHeight is the number of lines reserved for the prompt line.
const inputHeight = 1

// helpBarHeight is the number of lines reserved for the help bar.
const helpBarHeight = 1

// PromptStyle colors the prompt and echoed command lines.
func PromptStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"}).
		Bold(true)
}

// ResponseStyle renders assistant responses.
func ResponseStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "7"})
}

// BannerStyle renders the welcome banner.
func BannerStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "5", Dark: "13"}).
		Bold(true)
}

// TranscriptBorder frames the transcript viewport.
func TranscriptBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"})
}
