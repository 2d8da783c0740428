package tui

import "github.com/charmbracelet/lipgloss"

// maxHistory bounds how many exchanges the transcript keeps on screen.
const maxHistory = 20

// bannerStyle renders the welcome line.
var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})

// echoStyle renders the user's submitted command in the transcript.
var echoStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})

// replyStyle renders assistant replies.
var replyStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "15"})
