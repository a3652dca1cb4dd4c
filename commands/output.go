package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorSuccess = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorInfo    = lipgloss.Color("#3B82F6")
	colorMuted   = lipgloss.Color("#6B7280")

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(colorInfo)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
)

// Success prints a success message
func Success(format string, args ...interface{}) {
	fmt.Print(successStyle.Render("✓ "))
	fmt.Printf(format+"\n", args...)
}

// Error prints an error message
func Error(format string, args ...interface{}) {
	fmt.Print(errorStyle.Render("✗ "))
	fmt.Printf(format+"\n", args...)
}

// Info prints an info message
func Info(format string, args ...interface{}) {
	fmt.Print(infoStyle.Render("ℹ "))
	fmt.Printf(format+"\n", args...)
}

// Muted prints a muted message
func Muted(format string, args ...interface{}) {
	fmt.Println(mutedStyle.Render(fmt.Sprintf(format, args...)))
}
