package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/ghprofile/pkg/profile"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary actions
	colorGreen = lipgloss.Color("35")  // Green - success
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorBlue  = lipgloss.Color("75")  // Light blue - links
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleLink for URLs.
	StyleLink = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleError for the error region.
	StyleError = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleName    = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	styleLabel   = lipgloss.NewStyle().Foreground(colorGray).Width(10)
	styleSection = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).MarginTop(1)
	styleCard    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message to w.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printInfo prints an info/status message to w.
func printInfo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printDetail prints a detail line (indented) to w.
func printDetail(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, "  "+StyleDim.Render(msg))
}

// printFile prints a file output line to w.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printKeyValue prints a labeled value to w.
func printKeyValue(w io.Writer, key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Fprintln(w, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// =============================================================================
// Profile Rendering
// =============================================================================

// renderProfile lays out a formatted profile for the terminal in the same
// section order as the web page.
func renderProfile(p *profile.Profile) string {
	if p == nil {
		return ""
	}
	sections := []string{
		renderHeader(p.Header),
		renderStats(p.Stats),
		renderInfo(p.Info),
		styleSection.Render("Latest Repositories"),
		renderRepos(p.Repos),
	}
	return strings.Join(sections, "\n")
}

func renderHeader(h profile.Header) string {
	lines := []string{
		styleName.Render(h.Name) + " " + StyleDim.Render(h.Username),
		StyleValue.Render(h.Bio),
		StyleDim.Render(h.Location + " · Joined " + h.Joined),
		StyleLink.Render(h.ProfileURL),
	}
	return styleCard.Render(strings.Join(lines, "\n"))
}

func renderStats(s profile.Stats) string {
	counts := []int{s.Followers, s.Following, s.Repositories}
	labels := []string{profile.LabelFollowers, profile.LabelFollowing, profile.LabelRepositories}
	parts := make([]string, len(counts))
	for i := range counts {
		parts[i] = StyleNumber.Render(strconv.Itoa(counts[i])) + " " + StyleDim.Render(labels[i])
	}
	return strings.Join(parts, StyleDim.Render(" · "))
}

func renderInfo(info profile.AdditionalInfo) string {
	return strings.Join([]string{
		styleLabel.Render("Company") + StyleValue.Render(info.Company),
		styleLabel.Render("Blog") + renderLink(info.Blog),
		styleLabel.Render("Twitter") + renderLink(info.Twitter),
	}, "\n")
}

func renderLink(l profile.Link) string {
	if l.Href == profile.NullAnchor {
		return StyleDim.Render(l.Label)
	}
	return StyleLink.Render(l.Label)
}

func renderRepos(cards []profile.RepoCard) string {
	if len(cards) == 0 {
		return StyleDim.Render(profile.EmptyRepos)
	}

	rows := make([][]string, 0, len(cards))
	for _, c := range cards {
		rows = append(rows, []string{
			c.Name,
			c.Description,
			c.Language,
			strconv.Itoa(c.Stars),
			strconv.Itoa(c.Forks),
			c.Updated,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Repository", "Description", "Language", "Stars", "Forks", "Updated").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorCyan).Padding(0, 1)
			}
			return lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1)
		})
	return t.Render()
}
