package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/rubiks_cube"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	menuStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	opStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

var stickerColors = map[rubiks.Color]lipgloss.Color{
	rubiks.Blue:   lipgloss.Color("#0051BA"),
	rubiks.Red:    lipgloss.Color("#C41E3A"),
	rubiks.Orange: lipgloss.Color("#FF5800"),
	rubiks.White:  lipgloss.Color("#FFFFFF"),
	rubiks.Green:  lipgloss.Color("#009E60"),
	rubiks.Yellow: lipgloss.Color("#FFD500"),
}

func sticker(c rubiks.Color) string {
	return lipgloss.NewStyle().
		Background(stickerColors[c]).
		Foreground(lipgloss.Color("#000000")).
		Render(" " + c.String() + " ")
}

func renderRow(grid [9]rubiks.Color, row int) string {
	cells := make([]string, 3)
	for col := 0; col < 3; col++ {
		cells[col] = sticker(grid[row*3+col])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func renderFace(v rubiks.FaceView) string {
	rows := make([]string, 3)
	for r := 0; r < 3; r++ {
		rows[r] = renderRow(v.Grid, r)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderNet draws faces as a coloured net with the front in the middle.
// faces must be ordered front, left, right, top, back, bottom.
func renderNet(faces []rubiks.FaceView) string {
	if len(faces) != 6 {
		return ""
	}
	front, left, right, top, back, bottom := faces[0], faces[1], faces[2], faces[3], faces[4], faces[5]

	gap := " "
	width := lipgloss.Width(renderFace(left)) + len(gap)
	indent := lipgloss.NewStyle().PaddingLeft(width)

	middle := lipgloss.JoinHorizontal(lipgloss.Top,
		renderFace(left), gap,
		renderFace(front), gap,
		renderFace(right), gap,
		renderFace(back),
	)

	var b strings.Builder
	b.WriteString(indent.Render(renderFace(top)))
	b.WriteString("\n")
	b.WriteString(middle)
	b.WriteString("\n")
	b.WriteString(indent.Render(renderFace(bottom)))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render("front " + front.Color.Name() + ", top " + top.Color.Name()))
	b.WriteString("\n")
	return b.String()
}
