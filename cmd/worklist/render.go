// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/assemblygenie/plate"
	"github.com/katalvlaran/assemblygenie/well"
)

const cellWidth = 8

var (
	plateTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).Bold(true)
	axisStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999")).Width(cellWidth).Align(lipgloss.Center)
	filledStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Width(cellWidth).Align(lipgloss.Center)
	emptyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444")).Width(cellWidth).Align(lipgloss.Center)
	plateBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#CCCCCC")).Padding(0, 1)
)

// renderPlate draws the plate as a row-by-column grid of component names.
func renderPlate(pl plate.PlateLayout) string {
	wells := pl.Wells()

	header := []string{axisStyle.Render("")}
	for c := 0; c < pl.Format.Columns; c++ {
		header = append(header, axisStyle.Render(strconv.Itoa(c+1)))
	}
	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	for r := 0; r < pl.Format.Rows; r++ {
		rowName := strings.TrimSuffix(well.Name(well.Coord{Row: r}), "1")
		cells := []string{axisStyle.Render(rowName)}
		for c := 0; c < pl.Format.Columns; c++ {
			name, ok := wells[well.Name(well.Coord{Row: r, Col: c})]
			if !ok {
				cells = append(cells, emptyStyle.Render("·"))
				continue
			}
			cells = append(cells, filledStyle.Render(truncate(name, cellWidth-1)))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	title := plateTitleStyle.Render(fmt.Sprintf("%s (%s, %d/%d)", pl.ID, pl.Role, len(pl.Placements), pl.Format.Size()))

	return lipgloss.JoinVertical(lipgloss.Left, title, plateBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n-1]) + "…"
}
