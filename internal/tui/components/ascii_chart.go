package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/tui/tuistyles"
)

// DataSeries represents a single line in a chart
type DataSeries struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// ASCIIChart draws year-by-year projection values as a simple line chart
type ASCIIChart struct {
	Title      string
	Series     []*DataSeries
	Labels     []string // X-axis labels
	Width      int
	Height     int
	ShowLegend bool
	XAxisLabel string
}

const yAxisWidth = 10

// NewASCIIChart creates a new ASCII chart
func NewASCIIChart(title string) *ASCIIChart {
	return &ASCIIChart{
		Title:      title,
		Width:      60,
		Height:     12,
		ShowLegend: true,
	}
}

// AddSeries adds a data series to the chart
func (c *ASCIIChart) AddSeries(name string, points []float64, color lipgloss.Color) *ASCIIChart {
	c.Series = append(c.Series, &DataSeries{
		Name:   name,
		Points: points,
		Color:  color,
	})
	return c
}

// AddProjection plots the value of a projection at the end of each year. The first
// projection added also sets the year labels.
func (c *ASCIIChart) AddProjection(name string, p domain.ProjectionResult) *ASCIIChart {
	points := make([]float64, len(p.Breakdown))
	for i, row := range p.Breakdown {
		points[i] = row.TotalValue.InexactFloat64()
	}
	if len(c.Labels) == 0 {
		for _, row := range p.Breakdown {
			c.Labels = append(c.Labels, fmt.Sprintf("Y%d", row.Period))
		}
	}
	color := tuistyles.ChartColors[len(c.Series)%len(tuistyles.ChartColors)]
	return c.AddSeries(name, points, color)
}

// AddContributions plots the cumulative principal of a projection
func (c *ASCIIChart) AddContributions(name string, p domain.ProjectionResult) *ASCIIChart {
	points := make([]float64, len(p.Breakdown))
	for i, row := range p.Breakdown {
		points[i] = row.PrincipalToDate.InexactFloat64()
	}
	color := tuistyles.ChartColors[len(c.Series)%len(tuistyles.ChartColors)]
	return c.AddSeries(name, points, color)
}

// WithLabels sets the X-axis labels
func (c *ASCIIChart) WithLabels(labels []string) *ASCIIChart {
	c.Labels = labels
	return c
}

// WithSize sets the chart dimensions
func (c *ASCIIChart) WithSize(width, height int) *ASCIIChart {
	c.Width = width
	c.Height = height
	return c
}

// Render returns the styled chart
func (c *ASCIIChart) Render() string {
	if !c.hasData() {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var content strings.Builder

	if c.Title != "" {
		titleStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(tuistyles.ColorPrimary)
		content.WriteString(titleStyle.Render(c.Title))
		content.WriteString("\n\n")
	}

	minVal, maxVal := c.bounds()
	content.WriteString(c.renderGrid(minVal, maxVal))

	if c.XAxisLabel != "" {
		content.WriteString("\n")
		labelStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorMuted).
			Italic(true)
		content.WriteString(labelStyle.Render(c.XAxisLabel))
	}

	if c.ShowLegend && len(c.Series) > 1 {
		content.WriteString("\n")
		content.WriteString(c.renderLegend())
	}

	return content.String()
}

func (c *ASCIIChart) hasData() bool {
	for _, s := range c.Series {
		if len(s.Points) > 0 {
			return true
		}
	}
	return false
}

// bounds finds the value range across all series. Growth charts start at zero.
func (c *ASCIIChart) bounds() (float64, float64) {
	minVal, maxVal := 0.0, math.Inf(-1)
	for _, series := range c.Series {
		for _, point := range series.Points {
			minVal = math.Min(minVal, point)
			maxVal = math.Max(maxVal, point)
		}
	}
	if maxVal <= minVal {
		maxVal = minVal + 1
	}
	return minVal, maxVal
}

// column maps point i of n onto the chart width
func column(i, n, width int) int {
	if n <= 1 {
		return width - 1
	}
	return int(float64(i) / float64(n-1) * float64(width-1))
}

// row maps a value onto the chart height, top row first
func (c *ASCIIChart) row(v, minVal, maxVal float64) int {
	return c.Height - 1 - int(math.Round((v-minVal)/(maxVal-minVal)*float64(c.Height-1)))
}

// renderGrid renders the chart grid with data points
func (c *ASCIIChart) renderGrid(minVal, maxVal float64) string {
	chartWidth := c.Width - yAxisWidth - 3
	if chartWidth < 2 {
		chartWidth = 2
	}
	if c.Height < 2 {
		c.Height = 2
	}

	grid := make([][]rune, c.Height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", chartWidth))
	}

	for seriesIdx, series := range c.Series {
		pointChar := seriesChar(seriesIdx)
		n := len(series.Points)
		for i, point := range series.Points {
			x, y := column(i, n, chartWidth), c.row(point, minVal, maxVal)
			if i > 0 {
				prevX, prevY := column(i-1, n, chartWidth), c.row(series.Points[i-1], minVal, maxVal)
				drawLine(grid, prevX, prevY, x, y)
			}
			grid[y][x] = pointChar
		}
	}

	var out strings.Builder
	yAxisStyle := lipgloss.NewStyle().
		Foreground(tuistyles.ColorMuted).
		Width(yAxisWidth).
		Align(lipgloss.Right)

	for i, row := range grid {
		yValue := maxVal - (float64(i)/float64(c.Height-1))*(maxVal-minVal)
		out.WriteString(yAxisStyle.Render(tuistyles.FormatCompact(yValue)))
		out.WriteString(" │ ")
		out.WriteString(string(row))
		out.WriteString("\n")
	}

	out.WriteString(strings.Repeat(" ", yAxisWidth))
	out.WriteString(" └─")
	out.WriteString(strings.Repeat("─", chartWidth))

	if len(c.Labels) > 0 {
		out.WriteString("\n")
		out.WriteString(c.renderXAxisLabels(chartWidth))
	}

	return out.String()
}

// seriesChar returns the character used to plot a series
func seriesChar(index int) rune {
	chars := []rune{'●', '■', '▲', '♦'}
	return chars[index%len(chars)]
}

// drawLine joins two grid points using Bresenham's algorithm without overwriting plotted cells
func drawLine(grid [][]rune, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)

	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}

	err := dx - dy
	x, y := x0, y0
	for {
		if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y]) && grid[y][x] == ' ' {
			grid[y][x] = '·'
		}
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// renderXAxisLabels places up to five labels under their columns
func (c *ASCIIChart) renderXAxisLabels(chartWidth int) string {
	line := []rune(strings.Repeat(" ", chartWidth+8))
	n := len(c.Labels)

	step := n / 5
	if step == 0 {
		step = 1
	}
	for i := 0; i < n; i += step {
		label := []rune(c.Labels[i])
		start := column(i, n, chartWidth)
		if start+len(label) > len(line) {
			continue
		}
		copy(line[start:], label)
	}

	labelStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	return strings.Repeat(" ", yAxisWidth+3) + labelStyle.Render(strings.TrimRight(string(line), " "))
}

// renderLegend renders the chart legend
func (c *ASCIIChart) renderLegend() string {
	items := make([]string, 0, len(c.Series))
	for i, series := range c.Series {
		symbol := lipgloss.NewStyle().Foreground(series.Color).Render(string(seriesChar(i)))
		items = append(items, fmt.Sprintf("%s %s", symbol, series.Name))
	}
	return tuistyles.SubtitleStyle.Render("Legend: ") + strings.Join(items, " • ")
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
