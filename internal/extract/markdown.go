package extract

import (
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	titleRatio   = 1.6
	headingRatio = 1.2
)

type textLine struct {
	y      float64
	size   float64
	glyphs []pdf.Text
}

// markdownPage groups glyphs into visual lines and marks lines drawn noticeably
// larger than the page's body text as headings.
func markdownPage(p pdf.Page) (string, error) {
	lines := groupLines(p.Content().Text)
	if len(lines) == 0 {
		return "", nil
	}
	body := bodySize(lines)

	var b strings.Builder
	for _, line := range lines {
		text := strings.TrimSpace(lineText(line))
		if text == "" {
			continue
		}
		switch {
		case body > 0 && line.size >= body*titleRatio:
			b.WriteString("# ")
		case body > 0 && line.size >= body*headingRatio:
			b.WriteString("## ")
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	return b.String(), nil
}

func groupLines(glyphs []pdf.Text) []*textLine {
	byY := make(map[float64]*textLine)
	var lines []*textLine
	for _, g := range glyphs {
		if g.S == "\n" {
			continue
		}
		y := math.Round(g.Y)
		line, ok := byY[y]
		if !ok {
			line = &textLine{y: y}
			byY[y] = line
			lines = append(lines, line)
		}
		line.glyphs = append(line.glyphs, g)
		if g.FontSize > line.size {
			line.size = g.FontSize
		}
	}

	// PDF space grows upwards, so the top of the page has the largest Y.
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].y > lines[j].y })
	for _, line := range lines {
		sort.SliceStable(line.glyphs, func(i, j int) bool { return line.glyphs[i].X < line.glyphs[j].X })
	}
	return lines
}

func lineText(line *textLine) string {
	var b strings.Builder
	for _, g := range line.glyphs {
		b.WriteString(g.S)
	}
	return b.String()
}

// bodySize is the font size that covers the most glyphs on the page.
func bodySize(lines []*textLine) float64 {
	counts := make(map[float64]int)
	for _, line := range lines {
		for _, g := range line.glyphs {
			if strings.TrimSpace(g.S) == "" {
				continue
			}
			counts[math.Round(g.FontSize*10)/10]++
		}
	}
	var best float64
	bestCount := 0
	for size, n := range counts {
		if n > bestCount || (n == bestCount && size < best) {
			best, bestCount = size, n
		}
	}
	return best
}
