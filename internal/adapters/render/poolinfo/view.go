package poolinfo

import (
	"fmt"
	"strings"

	"github.com/bnema/pool-cli/internal/application"
	"github.com/bnema/pool-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const defaultWidth = 70

type RenderOptions struct {
	Width int
	Plain bool
}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	return o
}

func renderView(info application.Info, opts RenderOptions, s styles) string {
	title := fmt.Sprintf("== %s ==", strings.ToUpper(info.Name))

	current := string(info.Current)
	if current == "" {
		current = "(none)"
	}

	lines := []string{
		"",
		s.title.Render(center(title, opts.Width)),
		"",
		s.label.Render("current item: ") + s.current.Render(current),
		"",
		s.weight.Render(fmt.Sprintf(
			"white item weight: %d  free item weight: %d  black item weight: %d",
			info.Rights.White, info.Rights.Free, info.Rights.Black(),
		)),
		"",
		legendLine(opts.Width, s),
		"",
		columnize(info, opts.Width, s),
	}

	return strings.Join(lines, "\n")
}

func legendLine(width int, s styles) string {
	legend := " normal | white | black"
	fill := width - lipgloss.Width(legend)
	if fill < 0 {
		fill = 0
	}

	return s.legend.Render(strings.Repeat("-", fill)+" normal | ") +
		s.white.Render("white") +
		s.legend.Render(" | ") +
		s.black.Render("black")
}

// columnize lays the full item list out in equal-width columns that fit in
// width, styling each cell by its tier.
func columnize(info application.Info, width int, s styles) string {
	if len(info.Full) == 0 {
		return s.empty.Render("empty set")
	}

	white := domain.NewItemSet(info.White...)
	black := domain.NewItemSet(info.Black...)

	cellWidth := 0
	for _, item := range info.Full {
		if w := lipgloss.Width(string(item)); w > cellWidth {
			cellWidth = w
		}
	}

	perLine := (width + 1) / (cellWidth + 1)
	if perLine < 1 {
		perLine = 1
	}
	gap := 1
	if perLine > 1 {
		gap = (width - perLine*cellWidth) / (perLine - 1)
	}

	var b strings.Builder
	for i, item := range info.Full {
		name := string(item)
		style := s.free
		switch {
		case white.Has(item):
			style = s.white
		case black.Has(item):
			style = s.black
		}

		b.WriteString(style.Render(name))
		last := i == len(info.Full)-1
		if (i+1)%perLine == 0 || last {
			if !last {
				b.WriteString("\n")
			}
			continue
		}
		b.WriteString(strings.Repeat(" ", cellWidth-lipgloss.Width(name)+gap))
	}

	return b.String()
}

func center(text string, width int) string {
	pad := width - lipgloss.Width(text)
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad/2) + text
}
