// Command griddemo renders a few showcase tables to stdout: border presets,
// merged cells, alignment, and colored output sized against the terminal.
package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/zhiburt/tabled-sub005/grid"
	"github.com/zhiburt/tabled-sub005/width"
)

func main() {
	cols := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		cols = w
	}

	demos := []struct {
		title string
		build func() *grid.Grid
	}{
		{"ASCII borders", basicTable(grid.BorderASCII())},
		{"Modern borders", basicTable(grid.BorderModern())},
		{"Double borders", basicTable(grid.BorderDouble())},
		{"Merged cells", mergedTable},
		{"Alignment and color", alignedTable},
	}

	for _, demo := range demos {
		g := demo.build()
		out := g.String()

		fmt.Printf("%s:\n", demo.title)
		if lineWidth(out) > cols {
			fmt.Println("(wider than the terminal, output may wrap)")
		}
		fmt.Println(out)
		fmt.Println()
	}
}

func basicTable(b grid.Border) func() *grid.Grid {
	return func() *grid.Grid {
		g := grid.New([][]string{
			{"name", "uptime", "status"},
			{"api-1", "31d", "healthy"},
			{"api-2", "4h", "degraded"},
		}, nil)
		g.SetBorder(grid.Global, b)
		g.SetPadding(grid.Global, grid.Padding{
			Left:  grid.Indent{Size: 1},
			Right: grid.Indent{Size: 1},
		})
		return g
	}
}

func mergedTable() *grid.Grid {
	g := grid.New([][]string{
		{"Q3 totals", "", ""},
		{"region", "units", "revenue"},
		{"EMEA", "1204", "$96k"},
		{"APAC", "987", "$71k"},
	}, nil)
	g.SetBorder(grid.Global, grid.BorderModern())
	g.SetPadding(grid.Global, grid.Padding{
		Left:  grid.Indent{Size: 1},
		Right: grid.Indent{Size: 1},
	})
	g.SetColumnSpan(grid.Pos(0, 0), 0)
	g.SetAlignmentHorizontal(grid.Cell(0, 0), grid.AlignCenterHorizontal)
	return g
}

func alignedTable() *grid.Grid {
	g := grid.New([][]string{
		{"left", "center", "right"},
		{"a", "b", "c"},
		{"wide 世界", "ok", "1234"},
	}, nil)
	g.SetBorder(grid.Global, grid.BorderThick())
	g.SetAlignmentHorizontal(grid.Column(1), grid.AlignCenterHorizontal)
	g.SetAlignmentHorizontal(grid.Column(2), grid.AlignRight)
	g.SetTextColor(grid.Row(0), grid.FgCyan)
	g.SetPadding(grid.Global, grid.Padding{
		Left:  grid.Indent{Size: 1},
		Right: grid.Indent{Size: 1},
	})
	return g
}

func lineWidth(block string) int {
	m := width.NewANSIAware(nil)
	max := 0
	start := 0
	for i := 0; i <= len(block); i++ {
		if i == len(block) || block[i] == '\n' {
			if w := m.Width(block[start:i]); w > max {
				max = w
			}
			start = i + 1
		}
	}
	return max
}
