package ui

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatGrid renders rows of cell values as an aligned table followed by the
// magic constant. Cells on either main diagonal are highlighted when color is
// enabled.
func FormatGrid(rows [][]int, magicConstant int) string {
	n := len(rows)
	width := len(strconv.Itoa(n * n))

	var b strings.Builder
	for r, row := range rows {
		b.WriteString("  ")
		for c, v := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			cell := fmt.Sprintf("%*d", width, v)
			if (r == c || r+c == n-1) && !noColor() {
				cell = Info.Sprint(cell)
			}
			b.WriteString(cell)
		}
		b.WriteByte('\n')
	}
	b.WriteString(Muted.Sprintf("order %d, magic constant %d", n, magicConstant))
	b.WriteByte('\n')
	return b.String()
}
