package report

import "strings"

const (
	mmPt = 72.0 / 25.4

	summaryLeft   = 20 * mmPt
	summaryRight  = 20 * mmPt
	summaryTop    = 25 * mmPt
	summaryBottom = 20 * mmPt
)

// BuildSummary renders the plain calculation summary: a centered title, a
// rule, then the conductor and sheath result blocks as preformatted lines.
func BuildSummary(title, conductorText, sheathText string) ([]byte, error) {
	b := newBuilder()
	b.pdf.AddPage()

	if title == "" {
		title = "Cable Short Circuit Calculation"
	}
	b.centerText(b.w/2, summaryTop, "Helvetica", "B", 14, title)
	b.line(summaryLeft, summaryTop+5, b.w-summaryRight, summaryTop+5, 0.5)

	y := summaryTop + 20
	y = b.summaryBlock("CONDUCTOR SHORT CIRCUIT CALCULATION", conductorText, y)
	b.summaryBlock("SHEATH SHORT CIRCUIT CALCULATION", sheathText, y)

	return b.output()
}

// summaryBlock draws a bold heading and the body line by line, breaking onto
// a fresh page at the bottom margin. Returns the y for the next block.
func (b *builder) summaryBlock(heading, body string, y float64) float64 {
	b.text(summaryLeft, y, "Helvetica", "B", 11, heading)
	y += 12

	if body == "" {
		body = "No data."
	}
	body = strings.ReplaceAll(body, "\r\n", "\n")
	body = strings.TrimSuffix(body, "\n")

	for _, line := range strings.Split(body, "\n") {
		if y > b.h-summaryBottom {
			b.pdf.AddPage()
			y = summaryTop
		}
		b.text(summaryLeft, y, "Helvetica", "", 9, line)
		y += 11
	}
	return y + 10
}
