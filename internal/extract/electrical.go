package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	ratedVoltageRe = regexp.MustCompile(`(?i)RATED\s+VOLTAGE\s*:\s*([0-9/\s.]+)kV`)
	numberRe       = regexp.MustCompile(`\d+(?:\.\d+)?`)

	// Short-circuit current phrasings, most explicit first. Checked per line
	// so a kA figure elsewhere on the sheet cannot leak in.
	sccRes = []*regexp.Regexp{
		regexp.MustCompile(`short\s+circuit\s+capacity.*?(\d+(?:[.,]\d+)?)\s*ka`),
		regexp.MustCompile(`short\s*-?\s*circuit\s+current.*?(\d+(?:[.,]\d+)?)\s*ka`),
		regexp.MustCompile(`fault\s+current.*?(\d+(?:[.,]\d+)?)\s*ka`),
		regexp.MustCompile(`i\s*k\s*=\s*(\d+(?:[.,]\d+)?)\s*ka`),
		regexp.MustCompile(`i\s*sc\s*=\s*(\d+(?:[.,]\d+)?)\s*ka`),
		regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*ka\s*/\s*\d+\s*sec`),
		regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*ka\s*/\s*\d+\s*s\b`),
	}

	durationRe = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(s|sec|secs|second|seconds)\b`)
)

// ratedVoltages parses a "RATED VOLTAGE : 76/132/145 kV" style list. The
// result is empty, never nil, so it serializes as [].
func ratedVoltages(text string) []float64 {
	nums := []float64{}
	m := ratedVoltageRe.FindStringSubmatch(text)
	if m == nil {
		return nums
	}
	for _, s := range numberRe.FindAllString(m[1], -1) {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			continue
		}
		nums = append(nums, v)
	}
	return nums
}

// mainVoltage picks the single system voltage the calculation should use.
// A rated-voltage list always wins over the header figure: standard system
// values are preferred in descending order, then the largest listed value.
func mainVoltage(headerVoltage *float64, rated []float64) *float64 {
	if len(rated) == 0 {
		return headerVoltage
	}

	preferred := []float64{400, 220, 132, 66, 33, 11}
	for _, p := range preferred {
		for _, v := range rated {
			if math.Abs(v-p) < 1e-6 {
				return f64(v)
			}
		}
	}

	max := rated[0]
	for _, v := range rated[1:] {
		if v > max {
			max = v
		}
	}
	return f64(max)
}

// shortCircuitCurrent finds an explicitly specified short-circuit rating in
// kA, or nil when the sheet has none. Values outside 1..1000 kA are treated
// as OCR noise.
func shortCircuitCurrent(text string) *float64 {
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(strings.TrimSpace(line))
		for _, re := range sccRes {
			m := re.FindStringSubmatch(lower)
			if m == nil {
				continue
			}
			v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
			if err != nil {
				continue
			}
			if v >= 1 && v <= 1000 {
				return f64(v)
			}
		}
	}
	return nil
}

// durationSeconds finds the short-circuit duration. Lines mentioning the
// fault current are searched first so an unrelated "5 seconds" elsewhere on
// the sheet does not win.
func durationSeconds(text string) *float64 {
	keywords := []string{"short", "circuit", "fault", "ik", "isc"}

	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		relevant := false
		for _, k := range keywords {
			if strings.Contains(lower, k) {
				relevant = true
				break
			}
		}
		if !relevant {
			continue
		}
		if m := durationRe.FindStringSubmatch(lower); m != nil {
			if v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64); err == nil {
				return f64(v)
			}
		}
	}

	if m := durationRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64); err == nil {
			return f64(v)
		}
	}

	return nil
}
