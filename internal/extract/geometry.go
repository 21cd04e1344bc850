package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	conductorSizeRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)CONDUCTOR\s+SIZE\s*[:：]\s*(\d+(?:\.\d+)?)\s*(?:SQ)?\.?mm`),
		regexp.MustCompile(`(?i)1C?\s*[x×]\s*(\d+(?:\.\d+)?)\s*mm`),
		regexp.MustCompile(`(?i)cross\s+section(?:al)?\s+area\s*[:：]\s*(\d+(?:\.\d+)?)\s*mm`),
	}

	sheathNumberRe = regexp.MustCompile(`\d+\.?\d*`)
)

// conductorSize reads the conductor cross-section in mm² from forms like
// "CONDUCTOR SIZE : 3000 SQmm", "1C x 2500mm²" or "cross sectional area:
// 3000 mm".
func conductorSize(text string) *float64 {
	for _, re := range conductorSizeRes {
		if m := re.FindStringSubmatch(text); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				return f64(v)
			}
		}
	}
	return nil
}

type sheathDims struct {
	Thickness     float64
	OuterDiameter float64
	InnerDiameter float64
}

// sheathDimensions recovers the metallic sheath thickness and outer diameter
// from a table row. OCR mangles these rows badly, so the numbers on a
// candidate line are tried several ways: the last two columns first, then
// every pair that fits plausible ranges. A thickness read without its
// decimal point (15 for 1.5) is shifted back. Returns nil when no line
// yields a plausible geometry.
func sheathDimensions(text string) *sheathDims {
	lines := strings.Split(text, "\n")

	// Candidate rows named "METALLIC ... SHEATH".
	for _, line := range lines {
		upper := strings.ToUpper(line)
		if !strings.Contains(upper, "METALLIC") || !strings.Contains(upper, "SHEATH") {
			continue
		}
		nums := parseNumbers(sheathNumberRe.FindAllString(line, -1))
		if len(nums) < 2 {
			continue
		}
		if d := lastTwoColumns(nums); d != nil {
			return d
		}
		if d := pairScan(nums); d != nil {
			return d
		}
	}

	// Table row "6)" is the sheath row on the common datasheet layout.
	for _, line := range lines {
		if !strings.Contains(line, "6)") && !strings.Contains(line, "6 )") {
			continue
		}
		raw := sheathNumberRe.FindAllString(line, -1)
		if len(raw) < 3 {
			continue
		}
		if raw[0] == "6" {
			raw = raw[1:]
		}
		nums := parseNumbers(raw)
		if len(nums) < 2 {
			continue
		}
		if d := lastTwoColumns(nums); d != nil {
			return d
		}
	}

	return nil
}

func parseNumbers(raw []string) []float64 {
	var nums []float64
	for _, s := range raw {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			continue
		}
		nums = append(nums, v)
	}
	return nums
}

// lastTwoColumns treats the final two numbers on the row as thickness and
// outer diameter.
func lastTwoColumns(nums []float64) *sheathDims {
	thickness := nums[len(nums)-2]
	outer := nums[len(nums)-1]

	if thickness >= 10 {
		thickness /= 10
	}

	if thickness < 0.5 || thickness > 5.0 || outer < 50 || outer > 200 {
		return nil
	}
	inner := outer - 2*thickness
	if inner <= 0 {
		return nil
	}
	return &sheathDims{Thickness: thickness, OuterDiameter: outer, InnerDiameter: inner}
}

// pairScan tries every ordered pair of numbers on the row as (thickness,
// outer diameter), in either column order, including a thickness that lost
// its decimal point.
func pairScan(nums []float64) *sheathDims {
	for j := 0; j < len(nums); j++ {
		for k := j + 1; k < len(nums); k++ {
			n1, n2 := nums[j], nums[k]
			switch {
			case 0.5 <= n1 && n1 <= 5.0 && 50 <= n2 && n2 <= 200 && n2 > n1*10:
				if inner := n2 - 2*n1; inner > 0 {
					return &sheathDims{Thickness: n1, OuterDiameter: n2, InnerDiameter: inner}
				}
			case 50 <= n1 && n1 <= 200 && 0.5 <= n2 && n2 <= 5.0 && n1 > n2*10:
				if inner := n1 - 2*n2; inner > 0 {
					return &sheathDims{Thickness: n2, OuterDiameter: n1, InnerDiameter: inner}
				}
			case 5 <= n1 && n1 <= 50 && 50 <= n2 && n2 <= 200:
				t := n1 / 10
				if 0.5 <= t && t <= 5.0 {
					if inner := n2 - 2*t; inner > 0 {
						return &sheathDims{Thickness: t, OuterDiameter: n2, InnerDiameter: inner}
					}
				}
			}
		}
	}
	return nil
}
