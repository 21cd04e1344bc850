package extract

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	materialCopper    = "Copper"
	materialAluminium = "Aluminium"
)

var (
	headerVoltageRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*k\s*v`)

	headerConductorCopperRe    = regexp.MustCompile(`\b(copper|cu)\b[^,\n]*conductor`)
	headerConductorAluminiumRe = regexp.MustCompile(`\b(aluminium|aluminum|al)\b[^,\n]*conductor`)

	outerSheathRe = regexp.MustCompile(`(\b[a-z]+)\s+outer\s+sheath`)

	// Metallic sheath phrases, most common materials first. The matched
	// spelling is normalized to the lowercase names the reports print.
	headerSheathRes = []struct {
		re   *regexp.Regexp
		name string
	}{
		{regexp.MustCompile(`\b(aluminium|aluminum|al)\b[^,\n]*sheath`), "aluminium"},
		{regexp.MustCompile(`\b(copper|cu)\b[^,\n]*sheath`), "copper"},
		{regexp.MustCompile(`\blead\b[^,\n]*sheath`), "lead"},
		{regexp.MustCompile(`\bsteel\b[^,\n]*sheath`), "steel"},
		{regexp.MustCompile(`\bbronze\b[^,\n]*sheath`), "bronze"},
	}
)

// headerVoltageAndMaterial reads the nominal voltage and a loose material
// mention from the first two header lines, e.g. "400kV XLPE Cable".
func headerVoltageAndMaterial(lines []string) (*float64, *string) {
	n := 2
	if len(lines) < n {
		n = len(lines)
	}
	header := strings.ToLower(strings.Join(lines[:n], " "))

	var voltage *float64
	if m := headerVoltageRe.FindStringSubmatch(header); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			voltage = f64(v)
		}
	}

	var material *string
	switch {
	case strings.Contains(header, "copper") || strings.Contains(header, " cu "):
		material = str(materialCopper)
	case strings.Contains(header, "aluminium") || strings.Contains(header, "aluminum") || strings.Contains(header, " al "):
		material = str(materialAluminium)
	}

	return voltage, material
}

// headerInsulationAndOuter reads the insulation system from the first three
// header lines and the outer sheath material from an "<x> outer sheath"
// phrase anywhere in the header window.
func headerInsulationAndOuter(lines []string) (*string, *string) {
	n := 3
	if len(lines) < n {
		n = len(lines)
	}
	header := strings.ToLower(strings.Join(lines[:n], " "))

	var insulation *string
	switch {
	case strings.Contains(header, "xlpe"):
		insulation = str("XLPE")
	case strings.Contains(header, "epr"):
		insulation = str("EPR")
	case strings.Contains(header, "pvc"):
		insulation = str("PVC")
	case strings.Contains(header, "pe insulation") || strings.Contains(header, "pe insulated") || strings.Contains(header, " pe "):
		insulation = str("PE")
	case strings.Contains(header, "oil-filled") || strings.Contains(header, "oil filled"):
		insulation = str("oil")
	}

	var outer *string
	if m := outerSheathRe.FindStringSubmatch(header); m != nil {
		candidate := strings.ToUpper(m[1])
		switch candidate {
		case "PE", "PVC", "XLPE", "EPR", "OIL":
			outer = str(candidate)
		}
	}

	return insulation, outer
}

// headerConductorAndSheath looks in the first four lines for explicit
// "<material> ... conductor" and "<material> ... sheath" phrases. The sheath
// material keeps the datasheet's lowercase spelling.
func headerConductorAndSheath(lines []string) (*string, *string) {
	n := 4
	if len(lines) < n {
		n = len(lines)
	}
	header := strings.ToLower(strings.Join(lines[:n], " "))

	var conductor *string
	switch {
	case headerConductorCopperRe.MatchString(header):
		conductor = str(materialCopper)
	case headerConductorAluminiumRe.MatchString(header):
		conductor = str(materialAluminium)
	}

	var sheath *string
	for _, cand := range headerSheathRes {
		if cand.re.MatchString(header) {
			sheath = str(cand.name)
			break
		}
	}

	return conductor, sheath
}
