package extract

import "strings"

// conductorMaterialGlobal scans the whole text for the conductor material
// when the header was inconclusive. Explicit "<material> conductor" phrases
// win; failing that, a mention of exactly one of the two materials decides.
func conductorMaterialGlobal(text string) *string {
	lower := strings.ToLower(text)

	if strings.Contains(lower, "copper conductor") || strings.Contains(lower, "cu conductor") {
		return str(materialCopper)
	}
	if strings.Contains(lower, "aluminium conductor") ||
		strings.Contains(lower, "aluminum conductor") ||
		strings.Contains(lower, "al conductor") {
		return str(materialAluminium)
	}

	hasCopper := strings.Contains(lower, "copper") || strings.Contains(lower, " cu ")
	hasAl := strings.Contains(lower, "aluminium") ||
		strings.Contains(lower, "aluminum") ||
		strings.Contains(lower, " al ")

	if hasCopper && !hasAl {
		return str(materialCopper)
	}
	if hasAl && !hasCopper {
		return str(materialAluminium)
	}

	return nil
}

// materialConstants returns the IEC 60949 Table I constants K and beta for a
// conductor material.
func materialConstants(material string) (k, beta float64, ok bool) {
	switch strings.ToLower(material) {
	case "copper":
		return 226, 234.5, true
	case "aluminium", "aluminum":
		return 148, 228, true
	}
	return 0, 0, false
}
