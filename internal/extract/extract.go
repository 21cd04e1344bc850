// Package extract recovers cable nameplate parameters from OCR text.
//
// Datasheets arrive as noisy OCR output with no grammar, so every field is
// derived by an independent best-effort pass over the text. A pass that finds
// nothing leaves its field nil; no input ever makes extraction fail.
package extract

import "strings"

// Parameters is the flat result of a datasheet scan. Each field is
// independently nullable; absent values serialize as JSON null, which the
// form-filling frontend relies on.
type Parameters struct {
	// Main system voltage in kV (132, 220, 400, ...).
	VoltageKV *float64 `json:"voltageKv"`

	// Short-circuit current rating and duration.
	SCCkA   *float64 `json:"sccKa"`
	TimeSec *float64 `json:"timeSec"`

	// Conductor cross-sectional area in mm².
	ConductorArea *float64 `json:"conductorArea"`

	// Metallic sheath geometry in mm.
	SheathThickness *float64 `json:"sheathThickness"`
	SheathOuterD    *float64 `json:"sheathOuterD"`
	SheathInnerD    *float64 `json:"sheathInnerD"`

	// Material is the conductor material under its legacy key; kept in sync
	// with ConductorMaterial.
	Material            *string `json:"material"`
	ConductorMaterial   *string `json:"conductorMaterial"`
	SheathMaterial      *string `json:"sheathMaterial"`
	InsulationMaterial  *string `json:"insulationMaterial"`
	OuterSheathMaterial *string `json:"outerSheathMaterial"`

	// RatedVoltages is the parsed "RATED VOLTAGE : a/b/c kV" list, empty when
	// the datasheet has none.
	RatedVoltages []float64 `json:"ratedVoltages"`

	// IEC 60949 Table I constants for the conductor material.
	KValue *float64 `json:"kValue"`
	Beta   *float64 `json:"beta"`

	// RawTextSample holds the header lines the heuristics saw, for debugging.
	RawTextSample string `json:"rawTextSample"`
}

const headerLines = 8

// CableParameters runs every extraction pass over the OCR text and assembles
// the result. It is a pure function of its input and never fails.
func CableParameters(text string) Parameters {
	lines := firstNonEmptyLines(text, headerLines)

	headerVoltage, headerMaterial := headerVoltageAndMaterial(lines)
	insulation, outerSheath := headerInsulationAndOuter(lines)
	headerConductor, sheathMaterial := headerConductorAndSheath(lines)

	// Conductor material: exact header phrase, then a scan of the whole
	// text, then whatever loose material the header mentioned.
	conductor := headerConductor
	if conductor == nil {
		conductor = conductorMaterialGlobal(text)
	}
	if conductor == nil {
		conductor = headerMaterial
	}

	rated := ratedVoltages(text)

	p := Parameters{
		VoltageKV:           mainVoltage(headerVoltage, rated),
		SCCkA:               shortCircuitCurrent(text),
		TimeSec:             durationSeconds(text),
		ConductorArea:       conductorSize(text),
		Material:            conductor,
		ConductorMaterial:   conductor,
		SheathMaterial:      sheathMaterial,
		InsulationMaterial:  insulation,
		OuterSheathMaterial: outerSheath,
		RatedVoltages:       rated,
		RawTextSample:       strings.Join(lines, "\n"),
	}

	if dims := sheathDimensions(text); dims != nil {
		p.SheathThickness = f64(dims.Thickness)
		p.SheathOuterD = f64(dims.OuterDiameter)
		p.SheathInnerD = f64(dims.InnerDiameter)
	}

	if conductor != nil {
		if k, beta, ok := materialConstants(*conductor); ok {
			p.KValue = f64(k)
			p.Beta = f64(beta)
		}
	}

	return p
}

// firstNonEmptyLines returns the first n non-empty trimmed lines; the
// datasheet title block lives there.
func firstNonEmptyLines(text string, n int) []string {
	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		lines = append(lines, ln)
		if len(lines) == n {
			break
		}
	}
	return lines
}

func f64(v float64) *float64 { return &v }

func str(s string) *string { return &s }
