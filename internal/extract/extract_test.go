package extract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// datasheetEHV mimics the OCR output of a typical EHV cable datasheet scan:
// table rows first, ratings below, uneven casing and spacing throughout.
const datasheetEHV = `=== PAGE 1 ===
CROSS SECTION OF 400KV 1CX2500SQ.MM AL XLPE INSULATED CABLE
6 segment Aluminium conductor, XLPE insulation, corrugated Aluminium sheath and PE outer sheath

RATED VOLTAGE : 220/400/420 KV
CONDUCTOR SIZE : 2500 SQ.MM

NO DESCRIPTION                          THICKNESS   DIAMETER
1) CONDUCTOR                                        61.0
5) INSULATION SCREEN                    1.2         88.6
6) METALLIC SHEATH (ALUMINIUM)          17          97.04
7) OUTER SHEATH (PE)                    4.5         106.2

SHORT CIRCUIT CAPACITY FOR METALLIC SHEATH : 125 KA / 1 SEC
`

func TestCableParameters(t *testing.T) {
	t.Run("full datasheet", func(t *testing.T) {
		p := CableParameters(datasheetEHV)

		require.NotNil(t, p.VoltageKV)
		assert.Equal(t, 400.0, *p.VoltageKV)
		assert.Equal(t, []float64{220, 400, 420}, p.RatedVoltages)

		require.NotNil(t, p.SCCkA)
		assert.Equal(t, 125.0, *p.SCCkA)
		require.NotNil(t, p.TimeSec)
		assert.Equal(t, 1.0, *p.TimeSec)

		require.NotNil(t, p.ConductorArea)
		assert.Equal(t, 2500.0, *p.ConductorArea)

		require.NotNil(t, p.SheathThickness)
		assert.InDelta(t, 1.7, *p.SheathThickness, 1e-9)
		require.NotNil(t, p.SheathOuterD)
		assert.Equal(t, 97.04, *p.SheathOuterD)
		require.NotNil(t, p.SheathInnerD)
		assert.InDelta(t, 93.64, *p.SheathInnerD, 1e-9)

		require.NotNil(t, p.ConductorMaterial)
		assert.Equal(t, "Aluminium", *p.ConductorMaterial)
		require.NotNil(t, p.Material)
		assert.Equal(t, "Aluminium", *p.Material)
		require.NotNil(t, p.SheathMaterial)
		assert.Equal(t, "aluminium", *p.SheathMaterial)
		require.NotNil(t, p.InsulationMaterial)
		assert.Equal(t, "XLPE", *p.InsulationMaterial)
		require.NotNil(t, p.OuterSheathMaterial)
		assert.Equal(t, "PE", *p.OuterSheathMaterial)

		require.NotNil(t, p.KValue)
		assert.Equal(t, 148.0, *p.KValue)
		require.NotNil(t, p.Beta)
		assert.Equal(t, 228.0, *p.Beta)

		assert.Contains(t, p.RawTextSample, "CROSS SECTION OF 400KV")
	})

	t.Run("copper cable", func(t *testing.T) {
		text := `132KV CABLE WITH COPPER CONDUCTOR AND LEAD SHEATH
RATED VOLTAGE : 76/132/145 kV
Cross sectional area : 1600 mm
Fault current: 50 kA for 3 seconds`

		p := CableParameters(text)

		require.NotNil(t, p.VoltageKV)
		assert.Equal(t, 132.0, *p.VoltageKV)
		require.NotNil(t, p.ConductorMaterial)
		assert.Equal(t, "Copper", *p.ConductorMaterial)
		require.NotNil(t, p.ConductorArea)
		assert.Equal(t, 1600.0, *p.ConductorArea)
		require.NotNil(t, p.SCCkA)
		assert.Equal(t, 50.0, *p.SCCkA)
		require.NotNil(t, p.TimeSec)
		assert.Equal(t, 3.0, *p.TimeSec)
		require.NotNil(t, p.KValue)
		assert.Equal(t, 226.0, *p.KValue)
		require.NotNil(t, p.Beta)
		assert.Equal(t, 234.5, *p.Beta)

		// "copper ... sheath" wins over "lead sheath" in the header chain.
		require.NotNil(t, p.SheathMaterial)
		assert.Equal(t, "copper", *p.SheathMaterial)

		assert.Nil(t, p.SheathThickness)
		assert.Nil(t, p.SheathOuterD)
		assert.Nil(t, p.SheathInnerD)
	})

	t.Run("empty text", func(t *testing.T) {
		p := CableParameters("")

		assert.Nil(t, p.VoltageKV)
		assert.Nil(t, p.SCCkA)
		assert.Nil(t, p.TimeSec)
		assert.Nil(t, p.ConductorArea)
		assert.Nil(t, p.SheathThickness)
		assert.Nil(t, p.ConductorMaterial)
		assert.Nil(t, p.KValue)
		assert.NotNil(t, p.RatedVoltages)
		assert.Empty(t, p.RatedVoltages)
		assert.Equal(t, "", p.RawTextSample)
	})
}

func TestParametersJSON(t *testing.T) {
	t.Run("absent fields are null", func(t *testing.T) {
		raw, err := json.Marshal(CableParameters(""))
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(raw, &m))

		for _, key := range []string{
			"voltageKv", "sccKa", "timeSec", "conductorArea",
			"sheathThickness", "sheathOuterD", "sheathInnerD",
			"material", "conductorMaterial", "sheathMaterial",
			"insulationMaterial", "outerSheathMaterial", "kValue", "beta",
		} {
			v, ok := m[key]
			require.True(t, ok, "missing key %q", key)
			assert.Nil(t, v, "key %q", key)
		}

		assert.Equal(t, []any{}, m["ratedVoltages"])
		assert.Equal(t, "", m["rawTextSample"])
	})

	t.Run("present fields keep their keys", func(t *testing.T) {
		raw, err := json.Marshal(CableParameters(datasheetEHV))
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(raw, &m))

		assert.Equal(t, 400.0, m["voltageKv"])
		assert.Equal(t, 125.0, m["sccKa"])
		assert.Equal(t, "Aluminium", m["conductorMaterial"])
		assert.Equal(t, []any{220.0, 400.0, 420.0}, m["ratedVoltages"])
	})
}

func TestHeaderPasses(t *testing.T) {
	t.Run("voltage spelled with space", func(t *testing.T) {
		v, mat := headerVoltageAndMaterial([]string{"220 kV copper cable"})
		require.NotNil(t, v)
		assert.Equal(t, 220.0, *v)
		require.NotNil(t, mat)
		assert.Equal(t, "Copper", *mat)
	})

	t.Run("material abbreviations need spacing", func(t *testing.T) {
		_, mat := headerVoltageAndMaterial([]string{"66kV AL cable"})
		require.NotNil(t, mat)
		assert.Equal(t, "Aluminium", *mat)

		_, mat = headerVoltageAndMaterial([]string{"66kV ALPHA cable"})
		assert.Nil(t, mat)
	})

	t.Run("voltage only in first two lines", func(t *testing.T) {
		v, _ := headerVoltageAndMaterial([]string{"datasheet", "rev 2", "400kV cable"})
		assert.Nil(t, v)
	})

	t.Run("insulation precedence", func(t *testing.T) {
		ins, _ := headerInsulationAndOuter([]string{"cable with XLPE insulation and PVC outer sheath"})
		require.NotNil(t, ins)
		assert.Equal(t, "XLPE", *ins)

		ins, _ = headerInsulationAndOuter([]string{"PE insulated submarine cable"})
		require.NotNil(t, ins)
		assert.Equal(t, "PE", *ins)

		ins, _ = headerInsulationAndOuter([]string{"self contained oil-filled cable"})
		require.NotNil(t, ins)
		assert.Equal(t, "oil", *ins)
	})

	t.Run("outer sheath accepts known materials only", func(t *testing.T) {
		_, outer := headerInsulationAndOuter([]string{"cable with PVC outer sheath"})
		require.NotNil(t, outer)
		assert.Equal(t, "PVC", *outer)

		_, outer = headerInsulationAndOuter([]string{"cable with rubber outer sheath"})
		assert.Nil(t, outer)
	})

	t.Run("conductor and sheath phrases", func(t *testing.T) {
		cond, sheath := headerConductorAndSheath([]string{
			"6 segment copper conductor, smooth aluminium sheath",
		})
		require.NotNil(t, cond)
		assert.Equal(t, "Copper", *cond)
		require.NotNil(t, sheath)
		assert.Equal(t, "aluminium", *sheath)
	})

	t.Run("comma stops a conductor phrase", func(t *testing.T) {
		cond, _ := headerConductorAndSheath([]string{"copper wires, segmental conductor"})
		assert.Nil(t, cond)
	})
}
