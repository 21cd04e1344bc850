package report

import "fmt"

const sheathTitle = "SHORT CIRCUIT CURRENT CALCULATION FOR THE ALUMINIUM SHEATH AS PER IEC 60949"

// BuildSheath renders the two-page sheath calculation: the adiabatic current
// on page one, the non-adiabatic correction after IEC 60949 clause 2 on page
// two.
func BuildSheath(data Data) ([]byte, error) {
	b := newBuilder()

	b.sheathPageOne(data)
	b.sheathPageTwo(data)

	return b.output()
}

func (b *builder) sheathPageOne(data Data) {
	b.newPage()

	y := b.titleBox(sheathTitle, 10)

	cableSize := fmt.Sprintf("Cable Size : %skV, 1C x %smm²", data.Str("voltage"), data.Str("conductor_area"))
	y = b.infoRow(y, cableSize, data.Str("material"))

	params := [][2]string{
		{"Voltage Grade (kV)", data.Str("voltage") + " kV"},
		{"Conductor Cross Sectional Area (sqmm)", data.Str("conductor_area") + " mm²"},
		{"Conductor material", data.Str("material")},
		{"Sheath material", data.Str("sheath_material")},
		{"Insulation material", data.Str("insulation")},
		{"Type of Outer Sheath", data.Str("outer_sheath")},
	}
	for _, p := range params {
		b.text(margin+15, y, "Helvetica", "", 10, p[0])
		b.text(b.w-margin-100, y, "Helvetica", "", 10, "=")
		b.rightText(b.w-margin-20, y, "Helvetica", "", 10, p[1])
		y += 20
	}

	b.text(margin+15, y, "Helvetica", "B", 10, "Calculation of Sheath Cross Section area (S)")
	y += 22

	// Thickness row carries an inline delta in its label.
	prefix := fmt.Sprintf("Thickness of %s Sheath (Min.), t (", data.StrOr("sheath_material", "Aluminium"))
	x := margin + 15.0
	b.text(x, y, "Helvetica", "", 9, prefix)
	x += b.stringWidth("Helvetica", "", 9, prefix)
	b.symbol(x, y, 9, symDelta)
	x += b.symbolWidth(9, symDelta)
	b.text(x, y, "Helvetica", "", 9, ") (As per Appendix-I Taihan Data Sheet)")
	b.text(b.w-margin-100, y, "Helvetica", "", 9, "=")
	b.rightText(b.w-margin-20, y, "Helvetica", "", 9, data.Str("thickness")+" mm")
	y += 20

	geo := [][2]string{
		{"Diameter before Al sheath, d1 (As per Appendix-I Taihan Data Sheet)", data.Str("inner_d") + " mm"},
		{"Diameter after Al sheath, d2 (As per Appendix-I Taihan Data Sheet)", data.Str("outer_d") + " mm"},
	}
	for _, p := range geo {
		b.text(margin+15, y, "Helvetica", "", 9, p[0])
		b.text(b.w-margin-100, y, "Helvetica", "", 9, "=")
		b.rightText(b.w-margin-20, y, "Helvetica", "", 9, p[1])
		y += 20
	}

	b.text(margin+15, y, "Helvetica", "B", 9,
		"Geometrical cross sectional area of current carrying component i.e. Sheath Cross")
	y += 12
	b.text(margin+15, y, "Helvetica", "B", 9, "Section area (S)")
	b.text(b.w-margin-100, y, "Helvetica", "B", 9, "=")
	b.rightText(b.w-margin-20, y, "Helvetica", "B", 9, data.Str("sheath_area")+" mm²")
	y += 22

	b.text(margin+15, y, "Helvetica", "", 10, "Required SCC rating through Conductor")
	b.text(b.w-margin-100, y, "Helvetica", "", 10, "=")
	b.rightText(b.w-margin-20, y, "Helvetica", "", 10, data.Str("scc_required")+" kA")
	y += 20

	b.text(margin+15, y, "Helvetica", "", 10, "Duration of short circuit (t)")
	b.text(b.w-margin-100, y, "Helvetica", "", 10, "=")
	b.rightText(b.w-margin-20, y, "Helvetica", "", 10, data.Str("time")+" Second")
	y += 28

	b.text(margin+15, y, "Helvetica", "B", 10,
		"1. Calculation of adiabatic short-circuit current as per Clause No. 3 of IEC 60949")
	y += 28

	b.sheathAdiabaticEq(y)
	b.eqArrow(y, 14, "Eq. 1")
	y += 30

	b.text(margin+15, y, "Helvetica", "B", 10, "Where;")
	y += 22

	eqValue := func(label, value string) {
		b.text(margin+15, y, "Helvetica", "", 10, label)
		b.text(b.w-margin-100, y, "Helvetica", "", 10, "=")
		b.rightText(b.w-margin-20, y, "Helvetica", "", 10, value)
	}
	eqValueAt := func(x float64, label, value string) {
		b.text(x, y, "Helvetica", "", 10, label)
		b.text(b.w-margin-100, y, "Helvetica", "", 10, "=")
		b.rightText(b.w-margin-20, y, "Helvetica", "", 10, value)
	}

	eqValue("t  Duration of short circuit (Sec.)", data.Str("time")+" sec")
	y += 20
	eqValue("S  Geometrical cross sectional area of current carrying component", data.Str("sheath_area")+" mm²")
	y += 20
	b.symbol(margin+15, y, 10, symTheta)
	eqValueAt(margin+21, "i  Initial Temperature", data.StrOr("theta_i", "80.0")+" °C")
	y += 20

	b.text(margin+15, y, "Helvetica", "I", 9,
		"Note: Sheath initial temperature is considered assuming conductor temperature as 90.0 °C")
	y += 22

	b.symbol(margin+15, y, 10, symTheta)
	eqValueAt(margin+21, "f  Final Temperature", data.StrOr("theta_f", "250.0")+" °C")
	y += 22

	b.symbol(margin+15, y, 10, symBeta)
	eqValueAt(margin+21,
		"  Reciprocal of temperature coefficient of resistance of current carrying",
		data.Str("beta")+" K")
	y += 13
	b.text(margin+20, y, "Helvetica", "", 10,
		fmt.Sprintf("Sheath material-%s (As per Table I of IEC 60949)", data.StrOr("sheath_material", "Aluminium")))
	y += 22

	eqValue("K  Constant depending upon the material of current carrying component i.e. Sheath",
		data.Str("k_value")+" A¹/²/mm²")
	y += 13
	b.text(margin+20, y, "Helvetica", "", 10,
		fmt.Sprintf("material-%s (As per Table I of IEC 60949)", data.StrOr("sheath_material", "Aluminium")))
}

func (b *builder) sheathPageTwo(data Data) {
	b.newPage()

	y := b.titleBox(sheathTitle, 10) + 10

	b.text(margin+15, y, "Helvetica", "B", 10, "As per above Eq. 1")
	y += 22

	b.text(margin+15, y, "Helvetica", "", 10, "IAD  Short circuit current calculated on adiabatic basis")
	b.text(b.w-margin-150, y, "Helvetica", "", 10, "=")
	b.rightText(b.w-margin-20, y, "Helvetica", "", 10, data.Str("i_ad")+" kA for 1 second")
	y += 32

	b.text(margin+15, y, "Helvetica", "B", 10,
		"2. Calculation of non-adiabatic short-circuit current as per Clause No. 2 of IEC 60949")
	y += 28

	// Eq. 2: I = epsilon x IAD
	x := margin + 80.0
	b.text(x, y, "Times", "I", 16, "I")
	x += 12
	b.text(x, y, "Times", "", 16, "=")
	x += 18
	b.symbol(x, y, 16, symEpsilon)
	x += 12
	b.text(x, y, "Times", "", 16, "x")
	x += 15
	b.text(x, y, "Times", "I", 16, "I")
	x += 10
	b.text(x, y+2, "Times", "I", 11, "AD")
	b.eqArrow(y, 14, "Eq. 2")
	y += 28

	b.text(margin+15, y, "Helvetica", "B", 10, "Where;")
	y += 22

	b.symbol(margin+15, y, 10, symEpsilon)
	b.text(margin+22, y, "Helvetica", "B", 10, " Factor to allow for heat loss into adjacent component.")
	y += 22

	b.text(margin+15, y, "Helvetica", "B", 10, "As per Clause No. 6.1 of IEC 60949")
	y += 20

	x = margin + 15
	b.text(x, y, "Helvetica", "", 10, "The factor ")
	x += b.stringWidth("Helvetica", "", 10, "The factor ")
	b.symbol(x, y, 10, symEpsilon)
	x += b.symbolWidth(10, symEpsilon)
	b.text(x, y, "Helvetica", "", 10, " for sheath is determined from the following")
	y += 28

	b.sheathEpsilonEq(y)
	b.eqArrow(y, 14, "Eq. 3")
	y += 28

	b.text(margin+15, y, "Helvetica", "", 10, "the factor M is calculated as follows:")
	y += 35

	b.sheathMFactorEq(y)
	b.eqArrow(y, 14, "Eq. 4")
	y += 30

	thermal := func(sym, sub, label, value string) {
		b.symbol(margin+15, y, 9, sym)
		if sub != "" {
			b.text(margin+21, y+2, "Helvetica", "", 7, sub)
		}
		b.text(margin+28, y, "Helvetica", "", 9, label)
		b.text(b.w-margin-120, y, "Helvetica", "", 9, "=")
		b.rightText(b.w-margin-20, y, "Helvetica", "", 9, value)
		y += 22
	}

	thermal(symSigma, "2", "Volumetric specific heat of media below the sheath as per table II of IEC 60949",
		data.StrOr("sigma2", "2400000")+" J/K.m³")
	thermal(symSigma, "3", "Volumetric specific heat of media above the sheath as per table II of IEC 60949",
		data.StrOr("sigma3", "2400000")+" J/K.m³")
	thermal(symSigma, "1", "Volumetric specific heat of sheath as per table I of IEC 60949",
		data.StrOr("sigma1", "2500000")+" J/K.m³")
	thermal(symRho, "2", "Thermal resistivity of media below the sheath as per table II of IEC 60949",
		data.StrOr("rho2", "3.5")+" K.m/W")
	thermal(symRho, "3", "Thermal resistivity of media above the sheath as per table II of IEC 60949",
		data.StrOr("rho3", "3.5")+" K.m/W")
	thermal(symDelta, "", "Thickness of metallic sheath", data.Str("thickness")+" mm")

	b.text(margin+15, y, "Helvetica", "", 9,
		"F  Factor to account for imperfect thermal contact between sheath and adjacent non metallic")
	b.text(b.w-margin-150, y, "Helvetica", "", 9, "=")
	b.rightText(b.w-margin-20, y, "Helvetica", "", 9, data.StrOr("f_factor", "0.7"))
	y += 12
	b.text(margin+20, y, "Helvetica", "", 9, "materials")
	y += 18

	b.text(margin+15, y, "Helvetica", "I", 8,
		"Note: It is as recommended that a value of F=0.7 be used except that when the metallic component is completely bonded on one side to")
	y += 11
	b.text(margin+15, y, "Helvetica", "I", 8, "the adjacent medium, a value of F=0.9 can be used.")
	y += 22

	b.text(margin+15, y, "Helvetica", "B", 10, "As per above Eq. 4")
	y += 20

	b.text(margin+15, y, "Helvetica", "", 10, "The factor M")
	b.text(b.w-margin-100, y, "Helvetica", "", 10, "=")
	b.rightText(b.w-margin-20, y, "Helvetica", "", 10, data.Str("m_factor"))
	y += 22

	b.text(margin+15, y, "Helvetica", "B", 10, "As per above Eq. 3")
	y += 20

	x = b.w - margin - 180
	b.text(x, y, "Helvetica", "", 9, "The factor ")
	x += b.stringWidth("Helvetica", "", 9, "The factor ")
	b.symbol(x, y, 9, symEpsilon)
	b.text(b.w-margin-95, y, "Helvetica", "", 9, "=")
	b.rightText(b.w-margin-20, y, "Helvetica", "", 9, data.Str("epsilon"))
	y += 25

	b.text(margin+15, y, "Helvetica", "", 9, "I")
	b.text(margin+20, y+2, "Helvetica", "", 7, "AD")
	b.text(margin+35, y, "Helvetica", "", 9,
		"Short circuit current calculated on adiabatic basis (from above calculation)")
	b.text(b.w-margin-185, y, "Helvetica", "", 9, "=")
	b.rightText(b.w-margin-20, y, "Helvetica", "", 9, data.Str("i_ad")+" kA for 1 second")
	y += 25

	b.text(margin+15, y, "Helvetica", "", 9, "I")
	b.text(margin+35, y, "Helvetica", "", 9,
		"Short circuit current calculated on non adiabatic basis as per above Eq. 2")
	b.text(b.w-margin-185, y, "Helvetica", "", 9, "=")
	b.rightText(b.w-margin-20, y, "Helvetica", "", 9, data.Str("i_non_ad")+" kA for 1 second")
	y += 32

	b.text(margin+15, y, "Helvetica", "B", 10, "3. Conclusion")
	y += 22

	b.text(margin+15, y, "Helvetica", "", 10,
		fmt.Sprintf("From the calculation above, we can observe that short circuit rating of %s sheath of power cable meets",
			data.StrOr("sheath_material", "aluminium")))
	y += 14
	b.text(margin+15, y, "Helvetica", "", 10, "the requirement, ")
	indent := b.stringWidth("Helvetica", "", 10, "the requirement, ")
	b.text(margin+15+indent, y, "Helvetica", "B", 10, data.Str("scc_required")+" kA for 1 second")
}

// sheathAdiabaticEq is the page-one equation, drawn a step larger than the
// conductor variant.
func (b *builder) sheathAdiabaticEq(y float64) {
	x := margin + 40.0

	b.text(x, y, "Times", "I", 18, "I")
	x += 10
	b.text(x, y-7, "Times", "", 11, "2")
	x += 7
	b.text(x, y-2, "Times", "I", 12, "AD")
	x += 20
	b.text(x, y, "Times", "I", 18, "t")
	x += 12
	b.text(x, y, "Times", "", 18, "=")
	x += 18
	b.text(x, y, "Times", "I", 18, "K")
	x += 12
	b.text(x, y-7, "Times", "", 11, "2")
	x += 7
	b.text(x, y, "Times", "I", 18, "S")
	x += 12
	b.text(x, y-7, "Times", "", 11, "2")
	x += 12
	b.text(x, y, "Times", "", 18, "ln")
	x += 20
	b.text(x, y+3, "Times", "", 22, "(")
	x += 12

	b.symbol(x, y-10, 16, symTheta)
	x += 10
	b.text(x, y-8, "Times", "I", 11, "f")
	x += 8
	b.text(x, y-10, "Times", "", 16, "+")
	x += 12
	b.symbol(x, y-10, 16, symBeta)
	x += 10

	lineStart := x - 40
	b.line(lineStart, y-6, x, y-6, 0.8)

	x = lineStart
	b.symbol(x, y+10, 16, symTheta)
	x += 10
	b.text(x, y+12, "Times", "I", 11, "i")
	x += 8
	b.text(x, y+10, "Times", "", 16, "+")
	x += 12
	b.symbol(x, y+10, 16, symBeta)
	x += 12

	b.text(x, y+3, "Times", "", 22, ")")
}

// sheathEpsilonEq draws Eq. 3, the polynomial in M root t.
func (b *builder) sheathEpsilonEq(y float64) {
	x := margin + 40.0

	b.symbol(x, y, 14, symEpsilon)
	x += 10
	b.text(x, y, "Times", "", 14, "=")
	x += 14
	b.text(x, y, "Times", "", 14, "1")
	x += 10
	b.text(x, y, "Times", "", 14, "+")
	x += 14
	b.text(x, y, "Times", "", 14, "0.61")
	x += 24

	b.text(x, y, "Times", "I", 14, "M")
	x += 10
	b.symbol(x, y, 14, symRadical)
	b.text(x+8, y, "Times", "I", 14, "t")
	x += 22

	b.text(x, y, "Times", "", 14, "-")
	x += 14
	b.text(x, y, "Times", "", 14, "0.069")
	x += 32
	b.text(x, y, "Times", "", 14, "(")
	x += 6
	b.text(x, y, "Times", "I", 14, "M")
	x += 10
	b.symbol(x, y, 14, symRadical)
	b.text(x+8, y, "Times", "I", 14, "t")
	x += 18
	b.text(x, y, "Times", "", 14, ")")
	x += 10
	b.text(x, y-5, "Times", "", 10, "2")
	x += 10

	b.text(x, y, "Times", "", 14, "+")
	x += 14
	b.text(x, y, "Times", "", 14, "0.0043")
	x += 38
	b.text(x, y, "Times", "", 14, "(")
	x += 6
	b.text(x, y, "Times", "I", 14, "M")
	x += 10
	b.symbol(x, y, 14, symRadical)
	b.text(x+8, y, "Times", "I", 14, "t")
	x += 18
	b.text(x, y, "Times", "", 14, ")")
	x += 10
	b.text(x, y-5, "Times", "", 10, "3")
}

// sheathMFactorEq draws Eq. 4, the stacked fraction defining M.
func (b *builder) sheathMFactorEq(y float64) {
	b.text(margin+60, y, "Times", "I", 15, "M")
	b.text(margin+75, y, "Times", "", 15, "=")

	radicalTerm := func(x float64, sub string) {
		b.symbol(x, y-18, 18, symRadical)
		b.line(x+10, y-28, x+45, y-28, 0.8)
		b.symbol(x+15, y-21, 12, symSigma)
		b.text(x+22, y-19, "Times", "", 9, sub)
		b.line(x+12, y-17, x+43, y-17, 0.6)
		b.symbol(x+15, y-10, 12, symRho)
		b.text(x+22, y-8, "Times", "", 9, sub)
	}

	x1 := margin + 100.0
	radicalTerm(x1, "2")
	b.text(x1+50, y-18, "Times", "", 15, "+")
	radicalTerm(x1+70, "3")

	b.line(margin+95, y-2, margin+320, y-2, 1.2)

	x := margin + 130.0
	b.text(x, y+10, "Times", "", 13, "2")
	x += 8
	b.symbol(x, y+10, 12, symSigma)
	x += 7
	b.text(x, y+12, "Times", "", 9, "1")
	x += 5
	b.symbol(x, y+10, 12, symDelta)
	x += 8
	b.text(x, y+10, "Times", "", 12, "×")
	x += 10
	b.text(x, y+10, "Times", "", 12, "10")
	x += 15
	b.text(x, y+6, "Times", "", 9, "-3")
	x += 15
	b.text(x, y+10, "Times", "I", 13, "F")
}
