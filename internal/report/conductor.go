package report

import "fmt"

// BuildConductor renders the one-page adiabatic short-circuit calculation
// for the conductor.
func BuildConductor(data Data) ([]byte, error) {
	b := newBuilder()
	b.newPage()

	y := b.titleBox("SHORT CIRCUIT CURRENT CALCULATION FOR CONDUCTOR AS PER IEC 60949", 11)

	cableSize := fmt.Sprintf("Cable Size : %skV, 1C x %smm²", data.Str("voltage"), data.Str("area"))
	y = b.infoRow(y, cableSize, data.Str("material"))

	params := [][2]string{
		{"Voltage Grade (kV)", data.Str("voltage") + " kV"},
		{"Conductor Cross Sectional Area (sqmm)", data.Str("area") + " mm²"},
		{"Conductor material", data.Str("material")},
		{"Insulation material", data.Str("insulation")},
		{"Type of Outer Sheath", data.Str("outer_sheath")},
		{"Required SCC rating through Conductor", data.Str("scc_required") + " kA"},
		{"Duration of short circuit (t)", data.Str("time") + " Second"},
	}
	for _, p := range params {
		b.text(margin+15, y, "Helvetica", "", 9, p[0])
		b.text(b.w-margin-120, y, "Helvetica", "", 9, "=")
		b.rightText(b.w-margin-15, y, "Helvetica", "", 9, p[1])
		y += 18
	}
	y += 5

	b.text(margin+15, y, "Helvetica", "I", 8,
		"Note: As per IEC 60949, only adiabatic method is used to calculate short circuit current as, for the conductors with the ratio of short-")
	y += 10
	b.text(margin+15, y, "Helvetica", "I", 8,
		"circuit duration to conductor cross-sectional area less than 0.1 s/mm², the improvement in short circuit current is negligible.")
	y += 25

	b.text(margin+15, y, "Helvetica", "B", 10,
		"1. Calculation of adiabatic short-circuit current as per Clause No. 3 of IEC 60949")
	y += 30

	b.conductorAdiabaticEq(y)
	b.eqArrow(y, 12, "Eq. 1")
	y += 30

	b.text(margin+15, y, "Helvetica", "", 10, "Where;")
	y += 25

	eqValue := func(label, value string) {
		b.text(margin+15, y, "Helvetica", "", 10, label)
		b.text(b.w-margin-100, y, "Helvetica", "", 10, "=")
		b.rightText(b.w-margin-20, y, "Helvetica", "", 10, value)
	}

	eqValue("t  Duration of short circuit (Sec.)", data.Str("time")+" sec")
	y += 22
	eqValue("S  Geometrical Cross sectional area of current carrying component", data.Str("area")+" mm²")
	y += 22

	b.symbol(margin+15, y, 10, symTheta)
	eqValueAt := func(x float64, label, value string) {
		b.text(x, y, "Helvetica", "", 10, label)
		b.text(b.w-margin-100, y, "Helvetica", "", 10, "=")
		b.rightText(b.w-margin-20, y, "Helvetica", "", 10, value)
	}
	eqValueAt(margin+21, "i  Initial Temperature", data.StrOr("theta_i", "90.0")+" °C")
	y += 22

	b.symbol(margin+15, y, 10, symTheta)
	eqValueAt(margin+21, "f  Final Temperature", data.StrOr("theta_f", "250.0")+" °C")
	y += 22

	b.symbol(margin+15, y, 10, symBeta)
	eqValueAt(margin+21,
		"  Reciprocal of temperature coefficient of resistance of current carr",
		data.Str("beta")+" K")
	y += 11
	b.text(margin+20, y, "Helvetica", "", 10,
		fmt.Sprintf("Conductor material-%s (As per Table I of IEC 60949)", data.Str("material")))
	y += 18

	eqValue("K  Constant depending upon the material of current carrying component i.e. ",
		data.Str("k_value")+" A¹/²/mm²")
	y += 11
	b.text(margin+20, y, "Helvetica", "", 10,
		fmt.Sprintf("material-%s (As per Table I of IEC 60949)", data.Str("material")))
	y += 25

	y += 5
	b.text(margin+15, y, "Helvetica", "B", 10, "As per above Eq. 1")
	y += 22

	b.text(margin+15, y, "Helvetica", "", 10, "IAD  Short circuit current calculated on adiabatic basis")
	b.text(b.w-margin-150, y, "Helvetica", "", 10, "=")
	b.rightText(b.w-margin-20, y, "Helvetica", "", 10, data.Str("i_ad")+" kA for 1 second")
	y += 30

	b.text(margin+15, y, "Helvetica", "B", 10, "2. Conclusion")
	y += 20

	b.text(margin+15, y, "Helvetica", "", 10,
		"From the calculation above, we can observe that short circuit rating of power cable on adiabatic basis meets")
	y += 12
	b.text(margin+15, y, "Helvetica", "", 10, "the requirement, ")
	indent := b.stringWidth("Helvetica", "", 10, "the requirement, ")
	b.text(margin+15+indent, y, "Helvetica", "B", 10, data.Str("scc_required")+" kA for 1 second.")

	return b.output()
}

// conductorAdiabaticEq draws I²ADt = K²S² ln((θf+β)/(θi+β)) on the equation
// baseline y.
func (b *builder) conductorAdiabaticEq(y float64) {
	x := margin + 60.0

	b.text(x, y, "Times", "I", 16, "I")
	x += 8
	b.text(x, y-6, "Times", "", 10, "2")
	x += 6
	b.text(x, y-1, "Times", "I", 11, "AD")
	x += 18
	b.text(x, y, "Times", "I", 16, "t")
	x += 10

	b.text(x, y, "Times", "", 16, "=")
	x += 15

	b.text(x, y, "Times", "I", 16, "K")
	x += 10
	b.text(x, y-6, "Times", "", 10, "2")
	x += 6
	b.text(x, y, "Times", "I", 16, "S")
	x += 10
	b.text(x, y-6, "Times", "", 10, "2")
	x += 10

	b.text(x, y, "Times", "", 16, "ln")
	x += 18

	b.text(x, y+2, "Times", "", 20, "(")
	x += 10

	b.symbol(x, y-8, 14, symTheta)
	x += 8
	b.text(x, y-6, "Times", "I", 10, "f")
	x += 8
	b.text(x, y-8, "Times", "", 14, "+")
	x += 10
	b.symbol(x, y-8, 14, symBeta)
	x += 8

	lineStart := x - 34
	b.line(lineStart, y-5, x, y-5, 0.5)

	x = lineStart
	b.symbol(x, y+8, 14, symTheta)
	x += 8
	b.text(x, y+10, "Times", "I", 10, "i")
	x += 8
	b.text(x, y+8, "Times", "", 14, "+")
	x += 10
	b.symbol(x, y+8, 14, symBeta)
	x += 10

	b.text(x, y+2, "Times", "", 20, ")")
}
