package design_test

import (
	"fmt"

	"github.com/cwbudde/algo-pdm/dsp/filter/biquad"
	"github.com/cwbudde/algo-pdm/dsp/filter/design"
)

func ExampleBesselLP() {
	// Reconstruction lowpass for a 10 MHz pulse-density stream:
	// 4th order, -3 dB at 20 kHz.
	sections, err := design.BesselLP(20000, 4, 10e6)
	if err != nil {
		fmt.Println(err)
		return
	}

	cascade := biquad.NewCascade(sections)
	fmt.Printf("sections: %d\n", cascade.NumSections())
	fmt.Printf("order: %d\n", cascade.Order())
	fmt.Printf("cutoff: %.2f dB\n", cascade.MagnitudeDB(20000, 10e6))
	// Output:
	// sections: 2
	// order: 4
	// cutoff: -3.01 dB
}

func ExampleParseFamily() {
	f, err := design.ParseFamily("Bessel")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(f)

	_, err = design.ParseFamily("chebyshev")
	fmt.Println(err)
	// Output:
	// bessel
	// design: unknown filter family: "chebyshev"
}
