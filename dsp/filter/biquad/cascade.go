package biquad

// Cascade is an ordered series of biquad sections where each section's
// output feeds the next. It is the runtime form of higher-order filters
// factored into second-order sections: a sixth-order lowpass runs as
// three sections, a fifth-order one as two sections plus a first-order
// remainder.
//
// All delay-line state lives inside the Cascade. A Cascade is not safe
// for concurrent use; independent streams need independent Cascades.
type Cascade struct {
	sections []Section
}

// NewCascade creates a cascade from one or more coefficient sets.
// Each Coefficients value becomes one Section, processed in slice order.
func NewCascade(coeffs []Coefficients) *Cascade {
	c := &Cascade{
		sections: make([]Section, len(coeffs)),
	}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}

	return c
}

// ProcessSample cascades one input sample through all sections in order.
func (c *Cascade) ProcessSample(x float64) float64 {
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters a block in-place through the full cascade.
// State carries over between calls: filtering a signal chunk by chunk
// yields the same output as filtering it in one block.
func (c *Cascade) ProcessBlock(buf []float64) {
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// Reset clears all section states.
func (c *Cascade) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// Order returns the total filter order. Full biquad sections count as 2,
// first-order remainder sections (B2 = A2 = 0) as 1.
func (c *Cascade) Order() int {
	order := 0
	for i := range c.sections {
		if c.sections[i].FirstOrder() {
			order++
		} else {
			order += 2
		}
	}

	return order
}

// NumSections returns the number of biquad sections.
func (c *Cascade) NumSections() int {
	return len(c.sections)
}

// Section returns a pointer to the i-th section for inspection.
func (c *Cascade) Section(i int) *Section {
	return &c.sections[i]
}

// State returns a snapshot of all section delay-line states.
func (c *Cascade) State() [][2]float64 {
	states := make([][2]float64, len(c.sections))
	for i := range c.sections {
		states[i] = c.sections[i].State()
	}

	return states
}

// SetState restores previously saved section states.
// The slice length must match NumSections.
func (c *Cascade) SetState(states [][2]float64) {
	for i := range c.sections {
		c.sections[i].SetState(states[i])
	}
}
