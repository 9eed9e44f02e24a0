package formtree

// Control is a leaf node holding a single value.
//
// Its errors are computed from the attached validators against the current
// value each time Errors is called, merged with any external errors set with
// SetErrors. A disabled control reports no errors.
type Control struct {
	status
	value      any
	validators []Validator
	external   Errors
}

var _ Node = (*Control)(nil)

// NewControl creates a pristine, untouched control.
func NewControl(value any, validators ...Validator) *Control {
	return &Control{
		value:      value,
		validators: validators,
	}
}

func (c *Control) Kind() Kind { return KindLeaf }

func (c *Control) Value() any { return c.value }

// SetValue replaces the value and drops external errors.
// It does not change the dirty flag; hosts mark dirty on user input.
func (c *Control) SetValue(v any) {
	c.value = v
	c.external = nil
}

func (c *Control) Errors() Errors {
	if c.disabled {
		return nil
	}
	sets := make([]Errors, 0, len(c.validators)+1)
	for _, v := range c.validators {
		sets = append(sets, v(c.value))
	}
	sets = append(sets, c.external)
	return MergeErrors(sets...)
}

// SetErrors attaches errors computed outside the validators, for example by
// an asynchronous or server-side check. It clears the pending flag.
func (c *Control) SetErrors(errs Errors) {
	c.external = MergeErrors(errs)
	c.pending = false
}

// Validators returns the attached validators.
func (c *Control) Validators() []Validator {
	return append([]Validator(nil), c.validators...)
}

// SetValidators replaces the attached validators.
func (c *Control) SetValidators(vs ...Validator) {
	c.validators = vs
}

func (c *Control) MarkAs(s State, opts MarkOptions) {
	c.status.mark(c, s, opts)
}

// OnStateChange registers fn for non-silent MarkAs calls and returns a
// function that removes it.
func (c *Control) OnStateChange(fn StateListener) func() {
	return c.status.subscribe(fn)
}

func (c *Control) Enable()  { c.disabled = false }
func (c *Control) Disable() { c.disabled = true }

// Empty resets the control to a nil value, untouched and pristine.
func (c *Control) Empty() {
	c.SetValue(nil)
	c.status.reset()
}

func (c *Control) ownership() *status { return &c.status }
