package montgomery

// Context is the polymorphic façade (C6) over the five range-restricted
// variants. It picks the most specialized variant whose modulus
// precondition n actually satisfies, so callers who don't need to reason
// about range tradeoffs themselves can just call New and get the fastest
// context available for their n; callers who do care can construct a
// specific variant (NewFullRange, NewQuarterRange, ...) directly instead and
// skip the façade, since every variant already satisfies Variant[T] on its
// own.
type Context[T Unsigned] struct {
	v Variant[T]
}

// New selects, in order of preference, SqrtRange, SixthRange, QuarterRange,
// HalfRange, or FullRange — the narrowest-range (and so cheapest) variant
// whose precondition n meets — and wraps it in a Context. n must be odd and
// greater than 1; New's only possible error is InvalidModulusError for n
// failing even FullRange's (weakest) precondition.
func New[T Unsigned](n T) (*Context[T], error) {
	if sr, err := NewSqrtRange[T](n); err == nil {
		return &Context[T]{v: sr}, nil
	}
	if sr, err := NewSixthRange[T](n); err == nil {
		return &Context[T]{v: sr}, nil
	}
	if qr, err := NewQuarterRange[T](n); err == nil {
		return &Context[T]{v: qr}, nil
	}
	if hr, err := NewHalfRange[T](n); err == nil {
		return &Context[T]{v: hr}, nil
	}
	fr, err := NewFullRange[T](n)
	if err != nil {
		return nil, err
	}
	return &Context[T]{v: fr}, nil
}

// NewWithVariant wraps an already-constructed variant in a Context, for
// callers that built one of the concrete variants directly (e.g. to force
// FullRange even when a narrower variant would also apply) and now want the
// façade's uniform surface, such as for Pow.
func NewWithVariant[T Unsigned](v Variant[T]) *Context[T] {
	return &Context[T]{v: v}
}

func (c *Context[T]) Modulus() T      { return c.v.Modulus() }
func (c *Context[T]) Canonical() bool { return c.v.Canonical() }

func (c *Context[T]) ConvertIn(x T) (Value[T], error) { return c.v.ConvertIn(x) }
func (c *Context[T]) ConvertOut(v Value[T]) T         { return c.v.ConvertOut(v) }

func (c *Context[T]) Unity() Value[T]  { return c.v.Unity() }
func (c *Context[T]) Zero() Value[T]   { return c.v.Zero() }
func (c *Context[T]) NegOne() Value[T] { return c.v.NegOne() }

func (c *Context[T]) Add(x, y Value[T]) Value[T]      { return c.v.Add(x, y) }
func (c *Context[T]) Subtract(x, y Value[T]) Value[T] { return c.v.Subtract(x, y) }
func (c *Context[T]) Negate(x Value[T]) Value[T]      { return c.v.Negate(x) }
func (c *Context[T]) Multiply(x, y Value[T]) Value[T] { return c.v.Multiply(x, y) }
func (c *Context[T]) Square(x Value[T]) Value[T]      { return c.v.Square(x) }

func (c *Context[T]) GetCanonical(v Value[T]) Value[T] { return c.v.GetCanonical(v) }

func (c *Context[T]) FusedMultiplyAdd(x, y, z Value[T]) Value[T] {
	return c.v.FusedMultiplyAdd(x, y, z)
}

func (c *Context[T]) FusedMultiplySubtract(x, y, z Value[T]) Value[T] {
	return c.v.FusedMultiplySubtract(x, y, z)
}
