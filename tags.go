package montgomery

// LowLatencyTag and LowUopsTag are hints an exponentiation caller can pass to
// ArrayPow (see pow.go) to pick its strategy for an array of bases:
// LowLatencyTag selects the loop interleaved across bases, LowUopsTag the
// sequential per-base loop. ArrayPow checks the tag's type once per call.
// Neither changes the result; callers that don't care can pass nil and get
// LowUopsTag's default.
type LowLatencyTag struct{}

// LowUopsTag favors fewer total operations over shorter dependency chains —
// the default when no tag is supplied.
type LowUopsTag struct{}
