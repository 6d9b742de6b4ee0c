package errcode

// Code is a stable error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	// InvalidParams: a malformed argument or output slot.
	InvalidParams Code = "invalid_params"
	// InvalidState: operation attempted outside its lifecycle window,
	// e.g. touch_read before touch_init, or anything before init.
	InvalidState Code = "invalid_state"
	// Unsupported: capability absent on this board or disabled by
	// configuration. A legitimate negative answer, not a fault.
	Unsupported Code = "unsupported"
	// Unavailable: the underlying vendor call failed. Propagated opaquely
	// upward (the cause rides in E.Err), never reinterpreted.
	Unavailable Code = "unavailable"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	if e.Msg != "" {
		return string(e.C) + ": " + e.Msg
	}
	return string(e.C)
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}

// Wrap tags a vendor error as Unavailable, keeping the cause.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &E{C: Unavailable, Op: op, Err: err}
}
