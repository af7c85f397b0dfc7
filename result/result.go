package result

// A Result carries the outcome of a computation that may fail: Ok with a
// value, or Err with an error explaining the failure. It is the two-case
// companion of maybe.Maybe for operations whose failure has a reason worth
// keeping.
//
// Clients consume a Result with Unwrap (the bridge to idiomatic Go error
// handling), with WithDefault, or by exhaustive two-case analysis:
//
//	var v int
//	var err error
//	switch m := r.Match(); m {
//	case m.Ok(&v):
//	    …
//	case m.Err(&err):
//	    …
//	}
type Result[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Unwrap() (T, error)
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps the value of a successful computation.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps the error of a failed computation.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

// WithDefault returns the Ok value, or def for an Err.
func (r result[T]) WithDefault(def T) T {
	if r.err == nil {
		return r.value
	}
	return def
}

// Unwrap returns the value and error as an ordinary Go pair.
func (r result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// Map applies f to the Ok value; an Err passes through untouched.
func Map[T, S any](f func(T) S, r Result[T]) Result[S] {
	v, err := r.Unwrap()
	if err != nil {
		return Err[S](err)
	}
	return Ok(f(v))
}

// AndThen chains a fallible step onto an Ok value.
func AndThen[T, S any](f func(T) Result[S], r Result[T]) Result[S] {
	v, err := r.Unwrap()
	if err != nil {
		return Err[S](err)
	}
	return f(v)
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
