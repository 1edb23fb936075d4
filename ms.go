package ms

import "strconv"

// Kind tells which branch of MS produced an Output.
type Kind uint8

const (
	// KindMilliseconds holds the result of parsing a string input.
	KindMilliseconds Kind = iota + 1

	// KindString holds the result of formatting an integer input.
	KindString
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindMilliseconds:
		return "milliseconds"
	case KindString:
		return "string"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Input is the set of types MS dispatches on.
type Input interface {
	string | int | int32 | int64
}

// Output is the tagged result of MS. The zero value has no kind.
type Output struct {
	kind Kind
	ms   int64
	text string
}

// Milliseconds wraps a parsed value.
func Milliseconds(v int64) Output { return Output{kind: KindMilliseconds, ms: v} }

// Text wraps a formatted value.
func Text(s string) Output { return Output{kind: KindString, text: s} }

// MS parses string inputs and formats integer inputs. Only the parse branch
// can fail.
func MS[T Input](in T) (Output, error) {
	switch v := any(in).(type) {
	case string:
		n, err := Parse(v)
		if err != nil {
			return Output{}, err
		}
		return Milliseconds(n), nil
	case int:
		return Text(Format(int64(v))), nil
	case int32:
		return Text(Format(int64(v))), nil
	default:
		return Text(Format(v.(int64))), nil
	}
}

// Kind reports which variant o holds.
func (o Output) Kind() Kind { return o.kind }

// Milliseconds returns the parsed value and whether o holds one.
func (o Output) Milliseconds() (int64, bool) {
	return o.ms, o.kind == KindMilliseconds
}

// Text returns the formatted value and whether o holds one.
func (o Output) Text() (string, bool) {
	return o.text, o.kind == KindString
}

// String renders whichever variant o holds.
func (o Output) String() string {
	switch o.kind {
	case KindMilliseconds:
		return strconv.FormatInt(o.ms, 10)
	case KindString:
		return o.text
	default:
		return ""
	}
}

// MustString returns the formatted value.
//
// Unsafe convenience: it panics with a *PanicError if o does not hold a
// string. Use it only where the input kind is known, such as tests.
func (o Output) MustString() string {
	if o.kind != KindString {
		panic(&PanicError{Want: KindString, Got: o.kind})
	}
	return o.text
}

// MustMilliseconds returns the parsed value.
//
// Unsafe convenience: it panics with a *PanicError if o does not hold
// milliseconds.
func (o Output) MustMilliseconds() int64 {
	if o.kind != KindMilliseconds {
		panic(&PanicError{Want: KindMilliseconds, Got: o.kind})
	}
	return o.ms
}

// MustString unwraps a call to MS that must have formatted an integer.
// It panics with a *PanicError if err is non-nil or the variant differs.
//
//	s := ms.MustString(ms.MS(60000)) // "1 minute"
func MustString(o Output, err error) string {
	if err != nil {
		panic(&PanicError{Want: KindString, Err: err})
	}
	return o.MustString()
}

// MustMilliseconds unwraps a call to MS that must have parsed a string.
// It panics with a *PanicError if err is non-nil or the variant differs.
func MustMilliseconds(o Output, err error) int64 {
	if err != nil {
		panic(&PanicError{Want: KindMilliseconds, Err: err})
	}
	return o.MustMilliseconds()
}
