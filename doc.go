// Package ms converts between human-readable duration literals such as
// "2 days", "1.5h" or "-500 ms" and signed millisecond counts.
//
// Parse turns a literal into milliseconds, Format renders milliseconds back
// into a short literal, and MS dispatches on the input type and returns a
// tagged Output.
//
//	n, err := ms.Parse("2 days")  // 172800000
//	s := ms.Format(60000)         // "1 minute"
//
// All functions are pure and safe for concurrent use.
package ms
