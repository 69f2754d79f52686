// Package continued converts between continued fraction coefficient streams
// and positional digit streams in an arbitrary integer base.
//
// Version: 0.1.0
//
// Every conversion is online and exact: it pulls only as many input symbols
// as it needs to prove the next output symbol, and all arithmetic is done on
// arbitrary precision integers and rationals. Inputs may be finite (the value
// is rational) or unbounded (program-defined generators such as Golden).
//
// The package offers five conversions:
//   - CoefficientsToRational: fold a finite coefficient stream into a Rational
//   - RationalToCoefficients: Euclidean expansion of a Rational
//   - CoefficientsToDigits: coefficient stream to digit stream
//   - DigitsToCoefficients: digit stream to coefficient stream
//   - RationalToDigits: long division of a Rational
//
// Streams are explicit iterator objects (see Stream). Nothing is computed
// until the consumer calls Next, and a consumer that stops pulling simply
// drops the stream; there is nothing to close.
package continued

// Version represents the current version of the gocontinued library.
const Version = "0.1.0"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}
