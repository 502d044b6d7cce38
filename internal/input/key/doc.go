// Package key defines keyboard event value types: the Key enumeration, the
// Modifier bitmask, and the Event struct carried inside the multiplexer's
// event union. Events are plain comparable values; decoding escape sequences
// into them is the job of a platform source, not this package.
package key
