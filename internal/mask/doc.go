// Package mask compiles literal format specifications such as "AAA/##/##"
// into an ordered breakdown of typed and literal segments, and uses that
// breakdown to split stored values into per-segment fragments, reassemble
// posted fragments into a canonical stored string, and validate fragments
// against their segment's character class.
//
// The public surface is re-exported by pkg/mask.
package mask
