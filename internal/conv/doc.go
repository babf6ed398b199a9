// Package conv converts host values into the types the vector packages work
// with.
//
// ToDecimal promotes numeric-representable Go values (integers, floats,
// numeric strings, big integers and decimals) into decimal.Decimal without
// rounding. IntToUint32 performs the bounds-checked cast used for bitmap
// positions.
package conv
