/*
Package resolve is the rating resolution engine.

It maps a pointer sample over a row of stars into a rating value, normalizes
externally supplied ratings and computes how much of each glyph a surface
should fill. Every function is pure: the same inputs always produce the same
rating, and no function reports an error. Out-of-range inputs are clamped.
*/
package resolve
