// Package taylor approximates exp, sin, cos and tan with truncated Maclaurin
// series.
//
// Every function works on a whole [ndarray.Array] at once: running power and
// factorial accumulators are updated once per term across the flat data, so
// no power or factorial is recomputed from scratch. Scalar helpers lift their
// argument to a rank-0 array and share the same path.
//
// Sine and cosine reduce their argument into [-π, π) first, so the default of
// 20 term pairs is accurate for any finite input. Tangent is sin/cos; where
// |cos| < 1e-10 the element becomes NaN and its neighbours are unaffected.
// None of the functions return errors.
package taylor
