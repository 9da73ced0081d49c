// Package special provides factorial, gamma and Bessel approximations.
//
// # Functions
//
//   - [Factorial], [FactorialFloat], [FactorialArray]: n! by the recurrence
//     n! = n·(n-1)!, 0! = 1. Negative input fails with a [*DomainError].
//   - [Gamma], [GammaArray]: Lanczos approximation (g = 5, six coefficients)
//     over real or complex input.
//   - [GammaEuler], [GammaEulerArray]: Euler's product, slow but independent.
//   - [Bessel], [BesselArray]: J_alpha(x) from its truncated power series.
//   - [BesselOrders]: J_0..J_n at a real point via an FFT of the
//     Jacobi–Anger expansion.
//
// Gamma and Bessel evaluate in complex128 and return a series.Value that
// narrows to real numbers when every element of the result is real.
//
// # Conventions
//
// Gamma returns -Inf at 0, -1, -2, ... instead of failing. Consequently the
// Bessel series drops terms whose gamma factor has a pole.
//
// # Caching
//
// Bessel asks a series.FactorialSource for m!. By default it recomputes them;
// a [FactorialCache] shared through series.WithFactorials keeps them for
// reuse with an explicit size bound:
//
//	cache := special.NewFactorialCache(200)
//	v := special.Bessel(0, 1, series.WithFactorials(cache))
//
// Building with the fastmath tag swaps the real Lanczos kernel's log, exp and
// sqrt for algo-approx approximations.
package special
