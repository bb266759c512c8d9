// Package numtheory holds small integer routines: greatest common divisor,
// relative primality and non-trivial factors.
//
// Errors
//
//   - ErrZeroOperand  GCD was given a zero operand; zero has no GCD under
//     Euclid's algorithm as used here.
package numtheory
