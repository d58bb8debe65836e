// Package zkp implements the Chaum-Pedersen zero-knowledge proof of
// knowledge of a discrete logarithm shared across two generators of a
// prime-order subgroup. A prover holding a secret x publishes
// y1 = alpha^x mod p and y2 = beta^x mod p, then proves knowledge of x
// without revealing it: commit with a one-time nonce k (r1 = alpha^k,
// r2 = beta^k), receive a random challenge c, answer s = (k - c*x) mod q.
package zkp

import (
	"crypto/rand"
	"errors"
	"math/big"
)

var (
	// ErrInvalidParameters reports a malformed group description.
	ErrInvalidParameters = errors.New("invalid group parameters")
)

var one = big.NewInt(1)

// Params describes the public group (p, q, alpha, beta) shared by all
// provers and verifiers. q is the prime order of the subgroup generated
// by alpha; beta is a second generator of the same subgroup whose
// discrete log relative to alpha is unknown to everyone.
//
// Params is immutable after construction and safe for concurrent use.
type Params struct {
	P     *big.Int
	Q     *big.Int
	Alpha *big.Int
	Beta  *big.Int
}

// Validate checks the cheaply verifiable group invariants: positive
// modulus, q | p-1, and both generators having order q modulo p.
func (g *Params) Validate() error {
	if g.P == nil || g.Q == nil || g.Alpha == nil || g.Beta == nil {
		return ErrInvalidParameters
	}
	if g.P.Sign() <= 0 || g.Q.Sign() <= 0 {
		return ErrInvalidParameters
	}

	// q must divide p-1
	pMinus1 := new(big.Int).Sub(g.P, one)
	if new(big.Int).Mod(pMinus1, g.Q).Sign() != 0 {
		return ErrInvalidParameters
	}

	// alpha and beta must be non-trivial and of order q
	for _, gen := range []*big.Int{g.Alpha, g.Beta} {
		if gen.Cmp(one) <= 0 || gen.Cmp(g.P) >= 0 {
			return ErrInvalidParameters
		}
		if Exponentiate(gen, g.Q, g.P).Cmp(one) != 0 {
			return ErrInvalidParameters
		}
	}

	return nil
}

// Exponentiate returns base^exponent mod modulus. The modulus must be
// positive; operands are arbitrary-precision non-negative integers.
func Exponentiate(base, exponent, modulus *big.Int) *big.Int {
	return new(big.Int).Exp(base, exponent, modulus)
}

// CommitmentPair returns (alpha^exp mod p, beta^exp mod p). With the
// secret x it yields the public pair (y1, y2); with a fresh nonce k it
// yields the proof commitments (r1, r2).
func (g *Params) CommitmentPair(exp *big.Int) (*big.Int, *big.Int) {
	return Exponentiate(g.Alpha, exp, g.P), Exponentiate(g.Beta, exp, g.P)
}

// Solve computes the proof response s = (k - c*x) mod q.
//
// The operands are unsigned magnitudes, so the subtraction is done in
// two branches to avoid underflow: when k < c*x the result is
// q - ((c*x - k) mod q), which is the same residue as signed modular
// subtraction.
//
// The nonce k must be sampled fresh from [0, q) for every proof
// attempt. Reusing k across two challenges with the same x lets anyone
// holding both transcripts solve for x.
func (g *Params) Solve(k, c, x *big.Int) *big.Int {
	cx := new(big.Int).Mul(c, x)

	s := new(big.Int)
	if k.Cmp(cx) >= 0 {
		s.Sub(k, cx)
		return s.Mod(s, g.Q)
	}

	s.Sub(cx, k)
	s.Mod(s, g.Q)
	s.Sub(g.Q, s)
	return s.Mod(s, g.Q)
}

// Verify checks the two proof equations
//
//	r1 == alpha^s * y1^c mod p
//	r2 == beta^s  * y2^c mod p
//
// and reports whether both hold. Callers get a single boolean; which
// equation failed is deliberately not exposed.
func (g *Params) Verify(r1, r2, y1, y2, c, s *big.Int) bool {
	lhs1 := new(big.Int).Mul(Exponentiate(g.Alpha, s, g.P), Exponentiate(y1, c, g.P))
	lhs1.Mod(lhs1, g.P)

	lhs2 := new(big.Int).Mul(Exponentiate(g.Beta, s, g.P), Exponentiate(y2, c, g.P))
	lhs2.Mod(lhs2, g.P)

	cond1 := r1.Cmp(lhs1) == 0
	cond2 := r2.Cmp(lhs2) == 0
	return cond1 && cond2
}

// RandBelow samples a uniform integer from [0, bound) using the
// operating system's CSPRNG. It is safe for concurrent use.
func RandBelow(bound *big.Int) (*big.Int, error) {
	if bound == nil || bound.Sign() <= 0 {
		return nil, ErrInvalidParameters
	}
	return rand.Int(rand.Reader, bound)
}
