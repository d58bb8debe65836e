// Package prover implements the client role of the Chaum-Pedersen
// authentication protocol: deriving the long-term secret from a
// password, producing the public registration pair, and answering
// server challenges.
package prover

import (
	"errors"
	"math/big"

	"github.com/dmitrijs2005/zkauth/internal/zkp"
	"golang.org/x/crypto/argon2"
)

// ErrAttemptSpent is returned when an attempt is asked to answer a
// second challenge. Answering two challenges with one nonce leaks the
// secret, so an Attempt refuses outright.
var ErrAttemptSpent = errors.New("authentication attempt already answered")

type Prover struct {
	params *zkp.Params
	x      *big.Int
}

// DeriveSecret maps the user's password to the long-term secret
// x in [0, q) with Argon2id, salted by the user name so the same
// credentials reproduce the same secret on any device.
func DeriveSecret(params *zkp.Params, user string, password []byte) *big.Int {
	key := argon2.IDKey(password, []byte(user), 1, 64*1024, 4, 32)
	x := new(big.Int).SetBytes(key)
	return x.Mod(x, params.Q)
}

func New(params *zkp.Params, user string, password []byte) *Prover {
	return &Prover{params: params, x: DeriveSecret(params, user, password)}
}

// PublicPair returns (y1, y2) = (alpha^x, beta^x) mod p, the values the
// user registers with the server.
func (p *Prover) PublicPair() (*big.Int, *big.Int) {
	return p.params.CommitmentPair(p.x)
}

// Attempt is a single login attempt bound to one fresh nonce. It
// answers exactly one challenge.
type Attempt struct {
	prover *Prover
	k      *big.Int
	R1     *big.Int
	R2     *big.Int
}

// NewAttempt samples a fresh nonce k and returns the attempt carrying
// the commitments (R1, R2) to send with the challenge request.
func (p *Prover) NewAttempt() (*Attempt, error) {
	k, err := zkp.RandBelow(p.params.Q)
	if err != nil {
		return nil, err
	}
	r1, r2 := p.params.CommitmentPair(k)
	return &Attempt{prover: p, k: k, R1: r1, R2: r2}, nil
}

// Respond computes s = (k - c*x) mod q for the server's challenge and
// invalidates the attempt.
func (a *Attempt) Respond(c *big.Int) (*big.Int, error) {
	if a.k == nil {
		return nil, ErrAttemptSpent
	}
	s := a.prover.params.Solve(a.k, c, a.prover.x)
	a.k = nil
	return s, nil
}
