// Package services composes the prover with the transport into the
// two user-facing operations: enroll and log in.
package services

import (
	"context"
	"math/big"

	"github.com/dmitrijs2005/zkauth/internal/client/prover"
	"github.com/dmitrijs2005/zkauth/internal/zkp"
)

// api is the transport surface the auth flow needs; satisfied by
// client.GRPCClient.
type api interface {
	Register(ctx context.Context, user string, y1, y2 *big.Int) error
	CreateChallenge(ctx context.Context, user string, r1, r2 *big.Int) (string, *big.Int, error)
	VerifyAuthentication(ctx context.Context, authID string, answer *big.Int) (string, error)
}

type AuthService struct {
	api    api
	params *zkp.Params
}

func NewAuthService(api api, params *zkp.Params) *AuthService {
	return &AuthService{api: api, params: params}
}

// Register derives the secret from the credentials and enrolls the
// public pair with the server. The secret never leaves this process.
func (s *AuthService) Register(ctx context.Context, user string, password []byte) error {
	p := prover.New(s.params, user, password)
	y1, y2 := p.PublicPair()
	return s.api.Register(ctx, user, y1, y2)
}

// Login runs one challenge-response round and returns the session
// token issued by the server.
func (s *AuthService) Login(ctx context.Context, user string, password []byte) (string, error) {
	p := prover.New(s.params, user, password)

	attempt, err := p.NewAttempt()
	if err != nil {
		return "", err
	}

	authID, c, err := s.api.CreateChallenge(ctx, user, attempt.R1, attempt.R2)
	if err != nil {
		return "", err
	}

	answer, err := attempt.Respond(c)
	if err != nil {
		return "", err
	}

	return s.api.VerifyAuthentication(ctx, authID, answer)
}
