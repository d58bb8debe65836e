// Package services contains the authentication orchestrator: the
// stateful protocol layer sequencing registration, challenge issuance,
// and proof verification on top of the zkp primitives.
package services

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/dmitrijs2005/zkauth/internal/common"
	"github.com/dmitrijs2005/zkauth/internal/server/auth"
	"github.com/dmitrijs2005/zkauth/internal/server/config"
	"github.com/dmitrijs2005/zkauth/internal/server/registrations"
	"github.com/dmitrijs2005/zkauth/internal/server/sessions"
	"github.com/dmitrijs2005/zkauth/internal/zkp"
	"github.com/google/uuid"
)

type AuthService struct {
	params              *zkp.Params
	regs                registrations.Repository
	sessions            sessions.Repository
	jwtSecret           []byte
	challengeTTL        time.Duration
	tokenValidity       time.Duration
	allowReRegistration bool
}

func NewAuthService(params *zkp.Params, regs registrations.Repository, sess sessions.Repository, cfg *config.Config) (*AuthService, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &AuthService{
		params:              params,
		regs:                regs,
		sessions:            sess,
		jwtSecret:           []byte(cfg.SecretKey),
		challengeTTL:        cfg.ChallengeTTL,
		tokenValidity:       cfg.SessionTokenValidityDuration,
		allowReRegistration: cfg.AllowReRegistration,
	}, nil
}

// Params returns the group this service authenticates against. The
// group is fixed at construction; clients must prove against these
// exact values, so the transport publishes them through this accessor.
func (s *AuthService) Params() *zkp.Params {
	return s.params
}

// groupElement rejects values outside (0, p): the identity and
// out-of-range encodings are never valid commitments or public keys.
func (s *AuthService) groupElement(v *big.Int) error {
	if v == nil || v.Sign() <= 0 || v.Cmp(s.params.P) >= 0 {
		return zkp.ErrInvalidParameters
	}
	return nil
}

// Register stores the user's public pair (y1, y2). Duplicate
// registrations fail with ErrAlreadyRegistered unless the service was
// configured to allow overwriting.
func (s *AuthService) Register(ctx context.Context, user string, y1, y2 *big.Int) error {
	if user == "" {
		return zkp.ErrInvalidParameters
	}
	if err := s.groupElement(y1); err != nil {
		return err
	}
	if err := s.groupElement(y2); err != nil {
		return err
	}

	reg := &registrations.Registration{User: user, Y1: y1, Y2: y2}

	if s.allowReRegistration {
		return s.regs.Upsert(ctx, reg)
	}

	if err := s.regs.Create(ctx, reg); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return common.ErrAlreadyRegistered
		}
		return fmt.Errorf("%w: storing registration: %w", common.ErrorInternal, err)
	}
	return nil
}

// CreateChallenge validates that the user is registered, samples a
// uniform challenge c from [0, q), and stores the attempt under a fresh
// unpredictable auth ID. The session either becomes fully visible or is
// not stored at all.
func (s *AuthService) CreateChallenge(ctx context.Context, user string, r1, r2 *big.Int) (string, *big.Int, error) {
	if err := s.groupElement(r1); err != nil {
		return "", nil, err
	}
	if err := s.groupElement(r2); err != nil {
		return "", nil, err
	}

	if _, err := s.regs.Get(ctx, user); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrUnknownUser
		}
		return "", nil, fmt.Errorf("%w: loading registration: %w", common.ErrorInternal, err)
	}

	c, err := zkp.RandBelow(s.params.Q)
	if err != nil {
		return "", nil, fmt.Errorf("%w: sampling challenge: %w", common.ErrorInternal, err)
	}

	authID := uuid.NewString()
	session := &sessions.Session{
		AuthID:    authID,
		User:      user,
		R1:        r1,
		R2:        r2,
		C:         c,
		ExpiresAt: time.Now().Add(s.challengeTTL),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return "", nil, fmt.Errorf("%w: storing session: %w", common.ErrorInternal, err)
	}

	return authID, c, nil
}

// VerifyAuthentication consumes the challenge session named by authID
// and checks the prover's response against it. The session is removed
// whatever the outcome, so each auth ID gets exactly one verification
// attempt. On success it returns a signed session token.
func (s *AuthService) VerifyAuthentication(ctx context.Context, authID string, answer *big.Int) (string, error) {
	if answer == nil || answer.Sign() < 0 {
		return "", zkp.ErrInvalidParameters
	}

	session, err := s.sessions.Take(ctx, authID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.burnVerify(answer)
			return "", common.ErrUnknownSession
		}
		return "", fmt.Errorf("%w: taking session: %w", common.ErrorInternal, err)
	}

	reg, err := s.regs.Get(ctx, session.User)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.burnVerify(answer)
			return "", common.ErrUnknownUser
		}
		return "", fmt.Errorf("%w: loading registration: %w", common.ErrorInternal, err)
	}

	if !s.params.Verify(session.R1, session.R2, reg.Y1, reg.Y2, session.C, answer) {
		return "", common.ErrInvalidProof
	}

	token, err := auth.GenerateToken(session.User, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return "", fmt.Errorf("%w: signing session token: %w", common.ErrorInternal, err)
	}
	return token, nil
}

// burnVerify performs the same modular exponentiations as a real
// verification. Rejections that skip Verify would otherwise return
// measurably faster, letting a caller tell which auth IDs are live.
func (s *AuthService) burnVerify(answer *big.Int) {
	g := s.params
	g.Verify(g.Alpha, g.Beta, g.Alpha, g.Beta, g.Q, answer)
}
