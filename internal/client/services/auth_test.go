package services

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/dmitrijs2005/zkauth/internal/common"
	"github.com/dmitrijs2005/zkauth/internal/server/config"
	"github.com/dmitrijs2005/zkauth/internal/server/registrations"
	serversvc "github.com/dmitrijs2005/zkauth/internal/server/services"
	"github.com/dmitrijs2005/zkauth/internal/server/sessions"
	"github.com/dmitrijs2005/zkauth/internal/zkp"
)

// loopback satisfies the api interface by calling a real server-side
// AuthService directly, so the whole protocol runs in-process.
type loopback struct {
	svc *serversvc.AuthService
}

func (l *loopback) Register(ctx context.Context, user string, y1, y2 *big.Int) error {
	return l.svc.Register(ctx, user, y1, y2)
}

func (l *loopback) CreateChallenge(ctx context.Context, user string, r1, r2 *big.Int) (string, *big.Int, error) {
	return l.svc.CreateChallenge(ctx, user, r1, r2)
}

func (l *loopback) VerifyAuthentication(ctx context.Context, authID string, answer *big.Int) (string, error) {
	return l.svc.VerifyAuthentication(ctx, authID, answer)
}

// fetchedParams mirrors what the client receives over the wire: the
// server's group serialized to big-endian bytes and rebuilt on the
// client side.
func fetchedParams(t *testing.T, g *zkp.Params) *zkp.Params {
	t.Helper()
	params := &zkp.Params{
		P:     new(big.Int).SetBytes(g.P.Bytes()),
		Q:     new(big.Int).SetBytes(g.Q.Bytes()),
		Alpha: new(big.Int).SetBytes(g.Alpha.Bytes()),
		Beta:  new(big.Int).SetBytes(g.Beta.Bytes()),
	}
	if err := params.Validate(); err != nil {
		t.Fatalf("fetched params invalid: %v", err)
	}
	return params
}

func newLoopbackService(t *testing.T) *AuthService {
	t.Helper()

	// the toy group's 11 residues make password collisions likely, so
	// the loopback tests run on the production group
	params, err := zkp.RFC5114Params()
	if err != nil {
		t.Fatalf("RFC5114Params error: %v", err)
	}

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "test-secret"

	svc, err := serversvc.NewAuthService(params, registrations.NewInMemoryRepository(), sessions.NewInMemoryRepository(), cfg)
	if err != nil {
		t.Fatalf("NewAuthService error: %v", err)
	}

	// the client proves against the group the server publishes, never
	// against one it derived itself
	return NewAuthService(&loopback{svc: svc}, fetchedParams(t, svc.Params()))
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	auth := newLoopbackService(t)

	if err := auth.Register(ctx, "alice", []byte("hunter2")); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	token, err := auth.Login(ctx, "alice", []byte("hunter2"))
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}
}

func TestLoginRepeatedRounds(t *testing.T) {
	ctx := context.Background()
	auth := newLoopbackService(t)

	if err := auth.Register(ctx, "alice", []byte("hunter2")); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	for i := 0; i < 5; i++ {
		if _, err := auth.Login(ctx, "alice", []byte("hunter2")); err != nil {
			t.Fatalf("round %d: Login error: %v", i, err)
		}
	}
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	auth := newLoopbackService(t)

	if err := auth.Register(ctx, "alice", []byte("hunter2")); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, err := auth.Login(ctx, "alice", []byte("wrong"))
	if !errors.Is(err, common.ErrInvalidProof) {
		t.Fatalf("expected ErrInvalidProof, got %v", err)
	}
}

func TestRegisterTwice(t *testing.T) {
	ctx := context.Background()
	auth := newLoopbackService(t)

	if err := auth.Register(ctx, "alice", []byte("hunter2")); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	err := auth.Register(ctx, "alice", []byte("hunter2"))
	if !errors.Is(err, common.ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}
}

// Two independently constructed rfc5114 groups carry different betas,
// so a client that derives its own group can never authenticate. The
// client has to prove against the exact group the server publishes.
func TestLoginRequiresServerPublishedGroup(t *testing.T) {
	ctx := context.Background()

	serverParams, err := zkp.NamedParams("rfc5114")
	if err != nil {
		t.Fatalf("NamedParams error: %v", err)
	}

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "test-secret"

	svc, err := serversvc.NewAuthService(serverParams, registrations.NewInMemoryRepository(), sessions.NewInMemoryRepository(), cfg)
	if err != nil {
		t.Fatalf("NewAuthService error: %v", err)
	}

	ownParams, err := zkp.NamedParams("rfc5114")
	if err != nil {
		t.Fatalf("NamedParams error: %v", err)
	}

	rogue := NewAuthService(&loopback{svc: svc}, ownParams)
	if err := rogue.Register(ctx, "alice", []byte("hunter2")); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if _, err := rogue.Login(ctx, "alice", []byte("hunter2")); !errors.Is(err, common.ErrInvalidProof) {
		t.Fatalf("login with a self-derived group must fail with ErrInvalidProof, got %v", err)
	}

	// same server, client now on the published group: honest login works
	auth := NewAuthService(&loopback{svc: svc}, fetchedParams(t, svc.Params()))
	if err := auth.Register(ctx, "bob", []byte("hunter2")); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if _, err := auth.Login(ctx, "bob", []byte("hunter2")); err != nil {
		t.Fatalf("honest login with the published group failed: %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	ctx := context.Background()
	auth := newLoopbackService(t)

	_, err := auth.Login(ctx, "nobody", []byte("pw"))
	if !errors.Is(err, common.ErrUnknownUser) {
		t.Fatalf("expected ErrUnknownUser, got %v", err)
	}
}
