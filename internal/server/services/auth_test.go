package services

import (
	"context"
	"errors"
	"math/big"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/zkauth/internal/common"
	"github.com/dmitrijs2005/zkauth/internal/server/auth"
	"github.com/dmitrijs2005/zkauth/internal/server/config"
	"github.com/dmitrijs2005/zkauth/internal/server/registrations"
	"github.com/dmitrijs2005/zkauth/internal/server/sessions"
	"github.com/dmitrijs2005/zkauth/internal/zkp"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.GroupProfile = "toy"
	c.SecretKey = "test-secret"
	return c
}

func newTestService(t *testing.T, cfg *config.Config) *AuthService {
	t.Helper()
	svc, err := NewAuthService(zkp.ToyParams(), registrations.NewInMemoryRepository(), sessions.NewInMemoryRepository(), cfg)
	if err != nil {
		t.Fatalf("NewAuthService error: %v", err)
	}
	return svc
}

// enroll registers a user with secret x and returns the public pair.
func enroll(t *testing.T, svc *AuthService, user string, x *big.Int) (*big.Int, *big.Int) {
	t.Helper()
	y1, y2 := svc.params.CommitmentPair(x)
	if err := svc.Register(context.Background(), user, y1, y2); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	return y1, y2
}

func TestRegisterDuplicate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, testConfig())

	enroll(t, svc, "alice", big.NewInt(6))

	y1, y2 := svc.params.CommitmentPair(big.NewInt(6))
	err := svc.Register(ctx, "alice", y1, y2)
	if !errors.Is(err, common.ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}
}

func TestRegisterOverwriteWhenAllowed(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	cfg.AllowReRegistration = true
	svc := newTestService(t, cfg)

	enroll(t, svc, "alice", big.NewInt(6))

	y1, y2 := svc.params.CommitmentPair(big.NewInt(9))
	if err := svc.Register(ctx, "alice", y1, y2); err != nil {
		t.Fatalf("re-registration should be allowed: %v", err)
	}
}

func TestRegisterRejectsMalformedValues(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, testConfig())

	tests := []struct {
		name   string
		user   string
		y1, y2 *big.Int
	}{
		{"empty user", "", big.NewInt(2), big.NewInt(3)},
		{"nil y1", "alice", nil, big.NewInt(3)},
		{"zero y2", "alice", big.NewInt(2), big.NewInt(0)},
		{"y1 out of range", "alice", big.NewInt(23), big.NewInt(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Register(ctx, tt.user, tt.y1, tt.y2)
			if !errors.Is(err, zkp.ErrInvalidParameters) {
				t.Fatalf("expected ErrInvalidParameters, got %v", err)
			}
		})
	}
}

func TestCreateChallengeUnknownUser(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, testConfig())

	_, _, err := svc.CreateChallenge(ctx, "nobody", big.NewInt(8), big.NewInt(4))
	if !errors.Is(err, common.ErrUnknownUser) {
		t.Fatalf("expected ErrUnknownUser, got %v", err)
	}
}

func TestCreateChallengeFreshAuthIDs(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, testConfig())
	enroll(t, svc, "alice", big.NewInt(6))

	id1, c1, err := svc.CreateChallenge(ctx, "alice", big.NewInt(8), big.NewInt(4))
	if err != nil {
		t.Fatalf("CreateChallenge error: %v", err)
	}
	id2, _, err := svc.CreateChallenge(ctx, "alice", big.NewInt(8), big.NewInt(4))
	if err != nil {
		t.Fatalf("CreateChallenge error: %v", err)
	}

	if id1 == id2 {
		t.Fatal("auth IDs must be unique per challenge")
	}
	if c1.Sign() < 0 || c1.Cmp(svc.params.Q) >= 0 {
		t.Fatalf("challenge out of range [0,q): %v", c1)
	}
}

func TestFullAuthenticationRound(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, testConfig())

	x := big.NewInt(6)
	enroll(t, svc, "alice", x)

	k := big.NewInt(7)
	r1, r2 := svc.params.CommitmentPair(k)

	authID, c, err := svc.CreateChallenge(ctx, "alice", r1, r2)
	if err != nil {
		t.Fatalf("CreateChallenge error: %v", err)
	}

	s := svc.params.Solve(k, c, x)

	token, err := svc.VerifyAuthentication(ctx, authID, s)
	if err != nil {
		t.Fatalf("VerifyAuthentication error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}

	user, err := auth.GetUserFromToken(token, []byte("test-secret"))
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if user != "alice" {
		t.Fatalf("token issued to %q, want alice", user)
	}
}

func TestVerifyWrongAnswerRejected(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, testConfig())

	x := big.NewInt(6)
	enroll(t, svc, "alice", x)

	k := big.NewInt(7)
	r1, r2 := svc.params.CommitmentPair(k)

	authID, c, err := svc.CreateChallenge(ctx, "alice", r1, r2)
	if err != nil {
		t.Fatalf("CreateChallenge error: %v", err)
	}

	// shift the correct response by one; wrong for every challenge
	s := svc.params.Solve(k, c, x)
	s.Add(s, big.NewInt(1))
	s.Mod(s, svc.params.Q)

	_, err = svc.VerifyAuthentication(ctx, authID, s)
	if !errors.Is(err, common.ErrInvalidProof) {
		t.Fatalf("expected ErrInvalidProof, got %v", err)
	}
}

func TestVerifySessionSingleUse(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, testConfig())

	x := big.NewInt(6)
	enroll(t, svc, "alice", x)

	k := big.NewInt(3)
	r1, r2 := svc.params.CommitmentPair(k)

	authID, c, err := svc.CreateChallenge(ctx, "alice", r1, r2)
	if err != nil {
		t.Fatalf("CreateChallenge error: %v", err)
	}

	s := svc.params.Solve(k, c, x)
	if _, err := svc.VerifyAuthentication(ctx, authID, s); err != nil {
		t.Fatalf("first verification failed: %v", err)
	}

	// replay with the same (valid) answer must fail
	_, err = svc.VerifyAuthentication(ctx, authID, s)
	if !errors.Is(err, common.ErrUnknownSession) {
		t.Fatalf("expected ErrUnknownSession on replay, got %v", err)
	}
}

func TestVerifyConsumesSessionOnFailureToo(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, testConfig())

	x := big.NewInt(6)
	enroll(t, svc, "alice", x)

	k := big.NewInt(3)
	r1, r2 := svc.params.CommitmentPair(k)

	authID, c, err := svc.CreateChallenge(ctx, "alice", r1, r2)
	if err != nil {
		t.Fatalf("CreateChallenge error: %v", err)
	}

	bad := svc.params.Solve(k, c, x)
	bad.Add(bad, big.NewInt(1))
	bad.Mod(bad, svc.params.Q)
	if _, err := svc.VerifyAuthentication(ctx, authID, bad); !errors.Is(err, common.ErrInvalidProof) {
		t.Fatalf("expected ErrInvalidProof, got %v", err)
	}

	// even the correct answer is rejected after the attempt is spent
	good := svc.params.Solve(k, c, x)
	if _, err := svc.VerifyAuthentication(ctx, authID, good); !errors.Is(err, common.ErrUnknownSession) {
		t.Fatalf("expected ErrUnknownSession, got %v", err)
	}
}

func TestVerifyUnknownSession(t *testing.T) {
	svc := newTestService(t, testConfig())
	_, err := svc.VerifyAuthentication(context.Background(), "no-such-id", big.NewInt(5))
	if !errors.Is(err, common.ErrUnknownSession) {
		t.Fatalf("expected ErrUnknownSession, got %v", err)
	}
}

// failingRegRepo reports the same error from every operation.
type failingRegRepo struct{ err error }

func (f *failingRegRepo) Create(ctx context.Context, reg *registrations.Registration) error {
	return f.err
}

func (f *failingRegRepo) Upsert(ctx context.Context, reg *registrations.Registration) error {
	return f.err
}

func (f *failingRegRepo) Get(ctx context.Context, user string) (*registrations.Registration, error) {
	return nil, f.err
}

func TestInternalErrorsKeepCause(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("backing store down")

	svc, err := NewAuthService(zkp.ToyParams(), &failingRegRepo{err: cause}, sessions.NewInMemoryRepository(), testConfig())
	if err != nil {
		t.Fatalf("NewAuthService error: %v", err)
	}

	err = svc.Register(ctx, "alice", big.NewInt(2), big.NewInt(3))
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("expected ErrorInternal, got %v", err)
	}
	if !errors.Is(err, cause) || !strings.Contains(err.Error(), "backing store down") {
		t.Fatalf("cause lost from internal error: %v", err)
	}

	_, _, err = svc.CreateChallenge(ctx, "alice", big.NewInt(8), big.NewInt(4))
	if !errors.Is(err, common.ErrorInternal) || !errors.Is(err, cause) {
		t.Fatalf("cause lost from internal error: %v", err)
	}
}

func median(ds []time.Duration) time.Duration {
	s := append([]time.Duration(nil), ds...)
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	return s[len(s)/2]
}

func TestVerifyUnknownSessionTimingMatchesFailedProof(t *testing.T) {
	ctx := context.Background()

	// toy-group exponentiations finish in nanoseconds; the production
	// group makes the two code paths measurable
	params, err := zkp.RFC5114Params()
	if err != nil {
		t.Fatalf("RFC5114Params error: %v", err)
	}
	svc, err := NewAuthService(params, registrations.NewInMemoryRepository(), sessions.NewInMemoryRepository(), testConfig())
	if err != nil {
		t.Fatalf("NewAuthService error: %v", err)
	}

	x := big.NewInt(6)
	enroll(t, svc, "alice", x)

	const rounds = 8
	failedProof := make([]time.Duration, 0, rounds)
	unknownSession := make([]time.Duration, 0, rounds)

	for i := 0; i < rounds; i++ {
		k, err := zkp.RandBelow(params.Q)
		if err != nil {
			t.Fatalf("RandBelow error: %v", err)
		}
		r1, r2 := params.CommitmentPair(k)
		authID, c, err := svc.CreateChallenge(ctx, "alice", r1, r2)
		if err != nil {
			t.Fatalf("CreateChallenge error: %v", err)
		}

		bad := params.Solve(k, c, x)
		bad.Add(bad, big.NewInt(1))
		bad.Mod(bad, params.Q)

		start := time.Now()
		if _, err := svc.VerifyAuthentication(ctx, authID, bad); !errors.Is(err, common.ErrInvalidProof) {
			t.Fatalf("expected ErrInvalidProof, got %v", err)
		}
		failedProof = append(failedProof, time.Since(start))

		start = time.Now()
		if _, err := svc.VerifyAuthentication(ctx, "no-such-id", bad); !errors.Is(err, common.ErrUnknownSession) {
			t.Fatalf("expected ErrUnknownSession, got %v", err)
		}
		unknownSession = append(unknownSession, time.Since(start))
	}

	// both paths run the same four modular exponentiations; without the
	// equalizing work the unknown-session path answers in microseconds
	if 3*median(unknownSession) < median(failedProof) {
		t.Fatalf("unknown-session path is distinguishably faster: %v vs %v",
			median(unknownSession), median(failedProof))
	}
}

func TestVerifyExpiredSession(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	cfg.ChallengeTTL = -time.Second
	svc := newTestService(t, cfg)

	x := big.NewInt(6)
	enroll(t, svc, "alice", x)

	k := big.NewInt(7)
	r1, r2 := svc.params.CommitmentPair(k)

	authID, c, err := svc.CreateChallenge(ctx, "alice", r1, r2)
	if err != nil {
		t.Fatalf("CreateChallenge error: %v", err)
	}

	s := svc.params.Solve(k, c, x)
	_, err = svc.VerifyAuthentication(ctx, authID, s)
	if !errors.Is(err, common.ErrUnknownSession) {
		t.Fatalf("expected ErrUnknownSession for expired challenge, got %v", err)
	}
}
