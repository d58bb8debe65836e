package prover

import (
	"errors"
	"math/big"
	"testing"

	"github.com/dmitrijs2005/zkauth/internal/zkp"
)

func TestDeriveSecretDeterministic(t *testing.T) {
	g := zkp.ToyParams()

	x1 := DeriveSecret(g, "alice", []byte("hunter2"))
	x2 := DeriveSecret(g, "alice", []byte("hunter2"))
	if x1.Cmp(x2) != 0 {
		t.Fatal("same credentials must derive the same secret")
	}
	if x1.Sign() < 0 || x1.Cmp(g.Q) >= 0 {
		t.Fatalf("secret out of range [0,q): %v", x1)
	}
}

func TestDeriveSecretVariesByUserAndPassword(t *testing.T) {
	// the toy group has only 11 residues, use the production group to
	// make collisions implausible
	g, err := zkp.RFC5114Params()
	if err != nil {
		t.Fatalf("RFC5114Params error: %v", err)
	}

	base := DeriveSecret(g, "alice", []byte("hunter2"))
	if DeriveSecret(g, "bob", []byte("hunter2")).Cmp(base) == 0 {
		t.Fatal("different users must derive different secrets")
	}
	if DeriveSecret(g, "alice", []byte("hunter3")).Cmp(base) == 0 {
		t.Fatal("different passwords must derive different secrets")
	}
}

func TestAttemptRoundTrip(t *testing.T) {
	g := zkp.ToyParams()
	p := New(g, "alice", []byte("hunter2"))

	y1, y2 := p.PublicPair()

	att, err := p.NewAttempt()
	if err != nil {
		t.Fatalf("NewAttempt error: %v", err)
	}

	c, err := zkp.RandBelow(g.Q)
	if err != nil {
		t.Fatalf("RandBelow error: %v", err)
	}

	s, err := att.Respond(c)
	if err != nil {
		t.Fatalf("Respond error: %v", err)
	}

	if !g.Verify(att.R1, att.R2, y1, y2, c, s) {
		t.Fatal("honest attempt must verify")
	}
}

func TestAttemptSingleUse(t *testing.T) {
	g := zkp.ToyParams()
	p := New(g, "alice", []byte("hunter2"))

	att, err := p.NewAttempt()
	if err != nil {
		t.Fatalf("NewAttempt error: %v", err)
	}

	if _, err := att.Respond(big.NewInt(4)); err != nil {
		t.Fatalf("first Respond error: %v", err)
	}
	if _, err := att.Respond(big.NewInt(5)); !errors.Is(err, ErrAttemptSpent) {
		t.Fatalf("expected ErrAttemptSpent, got %v", err)
	}
}

func TestAttemptsUseFreshNonces(t *testing.T) {
	g, err := zkp.RFC5114Params()
	if err != nil {
		t.Fatalf("RFC5114Params error: %v", err)
	}
	p := New(g, "alice", []byte("hunter2"))

	a1, err := p.NewAttempt()
	if err != nil {
		t.Fatalf("NewAttempt error: %v", err)
	}
	a2, err := p.NewAttempt()
	if err != nil {
		t.Fatalf("NewAttempt error: %v", err)
	}

	if a1.R1.Cmp(a2.R1) == 0 {
		t.Fatal("two attempts produced identical commitments")
	}
}
