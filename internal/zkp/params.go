package zkp

import (
	"fmt"
	"math/big"
)

// RFC 5114 section 2.1: 1024-bit MODP group with 160-bit prime order subgroup.
const (
	rfc5114PHex = "B10B8F96A080E01DDE92DE5EAE5D54EC52C99FBCFB06A3C69A6A9DCA52D23B61" +
		"6073E28675A23D189838EF1E2EE652C013ECB4AEA906112324975C3CD49B83BF" +
		"ACCBDD7D90C4BD7098488E9C219A73724EFFD6FAE5644738FAA31A4FF55BCCC0" +
		"A151AF5F0DC8B4BD45BF37DF365C1A65E68CFDA76D4DA708DF1FB2BC2E4A4371"

	rfc5114QHex = "F518AA8781A8DF278ABA4E7D64B7CB9D49462353"

	rfc5114AlphaHex = "A4D1CBD5C3FD34126765A442EFB99905F8104DD258AC507FD6406CFF14266D31" +
		"266FEA1E5C41564B777E690F5504F213160217B4B01B886A5E91547F9E2749F4" +
		"D7FBD7D3B9A92EE1909D0D2263F80A76A6A24C087A091F531DBF0A0169B6A28A" +
		"D662A4D18E73AFA32D779D5918D08BC8858F4DCEF97C2A24855E6EEB22B3B2E5"
)

// ToyParams returns the small illustrative group p=23, q=11, alpha=4,
// beta=9. Only suitable for tests and demos.
func ToyParams() *Params {
	return &Params{
		P:     big.NewInt(23),
		Q:     big.NewInt(11),
		Alpha: big.NewInt(4),
		Beta:  big.NewInt(9),
	}
}

// RFC5114Params returns the 1024-bit MODP group from RFC 5114 section
// 2.1 with a freshly derived second generator beta = alpha^r mod p.
// The exponent r is sampled here and dropped on return; nobody,
// including this process, retains the discrete log of beta.
//
// Every call yields a distinct beta. A deployment therefore constructs
// the group exactly once, on the server, and distributes it; proofs
// against an independently derived group never verify.
func RFC5114Params() (*Params, error) {
	p, ok := new(big.Int).SetString(rfc5114PHex, 16)
	if !ok {
		return nil, fmt.Errorf("parsing p: %w", ErrInvalidParameters)
	}
	q, ok := new(big.Int).SetString(rfc5114QHex, 16)
	if !ok {
		return nil, fmt.Errorf("parsing q: %w", ErrInvalidParameters)
	}
	alpha, ok := new(big.Int).SetString(rfc5114AlphaHex, 16)
	if !ok {
		return nil, fmt.Errorf("parsing alpha: %w", ErrInvalidParameters)
	}

	// alpha^r is also a generator of the order-q subgroup for any
	// r in [1, q). Resample on the (negligible) r=0 draw, which would
	// produce the trivial beta=1.
	var beta *big.Int
	for {
		r, err := RandBelow(q)
		if err != nil {
			return nil, err
		}
		if r.Sign() == 0 {
			continue
		}
		beta = Exponentiate(alpha, r, p)
		break
	}

	params := &Params{P: p, Q: q, Alpha: alpha, Beta: beta}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return params, nil
}

// NamedParams maps a configuration profile name to a parameter set.
// Supported profiles: "toy" and "rfc5114".
func NamedParams(profile string) (*Params, error) {
	switch profile {
	case "toy":
		return ToyParams(), nil
	case "rfc5114":
		return RFC5114Params()
	default:
		return nil, fmt.Errorf("unknown group profile %q: %w", profile, ErrInvalidParameters)
	}
}
