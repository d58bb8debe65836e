package sessions

import (
	"math/big"
	"time"
)

// Session is one in-flight authentication attempt: the client's
// commitments (R1, R2) bound to the server-issued challenge C under an
// unpredictable AuthID. A session is consumed by exactly one
// verification attempt and expires if left unconsumed.
type Session struct {
	AuthID    string
	User      string
	R1        *big.Int
	R2        *big.Int
	C         *big.Int
	ExpiresAt time.Time
}
