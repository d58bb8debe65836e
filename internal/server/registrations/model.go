package registrations

import (
	"math/big"
	"time"
)

// Registration is a user's public commitment to their secret x:
// Y1 = alpha^x mod p and Y2 = beta^x mod p. The secret itself never
// reaches the server.
type Registration struct {
	User      string
	Y1        *big.Int
	Y2        *big.Int
	CreatedAt time.Time
}
