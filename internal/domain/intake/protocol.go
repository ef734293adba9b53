package intake

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"
)

// ProtocolPrefix tags every receipt handed to a customer.
const ProtocolPrefix = "PI"

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewProtocol builds an opaque receipt: prefix + uppercase base36 timestamp +
// 4 random base36 characters. Unique with high probability, not guaranteed;
// the contracts table conditional-puts on it as the final guard.
func NewProtocol(now time.Time) string {
	ts := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))

	var b strings.Builder
	b.Grow(len(ProtocolPrefix) + len(ts) + 4)
	b.WriteString(ProtocolPrefix)
	b.WriteString(ts)
	max := big.NewInt(int64(len(base36Alphabet)))
	for i := 0; i < 4; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken;
			// degrade to a clock-derived digit rather than panic.
			b.WriteByte(base36Alphabet[time.Now().UnixNano()%36])
			continue
		}
		b.WriteByte(base36Alphabet[n.Int64()])
	}
	return b.String()
}
