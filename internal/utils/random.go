package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"time"
)

const codeCharset = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// GenerateRandomCode returns a crypto-random string over an alphabet with
// no visually ambiguous characters.
func GenerateRandomCode(length int) string {
	result := make([]byte, length)
	charsetLength := big.NewInt(int64(len(codeCharset)))

	for i := range result {
		num, _ := rand.Int(rand.Reader, charsetLength)
		result[i] = codeCharset[num.Int64()]
	}

	return string(result)
}

// GenerateRedemptionCode builds a ticket redemption code from a time
// component and a crypto-random component. Uniqueness is still enforced at
// the storage layer; callers retry on the rare collision.
func GenerateRedemptionCode() string {
	ts := strconv.FormatInt(time.Now().UnixNano(), 36)
	return fmt.Sprintf("%s-%s-%s", RedemptionCodePrefix, ts, GenerateRandomCode(RedemptionCodeRandomLength))
}
