package utils

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// NormalizePhoneNumber trims the input and removes inner spaces, dashes and
// parentheses so "+1 (215) 555-1234" becomes "+12155551234".
func NormalizePhoneNumber(input string) string {
	replacer := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")
	return replacer.Replace(strings.TrimSpace(input))
}

// FingerprintPhoneNumber returns a short stable digest that can go into logs
// and audit records in place of the number itself.
func FingerprintPhoneNumber(phoneNumber string) string {
	sum := blake2b.Sum256([]byte(NormalizePhoneNumber(phoneNumber)))
	return hex.EncodeToString(sum[:8])
}
