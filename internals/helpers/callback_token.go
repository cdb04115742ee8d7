package helper

import (
	"crypto/subtle"
	"strings"

	"careconnect_backend/internals/configs"
)

// VerifyCallbackToken membandingkan x-callback-token webhook Xendit dengan
// token terdaftar secara constant-time. Token kosong di config berarti
// semua callback ditolak.
func VerifyCallbackToken(got string) bool {
	want := strings.TrimSpace(configs.XenditCallbackToken)
	got = strings.TrimSpace(got)
	if want == "" || got == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
