package apple_iap

import (
	"strings"

	"github.com/google/uuid"
)

// tokenNamespace scopes app account tokens to this app.
var tokenNamespace = uuid.MustParse("5c0f3d52-8a8e-4f1b-9a4e-2b7d6c1e9f30")

// AppAccountToken is the UUID a client attaches to its purchases so the
// transaction can be tied back to the installation that made it. The
// mapping is one-way and stable.
func AppAccountToken(installationID string) string {
	return uuid.NewSHA1(tokenNamespace, []byte(installationID)).String()
}

// TokenMatches compares a token from a signed transaction against the one
// expected for installationID.
func TokenMatches(token, installationID string) bool {
	return token != "" && strings.EqualFold(token, AppAccountToken(installationID))
}
