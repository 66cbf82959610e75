package entitlement

import "errors"

var (
	ErrInvalidTier    = errors.New("entitlement: tier must be monthly or annual")
	ErrUnknownFeature = errors.New("entitlement: unknown feature")
	ErrQuotaExhausted = errors.New("entitlement: daily free use already spent")
)
