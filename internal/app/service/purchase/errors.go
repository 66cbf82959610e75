package purchase

import "errors"

var (
	ErrNotEnabled          = errors.New("purchase: app store verification is not configured")
	ErrInvalidTransaction  = errors.New("purchase: invalid transaction")
	ErrWrongEnvironment    = errors.New("purchase: transaction is not from the production environment")
	ErrTransactionRevoked  = errors.New("purchase: transaction was revoked")
	ErrTransactionExpired  = errors.New("purchase: transaction has expired")
	ErrTransactionNotOwned = errors.New("purchase: transaction belongs to another installation")
	ErrUnknownProduct      = errors.New("purchase: product does not unlock a plan")
	ErrStoreUnavailable    = errors.New("purchase: app store request failed")
)
