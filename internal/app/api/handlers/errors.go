package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fatflowers/prayerbook/internal/app/service/entitlement"
	"github.com/fatflowers/prayerbook/internal/app/service/generation"
	"github.com/fatflowers/prayerbook/internal/app/service/prayerstore"
	"github.com/fatflowers/prayerbook/internal/app/service/purchase"
	"github.com/fatflowers/prayerbook/pkg/logctx"
	"github.com/fatflowers/prayerbook/pkg/response"
)

var errNotFound = errors.New("not found")

var badRequestErrors = []error{
	entitlement.ErrInvalidTier,
	entitlement.ErrUnknownFeature,
	prayerstore.ErrEmptyFolderName,
	prayerstore.ErrInvalidPrayer,
	prayerstore.ErrInvalidLanguage,
	prayerstore.ErrInvalidNotificationSettings,
	generation.ErrInvalidRequest,
	purchase.ErrInvalidTransaction,
	purchase.ErrWrongEnvironment,
	purchase.ErrTransactionRevoked,
	purchase.ErrTransactionExpired,
	purchase.ErrTransactionNotOwned,
	purchase.ErrUnknownProduct,
}

func codeFor(err error) response.APIResponseCode {
	switch {
	case errors.Is(err, entitlement.ErrQuotaExhausted):
		return response.APIResponseCodeQuotaExceeded
	case errors.Is(err, generation.ErrPrayerNotFound), errors.Is(err, errNotFound):
		return response.APIResponseCodeNotFound
	case errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, purchase.ErrStoreUnavailable),
		errors.Is(err, purchase.ErrNotEnabled):
		return response.APIResponseCodeUpstreamFailure
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return response.APIResponseCodeBadRequest
		}
	}
	return response.APIResponseCodeError
}

// writeError maps a service error to the response envelope. Unexpected
// errors are logged; their text is not sent to the client.
func writeError(c *gin.Context, err error) {
	code := codeFor(err)
	msg := err.Error()
	if code == response.APIResponseCodeError {
		logctx.FromGin(c, zap.S()).Errorw("request failed", "path", c.FullPath(), "err", err)
		msg = ""
	}
	c.JSON(http.StatusOK, response.ErrorMsg(code, msg))
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusOK, response.ErrorMsg(response.APIResponseCodeBadRequest, err.Error()))
}
