package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fatflowers/prayerbook/internal/app/service/installation"
	"github.com/fatflowers/prayerbook/pkg/logctx"
	"github.com/fatflowers/prayerbook/pkg/response"
)

const (
	InstallationParam = "installation_id"
	sessionKey        = "session"
)

// InstallationMiddleware resolves the :installation_id path parameter to a
// loaded session and scopes the request logger to it.
func InstallationMiddleware(reg *installation.Registry, base *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param(InstallationParam)
		s, err := reg.Session(c.Request.Context(), id)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusOK, response.ErrorMsg(response.APIResponseCodeBadRequest, err.Error()))
			return
		}

		c.Set(sessionKey, s)
		c.Set(logctx.InstallationIDKey, id)
		ctx := logctx.WithValue(c.Request.Context(), logctx.InstallationIDKey, id)
		c.Request = c.Request.WithContext(ctx)
		setLogger(c, logctx.FromGin(c, base).With("installation_id", id))
		c.Next()
	}
}

// Session returns the session attached by InstallationMiddleware, or nil.
func Session(c *gin.Context) *installation.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*installation.Session); ok {
			return s
		}
	}
	return nil
}
