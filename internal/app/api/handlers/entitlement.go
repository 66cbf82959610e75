package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	mw "github.com/fatflowers/prayerbook/internal/app/api/middleware"
	"github.com/fatflowers/prayerbook/internal/app/service/entitlement"
	"github.com/fatflowers/prayerbook/internal/app/service/purchase"
	"github.com/fatflowers/prayerbook/internal/platform/apple/apple_iap"
	"github.com/fatflowers/prayerbook/pkg/response"
	"github.com/fatflowers/prayerbook/pkg/types"
)

type entitlementResp struct {
	entitlement.Status
	// AppAccountToken must be attached to App Store purchases so they can
	// be verified for this installation.
	AppAccountToken string `json:"app_account_token"`
}

type canUseResp struct {
	Feature types.Feature `json:"feature"`
	Allowed bool          `json:"allowed"`
}

type recordUseReq struct {
	Feature types.Feature `json:"feature" binding:"required"`
}

type upgradeReq struct {
	Tier types.SubscriptionTier `json:"tier" binding:"required"`
}

type verifyAppleReq struct {
	TransactionID string `json:"transaction_id" binding:"required"`
}

// @Summary      Entitlement status
// @Description  Subscription, today's usage and the remaining allowance per feature.
// @Tags         Entitlement
// @Produce      json
// @Param        installation_id  path  string  true  "Installation ID"
// @Success      200  {object}  handlers.RespEntitlement
// @Router       /api/v1/installations/{installation_id}/entitlement [get]
func ApiGetEntitlement() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := mw.Session(c)
		c.JSON(http.StatusOK, response.OKT(entitlementResp{
			Status:          s.Tracker.Snapshot(),
			AppAccountToken: apple_iap.AppAccountToken(s.ID),
		}))
	}
}

// @Summary      Can use feature
// @Description  Reports whether the feature may be used right now. Sharing is always allowed.
// @Tags         Entitlement
// @Produce      json
// @Param        installation_id  path  string  true  "Installation ID"
// @Param        feature          path  string  true  "Feature"
// @Success      200  {object}  handlers.RespCanUse
// @Router       /api/v1/installations/{installation_id}/entitlement/can_use/{feature} [get]
func ApiCanUse() gin.HandlerFunc {
	return func(c *gin.Context) {
		f := types.Feature(c.Param("feature"))
		if !f.Valid() {
			writeError(c, fmt.Errorf("%w: %q", entitlement.ErrUnknownFeature, f))
			return
		}
		c.JSON(http.StatusOK, response.OKT(canUseResp{Feature: f, Allowed: mw.Session(c).Tracker.CanUse(f)}))
	}
}

// @Summary      Record use
// @Description  Marks the feature as used today. Flows served by this API record use themselves.
// @Tags         Entitlement
// @Accept       json
// @Produce      json
// @Param        installation_id  path  string  true  "Installation ID"
// @Param        request body handlers.recordUseReq true "Feature"
// @Success      200  {object}  handlers.RespRemaining
// @Router       /api/v1/installations/{installation_id}/entitlement/record_use [post]
func ApiRecordUse() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req recordUseReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		t := mw.Session(c).Tracker
		if err := t.RecordUse(req.Feature); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(t.RemainingUsage()))
	}
}

// @Summary      Upgrade
// @Description  Starts a paid term without store verification. Only registered when allowed by config.
// @Tags         Entitlement
// @Accept       json
// @Produce      json
// @Param        installation_id  path  string  true  "Installation ID"
// @Param        request body handlers.upgradeReq true "Tier"
// @Success      200  {object}  handlers.RespSubscription
// @Router       /api/v1/installations/{installation_id}/entitlement/upgrade [post]
func ApiUpgrade() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req upgradeReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		sub, err := mw.Session(c).Tracker.Upgrade(req.Tier)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(sub))
	}
}

// @Summary      Verify Apple purchase
// @Description  Verifies an App Store transaction for this installation and starts the purchased term.
// @Tags         Entitlement
// @Accept       json
// @Produce      json
// @Param        installation_id  path  string  true  "Installation ID"
// @Param        request body handlers.verifyAppleReq true "Transaction"
// @Success      200  {object}  handlers.RespSubscription
// @Router       /api/v1/installations/{installation_id}/entitlement/verify_apple [post]
func ApiVerifyApple(svc *purchase.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req verifyAppleReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		s := mw.Session(c)
		sub, err := svc.VerifyApple(c.Request.Context(), s.Tracker, s.ID, req.TransactionID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(sub))
	}
}

func RegisterEntitlementRoutes(r gin.IRouter, svc *purchase.Service, allowDirectUpgrade bool) {
	r.GET("/entitlement", ApiGetEntitlement())
	r.GET("/entitlement/can_use/:feature", ApiCanUse())
	r.POST("/entitlement/record_use", ApiRecordUse())
	if allowDirectUpgrade {
		r.POST("/entitlement/upgrade", ApiUpgrade())
	}
	r.POST("/entitlement/verify_apple", ApiVerifyApple(svc))
}
