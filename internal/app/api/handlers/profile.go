package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	mw "github.com/fatflowers/prayerbook/internal/app/api/middleware"
	"github.com/fatflowers/prayerbook/internal/app/service/prayerstore"
	"github.com/fatflowers/prayerbook/pkg/response"
	"github.com/fatflowers/prayerbook/pkg/types"
)

type onboardingReq struct {
	Name     string         `json:"name"`
	Language types.Language `json:"language" binding:"required"`
}

// @Summary      Get profile
// @Tags         Profile
// @Produce      json
// @Param        installation_id  path  string  true  "Installation ID"
// @Success      200  {object}  handlers.RespProfile
// @Router       /api/v1/installations/{installation_id}/profile [get]
func ApiGetProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, response.OKT(mw.Session(c).Store.Profile()))
	}
}

// @Summary      Update profile
// @Description  Changes only the fields present in the body. An empty profileImageUri clears the image.
// @Tags         Profile
// @Accept       json
// @Produce      json
// @Param        installation_id  path  string  true  "Installation ID"
// @Param        request body prayerstore.ProfilePatch true "Fields to change"
// @Success      200  {object}  handlers.RespProfile
// @Router       /api/v1/installations/{installation_id}/profile [patch]
func ApiUpdateProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch prayerstore.ProfilePatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			badRequest(c, err)
			return
		}
		p, err := mw.Session(c).Store.UpdateProfile(patch)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(p))
	}
}

// @Summary      Complete onboarding
// @Description  Replaces the profile with the given name and language and marks onboarding complete.
// @Tags         Profile
// @Accept       json
// @Produce      json
// @Param        installation_id  path  string  true  "Installation ID"
// @Param        request body handlers.onboardingReq true "Onboarding"
// @Success      200  {object}  handlers.RespProfile
// @Router       /api/v1/installations/{installation_id}/profile/onboarding [post]
func ApiCompleteOnboarding() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req onboardingReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		p, err := mw.Session(c).Store.CompleteOnboarding(req.Name, req.Language)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(p))
	}
}

func RegisterProfileRoutes(r gin.IRouter) {
	r.GET("/profile", ApiGetProfile())
	r.PATCH("/profile", ApiUpdateProfile())
	r.POST("/profile/onboarding", ApiCompleteOnboarding())
}
