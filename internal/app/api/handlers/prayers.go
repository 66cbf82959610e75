package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	mw "github.com/fatflowers/prayerbook/internal/app/api/middleware"
	"github.com/fatflowers/prayerbook/internal/app/service/generation"
	"github.com/fatflowers/prayerbook/internal/models"
	"github.com/fatflowers/prayerbook/pkg/clock"
	"github.com/fatflowers/prayerbook/pkg/response"
	"github.com/fatflowers/prayerbook/pkg/tool"
	"github.com/fatflowers/prayerbook/pkg/types"
)

type generateReq struct {
	generation.Request
	// Save adds the generated prayer to the installation's list.
	Save bool `json:"save"`
}

type moveToFolderReq struct {
	// FolderID null removes the prayer from its folder.
	FolderID *string `json:"folder_id"`
}

type downloadCardReq struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

type deletedResp struct {
	ID string `json:"id"`
}

// @Summary      List prayers
// @Description  Saved prayers, newest first. q matches recipient name, user input and prayer text case-insensitively.
// @Tags         Prayers
// @Produce      json
// @Param        installation_id  path   string  true   "Installation ID"
// @Param        q                query  string  false  "Search text"
// @Param        favorites        query  bool    false  "Only favorites"
// @Param        folder_id        query  string  false  "Only prayers in this folder"
// @Success      200  {object}  handlers.RespPrayers
// @Router       /api/v1/installations/{installation_id}/prayers [get]
func ApiListPrayers() gin.HandlerFunc {
	return func(c *gin.Context) {
		var f types.PrayerFilter
		if err := c.ShouldBindQuery(&f); err != nil {
			badRequest(c, err)
			return
		}
		if f.FolderID != nil && *f.FolderID == "" {
			f.FolderID = nil
		}
		c.JSON(http.StatusOK, response.OKT(mw.Session(c).Store.Query(f)))
	}
}

// @Summary      Save prayer
// @Description  Adds a prayer to the front of the list. Missing id and createdAt are filled in.
// @Tags         Prayers
// @Accept       json
// @Produce      json
// @Param        installation_id  path  string  true  "Installation ID"
// @Param        request body models.Prayer true "Prayer"
// @Success      200  {object}  handlers.RespPrayer
// @Router       /api/v1/installations/{installation_id}/prayers [post]
func ApiAddPrayer(clk clock.Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p models.Prayer
		if err := c.ShouldBindJSON(&p); err != nil {
			badRequest(c, err)
			return
		}
		if strings.TrimSpace(p.ID) == "" {
			p.ID = tool.GenerateUUIDV7()
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = clk.Now()
		}
		if err := mw.Session(c).Store.AddPrayer(p); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(p))
	}
}

// @Summary      Get prayer
// @Tags         Prayers
// @Produce      json
// @Param        installation_id  path  string  true  "Installation ID"
// @Param        id               path  string  true  "Prayer ID"
// @Success      200  {object}  handlers.RespPrayer
// @Router       /api/v1/installations/{installation_id}/prayers/{id} [get]
func ApiGetPrayer() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := mw.Session(c).Store.Prayer(c.Param("id"))
		if !ok {
			writeError(c, generation.ErrPrayerNotFound)
			return
		}
		c.JSON(http.StatusOK, response.OKT(p))
	}
}

// @Summary      Delete prayer
// @Tags         Prayers
// @Produce      json
// @Param        installation_id  path  string  true  "Installation ID"
// @Param        id               path  string  true  "Prayer ID"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/installations/{installation_id}/prayers/{id} [delete]
func ApiDeletePrayer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if !mw.Session(c).Store.DeletePrayer(id) {
			writeError(c, generation.ErrPrayerNotFound)
			return
		}
		c.JSON(http.StatusOK, response.OKT(deletedResp{ID: id}))
	}
}

// @Summary      Toggle favorite
// @Tags         Prayers
// @Produce      json
// @Param        installation_id  path  string  true  "Installation ID"
// @Param        id               path  string  true  "Prayer ID"
// @Success      200  {object}  handlers.RespPrayer
// @Router       /api/v1/installations/{installation_id}/prayers/{id}/favorite [post]
func ApiToggleFavorite() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := mw.Session(c).Store.ToggleFavorite(c.Param("id"))
		if !ok {
			writeError(c, generation.ErrPrayerNotFound)
			return
		}
		c.JSON(http.StatusOK, response.OKT(p))
	}
}

// @Summary      Move to folder
// @Tags         Prayers
// @Accept       json
// @Produce      json
// @Param        installation_id  path  string  true  "Installation ID"
// @Param        id               path  string  true  "Prayer ID"
// @Param        request body handlers.moveToFolderReq true "Folder"
// @Success      200  {object}  handlers.RespPrayer
// @Router       /api/v1/installations/{installation_id}/prayers/{id}/folder [post]
func ApiMoveToFolder() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req moveToFolderReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		p, ok := mw.Session(c).Store.MovePrayerToFolder(c.Param("id"), req.FolderID)
		if !ok {
			writeError(c, generation.ErrPrayerNotFound)
			return
		}
		c.JSON(http.StatusOK, response.OKT(p))
	}
}

// @Summary      Download card
// @Description  Stores the rendered card image. Uses the daily card allowance unless the card was downloaded before.
// @Tags         Prayers
// @Accept       json
// @Produce      json
// @Param        installation_id  path  string  true  "Installation ID"
// @Param        id               path  string  true  "Prayer ID"
// @Param        request body handlers.downloadCardReq true "Card image"
// @Success      200  {object}  handlers.RespPrayer
// @Router       /api/v1/installations/{installation_id}/prayers/{id}/card [post]
func ApiDownloadCard(svc *generation.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req downloadCardReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		s := mw.Session(c)
		p, err := svc.DownloadCard(c.Request.Context(), s.Tracker, s.Store, c.Param("id"), req.ImageBase64)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(p))
	}
}

// @Summary      Listen
// @Description  Uses the daily audio allowance. Speech is synthesized on the device.
// @Tags         Prayers
// @Produce      json
// @Param        installation_id  path  string  true  "Installation ID"
// @Param        id               path  string  true  "Prayer ID"
// @Success      200  {object}  handlers.RespPrayer
// @Router       /api/v1/installations/{installation_id}/prayers/{id}/listen [post]
func ApiListen(svc *generation.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := mw.Session(c)
		p, err := svc.Listen(c.Request.Context(), s.Tracker, s.Store, c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(p))
	}
}

// @Summary      Share
// @Description  Share text, and a link with its QR code when a share base URL is configured. Never limited.
// @Tags         Prayers
// @Produce      json
// @Param        installation_id  path  string  true  "Installation ID"
// @Param        id               path  string  true  "Prayer ID"
// @Success      200  {object}  handlers.RespShareCard
// @Router       /api/v1/installations/{installation_id}/prayers/{id}/share [post]
func ApiShare(svc *generation.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := mw.Session(c)
		card, err := svc.Share(c.Request.Context(), s.Tracker, s.Store, c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(card))
	}
}

// @Summary      Generate prayer
// @Description  Generates a prayer with scripture. Uses the daily allowance for the prayer type only when generation succeeds.
// @Tags         Prayers
// @Accept       json
// @Produce      json
// @Param        installation_id  path  string  true  "Installation ID"
// @Param        request body handlers.generateReq true "Generation request"
// @Success      200  {object}  handlers.RespPrayer
// @Router       /api/v1/installations/{installation_id}/prayers/generate [post]
func ApiGeneratePrayer(svc *generation.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req generateReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		s := mw.Session(c)
		p, err := svc.Generate(c.Request.Context(), s.Tracker, s.Store, req.Request, req.Save)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(p))
	}
}

func RegisterPrayerRoutes(r gin.IRouter, svc *generation.Service, clk clock.Clock, limiter *mw.RateLimiter) {
	r.GET("/prayers", ApiListPrayers())
	r.POST("/prayers", ApiAddPrayer(clk))
	r.POST("/prayers/generate", limiter.Middleware(mw.ByInstallation), ApiGeneratePrayer(svc))
	r.GET("/prayers/:id", ApiGetPrayer())
	r.DELETE("/prayers/:id", ApiDeletePrayer())
	r.POST("/prayers/:id/favorite", ApiToggleFavorite())
	r.POST("/prayers/:id/folder", ApiMoveToFolder())
	r.POST("/prayers/:id/card", ApiDownloadCard(svc))
	r.POST("/prayers/:id/listen", ApiListen(svc))
	r.POST("/prayers/:id/share", ApiShare(svc))
}
