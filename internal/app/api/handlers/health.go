package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fatflowers/prayerbook/internal/app/service/installation"
	"github.com/fatflowers/prayerbook/internal/app/service/persist"
	"github.com/fatflowers/prayerbook/pkg/response"
)

type healthResp struct {
	Status        string `json:"status"`
	Installations int    `json:"installations"`
	PendingWrites int    `json:"pending_writes"`
}

// @Summary      Health check
// @Description  Returns service status, loaded installations and queued storage writes
// @Tags         System
// @Produce      json
// @Success      200  {object}  handlers.RespOK
// @Router       /healthz [get]
func Healthz(reg *installation.Registry, w *persist.Writer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, response.OKT(healthResp{
			Status:        "ok",
			Installations: reg.Len(),
			PendingWrites: w.Pending(),
		}))
	}
}

func RegisterHealthRoutes(r gin.IRouter, reg *installation.Registry, w *persist.Writer) {
	r.GET("/healthz", Healthz(reg, w))
}
