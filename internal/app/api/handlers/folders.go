package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	mw "github.com/fatflowers/prayerbook/internal/app/api/middleware"
	"github.com/fatflowers/prayerbook/pkg/response"
)

type addFolderReq struct {
	Name string `json:"name"`
}

// @Summary      List folders
// @Tags         Folders
// @Produce      json
// @Param        installation_id  path  string  true  "Installation ID"
// @Success      200  {object}  handlers.RespFolders
// @Router       /api/v1/installations/{installation_id}/folders [get]
func ApiListFolders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, response.OKT(mw.Session(c).Store.Folders()))
	}
}

// @Summary      Create folder
// @Tags         Folders
// @Accept       json
// @Produce      json
// @Param        installation_id  path  string  true  "Installation ID"
// @Param        request body handlers.addFolderReq true "Folder"
// @Success      200  {object}  handlers.RespFolder
// @Router       /api/v1/installations/{installation_id}/folders [post]
func ApiAddFolder() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addFolderReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		f, err := mw.Session(c).Store.AddFolder(req.Name)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(f))
	}
}

// @Summary      Delete folder
// @Description  Prayers in the folder stay saved and lose their folder.
// @Tags         Folders
// @Produce      json
// @Param        installation_id  path  string  true  "Installation ID"
// @Param        id               path  string  true  "Folder ID"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/installations/{installation_id}/folders/{id} [delete]
func ApiDeleteFolder() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if !mw.Session(c).Store.DeleteFolder(id) {
			writeError(c, errNotFound)
			return
		}
		c.JSON(http.StatusOK, response.OKT(deletedResp{ID: id}))
	}
}

func RegisterFolderRoutes(r gin.IRouter) {
	r.GET("/folders", ApiListFolders())
	r.POST("/folders", ApiAddFolder())
	r.DELETE("/folders/:id", ApiDeleteFolder())
}
