package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func registerHomeRoutes(r *gin.Engine) {
	r.GET("/", home)
}

// home godoc
// @Summary Service banner
// @Description Returns the service name
// @Tags home
// @Produce plain
// @Success 200 {string} string "erp-ledger"
// @Router / [get]
func home(c *gin.Context) {
	c.String(http.StatusOK, "erp-ledger")
}
