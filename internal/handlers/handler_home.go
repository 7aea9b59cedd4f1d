package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHome reports the status of the server.
func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Ledger View API up"})
}
