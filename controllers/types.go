package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/lehoangkhoi01/fashion-shop-be/errs"

	"github.com/gin-gonic/gin"
)

// DefaultContextTimeout bounds every store/cache round trip behind a handler.
const DefaultContextTimeout = 10 * time.Second

// parseID parses a positive integer path parameter.
func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// pageParams parses page/pageSize query parameters with defaults.
func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return page, pageSize
}

// respondError maps an application error to its HTTP status.
func respondError(c *gin.Context, err error) {
	c.JSON(errs.Status(err), gin.H{"error": err.Error()})
}
