package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID reads the integer :id path parameter. Non-integer ids report
// false so handlers answer as if the resource does not exist.
func pathID(ctx *gin.Context) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}
