package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanam197/cosmetic-ecommerce-web-be/services"
)

func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch services.KindOf(err) {
	case services.KindInvalidArgument:
		status = http.StatusBadRequest
	case services.KindNotFound:
		status = http.StatusNotFound
	}
	body := gin.H{"success": false, "message": services.MessageOf(err)}
	if status == http.StatusInternalServerError {
		body["error"] = err.Error()
	}
	c.JSON(status, body)
}
