// Package response builds the JSON envelopes both the public site and
// the admin panel consume: {"success": true, "data": ...} on the happy
// path, {"success": false, "error": {code, message[, details]}} otherwise.
// Error codes are stable strings the frontend switches on.
package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   errBody(code, message, nil),
	})
}

// ErrorWithDetails attaches a free-form details value, used where the
// concrete failure text has to reach the admin screen.
func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   errBody(code, message, details),
	})
}

func errBody(code, message string, details any) gin.H {
	body := gin.H{
		"code":    code,
		"message": message,
	}
	if details != nil {
		body["details"] = details
	}
	return body
}
