package handlers

import (
	"github.com/gin-gonic/gin"
)

// Error codes returned in the error envelope
const (
	CodeMissingFile     = "MISSING_FILE"
	CodeNoFileSelected  = "NO_FILE_SELECTED"
	CodeInvalidFileType = "INVALID_FILE_TYPE"
	CodeFileTooLarge    = "FILE_TOO_LARGE"
	CodeNoText          = "NO_TEXT"
	CodeProcessing      = "PROCESSING_ERROR"
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeMissingQuestion = "MISSING_QUESTION"
	CodeSessionNotFound = "SESSION_NOT_FOUND"
	CodeNotFound        = "NOT_FOUND"
	CodeInternal        = "INTERNAL_ERROR"
)

func respondOK(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
