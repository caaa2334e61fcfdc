package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Schedule proxy endpoint.
	GetScheduleHandler gin.HandlerFunc

	// Contact relay endpoints.
	SubmitContactHandler gin.HandlerFunc
}
