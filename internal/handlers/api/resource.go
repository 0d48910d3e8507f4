package api

import "github.com/gin-gonic/gin"

// Resource is a group of related endpoints mounted under /api
type Resource interface {
	// GetName returns the resource name used in logs
	GetName() string

	// Register mounts the resource's routes, guarding them as needed
	Register(api *gin.RouterGroup, guard *Guard)
}
