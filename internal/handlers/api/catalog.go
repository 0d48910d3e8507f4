package api

import (
	"net/http"

	"github.com/KirkDiggler/sportsmeet/internal/catalog"
	"github.com/gin-gonic/gin"
)

// catalogResource publishes the event names, rank tables and roster the UI builds its forms from
type catalogResource struct {
	catalog *catalog.Catalog
}

func (r *catalogResource) GetName() string {
	return "catalog"
}

func (r *catalogResource) Register(api *gin.RouterGroup, guard *Guard) {
	api.GET("/catalog", r.get)
}

func (r *catalogResource) get(c *gin.Context) {
	c.JSON(http.StatusOK, r.catalog)
}
