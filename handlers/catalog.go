package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homebook/services/catalog"
	"homebook/utils"
)

var CatalogSvc catalog.CatalogService

// SetCatalogService injects the catalog service used by these handlers.
func SetCatalogService(s catalog.CatalogService) {
	CatalogSvc = s
}

// ListServices returns all bookable services.
func ListServices(c *gin.Context) {
	services, err := CatalogSvc.ListServices(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GetService returns a single service by ID.
func GetService(c *gin.Context) {
	service, err := CatalogSvc.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "service not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": service})
}

// ListVariants returns the variants of a service.
func ListVariants(c *gin.Context) {
	variants, err := CatalogSvc.ListVariants(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch variants", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"variants": variants})
}

// GetVariant returns a single variant by ID.
func GetVariant(c *gin.Context) {
	variant, err := CatalogSvc.GetVariant(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "variant not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"variant": variant})
}
