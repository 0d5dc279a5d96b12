package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/middleware"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/repository"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	catalog *service.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(catalog *service.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, log: log}
}

// viewer resolves the request's viewer context. Anonymous requests are
// valid browsers; they just get redacted contact fields.
func (h *CatalogHandler) viewer(c *gin.Context) (service.Viewer, bool) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return service.AnonymousViewer(), true
	}
	v, err := h.catalog.ViewerFor(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "viewer lookup failed"})
		return service.Viewer{}, false
	}
	return v, true
}

// Browse handles GET /catalog with optional state, municipality, contact
// and pagination query params.
func (h *CatalogHandler) Browse(c *gin.Context) {
	v, ok := h.viewer(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	f := repository.BrowseFilters{
		State:            c.Query("state"),
		Municipality:     c.Query("municipality"),
		ContactSubstring: c.Query("contact"),
		Limit:            limit,
		Offset:           offset,
	}
	results, err := h.catalog.Browse(c.Request.Context(), v, f)
	if err != nil {
		h.log.Error("browse failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": results, "count": len(results)})
}

// Detail handles GET /catalog/:companion_id for single-listing views.
func (h *CatalogHandler) Detail(c *gin.Context) {
	v, ok := h.viewer(c)
	if !ok {
		return
	}
	companionID, err := strconv.ParseUint(c.Param("companion_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid companion id"})
		return
	}
	d, err := h.catalog.View(c.Request.Context(), v, uint(companionID))
	if err != nil {
		if errors.Is(err, service.ErrListingUnavailable) {
			c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
			return
		}
		h.log.Error("detail view failed", zap.Uint64("companion_id", companionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
		return
	}
	c.JSON(http.StatusOK, d)
}
