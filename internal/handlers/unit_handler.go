package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/courtspace/court-scheduler/internal/infra/cache"
	"github.com/courtspace/court-scheduler/internal/models"
)

type UnitHandler struct {
	db    *gorm.DB
	units *cache.CachedUnitDirectory
}

func NewUnitHandler(db *gorm.DB, units *cache.CachedUnitDirectory) *UnitHandler {
	return &UnitHandler{db: db, units: units}
}

// --------- Requests ---------

type CreateUnitRequest struct {
	EstablishmentID uint   `json:"establishment_id" binding:"required"`
	Name            string `json:"name" binding:"required"`
	Sport           string `json:"sport"`
}

type UpdateUnitRequest struct {
	Name   *string `json:"name,omitempty"`
	Sport  *string `json:"sport,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *UnitHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Unit{})

	if v := strings.TrimSpace(c.Query("establishment_id")); v != "" {
		q = q.Where("establishment_id = ?", v)
	}

	activeStr := strings.TrimSpace(c.Query("active"))
	if activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	var units []models.Unit
	if err := q.
		Order("id ASC").
		Find(&units).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_units"})
		return
	}

	c.JSON(http.StatusOK, units)
}

func (h *UnitHandler) Create(c *gin.Context) {
	ownerID := currentUserID(c)

	var req CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var count int64
	h.db.Model(&models.Establishment{}).
		Where("id = ? AND owner_id = ?", req.EstablishmentID, ownerID).
		Count(&count)
	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "establishment_not_found"})
		return
	}

	unit := models.Unit{
		EstablishmentID: req.EstablishmentID,
		Name:            req.Name,
		Sport:           strings.ToLower(req.Sport),
		Active:          true,
	}

	if err := h.db.Create(&unit).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_unit"})
		return
	}

	h.units.Invalidate(c.Request.Context(), unit.ID)

	c.JSON(http.StatusCreated, unit)
}

func (h *UnitHandler) Update(c *gin.Context) {
	ownerID := currentUserID(c)

	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	var unit models.Unit
	if err := h.db.
		Joins("JOIN establishments ON establishments.id = units.establishment_id").
		Where("units.id = ? AND establishments.owner_id = ?", id, ownerID).
		First(&unit).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "unit_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_unit"})
		return
	}

	var req UpdateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		unit.Name = *req.Name
	}
	if req.Sport != nil {
		unit.Sport = strings.ToLower(*req.Sport)
	}
	if req.Active != nil {
		unit.Active = *req.Active
	}

	if err := h.db.Save(&unit).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_unit"})
		return
	}

	h.units.Invalidate(c.Request.Context(), unit.ID)

	c.JSON(http.StatusOK, unit)
}

// Delete removes a unit. Deleting an id that does not exist is a
// success, matching the slot delete policy.
func (h *UnitHandler) Delete(c *gin.Context) {
	ownerID := currentUserID(c)

	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	if err := h.db.
		Where("id = ? AND establishment_id IN (?)",
			id,
			h.db.Model(&models.Establishment{}).Select("id").Where("owner_id = ?", ownerID),
		).
		Delete(&models.Unit{}).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_unit"})
		return
	}

	h.units.Invalidate(c.Request.Context(), id)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
