package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/courtspace/court-scheduler/internal/dto"
	"github.com/courtspace/court-scheduler/internal/models"
)

// PublicHandler serves the unauthenticated browsing endpoints customers
// use before logging in to book.
type PublicHandler struct {
	db *gorm.DB
}

func NewPublicHandler(db *gorm.DB) *PublicHandler {
	return &PublicHandler{db: db}
}

func (h *PublicHandler) ListUnits(c *gin.Context) {
	var units []models.Unit
	if err := h.db.
		Where("active = ?", true).
		Order("id ASC").
		Find(&units).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_units"})
		return
	}

	c.JSON(http.StatusOK, units)
}

func (h *PublicHandler) ListUnitSlots(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	q := h.db.Where("unit_id = ? AND active = ?", id, true)

	if v := c.Query("day_of_week"); v != "" {
		day, err := strconv.Atoi(v)
		if err != nil || day < 0 || day > 6 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_day_of_week"})
			return
		}
		q = q.Where("day_of_week = ?", day)
	}

	var slots []models.Slot
	if err := q.
		Order("day_of_week ASC, open_minute ASC").
		Find(&slots).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_slots"})
		return
	}

	c.JSON(http.StatusOK, dto.SlotsFromModels(slots))
}
