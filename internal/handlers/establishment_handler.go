package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/courtspace/court-scheduler/internal/models"
)

type EstablishmentHandler struct {
	db *gorm.DB
}

func NewEstablishmentHandler(db *gorm.DB) *EstablishmentHandler {
	return &EstablishmentHandler{db: db}
}

// --------- Requests ---------

type CreateEstablishmentRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type UpdateEstablishmentRequest struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// --------- Handlers ---------

func (h *EstablishmentHandler) List(c *gin.Context) {
	ownerID := currentUserID(c)

	var establishments []models.Establishment
	if err := h.db.
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&establishments).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_establishments"})
		return
	}

	c.JSON(http.StatusOK, establishments)
}

func (h *EstablishmentHandler) Create(c *gin.Context) {
	ownerID := currentUserID(c)

	var req CreateEstablishmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	est := models.Establishment{
		OwnerID: ownerID,
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	}

	if err := h.db.Create(&est).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_establishment"})
		return
	}

	c.JSON(http.StatusCreated, est)
}

func (h *EstablishmentHandler) Update(c *gin.Context) {
	ownerID := currentUserID(c)

	id := c.Param("id")

	var est models.Establishment
	if err := h.db.
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&est).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "establishment_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_establishment"})
		return
	}

	var req UpdateEstablishmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		est.Name = *req.Name
	}
	if req.Phone != nil {
		est.Phone = *req.Phone
	}
	if req.Address != nil {
		est.Address = *req.Address
	}

	if err := h.db.Save(&est).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_establishment"})
		return
	}

	c.JSON(http.StatusOK, est)
}

// Delete removes an establishment owned by the caller. An absent id is
// a success, matching the unit and slot delete policy.
func (h *EstablishmentHandler) Delete(c *gin.Context) {
	ownerID := currentUserID(c)

	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	if err := h.db.
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&models.Establishment{}).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_establishment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
