package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/courtspace/court-scheduler/internal/domain/schedule"
	"github.com/courtspace/court-scheduler/internal/dto"
	"github.com/courtspace/court-scheduler/internal/httperr"
	"github.com/courtspace/court-scheduler/internal/httpresp"
	ucSlot "github.com/courtspace/court-scheduler/internal/usecase/slot"
)

// ======================================================
// HANDLER
// ======================================================

type SlotHandler struct {
	createUC *ucSlot.CreateSlot
	updateUC *ucSlot.UpdateSlot
	deleteUC *ucSlot.DeleteSlot
	listUC   *ucSlot.ListSlots
}

func NewSlotHandler(
	createUC *ucSlot.CreateSlot,
	updateUC *ucSlot.UpdateSlot,
	deleteUC *ucSlot.DeleteSlot,
	listUC *ucSlot.ListSlots,
) *SlotHandler {
	return &SlotHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateSlotRequest struct {
	UnitID    uint   `json:"unit_id" binding:"required"`
	DayOfWeek *int   `json:"day_of_week" binding:"required,min=0,max=6"`
	OpenTime  string `json:"open_time" binding:"required"`
	CloseTime string `json:"close_time" binding:"required"`
}

type UpdateSlotRequest struct {
	UnitID    *uint   `json:"unit_id,omitempty"`
	DayOfWeek *int    `json:"day_of_week,omitempty"`
	OpenTime  *string `json:"open_time,omitempty"`
	CloseTime *string `json:"close_time,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}

// ======================================================
// CREATE
// ======================================================

func (h *SlotHandler) Create(c *gin.Context) {
	ownerID := currentUserID(c)

	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	s, err := h.createUC.Execute(c.Request.Context(), ucSlot.CreateSlotInput{
		OwnerID:   ownerID,
		UnitID:    req.UnitID,
		DayOfWeek: *req.DayOfWeek,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SlotFromModel(s))
}

// ======================================================
// UPDATE
// ======================================================

func (h *SlotHandler) Update(c *gin.Context) {
	ownerID := currentUserID(c)

	id, ok := parseUintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid slot id.")
		return
	}

	var req UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	s, err := h.updateUC.Execute(c.Request.Context(), ucSlot.UpdateSlotInput{
		OwnerID:   ownerID,
		ID:        id,
		UnitID:    req.UnitID,
		DayOfWeek: req.DayOfWeek,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
		Active:    req.Active,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SlotFromModel(s))
}

// ======================================================
// DELETE
// ======================================================

func (h *SlotHandler) Delete(c *gin.Context) {
	ownerID := currentUserID(c)

	id, ok := parseUintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid slot id.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), ownerID, id); err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// LIST
// ======================================================

func (h *SlotHandler) List(c *gin.Context) {
	var f schedule.SlotFilter

	if v := c.Query("unit_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_unit_id", "Invalid unit id.")
			return
		}
		unitID := uint(id)
		f.UnitID = &unitID
	}

	if v := c.Query("day_of_week"); v != "" {
		day, err := strconv.Atoi(v)
		if err != nil || day < 0 || day > 6 {
			httperr.BadRequest(c, "invalid_day_of_week", "Day of week must be 0-6.")
			return
		}
		f.DayOfWeek = &day
	}

	if v := c.Query("ids"); v != "" {
		for _, part := range strings.Split(v, ",") {
			id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
			if err != nil {
				httperr.BadRequest(c, "invalid_ids", "Invalid slot id list.")
				return
			}
			f.IDs = append(f.IDs, uint(id))
		}
	}

	slots, total, err := h.listUC.Execute(c.Request.Context(), f, parsePagination(c))
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.List(c, dto.SlotsFromModels(slots), total)
}
