package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/courtspace/court-scheduler/internal/domain/schedule"
	"github.com/courtspace/court-scheduler/internal/dto"
	"github.com/courtspace/court-scheduler/internal/httperr"
	"github.com/courtspace/court-scheduler/internal/httpresp"
	ucReservation "github.com/courtspace/court-scheduler/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	createUC *ucReservation.CreateReservation
	cancelUC *ucReservation.CancelReservation
	listUC   *ucReservation.ListReservations
}

func NewReservationHandler(
	createUC *ucReservation.CreateReservation,
	cancelUC *ucReservation.CancelReservation,
	listUC *ucReservation.ListReservations,
) *ReservationHandler {
	return &ReservationHandler{
		createUC: createUC,
		cancelUC: cancelUC,
		listUC:   listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	ReservationDate string `json:"reservation_date" binding:"required"`
	SlotIDs         []uint `json:"slot_ids" binding:"required,min=1"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	userID := currentUserID(c)

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	date, err := parseDate(req.ReservationDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	res, slots, err := h.createUC.Execute(c.Request.Context(), ucReservation.CreateReservationInput{
		UserID:          userID,
		ReservationDate: date,
		SlotIDs:         req.SlotIDs,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	out := dto.ReservationFromModel(res)
	out.SlotDetails = dto.SlotsFromModels(slots)

	c.JSON(http.StatusCreated, out)
}

// ======================================================
// CANCEL
// ======================================================

func (h *ReservationHandler) Cancel(c *gin.Context) {
	userID := currentUserID(c)

	id, ok := parseUintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid reservation id.")
		return
	}

	res, err := h.cancelUC.Execute(c.Request.Context(), userID, id)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReservationFromModel(res))
}

// ======================================================
// LIST
// ======================================================

func (h *ReservationHandler) List(c *gin.Context) {
	var f schedule.ReservationFilter

	if v := c.Query("user_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_user_id", "Invalid user id.")
			return
		}
		userID := uint(id)
		f.UserID = &userID
	}

	if v := c.Query("reservation_date"); v != "" {
		date, err := parseDate(v)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}
		f.Date = &date
	}

	if v := c.Query("status"); v != "" {
		status, ok := schedule.ParseStatus(v)
		if !ok {
			httperr.BadRequest(c, "invalid_status", "Status must be CONFIRMED or CANCELLED.")
			return
		}
		f.Status = &status
	}

	reservations, total, err := h.listUC.Execute(c.Request.Context(), f, parsePagination(c))
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.List(c, dto.ReservationsFromModels(reservations), total)
}
