package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"goleironow/middleware"
	"goleironow/models"
	"goleironow/services/reservation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReservationHandler serves reservation creation, listing and status updates.
type ReservationHandler struct {
	Service reservation.ReservationService
}

func NewReservationHandler(svc reservation.ReservationService) *ReservationHandler {
	return &ReservationHandler{Service: svc}
}

// CreateReservationHandler books a goalkeeper for the authenticated client.
func (h *ReservationHandler) CreateReservationHandler(c *gin.Context) {
	logger := getLogger(c)
	sess := middleware.CurrentSession(c)

	var input reservation.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	res, err := h.Service.Create(sess.Record.User.ID, input)
	switch {
	case errors.Is(err, reservation.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date, period and a duration of at least one hour are required"})
	case errors.Is(err, reservation.ErrGoalkeeperNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Goalkeeper not found"})
	case err != nil:
		logger.Error("Failed to create reservation", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reservation"})
	default:
		c.JSON(http.StatusCreated, res)
	}
}

// MyReservationsHandler lists the authenticated client's reservations,
// newest date first.
func (h *ReservationHandler) MyReservationsHandler(c *gin.Context) {
	logger := getLogger(c)
	sess := middleware.CurrentSession(c)

	list, err := h.Service.ListForUser(sess.Record.User.ID)
	if err != nil {
		logger.Error("Failed to list reservations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reservations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": list})
}

// ReceivedReservationsHandler lists the authenticated goalkeeper's received
// reservations, newest date first.
func (h *ReservationHandler) ReceivedReservationsHandler(c *gin.Context) {
	logger := getLogger(c)
	sess := middleware.CurrentSession(c)

	list, err := h.Service.ListForGoalkeeper(sess.Record.Goalkeeper.ID)
	if err != nil {
		logger.Error("Failed to list received reservations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reservations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": list})
}

// UpdateReservationStatusHandler transitions a reservation on behalf of the
// authenticated actor.
func (h *ReservationHandler) UpdateReservationStatusHandler(c *gin.Context) {
	logger := getLogger(c)
	sess := middleware.CurrentSession(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation id"})
		return
	}

	var req struct {
		Status models.ReservationStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Service.UpdateStatus(sess.Record.Role, sess.Record.IdentityID(), id, req.Status)
	switch {
	case errors.Is(err, reservation.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
	case errors.Is(err, reservation.ErrNotAllowed):
		c.JSON(http.StatusForbidden, gin.H{"error": "Reservation does not belong to you"})
	case errors.Is(err, reservation.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "Status change not allowed from the reservation's current state"})
	case err != nil:
		logger.Error("Failed to update reservation status",
			zap.Int("reservationID", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reservation"})
	default:
		c.JSON(http.StatusOK, updated)
	}
}
