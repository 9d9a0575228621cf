package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ynz20/AppPerruqueriaApi/internal/httperr"
	"github.com/ynz20/AppPerruqueriaApi/internal/httpresp"
	"github.com/ynz20/AppPerruqueriaApi/internal/logger"
	"github.com/ynz20/AppPerruqueriaApi/internal/models"
	ucReservation "github.com/ynz20/AppPerruqueriaApi/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	db *gorm.DB

	createUC       *ucReservation.CreateReservation
	updateUC       *ucReservation.UpdateReservation
	statusUC       *ucReservation.UpdateStatus
	rateUC         *ucReservation.RateReservation
	availabilityUC *ucReservation.AvailableWorkers
	listUC         *ucReservation.ListReservations
}

func NewReservationHandler(
	db *gorm.DB,
	createUC *ucReservation.CreateReservation,
	updateUC *ucReservation.UpdateReservation,
	statusUC *ucReservation.UpdateStatus,
	rateUC *ucReservation.RateReservation,
	availabilityUC *ucReservation.AvailableWorkers,
	listUC *ucReservation.ListReservations,
) *ReservationHandler {
	return &ReservationHandler{
		db:             db,
		createUC:       createUC,
		updateUC:       updateUC,
		statusUC:       statusUC,
		rateUC:         rateUC,
		availabilityUC: availabilityUC,
		listUC:         listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ReservationRequest struct {
	Date      string `json:"date" binding:"required"`
	Hour      string `json:"hour" binding:"required,max=8"`
	WorkerDNI string `json:"worker_dni" binding:"required,max=20"`
	ClientDNI string `json:"client_dni" binding:"required,max=20"`
	ServiceID uint   `json:"service_id" binding:"required"`
	ShiftID   *uint  `json:"shift_id"`
	Status    string `json:"status" binding:"max=20"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,max=20"`
}

type RateRequest struct {
	Rating  int     `json:"rating" binding:"required,min=1,max=5"`
	Comment *string `json:"comment"`
}

type AvailableWorkersRequest struct {
	Date      string `json:"date" binding:"required"`
	Hour      string `json:"hour" binding:"required,max=8"`
	ServiceID uint   `json:"service_id" binding:"required"`
}

// ======================================================
// ERROR MAPPING
// ======================================================

// writeError tradueix els codis de negoci del nucli als estats HTTP que
// sempre ha tornat aquesta API.
func writeError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		logger.Log.Error("reservation internal error", zap.Error(err))
		httperr.Internal(c, "internal_error", "Error intern.")
		return
	}

	switch code {
	case "invalid_date", "invalid_hour", "invalid_status", "invalid_duration", "invalid_rating":
		httperr.Unprocessable(c, code, "Error en la validació de dades.")
	case "service_not_found":
		httperr.NotFound(c, code, "Servei no trobat.")
	case "reservation_not_found":
		httperr.NotFound(c, code, "Reserva no trobada.")
	case "slot_occupied":
		httperr.Conflict(c, code, "El treballador ja té una reserva en aquesta franja.")
	case "no_open_shift":
		httperr.BadRequest(c, code, "No hi ha cap torn obert.")
	case "invalid_state":
		httperr.BadRequest(c, code, "La reserva no admet aquest canvi d'estat.")
	case "reservation_not_completed":
		httperr.BadRequest(c, code, "Només es poden valorar reserves completades.")
	default:
		httperr.BadRequest(c, code, "Operació no permesa.")
	}
}

// ======================================================
// CRUD
// ======================================================

func (h *ReservationHandler) List(c *gin.Context) {
	var reservations []models.Reservation
	if err := h.db.
		Preload("Worker").
		Preload("Client").
		Preload("Service").
		Order("date ASC, hour ASC").
		Find(&reservations).Error; err != nil {

		httperr.Internal(c, "failed_to_list_reservations", "Error al llistar les reserves.")
		return
	}

	httpresp.List(c, reservations)
}

func (h *ReservationHandler) Create(c *gin.Context) {
	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", "Error en la validació de dades.")
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), ucReservation.CreateReservationInput{
		Date:      req.Date,
		Hour:      req.Hour,
		WorkerDNI: strings.ToUpper(req.WorkerDNI),
		ClientDNI: strings.ToUpper(req.ClientDNI),
		ServiceID: req.ServiceID,
		ShiftID:   req.ShiftID,
		Status:    req.Status,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"reservation": created,
		"message":     "Reserva creada correctament",
	})
}

func (h *ReservationHandler) Show(c *gin.Context) {
	id := c.Param("id")

	var reservation models.Reservation
	if err := h.db.
		Preload("Worker").
		Preload("Client").
		Preload("Service").
		First(&reservation, id).Error; err != nil {

		httperr.NotFound(c, "reservation_not_found", "Reserva no trobada.")
		return
	}

	httpresp.OK(c, reservation)
}

func (h *ReservationHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.Unprocessable(c, "invalid_id", "Error en la validació de dades.")
		return
	}

	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", "Error en la validació de dades.")
		return
	}

	status := req.Status
	if status == "" {
		status = "pending"
	}

	updated, err := h.updateUC.Execute(c.Request.Context(), uint(id), ucReservation.UpdateReservationInput{
		Date:      req.Date,
		Hour:      req.Hour,
		WorkerDNI: strings.ToUpper(req.WorkerDNI),
		ClientDNI: strings.ToUpper(req.ClientDNI),
		ServiceID: req.ServiceID,
		ShiftID:   req.ShiftID,
		Status:    status,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reservation": updated,
		"message":     "Reserva actualitzada correctament",
	})
}

func (h *ReservationHandler) Destroy(c *gin.Context) {
	id := c.Param("id")

	tx := h.db.Delete(&models.Reservation{}, id)
	if tx.Error != nil {
		httperr.Internal(c, "failed_to_delete_reservation", "Error al eliminar la reserva.")
		return
	}
	if tx.RowsAffected == 0 {
		httperr.NotFound(c, "reservation_not_found", "Reserva no trobada.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reserva eliminada correctament"})
}

// ======================================================
// STATUS / RATING
// ======================================================

func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.Unprocessable(c, "invalid_id", "Error en la validació de dades.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", "Error en la validació de dades.")
		return
	}

	updated, err := h.statusUC.Execute(c.Request.Context(), uint(id), req.Status)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reservation": updated,
		"message":     "Estat actualitzat correctament",
	})
}

func (h *ReservationHandler) Rate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.Unprocessable(c, "invalid_id", "Error en la validació de dades.")
		return
	}

	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_rating", "Error en la validació de dades.")
		return
	}

	updated, err := h.rateUC.Execute(c.Request.Context(), uint(id), req.Rating, req.Comment)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reservation": updated,
		"message":     "Reserva valorada correctament",
	})
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *ReservationHandler) AvailableWorkers(c *gin.Context) {
	var req AvailableWorkersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", "Error en la validació de dades.")
		return
	}

	workers, err := h.availabilityUC.Execute(c.Request.Context(), ucReservation.AvailableWorkersInput{
		Date:      req.Date,
		Hour:      req.Hour,
		ServiceID: req.ServiceID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"workers": workers})
}

// ======================================================
// LIST BY CLIENT / WORKER
// ======================================================

func (h *ReservationHandler) ByClient(c *gin.Context) {
	dni := strings.ToUpper(c.Param("dni"))

	reservations, err := h.listUC.ByClient(c.Request.Context(), dni)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.ListWithMessage(c, reservations, "Cap reserva trobada")
}

func (h *ReservationHandler) ByWorker(c *gin.Context) {
	dni := strings.ToUpper(c.Param("dni"))

	reservations, err := h.listUC.ByWorker(c.Request.Context(), dni)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.ListWithMessage(c, reservations, "Cap reserva trobada")
}
