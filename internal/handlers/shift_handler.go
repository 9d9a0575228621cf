package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ynz20/AppPerruqueriaApi/internal/httperr"
	"github.com/ynz20/AppPerruqueriaApi/internal/httpresp"
	"github.com/ynz20/AppPerruqueriaApi/internal/middleware"
	"github.com/ynz20/AppPerruqueriaApi/internal/models"
	ucShift "github.com/ynz20/AppPerruqueriaApi/internal/usecase/shift"
)

type ShiftHandler struct {
	db     *gorm.DB
	toggle *ucShift.ToggleShift
}

func NewShiftHandler(db *gorm.DB, toggle *ucShift.ToggleShift) *ShiftHandler {
	return &ShiftHandler{db: db, toggle: toggle}
}

// --------- Requests ---------

type ShiftRequest struct {
	StartTime time.Time  `json:"start_time" binding:"required"`
	EndTime   *time.Time `json:"end_time"`
	Date      string     `json:"date" binding:"required"`
}

// ======================================================
// CRUD
// ======================================================

// List retorna els torns amb les reserves imputades i les seves dades
// creuades, del més recent al més antic.
func (h *ShiftHandler) List(c *gin.Context) {
	var shifts []models.Shift
	if err := h.db.
		Preload("Reservations").
		Preload("Reservations.Service").
		Preload("Reservations.Client").
		Preload("Reservations.Worker").
		Order("id DESC").
		Find(&shifts).Error; err != nil {

		httperr.Internal(c, "failed_to_list_shifts", "Error al llistar els torns.")
		return
	}

	httpresp.List(c, shifts)
}

func (h *ShiftHandler) Create(c *gin.Context) {
	var req ShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", "Error en la validació de dades.")
		return
	}

	shift := models.Shift{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Date:      req.Date,
	}

	if err := h.db.Create(&shift).Error; err != nil {
		httperr.Internal(c, "failed_to_create_shift", "Error al crear el torn.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"shift":   shift,
		"message": "Torn creat correctament",
	})
}

func (h *ShiftHandler) Show(c *gin.Context) {
	id := c.Param("id")

	var shift models.Shift
	if err := h.db.First(&shift, id).Error; err != nil {
		httperr.NotFound(c, "shift_not_found", "Torn no trobat.")
		return
	}

	httpresp.OK(c, shift)
}

func (h *ShiftHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var shift models.Shift
	if err := h.db.First(&shift, id).Error; err != nil {
		httperr.NotFound(c, "shift_not_found", "Torn no trobat.")
		return
	}

	var req ShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", "Error en la validació de dades.")
		return
	}

	shift.StartTime = req.StartTime
	shift.EndTime = req.EndTime
	shift.Date = req.Date

	if err := h.db.Save(&shift).Error; err != nil {
		httperr.Internal(c, "failed_to_update_shift", "Error al actualitzar el torn.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"shift":   shift,
		"message": "Torn actualitzat correctament",
	})
}

func (h *ShiftHandler) Destroy(c *gin.Context) {
	id := c.Param("id")

	tx := h.db.Delete(&models.Shift{}, id)
	if tx.Error != nil {
		httperr.Internal(c, "failed_to_delete_shift", "Error al eliminar el torn.")
		return
	}
	if tx.RowsAffected == 0 {
		httperr.NotFound(c, "shift_not_found", "Torn no trobat.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Torn eliminat correctament"})
}

// ======================================================
// TOGGLE / STATUS
// ======================================================

func (h *ShiftHandler) Toggle(c *gin.Context) {
	dni := c.MustGet(middleware.ContextUserDNI).(string)

	result, err := h.toggle.Execute(c.Request.Context(), dni)
	if err != nil {
		httperr.Internal(c, "failed_to_toggle_shift", "Error en gestionar el torn.")
		return
	}

	if result.Opened {
		c.JSON(http.StatusCreated, gin.H{
			"shift":   result.Shift,
			"message": "Torn creat correctament",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"shift":   result.Shift,
		"message": "Torn tancat correctament",
	})
}

func (h *ShiftHandler) Status(c *gin.Context) {
	active, err := h.toggle.IsOpen(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_get_shift_status", "Error en obtenir l'estat del torn.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"active": active})
}
