package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ynz20/AppPerruqueriaApi/internal/httperr"
	"github.com/ynz20/AppPerruqueriaApi/internal/httpresp"
	"github.com/ynz20/AppPerruqueriaApi/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description string  `json:"description" binding:"required,max=255"`
	Price       float64 `json:"price" binding:"required"`
	Estimation  int     `json:"estimation" binding:"required,min=0"`
}

// ======================================================
// CRUD (admin)
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Error al llistar els serveis.")
		return
	}

	httpresp.List(c, services)
}

// Pull és la lectura per a usuaris no administradors (pantalla de reserva).
func (h *ServiceHandler) Pull(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Error al llistar els serveis.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", "Error en la validació de dades.")
		return
	}

	service := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Estimation:  req.Estimation,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Error al crear el servei.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":    service,
		"message": "Servei creat correctament",
	})
}

func (h *ServiceHandler) Show(c *gin.Context) {
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Servei no trobat.")
		return
	}

	httpresp.OK(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Servei no trobat.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", "Error en la validació de dades.")
		return
	}

	service.Name = req.Name
	service.Description = req.Description
	service.Price = req.Price
	service.Estimation = req.Estimation

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Error al actualitzar el servei.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    service,
		"message": "Servei actualitzat correctament",
	})
}

func (h *ServiceHandler) Destroy(c *gin.Context) {
	id := c.Param("id")

	tx := h.db.Delete(&models.Service{}, id)
	if tx.Error != nil {
		httperr.Internal(c, "failed_to_delete_service", "Error al eliminar el servei.")
		return
	}
	if tx.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Servei no trobat.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Servei eliminat correctament"})
}
