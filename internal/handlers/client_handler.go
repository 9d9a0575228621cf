package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ynz20/AppPerruqueriaApi/internal/httperr"
	"github.com/ynz20/AppPerruqueriaApi/internal/httpresp"
	"github.com/ynz20/AppPerruqueriaApi/internal/models"
	"github.com/ynz20/AppPerruqueriaApi/internal/validators"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// --------- Requests ---------

type ClientRequest struct {
	DNI     string `json:"dni" binding:"required,max=20"`
	Name    string `json:"name" binding:"required,max=100"`
	Surname string `json:"surname" binding:"required,max=100"`
	Telf    string `json:"telf" binding:"max=20"`
	Email   string `json:"email" binding:"omitempty,email"`
}

// ======================================================
// CRUD
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.Client{})
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(surname) LIKE ? OR dni LIKE ? OR telf LIKE ?",
			like, like, like, like,
		)
	}

	var clients []models.Client
	if err := q.Order("created_at DESC").Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Error al llistar els clients.")
		return
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", "Error en la validació de dades.")
		return
	}

	dni := strings.ToUpper(strings.TrimSpace(req.DNI))
	if !validators.IsValidDNI(dni) {
		httperr.Unprocessable(c, "invalid_dni", "El DNI no és vàlid.")
		return
	}

	client := models.Client{
		DNI:     dni,
		Name:    req.Name,
		Surname: req.Surname,
		Telf:    req.Telf,
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Error al afegir el client.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"client":  client,
		"message": "Client creat correctament",
	})
}

func (h *ClientHandler) Show(c *gin.Context) {
	dni := strings.ToUpper(c.Param("dni"))

	var client models.Client
	if err := h.db.Where("dni = ?", dni).First(&client).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Client no trobat.")
		return
	}

	httpresp.OK(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	dni := strings.ToUpper(c.Param("dni"))

	var client models.Client
	if err := h.db.Where("dni = ?", dni).First(&client).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Client no trobat.")
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", "Error en la validació de dades.")
		return
	}

	client.Name = req.Name
	client.Surname = req.Surname
	client.Telf = req.Telf
	client.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Error al actualitzar el client.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"client":  client,
		"message": "Client actualitzat correctament",
	})
}

func (h *ClientHandler) Destroy(c *gin.Context) {
	dni := strings.ToUpper(c.Param("dni"))

	tx := h.db.Where("dni = ?", dni).Delete(&models.Client{})
	if tx.Error != nil {
		httperr.Internal(c, "failed_to_delete_client", "Error al eliminar el client.")
		return
	}
	if tx.RowsAffected == 0 {
		httperr.NotFound(c, "client_not_found", "Client no trobat.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Client eliminat correctament"})
}
