package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ynz20/AppPerruqueriaApi/internal/httperr"
	"github.com/ynz20/AppPerruqueriaApi/internal/httpresp"
	"github.com/ynz20/AppPerruqueriaApi/internal/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// --------- Requests ---------

type UpdateUserRequest struct {
	Name     string  `json:"name" binding:"required,max=100"`
	Surname  string  `json:"surname" binding:"required,max=100"`
	Nick     string  `json:"nick" binding:"required,max=50"`
	Telf     string  `json:"telf" binding:"required,max=20"`
	Email    string  `json:"email" binding:"required,email"`
	Password *string `json:"password,omitempty"`
}

// ======================================================
// LIST (admin)
// ======================================================

func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("id ASC").Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Error al llistar els usuaris.")
		return
	}

	httpresp.List(c, users)
}

// GetWorkers és la lectura sense restricció d'admin que fa servir la
// pantalla de reserves per triar treballador.
func (h *UserHandler) GetWorkers(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("id ASC").Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Error al llistar els treballadors.")
		return
	}

	httpresp.List(c, users)
}

// ======================================================
// SHOW / UPDATE / DELETE
// ======================================================

func (h *UserHandler) Show(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuari no trobat.")
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	dni := strings.ToUpper(c.Param("dni"))

	var user models.User
	if err := h.db.Where("dni = ?", dni).First(&user).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuari no trobat.")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", "Error en la validació de dades.")
		return
	}

	user.Name = req.Name
	user.Surname = req.Surname
	user.Nick = req.Nick
	user.Telf = req.Telf
	user.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.Password != nil && *req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "Error al actualitzar l'usuari.")
			return
		}
		user.PasswordHash = string(hashed)
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Error al actualitzar l'usuari.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    user,
		"message": "Usuari actualitzat correctament",
	})
}

func (h *UserHandler) Destroy(c *gin.Context) {
	id := c.Param("id")

	tx := h.db.Delete(&models.User{}, id)
	if tx.Error != nil {
		httperr.Internal(c, "failed_to_delete_user", "Error al eliminar l'usuari.")
		return
	}
	if tx.RowsAffected == 0 {
		httperr.NotFound(c, "user_not_found", "Usuari no trobat.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Usuari eliminat correctament"})
}
