package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ynz20/AppPerruqueriaApi/internal/config"
	"github.com/ynz20/AppPerruqueriaApi/internal/models"
	"github.com/ynz20/AppPerruqueriaApi/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	DNI      string `json:"dni" binding:"required,max=20"`
	Name     string `json:"name" binding:"required,max=100"`
	Surname  string `json:"surname" binding:"required,max=100"`
	Nick     string `json:"nick" binding:"required,max=50"`
	Telf     string `json:"telf" binding:"required,max=20"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Nick     string `json:"nick"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "invalid_request",
			"message": "Error en la validació de dades",
			"details": err.Error(),
		})
		return
	}

	dni := strings.ToUpper(strings.TrimSpace(req.DNI))
	if !validators.IsValidDNI(dni) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "invalid_dni",
			"message": "El DNI no és vàlid",
		})
		return
	}

	// Comprovacions d'unicitat una a una, amb missatge concret per camp.
	var count int64
	h.db.Model(&models.User{}).Where("dni = ?", dni).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dni_already_exists", "message": "Aquest DNI ja existeix"})
		return
	}

	h.db.Model(&models.User{}).Where("nick = ?", req.Nick).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nick_already_exists", "message": "Aquest nom d'usuari ja existeix"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_exists", "message": "Aquest email ja existeix"})
		return
	}

	h.db.Model(&models.User{}).Where("telf = ?", req.Telf).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "telf_already_exists", "message": "Aquest telèfon ja existeix"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	user := models.User{
		DNI:          dni,
		Name:         req.Name,
		Surname:      req.Surname,
		Nick:         req.Nick,
		Telf:         req.Telf,
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := h.db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_user"})
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":    user,
		"token":   token,
		"message": "Usuari registrat correctament",
	})
}

// Login accepta email o nick indistintament.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "invalid_request",
			"message": "Error en la validació de dades",
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.
		Where("email = ? OR nick = ?", email, req.Nick).
		First(&user).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    user,
		"token":   token,
		"message": "Benvingut",
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":     user.ID,
		"dni":     user.DNI,
		"isAdmin": user.IsAdmin,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
