package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ynz20/AppPerruqueriaApi/internal/httperr"
	"github.com/ynz20/AppPerruqueriaApi/internal/httpresp"
	"github.com/ynz20/AppPerruqueriaApi/internal/models"
)

type ProductHandler struct {
	db *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

// --------- Requests ---------

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description string  `json:"description" binding:"max=255"`
	Price       float64 `json:"price" binding:"required"`
	Stock       int     `json:"stock" binding:"min=0"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
}

// ======================================================
// CRUD
// ======================================================

func (h *ProductHandler) List(c *gin.Context) {
	var products []models.Product
	if err := h.db.Order("id ASC").Find(&products).Error; err != nil {
		httperr.Internal(c, "failed_to_list_products", "Error al llistar els productes.")
		return
	}

	httpresp.List(c, products)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", "Error en la validació de dades.")
		return
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	}

	if err := h.db.Create(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_create_product", "Error al crear el producte.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":    product,
		"message": "Producte creat correctament",
	})
}

func (h *ProductHandler) Show(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	if err := h.db.First(&product, id).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Producte no trobat.")
		return
	}

	httpresp.OK(c, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	if err := h.db.First(&product, id).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Producte no trobat.")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", "Error en la validació de dades.")
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil && *req.Stock >= 0 {
		product.Stock = *req.Stock
	}

	if err := h.db.Save(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_update_product", "Error al actualitzar el producte.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    product,
		"message": "Producte actualitzat correctament",
	})
}

func (h *ProductHandler) Destroy(c *gin.Context) {
	id := c.Param("id")

	tx := h.db.Delete(&models.Product{}, id)
	if tx.Error != nil {
		httperr.Internal(c, "failed_to_delete_product", "Error al eliminar el producte.")
		return
	}
	if tx.RowsAffected == 0 {
		httperr.NotFound(c, "product_not_found", "Producte no trobat.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Producte eliminat correctament"})
}

// ======================================================
// STOCK
// ======================================================

func (h *ProductHandler) DecrementStock(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	if err := h.db.First(&product, id).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Producte no trobat.")
		return
	}

	// mai per sota de zero
	if product.Stock > 0 {
		product.Stock--
	}

	if err := h.db.Save(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_update_product", "Error al actualitzar l'estoc.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "stock": product.Stock})
}

func (h *ProductHandler) IncrementStock(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	if err := h.db.First(&product, id).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Producte no trobat.")
		return
	}

	product.Stock++

	if err := h.db.Save(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_update_product", "Error al actualitzar l'estoc.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "stock": product.Stock})
}
