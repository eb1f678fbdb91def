package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wandersilva5/foodie-hub-api/models"
	"github.com/wandersilva5/foodie-hub-api/utils"
)

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

// CreateProduct -> add a catalog item. Stock counters start at zero;
// restocking goes through the inventory endpoints.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req struct {
		CategoryID      uint    `json:"category_id" binding:"required"`
		Name            string  `json:"name" binding:"required"`
		Description     string  `json:"description"`
		Price           float64 `json:"price" binding:"required,gt=0"`
		ImageUrl        *string `json:"image_url"`
		StockManagement bool    `json:"stock_management"`
		StockQuantity   int     `json:"stock_quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	product := models.Product{
		CategoryID:      req.CategoryID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		ImageUrl:        req.ImageUrl,
		Available:       true,
		StockManagement: req.StockManagement,
		StockQuantity:   req.StockQuantity,
	}
	if err := pc.DB.Create(&product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Product created: %s (price=%s)", product.Name, utils.FormatCurrency(product.Price))
	utils.RespondJSON(c, http.StatusCreated, "Product created", product)
}

// GetAllProducts -> full catalog, optionally filtered by category
func (pc *ProductController) GetAllProducts(c *gin.Context) {
	q := pc.DB.Preload("Category").Order("name ASC")
	if categoryID := c.Query("category_id"); categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}
	if c.Query("available") == "true" {
		q = q.Where("available = ?", true)
	}

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of products", products)
}

// GetProductByID -> one catalog item
func (pc *ProductController) GetProductByID(c *gin.Context) {
	productID := c.Param("product_id")

	var product models.Product
	if err := pc.DB.Preload("Category").First(&product, productID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Product detail", product)
}

// UpdateProduct -> catalog fields only. Stock counters are owned by the
// inventory ledger and cannot be edited here.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	productID := c.Param("product_id")

	var product models.Product
	if err := pc.DB.First(&product, productID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		CategoryID      *uint    `json:"category_id"`
		Name            *string  `json:"name"`
		Description     *string  `json:"description"`
		Price           *float64 `json:"price"`
		ImageUrl        *string  `json:"image_url"`
		Available       *bool    `json:"available"`
		StockManagement *bool    `json:"stock_management"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
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
	if req.ImageUrl != nil {
		product.ImageUrl = req.ImageUrl
	}
	if req.Available != nil {
		product.Available = *req.Available
	}
	if req.StockManagement != nil {
		product.StockManagement = *req.StockManagement
	}

	if err := pc.DB.Save(&product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product updated", product)
}

// DeleteProduct -> hide the product from the menu (catalog rows back
// order history, so no hard delete)
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	productID := c.Param("product_id")

	var product models.Product
	if err := pc.DB.First(&product, productID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	product.Available = false
	if err := pc.DB.Save(&product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product removed from menu", gin.H{"product_id": product.ID})
}
