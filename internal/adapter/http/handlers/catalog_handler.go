package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "barbearia/internal/adapter/http/dto/request"
	response "barbearia/internal/adapter/http/dto/response"
	"barbearia/internal/domain/entities"
	"barbearia/internal/usecase"
	"barbearia/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the stock page: services and products.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListCatalog godoc
// @Summary  List catalog items
// @Tags     catalog
// @Produce  json
// @Param    category query string false "todos, servico or produto"
// @Param    q        query string false "name filter"
// @Success  200 {array} response.CatalogItemResponse
// @Router   /catalog [get]
func (h *CatalogHandler) ListCatalog(c *gin.Context) {
	filter := usecase.CatalogFilter{Query: strings.TrimSpace(c.Query("q"))}
	if raw := strings.TrimSpace(c.Query("category")); raw != "" && raw != "todos" {
		category, err := entities.ParseCatalogCategory(raw)
		if err != nil {
			writeError(c, mapCatalogError(err))
			return
		}
		filter.Category = category
	}

	items, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogItems(items))
}

func (h *CatalogHandler) GetCatalogItem(c *gin.Context) {
	item, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogItem(item))
}

func (h *CatalogHandler) CreateCatalogItem(c *gin.Context) {
	item, ok := bindCatalogItem(c)
	if !ok {
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), item)
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCatalogItem(created))
}

func (h *CatalogHandler) UpdateCatalogItem(c *gin.Context) {
	item, ok := bindCatalogItem(c)
	if !ok {
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), item)
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogItem(updated))
}

func (h *CatalogHandler) DeleteCatalogItem(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func bindCatalogItem(c *gin.Context) (entities.CatalogItem, bool) {
	var payload request.CatalogItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return entities.CatalogItem{}, false
	}
	item, err := payload.ToEntity()
	if err != nil {
		writeError(c, mapCatalogError(err))
		return entities.CatalogItem{}, false
	}
	return item, true
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCatalogID), errors.Is(err, entities.ErrInvalidCatalogItem):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidCategory):
		return pkg.NewDomainErrorSimple("INVALID_CATEGORY", "Category must be servico or produto", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidStockCount):
		return pkg.NewDomainErrorSimple("INVALID_STOCK_COUNT", "Products need a non-negative stock count", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCatalogItemNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_ITEM_NOT_FOUND", "Catalog item not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
