package handlers

import (
	"errors"
	"net/http"

	response "barbearia/internal/adapter/http/dto/response"
	"barbearia/internal/usecase"
	"barbearia/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// SaleHandler reads the sale store. Sales are only written by checkout.
type SaleHandler struct {
	usecase usecase.ISaleUseCase
}

func NewSaleHandler(uc usecase.ISaleUseCase) *SaleHandler {
	return &SaleHandler{usecase: uc}
}

func (h *SaleHandler) ListSales(c *gin.Context) {
	sales, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapSaleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSales(sales))
}

func (h *SaleHandler) GetSale(c *gin.Context) {
	sale, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapSaleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSale(sale))
}

// Reconcile deletes appointments that already have a committed sale.
func (h *SaleHandler) Reconcile(c *gin.Context) {
	res, err := h.usecase.ReconcileAppointments(c.Request.Context())
	if err != nil {
		writeError(c, mapSaleError(err))
		return
	}
	log.Info().Int("sales_checked", res.SalesChecked).Int("deleted", len(res.Deleted)).Msg("appointments reconciled")
	deleted := res.Deleted
	if deleted == nil {
		deleted = []string{}
	}
	c.JSON(http.StatusOK, response.ReconcileResponse{SalesChecked: res.SalesChecked, Deleted: deleted})
}

func mapSaleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSaleID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSaleNotFound):
		return pkg.NewDomainErrorSimple("SALE_NOT_FOUND", "Sale not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
