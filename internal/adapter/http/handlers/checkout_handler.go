package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	request "barbearia/internal/adapter/http/dto/request"
	response "barbearia/internal/adapter/http/dto/response"
	"barbearia/internal/domain/entities"
	"barbearia/internal/usecase"
	"barbearia/pkg"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler exposes the point-of-sale session: one resource per open
// checkout screen.
type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// OpenSession godoc
// @Summary  Open a checkout session
// @Tags     checkout
// @Produce  json
// @Success  201 {object} response.CheckoutSessionResponse
// @Router   /checkout/sessions [post]
func (h *CheckoutHandler) OpenSession(c *gin.Context) {
	s, err := h.usecase.Open(c.Request.Context())
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCheckoutSession(s))
}

func (h *CheckoutHandler) GetSession(c *gin.Context) {
	s, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	h.respond(c, s, err)
}

func (h *CheckoutHandler) CloseSession(c *gin.Context) {
	if err := h.usecase.Close(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CheckoutHandler) SelectClient(c *gin.Context) {
	var payload request.SelectClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	s, err := h.usecase.SelectClient(c.Request.Context(), c.Param("id"), payload.ClientID)
	h.respond(c, s, err)
}

func (h *CheckoutHandler) SelectStaff(c *gin.Context) {
	var payload request.SelectStaffRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	s, err := h.usecase.SelectStaff(c.Request.Context(), c.Param("id"), payload.Staff)
	h.respond(c, s, err)
}

func (h *CheckoutHandler) Search(c *gin.Context) {
	s, err := h.usecase.Search(c.Request.Context(), c.Param("id"), c.Query("term"))
	h.respond(c, s, err)
}

// Navigate applies an up/down/enter key to the search results.
func (h *CheckoutHandler) Navigate(c *gin.Context) {
	var payload request.NavigationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	key, err := payload.ResolveKey()
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	s, err := h.usecase.Navigate(c.Request.Context(), c.Param("id"), key)
	h.respond(c, s, err)
}

func (h *CheckoutHandler) AddLine(c *gin.Context) {
	var payload request.CartLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	s, err := h.usecase.AddLine(c.Request.Context(), c.Param("id"), in)
	h.respond(c, s, err)
}

func (h *CheckoutHandler) RemoveLine(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		writeError(c, mapCheckoutError(entities.ErrCartLineOutOfRange))
		return
	}
	s, err := h.usecase.RemoveLine(c.Request.Context(), c.Param("id"), index)
	h.respond(c, s, err)
}

// Confirm godoc
// @Summary  Confirm the sale of a checkout session
// @Tags     checkout
// @Accept   json
// @Produce  json
// @Param    id   path string                  true  "session id"
// @Param    body body request.ConfirmRequest  false "payment"
// @Success  201 {object} response.ConfirmResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  502 {object} pkg.HTTPError
// @Router   /checkout/sessions/{id}/confirm [post]
func (h *CheckoutHandler) Confirm(c *gin.Context) {
	payload, err := readConfirmRequest(c)
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	res, err := h.usecase.Confirm(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusCreated, response.ConfirmResponse{
		Sale:    response.FromSale(res.Sale),
		Session: response.FromCheckoutSession(res.Session),
	})
}

// readConfirmRequest accepts an empty body (cash sale) and the Mercado Pago
// payload either under "payment" or under "mp_payload".
func readConfirmRequest(c *gin.Context) (request.ConfirmRequest, error) {
	var payload request.ConfirmRequest
	raw, err := c.GetRawData()
	if err != nil {
		return payload, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return payload, nil
	}
	if !json.Valid(raw) {
		return payload, errors.New("request body is not valid json")
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return payload, err
	}
	if len(payload.Payment) == 0 {
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(raw, &envelope); err == nil {
			if wrapped, ok := envelope["mp_payload"]; ok {
				if t := bytes.TrimSpace(wrapped); len(t) == 0 || string(t) == "null" {
					return payload, errors.New("mp_payload cannot be empty")
				}
				payload.Payment = wrapped
			}
		}
	}
	return payload, nil
}

func (h *CheckoutHandler) respond(c *gin.Context, s entities.CheckoutSession, err error) {
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutSession(s))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCheckoutID),
		errors.Is(err, request.ErrInvalidCheckoutLine),
		errors.Is(err, entities.ErrInvalidCartLine),
		errors.Is(err, entities.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrInvalidMPPayload):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidNavigationKey):
		return pkg.NewDomainErrorSimple("INVALID_NAVIGATION_KEY", "Key must be up, down or enter", http.StatusBadRequest)
	case errors.Is(err, entities.ErrCheckoutNoClient):
		return pkg.NewDomainErrorSimple("CHECKOUT_NO_CLIENT", "Select a client before confirming the sale", http.StatusBadRequest)
	case errors.Is(err, entities.ErrCartLineOutOfRange):
		return pkg.NewDomainErrorSimple("CART_LINE_OUT_OF_RANGE", "Cart line not found", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCheckoutSessionNotFound):
		return pkg.NewDomainErrorSimple("CHECKOUT_SESSION_NOT_FOUND", "Checkout session not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrCheckoutClientNotFound):
		return pkg.NewDomainErrorSimple("CHECKOUT_CLIENT_NOT_FOUND", "Client not found in this session", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCatalogItemNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_ITEM_NOT_FOUND", "Catalog item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCheckoutAttemptRotated):
		return pkg.NewDomainErrorSimple("CHECKOUT_RETRY", "Checkout attempt expired, confirm again", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainError("PAYMENT_NOT_APPROVED", "Payment was not approved", err, http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("PAYMENT_INVALID", "Payment rejected as invalid by the gateway", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainError("PAYMENT_FAILED", "Payment gateway refused the credentials", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentNotConfigured):
		return pkg.NewDomainError("PAYMENT_UNAVAILABLE", "Payment gateway not configured", err, http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}
