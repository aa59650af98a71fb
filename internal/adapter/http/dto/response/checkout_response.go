package response

import (
	"time"

	"barbearia/internal/domain/entities"
	"barbearia/internal/domain/format"
)

type CartLineResponse struct {
	ItemID         string  `json:"item_id,omitempty"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	PriceFormatted string  `json:"price_formatted"`
}

type CheckoutClientResponse struct {
	ID            string             `json:"id"`
	AppointmentID string             `json:"appointment_id,omitempty"`
	Name          string             `json:"name"`
	TaxID         string             `json:"tax_id"`
	TaxIDDisplay  string             `json:"tax_id_formatted"`
	WalkIn        bool               `json:"walk_in"`
	Services      []CartLineResponse `json:"services"`
}

type CheckoutSessionResponse struct {
	ID             string                   `json:"id"`
	State          string                   `json:"state"`
	Clients        []CheckoutClientResponse `json:"clients"`
	Staff          []string                 `json:"staff"`
	SelectedClient *CheckoutClientResponse  `json:"selected_client"`
	SelectedStaff  string                   `json:"selected_staff"`
	Cart           []CartLineResponse       `json:"cart"`
	Total          float64                  `json:"total"`
	TotalFormatted string                   `json:"total_formatted"`
	SearchTerm     string                   `json:"search_term"`
	SearchResults  []CatalogItemResponse    `json:"search_results"`
	Highlight      int                      `json:"highlight"`
	IdempotencyKey string                   `json:"idempotency_key"`
	LastSaleID     string                   `json:"last_sale_id,omitempty"`
	UpdatedAt      time.Time                `json:"updated_at"`
}

func FromCartLines(lines []entities.CartLine) []CartLineResponse {
	out := make([]CartLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, CartLineResponse{
			ItemID:         l.ItemID,
			Name:           l.Name,
			Price:          l.UnitPrice,
			PriceFormatted: format.FormatBRL(l.UnitPrice),
		})
	}
	return out
}

func fromCheckoutClient(c entities.CheckoutClient) CheckoutClientResponse {
	return CheckoutClientResponse{
		ID:            c.ID,
		AppointmentID: c.AppointmentID,
		Name:          c.Name,
		TaxID:         c.TaxID,
		TaxIDDisplay:  c.FormattedTaxID(),
		WalkIn:        c.WalkIn,
		Services:      FromCartLines(c.Services),
	}
}

func FromCheckoutSession(s entities.CheckoutSession) CheckoutSessionResponse {
	clients := make([]CheckoutClientResponse, 0, len(s.Clients)+1)
	clients = append(clients, fromCheckoutClient(entities.WalkInClient()))
	for _, c := range s.Clients {
		clients = append(clients, fromCheckoutClient(c))
	}

	var selected *CheckoutClientResponse
	if s.SelectedClient != nil {
		c := fromCheckoutClient(*s.SelectedClient)
		selected = &c
	}

	staff := s.Staff
	if staff == nil {
		staff = []string{}
	}

	return CheckoutSessionResponse{
		ID:             s.ID,
		State:          string(s.State),
		Clients:        clients,
		Staff:          staff,
		SelectedClient: selected,
		SelectedStaff:  s.SelectedStaff,
		Cart:           FromCartLines(s.Cart),
		Total:          s.Total,
		TotalFormatted: format.FormatBRL(s.Total),
		SearchTerm:     s.SearchTerm,
		SearchResults:  FromCatalogItems(s.SearchResults),
		Highlight:      s.Highlight,
		IdempotencyKey: s.IdempotencyKey,
		LastSaleID:     s.LastSaleID,
		UpdatedAt:      s.UpdatedAt,
	}
}

type ConfirmResponse struct {
	Sale    SaleResponse            `json:"sale"`
	Session CheckoutSessionResponse `json:"session"`
}
