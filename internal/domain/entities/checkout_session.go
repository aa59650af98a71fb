package entities

import (
	"errors"
	"strings"
	"time"

	"barbearia/internal/domain/format"
)

// CheckoutState is the position of a checkout session in its state machine:
//
//	idle -> client_selected -> cart_populated -> sale_confirmed
//
// Deselecting the client returns to idle with an empty cart. Opening a
// session always starts in idle.
type CheckoutState string

const (
	CheckoutStateIdle           CheckoutState = "idle"
	CheckoutStateClientSelected CheckoutState = "client_selected"
	CheckoutStateCartPopulated  CheckoutState = "cart_populated"
	CheckoutStateSaleConfirmed  CheckoutState = "sale_confirmed"
)

// WalkInClientRef selects the synthetic client used when there is no appointment.
const WalkInClientRef = "walk-in"

const walkInClientName = "Cliente avulso"

type NavigationKey string

const (
	NavigationKeyUp    NavigationKey = "up"
	NavigationKeyDown  NavigationKey = "down"
	NavigationKeyEnter NavigationKey = "enter"
)

var (
	ErrCheckoutClientNotFound = errors.New("checkout client not found")
	ErrCheckoutNoClient       = errors.New("select a client before confirming the sale")
	ErrCartLineOutOfRange     = errors.New("cart line index out of range")
	ErrInvalidNavigationKey   = errors.New("invalid navigation key")
)

// CheckoutClient is a selectable client: an appointment snapshot or the walk-in.
type CheckoutClient struct {
	ID            string     `json:"id"`
	AppointmentID string     `json:"appointment_id,omitempty"`
	Name          string     `json:"name"`
	TaxID         string     `json:"tax_id"`
	WalkIn        bool       `json:"walk_in"`
	Services      []CartLine `json:"services"`
}

// FormattedTaxID is the CPF as shown on the checkout client panel.
func (c CheckoutClient) FormattedTaxID() string {
	return format.FormatCPF(c.TaxID)
}

func WalkInClient() CheckoutClient {
	return CheckoutClient{ID: WalkInClientRef, Name: walkInClientName, WalkIn: true, Services: []CartLine{}}
}

func ClientFromAppointment(a Appointment) CheckoutClient {
	return CheckoutClient{
		ID:            a.ID,
		AppointmentID: a.ID,
		Name:          a.CustomerName,
		TaxID:         a.CustomerTaxID,
		Services:      a.Service.CartLines(),
	}
}

// CheckoutSession owns the transient cart of one point-of-sale session.
// Every mutation goes through its methods; there is no shared state.
type CheckoutSession struct {
	ID             string           `json:"id"`
	State          CheckoutState    `json:"state"`
	Clients        []CheckoutClient `json:"clients"`
	Catalog        []CatalogItem    `json:"catalog"`
	Staff          []string         `json:"staff"`
	SelectedClient *CheckoutClient  `json:"selected_client,omitempty"`
	SelectedStaff  string           `json:"selected_staff"`
	Cart           []CartLine       `json:"cart"`
	Total          float64          `json:"total"`
	SearchTerm     string           `json:"search_term"`
	SearchResults  []CatalogItem    `json:"search_results"`
	Highlight      int              `json:"highlight"`

	// IdempotencyKey identifies the current checkout attempt and becomes the
	// sale ID. It rotates only after a sale is committed.
	IdempotencyKey string `json:"idempotency_key"`
	// PaymentID is set once the attempt has been charged, so a retried
	// confirm never charges twice.
	PaymentID  string `json:"payment_id,omitempty"`
	LastSaleID string `json:"last_sale_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewCheckoutSession(id, idempotencyKey string, appointments []Appointment, catalog []CatalogItem, staff []string, now time.Time) CheckoutSession {
	clients := make([]CheckoutClient, 0, len(appointments))
	for _, a := range appointments {
		clients = append(clients, ClientFromAppointment(a))
	}
	cat := make([]CatalogItem, len(catalog))
	copy(cat, catalog)
	st := make([]string, len(staff))
	copy(st, staff)

	return CheckoutSession{
		ID:             id,
		State:          CheckoutStateIdle,
		Clients:        clients,
		Catalog:        cat,
		Staff:          st,
		Cart:           []CartLine{},
		SearchResults:  []CatalogItem{},
		IdempotencyKey: idempotencyKey,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// SelectClient replaces the cart with the client's booked services.
// An empty ref deselects, clears the cart and returns to idle.
func (s *CheckoutSession) SelectClient(ref string) error {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		s.SelectedClient = nil
		s.Cart = []CartLine{}
		s.Total = 0
		s.State = CheckoutStateIdle
		return nil
	}

	var client CheckoutClient
	if ref == WalkInClientRef {
		client = WalkInClient()
	} else {
		found := false
		for _, c := range s.Clients {
			if c.ID == ref {
				client = c
				found = true
				break
			}
		}
		if !found {
			return ErrCheckoutClientNotFound
		}
	}

	s.SelectedClient = &client
	s.Cart = cloneLines(client.Services)
	s.recompute()
	return nil
}

func (s *CheckoutSession) SelectStaff(name string) {
	s.SelectedStaff = strings.TrimSpace(name)
}

func (s *CheckoutSession) AddLine(line CartLine) error {
	line.Name = strings.TrimSpace(line.Name)
	if err := line.Validate(); err != nil {
		return err
	}
	s.Cart = append(s.Cart, line)
	s.recompute()
	return nil
}

func (s *CheckoutSession) RemoveLine(index int) error {
	if index < 0 || index >= len(s.Cart) {
		return ErrCartLineOutOfRange
	}
	cart := make([]CartLine, 0, len(s.Cart)-1)
	cart = append(cart, s.Cart[:index]...)
	cart = append(cart, s.Cart[index+1:]...)
	s.Cart = cart
	s.recompute()
	return nil
}

// Search filters the catalog by a case-insensitive substring of the name and
// restarts keyboard navigation at the first result.
func (s *CheckoutSession) Search(term string) []CatalogItem {
	s.SearchTerm = term
	s.Highlight = 0
	s.SearchResults = []CatalogItem{}

	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return s.SearchResults
	}
	for _, it := range s.Catalog {
		if strings.Contains(strings.ToLower(it.Name), needle) {
			s.SearchResults = append(s.SearchResults, it)
		}
	}
	return s.SearchResults
}

// Navigate moves the highlighted result (wrapping at both ends) or, on enter,
// adds it to the cart. It reports whether a line was added.
func (s *CheckoutSession) Navigate(key NavigationKey) (bool, error) {
	n := len(s.SearchResults)
	switch key {
	case NavigationKeyDown:
		if n > 0 {
			s.Highlight = (s.Highlight + 1) % n
		}
	case NavigationKeyUp:
		if n > 0 {
			if s.Highlight <= 0 {
				s.Highlight = n - 1
			} else {
				s.Highlight--
			}
		}
	case NavigationKeyEnter:
		if n == 0 {
			return false, nil
		}
		if s.Highlight >= n {
			s.Highlight = 0
		}
		if err := s.AddLine(s.SearchResults[s.Highlight].AsCartLine()); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, ErrInvalidNavigationKey
	}
	return false, nil
}

// PrepareSale builds the sale for the current attempt without changing the
// session. Empty carts are allowed.
func (s *CheckoutSession) PrepareSale(now time.Time, loc *time.Location) (Sale, error) {
	if s.SelectedClient == nil {
		return Sale{}, ErrCheckoutNoClient
	}
	date, clock := format.SaleStamp(now, loc)
	c := s.SelectedClient
	return Sale{
		ID:            s.IdempotencyKey,
		ClientID:      c.ID,
		ClientName:    c.Name,
		ClientTaxID:   c.TaxID,
		Staff:         s.SelectedStaff,
		AppointmentID: c.AppointmentID,
		Items:         cloneLines(s.Cart),
		Total:         SumLines(s.Cart),
		Date:          date,
		Time:          clock,
		PaymentMethod: PaymentMethodDinheiro,
		PaymentID:     s.PaymentID,
		CreatedAt:     now.UTC(),
	}, nil
}

// CompleteSale consumes the sold client and resets the session for the next
// attempt under nextKey.
func (s *CheckoutSession) CompleteSale(sale Sale, nextKey string) {
	if s.SelectedClient != nil && !s.SelectedClient.WalkIn {
		remaining := make([]CheckoutClient, 0, len(s.Clients))
		for _, c := range s.Clients {
			if c.ID != s.SelectedClient.ID {
				remaining = append(remaining, c)
			}
		}
		s.Clients = remaining
	}
	s.SelectedClient = nil
	s.SelectedStaff = ""
	s.Cart = []CartLine{}
	s.Total = 0
	s.SearchTerm = ""
	s.SearchResults = []CatalogItem{}
	s.Highlight = 0
	s.PaymentID = ""
	s.LastSaleID = sale.ID
	s.IdempotencyKey = nextKey
	s.State = CheckoutStateSaleConfirmed
}

func (s *CheckoutSession) recompute() {
	s.Total = SumLines(s.Cart)
	switch {
	case s.SelectedClient == nil:
		s.State = CheckoutStateIdle
	case len(s.Cart) == 0:
		s.State = CheckoutStateClientSelected
	default:
		s.State = CheckoutStateCartPopulated
	}
}
