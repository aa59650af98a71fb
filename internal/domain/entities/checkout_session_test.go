package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.March, 14, 13, 5, 9, 0, time.UTC)

func newTestSession(appointments ...Appointment) CheckoutSession {
	catalog := []CatalogItem{
		{ID: "c1", Name: "Corte", Price: 35, Category: CatalogCategoryServico},
		{ID: "c2", Name: "Barba", Price: 25, Category: CatalogCategoryServico},
		{ID: "c3", Name: "Coloração", Price: 80, Category: CatalogCategoryServico},
	}
	return NewCheckoutSession("s1", "key-1", appointments, catalog, []string{"Carlos", "Bruno"}, testNow)
}

func TestCheckoutSession_TotalFollowsLines(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.SelectClient(WalkInClientRef))

	prices := []float64{0.1, 0.2, 35, 19.99, 0.01}
	for _, p := range prices {
		require.NoError(t, s.AddLine(CartLine{Name: "x", UnitPrice: p}))
		assert.Equal(t, SumLines(s.Cart), s.Total)
	}
	assert.Equal(t, 55.3, s.Total)

	require.NoError(t, s.RemoveLine(0))
	assert.Equal(t, 55.2, s.Total)
	require.NoError(t, s.RemoveLine(len(s.Cart)-1))
	assert.Equal(t, 55.19, s.Total)
	for len(s.Cart) > 0 {
		require.NoError(t, s.RemoveLine(0))
	}
	assert.Equal(t, 0.0, s.Total)
	assert.Equal(t, CheckoutStateClientSelected, s.State)
}

func TestCheckoutSession_SelectSingleServiceAppointment(t *testing.T) {
	a := Appointment{ID: "a1", CustomerName: "Ana", CustomerTaxID: "11122233344",
		Service: SingleService(ServiceSnapshot{ID: "c1", Name: "Corte", Price: 35})}
	s := newTestSession(a)

	require.NoError(t, s.SelectClient("a1"))

	assert.Equal(t, []CartLine{{ItemID: "c1", Name: "Corte", UnitPrice: 35}}, s.Cart)
	assert.Equal(t, 35.0, s.Total)
	assert.Equal(t, CheckoutStateCartPopulated, s.State)
	assert.Equal(t, "111.222.333-44", s.SelectedClient.FormattedTaxID())
}

func TestCheckoutSession_SelectMultiServiceAppointmentKeepsOrder(t *testing.T) {
	a := Appointment{ID: "a1", CustomerName: "Ana", Service: ManyServices(
		ServiceSnapshot{Name: "Barba", Price: 25},
		ServiceSnapshot{Name: "Corte", Price: 35},
		ServiceSnapshot{Name: "Sobrancelha", Price: 10},
	)}
	s := newTestSession(a)

	require.NoError(t, s.SelectClient("a1"))

	require.Len(t, s.Cart, 3)
	assert.Equal(t, "Barba", s.Cart[0].Name)
	assert.Equal(t, "Corte", s.Cart[1].Name)
	assert.Equal(t, "Sobrancelha", s.Cart[2].Name)
	assert.Equal(t, 70.0, s.Total)
}

func TestCheckoutSession_SelectAppointmentWithoutService(t *testing.T) {
	s := newTestSession(Appointment{ID: "a1", CustomerName: "Ana", Service: NoService()})

	require.NoError(t, s.SelectClient("a1"))

	assert.Empty(t, s.Cart)
	assert.Equal(t, CheckoutStateClientSelected, s.State)
}

func TestCheckoutSession_DeselectClearsCart(t *testing.T) {
	a := Appointment{ID: "a1", CustomerName: "Ana",
		Service: SingleService(ServiceSnapshot{Name: "Corte", Price: 35})}
	s := newTestSession(a)
	require.NoError(t, s.SelectClient("a1"))
	require.NoError(t, s.AddLine(CartLine{Name: "Pomada", UnitPrice: 30}))

	require.NoError(t, s.SelectClient(""))

	assert.Nil(t, s.SelectedClient)
	assert.Empty(t, s.Cart)
	assert.Equal(t, 0.0, s.Total)
	assert.Equal(t, CheckoutStateIdle, s.State)
}

func TestCheckoutSession_UnknownClient(t *testing.T) {
	s := newTestSession()
	err := s.SelectClient("nope")
	assert.ErrorIs(t, err, ErrCheckoutClientNotFound)
	assert.Equal(t, CheckoutStateIdle, s.State)
}

func TestCheckoutSession_SaleScenario(t *testing.T) {
	a := Appointment{ID: "a1", CustomerName: "Ana", CustomerTaxID: "11122233344",
		Service: SingleService(ServiceSnapshot{ID: "c1", Name: "Corte", Price: 35})}
	s := newTestSession(a)
	require.NoError(t, s.SelectClient("a1"))
	s.SelectStaff("Carlos")

	sale, err := s.PrepareSale(testNow, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, "key-1", sale.ID)
	assert.Equal(t, "Ana", sale.ClientName)
	assert.Equal(t, "Carlos", sale.Staff)
	assert.Equal(t, "a1", sale.AppointmentID)
	assert.Equal(t, 35.0, sale.Total)
	assert.Equal(t, []CartLine{{ItemID: "c1", Name: "Corte", UnitPrice: 35}}, sale.Items)
	assert.Equal(t, "14/03/2026", sale.Date)
	assert.Equal(t, "13:05:09", sale.Time)
	assert.NoError(t, sale.CheckTotal())

	s.CompleteSale(sale, "key-2")

	assert.Empty(t, s.Clients)
	assert.Empty(t, s.Cart)
	assert.Nil(t, s.SelectedClient)
	assert.Empty(t, s.SelectedStaff)
	assert.Equal(t, "key-2", s.IdempotencyKey)
	assert.Equal(t, "key-1", s.LastSaleID)
	assert.Equal(t, CheckoutStateSaleConfirmed, s.State)
}

func TestCheckoutSession_PrepareSaleWithoutClient(t *testing.T) {
	s := newTestSession()
	_, err := s.PrepareSale(testNow, time.UTC)
	assert.ErrorIs(t, err, ErrCheckoutNoClient)
}

func TestCheckoutSession_WalkInEmptyCart(t *testing.T) {
	s := newTestSession(Appointment{ID: "a1", CustomerName: "Ana"})
	require.NoError(t, s.SelectClient(WalkInClientRef))

	sale, err := s.PrepareSale(testNow, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 0.0, sale.Total)
	assert.Empty(t, sale.Items)
	assert.Empty(t, sale.AppointmentID)

	s.CompleteSale(sale, "key-2")
	assert.Len(t, s.Clients, 1)
}

func TestCheckoutSession_SearchAndNavigate(t *testing.T) {
	s := newTestSession()

	results := s.Search("co")
	require.Len(t, results, 2)
	assert.Equal(t, "Corte", results[0].Name)
	assert.Equal(t, "Coloração", results[1].Name)
	assert.Equal(t, 0, s.Highlight)

	_, err := s.Navigate(NavigationKeyDown)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Highlight)
	_, err = s.Navigate(NavigationKeyDown)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Highlight)

	_, err = s.Navigate(NavigationKeyUp)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Highlight)

	added, err := s.Navigate(NavigationKeyEnter)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []CartLine{{ItemID: "c3", Name: "Coloração", UnitPrice: 80}}, s.Cart)
	assert.Equal(t, 80.0, s.Total)
}

func TestCheckoutSession_SearchEdgeCases(t *testing.T) {
	s := newTestSession()

	assert.Empty(t, s.Search(""))
	assert.Empty(t, s.Search("xyz"))

	added, err := s.Navigate(NavigationKeyEnter)
	require.NoError(t, err)
	assert.False(t, added)
	_, err = s.Navigate(NavigationKeyDown)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Highlight)

	_, err = s.Navigate("left")
	assert.ErrorIs(t, err, ErrInvalidNavigationKey)

	assert.Len(t, s.Search("CORTE"), 1)

	// "coloração" has no "cor" substring.
	only := s.Search("cor")
	require.Len(t, only, 1)
	assert.Equal(t, "Corte", only[0].Name)
}

func TestCheckoutSession_LineValidation(t *testing.T) {
	s := newTestSession()
	assert.ErrorIs(t, s.AddLine(CartLine{Name: "  ", UnitPrice: 10}), ErrInvalidCartLine)
	assert.ErrorIs(t, s.AddLine(CartLine{Name: "x", UnitPrice: -1}), ErrInvalidCartLine)
	assert.ErrorIs(t, s.RemoveLine(0), ErrCartLineOutOfRange)
	assert.ErrorIs(t, s.RemoveLine(-1), ErrCartLineOutOfRange)
}
