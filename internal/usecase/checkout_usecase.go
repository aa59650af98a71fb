package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"barbearia/internal/domain/entities"
	"barbearia/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrCheckoutSessionNotFound = errors.New("checkout session not found")
	ErrInvalidCheckoutID       = errors.New("invalid checkout session id")
	ErrPaymentNotApproved      = errors.New("payment not approved")
	ErrPaymentNotConfigured    = errors.New("payment gateway not configured")
	// ErrCheckoutAttemptRotated means the store rejected the attempt key for
	// different content; the session now holds a fresh key and can be retried.
	ErrCheckoutAttemptRotated = errors.New("checkout attempt superseded, retry")
)

// CheckoutLineInput adds a catalog item by ID, or an ad hoc line by name and price.
type CheckoutLineInput struct {
	ItemID string
	Name   string
	Price  *float64
}

type ConfirmInput struct {
	PaymentMethod string
	// PaymentPayload carries Mercado Pago fields (payment_method_id, token, payer).
	PaymentPayload json.RawMessage
}

type ConfirmResult struct {
	Sale    entities.Sale
	Session entities.CheckoutSession
}

// CheckoutOptions are the non-repository settings of the checkout.
type CheckoutOptions struct {
	Location          *time.Location
	SandboxPayerEmail string
}

// ICheckoutUseCase drives point-of-sale sessions: pick a client, build the
// cart, confirm the sale.
type ICheckoutUseCase interface {
	Open(ctx context.Context) (entities.CheckoutSession, error)
	Get(ctx context.Context, id string) (entities.CheckoutSession, error)
	Close(ctx context.Context, id string) error
	SelectClient(ctx context.Context, id, ref string) (entities.CheckoutSession, error)
	SelectStaff(ctx context.Context, id, name string) (entities.CheckoutSession, error)
	Search(ctx context.Context, id, term string) (entities.CheckoutSession, error)
	Navigate(ctx context.Context, id string, key entities.NavigationKey) (entities.CheckoutSession, error)
	AddLine(ctx context.Context, id string, in CheckoutLineInput) (entities.CheckoutSession, error)
	RemoveLine(ctx context.Context, id string, index int) (entities.CheckoutSession, error)
	Confirm(ctx context.Context, id string, in ConfirmInput) (ConfirmResult, error)
}

type CheckoutUseCase struct {
	sessions     interfaces.ICheckoutSessionStore
	appointments interfaces.IAppointmentRepository
	catalog      interfaces.ICatalogRepository
	employees    interfaces.IEmployeeRepository
	sales        interfaces.ISaleRepository
	gateway      interfaces.IPaymentGateway

	opts   CheckoutOptions
	locks  *keyedMutex
	tracer trace.Tracer
	now    func() time.Time
	newID  func() string
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	sessions interfaces.ICheckoutSessionStore,
	appointments interfaces.IAppointmentRepository,
	catalog interfaces.ICatalogRepository,
	employees interfaces.IEmployeeRepository,
	sales interfaces.ISaleRepository,
	gateway interfaces.IPaymentGateway,
	opts CheckoutOptions,
) *CheckoutUseCase {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &CheckoutUseCase{
		sessions:     sessions,
		appointments: appointments,
		catalog:      catalog,
		employees:    employees,
		sales:        sales,
		gateway:      gateway,
		opts:         opts,
		locks:        newKeyedMutex(),
		tracer:       otel.Tracer("barbearia/usecase/checkout"),
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// Open loads appointments, catalog and barbers and starts a session in idle.
func (u *CheckoutUseCase) Open(ctx context.Context) (entities.CheckoutSession, error) {
	appointments, err := u.appointments.List(ctx)
	if err != nil {
		return entities.CheckoutSession{}, fmt.Errorf("list appointments: %w", err)
	}
	catalog, err := u.catalog.List(ctx)
	if err != nil {
		return entities.CheckoutSession{}, fmt.Errorf("list catalog: %w", err)
	}
	employees, err := u.employees.List(ctx)
	if err != nil {
		return entities.CheckoutSession{}, fmt.Errorf("list staff: %w", err)
	}
	staff := make([]string, 0, len(employees))
	for _, e := range employees {
		if e.Role == entities.EmployeeRoleBarbeiro {
			staff = append(staff, e.Name)
		}
	}

	s := entities.NewCheckoutSession(u.newID(), u.newID(), appointments, catalog, staff, u.now().UTC())
	if err := u.sessions.Save(ctx, s); err != nil {
		return entities.CheckoutSession{}, err
	}
	log.Info().Str("session_id", s.ID).Int("clients", len(s.Clients)).Int("catalog", len(s.Catalog)).Msg("checkout session opened")
	return s, nil
}

func (u *CheckoutUseCase) Get(ctx context.Context, id string) (entities.CheckoutSession, error) {
	return u.load(ctx, id)
}

func (u *CheckoutUseCase) Close(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	unlock := u.locks.Lock(id)
	defer unlock()

	if _, err := u.load(ctx, id); err != nil {
		return err
	}
	return u.sessions.Delete(ctx, strings.TrimSpace(id))
}

func (u *CheckoutUseCase) SelectClient(ctx context.Context, id, ref string) (entities.CheckoutSession, error) {
	return u.mutate(ctx, id, func(s *entities.CheckoutSession) error {
		return s.SelectClient(ref)
	})
}

func (u *CheckoutUseCase) SelectStaff(ctx context.Context, id, name string) (entities.CheckoutSession, error) {
	return u.mutate(ctx, id, func(s *entities.CheckoutSession) error {
		s.SelectStaff(name)
		return nil
	})
}

func (u *CheckoutUseCase) Search(ctx context.Context, id, term string) (entities.CheckoutSession, error) {
	return u.mutate(ctx, id, func(s *entities.CheckoutSession) error {
		s.Search(term)
		return nil
	})
}

func (u *CheckoutUseCase) Navigate(ctx context.Context, id string, key entities.NavigationKey) (entities.CheckoutSession, error) {
	return u.mutate(ctx, id, func(s *entities.CheckoutSession) error {
		_, err := s.Navigate(key)
		return err
	})
}

func (u *CheckoutUseCase) AddLine(ctx context.Context, id string, in CheckoutLineInput) (entities.CheckoutSession, error) {
	return u.mutate(ctx, id, func(s *entities.CheckoutSession) error {
		if itemID := strings.TrimSpace(in.ItemID); itemID != "" {
			for _, it := range s.Catalog {
				if it.ID == itemID {
					return s.AddLine(it.AsCartLine())
				}
			}
			return ErrCatalogItemNotFound
		}
		if in.Price == nil {
			return entities.ErrInvalidCartLine
		}
		return s.AddLine(entities.CartLine{Name: in.Name, UnitPrice: *in.Price})
	})
}

func (u *CheckoutUseCase) RemoveLine(ctx context.Context, id string, index int) (entities.CheckoutSession, error) {
	return u.mutate(ctx, id, func(s *entities.CheckoutSession) error {
		return s.RemoveLine(index)
	})
}

// Confirm charges (when paying through Mercado Pago) and commits the sale.
// On failure the session keeps its cart so the operator can retry; a retry
// reuses the same sale ID and never charges a captured attempt twice.
func (u *CheckoutUseCase) Confirm(ctx context.Context, id string, in ConfirmInput) (ConfirmResult, error) {
	id = strings.TrimSpace(id)
	unlock := u.locks.Lock(id)
	defer unlock()

	ctx, span := u.tracer.Start(ctx, "checkout.confirm", trace.WithAttributes(attribute.String("checkout.session_id", id)))
	defer span.End()

	s, err := u.load(ctx, id)
	if err != nil {
		return ConfirmResult{}, err
	}
	method, err := entities.ParsePaymentMethod(strings.TrimSpace(in.PaymentMethod))
	if err != nil {
		return ConfirmResult{}, err
	}
	sale, err := s.PrepareSale(u.now(), u.opts.Location)
	if err != nil {
		return ConfirmResult{}, err
	}
	sale.PaymentMethod = method
	span.SetAttributes(
		attribute.String("sale.id", sale.ID),
		attribute.Float64("sale.total", sale.Total),
		attribute.String("sale.payment_method", string(method)),
	)

	if method == entities.PaymentMethodMercadoPago && s.PaymentID == "" && sale.Total > 0 {
		paymentID, err := u.charge(ctx, sale, in.PaymentPayload)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "payment failed")
			log.Error().Err(err).Str("session_id", s.ID).Str("sale_id", sale.ID).Msg("checkout payment failed")
			return ConfirmResult{}, err
		}
		s.PaymentID = paymentID
		sale.PaymentID = paymentID
		s.UpdatedAt = u.now().UTC()
		if err := u.sessions.Save(ctx, s); err != nil {
			log.Error().Err(err).Str("session_id", s.ID).Str("payment_id", paymentID).Msg("could not record payment on session")
		}
	}

	committed, err := u.sales.Commit(ctx, sale)
	if errors.Is(err, interfaces.ErrSaleAlreadyCommitted) {
		log.Warn().Str("session_id", s.ID).Str("sale_id", sale.ID).Msg("sale already committed, completing session")
		committed, err = u.sales.GetByID(ctx, sale.ID)
		if err == nil && committed.ID == "" {
			// The key was spent by an attempt that never landed.
			err = u.rotateAttempt(ctx, &s)
		}
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "commit failed")
		log.Error().Err(err).Str("session_id", s.ID).Str("sale_id", sale.ID).Msg("sale commit failed")
		return ConfirmResult{}, err
	}

	s.CompleteSale(committed, u.newID())
	s.UpdatedAt = u.now().UTC()
	if err := u.sessions.Save(ctx, s); err != nil {
		return ConfirmResult{}, err
	}

	log.Info().
		Str("session_id", s.ID).
		Str("sale_id", committed.ID).
		Str("appointment_id", committed.AppointmentID).
		Float64("total", committed.Total).
		Msg("sale confirmed")
	return ConfirmResult{Sale: committed, Session: s}, nil
}

func (u *CheckoutUseCase) rotateAttempt(ctx context.Context, s *entities.CheckoutSession) error {
	previous := s.IdempotencyKey
	s.IdempotencyKey = u.newID()
	s.UpdatedAt = u.now().UTC()
	if err := u.sessions.Save(ctx, *s); err != nil {
		return err
	}
	log.Warn().Str("session_id", s.ID).Str("previous_key", previous).Str("key", s.IdempotencyKey).Msg("checkout attempt key rotated")
	return ErrCheckoutAttemptRotated
}

func (u *CheckoutUseCase) charge(ctx context.Context, sale entities.Sale, raw json.RawMessage) (string, error) {
	if u.gateway == nil {
		return "", ErrPaymentNotConfigured
	}
	payload, err := buildPaymentPayload(sale, raw, u.opts.SandboxPayerEmail)
	if err != nil {
		return "", err
	}
	paymentID, status, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		return "", classifyGatewayError(err)
	}
	switch status {
	case "approved", "authorized", "in_process", "pending":
	default:
		return "", fmt.Errorf("%w: status %s", ErrPaymentNotApproved, status)
	}
	log.Info().Str("sale_id", sale.ID).Str("payment_id", paymentID).Str("status", status).Msg("payment created")
	return paymentID, nil
}

func (u *CheckoutUseCase) mutate(ctx context.Context, id string, fn func(*entities.CheckoutSession) error) (entities.CheckoutSession, error) {
	id = strings.TrimSpace(id)
	unlock := u.locks.Lock(id)
	defer unlock()

	s, err := u.load(ctx, id)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if err := fn(&s); err != nil {
		return entities.CheckoutSession{}, err
	}
	s.UpdatedAt = u.now().UTC()
	if err := u.sessions.Save(ctx, s); err != nil {
		return entities.CheckoutSession{}, err
	}
	return s, nil
}

func (u *CheckoutUseCase) load(ctx context.Context, id string) (entities.CheckoutSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CheckoutSession{}, ErrInvalidCheckoutID
	}
	s, err := u.sessions.Get(ctx, id)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if s.ID == "" {
		return entities.CheckoutSession{}, ErrCheckoutSessionNotFound
	}
	return s, nil
}

// keyedMutex serializes work per session ID and drops idle entries.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: map[string]*refMutex{}}
}

func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()
		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
