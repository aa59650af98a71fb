package usecase

import (
	"context"
	"errors"
	"strings"

	"barbearia/internal/domain/entities"
	"barbearia/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

var (
	ErrSaleNotFound  = errors.New("sale not found")
	ErrInvalidSaleID = errors.New("invalid sale id")
)

// ReconcileResult lists the appointments removed because a sale already consumed them.
type ReconcileResult struct {
	SalesChecked int      `json:"sales_checked"`
	Deleted      []string `json:"deleted"`
}

// ISaleUseCase reads the append-only sale store. Sales are written only by checkout.
type ISaleUseCase interface {
	List(ctx context.Context) ([]entities.Sale, error)
	GetByID(ctx context.Context, id string) (entities.Sale, error)
	ReconcileAppointments(ctx context.Context) (ReconcileResult, error)
}

type SaleUseCase struct {
	repo         interfaces.ISaleRepository
	appointments interfaces.IAppointmentRepository
}

var _ ISaleUseCase = (*SaleUseCase)(nil)

func NewSaleUseCase(repo interfaces.ISaleRepository, appointments interfaces.IAppointmentRepository) *SaleUseCase {
	return &SaleUseCase{repo: repo, appointments: appointments}
}

func (u *SaleUseCase) List(ctx context.Context) ([]entities.Sale, error) {
	return u.repo.List(ctx)
}

func (u *SaleUseCase) GetByID(ctx context.Context, id string) (entities.Sale, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Sale{}, ErrInvalidSaleID
	}
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Sale{}, err
	}
	if s.ID == "" {
		return entities.Sale{}, ErrSaleNotFound
	}
	return s, nil
}

// ReconcileAppointments deletes appointments that a committed sale references.
// Such leftovers come from sales written before sale and appointment removal
// were a single transaction.
func (u *SaleUseCase) ReconcileAppointments(ctx context.Context) (ReconcileResult, error) {
	sales, err := u.repo.List(ctx)
	if err != nil {
		return ReconcileResult{}, err
	}
	consumed := make(map[string]string, len(sales))
	for _, s := range sales {
		if s.AppointmentID != "" {
			consumed[s.AppointmentID] = s.ID
		}
	}

	res := ReconcileResult{SalesChecked: len(sales), Deleted: []string{}}
	if len(consumed) == 0 {
		return res, nil
	}

	appointments, err := u.appointments.List(ctx)
	if err != nil {
		return res, err
	}
	for _, a := range appointments {
		saleID, ok := consumed[a.ID]
		if !ok {
			continue
		}
		if err := u.appointments.Delete(ctx, a.ID); err != nil {
			return res, err
		}
		log.Info().Str("appointment_id", a.ID).Str("sale_id", saleID).Msg("removed appointment already sold")
		res.Deleted = append(res.Deleted, a.ID)
	}
	return res, nil
}
