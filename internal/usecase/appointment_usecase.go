package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"barbearia/internal/domain/entities"
	"barbearia/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrInvalidAppointmentID = errors.New("invalid appointment id")
	ErrUnknownService       = errors.New("service not found in catalog")
)

// AppointmentInput is a booking request. ServiceIDs reference catalog items;
// they are copied by value into the appointment.
type AppointmentInput struct {
	Title         string
	CustomerName  string
	CustomerTaxID string
	Start         time.Time
	End           time.Time
	ServiceIDs    []string
}

type IAppointmentUseCase interface {
	Create(ctx context.Context, in AppointmentInput) (entities.Appointment, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	List(ctx context.Context) ([]entities.Appointment, error)
	Upcoming(ctx context.Context) ([]entities.Appointment, error)
}

type AppointmentUseCase struct {
	repo    interfaces.IAppointmentRepository
	catalog interfaces.ICatalogRepository
	now     func() time.Time
}

var _ IAppointmentUseCase = (*AppointmentUseCase)(nil)

func NewAppointmentUseCase(repo interfaces.IAppointmentRepository, catalog interfaces.ICatalogRepository) *AppointmentUseCase {
	return &AppointmentUseCase{repo: repo, catalog: catalog, now: time.Now}
}

func (u *AppointmentUseCase) Create(ctx context.Context, in AppointmentInput) (entities.Appointment, error) {
	snapshots := make([]entities.ServiceSnapshot, 0, len(in.ServiceIDs))
	for _, id := range in.ServiceIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		item, err := u.catalog.GetByID(ctx, id)
		if err != nil {
			return entities.Appointment{}, err
		}
		if item.ID == "" {
			return entities.Appointment{}, ErrUnknownService
		}
		snapshots = append(snapshots, entities.ServiceSnapshot{ID: item.ID, Name: item.Name, Price: item.Price})
	}

	a := entities.Appointment{
		ID:            uuid.NewString(),
		Title:         strings.TrimSpace(in.Title),
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerTaxID: strings.TrimSpace(in.CustomerTaxID),
		Start:         in.Start.UTC(),
		End:           in.End.UTC(),
		Service:       entities.SelectionOf(snapshots),
		CreatedAt:     u.now().UTC(),
	}
	if a.Title == "" {
		a.Title = a.CustomerName
	}
	if err := a.Validate(); err != nil {
		return entities.Appointment{}, err
	}
	return u.repo.Create(ctx, a)
}

func (u *AppointmentUseCase) Delete(ctx context.Context, id string) error {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, existing.ID)
}

func (u *AppointmentUseCase) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Appointment{}, ErrInvalidAppointmentID
	}
	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}
	if a.ID == "" {
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	return a, nil
}

func (u *AppointmentUseCase) List(ctx context.Context) ([]entities.Appointment, error) {
	return u.repo.List(ctx)
}

// Upcoming returns appointments that have not started yet, soonest first.
func (u *AppointmentUseCase) Upcoming(ctx context.Context) ([]entities.Appointment, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := u.now()
	out := make([]entities.Appointment, 0, len(all))
	for _, a := range all {
		if !a.Start.Before(now) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}
