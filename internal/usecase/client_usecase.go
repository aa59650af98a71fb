package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"barbearia/internal/domain/entities"
	"barbearia/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound  = errors.New("client not found")
	ErrInvalidClientID = errors.New("invalid client id")
)

type IClientUseCase interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	Update(ctx context.Context, id string, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, sortBy entities.ClientSort) ([]entities.Client, error)
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

func (u *ClientUseCase) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	c, err := c.Normalize()
	if err != nil {
		return entities.Client{}, err
	}
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, c)
}

func (u *ClientUseCase) Update(ctx context.Context, id string, c entities.Client) (entities.Client, error) {
	existing, err := u.get(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	c, err = c.Normalize()
	if err != nil {
		return entities.Client{}, err
	}
	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt
	return u.repo.Update(ctx, c)
}

func (u *ClientUseCase) Delete(ctx context.Context, id string) error {
	existing, err := u.get(ctx, id)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, existing.ID)
}

func (u *ClientUseCase) List(ctx context.Context, sortBy entities.ClientSort) ([]entities.Client, error) {
	clients, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	entities.SortClients(clients, sortBy)
	return clients, nil
}

func (u *ClientUseCase) get(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}
