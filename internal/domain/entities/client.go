package entities

import (
	"errors"
	"sort"
	"strings"
	"time"
)

var ErrInvalidClient = errors.New("client name, email and phone are required")

// Client is a contact record of the Clients page. It is independent from the
// customer name typed on appointments.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

func (c Client) Normalize() (Client, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	if c.Name == "" || c.Email == "" || c.Phone == "" {
		return Client{}, ErrInvalidClient
	}
	return c, nil
}

type ClientSort string

const (
	ClientSortByName ClientSort = "name"
	ClientSortByDate ClientSort = "date"
)

// SortClients orders by name (case-insensitive) or by creation date, newest first.
func SortClients(clients []Client, by ClientSort) {
	switch by {
	case ClientSortByDate:
		sort.SliceStable(clients, func(i, j int) bool {
			return clients[i].CreatedAt.After(clients[j].CreatedAt)
		})
	default:
		sort.SliceStable(clients, func(i, j int) bool {
			return strings.ToLower(clients[i].Name) < strings.ToLower(clients[j].Name)
		})
	}
}
