package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

var (
	ErrInvalidAppointment       = errors.New("invalid appointment")
	ErrInvalidAppointmentPeriod = errors.New("appointment start must be before its end")
)

// ServiceSnapshot is a value copy of a catalog service taken when the
// appointment was booked. Later catalog edits do not reach it.
type ServiceSnapshot struct {
	ID    string  `json:"id,omitempty"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type ServiceSelectionKind int

const (
	ServiceNone ServiceSelectionKind = iota
	ServiceSingle
	ServiceMany
)

func (k ServiceSelectionKind) String() string {
	switch k {
	case ServiceSingle:
		return "single"
	case ServiceMany:
		return "many"
	default:
		return "none"
	}
}

// ServiceSelection is the service attached to an appointment. Stored
// documents hold either nothing, one object or a list of objects; the
// variant is resolved once when the document is loaded and Items always
// yields an ordered slice.
type ServiceSelection struct {
	kind  ServiceSelectionKind
	items []ServiceSnapshot
}

func NoService() ServiceSelection {
	return ServiceSelection{kind: ServiceNone}
}

func SingleService(s ServiceSnapshot) ServiceSelection {
	return ServiceSelection{kind: ServiceSingle, items: []ServiceSnapshot{s}}
}

func ManyServices(ss ...ServiceSnapshot) ServiceSelection {
	items := make([]ServiceSnapshot, len(ss))
	copy(items, ss)
	return ServiceSelection{kind: ServiceMany, items: items}
}

// SelectionOf picks the narrowest variant for ss.
func SelectionOf(ss []ServiceSnapshot) ServiceSelection {
	switch len(ss) {
	case 0:
		return NoService()
	case 1:
		return SingleService(ss[0])
	default:
		return ManyServices(ss...)
	}
}

func (s ServiceSelection) Kind() ServiceSelectionKind {
	return s.kind
}

func (s ServiceSelection) Items() []ServiceSnapshot {
	out := make([]ServiceSnapshot, len(s.items))
	copy(out, s.items)
	return out
}

// CartLines converts the selection into cart lines, preserving order.
func (s ServiceSelection) CartLines() []CartLine {
	lines := make([]CartLine, 0, len(s.items))
	for _, it := range s.items {
		lines = append(lines, CartLine{ItemID: it.ID, Name: it.Name, UnitPrice: it.Price})
	}
	return lines
}

func (s ServiceSelection) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case ServiceSingle:
		return json.Marshal(s.items[0])
	case ServiceMany:
		return json.Marshal(s.items)
	default:
		return []byte("null"), nil
	}
}

func (s *ServiceSelection) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		*s = NoService()
		return nil
	case trimmed[0] == '[':
		var many []ServiceSnapshot
		if err := json.Unmarshal(trimmed, &many); err != nil {
			return err
		}
		*s = ManyServices(many...)
		return nil
	case trimmed[0] == '{':
		var one ServiceSnapshot
		if err := json.Unmarshal(trimmed, &one); err != nil {
			return err
		}
		*s = SingleService(one)
		return nil
	}
	return ErrInvalidAppointment
}

// Appointment is a scheduled booking. It is consumed (deleted) once a sale is
// committed for it.
//
// Storage model (DynamoDB):
//   - PK: id
type Appointment struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	CustomerName  string           `json:"customer_name"`
	CustomerTaxID string           `json:"customer_tax_id"`
	Start         time.Time        `json:"start"`
	End           time.Time        `json:"end"`
	Service       ServiceSelection `json:"service"`
	CreatedAt     time.Time        `json:"created_at"`
}

func (a Appointment) Validate() error {
	if a.CustomerName == "" || a.Start.IsZero() || a.End.IsZero() {
		return ErrInvalidAppointment
	}
	if !a.Start.Before(a.End) {
		return ErrInvalidAppointmentPeriod
	}
	return nil
}
