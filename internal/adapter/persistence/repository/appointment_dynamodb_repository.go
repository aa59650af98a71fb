package repository

import (
	"context"
	"fmt"

	"barbearia/internal/domain/entities"
	"barbearia/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type appointmentItem struct {
	ID            string `dynamodbav:"id"`
	Title         string `dynamodbav:"title"`
	CustomerName  string `dynamodbav:"customer_name"`
	CustomerTaxID string `dynamodbav:"customer_tax_id"`
	Start         string `dynamodbav:"start"`
	End           string `dynamodbav:"end"`
	CreatedAt     string `dynamodbav:"created_at"`
}

type serviceItem struct {
	ID    string `dynamodbav:"id,omitempty"`
	Name  string `dynamodbav:"name"`
	Price string `dynamodbav:"price"`
}

// AppointmentDynamoRepository persists Appointment entities (PK: id).
//
// The "service" attribute is stored as a map for one service and a list of
// maps for several; older items may have no service at all.
type AppointmentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAppointmentRepository = (*AppointmentDynamoRepository)(nil)

func NewAppointmentDynamoRepository(ddb DynamoAPI, tableName string) *AppointmentDynamoRepository {
	return &AppointmentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *AppointmentDynamoRepository) Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	av, err := marshalAppointment(a)
	if err != nil {
		return entities.Appointment{}, err
	}
	if err := putItem(ctx, r.ddb, r.tableName, av, false); err != nil {
		return entities.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteItem(ctx, r.ddb, r.tableName, id)
}

func (r *AppointmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	raw, err := getItem(ctx, r.ddb, r.tableName, id)
	if err != nil || raw == nil {
		return entities.Appointment{}, err
	}
	return unmarshalAppointment(raw)
}

func (r *AppointmentDynamoRepository) List(ctx context.Context) ([]entities.Appointment, error) {
	return scanAll(ctx, r.ddb, r.tableName, unmarshalAppointment)
}

func marshalAppointment(a entities.Appointment) (map[string]types.AttributeValue, error) {
	av, err := attributevalue.MarshalMap(appointmentItem{
		ID:            a.ID,
		Title:         a.Title,
		CustomerName:  a.CustomerName,
		CustomerTaxID: a.CustomerTaxID,
		Start:         formatTime(a.Start),
		End:           formatTime(a.End),
		CreatedAt:     formatTime(a.CreatedAt),
	})
	if err != nil {
		return nil, err
	}

	items := a.Service.Items()
	switch a.Service.Kind() {
	case entities.ServiceSingle:
		svc, err := attributevalue.Marshal(toServiceItem(items[0]))
		if err != nil {
			return nil, err
		}
		av["service"] = svc
	case entities.ServiceMany:
		list := make([]serviceItem, 0, len(items))
		for _, s := range items {
			list = append(list, toServiceItem(s))
		}
		svc, err := attributevalue.Marshal(list)
		if err != nil {
			return nil, err
		}
		av["service"] = svc
	}
	return av, nil
}

func unmarshalAppointment(raw map[string]types.AttributeValue) (entities.Appointment, error) {
	var it appointmentItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Appointment{}, err
	}
	sel, err := decodeServiceSelection(raw["service"])
	if err != nil {
		return entities.Appointment{}, fmt.Errorf("appointment %s: %w", it.ID, err)
	}
	return entities.Appointment{
		ID:            it.ID,
		Title:         it.Title,
		CustomerName:  it.CustomerName,
		CustomerTaxID: it.CustomerTaxID,
		Start:         parseTime(it.Start),
		End:           parseTime(it.End),
		Service:       sel,
		CreatedAt:     parseTime(it.CreatedAt),
	}, nil
}

// decodeServiceSelection resolves the stored shape once, at load time.
func decodeServiceSelection(av types.AttributeValue) (entities.ServiceSelection, error) {
	switch v := av.(type) {
	case nil, *types.AttributeValueMemberNULL:
		return entities.NoService(), nil
	case *types.AttributeValueMemberM:
		var s serviceItem
		if err := attributevalue.UnmarshalMap(v.Value, &s); err != nil {
			return entities.ServiceSelection{}, err
		}
		return entities.SingleService(fromServiceItem(s)), nil
	case *types.AttributeValueMemberL:
		var list []serviceItem
		if err := attributevalue.UnmarshalList(v.Value, &list); err != nil {
			return entities.ServiceSelection{}, err
		}
		snaps := make([]entities.ServiceSnapshot, 0, len(list))
		for _, s := range list {
			snaps = append(snaps, fromServiceItem(s))
		}
		return entities.ManyServices(snaps...), nil
	}
	return entities.ServiceSelection{}, entities.ErrInvalidAppointment
}

func toServiceItem(s entities.ServiceSnapshot) serviceItem {
	return serviceItem{ID: s.ID, Name: s.Name, Price: floatToString(s.Price)}
}

func fromServiceItem(s serviceItem) entities.ServiceSnapshot {
	return entities.ServiceSnapshot{ID: s.ID, Name: s.Name, Price: parseFloat(s.Price)}
}
