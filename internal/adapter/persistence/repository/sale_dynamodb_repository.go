package repository

import (
	"context"
	"errors"

	"barbearia/internal/domain/entities"
	"barbearia/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type saleLineItem struct {
	ItemID string `dynamodbav:"item_id,omitempty"`
	Name   string `dynamodbav:"name"`
	Price  string `dynamodbav:"price"`
}

type saleItem struct {
	ID            string         `dynamodbav:"id"`
	ClientID      string         `dynamodbav:"client_id"`
	ClientName    string         `dynamodbav:"client_name"`
	ClientTaxID   string         `dynamodbav:"client_tax_id"`
	Staff         string         `dynamodbav:"staff"`
	AppointmentID string         `dynamodbav:"appointment_id,omitempty"`
	Items         []saleLineItem `dynamodbav:"items"`
	Total         string         `dynamodbav:"total"`
	Date          string         `dynamodbav:"date"`
	Time          string         `dynamodbav:"time"`
	PaymentMethod string         `dynamodbav:"payment_method"`
	PaymentID     string         `dynamodbav:"payment_id,omitempty"`
	CreatedAt     string         `dynamodbav:"created_at"`
}

// SaleDynamoRepository persists the append-only sale log.
//
// Table requirements:
//   - PK: id (string), the checkout idempotency key
//
// Commit writes the sale and removes the consumed appointment in a single
// TransactWriteItems call, so neither can happen without the other.
type SaleDynamoRepository struct {
	ddb               DynamoAPI
	tableName         string
	appointmentsTable string
}

var _ interfaces.ISaleRepository = (*SaleDynamoRepository)(nil)

func NewSaleDynamoRepository(ddb DynamoAPI, tableName, appointmentsTable string) *SaleDynamoRepository {
	return &SaleDynamoRepository{ddb: ddb, tableName: tableName, appointmentsTable: appointmentsTable}
}

func (r *SaleDynamoRepository) Commit(ctx context.Context, sale entities.Sale) (entities.Sale, error) {
	if err := sale.CheckTotal(); err != nil {
		return entities.Sale{}, err
	}
	av, err := attributevalue.MarshalMap(toSaleItem(sale))
	if err != nil {
		return entities.Sale{}, err
	}

	writes := []types.TransactWriteItem{{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	}}
	if sale.AppointmentID != "" {
		writes = append(writes, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.appointmentsTable),
				Key:       idKey(sale.AppointmentID),
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems:      writes,
		ClientRequestToken: aws.String(sale.ID),
	})
	if err != nil {
		if isSaleConflict(err) {
			return entities.Sale{}, interfaces.ErrSaleAlreadyCommitted
		}
		return entities.Sale{}, err
	}
	return sale, nil
}

func isSaleConflict(err error) bool {
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		// The sale Put is always the first write.
		return len(tce.CancellationReasons) > 0 &&
			aws.ToString(tce.CancellationReasons[0].Code) == "ConditionalCheckFailed"
	}
	var ipm *types.IdempotentParameterMismatchException
	return errors.As(err, &ipm)
}

func (r *SaleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Sale, error) {
	raw, err := getItem(ctx, r.ddb, r.tableName, id)
	if err != nil || raw == nil {
		return entities.Sale{}, err
	}
	var it saleItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Sale{}, err
	}
	return fromSaleItem(it), nil
}

func (r *SaleDynamoRepository) List(ctx context.Context) ([]entities.Sale, error) {
	return scanAll(ctx, r.ddb, r.tableName, unmarshalInto(fromSaleItem))
}

func toSaleItem(s entities.Sale) saleItem {
	lines := make([]saleLineItem, 0, len(s.Items))
	for _, l := range s.Items {
		lines = append(lines, saleLineItem{ItemID: l.ItemID, Name: l.Name, Price: floatToString(l.UnitPrice)})
	}
	return saleItem{
		ID:            s.ID,
		ClientID:      s.ClientID,
		ClientName:    s.ClientName,
		ClientTaxID:   s.ClientTaxID,
		Staff:         s.Staff,
		AppointmentID: s.AppointmentID,
		Items:         lines,
		Total:         floatToString(s.Total),
		Date:          s.Date,
		Time:          s.Time,
		PaymentMethod: string(s.PaymentMethod),
		PaymentID:     s.PaymentID,
		CreatedAt:     formatTime(s.CreatedAt),
	}
}

func fromSaleItem(it saleItem) entities.Sale {
	lines := make([]entities.CartLine, 0, len(it.Items))
	for _, l := range it.Items {
		lines = append(lines, entities.CartLine{ItemID: l.ItemID, Name: l.Name, UnitPrice: parseFloat(l.Price)})
	}
	method := entities.PaymentMethod(it.PaymentMethod)
	if method == "" {
		method = entities.PaymentMethodDinheiro
	}
	return entities.Sale{
		ID:            it.ID,
		ClientID:      it.ClientID,
		ClientName:    it.ClientName,
		ClientTaxID:   it.ClientTaxID,
		Staff:         it.Staff,
		AppointmentID: it.AppointmentID,
		Items:         lines,
		Total:         parseFloat(it.Total),
		Date:          it.Date,
		Time:          it.Time,
		PaymentMethod: method,
		PaymentID:     it.PaymentID,
		CreatedAt:     parseTime(it.CreatedAt),
	}
}
