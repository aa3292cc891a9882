package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"school-transport-backend/config"
	"school-transport-backend/models"
	"school-transport-backend/pkg/dateutil"
)

const DraftStatusSubmitted = "submitted"

type InvoiceRepository interface {
	CreateDraft(ctx context.Context, draft *models.InvoiceDraft) error
	FindDraftByID(ctx context.Context, id primitive.ObjectID) (*models.InvoiceDraft, error)
	UpdateDraft(ctx context.Context, draft *models.InvoiceDraft) error
	FindGenerated(ctx context.Context, driverID, startDate, endDate string) (*models.GeneratedInvoice, error)
}

type invoiceRepository struct {
	drafts    *mongo.Collection
	generated *mongo.Collection
}

func NewInvoiceRepository() InvoiceRepository {
	return &invoiceRepository{
		drafts:    config.GetCollection(config.InvoiceDraftCollection),
		generated: config.GetCollection(config.GeneratedInvoiceCollection),
	}
}

func (r *invoiceRepository) CreateDraft(ctx context.Context, draft *models.InvoiceDraft) error {
	draft.ID = primitive.NewObjectID()
	draft.CreatedAt = time.Now()
	draft.UpdatedAt = draft.CreatedAt
	if draft.Status == "" {
		draft.Status = DraftStatusSubmitted
	}

	if _, err := r.drafts.InsertOne(ctx, draft); err != nil {
		return fmt.Errorf("failed to save invoice draft: %w", err)
	}
	return nil
}

func (r *invoiceRepository) FindDraftByID(ctx context.Context, id primitive.ObjectID) (*models.InvoiceDraft, error) {
	var draft models.InvoiceDraft
	err := r.drafts.FindOne(ctx, bson.M{"_id": id}).Decode(&draft)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find invoice draft: %w", err)
	}
	return &draft, nil
}

// UpdateDraft replaces the stored draft, keeping its creation time.
func (r *invoiceRepository) UpdateDraft(ctx context.Context, draft *models.InvoiceDraft) error {
	draft.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"userType":      draft.UserType,
		"driverNumber":  draft.DriverNumber,
		"paNumber":      draft.PANumber,
		"name":          draft.Name,
		"mobile":        draft.Mobile,
		"email":         draft.Email,
		"address":       draft.Address,
		"weeks":         draft.Weeks,
		"extraJobs":     draft.ExtraJobs,
		"totalPay":      draft.TotalPay,
		"periodFrom":    draft.PeriodFrom,
		"periodTo":      draft.PeriodTo,
		"signature":     draft.Signature,
		"signatureDate": draft.SignatureDate,
		"updatedAt":     draft.UpdatedAt,
	}}

	result, err := r.drafts.UpdateByID(ctx, draft.ID, update)
	if err != nil {
		return fmt.Errorf("failed to update invoice draft: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// FindGenerated returns the newest invoice generated for a driver and exact
// date range. The range may be stored as ISO strings or as BSON dates.
func (r *invoiceRepository) FindGenerated(ctx context.Context, driverID, startDate, endDate string) (*models.GeneratedInvoice, error) {
	filter := generatedRangeFilter(driverID, startDate, endDate)
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: -1}})

	var invoice models.GeneratedInvoice
	err := r.generated.FindOne(ctx, filter, opts).Decode(&invoice)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find generated invoice: %w", err)
	}
	return &invoice, nil
}

func generatedRangeFilter(driverID, startDate, endDate string) bson.M {
	return bson.M{
		"driverId":                    driverID,
		"originalDateRange.startDate": bson.M{"$in": dayValues(startDate)},
		"originalDateRange.endDate":   bson.M{"$in": dayValues(endDate)},
	}
}

// dayValues lists the stored forms of a calendar day: the ISO string and the
// BSON date at midnight UTC, which dateutil reads back as the same day.
func dayValues(day string) bson.A {
	values := bson.A{day}
	if t, ok := dateutil.Parse(day); ok {
		values = append(values, primitive.NewDateTimeFromTime(t))
	}
	return values
}
