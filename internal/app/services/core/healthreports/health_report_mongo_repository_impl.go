package healthreports

import (
	"context"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type HealthReportMongoRepository struct {
	Collection *mongo.Collection
}

func NewHealthReportMongoRepository(db *mongo.Client, dbName string) contracts.HealthReportRepository {
	return &HealthReportMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionHealthReports),
	}
}

func (r *HealthReportMongoRepository) CreateHealthReport(ctx context.Context, reportModel *models.HealthReport) (string, error) {
	result, err := r.Collection.InsertOne(ctx, reportModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *HealthReportMongoRepository) FindByID(ctx context.Context, reportID string) (*models.HealthReport, error) {
	objectID, err := primitive.ObjectIDFromHex(reportID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var report models.HealthReport
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &report, nil
}

func (r *HealthReportMongoRepository) FindByPatientID(ctx context.Context, patientID string, page, pageSize int) ([]models.HealthReport, int, error) {
	filter := bson.M{"patientId": patientID}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var reportsList []models.HealthReport
	if err := cursor.All(ctx, &reportsList); err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return reportsList, int(total), nil
}
