package labtests

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

type LabTestMongoRepository struct {
	Collection *mongo.Collection
}

func NewLabTestMongoRepository(db *mongo.Client, dbName string) contracts.LabTestRepository {
	return &LabTestMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionLabTests),
	}
}

func (r *LabTestMongoRepository) CreateLabTest(ctx context.Context, labTestModel *models.LabTest) (string, error) {
	result, err := r.Collection.InsertOne(ctx, labTestModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *LabTestMongoRepository) FindByID(ctx context.Context, labTestID string) (*models.LabTest, error) {
	objectID, err := primitive.ObjectIDFromHex(labTestID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var labTest models.LabTest
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&labTest)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &labTest, nil
}

func (r *LabTestMongoRepository) FindByPatientID(ctx context.Context, patientID string, page, pageSize int) ([]models.LabTest, int, error) {
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

	var labTestsList []models.LabTest
	if err := cursor.All(ctx, &labTestsList); err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return labTestsList, int(total), nil
}

func (r *LabTestMongoRepository) UpdateLabTest(ctx context.Context, labTestModel *models.LabTest) error {
	objectID, err := primitive.ObjectIDFromHex(labTestModel.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"status":    labTestModel.Status,
		"reportUrl": labTestModel.ReportURL,
		"updatedAt": labTestModel.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
