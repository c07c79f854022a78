package medicines

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

type MedicineMongoRepository struct {
	Collection *mongo.Collection
}

func NewMedicineMongoRepository(db *mongo.Client, dbName string) contracts.MedicineRepository {
	return &MedicineMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMedicines),
	}
}

func (r *MedicineMongoRepository) CreateMedicine(ctx context.Context, medicineModel *models.Medicine) (string, error) {
	result, err := r.Collection.InsertOne(ctx, medicineModel)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrMedicineAlreadyExist(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *MedicineMongoRepository) FindByID(ctx context.Context, medicineID string) (*models.Medicine, error) {
	objectID, err := primitive.ObjectIDFromHex(medicineID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var medicine models.Medicine
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&medicine)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &medicine, nil
}

func (r *MedicineMongoRepository) FindByName(ctx context.Context, name string) (*models.Medicine, error) {
	var medicine models.Medicine
	err := r.Collection.FindOne(ctx, bson.M{"name": name}).Decode(&medicine)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &medicine, nil
}

func (r *MedicineMongoRepository) FindAll(ctx context.Context, category, search string, page, pageSize int) ([]models.Medicine, int, error) {
	filter := bson.M{"isActive": true}
	if category != "" {
		filter["category"] = category
	}
	if search != "" {
		filter["name"] = bson.M{"$regex": primitive.Regex{Pattern: search, Options: "i"}}
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var medicinesList []models.Medicine
	if err := cursor.All(ctx, &medicinesList); err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return medicinesList, int(total), nil
}

func (r *MedicineMongoRepository) UpdateMedicine(ctx context.Context, medicineModel *models.Medicine) error {
	objectID, err := primitive.ObjectIDFromHex(medicineModel.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"name":                 medicineModel.Name,
		"description":          medicineModel.Description,
		"category":             medicineModel.Category,
		"manufacturer":         medicineModel.Manufacturer,
		"price":                medicineModel.Price,
		"stock":                medicineModel.Stock,
		"requiresPrescription": medicineModel.RequiresPrescription,
		"isActive":             medicineModel.IsActive,
		"updatedAt":            medicineModel.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
