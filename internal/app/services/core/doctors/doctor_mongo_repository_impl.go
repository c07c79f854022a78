package doctors

import (
	"context"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Client, dbName string) contracts.DoctorRepository {
	return &DoctorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctors),
	}
}

func (r *DoctorMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err)
	}
	return nil
}

// Upsert writes the directory record keyed by the owning user, so a
// doctor editing their profile twice never creates a second record.
func (r *DoctorMongoRepository) Upsert(ctx context.Context, doctorModel *models.Doctor) error {
	filter := bson.M{"userId": doctorModel.UserID}
	update := bson.M{
		"$set": bson.M{
			"specialties":       doctorModel.Specialties,
			"licenseNumber":     doctorModel.LicenseNumber,
			"yearsOfExperience": doctorModel.YearsOfExperience,
			"hospital":          doctorModel.Hospital,
			"consultationFee":   doctorModel.ConsultationFee,
			"languages":         doctorModel.Languages,
			"availability":      doctorModel.Availability,
			"bio":               doctorModel.Bio,
			"updatedAt":         doctorModel.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"userId":       doctorModel.UserID,
			"totalRating":  doctorModel.TotalRating,
			"reviewsCount": doctorModel.ReviewsCount,
			"createdAt":    doctorModel.CreatedAt,
		},
	}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *DoctorMongoRepository) FindByUserID(ctx context.Context, userID string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.Collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

func (r *DoctorMongoRepository) FindAll(ctx context.Context, specialty string, page, pageSize int) ([]models.Doctor, int, error) {
	filter := bson.M{}
	if specialty != "" {
		filter["specialties"] = specialty
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.D{{Key: "totalRating", Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var doctorsList []models.Doctor
	if err := cursor.All(ctx, &doctorsList); err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return doctorsList, int(total), nil
}
