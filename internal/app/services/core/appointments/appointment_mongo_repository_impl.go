package appointments

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

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

// EnsureIndexes installs the partial unique index on
// (doctorId, appointmentDate, timeSlot.start) restricted to live
// records. This is the last line of defense against a double booking:
// two racing inserts cannot both commit, whatever the lock and the
// conflict query saw. The filter is an equality on the live flag
// rather than a status $in, which partialFilterExpression only
// accepts on MongoDB 6.0+.
func (r *AppointmentMongoRepository) EnsureIndexes(ctx context.Context) error {
	liveOnly := bson.M{"live": true}

	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "doctorId", Value: 1},
			{Key: "appointmentDate", Value: 1},
			{Key: "timeSlot.start", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(liveOnly),
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) (string, error) {
	result, err := r.Collection.InsertOne(ctx, appointmentModel)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrSlotUnavailable(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var appointment models.Appointment
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindLiveBySlot(ctx context.Context, doctorID, date, slotStart string) (*models.Appointment, error) {
	filter := bson.M{
		"doctorId":        doctorID,
		"appointmentDate": date,
		"timeSlot.start":  slotStart,
		"live":            true,
	}

	var appointment models.Appointment
	err := r.Collection.FindOne(ctx, filter).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindLiveByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	filter := bson.M{
		"doctorId":        doctorID,
		"appointmentDate": date,
		"live":            true,
	}

	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointmentsList []models.Appointment
	if err := cursor.All(ctx, &appointmentsList); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return appointmentsList, nil
}

func (r *AppointmentMongoRepository) FindByParty(ctx context.Context, userID, role, status string, page, pageSize int) ([]models.Appointment, int, error) {
	filter := bson.M{"patientId": userID}
	if role == constvars.RoleDoctor {
		filter = bson.M{"doctorId": userID}
	}
	if status != "" {
		filter["status"] = status
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.D{
			{Key: "appointmentDate", Value: -1},
			{Key: "timeSlot.start", Value: -1},
		})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointmentsList []models.Appointment
	if err := cursor.All(ctx, &appointmentsList); err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return appointmentsList, int(total), nil
}

func (r *AppointmentMongoRepository) UpdateAppointment(ctx context.Context, appointmentModel *models.Appointment) error {
	objectID, err := primitive.ObjectIDFromHex(appointmentModel.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"status":             appointmentModel.Status,
		"notes":              appointmentModel.Notes,
		"paymentId":          appointmentModel.PaymentID,
		"cancellationReason": appointmentModel.CancellationReason,
		"cancelledBy":        appointmentModel.CancelledBy,
		"updatedAt":          appointmentModel.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
