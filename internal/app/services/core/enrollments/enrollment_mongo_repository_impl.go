package enrollments

import (
	"context"
	"healthinfo-service/internal/app/models"
	"healthinfo-service/internal/pkg/constvars"
	"healthinfo-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EnrollmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewEnrollmentMongoRepository(db *mongo.Client, dbName string) EnrollmentRepository {
	return &EnrollmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionEnrollments),
	}
}

func (r *EnrollmentMongoRepository) findByFilter(ctx context.Context, filter bson.M) ([]models.Enrollment, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	enrollmentModels := make([]models.Enrollment, 0)
	err = cursor.All(ctx, &enrollmentModels)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return enrollmentModels, nil
}

func (r *EnrollmentMongoRepository) FindAll(ctx context.Context) ([]models.Enrollment, error) {
	return r.findByFilter(ctx, bson.M{})
}

func (r *EnrollmentMongoRepository) FindByClientID(ctx context.Context, clientID string) ([]models.Enrollment, error) {
	return r.findByFilter(ctx, bson.M{"clientId": clientID})
}

func (r *EnrollmentMongoRepository) FindByProgramID(ctx context.Context, programID string) ([]models.Enrollment, error) {
	return r.findByFilter(ctx, bson.M{"programId": programID})
}

// FindByID returns nil without error when the document is absent; an id that
// is not a valid ObjectID is treated as absent.
func (r *EnrollmentMongoRepository) FindByID(ctx context.Context, enrollmentID string) (*models.Enrollment, error) {
	objectID, err := primitive.ObjectIDFromHex(enrollmentID)
	if err != nil {
		return nil, nil
	}

	var enrollmentModel models.Enrollment
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&enrollmentModel)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &enrollmentModel, nil
}

func (r *EnrollmentMongoRepository) CreateEnrollment(ctx context.Context, enrollmentModel *models.Enrollment) (*models.Enrollment, error) {
	result, err := r.Collection.InsertOne(ctx, enrollmentModel)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	enrollmentModel.ID = result.InsertedID.(primitive.ObjectID)
	return enrollmentModel, nil
}

func (r *EnrollmentMongoRepository) UpdateEnrollment(ctx context.Context, enrollmentModel *models.Enrollment) error {
	filter := bson.M{"_id": enrollmentModel.ID}
	update := bson.M{"$set": enrollmentModel.ConvertToBsonM()}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
