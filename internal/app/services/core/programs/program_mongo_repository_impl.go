package programs

import (
	"context"
	"healthinfo-service/internal/app/models"
	"healthinfo-service/internal/pkg/constvars"
	"healthinfo-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProgramMongoRepository struct {
	Collection *mongo.Collection
}

func NewProgramMongoRepository(db *mongo.Client, dbName string) ProgramRepository {
	return &ProgramMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPrograms),
	}
}

func (r *ProgramMongoRepository) FindAll(ctx context.Context) ([]models.Program, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	programModels := make([]models.Program, 0)
	err = cursor.All(ctx, &programModels)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return programModels, nil
}

// FindByID returns nil without error when the document is absent; an id that
// is not a valid ObjectID is treated as absent.
func (r *ProgramMongoRepository) FindByID(ctx context.Context, programID string) (*models.Program, error) {
	objectID, err := primitive.ObjectIDFromHex(programID)
	if err != nil {
		return nil, nil
	}

	var programModel models.Program
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&programModel)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &programModel, nil
}

func (r *ProgramMongoRepository) CreateProgram(ctx context.Context, programModel *models.Program) (*models.Program, error) {
	if programModel.CreatedAt.IsZero() {
		programModel.CreatedAt = time.Now()
	}
	result, err := r.Collection.InsertOne(ctx, programModel)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	programModel.ID = result.InsertedID.(primitive.ObjectID)
	return programModel, nil
}

func (r *ProgramMongoRepository) UpdateProgram(ctx context.Context, programModel *models.Program) error {
	filter := bson.M{"_id": programModel.ID}
	update := bson.M{"$set": programModel.ConvertToBsonM()}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ProgramMongoRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	values, err := r.Collection.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBDistinctValues(err)
	}

	categories := make([]string, 0, len(values))
	for _, value := range values {
		category, ok := value.(string)
		if !ok || category == "" {
			continue
		}
		categories = append(categories, category)
	}
	return categories, nil
}
