package clients

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

type ClientMongoRepository struct {
	Collection *mongo.Collection
}

func NewClientMongoRepository(db *mongo.Client, dbName string) ClientRepository {
	return &ClientMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionClients),
	}
}

func (r *ClientMongoRepository) FindAll(ctx context.Context) ([]models.Client, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	clientModels := make([]models.Client, 0)
	err = cursor.All(ctx, &clientModels)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return clientModels, nil
}

// FindByID returns nil without error when the document is absent. An id that
// is not a valid ObjectID cannot reference a stored document, so it is
// treated as absent as well.
func (r *ClientMongoRepository) FindByID(ctx context.Context, clientID string) (*models.Client, error) {
	objectID, err := primitive.ObjectIDFromHex(clientID)
	if err != nil {
		return nil, nil
	}

	var clientModel models.Client
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&clientModel)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &clientModel, nil
}

func (r *ClientMongoRepository) CreateClient(ctx context.Context, clientModel *models.Client) (*models.Client, error) {
	if clientModel.CreatedAt.IsZero() {
		clientModel.CreatedAt = time.Now()
	}
	result, err := r.Collection.InsertOne(ctx, clientModel)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	clientModel.ID = result.InsertedID.(primitive.ObjectID)
	return clientModel, nil
}

func (r *ClientMongoRepository) UpdateClient(ctx context.Context, clientModel *models.Client) error {
	filter := bson.M{"_id": clientModel.ID}
	update := bson.M{"$set": clientModel.ConvertToBsonM()}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
