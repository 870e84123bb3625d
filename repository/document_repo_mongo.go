package repository

import (
	"context"
	"time"

	"cvscanner/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDocumentRepo struct {
	DB *mongo.Client
}

func NewMongoDocumentRepo(db *mongo.Client) *MongoDocumentRepo {
	return &MongoDocumentRepo{DB: db}
}

func (r *MongoDocumentRepo) documents() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("cv_documents")
}

func (r *MongoDocumentRepo) SaveRecord(doc *models.CVDocument) error {
	ctx := context.Background()
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if doc.UploadedAt.IsZero() {
		doc.UploadedAt = time.Now().UTC()
	}

	_, err := r.documents().InsertOne(ctx, doc)
	return err
}

func (r *MongoDocumentRepo) Recent(limit int) ([]models.CVDocument, error) {
	ctx := context.Background()
	cur, err := r.documents().Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"uploaded_at": -1}).SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []models.CVDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
