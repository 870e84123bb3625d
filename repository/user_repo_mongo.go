package repository

import (
	"context"
	"time"

	"cvscanner/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoDatabase = "cvscanner"

type MongoUserRepo struct {
	DB *mongo.Client
}

func NewMongoUserRepo(db *mongo.Client) *MongoUserRepo {
	return &MongoUserRepo{DB: db}
}

func (r *MongoUserRepo) users() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("users")
}

func (r *MongoUserRepo) Exists(username, email string) (bool, error) {
	ctx := context.Background()
	count, err := r.users().CountDocuments(ctx, bson.M{
		"$or": bson.A{bson.M{"username": username}, bson.M{"email": email}},
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *MongoUserRepo) Create(user *models.User) error {
	ctx := context.Background()
	_, err := r.users().InsertOne(ctx, user)
	return err
}

func (r *MongoUserRepo) GetByEmail(email string) (*models.User, error) {
	ctx := context.Background()
	user := &models.User{}
	err := r.users().FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *MongoUserRepo) GetHashByEmailActive(email string) (string, error) {
	ctx := context.Background()
	user := &models.User{}
	err := r.users().FindOne(ctx, bson.M{"email": email, "is_active": true}).Decode(user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", nil
		}
		return "", err
	}
	return user.PasswordHash, nil
}

func (r *MongoUserRepo) UpdateLastLogin(email string) error {
	ctx := context.Background()
	_, err := r.users().UpdateOne(ctx, bson.M{"email": email},
		bson.M{"$set": bson.M{"last_login": time.Now().UTC()}})
	return err
}

func (r *MongoUserRepo) UpdatePassword(email, passwordHash string) error {
	ctx := context.Background()
	_, err := r.users().UpdateOne(ctx, bson.M{"email": email},
		bson.M{"$set": bson.M{"password_hash": passwordHash}})
	return err
}

func (r *MongoUserRepo) UpdateProfile(email, firstName, lastName string) (int64, error) {
	ctx := context.Background()
	res, err := r.users().UpdateOne(ctx, bson.M{"email": email},
		bson.M{"$set": bson.M{"first_name": firstName, "last_name": lastName}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *MongoUserRepo) Update(user *models.User) (int64, error) {
	ctx := context.Background()
	res, err := r.users().UpdateOne(ctx, bson.M{"email": user.Email},
		bson.M{"$set": bson.M{
			"username":   user.Username,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"role":       user.Role,
			"is_active":  user.IsActive,
		}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *MongoUserRepo) Delete(email string) (int64, error) {
	ctx := context.Background()
	res, err := r.users().DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *MongoUserRepo) List() ([]models.User, error) {
	return r.find(bson.M{})
}

func (r *MongoUserRepo) Search(query string) ([]models.User, error) {
	pattern := bson.M{"$regex": query, "$options": "i"}
	return r.find(bson.M{"$or": bson.A{
		bson.M{"username": pattern},
		bson.M{"email": pattern},
		bson.M{"first_name": pattern},
		bson.M{"last_name": pattern},
	}})
}

func (r *MongoUserRepo) FilterByRole(role string) ([]models.User, error) {
	return r.find(bson.M{"role": role})
}

func (r *MongoUserRepo) find(filter bson.M) ([]models.User, error) {
	ctx := context.Background()
	cur, err := r.users().Find(ctx, filter, options.Find().SetSort(bson.M{"username": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
