package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/camp_ledger_app/internal/apperrors"
	portsrepo "github.com/SscSPs/camp_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/camp_ledger_app/internal/models"
	"github.com/SscSPs/camp_ledger_app/internal/utils/mapping"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type MongoUserRepository struct {
	BaseRepository
	coll *mongo.Collection
}

func newMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{
		BaseRepository: BaseRepository{DB: db},
		coll:           db.Collection(usersCollection),
	}
}

var _ portsrepo.UserRepository = (*MongoUserRepository)(nil)

func (r *MongoUserRepository) GetPasswordHash(ctx context.Context) (string, error) {
	var doc models.User
	if err := r.coll.FindOne(ctx, bson.M{"_id": models.SharedUserID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", apperrors.ErrNotFound
		}
		return "", apperrors.Persistence("read password hash", err)
	}
	return doc.PasswordHash, nil
}

func (r *MongoUserRepository) SetPasswordHash(ctx context.Context, hash string, updatedAt time.Time) error {
	update := bson.M{"$set": bson.M{
		"passwordHash": hash,
		"updatedAt":    mapping.FormatTime(updatedAt),
	}}
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": models.SharedUserID}, update, options.UpdateOne().SetUpsert(true))
	if err != nil {
		return apperrors.Persistence("store password hash", err)
	}
	return nil
}
