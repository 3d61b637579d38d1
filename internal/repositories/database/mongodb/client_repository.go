package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/camp_ledger_app/internal/apperrors"
	"github.com/SscSPs/camp_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/camp_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/camp_ledger_app/internal/models"
	"github.com/SscSPs/camp_ledger_app/internal/utils/mapping"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type MongoClientRepository struct {
	BaseRepository
	coll *mongo.Collection
}

func newMongoClientRepository(db *mongo.Database) *MongoClientRepository {
	return &MongoClientRepository{
		BaseRepository: BaseRepository{DB: db},
		coll:           db.Collection(clientsCollection),
	}
}

var _ portsrepo.ClientRepositoryFacade = (*MongoClientRepository)(nil)

func (r *MongoClientRepository) FindAllClients(ctx context.Context) ([]domain.Client, error) {
	opts := options.Find().SetSort(bson.D{{Key: "dateOfBooking", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, apperrors.Persistence("find clients", err)
	}

	var docs []models.Client
	if err := cur.All(ctx, &docs); err != nil {
		return nil, apperrors.Persistence("decode clients", err)
	}
	clients, err := mapping.ToDomainClientSlice(docs)
	if err != nil {
		return nil, apperrors.Persistence("map clients", err)
	}
	return clients, nil
}

func (r *MongoClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	var doc models.Client
	err := r.coll.FindOne(ctx, bson.M{"_id": clientID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Persistence("find client "+clientID, err)
	}
	client, err := mapping.ToDomainClient(doc)
	if err != nil {
		return nil, apperrors.Persistence("map client "+clientID, err)
	}
	return &client, nil
}

func (r *MongoClientRepository) InsertClient(ctx context.Context, client domain.Client) error {
	_, err := r.coll.InsertOne(ctx, mapping.ToModelClient(client))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: client %s", apperrors.ErrDuplicate, client.ClientID)
		}
		return apperrors.Persistence("insert client "+client.ClientID, err)
	}
	return nil
}

// UpdateClientByID replaces the whole document.
func (r *MongoClientRepository) UpdateClientByID(ctx context.Context, clientID string, client domain.Client) (int64, error) {
	doc := mapping.ToModelClient(client)
	doc.ClientID = clientID
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": clientID}, doc)
	if err != nil {
		return 0, apperrors.Persistence("replace client "+clientID, err)
	}
	return res.MatchedCount, nil
}

func (r *MongoClientRepository) DeleteClientByID(ctx context.Context, clientID string) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": clientID})
	if err != nil {
		return 0, apperrors.Persistence("delete client "+clientID, err)
	}
	return res.DeletedCount, nil
}
