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

type MongoExpenseRepository struct {
	BaseRepository
	coll *mongo.Collection
}

func newMongoExpenseRepository(db *mongo.Database) *MongoExpenseRepository {
	return &MongoExpenseRepository{
		BaseRepository: BaseRepository{DB: db},
		coll:           db.Collection(expensesCollection),
	}
}

var _ portsrepo.ExpenseRepositoryFacade = (*MongoExpenseRepository)(nil)

func (r *MongoExpenseRepository) FindAllExpenses(ctx context.Context) ([]domain.Expense, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, apperrors.Persistence("find expenses", err)
	}
	var docs []models.Expense
	if err := cur.All(ctx, &docs); err != nil {
		return nil, apperrors.Persistence("decode expenses", err)
	}
	expenses, err := mapping.ToDomainExpenseSlice(docs)
	if err != nil {
		return nil, apperrors.Persistence("map expenses", err)
	}
	return expenses, nil
}

func (r *MongoExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	var doc models.Expense
	if err := r.coll.FindOne(ctx, bson.M{"_id": expenseID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Persistence("find expense "+expenseID, err)
	}
	expense, err := mapping.ToDomainExpense(doc)
	if err != nil {
		return nil, apperrors.Persistence("map expense "+expenseID, err)
	}
	return &expense, nil
}

func (r *MongoExpenseRepository) InsertExpense(ctx context.Context, expense domain.Expense) error {
	if _, err := r.coll.InsertOne(ctx, mapping.ToModelExpense(expense)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: expense %s", apperrors.ErrDuplicate, expense.ExpenseID)
		}
		return apperrors.Persistence("insert expense "+expense.ExpenseID, err)
	}
	return nil
}

func (r *MongoExpenseRepository) UpdateExpenseByID(ctx context.Context, expenseID string, expense domain.Expense) (int64, error) {
	doc := mapping.ToModelExpense(expense)
	doc.ExpenseID = expenseID
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": expenseID}, doc)
	if err != nil {
		return 0, apperrors.Persistence("replace expense "+expenseID, err)
	}
	return res.MatchedCount, nil
}

func (r *MongoExpenseRepository) DeleteExpenseByID(ctx context.Context, expenseID string) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": expenseID})
	if err != nil {
		return 0, apperrors.Persistence("delete expense "+expenseID, err)
	}
	return res.DeletedCount, nil
}
