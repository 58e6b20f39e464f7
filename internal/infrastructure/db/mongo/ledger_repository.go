package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/moneyvault/vault-api/internal/core/domain"
)

const ledgerCollection = "ledger"

type LedgerRepository struct {
	coll *mongo.Collection
}

func NewLedgerRepository(db *mongo.Database) *LedgerRepository {
	return &LedgerRepository{coll: db.Collection(ledgerCollection)}
}

type entryDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	Amount    float64            `bson:"amount"`
	Type      string             `bson:"type"`
	Note      string             `bson:"note"`
	Timestamp float64            `bson:"timestamp"`
}

func (d entryDoc) toDomain() domain.LedgerEntry {
	return domain.LedgerEntry{
		ID:        d.ID.Hex(),
		Username:  d.Username,
		Amount:    d.Amount,
		Type:      d.Type,
		Note:      d.Note,
		Timestamp: d.Timestamp,
	}
}

// Insert appends a new ledger entry document.
func (r *LedgerRepository) Insert(ctx context.Context, entry *domain.LedgerEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := entryDoc{
		Username:  entry.Username,
		Amount:    entry.Amount,
		Type:      entry.Type,
		Note:      entry.Note,
		Timestamp: entry.Timestamp,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		entry.ID = oid.Hex()
	}
	return nil
}

// SumBalance aggregates the user's running balance in a single grouped
// sum: +amount when type is exactly "Credit", -amount for everything
// else. A user with no entries yields 0.
func (r *LedgerRepository) SumBalance(ctx context.Context, username string) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"username": username}}},
		{{Key: "$group", Value: bson.M{
			"_id": nil,
			"total": bson.M{"$sum": bson.M{
				"$cond": bson.A{
					bson.M{"$eq": bson.A{"$type", domain.TypeCredit}},
					"$amount",
					bson.M{"$multiply": bson.A{"$amount", -1}},
				},
			}},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("balance aggregate: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("balance decode: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

// ListByUser returns every entry for the user, newest first. No
// pagination: the ledger is returned whole, however large.
func (r *LedgerRepository) ListByUser(ctx context.Context, username string) ([]domain.LedgerEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"username": username}, opts)
	if err != nil {
		return nil, fmt.Errorf("list ledger: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []entryDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list ledger decode: %w", err)
	}

	entries := make([]domain.LedgerEntry, len(docs))
	for i, d := range docs {
		entries[i] = d.toDomain()
	}
	return entries, nil
}

// SumByTypeSince groups entries at or after the threshold by their raw
// type string and sums the amounts. The caller picks the Credit and
// Debit buckets out of the result; other types simply appear under
// their own keys and are ignored.
func (r *LedgerRepository) SumByTypeSince(ctx context.Context, username string, since float64) (map[string]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"username":  username,
			"timestamp": bson.M{"$gte": since},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$type",
			"total": bson.M{"$sum": "$amount"},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("window aggregate: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Type  string  `bson:"_id"`
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("window decode: %w", err)
	}

	sums := make(map[string]float64, len(rows))
	for _, row := range rows {
		sums[row.Type] = row.Total
	}
	return sums, nil
}

// EnsureIndexes creates the indexes backing the per-user queries and
// the windowed aggregations.
func (r *LedgerRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}, {Key: "timestamp", Value: -1}}},
	})
	return err
}
