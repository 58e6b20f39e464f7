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

const goalsCollection = "goals"

type GoalRepository struct {
	coll *mongo.Collection
}

func NewGoalRepository(db *mongo.Database) *GoalRepository {
	return &GoalRepository{coll: db.Collection(goalsCollection)}
}

type goalDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Username   string             `bson:"username"`
	Target     float64            `bson:"target"`
	Strategies any                `bson:"strategies"`
	Timestamp  float64            `bson:"timestamp"`
}

func (r *GoalRepository) Insert(ctx context.Context, goal *domain.Goal) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := goalDoc{
		Username:   goal.Username,
		Target:     goal.Target,
		Strategies: goal.Strategies,
		Timestamp:  goal.Timestamp,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert goal: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		goal.ID = oid.Hex()
	}
	return nil
}

// ListByUser returns every goal for the user, newest first, unbounded.
func (r *GoalRepository) ListByUser(ctx context.Context, username string) ([]domain.Goal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"username": username}, opts)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []goalDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list goals decode: %w", err)
	}

	goals := make([]domain.Goal, len(docs))
	for i, d := range docs {
		goals[i] = domain.Goal{
			ID:         d.ID.Hex(),
			Username:   d.Username,
			Target:     d.Target,
			Strategies: d.Strategies,
			Timestamp:  d.Timestamp,
		}
	}
	return goals, nil
}

// EnsureIndexes creates the per-user listing index.
func (r *GoalRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "username", Value: 1}, {Key: "timestamp", Value: -1}},
	})
	return err
}
