package repository

import (
	"context"
	"errors"
	"time"

	"github.com/hanam197/cosmetic-ecommerce-web-be/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoCartRepository struct {
	coll *mongo.Collection
}

func NewMongoCartRepository(db *mongo.Database) CartRepository {
	return &mongoCartRepository{coll: db.Collection(cartsCollection)}
}

func (r *mongoCartRepository) FindByUserID(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *mongoCartRepository) Insert(ctx context.Context, cart *models.Cart) error {
	res, err := r.coll.InsertOne(ctx, cart)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		cart.ID = oid
	}
	return nil
}

// Save writes the cart with a compare-and-swap on (userId, version). A zero
// MatchedCount means another request updated the cart since it was read.
func (r *mongoCartRepository) Save(ctx context.Context, cart *models.Cart) error {
	cart.UpdatedAt = time.Now().UTC()
	filter := bson.M{"userId": cart.UserID, "version": cart.Version}
	update := bson.M{"$set": bson.M{
		"items":         cart.Items,
		"totalPrice":    cart.TotalPrice,
		"totalQuantity": cart.TotalQuantity,
		"updatedAt":     cart.UpdatedAt,
		"version":       cart.Version + 1,
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrConflict
	}
	cart.Version++
	return nil
}

func (r *mongoCartRepository) FindAll(ctx context.Context) ([]models.Cart, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	carts := []models.Cart{}
	if err := cur.All(ctx, &carts); err != nil {
		return nil, err
	}
	return carts, nil
}
