package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/contactbook/contact-api/internal/core/domain"
)

const contactCollection = "contacts"

type MongoContactRepository struct {
	coll *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *MongoContactRepository {
	return &MongoContactRepository{coll: db.Collection(contactCollection)}
}

type mongoContact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"phone"`
	UserID    primitive.ObjectID `bson:"user_id"`
	CreatedAt int64              `bson:"created_at"`
}

func (r *MongoContactRepository) Create(ctx context.Context, contact *domain.Contact) (*domain.Contact, error) {
	ownerID, err := primitive.ObjectIDFromHex(contact.UserID)
	if err != nil {
		return nil, fmt.Errorf("parse owner id: %w", err)
	}

	doc := mongoContact{
		Name:      contact.Name,
		Email:     contact.Email,
		Phone:     contact.Phone,
		UserID:    ownerID,
		CreatedAt: time.Now().UTC().Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return &domain.Contact{
		ID:        doc.ID.Hex(),
		Name:      doc.Name,
		Email:     doc.Email,
		Phone:     doc.Phone,
		UserID:    doc.UserID.Hex(),
		CreatedAt: unixToTime(doc.CreatedAt),
	}, nil
}
