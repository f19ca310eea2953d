package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denavigator/Brand-app/config"
	"github.com/denavigator/Brand-app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/gorm"
)

// ErrOrderNotFound is returned when an order id has no matching record
var ErrOrderNotFound = errors.New("order not found")

// OrderStore persists orders. Implementations must assign the id exactly
// once at creation and list orders newest-first.
type OrderStore interface {
	// CreateOrder inserts the order and assigns its identifier
	CreateOrder(ctx context.Context, order *models.Order) error

	// GetOrderByID returns the order with the given id, or ErrOrderNotFound
	GetOrderByID(ctx context.Context, id string) (*models.Order, error)

	// ListOrders returns all orders sorted by creation time descending
	ListOrders(ctx context.Context) ([]models.Order, error)
}

var orderStoreInstance OrderStore

// InitOrderStore initializes the order store against whichever database
// backend config.ConnectDatabase established
func InitOrderStore() (OrderStore, error) {
	if db := config.GetMongoDatabase(); db != nil {
		orderStoreInstance = &MongoOrderStore{collection: db.Collection("orders")}
		return orderStoreInstance, nil
	}
	if db := config.GetDB(); db != nil {
		orderStoreInstance = &GormOrderStore{db: db}
		return orderStoreInstance, nil
	}
	return nil, fmt.Errorf("no database connection available")
}

// GetOrderStore returns the initialized order store instance
func GetOrderStore() OrderStore {
	return orderStoreInstance
}

// SetOrderStore sets the order store instance (primarily for testing)
func SetOrderStore(store OrderStore) {
	orderStoreInstance = store
}

// prepareForInsert fills the store-assigned fields. Ids are ObjectID hex
// generated client-side so both backends hand out the same opaque strings.
func prepareForInsert(order *models.Order) {
	order.ID = primitive.NewObjectID().Hex()
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
}

// MongoOrderStore implements OrderStore on a MongoDB collection
type MongoOrderStore struct {
	collection *mongo.Collection
}

// CreateOrder inserts the order into the orders collection
func (s *MongoOrderStore) CreateOrder(ctx context.Context, order *models.Order) error {
	prepareForInsert(order)
	if _, err := s.collection.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

// GetOrderByID looks up a single order by its id
func (s *MongoOrderStore) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	return &order, nil
}

// ListOrders returns all orders, newest first
func (s *MongoOrderStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}

// GormOrderStore implements OrderStore on a relational database via GORM
type GormOrderStore struct {
	db *gorm.DB
}

// NewGormOrderStore creates a store over an existing GORM connection
func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{db: db}
}

// CreateOrder inserts the order into the orders table
func (s *GormOrderStore) CreateOrder(ctx context.Context, order *models.Order) error {
	prepareForInsert(order)
	if err := s.db.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

// GetOrderByID looks up a single order by its id
func (s *GormOrderStore) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	return &order, nil
}

// ListOrders returns all orders, newest first
func (s *GormOrderStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
