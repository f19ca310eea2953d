package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// MongoDatabaseName is the database used when MONGO_URI does not name one
const MongoDatabaseName = "brandapp"

var (
	DB          *gorm.DB
	MongoClient *mongo.Client
	MongoDB     *mongo.Database
)

// ConnectDatabase establishes the order store backend. When MONGO_URI is
// set the document store is used; otherwise GORM connects to DATABASE_URL
// (postgres) or falls back to a local sqlite file for development.
func ConnectDatabase() error {
	cfg := GetConfig()
	if cfg == nil {
		return fmt.Errorf("configuration not loaded")
	}

	if cfg.MongoURI != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			return fmt.Errorf("failed to ping MongoDB: %w", err)
		}

		MongoClient = client
		MongoDB = client.Database(MongoDatabaseName)
		log.Println("MongoDB connection established successfully")
		return nil
	}

	var err error
	if cfg.DatabaseURL != "" {
		DB, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	} else {
		log.Println("MONGO_URI and DATABASE_URL not set, using local sqlite database")
		DB, err = gorm.Open(sqlite.Open("brandapp.db"), &gorm.Config{})
	}
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established successfully")
	return nil
}

// GetDB returns the relational database instance (nil when Mongo is in use)
func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the relational database instance (primarily for testing)
func SetDB(db *gorm.DB) {
	DB = db
}

// GetMongoDatabase returns the Mongo database handle (nil when GORM is in use)
func GetMongoDatabase() *mongo.Database {
	return MongoDB
}
