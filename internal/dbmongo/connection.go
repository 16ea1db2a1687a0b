// Package dbmongo stores chat attachments in MongoDB GridFS.
package dbmongo

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"gotravel/internal/config"
)

// AttachmentBucket is the GridFS bucket holding message attachments.
const AttachmentBucket = "chat_attachments"

const connectTimeout = 10 * time.Second

type MongoClient struct {
	Client   *mongo.Client
	Database *mongo.Database
	GridFS   *gridfs.Bucket
}

func NewMongoConnection(c *config.Config, log *logrus.Logger) (*MongoClient, error) {
	opts := options.Client().
		ApplyURI(c.GetMongoURI()).
		SetServerSelectionTimeout(connectTimeout)
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database(c.MongoDB.Database)
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName(AttachmentBucket))
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("open gridfs bucket %s: %w", AttachmentBucket, err)
	}

	log.WithFields(logrus.Fields{
		"host":     c.MongoDB.Host,
		"database": c.MongoDB.Database,
		"bucket":   AttachmentBucket,
	}).Info("Connected to MongoDB")

	return &MongoClient{Client: client, Database: db, GridFS: bucket}, nil
}

// Close disconnects the client. The bucket is unusable afterwards.
func (m *MongoClient) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
