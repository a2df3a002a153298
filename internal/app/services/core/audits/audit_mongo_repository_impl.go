package audits

import (
	"cobalt-screening-service/internal/app/contracts"
	"cobalt-screening-service/internal/app/models"
	"cobalt-screening-service/internal/pkg/exceptions"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

type AuditMongoRepository struct {
	Collection *mongo.Collection
}

func NewAuditMongoRepository(db *mongo.Client, dbName, collectionName string) contracts.AuditRepository {
	return &AuditMongoRepository{
		Collection: db.Database(dbName).Collection(collectionName),
	}
}

func (repo *AuditMongoRepository) Record(ctx context.Context, audit *models.ScreeningDecisionAudit) error {
	if audit.CreatedAt.IsZero() {
		audit.CreatedAt = time.Now().UTC()
	}

	_, err := repo.Collection.InsertOne(ctx, audit)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}
