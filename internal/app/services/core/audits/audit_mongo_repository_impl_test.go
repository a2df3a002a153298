package audits

import (
	"cobalt-screening-service/internal/app/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestAuditMongoRepository_Record(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("inserts with timestamp", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := &AuditMongoRepository{Collection: mt.Coll}

		audit := &models.ScreeningDecisionAudit{
			RequestID:       "req-1",
			AccountID:       "acc-1",
			ScreeningFlowID: "flow-1",
			Event:           models.EvSessionStarted,
			State:           models.FlowStateSessionActive,
		}
		err := repo.Record(context.Background(), audit)

		assert.NoError(t, err)
		assert.False(t, audit.CreatedAt.IsZero())
	})

	mt.Run("insert failure", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))
		repo := &AuditMongoRepository{Collection: mt.Coll}

		err := repo.Record(context.Background(), &models.ScreeningDecisionAudit{RequestID: "req-1"})

		assert.Error(t, err)
		assert.True(t, mongo.IsDuplicateKeyError(err))
	})

	mt.Run("command error", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 0}})
		repo := &AuditMongoRepository{Collection: mt.Coll}

		err := repo.Record(context.Background(), &models.ScreeningDecisionAudit{RequestID: "req-2"})
		assert.Error(t, err)
	})
}
