package mongo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/greyhound/greyhound/pkg/mongo"
)

func TestConnectEmptyURL(t *testing.T) {
	t.Parallel()

	_, err := mongo.Connect(context.Background(), mongo.Config{})
	assert.ErrorIs(t, err, mongo.ErrEmptyConnectionURL)
}

func TestConnectInvalidURL(t *testing.T) {
	t.Parallel()

	_, err := mongo.Connect(context.Background(), mongo.Config{ConnectionURL: "not-a-mongo-uri", RetryAttempts: 1})
	assert.ErrorIs(t, err, mongo.ErrFailedToConnectToMongo)
}
