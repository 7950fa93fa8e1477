package mongo

import "errors"

var (
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")
	ErrEmptyConnectionURL     = errors.New("empty mongo connection url")
	ErrHealthcheckFailed      = errors.New("mongo healthcheck failed")
)
