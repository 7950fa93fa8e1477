// Package mongo connects to MongoDB with the v2 driver using MONGODB_*
// configuration. Connect retries until the primary answers a ping; Database
// additionally selects the configured database.
package mongo
