// Package constants holds configuration values shared between config and infra.
package constants

// Storage drivers selectable with storage.driver.
const (
	StorageDriverMemory   = "memory"
	StorageDriverBlob     = "blob"
	StorageDriverPostgres = "postgres"
	StorageDriverRedis    = "redis"
	StorageDriverMongo    = "mongo"
)

// Event publisher providers selectable with pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderAMQP   = "amqp"
)
