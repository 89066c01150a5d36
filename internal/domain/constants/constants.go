// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider keys recognized by the event publisher factory.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
