// Package constants holds configuration values shared across layers.
package constants

// Runtime environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Mail publisher providers. An empty provider disables publishing.
const (
	PubSubProviderGoogle     = "google"
	PubSubProviderLocal      = "local"
	PubSubProviderCollection = "collection"
)

// Persistence drivers.
const (
	PersistenceDriverFirestore = "firestore"
	PersistenceDriverMemory    = "memory"
)

// Identity providers.
const (
	IdentityProviderFirebase = "firebase"
	IdentityProviderMemory   = "memory"
)

// Mail senders used by the worker.
const (
	MailProviderSendGrid = "sendgrid"
	MailProviderLog      = "log"
)

// Document store collection names.
const (
	CollectionPosts          = "posts"
	CollectionCollections    = "collections"
	CollectionCompanies      = "companies"
	CollectionCompanyNames   = "companyNames"
	CollectionAccessRequests = "accessRequests"
	CollectionPendingUsers   = "pendingUsers"
	CollectionUsers          = "users"
	CollectionAPIKeys        = "apiKeys"
	CollectionMail           = "mail"
)
