// Package types defines the Store and Table interfaces, the Q&A entity
// types (Question, Answer, Review, TrustList), and the standard error
// values for the Lore storage system.
package types
