package redis

import (
	"fmt"
	"strings"

	"github.com/gamestorehq/gamestore/internal/model"
)

// Key prefix for all store data
const keyPrefix = "gamestore"

// Key generation functions for each entity type

// userKey returns the Redis key for a User document
func userKey(id model.ID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, id)
}

// emailIndexKey returns the Redis key for the email -> user_id unique index
func emailIndexKey(email string) string {
	return fmt.Sprintf("%s:idx:email:%s", keyPrefix, strings.ToLower(email))
}

// sessionKey returns the Redis key for a Session document
func sessionKey(token string) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, token)
}

// gameKey returns the Redis key for a Game document
func gameKey(id model.ID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// gamesIndexKey returns the Redis key for the LIST of game IDs in insertion order
func gamesIndexKey() string {
	return fmt.Sprintf("%s:idx:games", keyPrefix)
}

// orderKey returns the Redis key for an Order document
func orderKey(id model.ID) string {
	return fmt.Sprintf("%s:order:%s", keyPrefix, id)
}

// ordersIndexKey returns the Redis key for the LIST of order IDs in insertion order
func ordersIndexKey() string {
	return fmt.Sprintf("%s:idx:orders", keyPrefix)
}

// ordersByUserIndexKey returns the Redis key for the LIST of a user's order IDs
func ordersByUserIndexKey(userID model.ID) string {
	return fmt.Sprintf("%s:idx:orders_by_user:%s", keyPrefix, userID)
}

// txnIndexKey returns the Redis key for the transaction_id -> order_id unique index
func txnIndexKey(transactionID string) string {
	return fmt.Sprintf("%s:idx:txn:%s", keyPrefix, transactionID)
}
