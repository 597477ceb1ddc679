// Package rating provides carrier quotes, the selection criteria of rate
// shopping and the ShoppingResult snapshot with its expiry.
//
// A selection is usable only while now < expiresAt; after that callers must
// re-quote before generating a label.
package rating
