// Package domain contains the core business entities of the service,
// accounts and the messages they post, together with their validation
// rules. It is independent of any storage or delivery mechanism.
package domain
