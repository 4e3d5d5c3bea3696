// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features.
//
// Key components:
//
// 1. Service Interfaces:
//   - AccountService handles registration, login and account maintenance
//   - MessageService handles posting, reading, editing and deleting messages
//
// 2. Dependency Management:
//   - Services receive dependencies through constructor injection
//   - Core dependencies are store interfaces, the password hasher and a logger
//
// 3. Error Handling:
//   - Every error returned is classifiable with KindOf
//   - Ownership violations surface as ErrNotOwned, failed logins as ErrInvalidCredentials
//
// Mutating message operations take the acting account as an explicit
// parameter. Ownership checks need no transaction: a message's posted_by is
// never rewritten after creation.
//
// The service layer depends on domain entities and repository interfaces (from store),
// but never on specific infrastructure implementations.
package service
