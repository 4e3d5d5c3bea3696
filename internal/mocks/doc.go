// Package mocks provides centralized mock implementations for testing.
//
// This package contains mock implementations of interfaces used throughout the application,
// facilitating consistent and DRY testing across the codebase. Instead of defining
// inline mocks in individual test files, these standardized mock implementations
// can be reused.
//
// Key Features:
//
//   - Consistent mock behavior across different test packages
//   - Simplified test setup with reusable mock implementations
//   - Reduced duplication of mock logic across test files
//   - Easy maintenance of mock behaviors in a central location
//
// Usage:
//
// Import the mocks package in your test file and create the required mock:
//
//	import "github.com/gaebar/social-media-blog-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    accountStore := new(mocks.MockAccountStore)
//	    accountStore.On("UsernameExists", mock.Anything, "alice").Return(false, nil)
//
//	    // Use the mock in your test...
//	    accountStore.AssertExpectations(t)
//	}
//
// Store and service mocks are built on testify/mock. MockPasswordHasher uses
// function fields and a deterministic fake hash instead.
package mocks
