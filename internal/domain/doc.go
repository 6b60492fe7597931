// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todo). This root package
// holds the sentinel errors and the validation error type that every layer
// matches against with errors.Is / errors.As.
package domain
