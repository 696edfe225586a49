// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/list, domain/task).
// This root package holds the Identifier type, the sentinel errors of the
// storage taxonomy, and the validation error type shared by all entities.
package domain
