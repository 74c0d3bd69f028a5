// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todolist, domain/todoitem).
// This root package holds the sentinel errors and the typed errors that wrap
// them, shared by every entity and adapter.
package domain
