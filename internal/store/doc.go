// Package store defines the persistence interfaces and shared database
// helpers used by the application. Implementations live under
// internal/platform; services and handlers depend only on the interfaces
// and sentinel errors declared here.
package store
