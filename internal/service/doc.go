// Package service contains the application's business operations. Services
// coordinate domain entities and stores, own transaction boundaries for
// mutating operations, and translate store outcomes into the error taxonomy
// the API layer maps to HTTP responses.
package service
