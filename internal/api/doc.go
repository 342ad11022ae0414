// Package api contains the HTTP handlers and request/response models for
// the catalog API. Handlers decode and validate requests, call into the
// service layer, and render responses through the shared helpers; they never
// expose internal error detail to clients.
package api
