// Package service contains the business logic layer.
//
// It sits between the handler and repository layers: handlers pass in
// validated data, services apply what little business logic the CRUD
// domain has (delegation, cache coordination, background job
// enqueueing), and repositories do the persistence.
//
// Services depend on the repository interfaces, never the PostgreSQL
// implementations, so tests can substitute fakes.
package service
