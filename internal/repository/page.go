// Package repository defines data access for clients, document types,
// requirements and uploads. Implementations live in subpackages (postgres)
// and contain no business logic.
package repository

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
