// Package ports defines interfaces between layers in the hexagonal architecture.
// Driven ports (Store) are implemented by storage adapters and called by the
// storage engine. Storage ports (ListStorage, TaskStorage) are implemented by
// the engine and called by application services. Presentation ports
// (RowRenderer, RowPresenter, ErrorPresenter) connect services to the view.
package ports
