package interfaces

import "context"

// IStoreInspector reports on the document store backing the service.
//
// It only feeds the diagnostics endpoint; business flows never depend on it.
type IStoreInspector interface {
	Endpoint() string
	Region() string
	ListCollections(ctx context.Context, limit int) ([]string, error)
}
