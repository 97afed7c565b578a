package usecase

import (
	"context"
	"fmrental_prestige/internal/usecase/interfaces"
	"fmrental_prestige/pkg"
)

const maxDiagnosticCollections = 10

// DiagnosticsReport describes store connectivity for the /test endpoint.
type DiagnosticsReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseEndpoint string   `json:"database_endpoint"`
	DatabaseRegion   string   `json:"database_region"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type IDiagnosticsUseCase interface {
	Report(ctx context.Context) DiagnosticsReport
}

type DiagnosticsUseCase struct {
	inspector interfaces.IStoreInspector
}

var _ IDiagnosticsUseCase = (*DiagnosticsUseCase)(nil)

func NewDiagnosticsUseCase(inspector interfaces.IStoreInspector) *DiagnosticsUseCase {
	return &DiagnosticsUseCase{inspector: inspector}
}

// Report never fails: store errors are folded into the report, truncated.
func (u *DiagnosticsUseCase) Report(ctx context.Context) DiagnosticsReport {
	report := DiagnosticsReport{
		Backend:          "Running",
		Database:         "Not Available",
		DatabaseEndpoint: "Not Set",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}
	if u.inspector == nil {
		return report
	}

	if u.inspector.Endpoint() != "" {
		report.DatabaseEndpoint = "Set"
	} else {
		report.DatabaseEndpoint = "AWS default"
	}
	report.DatabaseRegion = u.inspector.Region()
	report.Database = "Available"
	report.ConnectionStatus = "Connected"

	names, err := u.inspector.ListCollections(ctx, maxDiagnosticCollections)
	if err != nil {
		report.Database = "Connected but Error: " + pkg.Truncate(err.Error(), 50)
		return report
	}
	if names != nil {
		report.Collections = names
	}
	report.Database = "Connected & Working"
	return report
}
