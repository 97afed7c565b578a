package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	mock_interfaces "fmrental_prestige/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDiagnosticsUseCase_Report(t *testing.T) {
	t.Run("no store configured", func(t *testing.T) {
		r := NewDiagnosticsUseCase(nil).Report(context.Background())
		if r.Backend != "Running" || r.ConnectionStatus != "Not Connected" || r.Database != "Not Available" {
			t.Fatalf("unexpected report: %+v", r)
		}
		if r.Collections == nil {
			t.Fatalf("collections must serialize as an empty list")
		}
	})

	t.Run("store listing fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		inspector := mock_interfaces.NewMockIStoreInspector(ctrl)
		inspector.EXPECT().Endpoint().Return("http://dynamodb:8000")
		inspector.EXPECT().Region().Return("eu-south-1")
		inspector.EXPECT().ListCollections(gomock.Any(), 10).Return(nil, errors.New(strings.Repeat("e", 120)))

		r := NewDiagnosticsUseCase(inspector).Report(context.Background())
		if !strings.HasPrefix(r.Database, "Connected but Error: ") {
			t.Fatalf("unexpected database status: %s", r.Database)
		}
		if got := len(strings.TrimPrefix(r.Database, "Connected but Error: ")); got != 50 {
			t.Fatalf("expected error truncated to 50 chars, got %d", got)
		}
		if r.ConnectionStatus != "Connected" || r.DatabaseEndpoint != "Set" {
			t.Fatalf("unexpected report: %+v", r)
		}
	})

	t.Run("healthy store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		inspector := mock_interfaces.NewMockIStoreInspector(ctrl)
		inspector.EXPECT().Endpoint().Return("")
		inspector.EXPECT().Region().Return("us-east-1")
		inspector.EXPECT().ListCollections(gomock.Any(), 10).Return([]string{"reservation", "review"}, nil)

		r := NewDiagnosticsUseCase(inspector).Report(context.Background())
		if r.Database != "Connected & Working" || r.DatabaseRegion != "us-east-1" || r.DatabaseEndpoint != "AWS default" {
			t.Fatalf("unexpected report: %+v", r)
		}
		if len(r.Collections) != 2 {
			t.Fatalf("unexpected collections: %v", r.Collections)
		}
	})
}
