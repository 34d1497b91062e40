package dto_test

import (
	"errors"
	"testing"

	"github.com/hausfam/onboarding-service/internal/adapters/http/dto"
	"github.com/hausfam/onboarding-service/internal/domain"
)

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestUpdatePersonalRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.UpdatePersonalRequest
		wantErr   bool
		wantField string
	}{
		{
			name:    "empty request passes",
			req:     dto.UpdatePersonalRequest{},
			wantErr: false,
		},
		{
			name: "full request passes",
			req: dto.UpdatePersonalRequest{
				Name:        "Lena Huber",
				Phone:       "+41791234567",
				BirthDate:   "1990-05-14",
				Street:      "Hauptstrasse",
				HouseNumber: "12",
				PostalCode:  "8001",
				City:        "Zürich",
				Country:     "CH",
			},
			wantErr: false,
		},
		{
			name:    "lowercase country passes",
			req:     dto.UpdatePersonalRequest{Country: "de"},
			wantErr: false,
		},
		{
			name:      "country name fails",
			req:       dto.UpdatePersonalRequest{Country: "Germany"},
			wantErr:   true,
			wantField: "country",
		},
		{
			name:      "numeric country fails",
			req:       dto.UpdatePersonalRequest{Country: "12"},
			wantErr:   true,
			wantField: "country",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestUpdateTaxRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.UpdateTaxRequest
		wantErr   bool
		wantField string
	}{
		{
			name:    "empty request passes",
			req:     dto.UpdateTaxRequest{},
			wantErr: false,
		},
		{
			name: "full request passes",
			req: dto.UpdateTaxRequest{
				Region:        "Bayern",
				TaxClass:      "3",
				ExtraValues:   map[string]string{"taxId": "12345678901"},
				TaxpayerCount: 2,
				TaxYear:       "2026",
			},
			wantErr: false,
		},
		{
			name:      "negative taxpayer count fails",
			req:       dto.UpdateTaxRequest{TaxpayerCount: -1},
			wantErr:   true,
			wantField: "taxpayer_count",
		},
		{
			name:      "two-digit year fails",
			req:       dto.UpdateTaxRequest{TaxYear: "26"},
			wantErr:   true,
			wantField: "tax_year",
		},
		{
			name:      "non-numeric year fails",
			req:       dto.UpdateTaxRequest{TaxYear: "next"},
			wantErr:   true,
			wantField: "tax_year",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestUpdateChildrenRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.UpdateChildrenRequest
		wantErr   bool
		wantField string
	}{
		{
			name:    "zero count passes",
			req:     dto.UpdateChildrenRequest{Count: 0},
			wantErr: false,
		},
		{
			name: "count above entries passes",
			req: dto.UpdateChildrenRequest{
				Count:    3,
				Children: []dto.ChildRequest{{FirstName: "Mia", Gender: "f"}},
			},
			wantErr: false,
		},
		{
			name:      "negative count fails",
			req:       dto.UpdateChildrenRequest{Count: -1},
			wantErr:   true,
			wantField: "count",
		},
		{
			name:      "count above cap fails",
			req:       dto.UpdateChildrenRequest{Count: 51},
			wantErr:   true,
			wantField: "count",
		},
		{
			name: "unknown gender fails",
			req: dto.UpdateChildrenRequest{
				Count:    1,
				Children: []dto.ChildRequest{{Gender: "x"}},
			},
			wantErr:   true,
			wantField: "children[0].gender",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestUpdateHouseholdRequest_Validate(t *testing.T) {
	t.Parallel()

	if err := (&dto.UpdateHouseholdRequest{Count: 2}).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	err := (&dto.UpdateHouseholdRequest{Count: -3}).Validate()
	requireValidationField(t, err, "count")
}

func TestUpdatePreferencesRequest_Validate(t *testing.T) {
	t.Parallel()

	for _, theme := range []string{"", "light", "dark", "system"} {
		if err := (&dto.UpdatePreferencesRequest{Theme: theme}).Validate(); err != nil {
			t.Errorf("Validate() with theme %q = %v, want nil", theme, err)
		}
	}

	err := (&dto.UpdatePreferencesRequest{Theme: "neon"}).Validate()
	requireValidationField(t, err, "theme")
}

func TestFormatPhoneRequest_Validate(t *testing.T) {
	t.Parallel()

	if err := (&dto.FormatPhoneRequest{Phone: "0791234567"}).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	err := (&dto.FormatPhoneRequest{Phone: "   "}).Validate()
	requireValidationField(t, err, "phone")
}
