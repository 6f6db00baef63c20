package validator_test

import (
	"strings"
	"testing"

	"frontdesk/shared/validator"
)

type checkInTestStruct struct {
	Name     string `validate:"required" json:"name"`
	Email    string `validate:"required,email" json:"email"`
	Nights   int    `validate:"gte=0,lte=365" json:"nights"`
	RoomType string `validate:"oneof=standard deluxe suite" json:"room_type"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *checkInTestStruct
		expectError bool
	}{
		{
			name: "valid struct",
			data: &checkInTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Nights:   2,
				RoomType: "standard",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &checkInTestStruct{
				Email:    "john@example.com",
				Nights:   2,
				RoomType: "standard",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &checkInTestStruct{
				Name:     "John Doe",
				Email:    "invalid-email",
				Nights:   2,
				RoomType: "standard",
			},
			expectError: true,
		},
		{
			name: "nights out of range",
			data: &checkInTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Nights:   400,
				RoomType: "standard",
			},
			expectError: true,
		},
		{
			name: "invalid room type",
			data: &checkInTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Nights:   2,
				RoomType: "penthouse",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "test",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid email",
			field:       "test@example.com",
			tag:         "email",
			expectError: false,
		},
		{
			name:        "invalid email",
			field:       "invalid-email",
			tag:         "email",
			expectError: true,
		},
		{
			name:        "valid number in range",
			field:       25,
			tag:         "gte=0,lte=100",
			expectError: false,
		},
		{
			name:        "number out of range",
			field:       150,
			tag:         "gte=0,lte=100",
			expectError: true,
		},
		{
			name:        "valid oneof",
			field:       "available",
			tag:         "oneof=available occupied needs_cleaning",
			expectError: false,
		},
		{
			name:        "invalid oneof",
			field:       "broken",
			tag:         "oneof=available occupied needs_cleaning",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"name":"John Doe","email":"john@example.com","nights":2,"room_type":"standard"}`,
			expectError: false,
		},
		{
			name:        "invalid JSON",
			jsonBody:    `{"name":"John Doe","email":"invalid-email","nights":2,"room_type":"standard"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":"John Doe","email":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)
			var data checkInTestStruct
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	data := &checkInTestStruct{}
	err := validator.ValidateStruct(data)

	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	errorMsg := err.Error()

	if !strings.Contains(errorMsg, "required") || errorMsg == "" {
		t.Errorf("expected descriptive error message containing 'required', got: %s", errorMsg)
	}
}

func TestValidationErrorHandling(t *testing.T) {
	data := &checkInTestStruct{
		Name:     "",        // required violation
		Email:    "invalid", // email violation
		Nights:   -1,        // gte violation
		RoomType: "invalid", // oneof violation
	}

	err := validator.ValidateStruct(data)
	if err == nil {
		t.Fatal("expected validation error")
	}

	errorMsg := err.Error()
	if errorMsg == "" {
		t.Error("expected non-empty error message")
	}
}
