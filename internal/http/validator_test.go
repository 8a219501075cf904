package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateISBN(t *testing.T) {
	type isbnOnly struct {
		ISBN string `json:"isbn" validate:"isbn"`
	}

	tests := []struct {
		name  string
		isbn  string
		valid bool
	}{
		{"13 digits", "9780747532699", true},
		{"13 digits with hyphens", "978-0-7475-3269-9", true},
		{"10 digits", "0747532699", true},
		{"10 digits ending in X", "080442957X", true},
		{"too short", "12345", false},
		{"letters", "97807475326AB", false},
		{"12 digits", "978074753269", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := ValidateStruct(isbnOnly{ISBN: tt.isbn})
			if tt.valid {
				assert.Empty(t, details)
			} else {
				assert.NotEmpty(t, details)
				assert.Equal(t, "isbn", details[0].Field)
			}
		})
	}
}

func TestValidatePrice(t *testing.T) {
	type priceOnly struct {
		Price string `json:"price" validate:"price"`
	}

	tests := []struct {
		name  string
		price string
		valid bool
	}{
		{"integer", "15", true},
		{"one decimal place", "15.9", true},
		{"two decimal places", "15.99", true},
		{"max digits", "99999999.99", true},
		{"three decimal places", "15.999", false},
		{"nine integer digits", "999999999", false},
		{"negative", "-5.00", false},
		{"not a number", "free", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := ValidateStruct(priceOnly{Price: tt.price})
			if tt.valid {
				assert.Empty(t, details)
			} else {
				assert.NotEmpty(t, details)
			}
		})
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	type passwordOnly struct {
		Password string `json:"password" validate:"password_strength"`
	}

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"strong", "Password123", true},
		{"too short", "Pw1", false},
		{"no uppercase", "password123", false},
		{"no lowercase", "PASSWORD123", false},
		{"no number", "PasswordOnly", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := ValidateStruct(passwordOnly{Password: tt.password})
			if tt.valid {
				assert.Empty(t, details)
			} else {
				assert.NotEmpty(t, details)
			}
		})
	}
}

func TestValidateStructReportsWireNames(t *testing.T) {
	details := ValidateStruct(bookRequest{})

	fields := make(map[string]bool)
	for _, d := range details {
		fields[d.Field] = true
	}
	assert.True(t, fields["title"])
	assert.True(t, fields["author"])
	assert.True(t, fields["isbn"])
	assert.True(t, fields["publication_date"])
	assert.True(t, fields["description"])
	assert.True(t, fields["price"])
}
