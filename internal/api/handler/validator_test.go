package handler

import (
	"strings"
	"testing"
)

func TestValidator_ReportsJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&loginRequest{Email: "not-an-email", Role: "guest"})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{
		"email must be a valid email",
		"password is required",
		"role must be one of: admin, homeowner, maintenance",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %q", want, err.Error())
		}
	}
}

func TestValidator_AcceptsEveryRole(t *testing.T) {
	v := NewValidator()
	for _, role := range []string{"admin", "homeowner", "maintenance"} {
		if err := v.Validate(&switchRoleRequest{Role: role}); err != nil {
			t.Fatalf("%s: unexpected error %v", role, err)
		}
	}
}
