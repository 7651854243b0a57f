package validator

import (
	"errors"
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidContact(t *testing.T) {
	valid := []string{"081234567890", "+628123456789", "08-1234-567890", "(555) 123 4567", "1234567"}
	invalid := []string{"123456", "1234567890123456", "abc0812345678", "0812345678a", ""}
	for _, phone := range valid {
		if !IsValidContact(phone) {
			t.Errorf("IsValidContact(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if IsValidContact(phone) {
			t.Errorf("IsValidContact(%q) = true, want false", phone)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"daily", "weekly", "monthly"}
	if !IsInSlice("daily", slice) {
		t.Errorf("IsInSlice('daily') = false, want true")
	}
	if IsInSlice("yearly", slice) {
		t.Errorf("IsInSlice('yearly') = true, want false")
	}
}

func TestCoordinates(t *testing.T) {
	if !IsValidLatitude(-90) || !IsValidLatitude(90) || IsValidLatitude(90.1) {
		t.Errorf("IsValidLatitude bounds are wrong")
	}
	if !IsValidLongitude(-180) || !IsValidLongitude(180) || IsValidLongitude(-180.5) {
		t.Errorf("IsValidLongitude bounds are wrong")
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{"2024-01-15T10:30:00Z", "2024-01-15T10:30:00+07:00", "2024-01-15T10:30:00.123Z"}
	invalid := []string{"2024-01-15", "10:30", "", "2024-01-15 10:30:00"}
	for _, s := range valid {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "contact", Message: "required"},
	}
	got := errs.Error()
	want := "email: invalid; contact: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "contact", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"email": "invalid", "contact": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}

type structUnderTest struct {
	Name    string `json:"name" validate:"required,max=10"`
	Email   string `json:"email" validate:"required,email"`
	Contact string `json:"contact" validate:"required,contact"`
}

func TestStruct(t *testing.T) {
	err := Struct(structUnderTest{Name: "Alice", Email: "alice@example.com", Contact: "+62 812 3456 789"})
	if err != nil {
		t.Fatalf("Struct(valid) = %v, want nil", err)
	}

	err = Struct(structUnderTest{Name: "", Email: "nope", Contact: "12"})
	var errs ValidationErrors
	if !errors.As(err, &errs) {
		t.Fatalf("Struct(invalid) error type = %T, want ValidationErrors", err)
	}
	got := errs.ToMap()
	want := map[string]string{
		"name":    "name is required",
		"email":   "email must be a valid email address",
		"contact": "contact must be a valid phone number",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("Struct(invalid)[%q] = %q, want %q", k, got[k], v)
		}
	}
}
