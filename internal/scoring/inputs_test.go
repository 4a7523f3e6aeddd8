package scoring

import (
	"errors"
	"testing"
)

func TestValidateAcceptsValidInputs(t *testing.T) {
	if err := validInputs().Validate(); err != nil {
		t.Errorf("valid inputs rejected: %v", err)
	}
}

func TestValidateBoundaryValues(t *testing.T) {
	in := validInputs()
	in.HIndex = 1
	in.Clarity = 5
	in.PlacementRate = 0
	in.AlumniSalary = 300000
	if err := in.Validate(); err != nil {
		t.Errorf("boundary values rejected: %v", err)
	}
}

func TestValidateReportsEveryViolation(t *testing.T) {
	in := validInputs()
	in.HIndex = 0    // below 1
	in.Ventures = 51 // above 50
	in.LabAccessibility = 0.5

	err := in.Validate()
	if err == nil {
		t.Fatal("expected error")
	}

	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("expected RangeError in chain, got %T", err)
	}

	for _, field := range []string{"h_index", "ventures", "lab_accessibility"} {
		found := false
		for _, e := range multiErrors(err) {
			var r *RangeError
			if errors.As(e, &r) && r.Field == field {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("violation for %s not reported: %v", field, err)
		}
	}
}

// multiErrors unwraps an errors.Join result.
func multiErrors(err error) []error {
	if u, ok := err.(interface{ Unwrap() []error }); ok {
		return u.Unwrap()
	}
	return []error{err}
}

func TestDomainsCoversAllFields(t *testing.T) {
	d := (&Inputs{}).Domains()
	if len(d) != 21 {
		t.Errorf("expected 21 declared domains, got %d", len(d))
	}
	if r, ok := d["h_index"]; !ok || r.Min != 1 || r.Max != 50 {
		t.Errorf("h_index domain wrong: %+v", r)
	}
}
