package diag

import "testing"

func TestSeverityNamesAreLowercase(t *testing.T) {
	cases := map[Severity]string{
		SevInfo:      "info",
		SevWarning:   "warning",
		SevError:     "error",
		Severity(99): "unknown",
	}
	for sev, want := range cases {
		if got := sev.String(); got != want {
			t.Errorf("Severity(%d).String() = %q, want %q", sev, got, want)
		}
	}
}
