package rules

import "galeracheck/internal/status"

func NewVerdict(name string, value, expected status.Value, severity Severity) Verdict {
	return Verdict{Name: name, Value: value, Expected: expected, Severity: severity}
}

func OKVerdict(name string, value, expected status.Value) Verdict {
	return NewVerdict(name, value, expected, OK)
}

func WarningVerdict(name string, value, expected status.Value) Verdict {
	return NewVerdict(name, value, expected, Warning)
}

func CriticalVerdict(name string, value, expected status.Value) Verdict {
	return NewVerdict(name, value, expected, Critical)
}
