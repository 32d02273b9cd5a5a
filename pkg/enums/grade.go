package enums

import "fmt"

// Grade is the ordered A-E scale used by nutritional and environmental scores.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeE Grade = "E"
)

var validGrades = []Grade{GradeA, GradeB, GradeC, GradeD, GradeE}

// IsValid reports whether the value is a known Grade.
func (g Grade) IsValid() bool {
	for _, candidate := range validGrades {
		if candidate == g {
			return true
		}
	}
	return false
}

// ParseGrade converts the raw string to Grade.
func ParseGrade(value string) (Grade, error) {
	for _, candidate := range validGrades {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid grade %q", value)
}
