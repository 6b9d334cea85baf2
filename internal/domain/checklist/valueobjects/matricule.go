package valueobjects

import "fmt"

// Matricule is an operator's numeric personnel identifier, recorded on
// a checklist at submission time.
type Matricule string

func (m Matricule) String() string {
	return string(m)
}

// NewMatricule validates a matricule: required, digits only.
func NewMatricule(s string) (Matricule, error) {
	if s == "" {
		return "", fmt.Errorf("matricule is required")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("matricule must contain only digits: %s", s)
		}
	}
	return Matricule(s), nil
}
