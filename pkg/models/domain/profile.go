package domain

import "fmt"

type Persona string

const (
	PersonaGeneral      Persona = "general"
	PersonaStudent      Persona = "student"
	PersonaProfessional Persona = "professional"
)

// Profile parameterizes advice output for a named user profile.
type Profile struct {
	Name     string
	Persona  Persona
	Currency string
}

func (p Profile) String() string {
	return fmt.Sprintf("%s:%s", p.Name, p.Persona)
}
