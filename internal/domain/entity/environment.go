package entity

import "strings"

// Environment is the risk tier of an external connection.
type Environment string

const (
	EnvironmentDev        Environment = "Dev"
	EnvironmentTest       Environment = "Test"
	EnvironmentUAT        Environment = "UAT"
	EnvironmentProduction Environment = "Production"
)

// Environments lists every tier ordered from lowest to highest risk.
var Environments = []Environment{
	EnvironmentDev,
	EnvironmentTest,
	EnvironmentUAT,
	EnvironmentProduction,
}

// ParseEnvironment maps a case-insensitive tier name to an Environment.
func ParseEnvironment(s string) (Environment, bool) {
	s = strings.TrimSpace(s)
	for _, env := range Environments {
		if strings.EqualFold(string(env), s) {
			return env, true
		}
	}
	return "", false
}

// Valid reports whether e is one of the known tiers.
func (e Environment) Valid() bool {
	return e.Rank() < len(Environments)
}

// Slug returns the lower-case form used in CSS class names.
func (e Environment) Slug() string {
	return strings.ToLower(string(e))
}

// Rank orders tiers by risk; unknown tiers rank last.
func (e Environment) Rank() int {
	for i, env := range Environments {
		if env == e {
			return i
		}
	}
	return len(Environments)
}
