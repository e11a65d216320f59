package model

// Environment is the deployment stage the service runs in.
type Environment string

const (
	EnvironmentOffline     Environment = "offline"
	EnvironmentTest        Environment = "test"
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

// IsValid reports whether e is a known stage.
func (e Environment) IsValid() bool {
	switch e {
	case EnvironmentOffline, EnvironmentTest, EnvironmentDevelopment, EnvironmentStaging, EnvironmentProduction:
		return true
	}
	return false
}

// DebugEnabled reports whether debug side channels (such as debug chat
// posts) are active in e.
func (e Environment) DebugEnabled() bool {
	return e != EnvironmentProduction && e != EnvironmentTest
}
