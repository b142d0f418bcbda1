package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"CLIName", CLIName(), "rninject"},
		{"HomeDir", HomeDir(), ".rninject"},
		{"EnvPrefix", EnvPrefix(), "RNINJECT"},
		{"GoModule", GoModule(), "github.com/rn-labs/rninject"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s() = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
	if DisplayName() == "" || Description() == "" || GitHubRepo() == "" {
		t.Error("display name, description and repo must be set")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("log_level"); got != "RNINJECT_LOG_LEVEL" {
		t.Errorf("EnvVar(log_level) = %q", got)
	}
}
