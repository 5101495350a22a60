package cmd

import "testing"

func TestConfigPathFromArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no flag", []string{"render", "-i", "a.wav"}, ""},
		{"separate value", []string{"--config", "demo.yaml"}, "demo.yaml"},
		{"equals form", []string{"--config=demo.yaml"}, "demo.yaml"},
		{"trailing flag without value", []string{"--config"}, ""},
		{"mixed with others", []string{"-v", "--config", "x.yaml", "list"}, "x.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := configPathFromArgs(tt.args); got != tt.want {
				t.Errorf("configPathFromArgs(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
