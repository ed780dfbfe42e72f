package ui

import "testing"

func TestShouldUseColor_Env(t *testing.T) {
	for _, tc := range []struct {
		name string
		env  map[string]string
		want bool
	}{
		{"NoColor", map[string]string{"NO_COLOR": "1", "CLICOLOR_FORCE": "1"}, false},
		{"Force", map[string]string{"NO_COLOR": "", "CLICOLOR_FORCE": "1"}, true},
		{"CLIColorZero", map[string]string{"NO_COLOR": "", "CLICOLOR_FORCE": "", "CLICOLOR": "0"}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if got := ShouldUseColor(); got != tc.want {
				t.Errorf("ShouldUseColor() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestConfigure_ForceOff(t *testing.T) {
	t.Cleanup(func() { noColor = false })
	noColor = false
	off := false
	Configure(&off)
	if !noColor {
		t.Error("Configure(false) should disable color")
	}
}

func TestConfigure_ForceOnKeepsColor(t *testing.T) {
	t.Cleanup(func() { noColor = false })
	t.Setenv("NO_COLOR", "1")
	noColor = false
	on := true
	Configure(&on)
	if noColor {
		t.Error("Configure(true) should keep color even with NO_COLOR set")
	}
}

func TestConfigure_DetectsWithoutForce(t *testing.T) {
	t.Cleanup(func() { noColor = false })
	t.Setenv("NO_COLOR", "1")
	noColor = false
	Configure(nil)
	if !noColor {
		t.Error("Configure(nil) should honor NO_COLOR")
	}
}
