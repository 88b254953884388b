package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/satchel/internal/adapters/detector"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		isTTY    bool
		ci       string
		expected detector.OutputMode
	}{
		{name: "tty without CI is styled", isTTY: true, ci: "", expected: detector.ModeStyled},
		{name: "CI=true forces plain", isTTY: true, ci: "true", expected: detector.ModePlain},
		{name: "CI=1 forces plain", isTTY: true, ci: "1", expected: detector.ModePlain},
		{name: "CI=false does not force plain", isTTY: true, ci: "false", expected: detector.ModeStyled},
		{name: "pipe is plain", isTTY: false, ci: "", expected: detector.ModePlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, detector.Detect(tt.isTTY, tt.ci))
		})
	}
}

func TestDetectEnvironment_CI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.Equal(t, detector.ModePlain, detector.DetectEnvironment())
}

func TestResolveMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		autoDetected detector.OutputMode
		userFlag     string
		expected     detector.OutputMode
	}{
		{name: "auto keeps styled", autoDetected: detector.ModeStyled, userFlag: "auto", expected: detector.ModeStyled},
		{name: "auto keeps plain", autoDetected: detector.ModePlain, userFlag: "auto", expected: detector.ModePlain},
		{name: "empty keeps detection", autoDetected: detector.ModeStyled, userFlag: "", expected: detector.ModeStyled},
		{name: "always overrides", autoDetected: detector.ModePlain, userFlag: "always", expected: detector.ModeStyled},
		{name: "never overrides", autoDetected: detector.ModeStyled, userFlag: "never", expected: detector.ModePlain},
		{name: "unknown keeps detection", autoDetected: detector.ModePlain, userFlag: "sometimes", expected: detector.ModePlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, detector.ResolveMode(tt.autoDetected, tt.userFlag))
		})
	}
}

func TestOutputMode_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "auto", detector.ModeAuto.String())
	assert.Equal(t, "always", detector.ModeStyled.String())
	assert.Equal(t, "never", detector.ModePlain.String())
}
