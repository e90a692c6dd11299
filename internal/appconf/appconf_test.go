package appconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvFlagToEnvironment(t *testing.T) {
	testCases := []struct {
		flag     string
		expected Environment
	}{
		{flag: "production", expected: Production},
		{flag: "Production", expected: Production},
		{flag: "test", expected: Test},
		{flag: " test ", expected: Test},
		{flag: "development", expected: Development},
		{flag: "", expected: Development},
		{flag: "staging", expected: Development},
	}

	for _, tc := range testCases {
		t.Run(tc.flag, func(t *testing.T) {
			assert.Equal(t, tc.expected, EnvFlagToEnvironment(tc.flag))
		})
	}
}

func TestEnvironmentString(t *testing.T) {
	assert.Equal(t, "development", Development.String())
	assert.Equal(t, "test", Test.String())
	assert.Equal(t, "production", Production.String())
}
