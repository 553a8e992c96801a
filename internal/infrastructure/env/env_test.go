package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetInt(t *testing.T) {
	testCases := map[string]struct {
		value  string
		set    bool
		wanted int
	}{
		"unset uses fallback": {
			wanted: 3000,
		},
		"valid integer": {
			value:  "8080",
			set:    true,
			wanted: 8080,
		},
		"not a number uses fallback": {
			value:  "eighty",
			set:    true,
			wanted: 3000,
		},
		"empty uses fallback": {
			value:  "",
			set:    true,
			wanted: 3000,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			if tc.set {
				t.Setenv("ENV_TEST_INT", tc.value)
			}

			require.Equal(t, tc.wanted, GetInt("ENV_TEST_INT", 3000))
		})
	}
}

func TestGetString(t *testing.T) {
	require.Equal(t, "fallback", GetString("ENV_TEST_STRING_UNSET", "fallback"))

	t.Setenv("ENV_TEST_STRING", "value")
	require.Equal(t, "value", GetString("ENV_TEST_STRING", "fallback"))
}

func TestGetBool(t *testing.T) {
	t.Setenv("ENV_TEST_BOOL", "true")
	require.True(t, GetBool("ENV_TEST_BOOL", false))

	t.Setenv("ENV_TEST_BOOL", "maybe")
	require.False(t, GetBool("ENV_TEST_BOOL", false))
}

func TestGetDuration(t *testing.T) {
	t.Setenv("ENV_TEST_DURATION", "1m30s")
	require.Equal(t, 90*time.Second, GetDuration("ENV_TEST_DURATION", time.Second))

	t.Setenv("ENV_TEST_DURATION", "90")
	require.Equal(t, time.Second, GetDuration("ENV_TEST_DURATION", time.Second))
}
