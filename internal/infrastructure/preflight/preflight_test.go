package preflight

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func renderOK() string {
	return "<h1>Hello World!</h1>"
}

func TestRun(t *testing.T) {
	testCases := map[string]struct {
		checks   Checks
		wantErrs []error
	}{
		"all good": {
			checks: Checks{GoVersion: "go1.25.3", Port: 3000, RenderLanding: renderOK},
		},
		"exact minimum": {
			checks: Checks{GoVersion: "go1.22", Port: 3000, RenderLanding: renderOK},
		},
		"release candidate of a newer version": {
			checks: Checks{GoVersion: "go1.26rc1", Port: 3000, RenderLanding: renderOK},
		},
		"devel toolchain": {
			checks: Checks{GoVersion: "devel go1.26-abcdef Mon Jan 1", Port: 3000, RenderLanding: renderOK},
		},
		"old runtime": {
			checks:   Checks{GoVersion: "go1.21.9", Port: 3000, RenderLanding: renderOK},
			wantErrs: []error{ErrRuntimeTooOld},
		},
		"custom minimum": {
			checks:   Checks{GoVersion: "go1.25.3", MinGoVersion: "go1.26", Port: 3000, RenderLanding: renderOK},
			wantErrs: []error{ErrRuntimeTooOld},
		},
		"garbage runtime": {
			checks:   Checks{GoVersion: "node14", Port: 3000, RenderLanding: renderOK},
			wantErrs: []error{ErrUnknownRuntime},
		},
		"everything broken": {
			checks:   Checks{GoVersion: "go1.18", Port: 0, RenderLanding: func() string { return "" }},
			wantErrs: []error{ErrRuntimeTooOld, ErrInvalidPort, ErrLandingPage},
		},
		"no renderer": {
			checks:   Checks{GoVersion: "go1.25.3", Port: 3000},
			wantErrs: []error{ErrLandingPage},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			err := Run(tc.checks)

			if len(tc.wantErrs) == 0 {
				require.NoError(t, err)
				return
			}
			for _, want := range tc.wantErrs {
				require.ErrorIs(t, err, want)
			}
		})
	}
}

func TestToSemver(t *testing.T) {
	testCases := map[string]string{
		"go1.25.3":    "v1.25.3",
		"go1.22":      "v1.22.0",
		"go1.26rc1":   "v1.26.0-rc1",
		"go1.21beta2": "v1.21.0-beta2",
	}

	for in, wanted := range testCases {
		t.Run(in, func(t *testing.T) {
			require.Equal(t, wanted, toSemver(in))
		})
	}
}
