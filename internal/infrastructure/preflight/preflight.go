// Package preflight validates the environment once at startup so the process
// fails fast instead of serving in a half-initialized state.
package preflight

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

const MinGoVersion = "go1.22"

var (
	ErrRuntimeTooOld  = errors.New("go runtime is too old")
	ErrInvalidPort    = errors.New("port out of range")
	ErrLandingPage    = errors.New("landing page is broken")
	ErrUnknownRuntime = errors.New("unrecognized go runtime version")
)

type Checks struct {
	// GoVersion is normally runtime.Version().
	GoVersion    string
	MinGoVersion string
	Port         int
	// RenderLanding produces the landing page body.
	RenderLanding func() string
}

// Run executes every check and joins the failures.
func Run(c Checks) error {
	var errs []error

	if err := checkGoVersion(c.GoVersion, c.MinGoVersion); err != nil {
		errs = append(errs, err)
	}
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidPort, c.Port))
	}
	if c.RenderLanding == nil || !strings.Contains(c.RenderLanding(), "Hello World") {
		errs = append(errs, fmt.Errorf("%w: greeting missing", ErrLandingPage))
	}

	return errors.Join(errs...)
}

func checkGoVersion(version, minimum string) error {
	if minimum == "" {
		minimum = MinGoVersion
	}
	// Toolchains built from source report "devel go1.N-<hash> ...".
	if strings.HasPrefix(version, "devel") {
		return nil
	}

	have := toSemver(version)
	if !semver.IsValid(have) {
		return fmt.Errorf("%w: %q", ErrUnknownRuntime, version)
	}
	if semver.Compare(have, toSemver(minimum)) < 0 {
		return fmt.Errorf("%w: have %s, need %s or newer", ErrRuntimeTooOld, version, minimum)
	}

	return nil
}

// toSemver turns "go1.25.3" into "v1.25.3". Prerelease suffixes such as
// "go1.26rc1" become "v1.26.0-rc1".
func toSemver(goVersion string) string {
	core := strings.TrimPrefix(goVersion, "go")
	prerelease := ""
	for _, tag := range []string{"rc", "beta"} {
		if i := strings.Index(core, tag); i > 0 {
			core, prerelease = core[:i], "-"+core[i:]
			break
		}
	}
	if strings.Count(core, ".") == 1 {
		core += ".0"
	}

	return "v" + core + prerelease
}
