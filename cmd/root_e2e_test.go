package cmd_test

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	// testBinaryName is the name of the test binary for E2E tests.
	testBinaryName = "passport-cli-test"
)

// TestMain builds the binary before running E2E tests.
func TestMain(m *testing.M) {
	//nolint:noctx // TestMain doesn't have access to context, and build is needed before tests run.
	buildCmd := exec.Command("go", "build", "-o", testBinaryName, "../.")
	if err := buildCmd.Run(); err != nil {
		os.Exit(1)
	}

	code := m.Run()

	_ = os.Remove(testBinaryName)

	os.Exit(code)
}

// runBinary runs the test binary with the given arguments and returns combined output.
func runBinary(t *testing.T, args ...string) (string, error) {
	t.Helper()

	//nolint:noctx // Test code, context not needed.
	cmd := exec.Command("./"+testBinaryName, args...)
	output, err := cmd.CombinedOutput()

	return string(output), err
}

func TestE2E_Version(t *testing.T) {
	t.Parallel()

	output, err := runBinary(t, "version")
	require.NoError(t, err)

	assert.Contains(t, output, "version:")
	assert.Contains(t, output, "commit:")
}

func TestE2E_RootHelp(t *testing.T) {
	t.Parallel()

	output, err := runBinary(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "login")
	assert.Contains(t, output, "register")
	assert.Contains(t, output, "version")
}

func TestE2E_LoginHelp(t *testing.T) {
	t.Parallel()

	output, err := runBinary(t, "login", "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "account")
	assert.Contains(t, output, "mobile")
	assert.Contains(t, output, "email")
	assert.Contains(t, output, "browser")
}

func TestE2E_UnknownCommand(t *testing.T) {
	t.Parallel()

	output, err := runBinary(t, "definitely-not-a-command")
	require.Error(t, err)

	assert.True(t, strings.Contains(output, "unknown command") || strings.Contains(output, "Error"))
}
