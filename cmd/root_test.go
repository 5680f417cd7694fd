package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mouse-blink/declfix/internal/adapter"
	"github.com/mouse-blink/declfix/internal/controller"
	"github.com/mouse-blink/declfix/internal/domain"
	domainmocks "github.com/mouse-blink/declfix/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_RunsFixWithDefaults(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Fix", mock.MatchedBy(func(args domain.FixArgs) bool {
		return args.Target == domain.DefaultTarget &&
			len(args.Variables) == len(domain.DefaultVariables)
	})).Return(nil)

	cmd.SetArgs([]string{})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestRootCmd_PropagatesFailure(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	boom := errors.New("boom")
	mockWorkflow.On("Fix", mock.Anything).Return(boom)

	cmd.SetArgs([]string{})
	err := cmd.Execute()
	require.ErrorIs(t, err, boom)

	// The workflow reports failures itself; cobra must not add usage text.
	assert.NotContains(t, out.String(), "Usage:")
}

func TestRootCmd_RejectsArguments(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	cmd.SetArgs([]string{"other.js"})
	require.Error(t, cmd.Execute())

	cmd.SetArgs([]string{"--target", "other.js"})
	require.Error(t, cmd.Execute())

	mockWorkflow.AssertNotCalled(t, "Fix", mock.Anything)
}

func TestRootCmd_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, filepath.FromSlash(string(domain.DefaultTarget)))
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0o755))
	require.NoError(t, os.WriteFile(target, []byte(
		"declare currentUser = 'alice';\n// ===== CURRENT INFO =====\ndeclare currentUser = 'bob';\n",
	), 0o644))
	chdirForTest(t, dir)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	originalWorkflow := workflow
	workflow = domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), controller.NewSimpleUI(cmd), domain.NewPatcher())
	defer func() { workflow = originalWorkflow }()

	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "declare currentUser = 'Vishalsnw';\n\n", string(got))
	assert.Contains(t, out.String(), "currentUser: removed 1 duplicate(s)")
}

func TestRootCmd_EndToEnd_MissingTarget(t *testing.T) {
	chdirForTest(t, t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	originalWorkflow := workflow
	workflow = domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), controller.NewSimpleUI(cmd), domain.NewPatcher())
	defer func() { workflow = originalWorkflow }()

	cmd.SetArgs([]string{})
	err := cmd.Execute()
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, out.String(), "ERROR:")

	_, statErr := os.Stat(string(domain.DefaultTarget))
	assert.True(t, os.IsNotExist(statErr))
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "declfix", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Contains(t, cmd.Long, string(domain.DefaultTarget))
	for _, v := range domain.DefaultVariables {
		assert.Contains(t, cmd.Long, v.Name+" = '"+v.Value+"'")
	}
	assert.False(t, cmd.Flags().HasFlags(), "declfix takes no flags")
}

// chdirForTest mirrors testing.T.Chdir (Go 1.24+) for older toolchains:
// it changes the working directory and restores it when the test ends.
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
