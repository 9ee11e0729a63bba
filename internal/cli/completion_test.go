package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetRootCmd creates a fresh root command for testing.
func resetRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "statusbox",
		Short: "Status boxes and paged lists for Bubble Tea",
	}
}

func TestCompletionBashGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	require.NoError(t, cmd.GenBashCompletion(&buf))
	output := buf.String()

	assert.Contains(t, output, "# bash completion for statusbox")
	assert.Contains(t, output, "__statusbox_debug")
	assert.Contains(t, output, "complete -o default -F __start_statusbox statusbox")
}

func TestCompletionZshGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	require.NoError(t, cmd.GenZshCompletion(&buf))
	output := buf.String()

	assert.Contains(t, output, "#compdef statusbox")
	assert.Contains(t, output, "_statusbox()")
}

func TestCompletionFishGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	require.NoError(t, cmd.GenFishCompletion(&buf, true))
	output := buf.String()

	assert.Contains(t, output, "fish completion for statusbox")
	assert.Contains(t, output, "complete -c statusbox")
}

func TestCompletionPowershellGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	require.NoError(t, cmd.GenPowerShellCompletion(&buf))
	output := buf.String()

	assert.Contains(t, strings.ToLower(output), "powershell completion")
	assert.Contains(t, output, "Register-ArgumentCompleter")
}

func TestCompletionCommandWritesToOutput(t *testing.T) {
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"completion", "bash"})
	require.NoError(t, rootCmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "__start_statusbox", "should have start function")
	assert.Contains(t, output, "__completeNoDesc", "should use dynamic completion")
	assert.Contains(t, output, "_statusbox_demo()", "commands with flags get their own function")
}

func TestCompletionRejectsUnknownShell(t *testing.T) {
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"completion", "tcsh"})
	assert.Error(t, rootCmd.Execute())
}

func TestConfigSetCompletesKeys(t *testing.T) {
	keys, directive := configSetCmd.ValidArgsFunction(configSetCmd, nil, "")
	assert.Contains(t, keys, "paging.fail_every")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)

	keys, _ = configSetCmd.ValidArgsFunction(configSetCmd, []string{"paging.fail_every"}, "")
	assert.Empty(t, keys)
}
