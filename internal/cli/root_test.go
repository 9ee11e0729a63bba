package cli

import (
	goerrors "errors"
	"testing"

	"github.com/rileyhilliard/statusbox/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestIsUnknownCommandError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unknown command error",
			err:  goerrors.New(`unknown command "foo" for "statusbox"`),
			want: true,
		},
		{
			name: "unknown flag error",
			err:  goerrors.New(`unknown flag: --foo`),
			want: true,
		},
		{
			name: "other error",
			err:  goerrors.New("config file not found"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUnknownCommandError(tt.err))
		})
	}
}

func TestExtractUnknownCommand(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "standard cobra format",
			err:  goerrors.New(`unknown command "foo" for "statusbox"`),
			want: "foo",
		},
		{
			name: "demo name",
			err:  goerrors.New(`unknown command "box" for "statusbox"`),
			want: "box",
		},
		{
			name: "command with hyphen",
			err:  goerrors.New(`unknown command "my-demo" for "statusbox demo"`),
			want: "my-demo",
		},
		{
			name: "no quotes returns empty",
			err:  goerrors.New("unknown command foo"),
			want: "",
		},
		{
			name: "single quote returns empty",
			err:  goerrors.New(`unknown command "foo`),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractUnknownCommand(tt.err))
		})
	}
}

func TestFormatError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "structured error prints as is",
			err:  errors.New(errors.ErrConfig, "Bad config", "Fix it"),
			want: []string{"✗ Bad config", "Fix it"},
		},
		{
			name: "demo name suggests the demo command",
			err:  goerrors.New(`unknown command "append" for "statusbox"`),
			want: []string{`unknown command "append"`, "Did you mean 'statusbox demo append'?"},
		},
		{
			name: "other unknown command points at help",
			err:  goerrors.New(`unknown command "nope" for "statusbox"`),
			want: []string{"statusbox --help"},
		},
		{
			name: "plain error is wrapped",
			err:  goerrors.New("boom"),
			want: []string{"✗ Command failed", "boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatError(tt.err)
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
		})
	}
}

func TestRootCommandRegistration(t *testing.T) {
	assert.True(t, rootCmd.SilenceErrors)
	assert.True(t, rootCmd.SilenceUsage)

	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"demo", "init", "config", "version", "completion"} {
		assert.True(t, names[want], "missing command %s", want)
	}

	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("no-color"))
}
