package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("region", "us-east-1", "")
	cmd.Flags().String("output", "network-config.md", "")
	cmd.Flags().Int("security-group-limit", 20, "")
	cmd.Flags().Bool("print", false, "")
	return cmd
}

func TestBindEnvToFlags(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		args      []string
		want      map[string]string
		wantError string
	}{
		{
			name: "defaults_without_env",
			want: map[string]string{"region": "us-east-1", "output": "network-config.md", "security-group-limit": "20", "print": "false"},
		},
		{
			name: "env_fills_unset_flags",
			env:  map[string]string{"REGION": "eu-central-1", "SECURITY_GROUP_LIMIT": "50", "PRINT": "true"},
			want: map[string]string{"region": "eu-central-1", "output": "network-config.md", "security-group-limit": "50", "print": "true"},
		},
		{
			name: "explicit_flag_wins_over_env",
			env:  map[string]string{"REGION": "eu-central-1", "OUTPUT": "from-env.md"},
			args: []string{"--region", "ap-southeast-2"},
			want: map[string]string{"region": "ap-southeast-2", "output": "from-env.md"},
		},
		{
			name:      "invalid_env_value",
			env:       map[string]string{"SECURITY_GROUP_LIMIT": "lots"},
			wantError: "SECURITY_GROUP_LIMIT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cmd := newTestCmd()
			require.NoError(t, cmd.Flags().Parse(tt.args))

			err := BindEnvToFlags(cmd)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
			for flag, want := range tt.want {
				assert.Equal(t, want, cmd.Flags().Lookup(flag).Value.String(), flag)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "existing.md")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0644))

	tests := []struct {
		name      string
		path      string
		wantError string
	}{
		{name: "new_file", path: filepath.Join(dir, "network-config.md")},
		{name: "existing_file_is_overwritten", path: existing},
		{name: "empty", path: "  ", wantError: "must not be empty"},
		{name: "directory", path: dir, wantError: "is a directory"},
		{name: "missing_parent", path: filepath.Join(dir, "missing", "out.md"), wantError: "does not exist"},
		{name: "parent_is_file", path: filepath.Join(existing, "out.md"), wantError: "is not a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.path)
			if tt.wantError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantError)
		})
	}
}
