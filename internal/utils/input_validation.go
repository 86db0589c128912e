package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ValidateOutputPath checks that the report can be created at path: the parent
// directory must exist and path itself must not be a directory.
func ValidateOutputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("output path must not be empty")
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("output path '%s' is a directory", path)
	}

	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("output directory '%s' does not exist", dir)
	}
	if !info.IsDir() {
		return fmt.Errorf("output directory '%s' is not a directory", dir)
	}

	return nil
}

// sets flag values from corresponding environment variables if flags weren't explicitly provided
func BindEnvToFlags(cmd *cobra.Command) error {
	v := viper.New()

	var setErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		flagName := f.Name

		// Convert flag name to environment variable name
		// e.g., "security-group-limit" -> "SECURITY_GROUP_LIMIT"
		envVarName := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))

		v.BindEnv(flagName, envVarName)

		// If the flag wasn't explicitly set via command line
		// AND
		// there's a value available from environment,
		// THEN
		// set the flag value from the environment
		if !f.Changed && v.IsSet(flagName) {
			val := v.Get(flagName)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil && setErr == nil {
				setErr = fmt.Errorf("invalid value for %s from environment variable %s: %v", f.Name, envVarName, err)
			}
		}
	})

	return setErr
}
