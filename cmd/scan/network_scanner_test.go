package scan

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/netmap/netmap/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetworkScanner_WriteReport(t *testing.T) {
	output := filepath.Join(t.TempDir(), "network-config.md")

	var console bytes.Buffer
	scanner := &NetworkScanner{
		opts: NetworkScannerOpts{
			Region:             "eu-west-1",
			OutputFile:         output,
			SecurityGroupLimit: 1,
		},
		out: &console,
	}

	inventory := &types.NetworkInventory{
		Metadata: types.InventoryMetadata{Region: "eu-west-1", Date: "2026-10-19", AccountID: "123456789012"},
		VPCs:     []types.VPC{{VpcID: "vpc-1", Name: "main", CidrBlock: "10.0.0.0/16", State: "available"}},
		SecurityGroups: []types.SecurityGroup{
			{GroupID: "sg-1", GroupName: "web", VpcID: "vpc-1"},
			{GroupID: "sg-2", GroupName: "db", VpcID: "vpc-1"},
		},
	}

	require.NoError(t, scanner.writeReport(inventory))

	content, err := os.ReadFile(output)
	require.NoError(t, err)

	report := string(content)
	assert.True(t, strings.HasPrefix(report, "# AWS Network Configuration"))
	assert.Contains(t, report, "**Region:** eu-west-1")
	assert.Contains(t, report, "vpc-1")
	assert.Contains(t, report, "sg-1")
	assert.NotContains(t, report, "sg-2")
	assert.Contains(t, report, "There are 2 total security groups. The table above shows the first 1.")

	assert.Contains(t, stripANSI(console.String()), "Total resources found:")
}

func TestNetworkScanner_WriteReportFailsOnUnwritablePath(t *testing.T) {
	scanner := &NetworkScanner{
		opts: NetworkScannerOpts{
			OutputFile:         filepath.Join(t.TempDir(), "missing", "network-config.md"),
			SecurityGroupLimit: 20,
		},
		out: &bytes.Buffer{},
	}

	err := scanner.writeReport(&types.NetworkInventory{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write network report")
}

func TestParseScanOpts(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name      string
		region    string
		output    string
		limit     int
		rps       float64
		wantError string
	}{
		{name: "valid", region: "us-east-1", output: filepath.Join(dir, "out.md"), limit: 20, rps: 10},
		{name: "zero_rps_disables_pacing", region: "us-east-1", output: filepath.Join(dir, "out.md"), limit: 5, rps: 0},
		{name: "empty_region", region: "", output: filepath.Join(dir, "out.md"), limit: 20, rps: 10, wantError: "region must not be empty"},
		{name: "zero_limit", region: "us-east-1", output: filepath.Join(dir, "out.md"), limit: 0, rps: 10, wantError: "security group limit"},
		{name: "negative_rps", region: "us-east-1", output: filepath.Join(dir, "out.md"), limit: 20, rps: -1, wantError: "requests per second"},
		{name: "output_is_directory", region: "us-east-1", output: dir, limit: 20, rps: 10, wantError: "is a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			region = tt.region
			profile = "dev"
			outputFile = tt.output
			securityGroupLimit = tt.limit
			requestsPerSecond = tt.rps
			printReport = true

			opts, err := parseScanOpts()
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, NetworkScannerOpts{
				Region:             tt.region,
				Profile:            "dev",
				OutputFile:         tt.output,
				SecurityGroupLimit: tt.limit,
				RequestsPerSecond:  tt.rps,
				Print:              true,
			}, *opts)
		})
	}
}

func TestNewScanCmd_Defaults(t *testing.T) {
	cmd := NewScanCmd()

	tests := []struct {
		flag string
		want string
	}{
		{flag: "region", want: "us-east-1"},
		{flag: "profile", want: ""},
		{flag: "output", want: "network-config.md"},
		{flag: "print", want: "false"},
		{flag: "security-group-limit", want: "20"},
		{flag: "requests-per-second", want: "10"},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			f := cmd.Flags().Lookup(tt.flag)
			require.NotNil(t, f)
			assert.Equal(t, tt.want, f.DefValue)
		})
	}
}
