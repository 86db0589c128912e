package scan

import (
	"fmt"

	"github.com/netmap/netmap/internal/generators/scan/network"
	"github.com/netmap/netmap/internal/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	region             string
	profile            string
	outputFile         string
	printReport        bool
	securityGroupLimit int
	requestsPerSecond  float64
)

func NewScanCmd() *cobra.Command {
	scanCmd := &cobra.Command{
		Use:           "scan",
		Short:         "Scan the networking resources of an AWS region into a markdown report",
		Long:          "Scan VPCs, subnets, route tables, gateways, security groups, network ACLs, peering, endpoints, EC2 instances and Direct Connect resources of one AWS account and region, and write them to a markdown report",
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PreRunE:       preRunScan,
		RunE:          runScan,
	}

	groups := map[*pflag.FlagSet]string{}

	awsFlags := pflag.NewFlagSet("aws", pflag.ExitOnError)
	awsFlags.SortFlags = false
	awsFlags.StringVar(&region, "region", "us-east-1", "The AWS region to scan.")
	awsFlags.StringVar(&profile, "profile", "", "The AWS shared config profile to use (default credential chain when empty).")
	scanCmd.Flags().AddFlagSet(awsFlags)
	groups[awsFlags] = "AWS Flags"

	outputFlags := pflag.NewFlagSet("output", pflag.ExitOnError)
	outputFlags.SortFlags = false
	outputFlags.StringVar(&outputFile, "output", "network-config.md", "The markdown file to write the report to.")
	outputFlags.BoolVar(&printReport, "print", false, "Also render the report in the terminal.")
	outputFlags.IntVar(&securityGroupLimit, "security-group-limit", network.DefaultSecurityGroupLimit, "The maximum number of security groups listed in the report.")
	scanCmd.Flags().AddFlagSet(outputFlags)
	groups[outputFlags] = "Output Flags"

	advancedFlags := pflag.NewFlagSet("advanced", pflag.ExitOnError)
	advancedFlags.SortFlags = false
	advancedFlags.Float64Var(&requestsPerSecond, "requests-per-second", 10, "The maximum EC2 API requests per second (0 disables pacing).")
	scanCmd.Flags().AddFlagSet(advancedFlags)
	groups[advancedFlags] = "Advanced Flags"

	scanCmd.SetUsageFunc(func(c *cobra.Command) error {
		fmt.Printf("%s\n\n", c.Short)

		flagOrder := []*pflag.FlagSet{awsFlags, outputFlags, advancedFlags}

		for _, fs := range flagOrder {
			usage := fs.FlagUsages()
			if usage != "" {
				fmt.Printf("%s:\n%s\n", groups[fs], usage)
			}
		}

		fmt.Println("All flags can be provided via environment variables (uppercase, with underscores).")

		return nil
	})

	return scanCmd
}

func preRunScan(cmd *cobra.Command, args []string) error {
	if err := utils.BindEnvToFlags(cmd); err != nil {
		return err
	}

	return nil
}

func runScan(cmd *cobra.Command, args []string) error {
	opts, err := parseScanOpts()
	if err != nil {
		return fmt.Errorf("❌ failed to parse scan opts: %v", err)
	}

	networkScanner := NewNetworkScanner(*opts)
	if err := networkScanner.Run(cmd.Context()); err != nil {
		return fmt.Errorf("❌ failed to scan network: %v", err)
	}

	return nil
}

func parseScanOpts() (*NetworkScannerOpts, error) {
	if region == "" {
		return nil, fmt.Errorf("region must not be empty")
	}

	if securityGroupLimit <= 0 {
		return nil, fmt.Errorf("security group limit must be greater than 0, got %d", securityGroupLimit)
	}

	if requestsPerSecond < 0 {
		return nil, fmt.Errorf("requests per second must not be negative, got %v", requestsPerSecond)
	}

	if err := utils.ValidateOutputPath(outputFile); err != nil {
		return nil, err
	}

	opts := NetworkScannerOpts{
		Region:             region,
		Profile:            profile,
		OutputFile:         outputFile,
		SecurityGroupLimit: securityGroupLimit,
		RequestsPerSecond:  requestsPerSecond,
		Print:              printReport,
	}

	return &opts, nil
}
