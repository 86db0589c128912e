package scan

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/netmap/netmap/internal/client"
	"github.com/netmap/netmap/internal/generators/scan/network"
	dxservice "github.com/netmap/netmap/internal/services/directconnect"
	ec2service "github.com/netmap/netmap/internal/services/ec2"
	"github.com/netmap/netmap/internal/services/markdown"
	stsservice "github.com/netmap/netmap/internal/services/sts"
	"github.com/netmap/netmap/internal/types"
)

type NetworkScannerOpts struct {
	Region             string
	Profile            string
	OutputFile         string
	SecurityGroupLimit int
	RequestsPerSecond  float64
	Print              bool
}

type NetworkScanner struct {
	opts NetworkScannerOpts
	out  io.Writer
}

func NewNetworkScanner(opts NetworkScannerOpts) *NetworkScanner {
	return &NetworkScanner{
		opts: opts,
		out:  os.Stdout,
	}
}

func (ns *NetworkScanner) Run(ctx context.Context) error {
	runID := uuid.NewString()
	slog.Info("🚀 starting network scan", "run_id", runID, "region", ns.opts.Region, "profile", ns.opts.Profile)

	cfg, err := client.LoadAWSConfig(ctx, ns.opts.Region, ns.opts.Profile)
	if err != nil {
		return fmt.Errorf("❌ failed to load AWS config: %v", err)
	}

	collector := network.NewNetworkCollector(
		ec2service.NewEC2Service(client.NewEC2Client(cfg), ns.opts.RequestsPerSecond),
		dxservice.NewDirectConnectService(client.NewDirectConnectClient(cfg)),
		stsservice.NewSTSService(client.NewSTSClient(cfg)),
		network.NetworkCollectorOpts{Region: ns.opts.Region},
	)

	inventory, err := collector.Collect(ctx)
	if err != nil {
		return fmt.Errorf("❌ failed to collect network inventory: %v", err)
	}

	if err := ns.writeReport(inventory); err != nil {
		return err
	}

	slog.Info("✅ network scan complete", "run_id", runID)

	return nil
}

func (ns *NetworkScanner) writeReport(inventory *types.NetworkInventory) error {
	fmt.Fprintln(ns.out, renderSummary(*inventory))

	formatter := network.NewNetworkFormatter(network.NetworkFormatterOpts{
		SecurityGroupLimit: ns.opts.SecurityGroupLimit,
	})
	md := formatter.Build(inventory)

	if err := md.Print(markdown.PrintOptions{ToTerminal: ns.opts.Print, ToFile: ns.opts.OutputFile}); err != nil {
		return fmt.Errorf("❌ failed to write network report: %v", err)
	}

	slog.Info("✅ network configuration written", "file", ns.opts.OutputFile, "characters", utf8.RuneCountInString(md.String()))

	return nil
}
