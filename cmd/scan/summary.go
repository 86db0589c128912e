package scan

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/netmap/netmap/internal/types"
)

const (
	summaryTitle = "#1E3A5F" // navy
	summaryLabel = "#6CB4EE" // light blue
	summaryValue = "#FFFFFF"
	summaryZero  = "#8B9CB6" // blue-grey, kinds with nothing found
)

var (
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(summaryValue)).
				Background(lipgloss.Color(summaryTitle)).
				Padding(0, 1)

	summaryLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(summaryLabel)).
				Bold(true)

	summaryValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(summaryValue))

	summaryZeroStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(summaryZero))
)

var kindLabels = map[types.ResourceKind]string{
	types.ResourceKindVPC:                  "VPCs",
	types.ResourceKindSubnet:               "Subnets",
	types.ResourceKindRouteTable:           "Route Tables",
	types.ResourceKindInternetGateway:      "Internet Gateways",
	types.ResourceKindNatGateway:           "NAT Gateways",
	types.ResourceKindTransitGateway:       "Transit Gateways",
	types.ResourceKindVpnGateway:           "VPN Gateways",
	types.ResourceKindEc2Instance:          "EC2 Instances",
	types.ResourceKindSecurityGroup:        "Security Groups",
	types.ResourceKindNetworkAcl:           "Network ACLs",
	types.ResourceKindVpcPeeringConnection: "VPC Peering",
	types.ResourceKindVpcEndpoint:          "VPC Endpoints",
	types.ResourceKindDirectConnect:        "Direct Connect",
}

func kindLabel(kind types.ResourceKind) string {
	if label, ok := kindLabels[kind]; ok {
		return label
	}
	return string(kind)
}

// renderSummary lists how many records of each kind the inventory holds.
func renderSummary(inventory types.NetworkInventory) string {
	var b strings.Builder

	b.WriteString(summaryTitleStyle.Render("Total resources found:"))
	b.WriteString("\n")

	for _, rc := range inventory.Counts() {
		b.WriteString(summaryLabelStyle.Render(fmt.Sprintf("  %-19s", kindLabel(rc.Kind)+":")))

		valueStyle := summaryValueStyle
		if rc.Count == 0 {
			valueStyle = summaryZeroStyle
		}
		b.WriteString(valueStyle.Render(fmt.Sprintf("%d", rc.Count)))
		b.WriteString("\n")
	}

	return b.String()
}
