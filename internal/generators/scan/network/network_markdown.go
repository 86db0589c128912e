package network

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/netmap/netmap/internal/services/markdown"
	"github.com/netmap/netmap/internal/types"
)

const (
	DefaultSecurityGroupLimit = 20

	unnamed         = "(unnamed)"
	maxListedValues = 3
	endpointPrefix  = "com.amazonaws."

	noInstancesFound     = "_No EC2 instances found (excluding terminated instances)_\n"
	noDirectConnectFound = "_No Direct Connect resources found_\n"
	naclRulesNote        = "Note: All NACLs follow standard rule format (Rule 100: Allow all, Rule 32767: Deny all as default).\n"
)

type NetworkFormatterOpts struct {
	SecurityGroupLimit int
}

// NetworkFormatter renders a NetworkInventory as a markdown report.
type NetworkFormatter struct {
	securityGroupLimit int
}

func NewNetworkFormatter(opts NetworkFormatterOpts) *NetworkFormatter {
	limit := opts.SecurityGroupLimit
	if limit <= 0 {
		limit = DefaultSecurityGroupLimit
	}
	return &NetworkFormatter{securityGroupLimit: limit}
}

func displayName(name string) string {
	if name == "" {
		return unnamed
	}
	return name
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// summarizeList joins the first three values and counts the rest as " (+n more)".
func summarizeList(values []string, sep string) string {
	if len(values) <= maxListedValues {
		return strings.Join(values, sep)
	}
	return fmt.Sprintf("%s (+%d more)", strings.Join(values[:maxListedValues], sep), len(values)-maxListedValues)
}

// FormatAll renders the complete report.
func (f *NetworkFormatter) FormatAll(inventory *types.NetworkInventory) string {
	return f.Build(inventory).String()
}

// Build assembles the report: title, metadata, then one section per resource kind.
// Direct Connect is only included when something was found.
func (f *NetworkFormatter) Build(inventory *types.NetworkInventory) *markdown.Markdown {
	md := markdown.New()

	md.AddHeading("AWS Network Configuration", 1)
	md.AddLines([]string{
		fmt.Sprintf("**Region:** %s", inventory.Metadata.Region),
		fmt.Sprintf("**Date:** %s", inventory.Metadata.Date),
		fmt.Sprintf("**Account:** %s", inventory.Metadata.AccountID),
	})
	md.AddHorizontalRule()

	sections := []struct {
		title string
		body  string
	}{
		{"VPCs", f.FormatVpcs(inventory.VPCs)},
		{"Subnets", f.FormatSubnets(inventory.Subnets)},
		{"Route Tables", f.FormatRouteTables(inventory.RouteTables)},
		{"Internet Gateways", f.FormatInternetGateways(inventory.InternetGateways)},
		{"NAT Gateways", f.FormatNatGateways(inventory.NatGateways)},
		{"Transit Gateways", f.FormatTransitGateways(inventory.TransitGateways)},
		{"VPN Gateways", f.FormatVpnGateways(inventory.VpnGateways)},
		{"EC2 Instances", f.FormatEc2Instances(inventory.Ec2Instances)},
		{"Security Groups", f.FormatSecurityGroups(inventory.SecurityGroups)},
		{"Network ACLs", f.FormatNetworkAcls(inventory.NetworkAcls)},
		{"VPC Peering Connections", f.FormatVpcPeering(inventory.VpcPeeringConnections)},
		{"VPC Endpoints", f.FormatVpcEndpoints(inventory.VpcEndpoints)},
	}
	for _, section := range sections {
		md.AddHeading(section.title, 2)
		md.AddBlock(section.body)
	}

	if !inventory.DirectConnect.IsEmpty() {
		md.AddHeading("Direct Connect Configuration", 2)
		md.AddBlock(f.FormatDirectConnect(inventory.DirectConnect))
	}

	return md
}

func (f *NetworkFormatter) FormatVpcs(vpcs []types.VPC) string {
	headers := []string{"VPC ID", "Name", "CIDR Block", "State", "Default"}

	var rows [][]string
	for _, vpc := range vpcs {
		rows = append(rows, []string{
			vpc.VpcID,
			displayName(vpc.Name),
			vpc.CidrBlock,
			vpc.State,
			yesNo(vpc.IsDefault),
		})
	}

	return markdown.FormatTable(headers, rows)
}

func (f *NetworkFormatter) FormatSubnets(subnets []types.Subnet) string {
	headers := []string{"Subnet ID", "Name", "VPC", "CIDR Block", "AZ", "Available IPs", "Type"}

	var rows [][]string
	for _, subnet := range subnets {
		rows = append(rows, []string{
			subnet.SubnetID,
			displayName(subnet.Name),
			subnet.VpcID,
			subnet.CidrBlock,
			subnet.AvailabilityZone,
			strconv.Itoa(int(subnet.AvailableIPAddressCount)),
			subnet.Type,
		})
	}

	return markdown.FormatTable(headers, rows)
}

func (f *NetworkFormatter) FormatRouteTables(routeTables []types.RouteTable) string {
	headers := []string{"Route Table ID", "Name", "VPC", "Associated Subnets", "Key Routes"}

	var rows [][]string
	for _, rt := range routeTables {
		name := displayName(rt.Name)
		if rt.IsMain {
			name += " (Main)"
		}

		subnets := summarizeList(rt.SubnetIDs, ", ")
		if rt.IsMain && len(rt.SubnetIDs) == 0 {
			subnets = "Main route table"
		}

		routes := "Local only"
		if len(rt.KeyRoutes) > 0 {
			routes = summarizeList(rt.KeyRoutes, "; ")
		}

		rows = append(rows, []string{rt.RouteTableID, name, rt.VpcID, subnets, routes})
	}

	return markdown.FormatTable(headers, rows)
}

func (f *NetworkFormatter) FormatInternetGateways(igws []types.InternetGateway) string {
	headers := []string{"IGW ID", "Name", "State", "Attached VPC"}

	var rows [][]string
	for _, igw := range igws {
		rows = append(rows, []string{
			igw.InternetGatewayID,
			displayName(igw.Name),
			igw.State,
			igw.AttachedVpc,
		})
	}

	return markdown.FormatTable(headers, rows)
}

func (f *NetworkFormatter) FormatNatGateways(natGateways []types.NatGateway) string {
	headers := []string{"NAT Gateway ID", "Name", "VPC", "Subnet", "State", "Public IP", "Private IP"}

	var rows [][]string
	for _, nat := range natGateways {
		rows = append(rows, []string{
			nat.NatGatewayID,
			displayName(nat.Name),
			nat.VpcID,
			nat.SubnetID,
			nat.State,
			nat.PublicIP,
			nat.PrivateIP,
		})
	}

	return markdown.FormatTable(headers, rows)
}

func (f *NetworkFormatter) FormatTransitGateways(tgws []types.TransitGateway) string {
	headers := []string{"TGW ID", "Name", "State", "ASN", "Default Route Table"}

	var rows [][]string
	for _, tgw := range tgws {
		rows = append(rows, []string{
			tgw.TransitGatewayID,
			displayName(tgw.Name),
			tgw.State,
			tgw.AmazonSideAsn,
			tgw.DefaultRouteTableID,
		})
	}

	return markdown.FormatTable(headers, rows)
}

func (f *NetworkFormatter) FormatVpnGateways(vgws []types.VpnGateway) string {
	headers := []string{"VGW ID", "Name", "State", "Type", "ASN", "Attached VPC"}

	var rows [][]string
	for _, vgw := range vgws {
		rows = append(rows, []string{
			vgw.VpnGatewayID,
			displayName(vgw.Name),
			vgw.State,
			vgw.Type,
			vgw.AmazonSideAsn,
			vgw.AttachedVpc,
		})
	}

	return markdown.FormatTable(headers, rows)
}

// FormatSecurityGroups shows at most securityGroupLimit groups, in input order.
func (f *NetworkFormatter) FormatSecurityGroups(sgs []types.SecurityGroup) string {
	headers := []string{"SG ID", "Name", "VPC", "Key Inbound Rules"}

	shown := sgs
	if len(shown) > f.securityGroupLimit {
		shown = shown[:f.securityGroupLimit]
	}

	var rows [][]string
	for _, sg := range shown {
		inbound := "None"
		if len(sg.InboundRules) > 0 {
			inbound = summarizeList(sg.InboundRules, "; ")
		}
		rows = append(rows, []string{sg.GroupID, sg.GroupName, sg.VpcID, inbound})
	}

	result := markdown.FormatTable(headers, rows)
	if len(sgs) > f.securityGroupLimit {
		result += fmt.Sprintf("\nNote: There are %d total security groups. The table above shows the first %d.\n", len(sgs), f.securityGroupLimit)
	}

	return result
}

func (f *NetworkFormatter) FormatNetworkAcls(nacls []types.NetworkAcl) string {
	headers := []string{"NACL ID", "VPC", "Subnets", "Type", "Rules"}

	var rows [][]string
	for _, nacl := range nacls {
		subnets := fmt.Sprintf("%d subnets", len(nacl.SubnetIDs))
		if len(nacl.SubnetIDs) == 1 {
			subnets = "1 subnet"
		}

		rules := "Custom rules"
		if nacl.IsDefault {
			rules = "Allow all inbound/outbound"
		}

		rows = append(rows, []string{nacl.NetworkAclID, nacl.VpcID, subnets, nacl.Type, rules})
	}

	return markdown.FormatTable(headers, rows) + "\n" + naclRulesNote
}

func (f *NetworkFormatter) FormatVpcPeering(peerings []types.VpcPeeringConnection) string {
	headers := []string{"Peering Connection ID", "Name", "Requester VPC", "Accepter VPC", "Status"}

	var rows [][]string
	for _, peer := range peerings {
		rows = append(rows, []string{
			peer.VpcPeeringConnectionID,
			displayName(peer.Name),
			peer.RequesterVpc,
			peer.AccepterVpc,
			peer.Status,
		})
	}

	return markdown.FormatTable(headers, rows)
}

func (f *NetworkFormatter) FormatVpcEndpoints(endpoints []types.VpcEndpoint) string {
	headers := []string{"Endpoint ID", "Name", "Type", "VPC", "Service", "State"}

	var rows [][]string
	for _, endpoint := range endpoints {
		rows = append(rows, []string{
			endpoint.VpcEndpointID,
			displayName(endpoint.Name),
			endpoint.VpcEndpointType,
			endpoint.VpcID,
			strings.ReplaceAll(endpoint.ServiceName, endpointPrefix, ""),
			endpoint.State,
		})
	}

	return markdown.FormatTable(headers, rows)
}

// FormatEc2Instances skips terminated and terminating instances.
func (f *NetworkFormatter) FormatEc2Instances(instances []types.Ec2Instance) string {
	headers := []string{"Instance ID", "Name", "Type", "State", "VPC", "Subnet", "Private IP", "Public IP", "NAT Instance"}

	var rows [][]string
	natInstances := 0
	for _, instance := range instances {
		if instance.IsTerminated() {
			continue
		}
		if instance.IsNatInstance {
			natInstances++
		}

		rows = append(rows, []string{
			instance.InstanceID,
			displayName(instance.Name),
			instance.InstanceType,
			instance.State,
			instance.VpcID,
			instance.SubnetID,
			instance.PrivateIPAddress,
			instance.PublicIPAddress,
			yesNo(instance.IsNatInstance),
		})
	}

	if len(rows) == 0 {
		return noInstancesFound
	}

	result := markdown.FormatTable(headers, rows)
	if natInstances > 0 {
		result += fmt.Sprintf("\nNote: %d NAT instance(s) detected (source/destination check disabled).\n", natInstances)
	}

	return result
}

// FormatDirectConnect renders one sub-table per non-empty Direct Connect collection.
func (f *NetworkFormatter) FormatDirectConnect(dx types.DirectConnectInventory) string {
	if dx.IsEmpty() {
		return noDirectConnectFound
	}

	var parts []string

	if len(dx.Connections) > 0 {
		headers := []string{"Connection ID", "Name", "State", "Location", "Bandwidth", "AWS Device"}
		var rows [][]string
		for _, conn := range dx.Connections {
			rows = append(rows, []string{
				conn.ConnectionID,
				displayName(conn.Name),
				conn.State,
				conn.Location,
				conn.Bandwidth,
				conn.AwsDevice,
			})
		}
		parts = append(parts, "### Direct Connect Connections\n", markdown.FormatTable(headers, rows))
	}

	if len(dx.VirtualInterfaces) > 0 {
		headers := []string{"VIF ID", "Name", "Type", "VLAN", "State", "BGP Status", "Customer ASN"}
		var rows [][]string
		for _, vif := range dx.VirtualInterfaces {
			rows = append(rows, []string{
				vif.VirtualInterfaceID,
				displayName(vif.Name),
				vif.Type,
				strconv.Itoa(int(vif.Vlan)),
				vif.State,
				vif.BgpStatus,
				vif.CustomerAsn,
			})
		}
		parts = append(parts, "### Virtual Interfaces (VIFs)\n", markdown.FormatTable(headers, rows))
	}

	if len(dx.Gateways) > 0 {
		headers := []string{"DX Gateway ID", "Name", "State", "ASN"}
		var rows [][]string
		for _, gw := range dx.Gateways {
			rows = append(rows, []string{
				gw.GatewayID,
				displayName(gw.Name),
				gw.State,
				gw.AmazonSideAsn,
			})
		}
		parts = append(parts, "### Direct Connect Gateways\n", markdown.FormatTable(headers, rows))
	}

	return strings.Join(parts, "\n")
}
