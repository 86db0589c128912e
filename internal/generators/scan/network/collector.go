package network

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/directconnect"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/smithy-go"
	"github.com/netmap/netmap/internal/types"
)

// NetworkCollectorEC2Service defines the EC2 describe calls used by NetworkCollector
type NetworkCollectorEC2Service interface {
	DescribeVpcs(ctx context.Context) (*ec2.DescribeVpcsOutput, error)
	DescribeSubnets(ctx context.Context) (*ec2.DescribeSubnetsOutput, error)
	DescribeRouteTables(ctx context.Context) (*ec2.DescribeRouteTablesOutput, error)
	DescribeInternetGateways(ctx context.Context) (*ec2.DescribeInternetGatewaysOutput, error)
	DescribeNatGateways(ctx context.Context) (*ec2.DescribeNatGatewaysOutput, error)
	DescribeTransitGateways(ctx context.Context) (*ec2.DescribeTransitGatewaysOutput, error)
	DescribeVpnGateways(ctx context.Context) (*ec2.DescribeVpnGatewaysOutput, error)
	DescribeSecurityGroups(ctx context.Context) (*ec2.DescribeSecurityGroupsOutput, error)
	DescribeNetworkAcls(ctx context.Context) (*ec2.DescribeNetworkAclsOutput, error)
	DescribeVpcPeeringConnections(ctx context.Context) (*ec2.DescribeVpcPeeringConnectionsOutput, error)
	DescribeVpcEndpoints(ctx context.Context) (*ec2.DescribeVpcEndpointsOutput, error)
	DescribeInstances(ctx context.Context) (*ec2.DescribeInstancesOutput, error)
}

// NetworkCollectorDirectConnectService defines the Direct Connect calls used by NetworkCollector
type NetworkCollectorDirectConnectService interface {
	DescribeConnections(ctx context.Context) (*directconnect.DescribeConnectionsOutput, error)
	DescribeVirtualInterfaces(ctx context.Context) (*directconnect.DescribeVirtualInterfacesOutput, error)
	DescribeDirectConnectGateways(ctx context.Context) (*directconnect.DescribeDirectConnectGatewaysOutput, error)
}

// NetworkCollectorSTSService resolves the account the inventory belongs to
type NetworkCollectorSTSService interface {
	GetAccountID(ctx context.Context) (string, error)
}

type NetworkCollectorOpts struct {
	Region string
}

// NetworkCollector takes a single-page inventory of the networking resources in one region.
type NetworkCollector struct {
	region     string
	ec2Service NetworkCollectorEC2Service
	dxService  NetworkCollectorDirectConnectService
	stsService NetworkCollectorSTSService
	now        func() time.Time
}

func NewNetworkCollector(ec2Service NetworkCollectorEC2Service, dxService NetworkCollectorDirectConnectService, stsService NetworkCollectorSTSService, opts NetworkCollectorOpts) *NetworkCollector {
	return &NetworkCollector{
		region:     opts.Region,
		ec2Service: ec2Service,
		dxService:  dxService,
		stsService: stsService,
		now:        time.Now,
	}
}

// Collect queries every resource kind once, in report order. Any STS or EC2
// failure aborts the run; Direct Connect failures degrade to an empty result.
func (nc *NetworkCollector) Collect(ctx context.Context) (*types.NetworkInventory, error) {
	slog.Info("🚀 collecting AWS network configuration", "region", nc.region)

	accountID, err := nc.stsService.GetAccountID(ctx)
	if err != nil {
		return nil, err
	}

	inventory := &types.NetworkInventory{
		Metadata: types.InventoryMetadata{
			Region:    nc.region,
			Date:      nc.now().Format("2006-01-02"),
			AccountID: accountID,
		},
	}

	steps := []func(context.Context, *types.NetworkInventory) error{
		nc.collectVpcs,
		nc.collectSubnets,
		nc.collectRouteTables,
		nc.collectInternetGateways,
		nc.collectNatGateways,
		nc.collectTransitGateways,
		nc.collectVpnGateways,
		nc.collectSecurityGroups,
		nc.collectNetworkAcls,
		nc.collectVpcPeering,
		nc.collectVpcEndpoints,
		nc.collectInstances,
	}
	for _, step := range steps {
		if err := step(ctx, inventory); err != nil {
			return nil, err
		}
	}

	inventory.DirectConnect = nc.collectDirectConnect(ctx)

	return inventory, nil
}

func warnIfTruncated(kind string, nextToken *string) {
	if nextToken != nil && *nextToken != "" {
		slog.Warn("⚠️ more results available than a single page, inventory is truncated", "kind", kind)
	}
}

func (nc *NetworkCollector) collectVpcs(ctx context.Context, inventory *types.NetworkInventory) error {
	slog.Info("🔍 collecting VPCs", "region", nc.region)

	output, err := nc.ec2Service.DescribeVpcs(ctx)
	if err != nil {
		return fmt.Errorf("❌ failed to describe VPCs: %v", err)
	}
	warnIfTruncated("VPCs", output.NextToken)

	inventory.VPCs = make([]types.VPC, 0, len(output.Vpcs))
	for _, vpc := range output.Vpcs {
		inventory.VPCs = append(inventory.VPCs, normalizeVpc(vpc))
	}

	slog.Info("✨ found VPCs", "count", len(inventory.VPCs))
	return nil
}

func (nc *NetworkCollector) collectSubnets(ctx context.Context, inventory *types.NetworkInventory) error {
	slog.Info("🔍 collecting subnets", "region", nc.region)

	output, err := nc.ec2Service.DescribeSubnets(ctx)
	if err != nil {
		return fmt.Errorf("❌ failed to describe subnets: %v", err)
	}
	warnIfTruncated("subnets", output.NextToken)

	inventory.Subnets = make([]types.Subnet, 0, len(output.Subnets))
	for _, subnet := range output.Subnets {
		inventory.Subnets = append(inventory.Subnets, normalizeSubnet(subnet))
	}

	slog.Info("✨ found subnets", "count", len(inventory.Subnets))
	return nil
}

func (nc *NetworkCollector) collectRouteTables(ctx context.Context, inventory *types.NetworkInventory) error {
	slog.Info("🔍 collecting route tables", "region", nc.region)

	output, err := nc.ec2Service.DescribeRouteTables(ctx)
	if err != nil {
		return fmt.Errorf("❌ failed to describe route tables: %v", err)
	}
	warnIfTruncated("route tables", output.NextToken)

	inventory.RouteTables = make([]types.RouteTable, 0, len(output.RouteTables))
	for _, rt := range output.RouteTables {
		inventory.RouteTables = append(inventory.RouteTables, normalizeRouteTable(rt))
	}

	slog.Info("✨ found route tables", "count", len(inventory.RouteTables))
	return nil
}

func (nc *NetworkCollector) collectInternetGateways(ctx context.Context, inventory *types.NetworkInventory) error {
	slog.Info("🔍 collecting internet gateways", "region", nc.region)

	output, err := nc.ec2Service.DescribeInternetGateways(ctx)
	if err != nil {
		return fmt.Errorf("❌ failed to describe internet gateways: %v", err)
	}
	warnIfTruncated("internet gateways", output.NextToken)

	inventory.InternetGateways = make([]types.InternetGateway, 0, len(output.InternetGateways))
	for _, igw := range output.InternetGateways {
		inventory.InternetGateways = append(inventory.InternetGateways, normalizeInternetGateway(igw))
	}

	slog.Info("✨ found internet gateways", "count", len(inventory.InternetGateways))
	return nil
}

func (nc *NetworkCollector) collectNatGateways(ctx context.Context, inventory *types.NetworkInventory) error {
	slog.Info("🔍 collecting NAT gateways", "region", nc.region)

	output, err := nc.ec2Service.DescribeNatGateways(ctx)
	if err != nil {
		return fmt.Errorf("❌ failed to describe NAT gateways: %v", err)
	}
	warnIfTruncated("NAT gateways", output.NextToken)

	inventory.NatGateways = make([]types.NatGateway, 0, len(output.NatGateways))
	for _, nat := range output.NatGateways {
		inventory.NatGateways = append(inventory.NatGateways, normalizeNatGateway(nat))
	}

	slog.Info("✨ found NAT gateways", "count", len(inventory.NatGateways))
	return nil
}

func (nc *NetworkCollector) collectTransitGateways(ctx context.Context, inventory *types.NetworkInventory) error {
	slog.Info("🔍 collecting transit gateways", "region", nc.region)

	output, err := nc.ec2Service.DescribeTransitGateways(ctx)
	if err != nil {
		return fmt.Errorf("❌ failed to describe transit gateways: %v", err)
	}
	warnIfTruncated("transit gateways", output.NextToken)

	inventory.TransitGateways = make([]types.TransitGateway, 0, len(output.TransitGateways))
	for _, tgw := range output.TransitGateways {
		inventory.TransitGateways = append(inventory.TransitGateways, normalizeTransitGateway(tgw))
	}

	slog.Info("✨ found transit gateways", "count", len(inventory.TransitGateways))
	return nil
}

// DescribeVpnGateways has no continuation token, the full list is always returned.
func (nc *NetworkCollector) collectVpnGateways(ctx context.Context, inventory *types.NetworkInventory) error {
	slog.Info("🔍 collecting VPN gateways", "region", nc.region)

	output, err := nc.ec2Service.DescribeVpnGateways(ctx)
	if err != nil {
		return fmt.Errorf("❌ failed to describe VPN gateways: %v", err)
	}

	inventory.VpnGateways = make([]types.VpnGateway, 0, len(output.VpnGateways))
	for _, vgw := range output.VpnGateways {
		inventory.VpnGateways = append(inventory.VpnGateways, normalizeVpnGateway(vgw))
	}

	slog.Info("✨ found VPN gateways", "count", len(inventory.VpnGateways))
	return nil
}

func (nc *NetworkCollector) collectSecurityGroups(ctx context.Context, inventory *types.NetworkInventory) error {
	slog.Info("🔍 collecting security groups", "region", nc.region)

	output, err := nc.ec2Service.DescribeSecurityGroups(ctx)
	if err != nil {
		return fmt.Errorf("❌ failed to describe security groups: %v", err)
	}
	warnIfTruncated("security groups", output.NextToken)

	inventory.SecurityGroups = make([]types.SecurityGroup, 0, len(output.SecurityGroups))
	for _, sg := range output.SecurityGroups {
		inventory.SecurityGroups = append(inventory.SecurityGroups, normalizeSecurityGroup(sg))
	}

	slog.Info("✨ found security groups", "count", len(inventory.SecurityGroups))
	return nil
}

func (nc *NetworkCollector) collectNetworkAcls(ctx context.Context, inventory *types.NetworkInventory) error {
	slog.Info("🔍 collecting network ACLs", "region", nc.region)

	output, err := nc.ec2Service.DescribeNetworkAcls(ctx)
	if err != nil {
		return fmt.Errorf("❌ failed to describe network ACLs: %v", err)
	}
	warnIfTruncated("network ACLs", output.NextToken)

	inventory.NetworkAcls = make([]types.NetworkAcl, 0, len(output.NetworkAcls))
	for _, nacl := range output.NetworkAcls {
		inventory.NetworkAcls = append(inventory.NetworkAcls, normalizeNetworkAcl(nacl))
	}

	slog.Info("✨ found network ACLs", "count", len(inventory.NetworkAcls))
	return nil
}

func (nc *NetworkCollector) collectVpcPeering(ctx context.Context, inventory *types.NetworkInventory) error {
	slog.Info("🔍 collecting VPC peering connections", "region", nc.region)

	output, err := nc.ec2Service.DescribeVpcPeeringConnections(ctx)
	if err != nil {
		return fmt.Errorf("❌ failed to describe VPC peering connections: %v", err)
	}
	warnIfTruncated("VPC peering connections", output.NextToken)

	inventory.VpcPeeringConnections = make([]types.VpcPeeringConnection, 0, len(output.VpcPeeringConnections))
	for _, peer := range output.VpcPeeringConnections {
		inventory.VpcPeeringConnections = append(inventory.VpcPeeringConnections, normalizeVpcPeering(peer))
	}

	slog.Info("✨ found VPC peering connections", "count", len(inventory.VpcPeeringConnections))
	return nil
}

func (nc *NetworkCollector) collectVpcEndpoints(ctx context.Context, inventory *types.NetworkInventory) error {
	slog.Info("🔍 collecting VPC endpoints", "region", nc.region)

	output, err := nc.ec2Service.DescribeVpcEndpoints(ctx)
	if err != nil {
		return fmt.Errorf("❌ failed to describe VPC endpoints: %v", err)
	}
	warnIfTruncated("VPC endpoints", output.NextToken)

	inventory.VpcEndpoints = make([]types.VpcEndpoint, 0, len(output.VpcEndpoints))
	for _, endpoint := range output.VpcEndpoints {
		inventory.VpcEndpoints = append(inventory.VpcEndpoints, normalizeVpcEndpoint(endpoint))
	}

	slog.Info("✨ found VPC endpoints", "count", len(inventory.VpcEndpoints))
	return nil
}

func (nc *NetworkCollector) collectInstances(ctx context.Context, inventory *types.NetworkInventory) error {
	slog.Info("🔍 collecting EC2 instances", "region", nc.region)

	output, err := nc.ec2Service.DescribeInstances(ctx)
	if err != nil {
		return fmt.Errorf("❌ failed to describe EC2 instances: %v", err)
	}
	warnIfTruncated("EC2 instances", output.NextToken)

	inventory.Ec2Instances = []types.Ec2Instance{}
	for _, reservation := range output.Reservations {
		for _, instance := range reservation.Instances {
			inventory.Ec2Instances = append(inventory.Ec2Instances, normalizeInstance(instance))
		}
	}

	slog.Info("✨ found EC2 instances", "count", len(inventory.Ec2Instances))
	return nil
}

// collectDirectConnect never fails; the API is commonly unavailable or not permitted.
func (nc *NetworkCollector) collectDirectConnect(ctx context.Context) types.DirectConnectInventory {
	slog.Info("🔍 collecting Direct Connect configuration", "region", nc.region)

	dx, err := nc.describeDirectConnect(ctx)
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			slog.Warn("⚠️ could not collect Direct Connect info", "code", apiErr.ErrorCode(), "error", err)
		} else {
			slog.Warn("⚠️ could not collect Direct Connect info", "error", err)
		}
		return types.DirectConnectInventory{
			Connections:       []types.DirectConnectConnection{},
			VirtualInterfaces: []types.DirectConnectVirtualInterface{},
			Gateways:          []types.DirectConnectGateway{},
		}
	}

	slog.Info("✨ found Direct Connect resources",
		"connections", len(dx.Connections),
		"virtualInterfaces", len(dx.VirtualInterfaces),
		"gateways", len(dx.Gateways),
	)
	return dx
}

func (nc *NetworkCollector) describeDirectConnect(ctx context.Context) (types.DirectConnectInventory, error) {
	dx := types.DirectConnectInventory{}

	connections, err := nc.dxService.DescribeConnections(ctx)
	if err != nil {
		return dx, err
	}
	vifs, err := nc.dxService.DescribeVirtualInterfaces(ctx)
	if err != nil {
		return dx, err
	}
	gateways, err := nc.dxService.DescribeDirectConnectGateways(ctx)
	if err != nil {
		return dx, err
	}
	warnIfTruncated("Direct Connect gateways", gateways.NextToken)

	dx.Connections = make([]types.DirectConnectConnection, 0, len(connections.Connections))
	for _, conn := range connections.Connections {
		dx.Connections = append(dx.Connections, normalizeDirectConnectConnection(conn))
	}
	dx.VirtualInterfaces = make([]types.DirectConnectVirtualInterface, 0, len(vifs.VirtualInterfaces))
	for _, vif := range vifs.VirtualInterfaces {
		dx.VirtualInterfaces = append(dx.VirtualInterfaces, normalizeVirtualInterface(vif))
	}
	dx.Gateways = make([]types.DirectConnectGateway, 0, len(gateways.DirectConnectGateways))
	for _, gw := range gateways.DirectConnectGateways {
		dx.Gateways = append(dx.Gateways, normalizeDirectConnectGateway(gw))
	}

	return dx, nil
}
