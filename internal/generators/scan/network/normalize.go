package network

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	dxtypes "github.com/aws/aws-sdk-go-v2/service/directconnect/types"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/netmap/netmap/internal/types"
)

const (
	notAvailable       = "N/A"
	notAttached        = "Not attached"
	localTarget        = "local"
	maxSummarizedRules = 5
)

// getTagValue returns the value of the tag with the given key, or "" when absent.
func getTagValue(tags []ec2types.Tag, key string) string {
	for _, tag := range tags {
		if aws.ToString(tag.Key) == key {
			return aws.ToString(tag.Value)
		}
	}
	return ""
}

func stringOr(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	return *value
}

func int64Or(value *int64, fallback string) string {
	if value == nil {
		return fallback
	}
	return strconv.FormatInt(*value, 10)
}

// routeField picks one optional attribute off a route.
type routeField func(route ec2types.Route) *string

// Evaluated in order, the first non-nil attribute wins.
var routeTargetFields = []routeField{
	func(r ec2types.Route) *string { return r.GatewayId },
	func(r ec2types.Route) *string { return r.NatGatewayId },
	func(r ec2types.Route) *string { return r.TransitGatewayId },
	func(r ec2types.Route) *string { return r.NetworkInterfaceId },
	func(r ec2types.Route) *string { return r.VpcPeeringConnectionId },
	func(r ec2types.Route) *string { return r.InstanceId },
}

var routeCidrFields = []routeField{
	func(r ec2types.Route) *string { return r.DestinationCidrBlock },
	func(r ec2types.Route) *string { return r.DestinationIpv6CidrBlock },
}

var routeDestinationFields = []routeField{
	func(r ec2types.Route) *string { return r.DestinationCidrBlock },
	func(r ec2types.Route) *string { return r.DestinationIpv6CidrBlock },
	func(r ec2types.Route) *string { return r.DestinationPrefixListId },
}

func firstPresent(route ec2types.Route, fields []routeField) (string, bool) {
	for _, field := range fields {
		if value := field(route); value != nil {
			return *value, true
		}
	}
	return "", false
}

func routeTarget(route ec2types.Route) string {
	if target, ok := firstPresent(route, routeTargetFields); ok {
		return target
	}
	return localTarget
}

func routeDestination(route ec2types.Route) string {
	if dest, ok := firstPresent(route, routeDestinationFields); ok {
		return dest
	}
	return notAvailable
}

// keyRoutes renders every route of a table except the implicit local route.
func keyRoutes(routes []ec2types.Route) []string {
	result := []string{}
	for _, route := range routes {
		dest := routeDestination(route)
		target := routeTarget(route)

		if route.State == ec2types.RouteStateBlackhole {
			result = append(result, fmt.Sprintf("%s → %s (blackhole)", dest, target))
			continue
		}

		_, isCidr := firstPresent(route, routeCidrFields)
		if isCidr && target == localTarget {
			continue
		}
		result = append(result, fmt.Sprintf("%s → %s", dest, target))
	}
	return result
}

func portOrAll(port *int32) string {
	if port == nil {
		return "All"
	}
	return strconv.Itoa(int(*port))
}

// summarizeInboundRule renders a permission as "<proto>/<ports> from <sources>".
func summarizeInboundRule(permission ec2types.IpPermission) string {
	protocol := stringOr(permission.IpProtocol, "All")
	if protocol == "-1" {
		protocol = "All"
	}

	from, to := portOrAll(permission.FromPort), portOrAll(permission.ToPort)
	portRange := from
	if from != to {
		portRange = from + "-" + to
	}

	var sources []string
	for _, ipRange := range permission.IpRanges {
		sources = append(sources, aws.ToString(ipRange.CidrIp))
	}
	for _, pair := range permission.UserIdGroupPairs {
		sources = append(sources, stringOr(pair.GroupId, "self"))
	}

	source := "All"
	if len(sources) > 0 {
		source = strings.Join(sources, ", ")
	}

	return fmt.Sprintf("%s/%s from %s", protocol, portRange, source)
}

func summarizeInboundRules(permissions []ec2types.IpPermission) []string {
	if len(permissions) > maxSummarizedRules {
		permissions = permissions[:maxSummarizedRules]
	}

	rules := make([]string, 0, len(permissions))
	for _, permission := range permissions {
		rules = append(rules, summarizeInboundRule(permission))
	}
	return rules
}

func normalizeVpc(vpc ec2types.Vpc) types.VPC {
	return types.VPC{
		VpcID:     aws.ToString(vpc.VpcId),
		Name:      getTagValue(vpc.Tags, "Name"),
		CidrBlock: aws.ToString(vpc.CidrBlock),
		State:     string(vpc.State),
		IsDefault: aws.ToBool(vpc.IsDefault),
	}
}

func normalizeSubnet(subnet ec2types.Subnet) types.Subnet {
	return types.Subnet{
		SubnetID:                aws.ToString(subnet.SubnetId),
		Name:                    getTagValue(subnet.Tags, "Name"),
		VpcID:                   aws.ToString(subnet.VpcId),
		CidrBlock:               aws.ToString(subnet.CidrBlock),
		AvailabilityZone:        aws.ToString(subnet.AvailabilityZone),
		AvailableIPAddressCount: aws.ToInt32(subnet.AvailableIpAddressCount),
		Type:                    types.SubnetTypePrivate,
	}
}

func normalizeRouteTable(rt ec2types.RouteTable) types.RouteTable {
	subnetIDs := []string{}
	isMain := false
	for _, assoc := range rt.Associations {
		if assoc.SubnetId != nil {
			subnetIDs = append(subnetIDs, *assoc.SubnetId)
		}
		if aws.ToBool(assoc.Main) {
			isMain = true
		}
	}

	return types.RouteTable{
		RouteTableID: aws.ToString(rt.RouteTableId),
		Name:         getTagValue(rt.Tags, "Name"),
		VpcID:        aws.ToString(rt.VpcId),
		SubnetIDs:    subnetIDs,
		IsMain:       isMain,
		KeyRoutes:    keyRoutes(rt.Routes),
	}
}

func normalizeInternetGateway(igw ec2types.InternetGateway) types.InternetGateway {
	attachedVpc, state := notAttached, "detached"
	if len(igw.Attachments) > 0 {
		attachedVpc = aws.ToString(igw.Attachments[0].VpcId)
		state = string(igw.Attachments[0].State)
	}

	return types.InternetGateway{
		InternetGatewayID: aws.ToString(igw.InternetGatewayId),
		Name:              getTagValue(igw.Tags, "Name"),
		State:             state,
		AttachedVpc:       attachedVpc,
	}
}

func normalizeNatGateway(nat ec2types.NatGateway) types.NatGateway {
	publicIP, privateIP := notAvailable, notAvailable
	if len(nat.NatGatewayAddresses) > 0 {
		publicIP = stringOr(nat.NatGatewayAddresses[0].PublicIp, notAvailable)
		privateIP = stringOr(nat.NatGatewayAddresses[0].PrivateIp, notAvailable)
	}

	return types.NatGateway{
		NatGatewayID: aws.ToString(nat.NatGatewayId),
		Name:         getTagValue(nat.Tags, "Name"),
		VpcID:        aws.ToString(nat.VpcId),
		SubnetID:     aws.ToString(nat.SubnetId),
		State:        string(nat.State),
		PublicIP:     publicIP,
		PrivateIP:    privateIP,
	}
}

func normalizeTransitGateway(tgw ec2types.TransitGateway) types.TransitGateway {
	asn, defaultRouteTable := notAvailable, notAvailable
	if tgw.Options != nil {
		asn = int64Or(tgw.Options.AmazonSideAsn, notAvailable)
		defaultRouteTable = stringOr(tgw.Options.AssociationDefaultRouteTableId, notAvailable)
	}

	return types.TransitGateway{
		TransitGatewayID:    aws.ToString(tgw.TransitGatewayId),
		Name:                getTagValue(tgw.Tags, "Name"),
		State:               string(tgw.State),
		AmazonSideAsn:       asn,
		DefaultRouteTableID: defaultRouteTable,
	}
}

func normalizeVpnGateway(vgw ec2types.VpnGateway) types.VpnGateway {
	attachedVpc := notAttached
	if len(vgw.VpcAttachments) > 0 {
		attachedVpc = aws.ToString(vgw.VpcAttachments[0].VpcId)
	}

	return types.VpnGateway{
		VpnGatewayID:  aws.ToString(vgw.VpnGatewayId),
		Name:          getTagValue(vgw.Tags, "Name"),
		State:         string(vgw.State),
		Type:          string(vgw.Type),
		AmazonSideAsn: int64Or(vgw.AmazonSideAsn, notAvailable),
		AttachedVpc:   attachedVpc,
	}
}

func normalizeSecurityGroup(sg ec2types.SecurityGroup) types.SecurityGroup {
	return types.SecurityGroup{
		GroupID:      aws.ToString(sg.GroupId),
		GroupName:    aws.ToString(sg.GroupName),
		VpcID:        stringOr(sg.VpcId, "EC2-Classic"),
		InboundRules: summarizeInboundRules(sg.IpPermissions),
	}
}

func normalizeNetworkAcl(nacl ec2types.NetworkAcl) types.NetworkAcl {
	subnetIDs := []string{}
	for _, assoc := range nacl.Associations {
		subnetIDs = append(subnetIDs, aws.ToString(assoc.SubnetId))
	}

	isDefault := aws.ToBool(nacl.IsDefault)
	naclType := "Custom"
	if isDefault {
		naclType = "Default"
	}

	return types.NetworkAcl{
		NetworkAclID: aws.ToString(nacl.NetworkAclId),
		VpcID:        aws.ToString(nacl.VpcId),
		SubnetIDs:    subnetIDs,
		Type:         naclType,
		IsDefault:    isDefault,
	}
}

func describePeeringVpc(info *ec2types.VpcPeeringConnectionVpcInfo) string {
	if info == nil {
		return fmt.Sprintf("%s (%s)", notAvailable, notAvailable)
	}
	return fmt.Sprintf("%s (%s)", stringOr(info.VpcId, notAvailable), stringOr(info.CidrBlock, notAvailable))
}

func normalizeVpcPeering(peer ec2types.VpcPeeringConnection) types.VpcPeeringConnection {
	status := notAvailable
	if peer.Status != nil {
		status = string(peer.Status.Code)
	}

	return types.VpcPeeringConnection{
		VpcPeeringConnectionID: aws.ToString(peer.VpcPeeringConnectionId),
		Name:                   getTagValue(peer.Tags, "Name"),
		RequesterVpc:           describePeeringVpc(peer.RequesterVpcInfo),
		AccepterVpc:            describePeeringVpc(peer.AccepterVpcInfo),
		Status:                 status,
	}
}

func normalizeVpcEndpoint(endpoint ec2types.VpcEndpoint) types.VpcEndpoint {
	return types.VpcEndpoint{
		VpcEndpointID:   aws.ToString(endpoint.VpcEndpointId),
		Name:            getTagValue(endpoint.Tags, "Name"),
		VpcEndpointType: string(endpoint.VpcEndpointType),
		VpcID:           aws.ToString(endpoint.VpcId),
		ServiceName:     aws.ToString(endpoint.ServiceName),
		State:           string(endpoint.State),
	}
}

func normalizeInstance(instance ec2types.Instance) types.Ec2Instance {
	// a missing flag means the check is enabled
	sourceDestCheck := true
	if instance.SourceDestCheck != nil {
		sourceDestCheck = *instance.SourceDestCheck
	}

	primaryEni := notAvailable
	if len(instance.NetworkInterfaces) > 0 {
		primaryEni = stringOr(instance.NetworkInterfaces[0].NetworkInterfaceId, notAvailable)
	}

	securityGroups := []string{}
	for _, sg := range instance.SecurityGroups {
		securityGroups = append(securityGroups, aws.ToString(sg.GroupId))
	}

	state := ""
	if instance.State != nil {
		state = string(instance.State.Name)
	}

	return types.Ec2Instance{
		InstanceID:       aws.ToString(instance.InstanceId),
		Name:             getTagValue(instance.Tags, "Name"),
		InstanceType:     string(instance.InstanceType),
		State:            state,
		VpcID:            stringOr(instance.VpcId, notAvailable),
		SubnetID:         stringOr(instance.SubnetId, notAvailable),
		PrivateIPAddress: stringOr(instance.PrivateIpAddress, notAvailable),
		PublicIPAddress:  stringOr(instance.PublicIpAddress, notAvailable),
		PrimaryEniID:     primaryEni,
		SecurityGroups:   securityGroups,
		IsNatInstance:    !sourceDestCheck,
		SourceDestCheck:  sourceDestCheck,
	}
}

func normalizeDirectConnectConnection(conn dxtypes.Connection) types.DirectConnectConnection {
	return types.DirectConnectConnection{
		ConnectionID: aws.ToString(conn.ConnectionId),
		Name:         aws.ToString(conn.ConnectionName),
		State:        string(conn.ConnectionState),
		Location:     aws.ToString(conn.Location),
		Bandwidth:    aws.ToString(conn.Bandwidth),
		AwsDevice:    stringOr(conn.AwsDeviceV2, notAvailable),
	}
}

func normalizeVirtualInterface(vif dxtypes.VirtualInterface) types.DirectConnectVirtualInterface {
	bgpStatus := notAvailable
	if len(vif.BgpPeers) > 0 && vif.BgpPeers[0].BgpStatus != "" {
		bgpStatus = string(vif.BgpPeers[0].BgpStatus)
	}

	customerAsn := notAvailable
	if vif.Asn != 0 {
		customerAsn = strconv.Itoa(int(vif.Asn))
	}

	return types.DirectConnectVirtualInterface{
		VirtualInterfaceID: aws.ToString(vif.VirtualInterfaceId),
		Name:               aws.ToString(vif.VirtualInterfaceName),
		Type:               aws.ToString(vif.VirtualInterfaceType),
		Vlan:               vif.Vlan,
		State:              string(vif.VirtualInterfaceState),
		BgpStatus:          bgpStatus,
		CustomerAsn:        customerAsn,
	}
}

func normalizeDirectConnectGateway(gw dxtypes.DirectConnectGateway) types.DirectConnectGateway {
	return types.DirectConnectGateway{
		GatewayID:     aws.ToString(gw.DirectConnectGatewayId),
		Name:          aws.ToString(gw.DirectConnectGatewayName),
		State:         string(gw.DirectConnectGatewayState),
		AmazonSideAsn: int64Or(gw.AmazonSideAsn, notAvailable),
	}
}
