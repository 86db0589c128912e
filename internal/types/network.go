package types

type ResourceKind string

const (
	ResourceKindVPC                  ResourceKind = "VPC"
	ResourceKindSubnet               ResourceKind = "Subnet"
	ResourceKindRouteTable           ResourceKind = "RouteTable"
	ResourceKindInternetGateway      ResourceKind = "InternetGateway"
	ResourceKindNatGateway           ResourceKind = "NatGateway"
	ResourceKindTransitGateway       ResourceKind = "TransitGateway"
	ResourceKindVpnGateway           ResourceKind = "VpnGateway"
	ResourceKindSecurityGroup        ResourceKind = "SecurityGroup"
	ResourceKindNetworkAcl           ResourceKind = "NetworkAcl"
	ResourceKindVpcPeeringConnection ResourceKind = "VpcPeeringConnection"
	ResourceKindVpcEndpoint          ResourceKind = "VpcEndpoint"
	ResourceKindEc2Instance          ResourceKind = "Ec2Instance"
	ResourceKindDirectConnect        ResourceKind = "DirectConnect"
)

// InventoryMetadata identifies where and when an inventory was taken.
type InventoryMetadata struct {
	Region    string `json:"region"`
	Date      string `json:"date"`
	AccountID string `json:"account_id"`
}

// NetworkInventory is a point-in-time snapshot of the networking resources of one account/region.
type NetworkInventory struct {
	Metadata              InventoryMetadata      `json:"metadata"`
	VPCs                  []VPC                  `json:"vpcs"`
	Subnets               []Subnet               `json:"subnets"`
	RouteTables           []RouteTable           `json:"route_tables"`
	InternetGateways      []InternetGateway      `json:"internet_gateways"`
	NatGateways           []NatGateway           `json:"nat_gateways"`
	TransitGateways       []TransitGateway       `json:"transit_gateways"`
	VpnGateways           []VpnGateway           `json:"vpn_gateways"`
	SecurityGroups        []SecurityGroup        `json:"security_groups"`
	NetworkAcls           []NetworkAcl           `json:"network_acls"`
	VpcPeeringConnections []VpcPeeringConnection `json:"vpc_peering"`
	VpcEndpoints          []VpcEndpoint          `json:"vpc_endpoints"`
	Ec2Instances          []Ec2Instance          `json:"ec2_instances"`
	DirectConnect         DirectConnectInventory `json:"direct_connect"`
}

type ResourceCount struct {
	Kind  ResourceKind
	Count int
}

// Counts returns the number of records per resource kind, in report order.
// Direct Connect counts connections, virtual interfaces and gateways together.
func (ni NetworkInventory) Counts() []ResourceCount {
	return []ResourceCount{
		{Kind: ResourceKindVPC, Count: len(ni.VPCs)},
		{Kind: ResourceKindSubnet, Count: len(ni.Subnets)},
		{Kind: ResourceKindRouteTable, Count: len(ni.RouteTables)},
		{Kind: ResourceKindInternetGateway, Count: len(ni.InternetGateways)},
		{Kind: ResourceKindNatGateway, Count: len(ni.NatGateways)},
		{Kind: ResourceKindTransitGateway, Count: len(ni.TransitGateways)},
		{Kind: ResourceKindVpnGateway, Count: len(ni.VpnGateways)},
		{Kind: ResourceKindEc2Instance, Count: len(ni.Ec2Instances)},
		{Kind: ResourceKindSecurityGroup, Count: len(ni.SecurityGroups)},
		{Kind: ResourceKindNetworkAcl, Count: len(ni.NetworkAcls)},
		{Kind: ResourceKindVpcPeeringConnection, Count: len(ni.VpcPeeringConnections)},
		{Kind: ResourceKindVpcEndpoint, Count: len(ni.VpcEndpoints)},
		{Kind: ResourceKindDirectConnect, Count: ni.DirectConnect.Total()},
	}
}

type VPC struct {
	VpcID     string `json:"vpc_id"`
	Name      string `json:"name"`
	CidrBlock string `json:"cidr_block"`
	State     string `json:"state"`
	IsDefault bool   `json:"is_default"`
}

type Subnet struct {
	SubnetID                string `json:"subnet_id"`
	Name                    string `json:"name"`
	VpcID                   string `json:"vpc_id"`
	CidrBlock               string `json:"cidr_block"`
	AvailabilityZone        string `json:"availability_zone"`
	AvailableIPAddressCount int32  `json:"available_ip_address_count"`
	// Type is always SubnetTypePrivate; route-based public/private classification is not computed yet.
	Type string `json:"type"`
}

const SubnetTypePrivate = "Private"

type RouteTable struct {
	RouteTableID string   `json:"route_table_id"`
	Name         string   `json:"name"`
	VpcID        string   `json:"vpc_id"`
	SubnetIDs    []string `json:"subnet_ids"`
	IsMain       bool     `json:"is_main"`
	KeyRoutes    []string `json:"key_routes"`
}

type InternetGateway struct {
	InternetGatewayID string `json:"internet_gateway_id"`
	Name              string `json:"name"`
	State             string `json:"state"`
	AttachedVpc       string `json:"attached_vpc"`
}

type NatGateway struct {
	NatGatewayID string `json:"nat_gateway_id"`
	Name         string `json:"name"`
	VpcID        string `json:"vpc_id"`
	SubnetID     string `json:"subnet_id"`
	State        string `json:"state"`
	PublicIP     string `json:"public_ip"`
	PrivateIP    string `json:"private_ip"`
}

type TransitGateway struct {
	TransitGatewayID    string `json:"transit_gateway_id"`
	Name                string `json:"name"`
	State               string `json:"state"`
	AmazonSideAsn       string `json:"amazon_side_asn"`
	DefaultRouteTableID string `json:"default_route_table_id"`
}

type VpnGateway struct {
	VpnGatewayID  string `json:"vpn_gateway_id"`
	Name          string `json:"name"`
	State         string `json:"state"`
	Type          string `json:"type"`
	AmazonSideAsn string `json:"amazon_side_asn"`
	AttachedVpc   string `json:"attached_vpc"`
}

type SecurityGroup struct {
	GroupID      string   `json:"group_id"`
	GroupName    string   `json:"group_name"`
	VpcID        string   `json:"vpc_id"`
	InboundRules []string `json:"inbound_rules"`
}

type NetworkAcl struct {
	NetworkAclID string   `json:"network_acl_id"`
	VpcID        string   `json:"vpc_id"`
	SubnetIDs    []string `json:"subnet_ids"`
	Type         string   `json:"type"`
	IsDefault    bool     `json:"is_default"`
}

type VpcPeeringConnection struct {
	VpcPeeringConnectionID string `json:"vpc_peering_connection_id"`
	Name                   string `json:"name"`
	RequesterVpc           string `json:"requester_vpc"`
	AccepterVpc            string `json:"accepter_vpc"`
	Status                 string `json:"status"`
}

type VpcEndpoint struct {
	VpcEndpointID   string `json:"vpc_endpoint_id"`
	Name            string `json:"name"`
	VpcEndpointType string `json:"vpc_endpoint_type"`
	VpcID           string `json:"vpc_id"`
	ServiceName     string `json:"service_name"`
	State           string `json:"state"`
}

type Ec2Instance struct {
	InstanceID       string   `json:"instance_id"`
	Name             string   `json:"name"`
	InstanceType     string   `json:"instance_type"`
	State            string   `json:"state"`
	VpcID            string   `json:"vpc_id"`
	SubnetID         string   `json:"subnet_id"`
	PrivateIPAddress string   `json:"private_ip_address"`
	PublicIPAddress  string   `json:"public_ip_address"`
	PrimaryEniID     string   `json:"primary_eni_id"`
	SecurityGroups   []string `json:"security_groups"`
	IsNatInstance    bool     `json:"is_nat_instance"`
	SourceDestCheck  bool     `json:"source_dest_check"`
}

// IsTerminated reports whether the instance is gone or on its way out.
func (i Ec2Instance) IsTerminated() bool {
	return i.State == "terminated" || i.State == "terminating"
}

type DirectConnectInventory struct {
	Connections       []DirectConnectConnection       `json:"connections"`
	VirtualInterfaces []DirectConnectVirtualInterface `json:"virtual_interfaces"`
	Gateways          []DirectConnectGateway          `json:"dx_gateways"`
}

func (dc DirectConnectInventory) Total() int {
	return len(dc.Connections) + len(dc.VirtualInterfaces) + len(dc.Gateways)
}

func (dc DirectConnectInventory) IsEmpty() bool {
	return dc.Total() == 0
}

type DirectConnectConnection struct {
	ConnectionID string `json:"connection_id"`
	Name         string `json:"name"`
	State        string `json:"state"`
	Location     string `json:"location"`
	Bandwidth    string `json:"bandwidth"`
	AwsDevice    string `json:"aws_device"`
}

type DirectConnectVirtualInterface struct {
	VirtualInterfaceID string `json:"virtual_interface_id"`
	Name               string `json:"name"`
	Type               string `json:"type"`
	Vlan               int32  `json:"vlan"`
	State              string `json:"state"`
	BgpStatus          string `json:"bgp_status"`
	CustomerAsn        string `json:"customer_asn"`
}

type DirectConnectGateway struct {
	GatewayID     string `json:"gateway_id"`
	Name          string `json:"name"`
	State         string `json:"state"`
	AmazonSideAsn string `json:"amazon_side_asn"`
}
