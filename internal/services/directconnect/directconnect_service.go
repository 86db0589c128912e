package directconnect

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/directconnect"
)

type DirectConnectAPI interface {
	DescribeConnections(ctx context.Context, params *directconnect.DescribeConnectionsInput, optFns ...func(*directconnect.Options)) (*directconnect.DescribeConnectionsOutput, error)
	DescribeVirtualInterfaces(ctx context.Context, params *directconnect.DescribeVirtualInterfacesInput, optFns ...func(*directconnect.Options)) (*directconnect.DescribeVirtualInterfacesOutput, error)
	DescribeDirectConnectGateways(ctx context.Context, params *directconnect.DescribeDirectConnectGatewaysInput, optFns ...func(*directconnect.Options)) (*directconnect.DescribeDirectConnectGatewaysOutput, error)
}

type DirectConnectService struct {
	client DirectConnectAPI
}

func NewDirectConnectService(client DirectConnectAPI) *DirectConnectService {
	return &DirectConnectService{client: client}
}

func (d *DirectConnectService) DescribeConnections(ctx context.Context) (*directconnect.DescribeConnectionsOutput, error) {
	return d.client.DescribeConnections(ctx, &directconnect.DescribeConnectionsInput{})
}

func (d *DirectConnectService) DescribeVirtualInterfaces(ctx context.Context) (*directconnect.DescribeVirtualInterfacesOutput, error) {
	return d.client.DescribeVirtualInterfaces(ctx, &directconnect.DescribeVirtualInterfacesInput{})
}

func (d *DirectConnectService) DescribeDirectConnectGateways(ctx context.Context) (*directconnect.DescribeDirectConnectGatewaysOutput, error) {
	return d.client.DescribeDirectConnectGateways(ctx, &directconnect.DescribeDirectConnectGatewaysInput{})
}
