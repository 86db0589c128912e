package ec2

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"golang.org/x/time/rate"
)

// EC2API is the subset of the EC2 client used to inventory networking resources.
type EC2API interface {
	DescribeVpcs(ctx context.Context, params *ec2.DescribeVpcsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVpcsOutput, error)
	DescribeSubnets(ctx context.Context, params *ec2.DescribeSubnetsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error)
	DescribeRouteTables(ctx context.Context, params *ec2.DescribeRouteTablesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRouteTablesOutput, error)
	DescribeInternetGateways(ctx context.Context, params *ec2.DescribeInternetGatewaysInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInternetGatewaysOutput, error)
	DescribeNatGateways(ctx context.Context, params *ec2.DescribeNatGatewaysInput, optFns ...func(*ec2.Options)) (*ec2.DescribeNatGatewaysOutput, error)
	DescribeTransitGateways(ctx context.Context, params *ec2.DescribeTransitGatewaysInput, optFns ...func(*ec2.Options)) (*ec2.DescribeTransitGatewaysOutput, error)
	DescribeVpnGateways(ctx context.Context, params *ec2.DescribeVpnGatewaysInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVpnGatewaysOutput, error)
	DescribeSecurityGroups(ctx context.Context, params *ec2.DescribeSecurityGroupsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSecurityGroupsOutput, error)
	DescribeNetworkAcls(ctx context.Context, params *ec2.DescribeNetworkAclsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeNetworkAclsOutput, error)
	DescribeVpcPeeringConnections(ctx context.Context, params *ec2.DescribeVpcPeeringConnectionsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVpcPeeringConnectionsOutput, error)
	DescribeVpcEndpoints(ctx context.Context, params *ec2.DescribeVpcEndpointsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVpcEndpointsOutput, error)
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
}

// EC2Service issues a single, unpaginated describe call per resource kind.
// Calls are paced by a token bucket; nothing is retried here.
type EC2Service struct {
	client  EC2API
	limiter *rate.Limiter
}

// NewEC2Service creates an EC2Service. A requestsPerSecond of zero or less disables pacing.
func NewEC2Service(client EC2API, requestsPerSecond float64) *EC2Service {
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}

	return &EC2Service{
		client:  client,
		limiter: rate.NewLimiter(limit, 1),
	}
}

func (e *EC2Service) wait(ctx context.Context) error {
	if err := e.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter cancelled: %w", err)
	}
	return nil
}

func (e *EC2Service) DescribeVpcs(ctx context.Context) (*ec2.DescribeVpcsOutput, error) {
	if err := e.wait(ctx); err != nil {
		return nil, err
	}
	return e.client.DescribeVpcs(ctx, &ec2.DescribeVpcsInput{})
}

func (e *EC2Service) DescribeSubnets(ctx context.Context) (*ec2.DescribeSubnetsOutput, error) {
	if err := e.wait(ctx); err != nil {
		return nil, err
	}
	return e.client.DescribeSubnets(ctx, &ec2.DescribeSubnetsInput{})
}

func (e *EC2Service) DescribeRouteTables(ctx context.Context) (*ec2.DescribeRouteTablesOutput, error) {
	if err := e.wait(ctx); err != nil {
		return nil, err
	}
	return e.client.DescribeRouteTables(ctx, &ec2.DescribeRouteTablesInput{})
}

func (e *EC2Service) DescribeInternetGateways(ctx context.Context) (*ec2.DescribeInternetGatewaysOutput, error) {
	if err := e.wait(ctx); err != nil {
		return nil, err
	}
	return e.client.DescribeInternetGateways(ctx, &ec2.DescribeInternetGatewaysInput{})
}

func (e *EC2Service) DescribeNatGateways(ctx context.Context) (*ec2.DescribeNatGatewaysOutput, error) {
	if err := e.wait(ctx); err != nil {
		return nil, err
	}
	return e.client.DescribeNatGateways(ctx, &ec2.DescribeNatGatewaysInput{})
}

func (e *EC2Service) DescribeTransitGateways(ctx context.Context) (*ec2.DescribeTransitGatewaysOutput, error) {
	if err := e.wait(ctx); err != nil {
		return nil, err
	}
	return e.client.DescribeTransitGateways(ctx, &ec2.DescribeTransitGatewaysInput{})
}

func (e *EC2Service) DescribeVpnGateways(ctx context.Context) (*ec2.DescribeVpnGatewaysOutput, error) {
	if err := e.wait(ctx); err != nil {
		return nil, err
	}
	return e.client.DescribeVpnGateways(ctx, &ec2.DescribeVpnGatewaysInput{})
}

func (e *EC2Service) DescribeSecurityGroups(ctx context.Context) (*ec2.DescribeSecurityGroupsOutput, error) {
	if err := e.wait(ctx); err != nil {
		return nil, err
	}
	return e.client.DescribeSecurityGroups(ctx, &ec2.DescribeSecurityGroupsInput{})
}

func (e *EC2Service) DescribeNetworkAcls(ctx context.Context) (*ec2.DescribeNetworkAclsOutput, error) {
	if err := e.wait(ctx); err != nil {
		return nil, err
	}
	return e.client.DescribeNetworkAcls(ctx, &ec2.DescribeNetworkAclsInput{})
}

func (e *EC2Service) DescribeVpcPeeringConnections(ctx context.Context) (*ec2.DescribeVpcPeeringConnectionsOutput, error) {
	if err := e.wait(ctx); err != nil {
		return nil, err
	}
	return e.client.DescribeVpcPeeringConnections(ctx, &ec2.DescribeVpcPeeringConnectionsInput{})
}

func (e *EC2Service) DescribeVpcEndpoints(ctx context.Context) (*ec2.DescribeVpcEndpointsOutput, error) {
	if err := e.wait(ctx); err != nil {
		return nil, err
	}
	return e.client.DescribeVpcEndpoints(ctx, &ec2.DescribeVpcEndpointsInput{})
}

func (e *EC2Service) DescribeInstances(ctx context.Context) (*ec2.DescribeInstancesOutput, error) {
	if err := e.wait(ctx); err != nil {
		return nil, err
	}
	return e.client.DescribeInstances(ctx, &ec2.DescribeInstancesInput{})
}
