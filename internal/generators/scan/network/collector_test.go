package network

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/directconnect"
	dxtypes "github.com/aws/aws-sdk-go-v2/service/directconnect/types"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"
	"github.com/netmap/netmap/internal/mocks"
	dxservice "github.com/netmap/netmap/internal/services/directconnect"
	ec2service "github.com/netmap/netmap/internal/services/ec2"
	stsservice "github.com/netmap/netmap/internal/services/sts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testRegion    = "eu-west-1"
	testAccountID = "123456789012"
)

func newTestCollector(ec2API *mocks.MockEC2API, dxAPI *mocks.MockDirectConnectAPI, stsAPI *mocks.MockSTSAPI) *NetworkCollector {
	if stsAPI == nil {
		stsAPI = &mocks.MockSTSAPI{
			GetCallerIdentityFunc: func(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
				return &sts.GetCallerIdentityOutput{Account: aws.String(testAccountID)}, nil
			},
		}
	}

	collector := NewNetworkCollector(
		ec2service.NewEC2Service(ec2API, 0),
		dxservice.NewDirectConnectService(dxAPI),
		stsservice.NewSTSService(stsAPI),
		NetworkCollectorOpts{Region: testRegion},
	)
	collector.now = func() time.Time { return time.Date(2026, 3, 7, 23, 59, 0, 0, time.UTC) }
	return collector
}

// captureLogs redirects the default logger for the duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })
	return &buf
}

func TestNetworkCollector_Collect(t *testing.T) {
	ec2API := &mocks.MockEC2API{
		DescribeVpcsFunc: func(ctx context.Context, params *ec2.DescribeVpcsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVpcsOutput, error) {
			return &ec2.DescribeVpcsOutput{
				Vpcs: []ec2types.Vpc{
					{VpcId: aws.String("vpc-2"), CidrBlock: aws.String("10.2.0.0/16"), State: ec2types.VpcStateAvailable, IsDefault: aws.Bool(false)},
					{VpcId: aws.String("vpc-1"), CidrBlock: aws.String("172.31.0.0/16"), State: ec2types.VpcStateAvailable, IsDefault: aws.Bool(true)},
				},
			}, nil
		},
		DescribeSubnetsFunc: func(ctx context.Context, params *ec2.DescribeSubnetsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error) {
			return &ec2.DescribeSubnetsOutput{
				Subnets: []ec2types.Subnet{
					{
						SubnetId:                aws.String("subnet-1"),
						VpcId:                   aws.String("vpc-2"),
						CidrBlock:               aws.String("10.2.1.0/24"),
						AvailabilityZone:        aws.String("eu-west-1a"),
						AvailableIpAddressCount: aws.Int32(250),
						Tags:                    []ec2types.Tag{{Key: aws.String("Name"), Value: aws.String("app-a")}},
					},
				},
			}, nil
		},
		DescribeInstancesFunc: func(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error) {
			return &ec2.DescribeInstancesOutput{
				Reservations: []ec2types.Reservation{
					{Instances: []ec2types.Instance{
						{InstanceId: aws.String("i-1"), State: &ec2types.InstanceState{Name: ec2types.InstanceStateNameRunning}},
						{InstanceId: aws.String("i-2"), State: &ec2types.InstanceState{Name: ec2types.InstanceStateNameStopped}},
					}},
					{Instances: []ec2types.Instance{
						{InstanceId: aws.String("i-3"), State: &ec2types.InstanceState{Name: ec2types.InstanceStateNameRunning}},
					}},
				},
			}, nil
		},
	}
	dxAPI := &mocks.MockDirectConnectAPI{
		DescribeDirectConnectGatewaysFunc: func(ctx context.Context, params *directconnect.DescribeDirectConnectGatewaysInput, optFns ...func(*directconnect.Options)) (*directconnect.DescribeDirectConnectGatewaysOutput, error) {
			return &directconnect.DescribeDirectConnectGatewaysOutput{
				DirectConnectGateways: []dxtypes.DirectConnectGateway{
					{DirectConnectGatewayId: aws.String("dxgw-1"), AmazonSideAsn: aws.Int64(64512)},
				},
			}, nil
		},
	}

	inventory, err := newTestCollector(ec2API, dxAPI, nil).Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, testRegion, inventory.Metadata.Region)
	assert.Equal(t, "2026-03-07", inventory.Metadata.Date)
	assert.Equal(t, testAccountID, inventory.Metadata.AccountID)

	require.Len(t, inventory.VPCs, 2)
	assert.Equal(t, "vpc-2", inventory.VPCs[0].VpcID)
	assert.Equal(t, "vpc-1", inventory.VPCs[1].VpcID)
	assert.True(t, inventory.VPCs[1].IsDefault)

	require.Len(t, inventory.Subnets, 1)
	assert.Equal(t, "app-a", inventory.Subnets[0].Name)
	assert.Equal(t, int32(250), inventory.Subnets[0].AvailableIPAddressCount)
	assert.Equal(t, "Private", inventory.Subnets[0].Type)

	// reservations are flattened in order
	require.Len(t, inventory.Ec2Instances, 3)
	assert.Equal(t, []string{"i-1", "i-2", "i-3"}, []string{
		inventory.Ec2Instances[0].InstanceID,
		inventory.Ec2Instances[1].InstanceID,
		inventory.Ec2Instances[2].InstanceID,
	})

	assert.NotNil(t, inventory.RouteTables)
	assert.Empty(t, inventory.RouteTables)
	assert.Empty(t, inventory.SecurityGroups)

	assert.Empty(t, inventory.DirectConnect.Connections)
	require.Len(t, inventory.DirectConnect.Gateways, 1)
	assert.Equal(t, "64512", inventory.DirectConnect.Gateways[0].AmazonSideAsn)
}

func TestNetworkCollector_CallsEachKindOnceInOrder(t *testing.T) {
	var calls []string
	record := func(name string) { calls = append(calls, name) }

	ec2API := &mocks.MockEC2API{
		DescribeVpcsFunc: func(ctx context.Context, params *ec2.DescribeVpcsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVpcsOutput, error) {
			record("vpcs")
			return &ec2.DescribeVpcsOutput{}, nil
		},
		DescribeSubnetsFunc: func(ctx context.Context, params *ec2.DescribeSubnetsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error) {
			record("subnets")
			return &ec2.DescribeSubnetsOutput{}, nil
		},
		DescribeRouteTablesFunc: func(ctx context.Context, params *ec2.DescribeRouteTablesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRouteTablesOutput, error) {
			record("route_tables")
			return &ec2.DescribeRouteTablesOutput{}, nil
		},
		DescribeSecurityGroupsFunc: func(ctx context.Context, params *ec2.DescribeSecurityGroupsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSecurityGroupsOutput, error) {
			record("security_groups")
			return &ec2.DescribeSecurityGroupsOutput{}, nil
		},
		DescribeInstancesFunc: func(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error) {
			record("instances")
			return &ec2.DescribeInstancesOutput{}, nil
		},
	}
	dxAPI := &mocks.MockDirectConnectAPI{
		DescribeConnectionsFunc: func(ctx context.Context, params *directconnect.DescribeConnectionsInput, optFns ...func(*directconnect.Options)) (*directconnect.DescribeConnectionsOutput, error) {
			record("dx_connections")
			return &directconnect.DescribeConnectionsOutput{}, nil
		},
	}

	_, err := newTestCollector(ec2API, dxAPI, nil).Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"vpcs", "subnets", "route_tables", "security_groups", "instances", "dx_connections"}, calls)
}

func TestNetworkCollector_FatalErrors(t *testing.T) {
	tests := []struct {
		name      string
		ec2API    func(later *bool) *mocks.MockEC2API
		stsAPI    *mocks.MockSTSAPI
		wantError string
	}{
		{
			name: "sts_failure",
			ec2API: func(later *bool) *mocks.MockEC2API {
				return &mocks.MockEC2API{
					DescribeVpcsFunc: func(ctx context.Context, params *ec2.DescribeVpcsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVpcsOutput, error) {
						*later = true
						return &ec2.DescribeVpcsOutput{}, nil
					},
				}
			},
			stsAPI: &mocks.MockSTSAPI{
				GetCallerIdentityFunc: func(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
					return nil, errors.New("no valid credential sources found")
				},
			},
			wantError: "Failed to get caller identity",
		},
		{
			name: "subnets_failure_aborts_remaining_kinds",
			ec2API: func(later *bool) *mocks.MockEC2API {
				return &mocks.MockEC2API{
					DescribeSubnetsFunc: func(ctx context.Context, params *ec2.DescribeSubnetsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error) {
						return nil, errors.New("UnauthorizedOperation")
					},
					DescribeRouteTablesFunc: func(ctx context.Context, params *ec2.DescribeRouteTablesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRouteTablesOutput, error) {
						*later = true
						return &ec2.DescribeRouteTablesOutput{}, nil
					},
				}
			},
			wantError: "failed to describe subnets: UnauthorizedOperation",
		},
		{
			name: "instances_failure",
			ec2API: func(later *bool) *mocks.MockEC2API {
				return &mocks.MockEC2API{
					DescribeInstancesFunc: func(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error) {
						return nil, errors.New("RequestLimitExceeded")
					},
				}
			},
			wantError: "failed to describe EC2 instances",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			laterCalled := false
			dxCalled := false
			dxAPI := &mocks.MockDirectConnectAPI{
				DescribeConnectionsFunc: func(ctx context.Context, params *directconnect.DescribeConnectionsInput, optFns ...func(*directconnect.Options)) (*directconnect.DescribeConnectionsOutput, error) {
					dxCalled = true
					return &directconnect.DescribeConnectionsOutput{}, nil
				},
			}

			inventory, err := newTestCollector(tt.ec2API(&laterCalled), dxAPI, tt.stsAPI).Collect(context.Background())

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantError)
			assert.Nil(t, inventory)
			assert.False(t, laterCalled)
			assert.False(t, dxCalled)
		})
	}
}

func TestNetworkCollector_DirectConnectDegrades(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantLogs []string
	}{
		{
			name: "api_error_code_logged",
			err: &smithy.GenericAPIError{
				Code:    "AccessDeniedException",
				Message: "User is not authorized to perform: directconnect:DescribeVirtualInterfaces",
			},
			wantLogs: []string{"could not collect Direct Connect info", "code=AccessDeniedException"},
		},
		{
			name:     "plain_error",
			err:      errors.New("dial tcp: lookup directconnect.eu-west-1.amazonaws.com: no such host"),
			wantLogs: []string{"could not collect Direct Connect info", "no such host"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLogs(t)
			dxAPI := &mocks.MockDirectConnectAPI{
				DescribeConnectionsFunc: func(ctx context.Context, params *directconnect.DescribeConnectionsInput, optFns ...func(*directconnect.Options)) (*directconnect.DescribeConnectionsOutput, error) {
					return &directconnect.DescribeConnectionsOutput{
						Connections: []dxtypes.Connection{{ConnectionId: aws.String("dxcon-1")}},
					}, nil
				},
				DescribeVirtualInterfacesFunc: func(ctx context.Context, params *directconnect.DescribeVirtualInterfacesInput, optFns ...func(*directconnect.Options)) (*directconnect.DescribeVirtualInterfacesOutput, error) {
					return nil, tt.err
				},
			}

			inventory, err := newTestCollector(&mocks.MockEC2API{}, dxAPI, nil).Collect(context.Background())

			require.NoError(t, err)
			assert.True(t, inventory.DirectConnect.IsEmpty())
			assert.NotNil(t, inventory.DirectConnect.Connections)
			assert.NotNil(t, inventory.DirectConnect.VirtualInterfaces)
			assert.NotNil(t, inventory.DirectConnect.Gateways)
			for _, want := range tt.wantLogs {
				assert.Contains(t, logs.String(), want)
			}
		})
	}
}

func TestNetworkCollector_WarnsOnTruncatedPage(t *testing.T) {
	logs := captureLogs(t)
	ec2API := &mocks.MockEC2API{
		DescribeSubnetsFunc: func(ctx context.Context, params *ec2.DescribeSubnetsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error) {
			return &ec2.DescribeSubnetsOutput{
				Subnets:   []ec2types.Subnet{{SubnetId: aws.String("subnet-1")}},
				NextToken: aws.String("eyJ2IjoiMiJ9"),
			}, nil
		},
	}

	inventory, err := newTestCollector(ec2API, &mocks.MockDirectConnectAPI{}, nil).Collect(context.Background())

	require.NoError(t, err)
	assert.Len(t, inventory.Subnets, 1)
	assert.Contains(t, logs.String(), "inventory is truncated")
	assert.Contains(t, logs.String(), "kind=subnets")
	assert.NotContains(t, logs.String(), "kind=VPCs")
}
