package client

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/directconnect"
)

func NewDirectConnectClient(cfg aws.Config) *directconnect.Client {
	return directconnect.NewFromConfig(cfg)
}
