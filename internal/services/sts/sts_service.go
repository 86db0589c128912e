package sts

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

type STSService struct {
	client STSAPI
}

func NewSTSService(client STSAPI) *STSService {
	return &STSService{client: client}
}

// GetAccountID returns the account the current credentials belong to.
func (s *STSService) GetAccountID(ctx context.Context) (string, error) {
	identity, err := s.client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("❌ Failed to get caller identity: %v", err)
	}

	account := aws.ToString(identity.Account)
	if account == "" {
		return "", fmt.Errorf("❌ Caller identity did not include an account ID")
	}

	return account, nil
}
