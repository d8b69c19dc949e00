// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package account

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// SubscriptionCredentialProvider provides an [azcore.TokenCredential] configured
// to use the tenant id that corresponds to the tenant the given subscription
// is located in.
type SubscriptionCredentialProvider interface {
	CredentialForSubscription(ctx context.Context, subscriptionId string) (azcore.TokenCredential, error)
}

// StaticCredentialProvider returns the same credential for every subscription. It is
// used when the process authenticates once (e.g. a developer credential chain) rather
// than holding per-tenant credentials.
type StaticCredentialProvider struct {
	credential azcore.TokenCredential
}

func NewStaticCredentialProvider(credential azcore.TokenCredential) *StaticCredentialProvider {
	return &StaticCredentialProvider{credential: credential}
}

func (p *StaticCredentialProvider) CredentialForSubscription(
	ctx context.Context,
	subscriptionId string,
) (azcore.TokenCredential, error) {
	return p.credential, nil
}
