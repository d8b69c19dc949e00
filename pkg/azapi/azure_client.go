// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package azapi

import (
	"errors"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/acasquete/content-processing-solution-accelerator/pkg/account"
)

var (
	// ErrWorkspaceNotFound is returned when an existing workspace reference does not
	// resolve to a resource.
	ErrWorkspaceNotFound = errors.New("log analytics workspace not found")
	// ErrWorkspaceAccessDenied is returned when the caller is not authorized to read
	// the referenced workspace.
	ErrWorkspaceAccessDenied = errors.New("access to log analytics workspace was denied")
)

func NewAzureClient(
	credentialProvider account.SubscriptionCredentialProvider,
	armClientOptions *arm.ClientOptions,
) *AzureClient {
	return &AzureClient{
		credentialProvider: credentialProvider,
		armClientOptions:   armClientOptions,
	}
}

type AzureClient struct {
	credentialProvider account.SubscriptionCredentialProvider
	armClientOptions   *arm.ClientOptions
}
