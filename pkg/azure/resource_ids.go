// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package azure

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
)

// Resource provider and type of a Log Analytics workspace.
const (
	WorkspaceProviderNamespace = "Microsoft.OperationalInsights"
	WorkspaceResourceType      = "workspaces"
)

// ErrMalformedWorkspaceID is returned when a workspace resource id does not match the
// canonical /subscriptions/{sub}/resourceGroups/{group}/providers/
// Microsoft.OperationalInsights/workspaces/{name} shape.
var ErrMalformedWorkspaceID = errors.New("malformed workspace resource id")

// WorkspaceID is the parsed scope of a Log Analytics workspace resource id.
type WorkspaceID struct {
	SubscriptionId    string
	ResourceGroupName string
	Name              string
}

// Creates Azure subscription resource ID
func SubscriptionRID(subscriptionId string) string {
	returnValue := fmt.Sprintf("/subscriptions/%s", subscriptionId)
	return returnValue
}

// Creates resource ID for an Azure resource group
func ResourceGroupRID(subscriptionId, resourceGroupName string) string {
	returnValue := fmt.Sprintf("%s/resourceGroups/%s", SubscriptionRID(subscriptionId), resourceGroupName)
	return returnValue
}

// Creates resource ID for a Log Analytics workspace
func WorkspaceRID(subscriptionId, resourceGroupName, workspaceName string) string {
	returnValue := fmt.Sprintf(
		"%s/providers/%s/%s/%s",
		ResourceGroupRID(subscriptionId, resourceGroupName),
		WorkspaceProviderNamespace,
		WorkspaceResourceType,
		workspaceName,
	)
	return returnValue
}

// ParseWorkspaceID parses a fully-qualified Log Analytics workspace resource id into
// its scope components. Unlike a positional split, the id is validated against the
// canonical workspace shape: ids for other resource types, nested child resources or
// ids missing any scope component are rejected with [ErrMalformedWorkspaceID].
func ParseWorkspaceID(rid string) (WorkspaceID, error) {
	parsed, err := arm.ParseResourceID(rid)
	if err != nil {
		return WorkspaceID{}, fmt.Errorf("%w: %s", ErrMalformedWorkspaceID, rid)
	}

	resourceType := fmt.Sprintf("%s/%s", WorkspaceProviderNamespace, WorkspaceResourceType)
	if !strings.EqualFold(parsed.ResourceType.String(), resourceType) {
		return WorkspaceID{}, fmt.Errorf(
			"%w: expected resource of type %s, found %s", ErrMalformedWorkspaceID, resourceType, rid)
	}

	if parsed.SubscriptionID == "" || parsed.ResourceGroupName == "" || parsed.Name == "" {
		return WorkspaceID{}, fmt.Errorf("%w: %s", ErrMalformedWorkspaceID, rid)
	}

	return WorkspaceID{
		SubscriptionId:    parsed.SubscriptionID,
		ResourceGroupName: parsed.ResourceGroupName,
		Name:              parsed.Name,
	}, nil
}
