package azapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/operationalinsights/armoperationalinsights/v2"
	"github.com/acasquete/content-processing-solution-accelerator/pkg/convert"
)

type LogAnalyticsWorkspace struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	// CustomerId is the workspace GUID used by data plane consumers, distinct from
	// the management plane resource id.
	CustomerId string `json:"customerId"`
}

type WorkspaceSharedKeys struct {
	PrimarySharedKey string `json:"primarySharedKey"`
}

// WorkspaceCreateRequest is the parameter set for creating a Log Analytics workspace.
type WorkspaceCreateRequest struct {
	Name            string
	Location        string
	Sku             string
	RetentionInDays int32
	Tags            map[string]string
}

func (cli *AzureClient) GetWorkspace(
	ctx context.Context,
	subscriptionId string,
	resourceGroupName string,
	workspaceName string,
) (*LogAnalyticsWorkspace, error) {
	workspacesClient, err := cli.createWorkspacesClient(ctx, subscriptionId)
	if err != nil {
		return nil, err
	}

	workspace, err := workspacesClient.Get(ctx, resourceGroupName, workspaceName, nil)
	if err != nil {
		return nil, fmt.Errorf("getting log analytics workspace: %w", classifyResponseError(err))
	}

	return workspaceFromSdk(workspace.Workspace), nil
}

func (cli *AzureClient) CreateOrUpdateWorkspace(
	ctx context.Context,
	subscriptionId string,
	resourceGroupName string,
	request WorkspaceCreateRequest,
) (*LogAnalyticsWorkspace, error) {
	workspacesClient, err := cli.createWorkspacesClient(ctx, subscriptionId)
	if err != nil {
		return nil, err
	}

	tags := map[string]*string{}
	for key, value := range request.Tags {
		tags[key] = convert.RefOf(value)
	}

	parameters := armoperationalinsights.Workspace{
		Location: convert.RefOf(request.Location),
		Tags:     tags,
		Properties: &armoperationalinsights.WorkspaceProperties{
			RetentionInDays: convert.RefOf(request.RetentionInDays),
			SKU: &armoperationalinsights.WorkspaceSKU{
				Name: convert.RefOf(armoperationalinsights.WorkspaceSKUNameEnum(request.Sku)),
			},
		},
	}

	poller, err := workspacesClient.BeginCreateOrUpdate(ctx, resourceGroupName, request.Name, parameters, nil)
	if err != nil {
		return nil, fmt.Errorf("starting log analytics workspace creation: %w", err)
	}

	response, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("creating log analytics workspace: %w", err)
	}

	return workspaceFromSdk(response.Workspace), nil
}

func (cli *AzureClient) GetWorkspaceSharedKeys(
	ctx context.Context,
	subscriptionId string,
	resourceGroupName string,
	workspaceName string,
) (*WorkspaceSharedKeys, error) {
	sharedKeysClient, err := cli.createSharedKeysClient(ctx, subscriptionId)
	if err != nil {
		return nil, err
	}

	keys, err := sharedKeysClient.GetSharedKeys(ctx, resourceGroupName, workspaceName, nil)
	if err != nil {
		return nil, fmt.Errorf("listing log analytics workspace shared keys: %w", err)
	}

	return &WorkspaceSharedKeys{
		PrimarySharedKey: convert.ToValueWithDefault(keys.PrimarySharedKey, ""),
	}, nil
}

func workspaceFromSdk(workspace armoperationalinsights.Workspace) *LogAnalyticsWorkspace {
	result := &LogAnalyticsWorkspace{
		Id:       convert.ToValueWithDefault(workspace.ID, ""),
		Name:     convert.ToValueWithDefault(workspace.Name, ""),
		Location: convert.ToValueWithDefault(workspace.Location, ""),
	}

	if workspace.Properties != nil {
		result.CustomerId = convert.ToValueWithDefault(workspace.Properties.CustomerID, "")
	}

	return result
}

// classifyResponseError maps ARM HTTP failures onto the package error taxonomy so
// callers can distinguish a missing workspace from an authorization failure.
func classifyResponseError(err error) error {
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		switch respErr.StatusCode {
		case http.StatusNotFound:
			return ErrWorkspaceNotFound
		case http.StatusUnauthorized, http.StatusForbidden:
			return ErrWorkspaceAccessDenied
		}
	}

	return err
}

// Creates a Log Analytics workspaces client for ARM control plane operations
func (cli *AzureClient) createWorkspacesClient(
	ctx context.Context,
	subscriptionId string,
) (*armoperationalinsights.WorkspacesClient, error) {
	credential, err := cli.credentialProvider.CredentialForSubscription(ctx, subscriptionId)
	if err != nil {
		return nil, err
	}

	workspacesClient, err := armoperationalinsights.NewWorkspacesClient(subscriptionId, credential, cli.armClientOptions)
	if err != nil {
		return nil, fmt.Errorf("creating Workspaces client: %w", err)
	}

	return workspacesClient, nil
}

// Creates a Log Analytics shared keys client for ARM control plane operations
func (cli *AzureClient) createSharedKeysClient(
	ctx context.Context,
	subscriptionId string,
) (*armoperationalinsights.SharedKeysClient, error) {
	credential, err := cli.credentialProvider.CredentialForSubscription(ctx, subscriptionId)
	if err != nil {
		return nil, err
	}

	sharedKeysClient, err := armoperationalinsights.NewSharedKeysClient(subscriptionId, credential, cli.armClientOptions)
	if err != nil {
		return nil, fmt.Errorf("creating SharedKeys client: %w", err)
	}

	return sharedKeysClient, nil
}
