package azapi

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

// Api version used for Microsoft.Insights/diagnosticSettings resources.
const diagnosticSettingsApiVersion = "2021-05-01-preview"

// EnableWorkspaceDiagnostics links a workspace's own diagnostics back to itself by
// writing a diagnosticSettings resource scoped to the workspace. The setting is a
// generic ARM resource so it is written through the untyped resources client.
func (cli *AzureClient) EnableWorkspaceDiagnostics(
	ctx context.Context,
	subscriptionId string,
	workspaceResourceId string,
	settingName string,
) error {
	credential, err := cli.credentialProvider.CredentialForSubscription(ctx, subscriptionId)
	if err != nil {
		return err
	}

	resourcesClient, err := armresources.NewClient(subscriptionId, credential, cli.armClientOptions)
	if err != nil {
		return fmt.Errorf("creating Resource client: %w", err)
	}

	settingResourceId := fmt.Sprintf(
		"%s/providers/Microsoft.Insights/diagnosticSettings/%s",
		workspaceResourceId,
		settingName,
	)

	resource := armresources.GenericResource{
		Properties: map[string]any{
			"workspaceId": workspaceResourceId,
			"logs": []any{
				map[string]any{
					"categoryGroup": "audit",
					"enabled":       true,
				},
			},
			"metrics": []any{
				map[string]any{
					"category": "AllMetrics",
					"enabled":  true,
				},
			},
		},
	}

	poller, err := resourcesClient.BeginCreateOrUpdateByID(
		ctx, settingResourceId, diagnosticSettingsApiVersion, resource, nil)
	if err != nil {
		return fmt.Errorf("starting diagnostic settings creation: %w", err)
	}

	_, err = poller.PollUntilDone(ctx, nil)
	if err != nil {
		return fmt.Errorf("creating diagnostic settings: %w", err)
	}

	return nil
}
