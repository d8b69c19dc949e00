// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.
package azapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/operationalinsights/armoperationalinsights/v2"
	"github.com/acasquete/content-processing-solution-accelerator/test/mocks"
	"github.com/stretchr/testify/require"
)

func newAzureClientFromMockContext(mockContext *mocks.MockContext) *AzureClient {
	return NewAzureClient(mockContext.CredentialProvider, mockContext.ArmClientOptions)
}

func Test_GetWorkspace(t *testing.T) {
	t.Run("NoErrors", func(t *testing.T) {
		mockContext := mocks.NewMockContext(context.Background())
		azCli := newAzureClientFromMockContext(mockContext)
		ran := false

		mockContext.HttpClient.When(func(request *http.Request) bool {
			return request.Method == http.MethodGet &&
				strings.Contains(request.URL.Path, "/providers/Microsoft.OperationalInsights/workspaces/LAW1")
		}).RespondFn(func(request *http.Request) (*http.Response, error) {
			ran = true

			response := armoperationalinsights.WorkspacesClientGetResponse{
				Workspace: armoperationalinsights.Workspace{
					ID:       to.Ptr("workspace-id"),
					Name:     to.Ptr("LAW1"),
					Location: to.Ptr("eastus"),
					Properties: &armoperationalinsights.WorkspaceProperties{
						CustomerID: to.Ptr("customer-id"),
					},
				},
			}

			return mocks.CreateHttpResponseWithBody(request, http.StatusOK, response)
		})

		workspace, err := azCli.GetWorkspace(*mockContext.Context, "subID", "RG1", "LAW1")
		require.NoError(t, err)
		require.Equal(t, "workspace-id", workspace.Id)
		require.Equal(t, "LAW1", workspace.Name)
		require.Equal(t, "eastus", workspace.Location)
		require.Equal(t, "customer-id", workspace.CustomerId)
		require.True(t, ran)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockContext := mocks.NewMockContext(context.Background())
		azCli := newAzureClientFromMockContext(mockContext)

		mockContext.HttpClient.When(func(request *http.Request) bool {
			return request.Method == http.MethodGet &&
				strings.Contains(request.URL.Path, "/providers/Microsoft.OperationalInsights/workspaces/LAW1")
		}).RespondFn(func(request *http.Request) (*http.Response, error) {
			return mocks.CreateEmptyHttpResponse(request, http.StatusNotFound)
		})

		workspace, err := azCli.GetWorkspace(*mockContext.Context, "subID", "RG1", "LAW1")
		require.Nil(t, workspace)
		require.ErrorIs(t, err, ErrWorkspaceNotFound)
	})

	t.Run("AccessDenied", func(t *testing.T) {
		mockContext := mocks.NewMockContext(context.Background())
		azCli := newAzureClientFromMockContext(mockContext)

		mockContext.HttpClient.When(func(request *http.Request) bool {
			return request.Method == http.MethodGet &&
				strings.Contains(request.URL.Path, "/providers/Microsoft.OperationalInsights/workspaces/LAW1")
		}).RespondFn(func(request *http.Request) (*http.Response, error) {
			return mocks.CreateEmptyHttpResponse(request, http.StatusForbidden)
		})

		workspace, err := azCli.GetWorkspace(*mockContext.Context, "subID", "RG1", "LAW1")
		require.Nil(t, workspace)
		require.ErrorIs(t, err, ErrWorkspaceAccessDenied)
	})
}

func Test_GetWorkspaceSharedKeys(t *testing.T) {
	t.Run("NoErrors", func(t *testing.T) {
		mockContext := mocks.NewMockContext(context.Background())
		azCli := newAzureClientFromMockContext(mockContext)
		ran := false

		mockContext.HttpClient.When(func(request *http.Request) bool {
			return request.Method == http.MethodPost &&
				strings.HasSuffix(request.URL.Path, "/workspaces/LAW1/sharedKeys")
		}).RespondFn(func(request *http.Request) (*http.Response, error) {
			ran = true

			response := armoperationalinsights.SharedKeysClientGetSharedKeysResponse{
				SharedKeys: armoperationalinsights.SharedKeys{
					PrimarySharedKey: to.Ptr("PRIMARY_KEY"),
				},
			}

			return mocks.CreateHttpResponseWithBody(request, http.StatusOK, response)
		})

		keys, err := azCli.GetWorkspaceSharedKeys(*mockContext.Context, "subID", "RG1", "LAW1")
		require.NoError(t, err)
		require.Equal(t, "PRIMARY_KEY", keys.PrimarySharedKey)
		require.True(t, ran)
	})

	t.Run("EmptyKeys", func(t *testing.T) {
		mockContext := mocks.NewMockContext(context.Background())
		azCli := newAzureClientFromMockContext(mockContext)

		mockContext.HttpClient.When(func(request *http.Request) bool {
			return request.Method == http.MethodPost &&
				strings.HasSuffix(request.URL.Path, "/workspaces/LAW1/sharedKeys")
		}).RespondFn(func(request *http.Request) (*http.Response, error) {
			response := armoperationalinsights.SharedKeysClientGetSharedKeysResponse{}
			return mocks.CreateHttpResponseWithBody(request, http.StatusOK, response)
		})

		keys, err := azCli.GetWorkspaceSharedKeys(*mockContext.Context, "subID", "RG1", "LAW1")
		require.NoError(t, err)
		require.Equal(t, "", keys.PrimarySharedKey)
	})
}

func Test_CreateOrUpdateWorkspace(t *testing.T) {
	t.Run("SendsRequestedPolicy", func(t *testing.T) {
		mockContext := mocks.NewMockContext(context.Background())
		azCli := newAzureClientFromMockContext(mockContext)

		var sent armoperationalinsights.Workspace

		mockContext.HttpClient.When(func(request *http.Request) bool {
			return request.Method == http.MethodPut &&
				strings.HasSuffix(request.URL.Path, "/providers/Microsoft.OperationalInsights/workspaces/LAW1")
		}).RespondFn(func(request *http.Request) (*http.Response, error) {
			body, err := io.ReadAll(request.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &sent))

			response := armoperationalinsights.WorkspacesClientCreateOrUpdateResponse{
				Workspace: armoperationalinsights.Workspace{
					ID:       to.Ptr("workspace-id"),
					Name:     to.Ptr("LAW1"),
					Location: sent.Location,
					Properties: &armoperationalinsights.WorkspaceProperties{
						CustomerID: to.Ptr("customer-id"),
					},
				},
			}

			return mocks.CreateHttpResponseWithBody(request, http.StatusOK, response)
		})

		workspace, err := azCli.CreateOrUpdateWorkspace(*mockContext.Context, "subID", "RG1", WorkspaceCreateRequest{
			Name:            "LAW1",
			Location:        "eastus",
			Sku:             "PerGB2018",
			RetentionInDays: 30,
			Tags:            map[string]string{"azd-env-name": "dev"},
		})

		require.NoError(t, err)
		require.Equal(t, "workspace-id", workspace.Id)
		require.Equal(t, "customer-id", workspace.CustomerId)

		require.Equal(t, "eastus", *sent.Location)
		require.Equal(t, int32(30), *sent.Properties.RetentionInDays)
		require.Equal(t, armoperationalinsights.WorkspaceSKUNameEnumPerGB2018, *sent.Properties.SKU.Name)
		require.Equal(t, "dev", *sent.Tags["azd-env-name"])
	})
}

func Test_EnableWorkspaceDiagnostics(t *testing.T) {
	t.Run("WritesSelfLinkedSetting", func(t *testing.T) {
		mockContext := mocks.NewMockContext(context.Background())
		azCli := newAzureClientFromMockContext(mockContext)

		workspaceId := "/subscriptions/subID/resourceGroups/RG1" +
			"/providers/Microsoft.OperationalInsights/workspaces/LAW1"

		var sent map[string]any

		mockContext.HttpClient.When(func(request *http.Request) bool {
			return request.Method == http.MethodPut &&
				strings.HasSuffix(request.URL.Path,
					workspaceId+"/providers/Microsoft.Insights/diagnosticSettings/workspace-audit")
		}).RespondFn(func(request *http.Request) (*http.Response, error) {
			body, err := io.ReadAll(request.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &sent))

			return mocks.CreateHttpResponseWithBody(request, http.StatusOK, map[string]any{
				"id": workspaceId + "/providers/Microsoft.Insights/diagnosticSettings/workspace-audit",
			})
		})

		err := azCli.EnableWorkspaceDiagnostics(*mockContext.Context, "subID", workspaceId, "workspace-audit")
		require.NoError(t, err)

		properties, ok := sent["properties"].(map[string]any)
		require.True(t, ok)
		require.Equal(t, workspaceId, properties["workspaceId"])
	})
}
