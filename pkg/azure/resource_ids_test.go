package azure

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_WorkspaceRID(t *testing.T) {
	rid := WorkspaceRID("SUBSCRIPTION_ID", "RESOURCE_GROUP", "WORKSPACE_NAME")

	require.Equal(t,
		"/subscriptions/SUBSCRIPTION_ID/resourceGroups/RESOURCE_GROUP/"+
			"providers/Microsoft.OperationalInsights/workspaces/WORKSPACE_NAME",
		rid)
}

func Test_ParseWorkspaceID(t *testing.T) {
	t.Run("Canonical", func(t *testing.T) {
		test := "/subscriptions/AAA/resourceGroups/RG1/providers/" +
			"Microsoft.OperationalInsights/workspaces/LAW1"
		parsed, err := ParseWorkspaceID(test)

		require.NoError(t, err)
		require.Equal(t, "AAA", parsed.SubscriptionId)
		require.Equal(t, "RG1", parsed.ResourceGroupName)
		require.Equal(t, "LAW1", parsed.Name)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		rid := WorkspaceRID("70a036f6-8e4d-4615-bad6-149c02e7720d", "RESOURCE_GROUP", "WORKSPACE_NAME")
		parsed, err := ParseWorkspaceID(rid)

		require.NoError(t, err)
		require.Equal(t, "70a036f6-8e4d-4615-bad6-149c02e7720d", parsed.SubscriptionId)
		require.Equal(t, "RESOURCE_GROUP", parsed.ResourceGroupName)
		require.Equal(t, "WORKSPACE_NAME", parsed.Name)
	})

	t.Run("CaseInsensitiveType", func(t *testing.T) {
		test := "/subscriptions/AAA/resourceGroups/RG1/providers/" +
			"microsoft.operationalinsights/Workspaces/LAW1"
		parsed, err := ParseWorkspaceID(test)

		require.NoError(t, err)
		require.Equal(t, "LAW1", parsed.Name)
	})

	t.Run("TooShort", func(t *testing.T) {
		_, err := ParseWorkspaceID("/too/short")

		require.ErrorIs(t, err, ErrMalformedWorkspaceID)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := ParseWorkspaceID("")

		require.ErrorIs(t, err, ErrMalformedWorkspaceID)
	})

	t.Run("WrongResourceType", func(t *testing.T) {
		test := "/subscriptions/AAA/resourceGroups/RG1/providers/" +
			"Microsoft.Storage/storageAccounts/STORAGE1"
		_, err := ParseWorkspaceID(test)

		require.ErrorIs(t, err, ErrMalformedWorkspaceID)
	})

	t.Run("NestedChildResource", func(t *testing.T) {
		// A child resource under a workspace must not silently bind as the workspace
		// itself.
		test := "/subscriptions/AAA/resourceGroups/RG1/providers/" +
			"Microsoft.OperationalInsights/workspaces/LAW1/tables/TABLE1"
		_, err := ParseWorkspaceID(test)

		require.ErrorIs(t, err, ErrMalformedWorkspaceID)
	})

	t.Run("ResourceGroupOnly", func(t *testing.T) {
		_, err := ParseWorkspaceID("/subscriptions/AAA/resourceGroups/RG1")

		require.ErrorIs(t, err, ErrMalformedWorkspaceID)
	})
}
