package workspace

import (
	"context"
	"fmt"
	"log"

	"github.com/acasquete/content-processing-solution-accelerator/pkg/azapi"
	"github.com/acasquete/content-processing-solution-accelerator/pkg/azure"
)

type bindOutcome struct {
	workspace  *azapi.LogAnalyticsWorkspace
	primaryKey string
}

// bindExisting resolves a handle to the referenced workspace and then fetches its
// shared keys. A handle failure aborts the resolution; a key listing failure only
// degrades the key to empty.
func (r *Resolver) bindExisting(ctx context.Context, id azure.WorkspaceID) (*bindOutcome, error) {
	existing, err := r.azureClient.GetWorkspace(ctx, id.SubscriptionId, id.ResourceGroupName, id.Name)
	if err != nil {
		return nil, fmt.Errorf("binding workspace %s: %w", id.Name, err)
	}

	outcome := &bindOutcome{workspace: existing}

	keys, err := r.azureClient.GetWorkspaceSharedKeys(ctx, id.SubscriptionId, id.ResourceGroupName, id.Name)
	if err != nil {
		log.Printf("listing shared keys for workspace %s failed: %v", id.Name, err)
		return outcome, nil
	}

	outcome.primaryKey = keys.PrimarySharedKey
	return outcome, nil
}
