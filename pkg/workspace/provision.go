package workspace

import (
	"context"
	"fmt"
	"log"

	"github.com/acasquete/content-processing-solution-accelerator/pkg/azapi"
	"github.com/acasquete/content-processing-solution-accelerator/pkg/azure"
)

// Fixed policy applied to every provisioned workspace.
const (
	defaultSkuName        = "PerGB2018"
	defaultRetentionDays  = int32(30)
	diagnosticSettingName = "workspace-audit"
)

type provisionOutcome struct {
	workspace  *azapi.LogAnalyticsWorkspace
	primaryKey string
}

// buildCreateRequest assembles the create call for a new workspace. Retention and
// SKU are fixed policy; caller tags are merged over the default tag set and win on
// conflict.
func buildCreateRequest(cfg Config) azapi.WorkspaceCreateRequest {
	tags := map[string]string{
		azure.TagKeyAzdEnvName:     cfg.Name,
		azure.TagKeyAzdServiceName: "monitoring",
	}
	for key, value := range cfg.Tags {
		tags[key] = value
	}

	return azapi.WorkspaceCreateRequest{
		Name:            cfg.Name,
		Location:        cfg.Location,
		Sku:             defaultSkuName,
		RetentionInDays: defaultRetentionDays,
		Tags:            tags,
	}
}

func (r *Resolver) provisionNew(ctx context.Context, cfg Config) (*provisionOutcome, error) {
	request := buildCreateRequest(cfg)

	created, err := r.azureClient.CreateOrUpdateWorkspace(ctx, cfg.SubscriptionId, cfg.ResourceGroupName, request)
	if err != nil {
		return nil, fmt.Errorf("provisioning workspace %s: %w", cfg.Name, err)
	}

	if *cfg.EnableTelemetry {
		err = r.azureClient.EnableWorkspaceDiagnostics(ctx, cfg.SubscriptionId, created.Id, diagnosticSettingName)
		if err != nil {
			return nil, fmt.Errorf("linking workspace diagnostics: %w", err)
		}
	}

	outcome := &provisionOutcome{workspace: created}

	keys, err := r.azureClient.GetWorkspaceSharedKeys(ctx, cfg.SubscriptionId, cfg.ResourceGroupName, request.Name)
	if err != nil {
		// The workspace exists; a failed key listing degrades the key to empty
		// rather than failing the resolution.
		log.Printf("listing shared keys for workspace %s failed: %v", request.Name, err)
		return outcome, nil
	}

	outcome.primaryKey = keys.PrimarySharedKey
	return outcome, nil
}
