// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package workspace resolves exactly one Log Analytics workspace slot: either a new
// workspace is provisioned with fixed policy defaults, or an existing workspace
// referenced by its fully-qualified resource id is bound. Both branches project into
// the same three-field result consumed by dependent deployments.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/acasquete/content-processing-solution-accelerator/pkg/azapi"
	"github.com/acasquete/content-processing-solution-accelerator/pkg/azure"
)

// AzureService is the slice of the resource management surface the resolver needs.
// *azapi.AzureClient satisfies it.
type AzureService interface {
	CreateOrUpdateWorkspace(
		ctx context.Context,
		subscriptionId string,
		resourceGroupName string,
		request azapi.WorkspaceCreateRequest,
	) (*azapi.LogAnalyticsWorkspace, error)
	GetWorkspace(
		ctx context.Context,
		subscriptionId string,
		resourceGroupName string,
		workspaceName string,
	) (*azapi.LogAnalyticsWorkspace, error)
	GetWorkspaceSharedKeys(
		ctx context.Context,
		subscriptionId string,
		resourceGroupName string,
		workspaceName string,
	) (*azapi.WorkspaceSharedKeys, error)
	EnableWorkspaceDiagnostics(
		ctx context.Context,
		subscriptionId string,
		workspaceResourceId string,
		settingName string,
	) error
}

var _ AzureService = (*azapi.AzureClient)(nil)

// Config is the caller supplied input for a single resolution.
type Config struct {
	// Name of the workspace to provision. Ignored when ExistingWorkspaceId is set.
	Name string
	// Location of the workspace to provision.
	Location string
	// SubscriptionId of the target scope for a new workspace.
	SubscriptionId string
	// ResourceGroupName of the target scope for a new workspace.
	ResourceGroupName string
	// EnableTelemetry controls the diagnostic self-link on a new workspace.
	// Defaults to true when nil.
	EnableTelemetry *bool
	// Tags are merged over the default tag set on a new workspace.
	Tags map[string]string
	// ExistingWorkspaceId, when non-empty, is the fully-qualified resource id of a
	// workspace to bind instead of provisioning a new one.
	ExistingWorkspaceId string
}

// Result is the projected output record. All three fields are always populated
// (possibly with empty strings), never nil, regardless of which branch produced them.
type Result struct {
	// ResourceId is the management plane resource id of the workspace.
	ResourceId string `json:"resourceId"`
	// WorkspaceId is the customer facing workspace GUID used by data plane consumers.
	WorkspaceId string `json:"workspaceId"`
	// PrimaryKey is the primary shared key. Empty when key retrieval failed.
	PrimaryKey Secret `json:"primaryKey"`
}

type Resolver struct {
	azureClient AzureService
}

func NewResolver(azureClient AzureService) *Resolver {
	return &Resolver{azureClient: azureClient}
}

// Resolve runs a single resolution: the branch is decided once from the existing
// workspace reference, exactly one branch executes, and its outcome is projected into
// the result. A failed handle lookup or malformed reference aborts with no result;
// only shared key retrieval is allowed to degrade.
func (r *Resolver) Resolve(ctx context.Context, cfg Config) (*Result, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if ResolveMode(cfg.ExistingWorkspaceId) == ModeExisting {
		id, err := azure.ParseWorkspaceID(strings.TrimSpace(cfg.ExistingWorkspaceId))
		if err != nil {
			return nil, err
		}

		outcome, err := r.bindExisting(ctx, id)
		if err != nil {
			return nil, err
		}

		return project(ModeExisting, nil, outcome), nil
	}

	outcome, err := r.provisionNew(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return project(ModeNew, outcome, nil), nil
}

func (cfg Config) withDefaults() Config {
	if cfg.EnableTelemetry == nil {
		enabled := true
		cfg.EnableTelemetry = &enabled
	}

	return cfg
}

func (cfg Config) validate() error {
	if ResolveMode(cfg.ExistingWorkspaceId) == ModeExisting {
		return nil
	}

	if strings.TrimSpace(cfg.Name) == "" {
		return errors.New("workspace name is required")
	}

	if cfg.SubscriptionId == "" {
		return fmt.Errorf("subscription id is required to provision workspace %s", cfg.Name)
	}

	if cfg.ResourceGroupName == "" {
		return fmt.Errorf("resource group is required to provision workspace %s", cfg.Name)
	}

	if cfg.Location == "" {
		return fmt.Errorf("location is required to provision workspace %s", cfg.Name)
	}

	return nil
}
