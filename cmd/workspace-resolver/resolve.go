// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/acasquete/content-processing-solution-accelerator/pkg/account"
	"github.com/acasquete/content-processing-solution-accelerator/pkg/azapi"
	"github.com/acasquete/content-processing-solution-accelerator/pkg/azsdk"
	"github.com/acasquete/content-processing-solution-accelerator/pkg/output"
	"github.com/acasquete/content-processing-solution-accelerator/pkg/workspace"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const userAgent = "content-processing/workspace-resolver"

type resolveFlags struct {
	name                string
	location            string
	subscription        string
	resourceGroup       string
	existingWorkspaceId string
	tags                []string
	enableTelemetry     bool
	envFile             string
	outputFormat        string
	revealKey           bool
}

func (f *resolveFlags) Bind(local *pflag.FlagSet) {
	local.StringVar(&f.name, "name", os.Getenv("LOG_ANALYTICS_WORKSPACE_NAME"),
		"Name of the workspace to provision.")
	local.StringVar(&f.location, "location", os.Getenv("AZURE_LOCATION"),
		"Azure location for a new workspace. Defaults to the resource group location.")
	local.StringVar(&f.subscription, "subscription", os.Getenv("AZURE_SUBSCRIPTION_ID"),
		"Azure subscription id.")
	local.StringVar(&f.resourceGroup, "resource-group", os.Getenv("AZURE_RESOURCE_GROUP"),
		"Resource group for a new workspace. Created when it does not exist.")
	local.StringVar(&f.existingWorkspaceId, "existing-workspace-id",
		os.Getenv("EXISTING_LOG_ANALYTICS_WORKSPACE_ID"),
		"Fully-qualified resource id of an existing workspace to bind instead of provisioning.")
	local.StringArrayVar(&f.tags, "tag", nil,
		"Tag to apply to a new workspace, in key=value form. May be repeated.")
	local.BoolVar(&f.enableTelemetry, "enable-telemetry", true,
		"Link the workspace's own diagnostics back to itself.")
	local.StringVar(&f.envFile, "env-file", "",
		"Load environment values from the given dotenv file before resolving flags.")
	local.StringVar(&f.outputFormat, "output", string(output.JsonFormat),
		"Output format: json, dotenv or none.")
	local.BoolVar(&f.revealKey, "reveal-key", false,
		"Unmask the workspace primary shared key in output.")
}

func newResolveCmd() *cobra.Command {
	flags := &resolveFlags{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Provision a new Log Analytics workspace or bind to an existing one by resource id.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd.Context(), flags, cmd.Flags(), cmd.OutOrStdout())
		},
	}

	flags.Bind(cmd.Flags())

	return cmd
}

func runResolve(ctx context.Context, flags *resolveFlags, local *pflag.FlagSet, writer io.Writer) error {
	if err := flags.loadEnvFile(local); err != nil {
		return err
	}

	tags, err := parseTags(flags.tags)
	if err != nil {
		return err
	}

	formatter, err := output.NewFormatter(flags.outputFormat)
	if err != nil {
		return err
	}

	credential, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return fmt.Errorf("creating azure credential: %w", err)
	}

	credentialProvider := account.NewStaticCredentialProvider(credential)
	armClientOptions := azsdk.NewClientOptionsBuilder().
		WithPolicy(azsdk.NewUserAgentPolicy(userAgent)).
		WithPolicy(azsdk.NewMsCorrelationPolicy(ctx)).
		BuildArmClientOptions()

	azureClient := azapi.NewAzureClient(credentialProvider, armClientOptions)
	resourceService := azapi.NewResourceService(credentialProvider, armClientOptions)

	cfg := workspace.Config{
		Name:                flags.name,
		Location:            flags.location,
		SubscriptionId:      flags.subscription,
		ResourceGroupName:   flags.resourceGroup,
		EnableTelemetry:     &flags.enableTelemetry,
		Tags:                tags,
		ExistingWorkspaceId: flags.existingWorkspaceId,
	}

	if workspace.ResolveMode(cfg.ExistingWorkspaceId) == workspace.ModeNew {
		cfg, err = ensureResourceGroup(ctx, resourceService, cfg)
		if err != nil {
			return err
		}
	}

	result, err := workspace.NewResolver(azureClient).Resolve(ctx, cfg)
	if err != nil {
		return err
	}

	return formatResult(formatter, writer, result, flags.revealKey)
}

// loadEnvFile loads the dotenv file into the process environment and re-reads the
// environment for flags not set on the command line. Flag defaults capture the
// environment when the command is constructed, before the file has been loaded, so
// the re-read is what makes file values reachable. Explicit flags win over the file.
func (f *resolveFlags) loadEnvFile(local *pflag.FlagSet) error {
	if f.envFile == "" {
		return nil
	}

	if err := godotenv.Overload(f.envFile); err != nil {
		return fmt.Errorf("loading env file %s: %w", f.envFile, err)
	}

	setFromEnv := func(name string, envName string, target *string) {
		if local.Changed(name) {
			return
		}

		if value, ok := os.LookupEnv(envName); ok {
			*target = value
		}
	}

	setFromEnv("name", "LOG_ANALYTICS_WORKSPACE_NAME", &f.name)
	setFromEnv("location", "AZURE_LOCATION", &f.location)
	setFromEnv("subscription", "AZURE_SUBSCRIPTION_ID", &f.subscription)
	setFromEnv("resource-group", "AZURE_RESOURCE_GROUP", &f.resourceGroup)
	setFromEnv("existing-workspace-id", "EXISTING_LOG_ANALYTICS_WORKSPACE_ID", &f.existingWorkspaceId)

	return nil
}

// ensureResourceGroup resolves the target resource group before provisioning: an
// existing group supplies the default location, a missing one is created (which
// requires an explicit location).
func ensureResourceGroup(
	ctx context.Context,
	resourceService *azapi.ResourceService,
	cfg workspace.Config,
) (workspace.Config, error) {
	if cfg.SubscriptionId == "" || cfg.ResourceGroupName == "" {
		// Let the resolver report the validation error.
		return cfg, nil
	}

	group, err := resourceService.GetResourceGroup(ctx, cfg.SubscriptionId, cfg.ResourceGroupName)
	if err == nil {
		if cfg.Location == "" {
			cfg.Location = group.Location
		}
		return cfg, nil
	}

	log.Printf("resource group %s not resolved: %v", cfg.ResourceGroupName, err)

	if cfg.Location == "" {
		return cfg, fmt.Errorf(
			"resource group %s does not exist and no location was provided to create it", cfg.ResourceGroupName)
	}

	err = resourceService.CreateOrUpdateResourceGroup(ctx, cfg.SubscriptionId, cfg.ResourceGroupName, cfg.Location, nil)
	if err != nil {
		return cfg, fmt.Errorf("creating resource group %s: %w", cfg.ResourceGroupName, err)
	}

	return cfg, nil
}

func formatResult(formatter output.Formatter, writer io.Writer, result *workspace.Result, revealKey bool) error {
	primaryKey := result.PrimaryKey.String()
	if revealKey {
		primaryKey = result.PrimaryKey.Reveal()
	}

	if formatter.Kind() == output.EnvVarsFormat {
		return formatter.Format(map[string]string{
			"LOG_ANALYTICS_WORKSPACE_RESOURCE_ID": result.ResourceId,
			"LOG_ANALYTICS_WORKSPACE_ID":          result.WorkspaceId,
			"LOG_ANALYTICS_WORKSPACE_PRIMARY_KEY": primaryKey,
		}, writer, nil)
	}

	if revealKey {
		return formatter.Format(struct {
			ResourceId  string `json:"resourceId"`
			WorkspaceId string `json:"workspaceId"`
			PrimaryKey  string `json:"primaryKey"`
		}{
			ResourceId:  result.ResourceId,
			WorkspaceId: result.WorkspaceId,
			PrimaryKey:  primaryKey,
		}, writer, nil)
	}

	return formatter.Format(result, writer, nil)
}

func parseTags(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	tags := map[string]string{}
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid tag %q, expected key=value", pair)
		}
		tags[key] = value
	}

	return tags, nil
}
