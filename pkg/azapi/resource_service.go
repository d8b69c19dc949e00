package azapi

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/acasquete/content-processing-solution-accelerator/pkg/account"
	"github.com/acasquete/content-processing-solution-accelerator/pkg/convert"
)

type Resource struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Location string `json:"location"`
}

type ResourceService struct {
	credentialProvider account.SubscriptionCredentialProvider
	armClientOptions   *arm.ClientOptions
}

func NewResourceService(
	credentialProvider account.SubscriptionCredentialProvider,
	armClientOptions *arm.ClientOptions,
) *ResourceService {
	return &ResourceService{
		credentialProvider: credentialProvider,
		armClientOptions:   armClientOptions,
	}
}

func (rs *ResourceService) GetResourceGroup(
	ctx context.Context,
	subscriptionId string,
	resourceGroupName string,
) (*Resource, error) {
	client, err := rs.createResourceGroupClient(ctx, subscriptionId)
	if err != nil {
		return nil, err
	}

	group, err := client.Get(ctx, resourceGroupName, nil)
	if err != nil {
		return nil, fmt.Errorf("getting resource group: %w", err)
	}

	return &Resource{
		Id:       convert.ToValueWithDefault(group.ID, ""),
		Name:     convert.ToValueWithDefault(group.Name, ""),
		Type:     convert.ToValueWithDefault(group.Type, ""),
		Location: convert.ToValueWithDefault(group.Location, ""),
	}, nil
}

func (rs *ResourceService) CreateOrUpdateResourceGroup(
	ctx context.Context,
	subscriptionId string,
	resourceGroupName string,
	location string,
	tags map[string]*string,
) error {
	client, err := rs.createResourceGroupClient(ctx, subscriptionId)
	if err != nil {
		return err
	}

	_, err = client.CreateOrUpdate(ctx, resourceGroupName, armresources.ResourceGroup{
		Location: &location,
		Tags:     tags,
	}, nil)

	return err
}

func (rs *ResourceService) createResourceGroupClient(
	ctx context.Context,
	subscriptionId string,
) (*armresources.ResourceGroupsClient, error) {
	credential, err := rs.credentialProvider.CredentialForSubscription(ctx, subscriptionId)
	if err != nil {
		return nil, err
	}

	client, err := armresources.NewResourceGroupsClient(subscriptionId, credential, rs.armClientOptions)
	if err != nil {
		return nil, fmt.Errorf("creating ResourceGroup client: %w", err)
	}

	return client, nil
}
