package mocks

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/acasquete/content-processing-solution-accelerator/pkg/account"
	"github.com/acasquete/content-processing-solution-accelerator/pkg/azsdk"
	"github.com/acasquete/content-processing-solution-accelerator/test/mocks/mockhttp"
)

type MockContext struct {
	Context            *context.Context
	HttpClient         *mockhttp.MockHttpClient
	CredentialProvider account.SubscriptionCredentialProvider
	ArmClientOptions   *arm.ClientOptions
}

func NewMockContext(ctx context.Context) *MockContext {
	httpClient := mockhttp.NewMockHttpUtil()

	armClientOptions := azsdk.NewClientOptionsBuilder().
		WithTransport(httpClient).
		BuildArmClientOptions()

	mockContext := &MockContext{
		Context:            &ctx,
		HttpClient:         httpClient,
		CredentialProvider: account.NewStaticCredentialProvider(&MockCredentials{}),
		ArmClientOptions:   armClientOptions,
	}

	return mockContext
}
