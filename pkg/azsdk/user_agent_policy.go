package azsdk

import (
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

const userAgentHeaderName = "User-Agent"

// userAgentPolicy prepends the custom user agent to the existing User-Agent header
// set by the SDK pipeline.
type userAgentPolicy struct {
	userAgent string
}

// NewUserAgentPolicy creates a policy that sets the process user agent on every request.
func NewUserAgentPolicy(userAgent string) policy.Policy {
	return &userAgentPolicy{userAgent: userAgent}
}

func (p *userAgentPolicy) Do(req *policy.Request) (*http.Response, error) {
	if p.userAgent != "" {
		rawRequest := req.Raw()
		current := rawRequest.Header.Get(userAgentHeaderName)
		if current == "" {
			rawRequest.Header.Set(userAgentHeaderName, p.userAgent)
		} else {
			rawRequest.Header.Set(userAgentHeaderName, p.userAgent+" "+current)
		}
	}

	return req.Next()
}
