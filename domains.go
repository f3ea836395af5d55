package graph

import (
	"context"
	"strings"

	pkgerrs "github.com/jamesprial/go-graph-api-wrapper/pkg/errors"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/types"
)

// GetDomain returns a domain by id, or nil if it is unknown.
func (c *Client) GetDomain(ctx context.Context, domainID string) (*types.Domain, error) {
	return fetchOne[types.Domain](ctx, c, "GetDomain", c.build(domainID, "", nil), nil)
}

// GetDomainByName looks a domain up by host name.
func (c *Client) GetDomainByName(ctx context.Context, name string) (*types.Domain, error) {
	return fetchOne[types.Domain](ctx, c, "GetDomainByName", c.build("", "", nil), types.P("domain", name))
}

// GetDomainsByName looks several domains up in one request. Unknown names are
// left out; the rest keep the order of names.
func (c *Client) GetDomainsByName(ctx context.Context, names ...string) ([]types.Domain, error) {
	if len(names) == 0 {
		return nil, pkgerrs.New(pkgerrs.KindEncoding, "GetDomainsByName", "at least one domain name is required", nil)
	}

	byName, err := fetchOne[map[string]types.Domain](ctx, c, "GetDomainsByName", c.build("", "", nil), types.P("domains", strings.Join(names, ",")))
	if err != nil || byName == nil {
		return nil, err
	}

	domains := make([]types.Domain, 0, len(names))
	for _, name := range names {
		if d, ok := (*byName)[name]; ok {
			domains = append(domains, d)
		}
	}
	return domains, nil
}
