// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cris

import (
	"context"
	"errors"
	"strings"

	"github.com/pdiddy/faucris/pkg/types"
)

// ErrRootOrganization rejects publication queries against (sub-)root level
// organizational units. Their native organization number carries six
// trailing zeros; querying them directly would pull the whole university.
var ErrRootOrganization = errors.New("root and subroot level organization not allowed")

// rootOrgaSuffix is the trailing pattern of fau_org_nr that marks a root or
// subroot unit.
const rootOrgaSuffix = "000000"

// Request templates. Publication retrieval by organization issues both the
// automatic relation and the direct relation; for a given id at most one is
// expected to answer.
var (
	tmplOrganizations = []string{
		"get/Organisation/%d",
	}
	tmplPublicationsByOrga = []string{
		"getautorelated/Organisation/%d/ORGA_2_PUBL_1",
		"getrelated/Organisation/%d/Publ_has_ORGA",
	}
	tmplPublicationsByID = []string{
		"get/Publication/%d",
	}
	tmplPublicationsByPers = []string{
		"getautorelated/Person/%d/PERS_2_PUBL_1",
	}
)

// Organizations fetches organization entities by id(s).
func (c *Client) Organizations(ctx context.Context, ids any) (*types.Collection, error) {
	return c.fetch(ctx, "organization", types.KindOrganization, tmplOrganizations, ids, nil)
}

// PublicationsByOrga fetches the publications related to the given
// organization id(s), optionally restricted by a filter (a
// *selector.Selector or a raw criteria map).
//
// Unless skipRootCheck is set, the organizations are fetched first and the
// call fails with ErrRootOrganization when any resolved organization sits at
// root or subroot level.
func (c *Client) PublicationsByOrga(ctx context.Context, ids any, filter any, skipRootCheck bool) (*types.Collection, error) {
	if !skipRootCheck {
		orgas, err := c.Organizations(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, o := range orgas.Entities() {
			if strings.HasSuffix(o.Get("fau_org_nr"), rootOrgaSuffix) {
				return nil, ErrRootOrganization
			}
		}
	}
	return c.fetch(ctx, "organization", types.KindPublication, tmplPublicationsByOrga, ids, filter)
}

// PublicationsByID fetches publications by their own id(s). A filter is not
// supported here: callers asking for specific ids want exactly those records.
func (c *Client) PublicationsByID(ctx context.Context, ids any) (*types.Collection, error) {
	return c.fetch(ctx, "publication", types.KindPublication, tmplPublicationsByID, ids, nil)
}

// PublicationsByPers fetches the publications related to the given author
// id(s), optionally restricted by a filter.
func (c *Client) PublicationsByPers(ctx context.Context, ids any, filter any) (*types.Collection, error) {
	return c.fetch(ctx, "person", types.KindPublication, tmplPublicationsByPers, ids, filter)
}
