package cms

import (
	"context"
	"net/url"

	"github.com/pkg/errors"

	"github.com/lexcounsel/site-backend/consts"
)

type sectionEndpoint struct {
	path     string
	relation string
	failure  string
}

var sectionEndpoints = map[string]sectionEndpoint{
	consts.SECTION_TEAM:    {path: "team-sections", relation: "teamMembers", failure: "Failed to fetch team sections"},
	consts.SECTION_HERO:    {path: "hero-sections", relation: "heroSection", failure: "Failed to fetch hero sections"},
	consts.SECTION_CLIENTS: {path: "client-sections", relation: "clientData", failure: "Failed to fetch client sections"},
}

func (c *Client) FetchTeamSection(ctx context.Context, locale string) (*TeamSectionResponse, error) {
	var resp TeamSectionResponse
	if err := c.fetchSection(ctx, consts.SECTION_TEAM, locale, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) FetchHeroSection(ctx context.Context, locale string) (*HeroSectionResponse, error) {
	var resp HeroSectionResponse
	if err := c.fetchSection(ctx, consts.SECTION_HERO, locale, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) FetchClientSection(ctx context.Context, locale string) (*ClientSectionResponse, error) {
	var resp ClientSectionResponse
	if err := c.fetchSection(ctx, consts.SECTION_CLIENTS, locale, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FetchSection fetches the raw response of a named section into v.
func (c *Client) FetchSection(ctx context.Context, section, locale string, v interface{}) error {
	return c.fetchSection(ctx, section, locale, v)
}

func (c *Client) fetchSection(ctx context.Context, section, locale string, v interface{}) error {
	ep, ok := sectionEndpoints[section]
	if !ok {
		return errors.Errorf("Unknown section: %s", section)
	}
	if locale == "" {
		locale = consts.LANG_ENGLISH
	}

	params := url.Values{}
	params.Set("populate["+ep.relation+"][populate]", "*")
	params.Set("locale", locale)
	if err := c.get(ctx, ep.path, params, v); err != nil {
		return errors.Wrap(err, ep.failure)
	}
	return nil
}
