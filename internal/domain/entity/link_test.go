package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLinksOrder(t *testing.T) {
	tests := []struct {
		name  string
		order []LinkField
		rule  string
	}{
		{name: "default order", order: DefaultLinksOrder},
		{name: "any permutation", order: []LinkField{LinkTwitter, LinkInstagram, LinkPortfolio, LinkGitHub, LinkLinkedIn}},
		{name: "empty", order: nil, rule: RuleOrderLength},
		{name: "too long", order: append(DefaultLinksOrder[:5:5], LinkGitHub), rule: RuleOrderLength},
		{name: "duplicate", order: []LinkField{LinkGitHub, LinkGitHub, LinkPortfolio, LinkInstagram, LinkTwitter}, rule: RuleOrderDup},
		{name: "unknown", order: []LinkField{"facebook", LinkGitHub, LinkPortfolio, LinkInstagram, LinkTwitter}, rule: RuleOrderUnknown},
		{name: "case matters", order: []LinkField{"LinkedIn", LinkGitHub, LinkPortfolio, LinkInstagram, LinkTwitter}, rule: RuleOrderUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violation := ValidateLinksOrder(tt.order)

			if tt.rule == "" {
				assert.Nil(t, violation)

				return
			}
			require.NotNil(t, violation)
			assert.Equal(t, tt.rule, violation.Rule)
			assert.NotEmpty(t, violation.Detail)
		})
	}
}

func TestMoveLink(t *testing.T) {
	order := []LinkField{LinkLinkedIn, LinkGitHub, LinkPortfolio, LinkInstagram, LinkTwitter}

	moved, ok := MoveLink(order, 4, 0)
	require.True(t, ok)
	assert.Equal(t, []LinkField{LinkTwitter, LinkLinkedIn, LinkGitHub, LinkPortfolio, LinkInstagram}, moved)

	moved, ok = MoveLink(order, 0, 2)
	require.True(t, ok)
	assert.Equal(t, []LinkField{LinkGitHub, LinkPortfolio, LinkLinkedIn, LinkInstagram, LinkTwitter}, moved)
	assert.Nil(t, ValidateLinksOrder(moved))

	same, ok := MoveLink(order, 3, 3)
	require.True(t, ok)
	assert.Equal(t, order, same)

	assert.Equal(t, DefaultLinksOrder, order, "input must not be modified")

	_, ok = MoveLink(order, -1, 2)
	assert.False(t, ok)
	_, ok = MoveLink(order, 0, 5)
	assert.False(t, ok)
}

func TestLinksOrderWireForm(t *testing.T) {
	raw := []string{"github", "twitter"}

	assert.Equal(t, []LinkField{LinkGitHub, LinkTwitter}, ParseLinksOrder(raw))
	assert.Equal(t, raw, LinksOrderStrings(ParseLinksOrder(raw)))
}

func TestLinks_Get(t *testing.T) {
	links := Links{GitHub: "https://github.com/ana", Twitter: "https://x.com/ana"}

	assert.Equal(t, "https://github.com/ana", links.Get(LinkGitHub))
	assert.Equal(t, "https://x.com/ana", links.Get(LinkTwitter))
	assert.Empty(t, links.Get(LinkLinkedIn))
	assert.Equal(t, "GitHub", LinkGitHub.Meta().Label)
	assert.False(t, LinkField("tiktok").Valid())
}
