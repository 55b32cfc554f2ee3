package entity

import (
	"fmt"
	"slices"
)

// LinkField identifies one of the social links a profile can carry.
type LinkField string

const (
	LinkLinkedIn  LinkField = "linkedin"
	LinkGitHub    LinkField = "github"
	LinkPortfolio LinkField = "portfolio"
	LinkInstagram LinkField = "instagram"
	LinkTwitter   LinkField = "twitter"
)

// LinksOrderSize is the exact length every social links order must have.
const LinksOrderSize = 5

// DefaultLinksOrder is the order assigned to profiles that never reordered their links.
var DefaultLinksOrder = []LinkField{LinkLinkedIn, LinkGitHub, LinkPortfolio, LinkInstagram, LinkTwitter}

// LinkMeta is the static display metadata of a link field.
type LinkMeta struct {
	Label string
	Icon  string
}

var linkMeta = map[LinkField]LinkMeta{
	LinkLinkedIn:  {Label: "LinkedIn", Icon: "linkedin"},
	LinkGitHub:    {Label: "GitHub", Icon: "github"},
	LinkPortfolio: {Label: "portfólio", Icon: "globe"},
	LinkInstagram: {Label: "Instagram", Icon: "instagram"},
	LinkTwitter:   {Label: "Twitter", Icon: "twitter"},
}

// Meta returns the display metadata for the link field.
func (f LinkField) Meta() LinkMeta {
	return linkMeta[f]
}

// Valid reports whether f is one of the five known link identifiers.
func (f LinkField) Valid() bool {
	_, ok := linkMeta[f]

	return ok
}

// Links holds the optional URL of every social link.
type Links struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
}

// Get returns the URL stored for the given link field.
func (l Links) Get(f LinkField) string {
	switch f {
	case LinkLinkedIn:
		return l.LinkedIn
	case LinkGitHub:
		return l.GitHub
	case LinkPortfolio:
		return l.Portfolio
	case LinkInstagram:
		return l.Instagram
	case LinkTwitter:
		return l.Twitter
	}

	return ""
}

// LinksOrderViolation names the first rule a links order breaks.
type LinksOrderViolation struct {
	Rule   string
	Detail string
}

// Order validation rules.
const (
	RuleOrderLength  = "links_order_length"
	RuleOrderDup     = "links_order_duplicate"
	RuleOrderUnknown = "links_order_unknown_field"
)

// ValidateLinksOrder checks that order holds exactly the five link identifiers once each.
// It returns nil when the order is acceptable.
func ValidateLinksOrder(order []LinkField) *LinksOrderViolation {
	if len(order) != LinksOrderSize {
		return &LinksOrderViolation{
			Rule:   RuleOrderLength,
			Detail: fmt.Sprintf("expected %d entries, got %d", LinksOrderSize, len(order)),
		}
	}

	seen := make(map[LinkField]struct{}, LinksOrderSize)
	for _, f := range order {
		if !f.Valid() {
			return &LinksOrderViolation{Rule: RuleOrderUnknown, Detail: fmt.Sprintf("unknown link field %q", f)}
		}
		if _, dup := seen[f]; dup {
			return &LinksOrderViolation{Rule: RuleOrderDup, Detail: fmt.Sprintf("link field %q appears twice", f)}
		}
		seen[f] = struct{}{}
	}

	return nil
}

// MoveLink returns a new order with the entry at index from moved to index to,
// shifting the entries in between. Out-of-range indexes return ok=false.
func MoveLink(order []LinkField, from, to int) ([]LinkField, bool) {
	if from < 0 || from >= len(order) || to < 0 || to >= len(order) {
		return nil, false
	}

	moved := slices.Clone(order)
	item := moved[from]
	moved = slices.Delete(moved, from, from+1)
	moved = slices.Insert(moved, to, item)

	return moved, true
}

// ParseLinksOrder converts raw identifiers into link fields without validating them.
func ParseLinksOrder(raw []string) []LinkField {
	order := make([]LinkField, len(raw))
	for i, r := range raw {
		order[i] = LinkField(r)
	}

	return order
}

// LinksOrderStrings is the wire form of an order.
func LinksOrderStrings(order []LinkField) []string {
	out := make([]string, len(order))
	for i, f := range order {
		out[i] = string(f)
	}

	return out
}
