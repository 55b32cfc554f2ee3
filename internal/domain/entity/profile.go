// Package entity contains the core business objects of profilesync.
package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Visibility controls who can see a profile's location.
type Visibility string

const (
	VisibilityPublic    Visibility = "PUBLIC"
	VisibilityStateOnly Visibility = "STATE_ONLY"
	VisibilityPrivate   Visibility = "PRIVATE"
)

// ParseVisibility maps a raw value onto a Visibility. Unknown values return ok=false.
func ParseVisibility(raw string) (Visibility, bool) {
	switch v := Visibility(strings.ToUpper(strings.TrimSpace(raw))); v {
	case VisibilityPublic, VisibilityStateOnly, VisibilityPrivate:
		return v, true
	}

	return "", false
}

// Focus is the study goal a user picked. It decides which conditional field counts
// toward profile completion.
type Focus string

const (
	FocusNone    Focus = ""
	FocusContest Focus = "CONTEST"
	FocusCollege Focus = "COLLEGE"
	FocusCareer  Focus = "CAREER"
)

// Profile is the client-side projection of the user record held by the backend.
type Profile struct {
	UserID             uuid.UUID   `json:"userId"`
	Name               string      `json:"name"`
	Email              string      `json:"email"`
	Age                int         `json:"age,omitempty"`
	AboutText          string      `json:"aboutYou,omitempty"`
	MomentCareer       string      `json:"momentCareer,omitempty"`
	Location           string      `json:"location,omitempty"`
	LocationVisibility Visibility  `json:"locationVisibility,omitempty"`
	ProfileImage       string      `json:"profileImage,omitempty"`
	Links              Links       `json:"links"`
	SocialLinksOrder   []LinkField `json:"socialLinksOrder"`
	Habilities         []string    `json:"habilities"`
	UserFocus          Focus       `json:"userFocus,omitempty"`
	EducationLevel     string      `json:"educationLevel,omitempty"`
	ContestType        string      `json:"contestType,omitempty"`
	CollegeCourse      string      `json:"collegeCourse,omitempty"`
	FriendsCount       int         `json:"friendsCount"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

// Clone returns a deep copy of the profile.
func (p Profile) Clone() Profile {
	cp := p
	cp.SocialLinksOrder = slices.Clone(p.SocialLinksOrder)
	cp.Habilities = slices.Clone(p.Habilities)

	return cp
}

// EffectiveLinksOrder returns the stored order, or the default one when none was saved.
func (p Profile) EffectiveLinksOrder() []LinkField {
	if len(p.SocialLinksOrder) == 0 {
		return slices.Clone(DefaultLinksOrder)
	}

	return slices.Clone(p.SocialLinksOrder)
}

// MaxHabilities is the largest number of skills a profile may list.
const MaxHabilities = 20

// Hability validation rules.
const (
	RuleHabilityEmpty     = "hability_empty"
	RuleHabilityDuplicate = "habilities_duplicate"
	RuleHabilityCapacity  = "habilities_capacity"
)

// HabilitiesViolation names the first rule a skill list breaks.
type HabilitiesViolation struct {
	Rule  string
	Label string
}

// ValidateHabilities checks capacity, blank labels and case-insensitive duplicates.
func ValidateHabilities(list []string) *HabilitiesViolation {
	if len(list) > MaxHabilities {
		return &HabilitiesViolation{Rule: RuleHabilityCapacity}
	}

	seen := make(map[string]struct{}, len(list))
	for _, label := range list {
		key := NormalizeHability(label)
		if key == "" {
			return &HabilitiesViolation{Rule: RuleHabilityEmpty, Label: label}
		}
		if _, dup := seen[key]; dup {
			return &HabilitiesViolation{Rule: RuleHabilityDuplicate, Label: label}
		}
		seen[key] = struct{}{}
	}

	return nil
}

// NormalizeHability is the comparison key used for duplicate detection.
func NormalizeHability(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// ContainsHability reports whether list already holds label, ignoring case.
func ContainsHability(list []string, label string) bool {
	key := NormalizeHability(label)

	return slices.ContainsFunc(list, func(s string) bool { return NormalizeHability(s) == key })
}
