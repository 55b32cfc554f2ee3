// Package completion derives the profile-completion summary shown next to a profile.
// Everything here is pure: no I/O, no hidden state.
package completion

import (
	"fmt"
	"math"
	"strings"

	"profilesync/internal/domain/entity"
)

// Badges attached to a notification.
const (
	BadgeComplete    = "complete"
	BadgeAlmostThere = "almost-there"

	almostThereThreshold = 80
)

type rule struct {
	field  entity.Field
	label  string
	weight int
	// applies reports whether the rule counts for this profile at all.
	applies func(entity.Profile) bool
	done    func(entity.Profile) bool
}

func always(entity.Profile) bool { return true }

func filled(s string) bool { return strings.TrimSpace(s) != "" }

// allLinks is the aggregate link check: linkedin, github and portfolio only earn
// their weight together.
func allLinks(p entity.Profile) bool {
	return filled(p.Links.LinkedIn) && filled(p.Links.GitHub) && filled(p.Links.Portfolio)
}

// table is the fixed weight table, in display order.
var table = []rule{
	{entity.FieldName, "nome", 10, always, func(p entity.Profile) bool { return filled(p.Name) }},
	{"email", "email", 10, always, func(p entity.Profile) bool { return filled(p.Email) }},
	{entity.FieldAge, "idade", 10, always, func(p entity.Profile) bool { return p.Age > 0 }},
	{entity.FieldProfileImage, "foto de perfil", 10, always, func(p entity.Profile) bool { return filled(p.ProfileImage) }},
	{entity.FieldLinkedIn, "LinkedIn", 5, always, func(p entity.Profile) bool { return filled(p.Links.LinkedIn) }},
	{entity.FieldGitHub, "GitHub", 5, always, func(p entity.Profile) bool { return filled(p.Links.GitHub) }},
	{entity.FieldPortfolio, "portfólio", 5, always, func(p entity.Profile) bool { return filled(p.Links.Portfolio) }},
	{entity.FieldAboutText, "sobre você", 15, always, func(p entity.Profile) bool { return filled(p.AboutText) }},
	{entity.FieldHabilities, "habilidades", 15, always, func(p entity.Profile) bool { return len(p.Habilities) > 0 }},
	{entity.FieldMomentCareer, "momento de carreira", 10, always, func(p entity.Profile) bool { return filled(p.MomentCareer) }},
	{entity.FieldLocation, "localização", 5, always, func(p entity.Profile) bool { return filled(p.Location) }},
	{entity.FieldUserFocus, "foco", 10, always, func(p entity.Profile) bool { return p.UserFocus != entity.FocusNone }},
	{entity.FieldEducationLevel, "escolaridade", 10, always, func(p entity.Profile) bool { return filled(p.EducationLevel) }},
	{
		entity.FieldContestType, "tipo de concurso", 5,
		func(p entity.Profile) bool { return p.UserFocus == entity.FocusContest },
		func(p entity.Profile) bool { return filled(p.ContestType) },
	},
	{
		entity.FieldCollegeCourse, "curso", 5,
		func(p entity.Profile) bool { return p.UserFocus == entity.FocusCollege },
		func(p entity.Profile) bool { return filled(p.CollegeCourse) },
	},
}

func isLink(f entity.Field) bool {
	return f == entity.FieldLinkedIn || f == entity.FieldGitHub || f == entity.FieldPortfolio
}

// Score returns the earned and total weight of a profile.
func Score(p entity.Profile) (earned, total int) {
	links := allLinks(p)
	for _, r := range table {
		if !r.applies(p) {
			continue
		}
		total += r.weight

		if isLink(r.field) {
			if links {
				earned += r.weight
			}

			continue
		}
		if r.done(p) {
			earned += r.weight
		}
	}

	return earned, total
}

// Estimate computes the completion notification of a profile snapshot.
func Estimate(p entity.Profile) entity.Notification {
	earned, total := Score(p)

	missing := []string{}
	for _, r := range table {
		if r.applies(p) && !r.done(p) {
			missing = append(missing, r.label)
		}
	}

	pct := 0
	if total > 0 {
		pct = int(math.Round(100 * float64(earned) / float64(total)))
	}

	return entity.Notification{
		HasNotification:      len(missing) > 0,
		MissingFields:        missing,
		Message:              message(pct, missing),
		CompletionPercentage: pct,
		Badge:                badge(pct),
	}
}

func message(pct int, missing []string) string {
	switch len(missing) {
	case 0:
		return fmt.Sprintf("%d%% complete", pct)
	case 1:
		return fmt.Sprintf("Complete your profile: add %s.", missing[0])
	default:
		last := len(missing) - 1

		return fmt.Sprintf("Complete your profile: add %s and %s.", strings.Join(missing[:last], ", "), missing[last])
	}
}

func badge(pct int) string {
	switch {
	case pct >= 100:
		return BadgeComplete
	case pct >= almostThereThreshold:
		return BadgeAlmostThere
	}

	return ""
}
