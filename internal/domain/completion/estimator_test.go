package completion

import (
	"testing"

	"profilesync/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeProfile() entity.Profile {
	return entity.Profile{
		Name:         "Ana",
		Email:        "ana@example.com",
		Age:          27,
		ProfileImage: "avatars/ana.png",
		Links: entity.Links{
			LinkedIn:  "https://linkedin.com/in/ana",
			GitHub:    "https://github.com/ana",
			Portfolio: "https://ana.dev",
		},
		AboutText:      "Backend developer",
		Habilities:     []string{"Go"},
		MomentCareer:   "pleno",
		Location:       "Recife",
		UserFocus:      entity.FocusContest,
		EducationLevel: "superior",
		ContestType:    "federal",
	}
}

func TestEstimate_Idempotent(t *testing.T) {
	p := completeProfile()
	p.AboutText = ""

	first := Estimate(p)
	second := Estimate(p)

	assert.Equal(t, first, second)
}

func TestEstimate_EmptyProfileIsZero(t *testing.T) {
	n := Estimate(entity.Profile{})

	assert.Equal(t, 0, n.CompletionPercentage)
	assert.True(t, n.HasNotification)
	assert.Equal(t, []string{
		"nome", "email", "idade", "foto de perfil", "LinkedIn", "GitHub", "portfólio",
		"sobre você", "habilidades", "momento de carreira", "localização", "foco", "escolaridade",
	}, n.MissingFields)
	assert.Empty(t, n.Badge)
}

func TestEstimate_CompleteWithConditionalIsHundred(t *testing.T) {
	n := Estimate(completeProfile())

	assert.Equal(t, 100, n.CompletionPercentage)
	assert.False(t, n.HasNotification)
	assert.Empty(t, n.MissingFields)
	assert.Equal(t, "100% complete", n.Message)
	assert.Equal(t, BadgeComplete, n.Badge)
}

func TestEstimate_CollegeFocusNeedsCourse(t *testing.T) {
	p := completeProfile()
	p.UserFocus = entity.FocusCollege
	p.ContestType = ""

	n := Estimate(p)
	earned, total := Score(p)

	assert.Equal(t, 125, total)
	assert.Equal(t, 120, earned)
	assert.Equal(t, []string{"curso"}, n.MissingFields)
	assert.Equal(t, 96, n.CompletionPercentage)
	assert.Equal(t, "Complete your profile: add curso.", n.Message)
}

func TestEstimate_DenominatorDependsOnFocus(t *testing.T) {
	p := completeProfile()
	p.UserFocus = entity.FocusCareer

	_, total := Score(p)
	assert.Equal(t, 120, total)

	n := Estimate(p)
	assert.Equal(t, 100, n.CompletionPercentage)
}

func TestEstimate_LinksAllOrNothing(t *testing.T) {
	p := completeProfile()
	full, _ := Score(p)

	cases := map[string]func(*entity.Profile){
		"no linkedin":  func(p *entity.Profile) { p.Links.LinkedIn = "" },
		"no github":    func(p *entity.Profile) { p.Links.GitHub = "  " },
		"no portfolio": func(p *entity.Profile) { p.Links.Portfolio = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			partial := completeProfile()
			mutate(&partial)

			earned, _ := Score(partial)
			assert.Equal(t, full-15, earned)
		})
	}
}

func TestEstimate_MessageListsMissingFields(t *testing.T) {
	p := completeProfile()
	p.Name = ""
	p.Habilities = nil
	p.Location = ""

	n := Estimate(p)

	require.Len(t, n.MissingFields, 3)
	assert.Equal(t, "Complete your profile: add nome, habilidades and localização.", n.Message)
	// 125 - 10 - 15 - 5 = 95
	assert.Equal(t, 76, n.CompletionPercentage)
	assert.Empty(t, n.Badge)
}

func TestEstimate_AlmostThereBadge(t *testing.T) {
	p := completeProfile()
	p.AboutText = ""

	n := Estimate(p)

	assert.Equal(t, 88, n.CompletionPercentage)
	assert.Equal(t, BadgeAlmostThere, n.Badge)
}
