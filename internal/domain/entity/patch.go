package entity

import "slices"

// Field names a patchable profile attribute. Field names double as the
// sequence-guard keys of in-flight mutations.
type Field string

const (
	FieldName               Field = "name"
	FieldAge                Field = "age"
	FieldAboutText          Field = "aboutYou"
	FieldMomentCareer       Field = "momentCareer"
	FieldLocation           Field = "location"
	FieldLocationVisibility Field = "locationVisibility"
	FieldProfileImage       Field = "profileImage"
	FieldLinkedIn           Field = "linkedin"
	FieldGitHub             Field = "github"
	FieldPortfolio          Field = "portfolio"
	FieldInstagram          Field = "instagram"
	FieldTwitter            Field = "twitter"
	FieldSocialLinksOrder   Field = "socialLinksOrder"
	FieldHabilities         Field = "habilities"
	FieldUserFocus          Field = "userFocus"
	FieldEducationLevel     Field = "educationLevel"
	FieldContestType        Field = "contestType"
	FieldCollegeCourse      Field = "collegeCourse"
	FieldFriendsCount       Field = "friendsCount"
)

// ProfilePatch is a partial profile: nil members are left untouched.
type ProfilePatch struct {
	Name               *string
	Age                *int
	AboutText          *string
	MomentCareer       *string
	Location           *string
	LocationVisibility *Visibility
	ProfileImage       *string
	LinkedIn           *string
	GitHub             *string
	Portfolio          *string
	Instagram          *string
	Twitter            *string
	SocialLinksOrder   []LinkField
	Habilities         *[]string
	UserFocus          *Focus
	EducationLevel     *string
	ContestType        *string
	CollegeCourse      *string
	FriendsCount       *int
}

// Fields lists the attributes the patch sets, in declaration order.
func (p ProfilePatch) Fields() []Field {
	var fields []Field
	add := func(set bool, f Field) {
		if set {
			fields = append(fields, f)
		}
	}
	add(p.Name != nil, FieldName)
	add(p.Age != nil, FieldAge)
	add(p.AboutText != nil, FieldAboutText)
	add(p.MomentCareer != nil, FieldMomentCareer)
	add(p.Location != nil, FieldLocation)
	add(p.LocationVisibility != nil, FieldLocationVisibility)
	add(p.ProfileImage != nil, FieldProfileImage)
	add(p.LinkedIn != nil, FieldLinkedIn)
	add(p.GitHub != nil, FieldGitHub)
	add(p.Portfolio != nil, FieldPortfolio)
	add(p.Instagram != nil, FieldInstagram)
	add(p.Twitter != nil, FieldTwitter)
	add(p.SocialLinksOrder != nil, FieldSocialLinksOrder)
	add(p.Habilities != nil, FieldHabilities)
	add(p.UserFocus != nil, FieldUserFocus)
	add(p.EducationLevel != nil, FieldEducationLevel)
	add(p.ContestType != nil, FieldContestType)
	add(p.CollegeCourse != nil, FieldCollegeCourse)
	add(p.FriendsCount != nil, FieldFriendsCount)

	return fields
}

// IsEmpty reports whether the patch sets nothing.
func (p ProfilePatch) IsEmpty() bool {
	return len(p.Fields()) == 0
}

// ApplyTo merges the patch into profile.
func (p ProfilePatch) ApplyTo(profile *Profile) {
	if p.Name != nil {
		profile.Name = *p.Name
	}
	if p.Age != nil {
		profile.Age = *p.Age
	}
	if p.AboutText != nil {
		profile.AboutText = *p.AboutText
	}
	if p.MomentCareer != nil {
		profile.MomentCareer = *p.MomentCareer
	}
	if p.Location != nil {
		profile.Location = *p.Location
	}
	if p.LocationVisibility != nil {
		profile.LocationVisibility = *p.LocationVisibility
	}
	if p.ProfileImage != nil {
		profile.ProfileImage = *p.ProfileImage
	}
	if p.LinkedIn != nil {
		profile.Links.LinkedIn = *p.LinkedIn
	}
	if p.GitHub != nil {
		profile.Links.GitHub = *p.GitHub
	}
	if p.Portfolio != nil {
		profile.Links.Portfolio = *p.Portfolio
	}
	if p.Instagram != nil {
		profile.Links.Instagram = *p.Instagram
	}
	if p.Twitter != nil {
		profile.Links.Twitter = *p.Twitter
	}
	if p.SocialLinksOrder != nil {
		profile.SocialLinksOrder = slices.Clone(p.SocialLinksOrder)
	}
	if p.Habilities != nil {
		profile.Habilities = slices.Clone(*p.Habilities)
	}
	if p.UserFocus != nil {
		profile.UserFocus = *p.UserFocus
	}
	if p.EducationLevel != nil {
		profile.EducationLevel = *p.EducationLevel
	}
	if p.ContestType != nil {
		profile.ContestType = *p.ContestType
	}
	if p.CollegeCourse != nil {
		profile.CollegeCourse = *p.CollegeCourse
	}
	if p.FriendsCount != nil {
		profile.FriendsCount = *p.FriendsCount
	}
}

// CopyFields copies the listed attributes from src into dst.
func CopyFields(dst *Profile, src Profile, fields []Field) {
	for _, f := range fields {
		switch f {
		case FieldName:
			dst.Name = src.Name
		case FieldAge:
			dst.Age = src.Age
		case FieldAboutText:
			dst.AboutText = src.AboutText
		case FieldMomentCareer:
			dst.MomentCareer = src.MomentCareer
		case FieldLocation:
			dst.Location = src.Location
		case FieldLocationVisibility:
			dst.LocationVisibility = src.LocationVisibility
		case FieldProfileImage:
			dst.ProfileImage = src.ProfileImage
		case FieldLinkedIn:
			dst.Links.LinkedIn = src.Links.LinkedIn
		case FieldGitHub:
			dst.Links.GitHub = src.Links.GitHub
		case FieldPortfolio:
			dst.Links.Portfolio = src.Links.Portfolio
		case FieldInstagram:
			dst.Links.Instagram = src.Links.Instagram
		case FieldTwitter:
			dst.Links.Twitter = src.Links.Twitter
		case FieldSocialLinksOrder:
			dst.SocialLinksOrder = slices.Clone(src.SocialLinksOrder)
		case FieldHabilities:
			dst.Habilities = slices.Clone(src.Habilities)
		case FieldUserFocus:
			dst.UserFocus = src.UserFocus
		case FieldEducationLevel:
			dst.EducationLevel = src.EducationLevel
		case FieldContestType:
			dst.ContestType = src.ContestType
		case FieldCollegeCourse:
			dst.CollegeCourse = src.CollegeCourse
		case FieldFriendsCount:
			dst.FriendsCount = src.FriendsCount
		}
	}
}

// Ptr returns a pointer to v. It keeps patch literals short.
func Ptr[T any](v T) *T {
	return &v
}
