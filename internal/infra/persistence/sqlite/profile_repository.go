package sqlite

import (
	"context"
	"time"

	"profilesync/internal/domain/entity"
	domainerrors "profilesync/internal/domain/errors"
	"profilesync/internal/domain/repository"
	"profilesync/internal/errors"
	"profilesync/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// FindByUserID retrieves a profile and counts its friendships.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	var friends int64
	if err := repo.db.WithContext(ctx).
		Model(&model.FriendshipModel{}).
		Where("user_id = ?", userID).
		Count(&friends).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count friends")
	}

	profile := toProfileDomain(&profileM)
	profile.FriendsCount = int(friends)

	return profile, nil
}

// Create persists a new profile. A missing id is generated.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	if profile.UserID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate profile id")
		}
		profile.UserID = id
	}

	profileM := fromProfileDomain(profile)
	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrProfileAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Update saves every column of an existing profile.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)
	profileM.UpdatedAt = time.Now().UTC()

	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ?", profile.UserID).
		Select("*").
		Omit("user_id", "email", "created_at", "deleted_at").
		Updates(profileM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// AddFriend stores the friendship in both directions; repeating it is a no-op.
func (repo *profileRepository) AddFriend(ctx context.Context, userID, friendID uuid.UUID) error {
	rows := []model.FriendshipModel{
		{UserID: userID, FriendID: friendID},
		{UserID: friendID, FriendID: userID},
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to add friend")
	}

	return nil
}

// RemoveFriend deletes both directions of a friendship.
func (repo *profileRepository) RemoveFriend(ctx context.Context, userID, friendID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)", userID, friendID, friendID, userID).
		Delete(&model.FriendshipModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove friend")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFriendNotFound
	}

	return nil
}

// FindSubscription returns the user's plan state.
func (repo *profileRepository) FindSubscription(ctx context.Context, userID uuid.UUID) (*entity.SubscriptionStatus, error) {
	var subM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&subM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription")
	}

	return &entity.SubscriptionStatus{
		Active:    subM.Active,
		Plan:      subM.Plan,
		ExpiresAt: subM.ExpiresAt,
	}, nil
}

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	var order []entity.LinkField
	if len(data.SocialLinksOrder) > 0 {
		order = entity.ParseLinksOrder(data.SocialLinksOrder)
	}

	var habilities []string
	if len(data.Habilities) > 0 {
		habilities = []string(data.Habilities)
	}

	return &entity.Profile{
		UserID:             data.UserID,
		Name:               data.Name,
		Email:              data.Email,
		Age:                data.Age,
		AboutText:          data.AboutText,
		MomentCareer:       data.MomentCareer,
		Location:           data.Location,
		LocationVisibility: entity.Visibility(data.LocationVisibility),
		ProfileImage:       data.ProfileImage,
		Links: entity.Links{
			LinkedIn:  data.LinkedIn,
			GitHub:    data.GitHub,
			Portfolio: data.Portfolio,
			Instagram: data.Instagram,
			Twitter:   data.Twitter,
		},
		SocialLinksOrder: order,
		Habilities:       habilities,
		UserFocus:        entity.Focus(data.UserFocus),
		EducationLevel:   data.EducationLevel,
		ContestType:      data.ContestType,
		CollegeCourse:    data.CollegeCourse,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	visibility := string(data.LocationVisibility)
	if visibility == "" {
		visibility = string(entity.VisibilityPublic)
	}

	return &model.ProfileModel{
		UserID:             data.UserID,
		Email:              data.Email,
		Name:               data.Name,
		Age:                data.Age,
		AboutText:          data.AboutText,
		MomentCareer:       data.MomentCareer,
		Location:           data.Location,
		LocationVisibility: visibility,
		ProfileImage:       data.ProfileImage,
		LinkedIn:           data.Links.LinkedIn,
		GitHub:             data.Links.GitHub,
		Portfolio:          data.Links.Portfolio,
		Instagram:          data.Links.Instagram,
		Twitter:            data.Links.Twitter,
		SocialLinksOrder:   datatypes.NewJSONSlice(entity.LinksOrderStrings(data.SocialLinksOrder)),
		Habilities:         datatypes.NewJSONSlice(append([]string{}, data.Habilities...)),
		UserFocus:          string(data.UserFocus),
		EducationLevel:     data.EducationLevel,
		ContestType:        data.ContestType,
		CollegeCourse:      data.CollegeCourse,
	}
}
