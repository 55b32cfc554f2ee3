// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"reflect"
	"slices"
	"strings"
	"sync"

	"profilesync/internal/domain/entity"
	domainerrors "profilesync/internal/domain/errors"
	"profilesync/internal/domain/repository"
	"profilesync/internal/domain/service"
	"profilesync/internal/errors"
	"profilesync/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Validation rules enforced by the sync engine itself.
const (
	ruleEmptyPatch      = "empty_patch"
	ruleLinkIndex       = "links_order_index"
	ruleHabilityMissing = "hability_not_found"
)

// ProfileSyncParams holds dependencies for the sync engine, injected by Fx.
type ProfileSyncParams struct {
	fx.In

	Store    service.ProfileStore
	Cache    repository.ProfileCache
	Logger   *slog.Logger
	Listener usecase.ViewListener `optional:"true"`
}

// profileSyncService implements usecase.ProfileSyncUsecase.
//
// Every mutation gets a sequence number. latest records, per field, the newest
// mutation that touched it; a response only reconciles or rolls back the fields
// it still owns, so an older response can never overwrite a newer edit.
type profileSyncService struct {
	store    service.ProfileStore
	cache    repository.ProfileCache
	logger   *slog.Logger
	listener usecase.ViewListener

	mu      sync.Mutex
	session uint64
	open    bool
	owner   uuid.UUID
	seq     uint64
	latest  map[entity.Field]uint64
	pending map[uint64][]entity.Field
}

// NewProfileSyncService is the constructor for profileSyncService.
func NewProfileSyncService(params ProfileSyncParams) usecase.ProfileSyncUsecase {
	return &profileSyncService{
		store:    params.Store,
		cache:    params.Cache,
		logger:   params.Logger,
		listener: params.Listener,
		latest:   make(map[entity.Field]uint64),
		pending:  make(map[uint64][]entity.Field),
	}
}

// ticket is the bookkeeping of one in-flight mutation.
type ticket struct {
	seq      uint64
	session  uint64
	fields   []entity.Field
	previous entity.Profile
}

// plan computes a mutation from the current snapshot. It runs under the engine
// lock; returning an error aborts before the cache is touched.
type plan func(current entity.Profile) (entity.ProfilePatch, remoteCall, error)

// confirmation is what the server acknowledged: its echo of the whole profile,
// only the fields it stored, or neither.
type confirmation struct {
	profile *entity.Profile
	patch   *entity.ProfilePatch
}

// remoteCall is the remote half of a mutation.
type remoteCall func(ctx context.Context) (confirmation, error)

// echoed adapts a RemoteWrite whose result, if any, is the whole profile.
func echoed(write usecase.RemoteWrite) remoteCall {
	return func(ctx context.Context) (confirmation, error) {
		profile, err := write(ctx)

		return confirmation{profile: profile}, err
	}
}

// Open starts a new session and loads the profile of userID.
func (srv *profileSyncService) Open(ctx context.Context, userID uuid.UUID) (entity.View, error) {
	srv.logger.Info("Opening profile session", "userID", userID)

	srv.mu.Lock()
	srv.session++
	gen := srv.session
	srv.open = false
	srv.owner = userID
	srv.resetLocked()
	srv.mu.Unlock()

	profile, err := srv.store.FetchProfile(ctx, userID)
	if err != nil {
		srv.logger.Error("failed to load profile", "userID", userID, "error", err)

		return entity.View{}, toSyncError(err, nil)
	}

	srv.mu.Lock()
	if gen != srv.session {
		srv.mu.Unlock()

		return entity.View{}, domainerrors.NewSyncError(domainerrors.KindSessionClosed, "", nil)
	}
	loaded := profile.Clone()
	loaded.UserID = userID
	srv.open = true
	view := srv.cache.Replace(loaded)
	srv.mu.Unlock()

	srv.publish(usecase.ViewLoaded, view)

	return view, nil
}

// Close ends the session and discards the cache.
func (srv *profileSyncService) Close() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.session++
	srv.open = false
	srv.owner = uuid.Nil
	srv.resetLocked()
	srv.logger.Debug("profile session closed")
}

func (srv *profileSyncService) resetLocked() {
	srv.cache.Reset()
	srv.latest = make(map[entity.Field]uint64)
	srv.pending = make(map[uint64][]entity.Field)
}

// View returns the current snapshot and notification.
func (srv *profileSyncService) View() entity.View {
	return srv.cache.View()
}

// Mutate applies patch optimistically and waits for write to settle.
func (srv *profileSyncService) Mutate(ctx context.Context, patch entity.ProfilePatch, write usecase.RemoteWrite) error {
	return srv.execute(ctx, fixed(patch, write))
}

// MutateAsync applies patch optimistically and settles write in the background.
func (srv *profileSyncService) MutateAsync(ctx context.Context, patch entity.ProfilePatch, write usecase.RemoteWrite) <-chan error {
	done := make(chan error, 1)

	t, call, err := srv.begin(fixed(patch, write))
	if err != nil {
		done <- err
		close(done)

		return done
	}

	go func() {
		defer close(done)
		done <- srv.settle(ctx, t, call)
	}()

	return done
}

func fixed(patch entity.ProfilePatch, write usecase.RemoteWrite) plan {
	return func(entity.Profile) (entity.ProfilePatch, remoteCall, error) {
		return patch, echoed(write), nil
	}
}

func (srv *profileSyncService) execute(ctx context.Context, p plan) error {
	t, call, err := srv.begin(p)
	if err != nil {
		return err
	}

	return srv.settle(ctx, t, call)
}

// begin validates and applies the optimistic half of a mutation, then publishes
// the optimistic view. Nothing remote happens here.
func (srv *profileSyncService) begin(p plan) (*ticket, remoteCall, error) {
	srv.mu.Lock()

	if !srv.open {
		srv.mu.Unlock()

		return nil, nil, domainerrors.NewSyncError(domainerrors.KindSessionClosed, "", nil)
	}

	current, _ := srv.cache.Get()
	patch, call, err := p(current)
	if err != nil {
		srv.mu.Unlock()

		return nil, nil, err
	}

	fields := patch.Fields()
	if len(fields) == 0 {
		srv.mu.Unlock()

		return nil, nil, domainerrors.NewValidationError(ruleEmptyPatch, "nothing to change")
	}

	srv.seq++
	t := &ticket{seq: srv.seq, session: srv.session, fields: fields}
	for _, f := range fields {
		srv.latest[f] = t.seq
	}
	srv.pending[t.seq] = fields

	var view entity.View
	t.previous, view = srv.cache.Patch(patch)
	srv.mu.Unlock()

	srv.publish(usecase.ViewOptimistic, view)

	return t, call, nil
}

// settle runs the remote write and reconciles its outcome with the cache.
func (srv *profileSyncService) settle(ctx context.Context, t *ticket, call remoteCall) error {
	confirmed, writeErr := call(ctx)

	srv.mu.Lock()

	if t.session != srv.session {
		srv.mu.Unlock()
		srv.logger.Debug("dropping response of a closed session", "seq", t.seq)

		if writeErr != nil {
			return toSyncError(writeErr, t.fields)
		}

		return nil
	}

	delete(srv.pending, t.seq)
	owned := srv.ownedLocked(t)

	if writeErr != nil {
		syncErr := toSyncError(writeErr, t.fields)
		if len(owned) == 0 {
			srv.mu.Unlock()
			srv.logger.Debug("failed mutation already superseded", "seq", t.seq, "error", writeErr)

			return syncErr
		}

		view := srv.cache.Restore(t.previous, owned)
		srv.mu.Unlock()

		srv.logger.Warn("Profile mutation rolled back",
			"fields", owned,
			"kind", syncErr.Kind,
			"error", writeErr,
		)
		srv.publish(usecase.ViewRolledBack, view)

		return syncErr
	}

	if len(owned) == 0 {
		srv.mu.Unlock()

		return nil
	}

	if confirmed.patch != nil {
		return srv.confirmPatchLocked(t, *confirmed.patch)
	}

	result := confirmed.profile
	if result == nil {
		srv.mu.Unlock()

		return nil
	}

	current, _ := srv.cache.Get()
	merged := result.Clone()
	merged.UserID = current.UserID
	entity.CopyFields(&merged, current, srv.protectedLocked(t.seq))

	if reflect.DeepEqual(merged, current) {
		srv.mu.Unlock()

		return nil
	}

	view := srv.cache.Replace(merged)
	srv.mu.Unlock()

	srv.logger.Debug("Profile mutation reconciled", "fields", t.fields, "seq", t.seq)
	srv.publish(usecase.ViewReconciled, view)

	return nil
}

// confirmPatchLocked merges the fields the server stored onto the current
// snapshot. Only fields t still owns are taken. It releases srv.mu.
func (srv *profileSyncService) confirmPatchLocked(t *ticket, patch entity.ProfilePatch) error {
	current, _ := srv.cache.Get()
	source := current.Clone()
	patch.ApplyTo(&source)

	next := current.Clone()
	entity.CopyFields(&next, source, srv.ownedLocked(t))
	if reflect.DeepEqual(next, current) {
		srv.mu.Unlock()

		return nil
	}

	view := srv.cache.Replace(next)
	srv.mu.Unlock()

	srv.logger.Debug("Profile mutation reconciled", "fields", t.fields, "seq", t.seq)
	srv.publish(usecase.ViewReconciled, view)

	return nil
}

// ownedLocked returns the fields of t no newer mutation has touched.
func (srv *profileSyncService) ownedLocked(t *ticket) []entity.Field {
	var owned []entity.Field
	for _, f := range t.fields {
		if srv.latest[f] == t.seq {
			owned = append(owned, f)
		}
	}

	return owned
}

// protectedLocked returns the fields whose local value must survive the echo
// of mutation seq: those written by a newer mutation, or still in flight elsewhere.
func (srv *profileSyncService) protectedLocked(seq uint64) []entity.Field {
	fields := srv.inFlightLocked(seq)
	for f, s := range srv.latest {
		if s > seq && !slices.Contains(fields, f) {
			fields = append(fields, f)
		}
	}

	return fields
}

// inFlightLocked returns the fields of every unsettled mutation except seq.
func (srv *profileSyncService) inFlightLocked(seq uint64) []entity.Field {
	var fields []entity.Field
	for s, inflight := range srv.pending {
		if s == seq {
			continue
		}
		for _, f := range inflight {
			if !slices.Contains(fields, f) {
				fields = append(fields, f)
			}
		}
	}

	return fields
}

func (srv *profileSyncService) publish(change usecase.ViewChange, view entity.View) {
	if srv.listener != nil {
		srv.listener(change, view)
	}
}

// UpdateName updates the display name.
func (srv *profileSyncService) UpdateName(ctx context.Context, name string) error {
	return srv.scalar(ctx, entity.FieldName, entity.ProfilePatch{Name: &name}, name)
}

// UpdateAge updates the age.
func (srv *profileSyncService) UpdateAge(ctx context.Context, age int) error {
	return srv.scalar(ctx, entity.FieldAge, entity.ProfilePatch{Age: &age}, age)
}

// UpdateAbout updates the "about you" text.
func (srv *profileSyncService) UpdateAbout(ctx context.Context, text string) error {
	return srv.scalar(ctx, entity.FieldAboutText, entity.ProfilePatch{AboutText: &text}, text)
}

// UpdateMomentCareer updates the career moment.
func (srv *profileSyncService) UpdateMomentCareer(ctx context.Context, moment string) error {
	return srv.scalar(ctx, entity.FieldMomentCareer, entity.ProfilePatch{MomentCareer: &moment}, moment)
}

// UpdateProfileImage updates the profile image reference.
func (srv *profileSyncService) UpdateProfileImage(ctx context.Context, ref string) error {
	return srv.scalar(ctx, entity.FieldProfileImage, entity.ProfilePatch{ProfileImage: &ref}, ref)
}

func (srv *profileSyncService) scalar(ctx context.Context, field entity.Field, patch entity.ProfilePatch, value any) error {
	return srv.Mutate(ctx, patch, func(ctx context.Context) (*entity.Profile, error) {
		return srv.store.WriteScalar(ctx, field, value)
	})
}

// UpdateLinks updates any subset of the link URLs.
func (srv *profileSyncService) UpdateLinks(ctx context.Context, input service.LinksInput) error {
	patch := entity.ProfilePatch{
		LinkedIn:  input.LinkedIn,
		GitHub:    input.GitHub,
		Portfolio: input.Portfolio,
		Instagram: input.Instagram,
		Twitter:   input.Twitter,
	}

	return srv.Mutate(ctx, patch, func(ctx context.Context) (*entity.Profile, error) {
		return srv.store.WriteLinks(ctx, input)
	})
}

// UpdateLocation updates the location and, when given, its visibility.
func (srv *profileSyncService) UpdateLocation(ctx context.Context, location string, visibility *entity.Visibility) error {
	patch := entity.ProfilePatch{Location: &location, LocationVisibility: visibility}

	return srv.Mutate(ctx, patch, func(ctx context.Context) (*entity.Profile, error) {
		return srv.store.WriteLocation(ctx, location, visibility)
	})
}

// UpdateFocus updates the study focus and its dependent fields.
func (srv *profileSyncService) UpdateFocus(ctx context.Context, input service.FocusInput) error {
	patch := entity.ProfilePatch{
		UserFocus:      &input.UserFocus,
		EducationLevel: input.EducationLevel,
		ContestType:    input.ContestType,
		CollegeCourse:  input.CollegeCourse,
	}

	return srv.Mutate(ctx, patch, func(ctx context.Context) (*entity.Profile, error) {
		return srv.store.WriteFocus(ctx, input)
	})
}

// UpdateLinksOrder replaces the social links order. An order that is not a
// permutation of the five link fields is rejected before the cache or the
// server see it.
func (srv *profileSyncService) UpdateLinksOrder(ctx context.Context, order []entity.LinkField) error {
	if v := entity.ValidateLinksOrder(order); v != nil {
		return domainerrors.NewValidationError(v.Rule, v.Detail, entity.FieldSocialLinksOrder)
	}

	return srv.execute(ctx, srv.orderPlan(slices.Clone(order)))
}

// MoveLink moves the link at index from to index to.
func (srv *profileSyncService) MoveLink(ctx context.Context, from, to int) error {
	return srv.execute(ctx, func(current entity.Profile) (entity.ProfilePatch, remoteCall, error) {
		moved, ok := entity.MoveLink(current.EffectiveLinksOrder(), from, to)
		if !ok {
			return entity.ProfilePatch{}, nil, domainerrors.NewValidationError(
				ruleLinkIndex, "index out of range", entity.FieldSocialLinksOrder)
		}
		if v := entity.ValidateLinksOrder(moved); v != nil {
			return entity.ProfilePatch{}, nil, domainerrors.NewValidationError(v.Rule, v.Detail, entity.FieldSocialLinksOrder)
		}

		return srv.orderPlan(moved)(current)
	})
}

func (srv *profileSyncService) orderPlan(order []entity.LinkField) plan {
	return func(entity.Profile) (entity.ProfilePatch, remoteCall, error) {
		call := func(ctx context.Context) (confirmation, error) {
			stored, err := srv.store.WriteOrder(ctx, order)
			if err != nil || stored == nil {
				return confirmation{}, err
			}

			return confirmation{patch: &entity.ProfilePatch{SocialLinksOrder: stored}}, nil
		}

		return entity.ProfilePatch{SocialLinksOrder: order}, call, nil
	}
}

// AddHability appends a skill label.
func (srv *profileSyncService) AddHability(ctx context.Context, label string) error {
	label = strings.TrimSpace(label)

	return srv.execute(ctx, func(current entity.Profile) (entity.ProfilePatch, remoteCall, error) {
		next := append(slices.Clone(current.Habilities), label)

		return srv.habilitiesPlan(next)
	})
}

// RemoveHability removes a skill label, ignoring case.
func (srv *profileSyncService) RemoveHability(ctx context.Context, label string) error {
	return srv.execute(ctx, func(current entity.Profile) (entity.ProfilePatch, remoteCall, error) {
		if !entity.ContainsHability(current.Habilities, label) {
			return entity.ProfilePatch{}, nil, domainerrors.NewValidationError(
				ruleHabilityMissing, label, entity.FieldHabilities)
		}

		key := entity.NormalizeHability(label)
		next := slices.DeleteFunc(slices.Clone(current.Habilities), func(s string) bool {
			return entity.NormalizeHability(s) == key
		})

		return srv.habilitiesPlan(next)
	})
}

// SetHabilities replaces the whole skill list.
func (srv *profileSyncService) SetHabilities(ctx context.Context, labels []string) error {
	next := make([]string, len(labels))
	for i, l := range labels {
		next[i] = strings.TrimSpace(l)
	}

	return srv.execute(ctx, func(entity.Profile) (entity.ProfilePatch, remoteCall, error) {
		return srv.habilitiesPlan(next)
	})
}

func (srv *profileSyncService) habilitiesPlan(next []string) (entity.ProfilePatch, remoteCall, error) {
	if v := entity.ValidateHabilities(next); v != nil {
		return entity.ProfilePatch{}, nil, domainerrors.NewValidationError(v.Rule, v.Label, entity.FieldHabilities)
	}

	write := func(ctx context.Context) (*entity.Profile, error) {
		values := next
		if len(values) == 0 {
			values = nil
		}

		return srv.store.WriteSet(ctx, entity.FieldHabilities, values)
	}

	return entity.ProfilePatch{Habilities: &next}, echoed(write), nil
}

// HandleExternalEvent applies a realtime event to the open session.
func (srv *profileSyncService) HandleExternalEvent(ctx context.Context, event entity.ExternalEvent) error {
	if event.UserID != srv.cache.Owner() {
		srv.logger.Debug("ignoring event for another user", "kind", event.Kind, "userID", event.UserID)

		return nil
	}

	switch event.Kind {
	case entity.EventFriendAccepted, entity.EventFriendRemoved:
		if event.Payload.FriendsCount != nil {
			return srv.applyLocal(entity.ProfilePatch{FriendsCount: event.Payload.FriendsCount})
		}

		return srv.refresh(ctx)
	case entity.EventProfileUpdated:
		return srv.refresh(ctx)
	}

	srv.logger.Warn("unknown external event", "kind", event.Kind, "id", event.ID)

	return nil
}

// applyLocal patches server-confirmed values that need no remote write.
func (srv *profileSyncService) applyLocal(patch entity.ProfilePatch) error {
	srv.mu.Lock()
	if !srv.open {
		srv.mu.Unlock()

		return nil
	}
	_, view := srv.cache.Patch(patch)
	srv.mu.Unlock()

	srv.publish(usecase.ViewRefreshed, view)

	return nil
}

// refresh refetches the profile, keeping the local value of fields with a
// mutation still in flight.
func (srv *profileSyncService) refresh(ctx context.Context) error {
	srv.mu.Lock()
	gen, owner, open := srv.session, srv.owner, srv.open
	srv.mu.Unlock()

	if !open {
		return nil
	}

	profile, err := srv.store.FetchProfile(ctx, owner)
	if err != nil {
		return toSyncError(err, nil)
	}

	srv.mu.Lock()
	if gen != srv.session {
		srv.mu.Unlock()

		return nil
	}

	current, _ := srv.cache.Get()
	merged := profile.Clone()
	merged.UserID = owner
	entity.CopyFields(&merged, current, srv.inFlightLocked(0))
	view := srv.cache.Replace(merged)
	srv.mu.Unlock()

	srv.publish(usecase.ViewRefreshed, view)

	return nil
}

// SubscriptionStatus reads the plan state. A user without a subscription gets an
// inactive status and no error.
func (srv *profileSyncService) SubscriptionStatus(ctx context.Context) (entity.SubscriptionStatus, error) {
	status, err := srv.store.SubscriptionStatus(ctx)
	if err != nil {
		if domainerrors.KindOf(err) == domainerrors.KindNotFound {
			srv.logger.Debug("no subscription for user")

			return entity.SubscriptionStatus{}, nil
		}

		return entity.SubscriptionStatus{}, toSyncError(err, nil)
	}

	return *status, nil
}

// toSyncError normalizes any failure into a *SyncError bound to fields.
func toSyncError(err error, fields []entity.Field) *domainerrors.SyncError {
	var syncErr *domainerrors.SyncError
	if errors.As(err, &syncErr) {
		if fields == nil {
			return syncErr
		}

		return syncErr.WithFields(fields...)
	}

	return domainerrors.NewSyncError(domainerrors.KindNetwork, "", err).WithFields(fields...)
}
