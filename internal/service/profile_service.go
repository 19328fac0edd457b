package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/memberportal/internal/auth"
	"github.com/mmynk/memberportal/internal/metrics"
	"github.com/mmynk/memberportal/internal/middleware"
	"github.com/mmynk/memberportal/internal/profile"
	"github.com/mmynk/memberportal/internal/validation"
	"github.com/mmynk/memberportal/pkg/api"
)

// Sections used as metrics labels.
const (
	sectionContact   = "contact"
	sectionPayment   = "payment"
	sectionAddress   = "address"
	sectionHealth    = "health"
	sectionDependent = "dependent"
)

// ProfileService implements the ProfileService RPC interface.
// Every call works on the authenticated member's open profile.
type ProfileService struct {
	profiles *profile.Registry
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(profiles *profile.Registry, m *metrics.Metrics, logger *slog.Logger) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		metrics:  m,
		logger:   logger,
	}
}

// GetProfile returns the committed profile, the active tab and completion progress.
func (s *ProfileService) GetProfile(ctx context.Context, req *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error) {
	var view api.ProfileView
	err := s.with(ctx, func(a *profile.Aggregate) error {
		view = profileView(a)
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, "GetProfile", err)
	}
	return connect.NewResponse(&api.GetProfileResponse{View: view}), nil
}

// SelectTab switches the active tab, discarding drafts of the previous one.
func (s *ProfileService) SelectTab(ctx context.Context, req *connect.Request[api.SelectTabRequest]) (*connect.Response[api.SelectTabResponse], error) {
	var view api.ProfileView
	err := s.with(ctx, func(a *profile.Aggregate) error {
		if err := a.SelectTab(profile.Tab(req.Msg.Tab)); err != nil {
			return err
		}
		view = profileView(a)
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, "SelectTab", err)
	}
	return connect.NewResponse(&api.SelectTabResponse{View: view}), nil
}

// BeginContactEdit enters contact edit mode.
func (s *ProfileService) BeginContactEdit(ctx context.Context, req *connect.Request[api.BeginContactEditRequest]) (*connect.Response[api.ContactEditResponse], error) {
	return s.contact(ctx, "BeginContactEdit", func(e *profile.ContactEditor) error {
		e.Begin()
		return nil
	})
}

// UpdateContactDraft changes one field of the contact draft.
func (s *ProfileService) UpdateContactDraft(ctx context.Context, req *connect.Request[api.UpdateContactDraftRequest]) (*connect.Response[api.ContactEditResponse], error) {
	return s.contact(ctx, "UpdateContactDraft", func(e *profile.ContactEditor) error {
		return e.Set(req.Msg.Field, req.Msg.Value)
	})
}

// VerifyMobile checks the mobile number format and marks it verified.
func (s *ProfileService) VerifyMobile(ctx context.Context, req *connect.Request[api.VerifyMobileRequest]) (*connect.Response[api.ContactEditResponse], error) {
	return s.contact(ctx, "VerifyMobile", func(e *profile.ContactEditor) error {
		return e.VerifyMobile()
	})
}

// SaveContact validates and commits the contact draft.
// On a validation error the draft stays open for correction.
func (s *ProfileService) SaveContact(ctx context.Context, req *connect.Request[api.SaveContactRequest]) (*connect.Response[api.ContactEditResponse], error) {
	return s.contact(ctx, "SaveContact", func(e *profile.ContactEditor) error {
		if _, err := e.Save(); err != nil {
			return err
		}
		s.metrics.IncrementProfileMutation(sectionContact, "save")
		return nil
	})
}

// CancelContactEdit leaves edit mode, restoring the committed values.
func (s *ProfileService) CancelContactEdit(ctx context.Context, req *connect.Request[api.CancelContactEditRequest]) (*connect.Response[api.ContactEditResponse], error) {
	return s.contact(ctx, "CancelContactEdit", func(e *profile.ContactEditor) error {
		e.Cancel()
		return nil
	})
}

// SaveAddress adds the address when it has no id, otherwise replaces the entry with that id.
func (s *ProfileService) SaveAddress(ctx context.Context, req *connect.Request[api.SaveAddressRequest]) (*connect.Response[api.AddressesResponse], error) {
	resp := &api.AddressesResponse{}
	err := s.with(ctx, func(a *profile.Aggregate) error {
		e := a.Addresses()
		saved, op, err := saveEntry(e, req.Msg.Address, req.Msg.Address.ID)
		if err != nil {
			return err
		}
		s.metrics.IncrementProfileMutation(sectionAddress, op)
		resp.Addresses, resp.Saved, resp.CanAdd = e.Items(), &saved, e.CanAdd()
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, "SaveAddress", err)
	}
	return connect.NewResponse(resp), nil
}

// DeleteAddress removes the address with the given id.
func (s *ProfileService) DeleteAddress(ctx context.Context, req *connect.Request[api.DeleteAddressRequest]) (*connect.Response[api.AddressesResponse], error) {
	resp := &api.AddressesResponse{}
	err := s.with(ctx, func(a *profile.Aggregate) error {
		e := a.Addresses()
		if err := e.Delete(req.Msg.ID); err != nil {
			return err
		}
		s.metrics.IncrementProfileMutation(sectionAddress, "delete")
		resp.Addresses, resp.CanAdd = e.Items(), e.CanAdd()
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, "DeleteAddress", err)
	}
	return connect.NewResponse(resp), nil
}

// SavePaymentMethod adds or replaces a payment method. Typed expiry input is normalized
// to MM/YY and fields that don't apply to the payment type are cleared.
func (s *ProfileService) SavePaymentMethod(ctx context.Context, req *connect.Request[api.SavePaymentMethodRequest]) (*connect.Response[api.PaymentMethodsResponse], error) {
	resp := &api.PaymentMethodsResponse{}
	err := s.with(ctx, func(a *profile.Aggregate) error {
		pm := req.Msg.PaymentMethod
		if pm.IsCard() && pm.ExpiryDate != "" {
			pm.ExpiryDate = validation.FormatExpiry(pm.ExpiryDate)
		}
		e := a.PaymentMethods()
		saved, op, err := saveEntry(e, pm, pm.ID)
		if err != nil {
			return err
		}
		s.metrics.IncrementProfileMutation(sectionPayment, op)
		resp.PaymentMethods, resp.Saved, resp.CanAdd = e.Items(), &saved, e.CanAdd()
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, "SavePaymentMethod", err)
	}
	return connect.NewResponse(resp), nil
}

// DeletePaymentMethod removes the payment method with the given id.
func (s *ProfileService) DeletePaymentMethod(ctx context.Context, req *connect.Request[api.DeletePaymentMethodRequest]) (*connect.Response[api.PaymentMethodsResponse], error) {
	resp := &api.PaymentMethodsResponse{}
	err := s.with(ctx, func(a *profile.Aggregate) error {
		e := a.PaymentMethods()
		if err := e.Delete(req.Msg.ID); err != nil {
			return err
		}
		s.metrics.IncrementProfileMutation(sectionPayment, "delete")
		resp.PaymentMethods, resp.CanAdd = e.Items(), e.CanAdd()
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, "DeletePaymentMethod", err)
	}
	return connect.NewResponse(resp), nil
}

// SaveDependent adds or replaces a dependent. New dependents never start as the
// emergency contact; use SetEmergencyContact.
func (s *ProfileService) SaveDependent(ctx context.Context, req *connect.Request[api.SaveDependentRequest]) (*connect.Response[api.DependentsResponse], error) {
	resp := &api.DependentsResponse{}
	err := s.with(ctx, func(a *profile.Aggregate) error {
		e := a.Dependents()
		saved, op, err := saveEntry(e.ListEditor, req.Msg.Dependent, req.Msg.Dependent.ID)
		if err != nil {
			return err
		}
		s.metrics.IncrementProfileMutation(sectionDependent, op)
		resp.Dependents, resp.Saved, resp.CanAdd = e.Items(), &saved, e.CanAdd()
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, "SaveDependent", err)
	}
	return connect.NewResponse(resp), nil
}

// DeleteDependent removes the dependent with the given id.
func (s *ProfileService) DeleteDependent(ctx context.Context, req *connect.Request[api.DeleteDependentRequest]) (*connect.Response[api.DependentsResponse], error) {
	resp := &api.DependentsResponse{}
	err := s.with(ctx, func(a *profile.Aggregate) error {
		e := a.Dependents()
		if err := e.Delete(req.Msg.ID); err != nil {
			return err
		}
		s.metrics.IncrementProfileMutation(sectionDependent, "delete")
		resp.Dependents, resp.CanAdd = e.Items(), e.CanAdd()
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, "DeleteDependent", err)
	}
	return connect.NewResponse(resp), nil
}

// SetEmergencyContact flags the dependent with the given id and clears everyone else.
func (s *ProfileService) SetEmergencyContact(ctx context.Context, req *connect.Request[api.SetEmergencyContactRequest]) (*connect.Response[api.DependentsResponse], error) {
	resp := &api.DependentsResponse{}
	err := s.with(ctx, func(a *profile.Aggregate) error {
		e := a.Dependents()
		if err := e.SetEmergencyContact(req.Msg.ID); err != nil {
			return err
		}
		s.metrics.IncrementProfileMutation(sectionDependent, "emergency")
		resp.Dependents, resp.CanAdd = e.Items(), e.CanAdd()
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, "SetEmergencyContact", err)
	}
	return connect.NewResponse(resp), nil
}

// GetEmergencyContact returns the flagged dependent, if any. It does not change the active tab.
func (s *ProfileService) GetEmergencyContact(ctx context.Context, req *connect.Request[api.GetEmergencyContactRequest]) (*connect.Response[api.GetEmergencyContactResponse], error) {
	resp := &api.GetEmergencyContactResponse{}
	err := s.with(ctx, func(a *profile.Aggregate) error {
		if d, ok := a.EmergencyContact(); ok {
			resp.Dependent = &d
		}
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, "GetEmergencyContact", err)
	}
	return connect.NewResponse(resp), nil
}

// SuggestHealthItems returns catalog matches for a partially typed condition or allergy.
// It leaves the active tab alone so an open contact draft survives.
func (s *ProfileService) SuggestHealthItems(ctx context.Context, req *connect.Request[api.SuggestHealthItemsRequest]) (*connect.Response[api.SuggestHealthItemsResponse], error) {
	var suggestions []string
	err := s.with(ctx, func(*profile.Aggregate) error {
		var err error
		suggestions, err = profile.Suggest(profile.Kind(req.Msg.Kind), req.Msg.Query)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, "SuggestHealthItems", err)
	}
	if suggestions == nil {
		suggestions = []string{}
	}
	return connect.NewResponse(&api.SuggestHealthItemsResponse{Suggestions: suggestions}), nil
}

// AddCondition picks a condition; it is stored once ConfirmCondition supplies a description.
func (s *ProfileService) AddCondition(ctx context.Context, req *connect.Request[api.AddConditionRequest]) (*connect.Response[api.HealthResponse], error) {
	return s.health(ctx, "AddCondition", func(e *profile.HealthEditor) error {
		return e.BeginCondition(req.Msg.Name)
	})
}

// ConfirmCondition stores the pending condition with an optional description.
func (s *ProfileService) ConfirmCondition(ctx context.Context, req *connect.Request[api.ConfirmConditionRequest]) (*connect.Response[api.HealthResponse], error) {
	return s.health(ctx, "ConfirmCondition", func(e *profile.HealthEditor) error {
		if err := e.ConfirmCondition(req.Msg.Description); err != nil {
			return err
		}
		s.metrics.IncrementProfileMutation(sectionHealth, "add")
		return nil
	})
}

// CancelCondition drops the pending condition.
func (s *ProfileService) CancelCondition(ctx context.Context, req *connect.Request[api.CancelConditionRequest]) (*connect.Response[api.HealthResponse], error) {
	return s.health(ctx, "CancelCondition", func(e *profile.HealthEditor) error {
		e.CancelCondition()
		return nil
	})
}

// AddAllergy stores an allergy.
func (s *ProfileService) AddAllergy(ctx context.Context, req *connect.Request[api.AddAllergyRequest]) (*connect.Response[api.HealthResponse], error) {
	return s.health(ctx, "AddAllergy", func(e *profile.HealthEditor) error {
		if err := e.AddAllergy(req.Msg.Name); err != nil {
			return err
		}
		s.metrics.IncrementProfileMutation(sectionHealth, "add")
		return nil
	})
}

// RequestHealthRemoval marks a condition or allergy for removal.
func (s *ProfileService) RequestHealthRemoval(ctx context.Context, req *connect.Request[api.RequestHealthRemovalRequest]) (*connect.Response[api.HealthResponse], error) {
	return s.health(ctx, "RequestHealthRemoval", func(e *profile.HealthEditor) error {
		_, err := e.RequestRemoval(profile.Kind(req.Msg.Kind), req.Msg.Index)
		return err
	})
}

// ConfirmHealthRemoval removes the entry marked by RequestHealthRemoval.
func (s *ProfileService) ConfirmHealthRemoval(ctx context.Context, req *connect.Request[api.ConfirmHealthRemovalRequest]) (*connect.Response[api.HealthResponse], error) {
	return s.health(ctx, "ConfirmHealthRemoval", func(e *profile.HealthEditor) error {
		if err := e.ConfirmRemoval(); err != nil {
			return err
		}
		s.metrics.IncrementProfileMutation(sectionHealth, "delete")
		return nil
	})
}

// CancelHealthRemoval keeps the entry marked for removal.
func (s *ProfileService) CancelHealthRemoval(ctx context.Context, req *connect.Request[api.CancelHealthRemovalRequest]) (*connect.Response[api.HealthResponse], error) {
	return s.health(ctx, "CancelHealthRemoval", func(e *profile.HealthEditor) error {
		e.CancelRemoval()
		return nil
	})
}

// with runs fn on the authenticated member's aggregate.
func (s *ProfileService) with(ctx context.Context, fn func(*profile.Aggregate) error) error {
	memberID := middleware.GetMemberID(ctx)
	if memberID == "" {
		return auth.ErrMissingToken
	}
	return s.profiles.With(memberID, fn)
}

func (s *ProfileService) contact(ctx context.Context, op string, fn func(*profile.ContactEditor) error) (*connect.Response[api.ContactEditResponse], error) {
	var edit api.ContactEdit
	var opErr error
	err := s.with(ctx, func(a *profile.Aggregate) error {
		e := a.Contact()
		opErr = fn(e)
		edit = contactEdit(e)
		return nil
	})
	if err == nil {
		err = opErr
	}
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}
	return connect.NewResponse(&api.ContactEditResponse{Edit: edit}), nil
}

func (s *ProfileService) health(ctx context.Context, op string, fn func(*profile.HealthEditor) error) (*connect.Response[api.HealthResponse], error) {
	var edit api.HealthEdit
	err := s.with(ctx, func(a *profile.Aggregate) error {
		e := a.Health()
		if err := fn(e); err != nil {
			return err
		}
		edit = healthEdit(e)
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}
	return connect.NewResponse(&api.HealthResponse{Edit: edit}), nil
}

// fail logs err and converts it for the client.
func (s *ProfileService) fail(ctx context.Context, op string, err error) error {
	ce := toConnectError(err)
	s.logger.Warn("Profile operation failed",
		"op", op,
		"member_id", middleware.GetMemberID(ctx),
		"code", ce.Code(),
		"error", err,
	)
	return ce
}

// saveEntry commits v through e, adding it when id is empty and replacing the entry
// with that id otherwise. A rejected save leaves the list and edit buffer as they were
// before the call.
func saveEntry[T any](e *profile.ListEditor[T], v T, id string) (T, string, error) {
	var zero T
	op := "add"
	begin := e.BeginAdd
	if id != "" {
		op = "update"
		begin = func() error { return e.BeginEdit(id) }
	}
	if err := begin(); err != nil {
		return zero, op, err
	}
	if err := e.SetDraft(v); err != nil {
		return zero, op, err
	}
	saved, err := e.Save()
	if err != nil {
		e.Cancel()
		return zero, op, err
	}
	return saved, op, nil
}

func profileView(a *profile.Aggregate) api.ProfileView {
	return api.ProfileView{
		Profile:  a.Profile(),
		Tab:      string(a.Tab()),
		Progress: a.Progress(),
	}
}

func contactEdit(e *profile.ContactEditor) api.ContactEdit {
	edit := api.ContactEdit{
		Contact:    e.Value(),
		HasChanges: e.HasChanges(),
		Verified:   e.Verified(),
	}
	if d, ok := e.Draft(); ok {
		edit.Draft = &d
	}
	return edit
}

func healthEdit(e *profile.HealthEditor) api.HealthEdit {
	edit := api.HealthEdit{Health: e.Info()}
	edit.PendingCondition, _ = e.PendingCondition()
	if p, ok := e.Pending(); ok {
		edit.PendingRemoval = &api.PendingRemoval{
			Kind:  string(p.Kind),
			Index: p.Index,
			Item:  p.Item,
		}
	}
	return edit
}
