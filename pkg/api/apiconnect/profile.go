package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/memberportal/pkg/api"
)

// ProfileServiceName is the fully-qualified name of the ProfileService.
const ProfileServiceName = "memberportal.v1.ProfileService"

// Procedure paths of the ProfileService.
const (
	ProfileServiceGetProfileProcedure           = "/memberportal.v1.ProfileService/GetProfile"
	ProfileServiceSelectTabProcedure            = "/memberportal.v1.ProfileService/SelectTab"
	ProfileServiceBeginContactEditProcedure     = "/memberportal.v1.ProfileService/BeginContactEdit"
	ProfileServiceUpdateContactDraftProcedure   = "/memberportal.v1.ProfileService/UpdateContactDraft"
	ProfileServiceVerifyMobileProcedure         = "/memberportal.v1.ProfileService/VerifyMobile"
	ProfileServiceSaveContactProcedure          = "/memberportal.v1.ProfileService/SaveContact"
	ProfileServiceCancelContactEditProcedure    = "/memberportal.v1.ProfileService/CancelContactEdit"
	ProfileServiceSaveAddressProcedure          = "/memberportal.v1.ProfileService/SaveAddress"
	ProfileServiceDeleteAddressProcedure        = "/memberportal.v1.ProfileService/DeleteAddress"
	ProfileServiceSavePaymentMethodProcedure    = "/memberportal.v1.ProfileService/SavePaymentMethod"
	ProfileServiceDeletePaymentMethodProcedure  = "/memberportal.v1.ProfileService/DeletePaymentMethod"
	ProfileServiceSaveDependentProcedure        = "/memberportal.v1.ProfileService/SaveDependent"
	ProfileServiceDeleteDependentProcedure      = "/memberportal.v1.ProfileService/DeleteDependent"
	ProfileServiceSetEmergencyContactProcedure  = "/memberportal.v1.ProfileService/SetEmergencyContact"
	ProfileServiceGetEmergencyContactProcedure  = "/memberportal.v1.ProfileService/GetEmergencyContact"
	ProfileServiceSuggestHealthItemsProcedure   = "/memberportal.v1.ProfileService/SuggestHealthItems"
	ProfileServiceAddConditionProcedure         = "/memberportal.v1.ProfileService/AddCondition"
	ProfileServiceConfirmConditionProcedure     = "/memberportal.v1.ProfileService/ConfirmCondition"
	ProfileServiceCancelConditionProcedure      = "/memberportal.v1.ProfileService/CancelCondition"
	ProfileServiceAddAllergyProcedure           = "/memberportal.v1.ProfileService/AddAllergy"
	ProfileServiceRequestHealthRemovalProcedure = "/memberportal.v1.ProfileService/RequestHealthRemoval"
	ProfileServiceConfirmHealthRemovalProcedure = "/memberportal.v1.ProfileService/ConfirmHealthRemoval"
	ProfileServiceCancelHealthRemovalProcedure  = "/memberportal.v1.ProfileService/CancelHealthRemoval"
)

// ProfileServiceHandler edits the authenticated member's profile, one tab at a time.
type ProfileServiceHandler interface {
	GetProfile(context.Context, *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error)
	SelectTab(context.Context, *connect.Request[api.SelectTabRequest]) (*connect.Response[api.SelectTabResponse], error)
	BeginContactEdit(context.Context, *connect.Request[api.BeginContactEditRequest]) (*connect.Response[api.ContactEditResponse], error)
	UpdateContactDraft(context.Context, *connect.Request[api.UpdateContactDraftRequest]) (*connect.Response[api.ContactEditResponse], error)
	VerifyMobile(context.Context, *connect.Request[api.VerifyMobileRequest]) (*connect.Response[api.ContactEditResponse], error)
	SaveContact(context.Context, *connect.Request[api.SaveContactRequest]) (*connect.Response[api.ContactEditResponse], error)
	CancelContactEdit(context.Context, *connect.Request[api.CancelContactEditRequest]) (*connect.Response[api.ContactEditResponse], error)
	SaveAddress(context.Context, *connect.Request[api.SaveAddressRequest]) (*connect.Response[api.AddressesResponse], error)
	DeleteAddress(context.Context, *connect.Request[api.DeleteAddressRequest]) (*connect.Response[api.AddressesResponse], error)
	SavePaymentMethod(context.Context, *connect.Request[api.SavePaymentMethodRequest]) (*connect.Response[api.PaymentMethodsResponse], error)
	DeletePaymentMethod(context.Context, *connect.Request[api.DeletePaymentMethodRequest]) (*connect.Response[api.PaymentMethodsResponse], error)
	SaveDependent(context.Context, *connect.Request[api.SaveDependentRequest]) (*connect.Response[api.DependentsResponse], error)
	DeleteDependent(context.Context, *connect.Request[api.DeleteDependentRequest]) (*connect.Response[api.DependentsResponse], error)
	SetEmergencyContact(context.Context, *connect.Request[api.SetEmergencyContactRequest]) (*connect.Response[api.DependentsResponse], error)
	GetEmergencyContact(context.Context, *connect.Request[api.GetEmergencyContactRequest]) (*connect.Response[api.GetEmergencyContactResponse], error)
	SuggestHealthItems(context.Context, *connect.Request[api.SuggestHealthItemsRequest]) (*connect.Response[api.SuggestHealthItemsResponse], error)
	AddCondition(context.Context, *connect.Request[api.AddConditionRequest]) (*connect.Response[api.HealthResponse], error)
	ConfirmCondition(context.Context, *connect.Request[api.ConfirmConditionRequest]) (*connect.Response[api.HealthResponse], error)
	CancelCondition(context.Context, *connect.Request[api.CancelConditionRequest]) (*connect.Response[api.HealthResponse], error)
	AddAllergy(context.Context, *connect.Request[api.AddAllergyRequest]) (*connect.Response[api.HealthResponse], error)
	RequestHealthRemoval(context.Context, *connect.Request[api.RequestHealthRemovalRequest]) (*connect.Response[api.HealthResponse], error)
	ConfirmHealthRemoval(context.Context, *connect.Request[api.ConfirmHealthRemovalRequest]) (*connect.Response[api.HealthResponse], error)
	CancelHealthRemoval(context.Context, *connect.Request[api.CancelHealthRemovalRequest]) (*connect.Response[api.HealthResponse], error)
}

// NewProfileServiceHandler builds an HTTP handler for svc. It returns the path to mount it on.
func NewProfileServiceHandler(svc ProfileServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	getProfileHandler := connect.NewUnaryHandler(ProfileServiceGetProfileProcedure, svc.GetProfile, opts...)
	selectTabHandler := connect.NewUnaryHandler(ProfileServiceSelectTabProcedure, svc.SelectTab, opts...)
	beginContactEditHandler := connect.NewUnaryHandler(ProfileServiceBeginContactEditProcedure, svc.BeginContactEdit, opts...)
	updateContactDraftHandler := connect.NewUnaryHandler(ProfileServiceUpdateContactDraftProcedure, svc.UpdateContactDraft, opts...)
	verifyMobileHandler := connect.NewUnaryHandler(ProfileServiceVerifyMobileProcedure, svc.VerifyMobile, opts...)
	saveContactHandler := connect.NewUnaryHandler(ProfileServiceSaveContactProcedure, svc.SaveContact, opts...)
	cancelContactEditHandler := connect.NewUnaryHandler(ProfileServiceCancelContactEditProcedure, svc.CancelContactEdit, opts...)
	saveAddressHandler := connect.NewUnaryHandler(ProfileServiceSaveAddressProcedure, svc.SaveAddress, opts...)
	deleteAddressHandler := connect.NewUnaryHandler(ProfileServiceDeleteAddressProcedure, svc.DeleteAddress, opts...)
	savePaymentMethodHandler := connect.NewUnaryHandler(ProfileServiceSavePaymentMethodProcedure, svc.SavePaymentMethod, opts...)
	deletePaymentMethodHandler := connect.NewUnaryHandler(ProfileServiceDeletePaymentMethodProcedure, svc.DeletePaymentMethod, opts...)
	saveDependentHandler := connect.NewUnaryHandler(ProfileServiceSaveDependentProcedure, svc.SaveDependent, opts...)
	deleteDependentHandler := connect.NewUnaryHandler(ProfileServiceDeleteDependentProcedure, svc.DeleteDependent, opts...)
	setEmergencyContactHandler := connect.NewUnaryHandler(ProfileServiceSetEmergencyContactProcedure, svc.SetEmergencyContact, opts...)
	getEmergencyContactHandler := connect.NewUnaryHandler(ProfileServiceGetEmergencyContactProcedure, svc.GetEmergencyContact, opts...)
	suggestHealthItemsHandler := connect.NewUnaryHandler(ProfileServiceSuggestHealthItemsProcedure, svc.SuggestHealthItems, opts...)
	addConditionHandler := connect.NewUnaryHandler(ProfileServiceAddConditionProcedure, svc.AddCondition, opts...)
	confirmConditionHandler := connect.NewUnaryHandler(ProfileServiceConfirmConditionProcedure, svc.ConfirmCondition, opts...)
	cancelConditionHandler := connect.NewUnaryHandler(ProfileServiceCancelConditionProcedure, svc.CancelCondition, opts...)
	addAllergyHandler := connect.NewUnaryHandler(ProfileServiceAddAllergyProcedure, svc.AddAllergy, opts...)
	requestHealthRemovalHandler := connect.NewUnaryHandler(ProfileServiceRequestHealthRemovalProcedure, svc.RequestHealthRemoval, opts...)
	confirmHealthRemovalHandler := connect.NewUnaryHandler(ProfileServiceConfirmHealthRemovalProcedure, svc.ConfirmHealthRemoval, opts...)
	cancelHealthRemovalHandler := connect.NewUnaryHandler(ProfileServiceCancelHealthRemovalProcedure, svc.CancelHealthRemoval, opts...)
	return "/memberportal.v1.ProfileService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ProfileServiceGetProfileProcedure:
			getProfileHandler.ServeHTTP(w, r)
		case ProfileServiceSelectTabProcedure:
			selectTabHandler.ServeHTTP(w, r)
		case ProfileServiceBeginContactEditProcedure:
			beginContactEditHandler.ServeHTTP(w, r)
		case ProfileServiceUpdateContactDraftProcedure:
			updateContactDraftHandler.ServeHTTP(w, r)
		case ProfileServiceVerifyMobileProcedure:
			verifyMobileHandler.ServeHTTP(w, r)
		case ProfileServiceSaveContactProcedure:
			saveContactHandler.ServeHTTP(w, r)
		case ProfileServiceCancelContactEditProcedure:
			cancelContactEditHandler.ServeHTTP(w, r)
		case ProfileServiceSaveAddressProcedure:
			saveAddressHandler.ServeHTTP(w, r)
		case ProfileServiceDeleteAddressProcedure:
			deleteAddressHandler.ServeHTTP(w, r)
		case ProfileServiceSavePaymentMethodProcedure:
			savePaymentMethodHandler.ServeHTTP(w, r)
		case ProfileServiceDeletePaymentMethodProcedure:
			deletePaymentMethodHandler.ServeHTTP(w, r)
		case ProfileServiceSaveDependentProcedure:
			saveDependentHandler.ServeHTTP(w, r)
		case ProfileServiceDeleteDependentProcedure:
			deleteDependentHandler.ServeHTTP(w, r)
		case ProfileServiceSetEmergencyContactProcedure:
			setEmergencyContactHandler.ServeHTTP(w, r)
		case ProfileServiceGetEmergencyContactProcedure:
			getEmergencyContactHandler.ServeHTTP(w, r)
		case ProfileServiceSuggestHealthItemsProcedure:
			suggestHealthItemsHandler.ServeHTTP(w, r)
		case ProfileServiceAddConditionProcedure:
			addConditionHandler.ServeHTTP(w, r)
		case ProfileServiceConfirmConditionProcedure:
			confirmConditionHandler.ServeHTTP(w, r)
		case ProfileServiceCancelConditionProcedure:
			cancelConditionHandler.ServeHTTP(w, r)
		case ProfileServiceAddAllergyProcedure:
			addAllergyHandler.ServeHTTP(w, r)
		case ProfileServiceRequestHealthRemovalProcedure:
			requestHealthRemovalHandler.ServeHTTP(w, r)
		case ProfileServiceConfirmHealthRemovalProcedure:
			confirmHealthRemovalHandler.ServeHTTP(w, r)
		case ProfileServiceCancelHealthRemovalProcedure:
			cancelHealthRemovalHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// ProfileServiceClient is a client for the ProfileService.
type ProfileServiceClient interface {
	GetProfile(context.Context, *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error)
	SelectTab(context.Context, *connect.Request[api.SelectTabRequest]) (*connect.Response[api.SelectTabResponse], error)
	BeginContactEdit(context.Context, *connect.Request[api.BeginContactEditRequest]) (*connect.Response[api.ContactEditResponse], error)
	UpdateContactDraft(context.Context, *connect.Request[api.UpdateContactDraftRequest]) (*connect.Response[api.ContactEditResponse], error)
	VerifyMobile(context.Context, *connect.Request[api.VerifyMobileRequest]) (*connect.Response[api.ContactEditResponse], error)
	SaveContact(context.Context, *connect.Request[api.SaveContactRequest]) (*connect.Response[api.ContactEditResponse], error)
	CancelContactEdit(context.Context, *connect.Request[api.CancelContactEditRequest]) (*connect.Response[api.ContactEditResponse], error)
	SaveAddress(context.Context, *connect.Request[api.SaveAddressRequest]) (*connect.Response[api.AddressesResponse], error)
	DeleteAddress(context.Context, *connect.Request[api.DeleteAddressRequest]) (*connect.Response[api.AddressesResponse], error)
	SavePaymentMethod(context.Context, *connect.Request[api.SavePaymentMethodRequest]) (*connect.Response[api.PaymentMethodsResponse], error)
	DeletePaymentMethod(context.Context, *connect.Request[api.DeletePaymentMethodRequest]) (*connect.Response[api.PaymentMethodsResponse], error)
	SaveDependent(context.Context, *connect.Request[api.SaveDependentRequest]) (*connect.Response[api.DependentsResponse], error)
	DeleteDependent(context.Context, *connect.Request[api.DeleteDependentRequest]) (*connect.Response[api.DependentsResponse], error)
	SetEmergencyContact(context.Context, *connect.Request[api.SetEmergencyContactRequest]) (*connect.Response[api.DependentsResponse], error)
	GetEmergencyContact(context.Context, *connect.Request[api.GetEmergencyContactRequest]) (*connect.Response[api.GetEmergencyContactResponse], error)
	SuggestHealthItems(context.Context, *connect.Request[api.SuggestHealthItemsRequest]) (*connect.Response[api.SuggestHealthItemsResponse], error)
	AddCondition(context.Context, *connect.Request[api.AddConditionRequest]) (*connect.Response[api.HealthResponse], error)
	ConfirmCondition(context.Context, *connect.Request[api.ConfirmConditionRequest]) (*connect.Response[api.HealthResponse], error)
	CancelCondition(context.Context, *connect.Request[api.CancelConditionRequest]) (*connect.Response[api.HealthResponse], error)
	AddAllergy(context.Context, *connect.Request[api.AddAllergyRequest]) (*connect.Response[api.HealthResponse], error)
	RequestHealthRemoval(context.Context, *connect.Request[api.RequestHealthRemovalRequest]) (*connect.Response[api.HealthResponse], error)
	ConfirmHealthRemoval(context.Context, *connect.Request[api.ConfirmHealthRemovalRequest]) (*connect.Response[api.HealthResponse], error)
	CancelHealthRemoval(context.Context, *connect.Request[api.CancelHealthRemovalRequest]) (*connect.Response[api.HealthResponse], error)
}

// NewProfileServiceClient creates a client for the ProfileService at baseURL (e.g. http://localhost:8080).
func NewProfileServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ProfileServiceClient {
	opts = clientOptions(opts)
	return &profileServiceClient{
		getProfile:           connect.NewClient[api.GetProfileRequest, api.GetProfileResponse](httpClient, baseURL+ProfileServiceGetProfileProcedure, opts...),
		selectTab:            connect.NewClient[api.SelectTabRequest, api.SelectTabResponse](httpClient, baseURL+ProfileServiceSelectTabProcedure, opts...),
		beginContactEdit:     connect.NewClient[api.BeginContactEditRequest, api.ContactEditResponse](httpClient, baseURL+ProfileServiceBeginContactEditProcedure, opts...),
		updateContactDraft:   connect.NewClient[api.UpdateContactDraftRequest, api.ContactEditResponse](httpClient, baseURL+ProfileServiceUpdateContactDraftProcedure, opts...),
		verifyMobile:         connect.NewClient[api.VerifyMobileRequest, api.ContactEditResponse](httpClient, baseURL+ProfileServiceVerifyMobileProcedure, opts...),
		saveContact:          connect.NewClient[api.SaveContactRequest, api.ContactEditResponse](httpClient, baseURL+ProfileServiceSaveContactProcedure, opts...),
		cancelContactEdit:    connect.NewClient[api.CancelContactEditRequest, api.ContactEditResponse](httpClient, baseURL+ProfileServiceCancelContactEditProcedure, opts...),
		saveAddress:          connect.NewClient[api.SaveAddressRequest, api.AddressesResponse](httpClient, baseURL+ProfileServiceSaveAddressProcedure, opts...),
		deleteAddress:        connect.NewClient[api.DeleteAddressRequest, api.AddressesResponse](httpClient, baseURL+ProfileServiceDeleteAddressProcedure, opts...),
		savePaymentMethod:    connect.NewClient[api.SavePaymentMethodRequest, api.PaymentMethodsResponse](httpClient, baseURL+ProfileServiceSavePaymentMethodProcedure, opts...),
		deletePaymentMethod:  connect.NewClient[api.DeletePaymentMethodRequest, api.PaymentMethodsResponse](httpClient, baseURL+ProfileServiceDeletePaymentMethodProcedure, opts...),
		saveDependent:        connect.NewClient[api.SaveDependentRequest, api.DependentsResponse](httpClient, baseURL+ProfileServiceSaveDependentProcedure, opts...),
		deleteDependent:      connect.NewClient[api.DeleteDependentRequest, api.DependentsResponse](httpClient, baseURL+ProfileServiceDeleteDependentProcedure, opts...),
		setEmergencyContact:  connect.NewClient[api.SetEmergencyContactRequest, api.DependentsResponse](httpClient, baseURL+ProfileServiceSetEmergencyContactProcedure, opts...),
		getEmergencyContact:  connect.NewClient[api.GetEmergencyContactRequest, api.GetEmergencyContactResponse](httpClient, baseURL+ProfileServiceGetEmergencyContactProcedure, opts...),
		suggestHealthItems:   connect.NewClient[api.SuggestHealthItemsRequest, api.SuggestHealthItemsResponse](httpClient, baseURL+ProfileServiceSuggestHealthItemsProcedure, opts...),
		addCondition:         connect.NewClient[api.AddConditionRequest, api.HealthResponse](httpClient, baseURL+ProfileServiceAddConditionProcedure, opts...),
		confirmCondition:     connect.NewClient[api.ConfirmConditionRequest, api.HealthResponse](httpClient, baseURL+ProfileServiceConfirmConditionProcedure, opts...),
		cancelCondition:      connect.NewClient[api.CancelConditionRequest, api.HealthResponse](httpClient, baseURL+ProfileServiceCancelConditionProcedure, opts...),
		addAllergy:           connect.NewClient[api.AddAllergyRequest, api.HealthResponse](httpClient, baseURL+ProfileServiceAddAllergyProcedure, opts...),
		requestHealthRemoval: connect.NewClient[api.RequestHealthRemovalRequest, api.HealthResponse](httpClient, baseURL+ProfileServiceRequestHealthRemovalProcedure, opts...),
		confirmHealthRemoval: connect.NewClient[api.ConfirmHealthRemovalRequest, api.HealthResponse](httpClient, baseURL+ProfileServiceConfirmHealthRemovalProcedure, opts...),
		cancelHealthRemoval:  connect.NewClient[api.CancelHealthRemovalRequest, api.HealthResponse](httpClient, baseURL+ProfileServiceCancelHealthRemovalProcedure, opts...),
	}
}

type profileServiceClient struct {
	getProfile           *connect.Client[api.GetProfileRequest, api.GetProfileResponse]
	selectTab            *connect.Client[api.SelectTabRequest, api.SelectTabResponse]
	beginContactEdit     *connect.Client[api.BeginContactEditRequest, api.ContactEditResponse]
	updateContactDraft   *connect.Client[api.UpdateContactDraftRequest, api.ContactEditResponse]
	verifyMobile         *connect.Client[api.VerifyMobileRequest, api.ContactEditResponse]
	saveContact          *connect.Client[api.SaveContactRequest, api.ContactEditResponse]
	cancelContactEdit    *connect.Client[api.CancelContactEditRequest, api.ContactEditResponse]
	saveAddress          *connect.Client[api.SaveAddressRequest, api.AddressesResponse]
	deleteAddress        *connect.Client[api.DeleteAddressRequest, api.AddressesResponse]
	savePaymentMethod    *connect.Client[api.SavePaymentMethodRequest, api.PaymentMethodsResponse]
	deletePaymentMethod  *connect.Client[api.DeletePaymentMethodRequest, api.PaymentMethodsResponse]
	saveDependent        *connect.Client[api.SaveDependentRequest, api.DependentsResponse]
	deleteDependent      *connect.Client[api.DeleteDependentRequest, api.DependentsResponse]
	setEmergencyContact  *connect.Client[api.SetEmergencyContactRequest, api.DependentsResponse]
	getEmergencyContact  *connect.Client[api.GetEmergencyContactRequest, api.GetEmergencyContactResponse]
	suggestHealthItems   *connect.Client[api.SuggestHealthItemsRequest, api.SuggestHealthItemsResponse]
	addCondition         *connect.Client[api.AddConditionRequest, api.HealthResponse]
	confirmCondition     *connect.Client[api.ConfirmConditionRequest, api.HealthResponse]
	cancelCondition      *connect.Client[api.CancelConditionRequest, api.HealthResponse]
	addAllergy           *connect.Client[api.AddAllergyRequest, api.HealthResponse]
	requestHealthRemoval *connect.Client[api.RequestHealthRemovalRequest, api.HealthResponse]
	confirmHealthRemoval *connect.Client[api.ConfirmHealthRemovalRequest, api.HealthResponse]
	cancelHealthRemoval  *connect.Client[api.CancelHealthRemovalRequest, api.HealthResponse]
}

func (c *profileServiceClient) GetProfile(ctx context.Context, req *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error) {
	return c.getProfile.CallUnary(ctx, req)
}

func (c *profileServiceClient) SelectTab(ctx context.Context, req *connect.Request[api.SelectTabRequest]) (*connect.Response[api.SelectTabResponse], error) {
	return c.selectTab.CallUnary(ctx, req)
}

func (c *profileServiceClient) BeginContactEdit(ctx context.Context, req *connect.Request[api.BeginContactEditRequest]) (*connect.Response[api.ContactEditResponse], error) {
	return c.beginContactEdit.CallUnary(ctx, req)
}

func (c *profileServiceClient) UpdateContactDraft(ctx context.Context, req *connect.Request[api.UpdateContactDraftRequest]) (*connect.Response[api.ContactEditResponse], error) {
	return c.updateContactDraft.CallUnary(ctx, req)
}

func (c *profileServiceClient) VerifyMobile(ctx context.Context, req *connect.Request[api.VerifyMobileRequest]) (*connect.Response[api.ContactEditResponse], error) {
	return c.verifyMobile.CallUnary(ctx, req)
}

func (c *profileServiceClient) SaveContact(ctx context.Context, req *connect.Request[api.SaveContactRequest]) (*connect.Response[api.ContactEditResponse], error) {
	return c.saveContact.CallUnary(ctx, req)
}

func (c *profileServiceClient) CancelContactEdit(ctx context.Context, req *connect.Request[api.CancelContactEditRequest]) (*connect.Response[api.ContactEditResponse], error) {
	return c.cancelContactEdit.CallUnary(ctx, req)
}

func (c *profileServiceClient) SaveAddress(ctx context.Context, req *connect.Request[api.SaveAddressRequest]) (*connect.Response[api.AddressesResponse], error) {
	return c.saveAddress.CallUnary(ctx, req)
}

func (c *profileServiceClient) DeleteAddress(ctx context.Context, req *connect.Request[api.DeleteAddressRequest]) (*connect.Response[api.AddressesResponse], error) {
	return c.deleteAddress.CallUnary(ctx, req)
}

func (c *profileServiceClient) SavePaymentMethod(ctx context.Context, req *connect.Request[api.SavePaymentMethodRequest]) (*connect.Response[api.PaymentMethodsResponse], error) {
	return c.savePaymentMethod.CallUnary(ctx, req)
}

func (c *profileServiceClient) DeletePaymentMethod(ctx context.Context, req *connect.Request[api.DeletePaymentMethodRequest]) (*connect.Response[api.PaymentMethodsResponse], error) {
	return c.deletePaymentMethod.CallUnary(ctx, req)
}

func (c *profileServiceClient) SaveDependent(ctx context.Context, req *connect.Request[api.SaveDependentRequest]) (*connect.Response[api.DependentsResponse], error) {
	return c.saveDependent.CallUnary(ctx, req)
}

func (c *profileServiceClient) DeleteDependent(ctx context.Context, req *connect.Request[api.DeleteDependentRequest]) (*connect.Response[api.DependentsResponse], error) {
	return c.deleteDependent.CallUnary(ctx, req)
}

func (c *profileServiceClient) SetEmergencyContact(ctx context.Context, req *connect.Request[api.SetEmergencyContactRequest]) (*connect.Response[api.DependentsResponse], error) {
	return c.setEmergencyContact.CallUnary(ctx, req)
}

func (c *profileServiceClient) GetEmergencyContact(ctx context.Context, req *connect.Request[api.GetEmergencyContactRequest]) (*connect.Response[api.GetEmergencyContactResponse], error) {
	return c.getEmergencyContact.CallUnary(ctx, req)
}

func (c *profileServiceClient) SuggestHealthItems(ctx context.Context, req *connect.Request[api.SuggestHealthItemsRequest]) (*connect.Response[api.SuggestHealthItemsResponse], error) {
	return c.suggestHealthItems.CallUnary(ctx, req)
}

func (c *profileServiceClient) AddCondition(ctx context.Context, req *connect.Request[api.AddConditionRequest]) (*connect.Response[api.HealthResponse], error) {
	return c.addCondition.CallUnary(ctx, req)
}

func (c *profileServiceClient) ConfirmCondition(ctx context.Context, req *connect.Request[api.ConfirmConditionRequest]) (*connect.Response[api.HealthResponse], error) {
	return c.confirmCondition.CallUnary(ctx, req)
}

func (c *profileServiceClient) CancelCondition(ctx context.Context, req *connect.Request[api.CancelConditionRequest]) (*connect.Response[api.HealthResponse], error) {
	return c.cancelCondition.CallUnary(ctx, req)
}

func (c *profileServiceClient) AddAllergy(ctx context.Context, req *connect.Request[api.AddAllergyRequest]) (*connect.Response[api.HealthResponse], error) {
	return c.addAllergy.CallUnary(ctx, req)
}

func (c *profileServiceClient) RequestHealthRemoval(ctx context.Context, req *connect.Request[api.RequestHealthRemovalRequest]) (*connect.Response[api.HealthResponse], error) {
	return c.requestHealthRemoval.CallUnary(ctx, req)
}

func (c *profileServiceClient) ConfirmHealthRemoval(ctx context.Context, req *connect.Request[api.ConfirmHealthRemovalRequest]) (*connect.Response[api.HealthResponse], error) {
	return c.confirmHealthRemoval.CallUnary(ctx, req)
}

func (c *profileServiceClient) CancelHealthRemoval(ctx context.Context, req *connect.Request[api.CancelHealthRemovalRequest]) (*connect.Response[api.HealthResponse], error) {
	return c.cancelHealthRemoval.CallUnary(ctx, req)
}
