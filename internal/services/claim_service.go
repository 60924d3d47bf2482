package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"chirpynosh_backend/internal/auth"
	"chirpynosh_backend/internal/logger"
	"chirpynosh_backend/internal/models"
	"chirpynosh_backend/internal/repositories"
	"chirpynosh_backend/internal/services/dto"
	"chirpynosh_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type ClaimService interface {
	// Create validates the request against the referenced listing, resolves
	// the claimant from the caller's identity, and commits the claim together
	// with its claim_created notification in one transaction.
	Create(ctx context.Context, req *dto.CreateClaimRequest, caller *auth.Claims) (*dto.ClaimResponse, error)

	// UpdateStatus runs the claim state machine. Terminal states are frozen:
	// a cancelled claim rejects every update, a picked-up claim accepts only
	// the idempotent re-assertion of picked_up.
	UpdateStatus(ctx context.Context, id string, req *dto.UpdateClaimStatusRequest) (*dto.ClaimResponse, error)

	GetByID(ctx context.Context, id string) (*dto.ClaimResponse, error)
	ListByUser(ctx context.Context, userID string) ([]*dto.ClaimResponse, error)
	ListByListing(ctx context.Context, listingID string) ([]*dto.ClaimResponse, error)
}

type claimService struct {
	claimRepo     repositories.ClaimRepository
	listingRepo   repositories.ListingRepository
	recipientRepo repositories.RecipientRepository
	emailService  EmailService
}

func NewClaimService(
	claimRepo repositories.ClaimRepository,
	listingRepo repositories.ListingRepository,
	recipientRepo repositories.RecipientRepository,
	emailService EmailService,
) ClaimService {
	return &claimService{
		claimRepo:     claimRepo,
		listingRepo:   listingRepo,
		recipientRepo: recipientRepo,
		emailService:  emailService,
	}
}

// claimantResolution is the outcome of resolving who files the claim. It is
// computed once before any write so the transition logic itself stays
// branch-free per variant.
type claimantResolution struct {
	claimedBy   models.ClaimedBy
	claimerName string
	userID      *string
}

// resolveClaimant handles the three caller variants:
//   - recipient-profile owner: profile data overrides the request fields
//   - authenticated without recipient profile: request must supply both fields
//   - anonymous: request must supply both fields; claimed_by is forced to
//     public so an unauthenticated caller can never assert a recipient claim
func (s *claimService) resolveClaimant(ctx context.Context, req *dto.CreateClaimRequest, caller *auth.Claims) (claimantResolution, error) {
	if caller == nil {
		if req.ClaimedBy == "" || req.ClaimerName == "" {
			return claimantResolution{}, apperrors.NewBadRequestError("claim details required for public claims")
		}
		return claimantResolution{
			claimedBy:   models.ClaimedByPublic,
			claimerName: req.ClaimerName,
		}, nil
	}

	userID := caller.UserID

	profile, err := s.recipientRepo.FindByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repositories.ErrRecipientNotFound) {
		return claimantResolution{}, apperrors.InternalError(err)
	}
	if profile != nil {
		return claimantResolution{
			claimedBy:   models.ClaimedByRecipient,
			claimerName: profile.OrgName,
			userID:      &userID,
		}, nil
	}

	if req.ClaimedBy == "" || req.ClaimerName == "" {
		return claimantResolution{}, apperrors.NewBadRequestError("recipient profile required or claim details provided")
	}
	claimedBy := models.ClaimedBy(req.ClaimedBy)
	if !claimedBy.IsValid() {
		return claimantResolution{}, apperrors.NewBadRequestError("invalid claimed_by value")
	}
	return claimantResolution{
		claimedBy:   claimedBy,
		claimerName: req.ClaimerName,
		userID:      &userID,
	}, nil
}

func (s *claimService) Create(ctx context.Context, req *dto.CreateClaimRequest, caller *auth.Claims) (*dto.ClaimResponse, error) {
	listing, err := s.listingRepo.FindByID(ctx, req.ListingID)
	if err != nil {
		if errors.Is(err, repositories.ErrListingNotFound) {
			return nil, apperrors.NewNotFoundError("Listing")
		}
		return nil, apperrors.InternalError(err)
	}

	resolution, err := s.resolveClaimant(ctx, req, caller)
	if err != nil {
		return nil, err
	}

	claim := &models.Claim{
		ListingID:    listing.ID,
		UserID:       resolution.userID,
		ClaimedBy:    resolution.claimedBy,
		ClaimerName:  resolution.claimerName,
		PickupWindow: req.PickupWindow,
		Status:       models.ClaimStatusClaimed,
	}

	notification := &models.Notification{
		Type:    models.NotificationClaimCreated,
		Title:   "Food claimed",
		Message: fmt.Sprintf("%s claimed a listing for %s", resolution.claimerName, req.PickupWindow),
		Data:    claimEventData(listing.ID),
	}

	if err := s.claimRepo.CreateWithNotification(ctx, claim, notification); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifyByEmail(ctx, notification)

	claim.Listing = listing
	return buildClaimResponse(claim), nil
}

func (s *claimService) UpdateStatus(ctx context.Context, id string, req *dto.UpdateClaimStatusRequest) (*dto.ClaimResponse, error) {
	target := models.ClaimStatus(req.Status)
	if !target.IsValid() {
		return nil, apperrors.ErrInvalidStatus("claim", "invalid claim status: "+req.Status)
	}

	claim, err := s.claimRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrClaimNotFound) {
			return nil, apperrors.NewNotFoundError("Claim")
		}
		return nil, apperrors.InternalError(err)
	}

	if claim.Status == models.ClaimStatusCancelled {
		return nil, apperrors.ErrInvalidStatus("claim", "cannot update a cancelled claim")
	}
	if claim.Status == models.ClaimStatusPickedUp && target != models.ClaimStatusPickedUp {
		return nil, apperrors.ErrInvalidStatus("claim", "cannot change status of a completed pickup")
	}

	notification := s.transitionNotification(claim, target)

	updated, err := s.claimRepo.UpdateStatusWithNotification(ctx, id, claim.Status, target, notification)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrClaimNotFound):
			return nil, apperrors.NewNotFoundError("Claim")
		case errors.Is(err, repositories.ErrClaimConflict):
			return nil, apperrors.ErrConflict(err, "claim was updated concurrently")
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	if notification != nil {
		s.notifyByEmail(ctx, notification)
	}

	updated.Listing = claim.Listing
	return buildClaimResponse(updated), nil
}

// transitionNotification maps a transition to its notification draft.
// Re-asserting picked_up on an already picked-up claim is a no-op and emits
// nothing; re-asserting claimed never notifies.
func (s *claimService) transitionNotification(claim *models.Claim, target models.ClaimStatus) *models.Notification {
	switch {
	case target == models.ClaimStatusPickedUp && claim.Status != models.ClaimStatusPickedUp:
		return &models.Notification{
			Type:    models.NotificationPickupConfirmed,
			Title:   "Pickup completed",
			Message: fmt.Sprintf("Pickup confirmed for window %s. Great job reducing waste!", claim.PickupWindow),
			Data:    claimEventData(claim.ListingID),
		}
	case target == models.ClaimStatusCancelled:
		return &models.Notification{
			Type:    models.NotificationClaimCancelled,
			Title:   "Claim cancelled",
			Message: fmt.Sprintf("A claim was cancelled for window %s.", claim.PickupWindow),
			Data:    claimEventData(claim.ListingID),
		}
	}
	return nil
}

func (s *claimService) GetByID(ctx context.Context, id string) (*dto.ClaimResponse, error) {
	claim, err := s.claimRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrClaimNotFound) {
			return nil, apperrors.NewNotFoundError("Claim")
		}
		return nil, apperrors.InternalError(err)
	}
	return buildClaimResponse(claim), nil
}

func (s *claimService) ListByUser(ctx context.Context, userID string) ([]*dto.ClaimResponse, error) {
	claims, err := s.claimRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	responses := make([]*dto.ClaimResponse, 0, len(claims))
	for i := range claims {
		responses = append(responses, buildClaimResponse(&claims[i]))
	}
	return responses, nil
}

func (s *claimService) ListByListing(ctx context.Context, listingID string) ([]*dto.ClaimResponse, error) {
	claims, err := s.claimRepo.ListByListing(ctx, listingID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	responses := make([]*dto.ClaimResponse, 0, len(claims))
	for i := range claims {
		responses = append(responses, buildClaimResponse(&claims[i]))
	}
	return responses, nil
}

// notifyByEmail forwards the lifecycle event to the digest inbox.
// Best-effort: the notification row is already committed and a mail failure
// never unwinds it.
func (s *claimService) notifyByEmail(ctx context.Context, notification *models.Notification) {
	if s.emailService == nil {
		return
	}
	if err := s.emailService.SendClaimEvent(notification.Title, notification.Message); err != nil {
		logger.CtxWarn(ctx, "failed to send claim event email", "error", err.Error())
	}
}

func claimEventData(listingID string) datatypes.JSON {
	raw, err := json.Marshal(map[string]string{"listing_id": listingID})
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

func buildClaimResponse(claim *models.Claim) *dto.ClaimResponse {
	resp := &dto.ClaimResponse{
		ID:           claim.ID,
		ListingID:    claim.ListingID,
		UserID:       claim.UserID,
		ClaimedBy:    claim.ClaimedBy,
		ClaimerName:  claim.ClaimerName,
		PickupWindow: claim.PickupWindow,
		Status:       claim.Status,
		CreatedAt:    claim.CreatedAt,
	}
	if claim.Listing != nil {
		resp.Listing = &dto.ListingSummary{
			ID:          claim.Listing.ID,
			Title:       claim.Listing.Title,
			Category:    claim.Listing.Category,
			ListingType: claim.Listing.ListingType,
		}
	}
	return resp
}
