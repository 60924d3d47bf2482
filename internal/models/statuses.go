package models

type UserRole string
type PartnerType string
type ListingCategory string
type ListingType string
type ClaimStatus string
type ClaimedBy string
type NotificationType string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRolePartner   UserRole = "partner"
	UserRoleRecipient UserRole = "recipient"
	UserRolePublic    UserRole = "public"

	PartnerTypeRestaurant  PartnerType = "restaurant"
	PartnerTypeBakery      PartnerType = "bakery"
	PartnerTypeSupermarket PartnerType = "supermarket"
	PartnerTypeCafe        PartnerType = "cafe"
	PartnerTypeOther       PartnerType = "other"

	ListingCategoryBakery  ListingCategory = "bakery"
	ListingCategoryProduce ListingCategory = "produce"
	ListingCategoryDairy   ListingCategory = "dairy"
	ListingCategoryMeals   ListingCategory = "meals"
	ListingCategoryPantry  ListingCategory = "pantry"
	ListingCategoryOther   ListingCategory = "other"

	ListingTypeDonation   ListingType = "donation"
	ListingTypeDiscounted ListingType = "discounted"

	ClaimStatusClaimed   ClaimStatus = "claimed"
	ClaimStatusPickedUp  ClaimStatus = "picked_up"
	ClaimStatusCancelled ClaimStatus = "cancelled"

	ClaimedByRecipient ClaimedBy = "recipient"
	ClaimedByPublic    ClaimedBy = "public"

	NotificationClaimCreated    NotificationType = "claim_created"
	NotificationPickupConfirmed NotificationType = "pickup_confirmed"
	NotificationClaimCancelled  NotificationType = "claim_cancelled"
	NotificationExpiringSoon    NotificationType = "expiring_soon"
)

// IsValid reports whether the value is a known claim status.
func (s ClaimStatus) IsValid() bool {
	switch s {
	case ClaimStatusClaimed, ClaimStatusPickedUp, ClaimStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition may leave the status.
func (s ClaimStatus) IsTerminal() bool {
	return s == ClaimStatusPickedUp || s == ClaimStatusCancelled
}

// IsValid reports whether the value is a known claimant category.
func (c ClaimedBy) IsValid() bool {
	return c == ClaimedByRecipient || c == ClaimedByPublic
}

// IsValid reports whether the value is a known user role.
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRolePartner, UserRoleRecipient, UserRolePublic:
		return true
	}
	return false
}
