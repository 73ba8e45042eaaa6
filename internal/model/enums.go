package model

// ChangeReason is the categorical cause of a stock mutation. Values are
// stored verbatim in inventory_logs.reason; unknown values are rejected at
// the service boundary before any write happens.
type ChangeReason string

const (
	ReasonRestock          ChangeReason = "restock"
	ReasonSale             ChangeReason = "sale"
	ReasonDamage           ChangeReason = "damage"
	ReasonReturn           ChangeReason = "return"
	ReasonManualAdjustment ChangeReason = "manual_adjustment"
)

// Valid reports whether r is one of the recognized change reasons.
func (r ChangeReason) Valid() bool {
	switch r {
	case ReasonRestock, ReasonSale, ReasonDamage, ReasonReturn, ReasonManualAdjustment:
		return true
	}
	return false
}

// SalesChannel is the medium through which a sale was made.
type SalesChannel string

const (
	ChannelOnline      SalesChannel = "online"
	ChannelRetail      SalesChannel = "retail"
	ChannelEmail       SalesChannel = "email"
	ChannelPhone       SalesChannel = "phone"
	ChannelSocialMedia SalesChannel = "social_media"
	ChannelOther       SalesChannel = "other"
)

// Valid reports whether c is one of the recognized sales channels.
func (c SalesChannel) Valid() bool {
	switch c {
	case ChannelOnline, ChannelRetail, ChannelEmail, ChannelPhone, ChannelSocialMedia, ChannelOther:
		return true
	}
	return false
}
