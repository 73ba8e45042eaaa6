package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangeReasonValid(t *testing.T) {
	for _, r := range []ChangeReason{ReasonRestock, ReasonSale, ReasonDamage, ReasonReturn, ReasonManualAdjustment} {
		assert.True(t, r.Valid(), "%s should be valid", r)
	}
	assert.False(t, ChangeReason("shrinkage").Valid())
	assert.False(t, ChangeReason("").Valid())
	assert.False(t, ChangeReason("Sale").Valid(), "reasons are case sensitive")
}

func TestSalesChannelValid(t *testing.T) {
	for _, c := range []SalesChannel{ChannelOnline, ChannelRetail, ChannelEmail, ChannelPhone, ChannelSocialMedia, ChannelOther} {
		assert.True(t, c.Valid(), "%s should be valid", c)
	}
	assert.False(t, SalesChannel("fax").Valid())
	assert.False(t, SalesChannel("").Valid())
}
