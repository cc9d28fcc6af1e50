package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumsRejectUnknownValues(t *testing.T) {
	assert.True(t, PriceTypeSale.IsValid())
	assert.False(t, PriceType("weekly").IsValid())
	assert.True(t, PropertyTypeVilla.IsValid())
	assert.False(t, PropertyType("castle").IsValid())
	assert.True(t, FurnishingStatusSemiFurnished.IsValid())
	assert.False(t, FurnishingStatus("semi_furnished").IsValid())
	assert.True(t, AvailabilityStatusRented.IsValid())
	assert.False(t, AvailabilityStatus("").IsValid())
	assert.True(t, FaqCategoryLooking.IsValid())
	assert.False(t, FaqCategory("buying").IsValid())
}

func TestParseHelpers(t *testing.T) {
	pt, err := ParsePropertyType("office")
	require.NoError(t, err)
	assert.Equal(t, PropertyTypeOffice, pt)

	_, err = ParsePropertyType("Office")
	require.Error(t, err)

	fs, err := ParseFurnishingStatus("furnished")
	require.NoError(t, err)
	assert.Equal(t, FurnishingStatusFurnished, fs)

	_, err = ParseFaqCategory("")
	require.Error(t, err)
}
