package domain

import "fmt"

// PriceType - периодичность оплаты или тип сделки
type PriceType string

const (
	PriceTypeMonthly PriceType = "monthly"
	PriceTypeYearly  PriceType = "yearly"
	PriceTypeSale    PriceType = "sale"
)

type PropertyType string

const (
	PropertyTypeApartment PropertyType = "apartment"
	PropertyTypeVilla     PropertyType = "villa"
	PropertyTypeOffice    PropertyType = "office"
	PropertyTypeShop      PropertyType = "shop"
)

type FurnishingStatus string

const (
	FurnishingStatusFurnished     FurnishingStatus = "furnished"
	FurnishingStatusUnfurnished   FurnishingStatus = "unfurnished"
	FurnishingStatusSemiFurnished FurnishingStatus = "semi-furnished"
)

type AvailabilityStatus string

const (
	AvailabilityStatusAvailable AvailabilityStatus = "available"
	AvailabilityStatusRented    AvailabilityStatus = "rented"
	AvailabilityStatusSold      AvailabilityStatus = "sold"
)

type FaqCategory string

const (
	FaqCategoryAgent   FaqCategory = "agent"
	FaqCategoryListing FaqCategory = "listing"
	FaqCategoryLooking FaqCategory = "looking"
)

func (t PriceType) IsValid() bool {
	switch t {
	case PriceTypeMonthly, PriceTypeYearly, PriceTypeSale:
		return true
	}
	return false
}

func (t PropertyType) IsValid() bool {
	switch t {
	case PropertyTypeApartment, PropertyTypeVilla, PropertyTypeOffice, PropertyTypeShop:
		return true
	}
	return false
}

func (s FurnishingStatus) IsValid() bool {
	switch s {
	case FurnishingStatusFurnished, FurnishingStatusUnfurnished, FurnishingStatusSemiFurnished:
		return true
	}
	return false
}

func (s AvailabilityStatus) IsValid() bool {
	switch s {
	case AvailabilityStatusAvailable, AvailabilityStatusRented, AvailabilityStatusSold:
		return true
	}
	return false
}

func (c FaqCategory) IsValid() bool {
	switch c {
	case FaqCategoryAgent, FaqCategoryListing, FaqCategoryLooking:
		return true
	}
	return false
}

// ParsePropertyType возвращает ошибку для значений вне перечисления
func ParsePropertyType(s string) (PropertyType, error) {
	t := PropertyType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown property type %q", s)
	}
	return t, nil
}

func ParseFurnishingStatus(s string) (FurnishingStatus, error) {
	v := FurnishingStatus(s)
	if !v.IsValid() {
		return "", fmt.Errorf("unknown furnishing status %q", s)
	}
	return v, nil
}

func ParseFaqCategory(s string) (FaqCategory, error) {
	c := FaqCategory(s)
	if !c.IsValid() {
		return "", fmt.Errorf("unknown faq category %q", s)
	}
	return c, nil
}
