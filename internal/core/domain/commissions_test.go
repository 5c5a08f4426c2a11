package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dptr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func dealWith(propType PropertyType, price int64, sellerShare, buyerShare *decimal.Decimal) DealDetails {
	return DealDetails{
		Need: NeedDetails{
			Realtor: Realtor{CommissionShare: sellerShare},
		},
		Offer: OfferDetails{
			Offer:    Offer{Price: price},
			Realtor:  Realtor{CommissionShare: buyerShare},
			Property: Property{Type: propType},
		},
	}
}

func TestCalculateCommissionsApartment(t *testing.T) {
	// Квартира за 1 000 000: продавец 36000 + 1% = 46000, покупатель 3% = 30000.
	b := CalculateCommissions(dealWith(PropertyTypeApartment, 1_000_000, dptr(50), dptr(40)))

	assert.True(t, decimal.NewFromInt(46000).Equal(b.SellerCommission), "seller commission = %s", b.SellerCommission)
	assert.True(t, decimal.NewFromInt(23000).Equal(b.SellerRealtorPayment))
	assert.True(t, decimal.NewFromInt(23000).Equal(b.CompanyPaymentSeller))
	assert.True(t, decimal.NewFromInt(30000).Equal(b.BuyerCommission))
	assert.True(t, decimal.NewFromInt(12000).Equal(b.BuyerRealtorPayment))
	assert.True(t, decimal.NewFromInt(18000).Equal(b.CompanyPaymentBuyer))
}

func TestCalculateCommissionsByPropertyType(t *testing.T) {
	house := CalculateCommissions(dealWith(PropertyTypeHouse, 500_000, dptr(50), dptr(50)))
	assert.True(t, decimal.NewFromInt(35000).Equal(house.SellerCommission), "дом: 30000 + 1%%")

	land := CalculateCommissions(dealWith(PropertyTypeLand, 500_000, dptr(50), dptr(50)))
	assert.True(t, decimal.NewFromInt(40000).Equal(land.SellerCommission), "участок: 30000 + 2%%")

	unknown := CalculateCommissions(dealWith("", 500_000, dptr(50), dptr(50)))
	assert.True(t, unknown.SellerCommission.IsZero())
}

func TestCalculateCommissionsDefaultShare(t *testing.T) {
	// Нет индивидуальной доли — применяется 45%.
	b := CalculateCommissions(dealWith(PropertyTypeApartment, 1_000_000, nil, nil))

	assert.True(t, decimal.NewFromInt(20700).Equal(b.SellerRealtorPayment), "46000 * 45%% = 20700, got %s", b.SellerRealtorPayment)
	assert.True(t, decimal.NewFromInt(25300).Equal(b.CompanyPaymentSeller))
	assert.True(t, decimal.NewFromInt(13500).Equal(b.BuyerRealtorPayment), "30000 * 45%% = 13500")
}

func TestCalculateCommissionsExactSplit(t *testing.T) {
	// Доля с дробной частью не теряет точность: сумма частей равна комиссии.
	share := decimal.NewFromFloat(33.33)
	b := CalculateCommissions(dealWith(PropertyTypeHouse, 777_777, &share, &share))

	assert.True(t, b.SellerRealtorPayment.Add(b.CompanyPaymentSeller).Equal(b.SellerCommission))
	assert.True(t, b.BuyerRealtorPayment.Add(b.CompanyPaymentBuyer).Equal(b.BuyerCommission))
}

func TestCalculateCommissionsIdempotent(t *testing.T) {
	deal := dealWith(PropertyTypeLand, 123_456, dptr(30), nil)

	first := CalculateCommissions(deal)
	second := CalculateCommissions(deal)

	assert.True(t, first.SellerCommission.Equal(second.SellerCommission))
	assert.True(t, first.BuyerCommission.Equal(second.BuyerCommission))
	assert.True(t, first.SellerRealtorPayment.Equal(second.SellerRealtorPayment))
	assert.True(t, first.CompanyPaymentBuyer.Equal(second.CompanyPaymentBuyer))
}
