package domain

import "github.com/shopspring/decimal"

// DefaultCommissionShare — доля риэлтора в процентах, когда у него
// не задана индивидуальная доля.
var DefaultCommissionShare = decimal.NewFromInt(45)

var (
	hundred = decimal.NewFromInt(100)

	apartmentSellerBase = decimal.NewFromInt(36000)
	houseSellerBase     = decimal.NewFromInt(30000)
	landSellerBase      = decimal.NewFromInt(30000)

	onePercent   = decimal.NewFromFloat(0.01)
	twoPercent   = decimal.NewFromFloat(0.02)
	threePercent = decimal.NewFromFloat(0.03)
)

// CommissionBreakdown — шесть сумм расчета по сделке.
// Все значения — точные десятичные, округление только при выводе.
type CommissionBreakdown struct {
	SellerCommission     decimal.Decimal
	BuyerCommission      decimal.Decimal
	SellerRealtorPayment decimal.Decimal
	CompanyPaymentSeller decimal.Decimal
	BuyerRealtorPayment  decimal.Decimal
	CompanyPaymentBuyer  decimal.Decimal
}

// CalculateCommissions — чистая функция расчета комиссий по сделке.
// Продавца ведет риэлтор потребности, покупателя — риэлтор предложения.
// Повторные вызовы для одной сделки дают идентичный результат.
func CalculateCommissions(deal DealDetails) CommissionBreakdown {
	price := decimal.NewFromInt(deal.Offer.Price)
	sellerShare := shareOrDefault(deal.Need.Realtor.CommissionShare)
	buyerShare := shareOrDefault(deal.Offer.Realtor.CommissionShare)

	var sellerCommission decimal.Decimal
	switch deal.Offer.Property.Type {
	case PropertyTypeApartment:
		sellerCommission = apartmentSellerBase.Add(onePercent.Mul(price))
	case PropertyTypeHouse:
		sellerCommission = houseSellerBase.Add(onePercent.Mul(price))
	case PropertyTypeLand:
		sellerCommission = landSellerBase.Add(twoPercent.Mul(price))
	default:
		sellerCommission = decimal.Zero
	}

	buyerCommission := threePercent.Mul(price)

	sellerRealtorPayment := sellerCommission.Mul(sellerShare).Div(hundred)
	buyerRealtorPayment := buyerCommission.Mul(buyerShare).Div(hundred)

	return CommissionBreakdown{
		SellerCommission:     sellerCommission,
		BuyerCommission:      buyerCommission,
		SellerRealtorPayment: sellerRealtorPayment,
		CompanyPaymentSeller: sellerCommission.Sub(sellerRealtorPayment),
		BuyerRealtorPayment:  buyerRealtorPayment,
		CompanyPaymentBuyer:  buyerCommission.Sub(buyerRealtorPayment),
	}
}

func shareOrDefault(share *decimal.Decimal) decimal.Decimal {
	if share == nil {
		return DefaultCommissionShare
	}
	return *share
}
