package domain

// NeedMatchesOffer — предикат совместимости потребности и предложения.
// Правило симметрично и используется в обоих направлениях подбора:
//   - категория объекта совпадает с желаемой;
//   - цена предложения лежит в ценовом диапазоне потребности;
//   - каждая пара "граница потребности / атрибут объекта" проверяется только
//     когда граница задана И атрибут присутствует у объекта; отсутствие
//     любого из них означает отсутствие ограничения, а не отказ.
//
// Для участков применяются границы площади участка, для квартир и домов —
// границы общей площади.
func NeedMatchesOffer(need Need, offer Offer, property Property) bool {
	if need.PropertyType != property.Type {
		return false
	}
	if offer.Price < need.MinPrice || offer.Price > need.MaxPrice {
		return false
	}

	if property.Type == PropertyTypeLand {
		if !withinFloatRange(property.Area(), need.MinLandArea, need.MaxLandArea) {
			return false
		}
		return true
	}

	if !withinFloatRange(property.Area(), need.MinArea, need.MaxArea) {
		return false
	}
	if !withinIntRange(property.Rooms(), need.MinRooms, need.MaxRooms) {
		return false
	}
	if !withinIntRange(property.Floor(), need.MinFloor, need.MaxFloor) {
		return false
	}
	if !withinIntRange(property.Floors(), need.MinFloors, need.MaxFloors) {
		return false
	}
	return true
}

// withinFloatRange: nil-значение атрибута или границы снимает ограничение.
func withinFloatRange(v, min, max *float64) bool {
	if v == nil {
		return true
	}
	if min != nil && *v < *min {
		return false
	}
	if max != nil && *v > *max {
		return false
	}
	return true
}

func withinIntRange(v, min, max *int) bool {
	if v == nil {
		return true
	}
	if min != nil && *v < *min {
		return false
	}
	if max != nil && *v > *max {
		return false
	}
	return true
}
