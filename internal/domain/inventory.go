package domain

// FindVariation возвращает индекс вариации товара по размеру и артикулу или -1.
// Пустое значение size или sku не участвует в сравнении, но хотя бы одно должно быть задано.
func (p *Product) FindVariation(size, sku string) int {
	if size == "" && sku == "" {
		return -1
	}
	for i, v := range p.Variations {
		if (size == "" || v.Size == size) && (sku == "" || v.SKU == sku) {
			return i
		}
	}
	return -1
}

// Decrement списывает qty единиц, не опуская остаток ниже нуля, и пересчитывает доступность.
// Возвращает фактически списанное количество.
func (v *Variation) Decrement(qty int) int {
	if qty < 0 {
		qty = 0
	}
	removed := min(qty, v.Quantity)
	if v.Quantity < 0 {
		removed = 0
	}
	v.Quantity = max(v.Quantity-qty, 0)
	v.Available = v.Quantity > 0
	return removed
}
