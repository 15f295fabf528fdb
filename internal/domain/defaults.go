package domain

// Flat surcharges for additions, in rubles.
const (
	AltMilkSurcharge int64 = 60
	SyrupSurcharge   int64 = 40
)

// DefaultCatalog returns the shop menu. Prices are whole rubles.
func DefaultCatalog() *Catalog {
	categories := map[Category][]MenuItem{
		CategoryBlackCoffee: {
			{ID: "espresso", Name: "Эспрессо", Category: CategoryBlackCoffee, Pricing: FixedPrice(150, "0.042")},
			{ID: "americano", Name: "Американо", Category: CategoryBlackCoffee, Pricing: VolumePriced(map[Volume]int64{"0.2": 180, "0.3": 200, "0.4": 260})},
			{ID: "filter", Name: "Фильтр кофе", Category: CategoryBlackCoffee, Pricing: VolumePriced(map[Volume]int64{"0.2": 170, "0.3": 210, "0.4": 270})},
			{ID: "espresso_tonic", Name: "Эспрессо-тоник", Category: CategoryBlackCoffee, Pricing: FixedPrice(260, "0.3")},
			{ID: "bumble", Name: "Бамбл", Category: CategoryBlackCoffee, Pricing: FixedPrice(290, "0.3")},
		},
		CategoryMilkCoffee: {
			{ID: "cappuccino", Name: "Капучино", Category: CategoryMilkCoffee, Pricing: VolumePriced(map[Volume]int64{"0.2": 200, "0.3": 240, "0.4": 280})},
			{ID: "latte", Name: "Латте", Category: CategoryMilkCoffee, Pricing: VolumePriced(map[Volume]int64{"0.3": 250, "0.4": 290})},
			{ID: "flat_white", Name: "Флэт уайт", Category: CategoryMilkCoffee, Pricing: VolumePriced(map[Volume]int64{"0.2": 230})},
			{ID: "raf", Name: "Раф", Category: CategoryMilkCoffee, Pricing: VolumePriced(map[Volume]int64{"0.3": 290})},
		},
		// Tea has one standard serving, so it is priced as fixed and skips
		// volume selection.
		CategoryTea: {
			{ID: "tea_black", Name: "Чёрный", Category: CategoryTea, Pricing: FixedPrice(180, "0.3")},
			{ID: "tea_sencha", Name: "Сенча", Category: CategoryTea, Pricing: FixedPrice(180, "0.3")},
			{ID: "tea_oolong", Name: "Улун молочный", Category: CategoryTea, Pricing: FixedPrice(180, "0.3")},
			{ID: "tea_melon", Name: "Дыня / карамель", Category: CategoryTea, Pricing: FixedPrice(180, "0.3")},
			{ID: "tea_cherry", Name: "Вишневый", Category: CategoryTea, Pricing: FixedPrice(180, "0.3")},
			{ID: "tea_mint", Name: "Мятный", Category: CategoryTea, Pricing: FixedPrice(180, "0.3")},
			{ID: "tea_currant", Name: "Черная смородина", Category: CategoryTea, Pricing: FixedPrice(180, "0.3")},
			{ID: "tea_mulled", Name: "Глинтвейн", Category: CategoryTea, Pricing: FixedPrice(180, "0.3")},
			{ID: "tea_buckwheat", Name: "Гречишный", Category: CategoryTea, Pricing: FixedPrice(180, "0.3")},
		},
		CategoryAlternative: {
			{ID: "v60", Name: "Воронка V60", Category: CategoryAlternative, Pricing: VolumePriced(map[Volume]int64{"0.3": 240})},
			{ID: "immersion", Name: "Иммерсионная воронка", Category: CategoryAlternative, Pricing: VolumePriced(map[Volume]int64{"0.3": 240})},
			{ID: "chemex", Name: "Кемекс", Category: CategoryAlternative, Pricing: VolumePriced(map[Volume]int64{"0.3": 240})},
			{ID: "aeropress", Name: "Аэропресс", Category: CategoryAlternative, Pricing: VolumePriced(map[Volume]int64{"0.2": 220})},
		},
		CategorySignature: {
			{ID: "mimosa", Name: "Мимоза", Category: CategorySignature, Pricing: VolumePriced(map[Volume]int64{"0.3": 300})},
			{ID: "creme_brunet", Name: "Крем-брюнет", Category: CategorySignature, Pricing: VolumePriced(map[Volume]int64{"0.3": 260})},
			{ID: "peanut_crunch", Name: "Арахисовый кранч", Category: CategorySignature, Pricing: VolumePriced(map[Volume]int64{"0.3": 300})},
		},
		CategoryNonCoffee: {
			{ID: "cocoa_shot", Name: "Какао-шот 60 мл", Category: CategoryNonCoffee, Pricing: FixedPrice(190, "0.06")},
			{ID: "cocoa", Name: "Какао", Category: CategoryNonCoffee, Pricing: VolumePriced(map[Volume]int64{"0.2": 200, "0.3": 230, "0.4": 280})},
			{ID: "hot_chocolate", Name: "Горячий шоколад", Category: CategoryNonCoffee, Pricing: VolumePriced(map[Volume]int64{"0.2": 230, "0.3": 290})},
			{ID: "matcha_latte", Name: "Матча-латте", Category: CategoryNonCoffee, Pricing: VolumePriced(map[Volume]int64{"0.3": 230, "0.4": 270})},
		},
	}

	milks := []Addition{
		{ID: "coconut", Name: "Кокосовое", Surcharge: AltMilkSurcharge},
		{ID: "hazelnut", Name: "Фундучное", Surcharge: AltMilkSurcharge},
		{ID: "banana", Name: "Банановое", Surcharge: AltMilkSurcharge},
		{ID: "almond", Name: "Миндальное", Surcharge: AltMilkSurcharge},
		{ID: "oat", Name: "Овсяное", Surcharge: AltMilkSurcharge},
		{ID: "lactose_free", Name: "Безлактозное", Surcharge: AltMilkSurcharge},
	}

	syrups := []Addition{
		{ID: "coconut", Name: "Кокос", Surcharge: SyrupSurcharge},
		{ID: "salted_caramel", Name: "Двойная соленая карамель", Surcharge: SyrupSurcharge},
		{ID: "mint_eucalyptus", Name: "Мята с эвкалиптом", Surcharge: SyrupSurcharge},
		{ID: "caramel", Name: "Двойная карамель", Surcharge: SyrupSurcharge},
		{ID: "cherry", Name: "Вишня", Surcharge: SyrupSurcharge},
		{ID: "irish_cream", Name: "Ирландский крем", Surcharge: SyrupSurcharge},
		{ID: "red_orange", Name: "Красный апельсин", Surcharge: SyrupSurcharge},
		{ID: "nut", Name: "Лесной орех", Surcharge: SyrupSurcharge},
		{ID: "raspberry", Name: "Малина", Surcharge: SyrupSurcharge},
		{ID: "vanilla", Name: "Ваниль", Surcharge: SyrupSurcharge},
		{ID: "popcorn", Name: "Попкорн", Surcharge: SyrupSurcharge},
	}

	return NewCatalog(categories, milks, syrups)
}
