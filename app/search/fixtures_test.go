package search

// demoDocs is the travel feed the search page starts from.
func demoDocs() []Document {
	return []Document{
		{
			ID: "bali", PostID: "bali", Handle: "bali_nomad", Time: "2h",
			Text: "Bali: Canggu. Wifi везде, еда дешёвая, закаты топ 🌊",
			Tags: []string{"location:bali", "wifi:good", "budget:low"},
		},
		{
			ID: "tokyo", PostID: "tokyo", Handle: "tokyo_weekender", Time: "4h",
			Text: "Токио: лайфхак: Suica + Google Maps + не ходи в час пик 😅",
			Tags: []string{"location:tokyo", "transport:suica"},
		},
		{
			ID: "visa", PostID: "visa", Handle: "visa_helper", Time: "1d",
			Text: "Индонезия: для граждан Узбекистана часто спрашивают обратный билет + бронь отеля. Уточняй тип визы: VOA / e-VOA / KITAS.",
			Tags: []string{"topic:visa", "country:indonesia", "citizenship:uzbekistan"},
		},
		{
			ID: "sharm", PostID: "sharm", Handle: "sharm_traveler", Time: "3d",
			Text: "Шарм-эль-Шейх: Hilton Sharks Bay обычно дороже в сезон. Смотри цену на конкретные даты, потому что разброс адский.",
			Tags: []string{"topic:hotel", "brand:hilton", "location:sharm"},
		},
		{
			ID: "avia", PostID: "avia", Handle: "aviageek_uz", Time: "5d",
			Text: "Uzbekistan Airways: по отзывам норм сервис, но бывают задержки. Всегда проверяй нормы багажа в билете и на сайте перевозчика.",
			Tags: []string{"topic:airline", "brand:uzbekistan-airways"},
		},
	}
}

func matchIDs(matches []Match) []string {
	ids := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = m.Document.ID
	}
	return ids
}
