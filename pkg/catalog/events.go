package catalog

import "github.com/hkawano/stagedive/pkg/domain"

// curatedEvents is the bundled 2025 event list. IDs carry the "cat-" prefix
// so catalog entries can never collide with provider-sourced event IDs.
var curatedEvents = []domain.Event{
	{
		ID:          "cat-1",
		Title:       "ROCK IN JAPAN FESTIVAL 2025",
		Type:        domain.EventTypeFestival,
		Date:        "2025-08-09",
		Venue:       "国営ひたち海浜公園",
		Location:    "茨城県ひたちなか市",
		Artists:     []string{"Ado", "YOASOBI", "あいみょん", "King Gnu", "Mrs. GREEN APPLE"},
		Description: "日本最大級のロックフェスティバル2025年開催",
		TicketURL:   "https://rijfes.jp/",
		Price:       &domain.PriceRange{Min: 13500, Max: 16500, Currency: "JPY"},
	},
	{
		ID:          "cat-2",
		Title:       "Ado TOUR 2025 \"新章\"",
		Type:        domain.EventTypeTour,
		Date:        "2025-07-15",
		Venue:       "東京ドーム",
		Location:    "東京都文京区",
		Artists:     []string{"Ado"},
		Description: "Adoの最新アルバムツアー東京公演",
		TicketURL:   "https://ado-official.com/",
		Price:       &domain.PriceRange{Min: 9000, Max: 13500, Currency: "JPY"},
	},
	{
		ID:          "cat-3",
		Title:       "SUMMER SONIC 2025",
		Type:        domain.EventTypeFestival,
		Date:        "2025-08-16",
		Venue:       "ZOZOマリンスタジアム",
		Location:    "千葉県千葉市",
		Artists:     []string{"Ado", "YOASOBI", "ano", "Vaundy", "Official髭男dism"},
		Description: "2025年都市型音楽フェスティバル",
		TicketURL:   "https://summersonic.com/",
		Price:       &domain.PriceRange{Min: 15000, Max: 19000, Currency: "JPY"},
	},
	{
		ID:          "cat-4",
		Title:       "FUJI ROCK FESTIVAL 2025",
		Type:        domain.EventTypeFestival,
		Date:        "2025-07-25",
		Venue:       "苗場スキー場",
		Location:    "新潟県湯沢町",
		Artists:     []string{"ONE OK ROCK", "あいみょん", "back number", "フジファブリック"},
		Description: "緑に囲まれた山間のフェスティバル30周年記念",
		TicketURL:   "https://fujirock-eng.com/",
		Price:       &domain.PriceRange{Min: 17000, Max: 21000, Currency: "JPY"},
	},
	{
		ID:          "cat-5",
		Title:       "あいみょん TOUR 2025 \"心の声\"",
		Type:        domain.EventTypeLive,
		Date:        "2025-09-20",
		Venue:       "横浜アリーナ",
		Location:    "神奈川県横浜市",
		Artists:     []string{"あいみょん"},
		Description: "あいみょんの全国ツアー2025横浜公演",
		TicketURL:   "https://aimyon.com/",
		Price:       &domain.PriceRange{Min: 7500, Max: 9500, Currency: "JPY"},
	},
	{
		ID:          "cat-6",
		Title:       "Ado LIVE 2025 at Saitama Super Arena",
		Type:        domain.EventTypeLive,
		Date:        "2025-10-14",
		Venue:       "さいたまスーパーアリーナ",
		Location:    "埼玉県さいたま市",
		Artists:     []string{"Ado"},
		Description: "Ado 最新ライブ さいたまスーパーアリーナ公演",
		TicketURL:   "https://ado-official.com/",
		Price:       &domain.PriceRange{Min: 8500, Max: 12000, Currency: "JPY"},
	},
	{
		ID:          "cat-7",
		Title:       "COUNTDOWN JAPAN 25/26",
		Type:        domain.EventTypeFestival,
		Date:        "2025-12-29",
		Venue:       "幕張メッセ",
		Location:    "千葉県千葉市",
		Artists:     []string{"YOASOBI", "King Gnu", "Mrs. GREEN APPLE", "Vaundy", "ano"},
		Description: "年末恒例のカウントダウンフェスティバル",
		TicketURL:   "https://countdownjapan.jp/",
		Price:       &domain.PriceRange{Min: 12000, Max: 15000, Currency: "JPY"},
	},
	{
		ID:          "cat-8",
		Title:       "ONE OK ROCK WORLD TOUR 2025",
		Type:        domain.EventTypeTour,
		Date:        "2025-06-28",
		Venue:       "東京ドーム",
		Location:    "東京都文京区",
		Artists:     []string{"ONE OK ROCK"},
		Description: "ONE OK ROCK ワールドツアー東京ドーム公演",
		TicketURL:   "https://oneokrock.com/",
		Price:       &domain.PriceRange{Min: 9500, Max: 14000, Currency: "JPY"},
	},
	{
		ID:          "cat-9",
		Title:       "YOASOBI ARENA TOUR 2025",
		Type:        domain.EventTypeTour,
		Date:        "2025-08-05",
		Venue:       "大阪城ホール",
		Location:    "大阪府大阪市",
		Artists:     []string{"YOASOBI"},
		Description: "YOASOBIアリーナツアー大阪公演",
		TicketURL:   "https://yoasobi-music.jp/",
		Price:       &domain.PriceRange{Min: 8000, Max: 11000, Currency: "JPY"},
	},
	{
		ID:          "cat-10",
		Title:       "RISING SUN ROCK FESTIVAL 2025",
		Type:        domain.EventTypeFestival,
		Date:        "2025-08-15",
		Venue:       "石狩湾新港樽川ふ頭横野外特設ステージ",
		Location:    "北海道小樽市",
		Artists:     []string{"ONE OK ROCK", "back number", "サチモス", "フジファブリック"},
		Description: "北海道の大自然で開催される音楽フェスティバル",
		TicketURL:   "https://rsr.wess.co.jp/",
		Price:       &domain.PriceRange{Min: 14000, Max: 18000, Currency: "JPY"},
	},
}
