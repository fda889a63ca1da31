package memory

import "github.com/smartcity/tourdifficulty/internal/domain"

// DefaultAreas returns the built-in catalog entries in display order.
// Used when no database is configured.
func DefaultAreas() []domain.Area {
	return []domain.Area{
		// Jeonju
		{ID: "jeonju-hanok", Name: "Jeonju Hanok Village", NameKR: "전주 한옥마을", Region: "전주시", Category: "전통마을", BasePopularity: 0.85, Emoji: "🏘️"},
		{ID: "jeonju-nambu", Name: "Jeonju Nambu Market", NameKR: "남부시장", Region: "전주시", Category: "전통시장", BasePopularity: 0.7, Emoji: "🏪"},
		{ID: "jeonju-gaeksa", Name: "Jeonju Gaeksa", NameKR: "전주객사", Region: "전주시", Category: "문화유적", BasePopularity: 0.5, Emoji: "🏛️"},
		{ID: "jeonju-omokdae", Name: "Omokdae Pavilion", NameKR: "오목대", Region: "전주시", Category: "전망대", BasePopularity: 0.6, Emoji: "🏯"},
		{ID: "jeonju-gyeonggijeon", Name: "Gyeonggijeon Shrine", NameKR: "경기전", Region: "전주시", Category: "문화유적", BasePopularity: 0.75, Emoji: "⛩️"},
		{ID: "jeonju-pungnammun", Name: "Pungnammun Gate", NameKR: "풍남문", Region: "전주시", Category: "문화유적", BasePopularity: 0.55, Emoji: "🚪"},
		{ID: "jeonju-deokjin", Name: "Deokjin Park", NameKR: "덕진공원", Region: "전주시", Category: "공원", BasePopularity: 0.6, Emoji: "🌳"},

		// Rest of Jeollabuk-do
		{ID: "jeonbuk-maisan", Name: "Maisan Mountain", NameKR: "마이산", Region: "진안군", Category: "자연경관", BasePopularity: 0.7, Emoji: "⛰️"},
		{ID: "jeonbuk-naejangsan", Name: "Naejangsan National Park", NameKR: "내장산", Region: "정읍시", Category: "국립공원", BasePopularity: 0.75, Emoji: "🍁"},
		{ID: "jeonbuk-byeonsan", Name: "Byeonsanbando National Park", NameKR: "변산반도", Region: "부안군", Category: "국립공원", BasePopularity: 0.65, Emoji: "🏖️"},
		{ID: "jeonbuk-gunsan", Name: "Gunsan Modern History Museum", NameKR: "군산 근대역사박물관", Region: "군산시", Category: "박물관", BasePopularity: 0.6, Emoji: "🏛️"},
		{ID: "jeonbuk-imsil", Name: "Imsil Cheese Village", NameKR: "임실치즈마을", Region: "임실군", Category: "체험마을", BasePopularity: 0.55, Emoji: "🧀"},
		{ID: "jeonbuk-gochang", Name: "Gochang Dolmen Site", NameKR: "고창 고인돌", Region: "고창군", Category: "세계유산", BasePopularity: 0.5, Emoji: "🪨"},
		{ID: "jeonbuk-sunchang", Name: "Sunchang Gochujang Village", NameKR: "순창 고추장마을", Region: "순창군", Category: "체험마을", BasePopularity: 0.45, Emoji: "🌶️"},
	}
}
