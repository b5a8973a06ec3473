package service

// taxonomyClass is one built-in keyword group used to bootstrap category
// matching before any transaction history exists. A category aligns with a
// class when its name contains the class name or one of the alias words.
type taxonomyClass struct {
	name     string
	aliases  []string
	keywords []string
}

// The table is static configuration: built once, never mutated. Single-word
// keywords are matched as whole words against the description; multi-word
// keywords as exact phrases.
var taxonomy = []taxonomyClass{
	{
		name:    "groceries",
		aliases: []string{"grocery", "food", "supermarket"},
		keywords: []string{
			"grocery", "groceries", "supermarket", "market", "produce",
			"walmart", "costco", "safeway", "kroger", "aldi",
			"milk", "bread", "store", "household",
		},
	},
	{
		name:    "transportation",
		aliases: []string{"transport", "travel", "commute", "car", "auto"},
		keywords: []string{
			"uber", "lyft", "taxi", "bus", "train", "metro", "transit",
			"gas", "fuel", "parking", "toll", "ticket", "fare", "airport",
			"gas station",
		},
	},
	{
		name:    "dining",
		aliases: []string{"restaurant", "dining", "eating", "takeout"},
		keywords: []string{
			"restaurant", "dinner", "lunch", "breakfast", "brunch",
			"coffee", "cafe", "pizza", "burger", "sushi", "takeout",
			"delivery", "mcdonald", "starbucks", "coffee shop",
		},
	},
	{
		name:    "entertainment",
		aliases: []string{"fun", "leisure", "hobby"},
		keywords: []string{
			"movie", "movies", "cinema", "theater", "concert", "tickets",
			"netflix", "spotify", "hulu", "game", "games", "steam",
			"subscription", "theme park",
		},
	},
	{
		name:    "shopping",
		aliases: []string{"shop", "clothes", "clothing"},
		keywords: []string{
			"amazon", "mall", "clothing", "clothes", "shoes", "target",
			"electronics", "online order", "retail",
		},
	},
	{
		name:    "utilities",
		aliases: []string{"utility", "bills"},
		keywords: []string{
			"electric", "electricity", "water", "internet", "phone",
			"cable", "sewer", "trash", "heating", "utility", "gas bill",
			"power bill",
		},
	},
	{
		name:    "healthcare",
		aliases: []string{"health", "medical", "doctor"},
		keywords: []string{
			"pharmacy", "doctor", "hospital", "dental", "dentist",
			"clinic", "medicine", "prescription", "cvs", "walgreens",
			"copay", "urgent care",
		},
	},
}
