package domain

type Category struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Tickers []TickerSelection `json:"tickers"`
}

// Categories is the stock menu the simulator offers, grouped by sector.
var Categories = []Category{
	{
		ID:      "tech",
		Name:    "Technology",
		Tickers: []TickerSelection{
			{Symbol: "AAPL", Name: "Apple Inc.", Category: "tech"},
			{Symbol: "MSFT", Name: "Microsoft", Category: "tech"},
			{Symbol: "GOOGL", Name: "Alphabet", Category: "tech"},
			{Symbol: "AMZN", Name: "Amazon", Category: "tech"},
			{Symbol: "META", Name: "Meta Platforms", Category: "tech"},
			{Symbol: "NVDA", Name: "NVIDIA", Category: "tech"},
			{Symbol: "TSLA", Name: "Tesla", Category: "tech"},
			{Symbol: "ADBE", Name: "Adobe", Category: "tech"},
			{Symbol: "CRM", Name: "Salesforce", Category: "tech"},
			{Symbol: "INTC", Name: "Intel", Category: "tech"},
			{Symbol: "AMD", Name: "AMD", Category: "tech"},
			{Symbol: "ORCL", Name: "Oracle", Category: "tech"},
			{Symbol: "IBM", Name: "IBM", Category: "tech"},
			{Symbol: "CSCO", Name: "Cisco Systems", Category: "tech"},
			{Symbol: "QCOM", Name: "Qualcomm", Category: "tech"},
			{Symbol: "TXN", Name: "Texas Instruments", Category: "tech"},
			{Symbol: "AVGO", Name: "Broadcom", Category: "tech"},
			{Symbol: "NOW", Name: "ServiceNow", Category: "tech"},
			{Symbol: "INTU", Name: "Intuit", Category: "tech"},
			{Symbol: "AMAT", Name: "Applied Materials", Category: "tech"},
		},
	},
	{
		ID:      "healthcare",
		Name:    "Healthcare",
		Tickers: []TickerSelection{
			{Symbol: "JNJ", Name: "Johnson & Johnson", Category: "healthcare"},
			{Symbol: "UNH", Name: "UnitedHealth", Category: "healthcare"},
			{Symbol: "PFE", Name: "Pfizer", Category: "healthcare"},
			{Symbol: "ABBV", Name: "AbbVie", Category: "healthcare"},
			{Symbol: "MRK", Name: "Merck", Category: "healthcare"},
			{Symbol: "TMO", Name: "Thermo Fisher", Category: "healthcare"},
			{Symbol: "LLY", Name: "Eli Lilly", Category: "healthcare"},
			{Symbol: "ABT", Name: "Abbott Labs", Category: "healthcare"},
			{Symbol: "BMY", Name: "Bristol-Myers", Category: "healthcare"},
			{Symbol: "AMGN", Name: "Amgen", Category: "healthcare"},
			{Symbol: "GILD", Name: "Gilead Sciences", Category: "healthcare"},
			{Symbol: "CVS", Name: "CVS Health", Category: "healthcare"},
			{Symbol: "ISRG", Name: "Intuitive Surgical", Category: "healthcare"},
			{Symbol: "VRTX", Name: "Vertex Pharma", Category: "healthcare"},
			{Symbol: "MDT", Name: "Medtronic", Category: "healthcare"},
			{Symbol: "CI", Name: "Cigna", Category: "healthcare"},
			{Symbol: "DHR", Name: "Danaher", Category: "healthcare"},
			{Symbol: "ZTS", Name: "Zoetis", Category: "healthcare"},
			{Symbol: "SYK", Name: "Stryker", Category: "healthcare"},
			{Symbol: "HUM", Name: "Humana", Category: "healthcare"},
		},
	},
	{
		ID:      "finance",
		Name:    "Finance",
		Tickers: []TickerSelection{
			{Symbol: "JPM", Name: "JPMorgan Chase", Category: "finance"},
			{Symbol: "BAC", Name: "Bank of America", Category: "finance"},
			{Symbol: "WFC", Name: "Wells Fargo", Category: "finance"},
			{Symbol: "GS", Name: "Goldman Sachs", Category: "finance"},
			{Symbol: "MS", Name: "Morgan Stanley", Category: "finance"},
			{Symbol: "C", Name: "Citigroup", Category: "finance"},
			{Symbol: "V", Name: "Visa Inc.", Category: "finance"},
			{Symbol: "MA", Name: "Mastercard", Category: "finance"},
			{Symbol: "AXP", Name: "American Express", Category: "finance"},
			{Symbol: "BLK", Name: "BlackRock", Category: "finance"},
			{Symbol: "SCHW", Name: "Charles Schwab", Category: "finance"},
			{Symbol: "CB", Name: "Chubb Ltd", Category: "finance"},
			{Symbol: "MMC", Name: "Marsh McLennan", Category: "finance"},
			{Symbol: "PNC", Name: "PNC Financial", Category: "finance"},
			{Symbol: "USB", Name: "U.S. Bancorp", Category: "finance"},
			{Symbol: "TFC", Name: "Truist Financial", Category: "finance"},
			{Symbol: "COF", Name: "Capital One", Category: "finance"},
			{Symbol: "ICE", Name: "Intercontinental Exchange", Category: "finance"},
			{Symbol: "CME", Name: "CME Group", Category: "finance"},
			{Symbol: "AON", Name: "Aon plc", Category: "finance"},
		},
	},
	{
		ID:      "energy",
		Name:    "Energy",
		Tickers: []TickerSelection{
			{Symbol: "XOM", Name: "Exxon Mobil", Category: "energy"},
			{Symbol: "CVX", Name: "Chevron", Category: "energy"},
			{Symbol: "COP", Name: "ConocoPhillips", Category: "energy"},
			{Symbol: "SLB", Name: "Schlumberger", Category: "energy"},
			{Symbol: "EOG", Name: "EOG Resources", Category: "energy"},
			{Symbol: "OXY", Name: "Occidental", Category: "energy"},
			{Symbol: "PSX", Name: "Phillips 66", Category: "energy"},
			{Symbol: "MPC", Name: "Marathon Petroleum", Category: "energy"},
			{Symbol: "VLO", Name: "Valero Energy", Category: "energy"},
			{Symbol: "HAL", Name: "Halliburton", Category: "energy"},
			{Symbol: "WMB", Name: "Williams Companies", Category: "energy"},
			{Symbol: "KMI", Name: "Kinder Morgan", Category: "energy"},
			{Symbol: "OKE", Name: "ONEOK", Category: "energy"},
			{Symbol: "DVN", Name: "Devon Energy", Category: "energy"},
			{Symbol: "FANG", Name: "Diamondback Energy", Category: "energy"},
			{Symbol: "BKR", Name: "Baker Hughes", Category: "energy"},
			{Symbol: "HES", Name: "Hess Corporation", Category: "energy"},
			{Symbol: "TRGP", Name: "Targa Resources", Category: "energy"},
			{Symbol: "MRO", Name: "Marathon Oil", Category: "energy"},
			{Symbol: "EPD", Name: "Enterprise Products", Category: "energy"},
		},
	},
	{
		ID:      "consumer",
		Name:    "Consumer Goods",
		Tickers: []TickerSelection{
			{Symbol: "WMT", Name: "Walmart", Category: "consumer"},
			{Symbol: "HD", Name: "Home Depot", Category: "consumer"},
			{Symbol: "COST", Name: "Costco", Category: "consumer"},
			{Symbol: "PG", Name: "Procter & Gamble", Category: "consumer"},
			{Symbol: "KO", Name: "Coca-Cola", Category: "consumer"},
			{Symbol: "PEP", Name: "PepsiCo", Category: "consumer"},
			{Symbol: "NKE", Name: "Nike Inc.", Category: "consumer"},
			{Symbol: "SBUX", Name: "Starbucks", Category: "consumer"},
			{Symbol: "TGT", Name: "Target", Category: "consumer"},
			{Symbol: "TJX", Name: "TJX Companies", Category: "consumer"},
			{Symbol: "CMG", Name: "Chipotle", Category: "consumer"},
			{Symbol: "BKNG", Name: "Booking Holdings", Category: "consumer"},
			{Symbol: "ROST", Name: "Ross Stores", Category: "consumer"},
			{Symbol: "DG", Name: "Dollar General", Category: "consumer"},
			{Symbol: "DLTR", Name: "Dollar Tree", Category: "consumer"},
			{Symbol: "YUM", Name: "Yum! Brands", Category: "consumer"},
			{Symbol: "MAR", Name: "Marriott", Category: "consumer"},
		},
	},
	{
		ID:      "industrial",
		Name:    "Industrial",
		Tickers: []TickerSelection{
			{Symbol: "CAT", Name: "Caterpillar", Category: "industrial"},
			{Symbol: "HON", Name: "Honeywell", Category: "industrial"},
			{Symbol: "UPS", Name: "UPS", Category: "industrial"},
			{Symbol: "BA", Name: "Boeing", Category: "industrial"},
			{Symbol: "GE", Name: "GE Aerospace", Category: "industrial"},
			{Symbol: "RTX", Name: "RTX Corporation", Category: "industrial"},
			{Symbol: "DE", Name: "Deere & Company", Category: "industrial"},
			{Symbol: "LMT", Name: "Lockheed Martin", Category: "industrial"},
			{Symbol: "UNP", Name: "Union Pacific", Category: "industrial"},
			{Symbol: "MMM", Name: "3M Company", Category: "industrial"},
			{Symbol: "EMR", Name: "Emerson Electric", Category: "industrial"},
			{Symbol: "ITW", Name: "Illinois Tool Works", Category: "industrial"},
			{Symbol: "ETN", Name: "Eaton Corp", Category: "industrial"},
			{Symbol: "PH", Name: "Parker Hannifin", Category: "industrial"},
			{Symbol: "GD", Name: "General Dynamics", Category: "industrial"},
			{Symbol: "NSC", Name: "Norfolk Southern", Category: "industrial"},
			{Symbol: "CSX", Name: "CSX Corp", Category: "industrial"},
			{Symbol: "PCAR", Name: "PACCAR", Category: "industrial"},
			{Symbol: "WM", Name: "Waste Management", Category: "industrial"},
			{Symbol: "FDX", Name: "FedEx", Category: "industrial"},
		},
	},
}

func FindCategory(id string) (*Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			c := c
			return &c, true
		}
	}
	return nil, false
}

// LookupTicker fills in display metadata for a symbol from the catalog.
func LookupTicker(symbol string) (TickerSelection, bool) {
	for _, c := range Categories {
		for _, t := range c.Tickers {
			if t.Symbol == symbol {
				return t, true
			}
		}
	}
	return TickerSelection{Symbol: symbol}, false
}
