package enrich

import "regexp"

// Rule associates a category with lowercase keyword substrings. Rules live in
// a fixed ordered table; the first rule with any matching keyword wins.
type Rule struct {
	Category string
	Keywords []string
}

// BrandFix replaces a whole cleaned merchant string with a canonical brand
// name when the string contains the fragment (case-insensitive). The table is
// ordered; more specific fragments come first.
type BrandFix struct {
	Fragment string
	Name     string
}

// incomePatterns short-circuit categorization to "Income" regardless of the
// amount sign.
var incomePatterns = []string{
	"deposit",
	"payroll",
	"salary",
	"direct deposit",
	"refund",
	"transfer from",
	"from savings",
	"interest earned",
	"dividend",
}

// defaultRules is the built-in category table. Order is significant: "Cash"
// sits ahead of "Transfer" and "Banking" so ATM/withdrawal phrasing is not
// swallowed by the broader rules. Keywords match as plain substrings.
func defaultRules() []Rule {
	return []Rule{
		{Category: "Groceries", Keywords: []string{
			"lidl", "aldi", "rewe", "edeka", "kaufland", "netto", "penny",
			"walmart", "kroger", "safeway", "albertsons", "whole foods",
			"trader joe", "wegmans", "publix", "tesco", "sainsbury", "asda",
			"carrefour", "mercadona", "spar", "grocery", "supermarket",
			"supermarkt", "grocer",
		}},
		{Category: "Restaurants", Keywords: []string{
			"mcdonald", "burger king", "kfc", "subway", "wendy", "chipotle",
			"domino", "pizza", "taco bell", "starbucks", "dunkin", "cafe",
			"coffee", "restaurant", "doordash", "uber eats", "ubereats",
			"grubhub", "deliveroo", "lieferando", "diner", "bakery", "baeckerei",
		}},
		{Category: "Transport", Keywords: []string{
			"uber", "lyft", "taxi", "shell", "exxon", "chevron", "texaco",
			"aral", "esso", "tankstelle", "fuel", "gas station", "parking",
			"parkhaus", "transit", "metro", "mta", "bart", "amtrak",
			"deutsche bahn", "db vertrieb", "bvg", "toll",
		}},
		{Category: "Shopping", Keywords: []string{
			"amazon", "amzn", "ebay", "etsy", "target", "best buy", "costco",
			"home depot", "lowes", "ikea", "zalando", "otto", "h&m", "zara",
			"nike", "adidas", "macys", "nordstrom", "tj maxx", "marshalls",
		}},
		{Category: "Subscriptions", Keywords: []string{
			"netflix", "spotify", "hulu", "disney", "hbo", "paramount",
			"youtube premium", "apple.com", "icloud", "audible", "kindle",
			"adobe", "dropbox", "github", "patreon", "substack", "prime video",
			"membership", "subscription",
		}},
		{Category: "Utilities", Keywords: []string{
			"electric", "energie", "stadtwerke", "vattenfall", "con edison",
			"pg&e", "water", "sewer", "comcast", "xfinity", "spectrum",
			"verizon", "at&t", "t-mobile", "telekom", "vodafone", "o2",
			"internet", "utility", "utilities",
		}},
		{Category: "Housing", Keywords: []string{
			"rent", "miete", "mortgage", "hypothek", "landlord",
			"property management", "hoa", "wohnung",
		}},
		{Category: "Health", Keywords: []string{
			"pharmacy", "apotheke", "cvs", "walgreens", "rite aid", "doctor",
			"dentist", "arzt", "zahnarzt", "hospital", "clinic", "medical",
			"gym", "fitness", "mcfit", "krankenkasse",
		}},
		{Category: "Entertainment", Keywords: []string{
			"cinema", "kino", "theater", "theatre", "ticketmaster",
			"eventbrite", "steam", "playstation", "xbox", "nintendo",
			"concert", "museum",
		}},
		{Category: "Insurance", Keywords: []string{
			"insurance", "versicherung", "allianz", "axa", "geico",
			"state farm", "progressive", "aetna", "cigna",
		}},
		{Category: "Education", Keywords: []string{
			"tuition", "university", "universitaet", "college", "school",
			"udemy", "coursera", "skillshare",
		}},
		{Category: "Travel", Keywords: []string{
			"hotel", "hostel", "airbnb", "booking.com", "expedia", "marriott",
			"hilton", "hyatt", "lufthansa", "ryanair", "easyjet", "delta air",
			"united airlines", "airline", "flight",
		}},
		// Cash must pre-empt Transfer/Banking for ATM withdrawal phrasing.
		{Category: "Cash", Keywords: []string{
			"atm", "cash withdrawal", "withdrawal", "geldautomat", "bargeld",
			"cash",
		}},
		{Category: "Transfer", Keywords: []string{
			"transfer", "zelle", "venmo", "paypal", "wire", "ueberweisung",
			"überweisung", "revolut", "wise", "standing order", "dauerauftrag",
		}},
		{Category: "Banking", Keywords: []string{
			"fee", "service charge", "interest", "overdraft", "bank",
			"gebuehr", "gebühr", "entgelt",
		}},
	}
}

// noisePrefixes strips transactional markers from the front of an uppercased
// description. Applied in sequence, so several prefixes can come off one
// after another ("VISA POS LIDL" loses both VISA and POS).
var noisePrefixes = []*regexp.Regexp{
	regexp.MustCompile(`^(PAYPAL|PP)\s*\*\s*`),
	regexp.MustCompile(`^(SQ|SP|TST|PY)\s*\*\s*`),
	regexp.MustCompile(`^(VISA|MASTERCARD|MAESTRO|AMEX|DISCOVER)\s+`),
	regexp.MustCompile(`^(DEBIT|CREDIT)\s+CARD\s+`),
	regexp.MustCompile(`^CARD\s+PURCHASE\s+`),
	regexp.MustCompile(`^CHECKCARD\s+`),
	regexp.MustCompile(`^POS\s+`),
	regexp.MustCompile(`^(ONLINE|RECURRING|AUTOMATIC)\s+(PAYMENT\s+)?`),
	regexp.MustCompile(`^ACH\s+(DEBIT|CREDIT)\s+`),
	regexp.MustCompile(`^(EC|KARTENZAHLUNG|LASTSCHRIFT)\s+`),
}

// Cleaning-noise patterns, applied after prefix stripping.
var (
	longDigitRun   = regexp.MustCompile(`\d{4,}`)
	hashTag        = regexp.MustCompile(`#\d+`)
	shortDateFrag  = regexp.MustCompile(`\b\d{1,2}/\d{1,2}\b`)
	trailingZip    = regexp.MustCompile(`\s+\d{5}(-\d{4})?\s*$`)
	trailingCC     = regexp.MustCompile(`\s+(US|USA|DE|GB|UK|FR|NL|ES|IT|CA|AU)\s*$`)
	phoneShaped    = regexp.MustCompile(`\(?\d{3}\)?[-.\s]\d{3}[-.\s]?\d{4}`)
)

// defaultBrandFixes canonicalizes familiar brand spellings. More specific
// fragments come before their generic counterparts (uber eats before uber).
func defaultBrandFixes() []BrandFix {
	return []BrandFix{
		{Fragment: "amzn", Name: "Amazon"},
		{Fragment: "amazon", Name: "Amazon"},
		{Fragment: "wal-mart", Name: "Walmart"},
		{Fragment: "wal mart", Name: "Walmart"},
		{Fragment: "walmart", Name: "Walmart"},
		{Fragment: "mcdonald", Name: "McDonald's"},
		{Fragment: "starbucks", Name: "Starbucks"},
		{Fragment: "uber eats", Name: "Uber Eats"},
		{Fragment: "ubereats", Name: "Uber Eats"},
		{Fragment: "uber", Name: "Uber"},
		{Fragment: "doordash", Name: "DoorDash"},
		{Fragment: "netflix", Name: "Netflix"},
		{Fragment: "spotify", Name: "Spotify"},
		{Fragment: "paypal", Name: "PayPal"},
		{Fragment: "applebee", Name: "Applebee's"},
		{Fragment: "apple.com", Name: "Apple"},
		{Fragment: "youtube", Name: "YouTube"},
		{Fragment: "google", Name: "Google"},
		{Fragment: "microsoft", Name: "Microsoft"},
		{Fragment: "t-mobile", Name: "T-Mobile"},
		{Fragment: "7-eleven", Name: "7-Eleven"},
		{Fragment: "cvs", Name: "CVS"},
		{Fragment: "walgreens", Name: "Walgreens"},
		{Fragment: "ikea", Name: "IKEA"},
		{Fragment: "ebay", Name: "eBay"},
		{Fragment: "lidl", Name: "Lidl"},
		{Fragment: "aldi", Name: "Aldi"},
		{Fragment: "rewe", Name: "REWE"},
		{Fragment: "edeka", Name: "EDEKA"},
		{Fragment: "airbnb", Name: "Airbnb"},
		{Fragment: "whole foods", Name: "Whole Foods"},
		{Fragment: "trader joe", Name: "Trader Joe's"},
	}
}
