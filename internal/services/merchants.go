package services

import "bank-statement-generator/internal/models"

// homeCities are the cities used for everyday purchases
var homeCities = []string{
	"Seattle, WA", "Tacoma, WA", "Bellevue, WA", "Kent, WA", "Everett, WA",
	"Renton, WA", "Auburn, WA", "Redmond, WA", "Lakewood, WA", "Federal Way, WA",
	"Bothell, WA", "Edmonds, WA", "Issaquah, WA", "Lynnwood, WA", "Puyallup, WA",
	"Bremerton, WA", "Olympia, WA", "Shoreline, WA", "Sammamish, WA", "Burien, WA",
	"Kirkland, WA", "Mukilteo, WA", "Gig Harbor, WA",
}

// homeDepartureCity is where trips start
const homeDepartureCity = "Seattle, WA"

var travelDestinations = []string{
	"Portland, OR", "San Francisco, CA", "Los Angeles, CA", "Las Vegas, NV",
	"Phoenix, AZ", "Denver, CO", "Chicago, IL", "New York, NY", "Boston, MA",
	"Miami, FL", "Honolulu, HI",
}

// merchantList is a named pool of merchants sharing a category
type merchantList struct {
	category string
	names    []string
}

var retailers = merchantList{models.CategoryShopping, []string{
	"Walmart", "Target", "Costco Wholesale", "Home Depot", "Kroger", "Fred Meyer",
	"QFC", "Whole Foods", "Safeway", "Best Buy", "Lowe's", "Trader Joe's",
	"Bartell Drugs", "PCC Community Markets", "Metropolitan Market",
}}

var restaurants = merchantList{models.CategoryDining, []string{
	"Starbucks", "McDonald's", "Subway", "Dick's Drive-In", "Ivar's", "Taco Time",
	"Applebee's", "Red Robin", "Anthony's", "The Ram", "MOD Pizza", "Panera Bread",
	"Chipotle", "Taco Bell", "Red Lobster",
}}

var gasStations = merchantList{models.CategoryTransportation, []string{
	"Shell", "Exxon", "Chevron", "BP", "76", "ARCO", "Mobil", "Conoco", "Texaco",
	"Safeway Gas", "Costco Gas", "Fred Meyer Gas", "AM/PM", "Circle K", "7-Eleven",
}}

var hotels = merchantList{models.CategoryTravel, []string{
	"Marriott Hotel", "Hilton Hotel", "Hyatt Hotel", "Sheraton Hotel", "Holiday Inn",
	"Best Western", "Westin Hotel", "Doubletree Hotel", "Courtyard Hotel", "Motel 6",
}}

var travelServices = merchantList{models.CategoryTravel, []string{
	"Uber", "Lyft", "Taxi Service", "Shuttle Express", "Airport Parking",
	"AVIS Rent-A-Car", "Enterprise Car Rental", "Hertz Car Rental", "Alaska Airlines",
	"Delta Airlines", "United Airlines", "American Airlines", "Southwest Airlines", "Amtrak",
}}

var attractions = merchantList{models.CategoryEntertainment, []string{
	"Museum of Art", "Science Center", "National Park", "Zoo Admission", "Aquarium",
	"Theme Park", "Concert Venue", "Movie Theater", "Broadway Show", "Tour Service",
}}

// Subsets used when building a trip
var (
	tripAirlines        = []string{"Alaska Airlines", "Delta Airlines", "United Airlines", "American Airlines", "Southwest Airlines"}
	tripRentalCompanies = []string{"AVIS Rent-A-Car", "Enterprise Car Rental", "Hertz Car Rental"}
	tripHotels          = []string{"Marriott Hotel", "Hilton Hotel", "Hyatt Hotel", "Sheraton Hotel", "Holiday Inn"}
	tripRideServices    = []string{"Uber", "Lyft", "Taxi Service"}
	tripAttractions     = []string{"Museum of Art", "Science Center", "Zoo Admission", "Aquarium", "Theme Park", "Movie Theater"}
)

// checkPayees are the businesses checks are written to
var checkPayees = []string{
	"ABC Property Management", "Reliable Auto Repair", "City Water & Power",
	"Johnson Dental Group", "Smith's Landscaping", "QuickMart Groceries",
	"Metropolitan Gas Company", "Express Delivery Service", "Westside Medical Center",
	"Premier Insurance Agency", "Quality Home Services", "First National Mortgage",
	"United Health Partners", "Tech Solutions Inc.", "Elite Fitness Center",
	"Green Valley Landscaping", "Sunrise Property Management", "Franklin Tax Services",
	"City Plumbing & Electric", "Capital Auto Insurance", "Northwest Dental Associates",
	"Golden State Utilities", "Westview Professional Center", "Heritage Financial Advisors",
	"Parkside Medical Group", "Neighborhood Hardware Store", "Riverside Educational Services",
	"Bayside Legal Consultants", "Oakwood Home Inspection", "Core Fitness & Wellness",
	"Precision Automotive Repair", "Valley View Property Rentals", "Eastside Grocery Cooperative",
	"Alpine Insurance Services", "Clearwater Plumbing Solutions", "Modern Office Supplies",
	"Evergreen Lawn Care", "Lakeview Pediatric Center", "Ocean Breeze Cleaning Services",
	"Summit Contractors Association",
}

func isHomeCity(city string) bool {
	for _, c := range homeCities {
		if c == city {
			return true
		}
	}
	return false
}
