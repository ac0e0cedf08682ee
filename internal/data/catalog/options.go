package catalog

import "trek-insurance/internal/data/entity"

var Nationalities = []string{
	"Nepali", "Indian", "American", "British", "Canadian", "Australian",
	"Chinese", "Japanese", "Korean", "German", "French", "Italian",
	"Spanish", "Thai", "Malaysian", "Singaporean", "Other",
}

var Locations = []string{
	"Kathmandu", "Pokhara", "Lukla", "Jomsom", "Namche Bazaar",
	"Manang", "Lo Manthang", "Tatopani", "Ghandruk", "Poon Hill",
	"Gokyo", "Dingboche", "Lobuche", "Phakding", "Tengboche",
}

var Adventures = []string{
	"Everest Base Camp Trek",
	"Annapurna Circuit",
	"Langtang Valley Trek",
	"Manaslu Circuit",
	"Upper Mustang Trek",
	"Kailash Mansarovar Yatra",
	"Island Peak Climbing",
	"Mera Peak Climbing",
	"Other Adventure",
}

var Relations = []string{
	"Father", "Mother", "Guardian", "Sibling", "Relative", "Other",
}

type CountryCode struct {
	Code    string `json:"code"`
	Country string `json:"country"`
}

var CountryCodes = []CountryCode{
	{Code: "+977", Country: "Nepal"},
	{Code: "+91", Country: "India"},
	{Code: "+1", Country: "USA/Canada"},
	{Code: "+44", Country: "UK"},
	{Code: "+61", Country: "Australia"},
	{Code: "+86", Country: "China"},
	{Code: "+81", Country: "Japan"},
	{Code: "+82", Country: "South Korea"},
	{Code: "+49", Country: "Germany"},
	{Code: "+33", Country: "France"},
}

type PaymentMethod struct {
	ID          entity.PaymentMethod `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
}

var PaymentMethods = []PaymentMethod{
	{ID: entity.PaymentMethodCard, Name: "Credit/Debit Card", Description: "Visa, Mastercard, Amex"},
	{ID: entity.PaymentMethodConnectIPS, Name: "ConnectIPS", Description: "Bank transfer"},
	{ID: entity.PaymentMethodEsewa, Name: "eSewa", Description: "Digital wallet"},
	{ID: entity.PaymentMethodKhalti, Name: "Khalti", Description: "Digital wallet"},
}
