package response

import "trek-insurance/internal/data/catalog"

type OptionsResponse struct {
	Nationalities  []string                `json:"nationalities"`
	Locations      []string                `json:"locations"`
	Adventures     []string                `json:"adventures"`
	Relations      []string                `json:"relations"`
	CountryCodes   []catalog.CountryCode   `json:"country_codes"`
	PaymentMethods []catalog.PaymentMethod `json:"payment_methods"`
}
