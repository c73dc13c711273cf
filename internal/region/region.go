// Package region holds the static registry of supported release regions.
package region

// Region is a supported market identified by its ISO 3166-1 alpha-2 code.
type Region struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Default is the region used when callers do not specify one.
const Default = "US"

// UnknownName is the display name returned for codes outside the registry.
const UnknownName = "Unknown"

// supported is the full registry. Ordering is registration order and is
// stable; UI region pickers present the list as-is.
var supported = []Region{
	{Code: "US", Name: "United States"},
	{Code: "GB", Name: "United Kingdom"},
	{Code: "CA", Name: "Canada"},
	{Code: "AU", Name: "Australia"},
	{Code: "IN", Name: "India"},
	{Code: "JP", Name: "Japan"},
	{Code: "KR", Name: "South Korea"},
	{Code: "FR", Name: "France"},
	{Code: "DE", Name: "Germany"},
	{Code: "IT", Name: "Italy"},
	{Code: "ES", Name: "Spain"},
	{Code: "BR", Name: "Brazil"},
	{Code: "MX", Name: "Mexico"},
	{Code: "RU", Name: "Russia"},
	{Code: "CN", Name: "China"},
	{Code: "ZA", Name: "South Africa"},
	{Code: "NG", Name: "Nigeria"},
	{Code: "EG", Name: "Egypt"},
	{Code: "SA", Name: "Saudi Arabia"},
	{Code: "AE", Name: "United Arab Emirates"},
	{Code: "TH", Name: "Thailand"},
	{Code: "ID", Name: "Indonesia"},
	{Code: "MY", Name: "Malaysia"},
	{Code: "SG", Name: "Singapore"},
	{Code: "AR", Name: "Argentina"},
	{Code: "CL", Name: "Chile"},
	{Code: "CO", Name: "Colombia"},
	{Code: "SE", Name: "Sweden"},
	{Code: "NO", Name: "Norway"},
	{Code: "DK", Name: "Denmark"},
	{Code: "FI", Name: "Finland"},
	{Code: "NL", Name: "Netherlands"},
	{Code: "BE", Name: "Belgium"},
	{Code: "CH", Name: "Switzerland"},
	{Code: "AT", Name: "Austria"},
	{Code: "PL", Name: "Poland"},
	{Code: "TR", Name: "Turkey"},
	{Code: "IL", Name: "Israel"},
	{Code: "NZ", Name: "New Zealand"},
}

// List returns the supported regions in registration order.
// The returned slice is a copy; callers may modify it freely.
func List() []Region {
	out := make([]Region, len(supported))
	copy(out, supported)
	return out
}

// Lookup returns the registered region for code.
func Lookup(code string) (Region, bool) {
	for _, r := range supported {
		if r.Code == code {
			return r, true
		}
	}
	return Region{}, false
}

// Name returns the display name registered for code, or UnknownName when
// the code is not in the registry.
func Name(code string) string {
	if r, ok := Lookup(code); ok {
		return r.Name
	}
	return UnknownName
}

// IsSupported reports whether code is in the registry.
func IsSupported(code string) bool {
	_, ok := Lookup(code)
	return ok
}
