package entities

// Provinces maps the 16 NFZ voivodeship branch codes to display names.
// The registry rejects any province parameter outside this set.
var Provinces = map[string]string{
	"01": "DOLNOŚLĄSKIE",
	"02": "KUJAWSKO-POMORSKIE",
	"03": "LUBELSKIE",
	"04": "LUBUSKIE",
	"05": "ŁÓDZKIE",
	"06": "MAŁOPOLSKIE",
	"07": "MAZOWIECKIE",
	"08": "OPOLSKIE",
	"09": "PODKARPACKIE",
	"10": "PODLASKIE",
	"11": "POMORSKIE",
	"12": "ŚLĄSKIE",
	"13": "ŚWIĘTOKRZYSKIE",
	"14": "WARMIŃSKO-MAZURSKIE",
	"15": "WIELKOPOLSKIE",
	"16": "ZACHODNIOPOMORSKIE",
}

// ValidProvince reports whether code is one of the 16 known branch codes.
func ValidProvince(code string) bool {
	_, ok := Provinces[code]
	return ok
}

// ProvinceName returns the display name for a province code, or "" when the
// code is unknown.
func ProvinceName(code string) string {
	return Provinces[code]
}
