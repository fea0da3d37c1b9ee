package models

import "strings"

// City is a synthesized catalog entry derived from stop names. The ID is
// stable only within one derived batch, and the code is a display hint
// built from the first three characters of the name. Neither is a key;
// city identity throughout the system is the lowercased name.
type City struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// NewCity builds a City from a stop name and its 1-based position in the
// derived batch.
func NewCity(id int, name string) City {
	return City{
		ID:   id,
		Name: name,
		Code: cityCode(name),
	}
}

func cityCode(name string) string {
	runes := []rune(name)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return strings.ToUpper(string(runes))
}
