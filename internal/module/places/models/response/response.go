package response

type Prediction struct {
	PlaceID     string `json:"place_id"`
	Description string `json:"description"`
}

type Autocomplete struct {
	Predictions []Prediction `json:"predictions"`
}

type PlaceDetails struct {
	PlaceID          string  `json:"place_id"`
	Name             string  `json:"name"`
	FormattedAddress string  `json:"formatted_address"`
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
}
