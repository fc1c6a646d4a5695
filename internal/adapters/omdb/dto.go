package omdb

// -- API response types ------------------------------------------------------

// searchResponse is the body returned by a keyword search (?s=).
type searchResponse struct {
	Search       []SearchRecord `json:"Search"`
	TotalResults string         `json:"totalResults"`
	Response     string         `json:"Response"`
	Error        string         `json:"Error"`
}

// SearchRecord is one entry of a search response. It carries no rating data.
type SearchRecord struct {
	IMDbID string `json:"imdbID"`
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

// DetailRecord is the body returned by an identifier lookup (?i=).
type DetailRecord struct {
	IMDbID     string `json:"imdbID"`
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Released   string `json:"Released"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	Poster     string `json:"Poster"`
	IMDbRating string `json:"imdbRating"`
	IMDbVotes  string `json:"imdbVotes"`
	Response   string `json:"Response"`
	Error      string `json:"Error"`
}

// ok reports whether the provider-level status field signals success.
func ok(response string) bool {
	return response == "True"
}
