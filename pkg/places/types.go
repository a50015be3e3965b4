package places

// Status is the application-level status code carried in every Places Web
// Service response, independent of the HTTP status.
type Status string

const (
	StatusOK             Status = "OK"
	StatusZeroResults    Status = "ZERO_RESULTS"
	StatusOverQueryLimit Status = "OVER_QUERY_LIMIT"
	StatusRequestDenied  Status = "REQUEST_DENIED"
	StatusInvalidRequest Status = "INVALID_REQUEST"
	StatusNotFound       Status = "NOT_FOUND"
)

// Success reports whether the status carries results (ZERO_RESULTS is a
// successful empty response, not an error).
func (s Status) Success() bool {
	return s == StatusOK || s == StatusZeroResults
}

// RateLimited reports whether the status is the retry-after-delay quota code.
func (s Status) RateLimited() bool {
	return s == StatusOverQueryLimit
}

// Denied reports whether the status indicates a credential or entitlement
// problem.
func (s Status) Denied() bool {
	return s == StatusRequestDenied
}

// TextSearchRequest carries one page request. On continuation, PageToken is
// set and the service ignores the other parameters.
type TextSearchRequest struct {
	Query        string
	Location     string // "lat,lng" bias, optional
	RadiusMeters int    // optional, only with Location
	PageToken    string
}

// TextSearchResponse is the wire response of the Text Search endpoint.
type TextSearchResponse struct {
	Status        Status         `json:"status"`
	ErrorMessage  string         `json:"error_message,omitempty"`
	Results       []SearchResult `json:"results"`
	NextPageToken string         `json:"next_page_token,omitempty"`
}

// SearchResult is one place summary in a text-search page.
type SearchResult struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address,omitempty"`
	Vicinity         string   `json:"vicinity,omitempty"`
	BusinessStatus   string   `json:"business_status,omitempty"`
	Rating           *float64 `json:"rating,omitempty"`
	UserRatingsTotal *int     `json:"user_ratings_total,omitempty"`
	Types            []string `json:"types,omitempty"`
}

// DetailsResponse is the wire response of the Place Details endpoint.
type DetailsResponse struct {
	Status       Status        `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
	Result       DetailsResult `json:"result"`
}

// DetailsResult is the detail payload for one place.
type DetailsResult struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address,omitempty"`
	Vicinity         string   `json:"vicinity,omitempty"`
	PhoneNumber      string   `json:"formatted_phone_number,omitempty"`
	Website          string   `json:"website,omitempty"`
	Rating           *float64 `json:"rating,omitempty"`
	UserRatingsTotal *int     `json:"user_ratings_total,omitempty"`
	BusinessStatus   string   `json:"business_status,omitempty"`
	PriceLevel       *int     `json:"price_level,omitempty"`
	Types            []string `json:"types,omitempty"`
}

// detailsFields is the field list requested from the Details endpoint, kept
// to the attributes the Lead schema consumes.
const detailsFields = "place_id,name,formatted_address,vicinity,formatted_phone_number,website,rating,user_ratings_total,business_status,price_level,types"
