package dto

type SearchFilters struct {
	Name        string
	CollegeName string
	CourseName  string
	CompanyName string
	Location    string
	Expertise   string
}

// SearchResult deliberately omits role on top of the usual credential and
// token exclusions.
type SearchResult struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	PhoneNo     string `json:"phoneNo,omitempty"`
	LinkedInURL string `json:"linkedInUrl,omitempty"`
	CollegeName string `json:"collegeName,omitempty"`
	CourseName  string `json:"courseName,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	Location    string `json:"location,omitempty"`
	Expertise   string `json:"areaOfExpertise,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

type SearchResponse struct {
	Count   int            `json:"count"`
	Results []SearchResult `json:"results"`
}
