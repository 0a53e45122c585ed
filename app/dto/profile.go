package dto

// ProfileFields carries the role-specific update form. Student updates use
// the first five; alumni updates additionally require the last three.
type ProfileFields struct {
	Name        string
	PhoneNo     string
	LinkedInURL string
	CollegeName string
	CourseName  string
	CompanyName string
	Location    string
	Expertise   string
}

// AvatarAsset is what the object store hands back for an uploaded avatar.
type AvatarAsset struct {
	URL string
	Key string
}
