package controllers

import (
	"net/http"

	"alumnet/app/dto"
	"alumnet/app/middleware"
	"alumnet/app/models"
	"alumnet/app/services"
)

type ProfileController struct{ Profiles *services.ProfileService }

func NewProfileController(profiles *services.ProfileService) *ProfileController {
	return &ProfileController{Profiles: profiles}
}

func (c *ProfileController) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	c.update(w, r, false)
}

func (c *ProfileController) UpdateAlumni(w http.ResponseWriter, r *http.Request) {
	c.update(w, r, true)
}

func (c *ProfileController) update(w http.ResponseWriter, r *http.Request, alumni bool) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeError(w, services.ErrUnauthorized)
		return
	}
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, services.ErrInvalidInput)
		return
	}
	fields := dto.ProfileFields{
		Name:        r.FormValue("name"),
		PhoneNo:     r.FormValue("phoneNo"),
		LinkedInURL: r.FormValue("linkedInUrl"),
		CollegeName: r.FormValue("collegeName"),
		CourseName:  r.FormValue("courseName"),
		CompanyName: r.FormValue("companyName"),
		Location:    r.FormValue("location"),
		Expertise:   r.FormValue("areaOfExpertise"),
	}
	file, header, err := r.FormFile("avatar")
	if err != nil {
		writeError(w, services.ErrMissingField)
		return
	}
	defer file.Close()

	var (
		u      *models.User
		svcErr error
	)
	if alumni {
		u, svcErr = c.Profiles.UpdateAlumni(r.Context(), claims.UserID, fields, header.Filename, file)
	} else {
		u, svcErr = c.Profiles.UpdateStudent(r.Context(), claims.UserID, fields, header.Filename, file)
	}
	if svcErr != nil {
		writeError(w, svcErr)
		return
	}
	writeJSON(w, http.StatusOK, userResponse(u), "profile updated")
}
