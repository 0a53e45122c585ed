package controllers

import (
	"net/http"

	"alumnet/app/dto"
	"alumnet/app/services"
)

type SearchController struct{ Search *services.SearchService }

func NewSearchController(search *services.SearchService) *SearchController {
	return &SearchController{Search: search}
}

func (c *SearchController) SearchAndDiscover(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := dto.SearchFilters{
		Name:        q.Get("name"),
		CollegeName: q.Get("collegeName"),
		CourseName:  q.Get("courseName"),
		CompanyName: q.Get("companyName"),
		Location:    q.Get("location"),
		Expertise:   q.Get("areaOfExpertise"),
	}
	resp, err := c.Search.Search(filters)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp, "search successful")
}
