package router

import (
	"net/http"

	"alumnet/app/controllers"
	"alumnet/app/middleware"
)

func NewRouter(authCtrl *controllers.AuthController, profileCtrl *controllers.ProfileController, followCtrl *controllers.FollowController, searchCtrl *controllers.SearchController, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("POST /users/register", authCtrl.Register)
	mux.HandleFunc("POST /users/login", authCtrl.Login)

	// authenticated
	mux.Handle("POST /users/logout", mw.RequireAuth(http.HandlerFunc(authCtrl.Logout)))
	mux.Handle("POST /users/change-password", mw.RequireAuth(http.HandlerFunc(authCtrl.ChangePassword)))
	mux.Handle("GET /users/my-profile", mw.RequireAuth(http.HandlerFunc(authCtrl.MyProfile)))
	mux.Handle("POST /users/update-student", mw.RequireAuth(http.HandlerFunc(profileCtrl.UpdateStudent)))
	mux.Handle("POST /users/update-alumni", mw.RequireAuth(http.HandlerFunc(profileCtrl.UpdateAlumni)))
	mux.Handle("GET /users/search-and-discover", mw.RequireAuth(http.HandlerFunc(searchCtrl.SearchAndDiscover)))

	mux.Handle("GET /follow/get-followers", mw.RequireAuth(http.HandlerFunc(followCtrl.GetFollowers)))
	mux.Handle("GET /follow/get-followings", mw.RequireAuth(http.HandlerFunc(followCtrl.GetFollowing)))
	mux.Handle("POST /follow/{userId}", mw.RequireAuth(http.HandlerFunc(followCtrl.Toggle)))

	return mux
}
