package initialize

import (
	"fmt"
	"net/http"
	"time"

	"alumnet/app/controllers"
	"alumnet/app/db"
	jwtutil "alumnet/app/jwt"
	"alumnet/app/middleware"
	"alumnet/app/models"
	"alumnet/app/repo"
	"alumnet/app/services"
	"alumnet/app/storage"
	"alumnet/config"
	"alumnet/global"
	"alumnet/router"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Cfg      *config.Config
	DB       *gorm.DB
	Router   http.Handler
	Auth     *controllers.AuthController
	Profiles *controllers.ProfileController
	Follow   *controllers.FollowController
	Search   *controllers.SearchController
	Users    *services.UserService
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	gdb, err := db.Connect(db.Config{Host: cfg.DB.Host, Port: cfg.DB.Port, User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	if err := gdb.AutoMigrate(&models.User{}, &models.Follower{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	if cfg.Redis.Addr != "" {
		global.Rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Pass, DB: cfg.Redis.DB})
	}

	// Repositories and services
	userRepo := repo.NewUserRepository(gdb)
	followerRepo := repo.NewFollowerRepository(gdb)
	userSvc := services.NewUserService(userRepo)
	followerSvc := services.NewFollowerService(followerRepo)
	searchSvc := services.NewSearchService(userRepo)

	var uploader services.AvatarUploader
	if cfg.S3.Bucket != "" {
		if up := storage.NewUploader(cfg.S3); up != nil {
			uploader = up
		}
	}
	profileSvc := services.NewProfileService(userRepo, uploader)

	// Controllers
	signer := &jwtutil.Signer{
		AccessSecret:  []byte(cfg.JWT.AccessSecret),
		RefreshSecret: []byte(cfg.JWT.RefreshSecret),
		Issuer:        cfg.JWT.Issuer,
		AccessExp:     time.Duration(cfg.JWT.AccessExpMin) * time.Minute,
		RefreshExp:    time.Duration(cfg.JWT.RefreshExpDay) * 24 * time.Hour,
	}
	denylist := jwtutil.NewDenylist(global.Rdb)
	authCtrl := controllers.NewAuthController(userSvc, signer, denylist)
	profileCtrl := controllers.NewProfileController(profileSvc)
	followCtrl := controllers.NewFollowController(followerSvc)
	searchCtrl := controllers.NewSearchController(searchSvc)
	mw := &middleware.Auth{Signer: signer, Denylist: denylist}

	h := router.NewRouter(authCtrl, profileCtrl, followCtrl, searchCtrl, mw)
	h = middleware.Logging(h)

	return &App{Cfg: cfg, DB: gdb, Router: h, Auth: authCtrl, Profiles: profileCtrl, Follow: followCtrl, Search: searchCtrl, Users: userSvc}, nil
}
