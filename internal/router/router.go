package router

import (
	"auctions/internal/config"
	"auctions/internal/handlers"
	"auctions/internal/middleware"
	"auctions/internal/repository"
	"auctions/internal/services"
	"auctions/web"
	"io/fs"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const sessionName = "auctions_session"

// New builds the engine with sessions, templates, static assets and every route.
func New(cfg *config.Config, svc *services.AuctionService, store repository.Store) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	// Setup Sessions
	cookieStore := cookie.NewStore([]byte(cfg.SessionSecret))
	cookieStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 14,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, cookieStore))

	templates, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		panic(err)
	}
	r.HTMLRender = LoadTemplates(templates)

	static, err := fs.Sub(web.Static, "static")
	if err != nil {
		panic(err)
	}
	r.StaticFS("/static", http.FS(static))

	r.Use(middleware.LoadUser(store))

	RegisterRoutes(r, cfg, svc)

	r.NoRoute(func(c *gin.Context) {
		handlers.RenderError(c, http.StatusNotFound, "Page not found.")
	})
	return r
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, svc *services.AuctionService) {
	// Handlers
	authHandler := handlers.NewAuthHandler(svc)
	listingHandler := handlers.NewListingHandler(svc)
	categoryHandler := handlers.NewCategoryHandler(svc)
	watchlistHandler := handlers.NewWatchlistHandler(svc)
	userHandler := handlers.NewUserHandler(svc)
	notificationHandler := handlers.NewNotificationHandler(svc)
	seoHandler := handlers.NewSEOHandler(svc, cfg.SiteURL)

	// 公共路由 (Public Routes)
	r.GET("/", listingHandler.Index)                  // 进行中的拍卖
	r.GET("/listing/:id", listingHandler.Detail)      // 拍品详情页
	r.GET("/categories", categoryHandler.Categories)  // 分类菜单 / 分类列表
	r.POST("/categories", categoryHandler.Categories) // 分类表单提交
	r.GET("/robots.txt", seoHandler.RobotsTxt)
	r.GET("/sitemap.xml", seoHandler.SitemapXML)

	r.GET("/register", authHandler.ShowRegister) // 注册页面
	r.POST("/register", authHandler.Register)    // 提交注册
	r.GET("/login", authHandler.ShowLogin)       // 登录页面
	r.POST("/login", authHandler.Login)          // 提交登录
	r.POST("/logout", authHandler.Logout)        // 退出登录

	// 受保护路由 (Protected Routes)
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/create", listingHandler.ShowCreate)          // 创建拍品页面
		authorized.POST("/create", listingHandler.Create)             // 提交创建拍品
		authorized.POST("/bid/:id", listingHandler.PlaceBid)          // 出价
		authorized.POST("/end/:id", listingHandler.EndAuction)        // 结束拍卖
		authorized.POST("/comment/:id", listingHandler.CreateComment) // 发表评论

		authorized.GET("/watchlist", watchlistHandler.List)     // 关注列表
		authorized.POST("/add/:id", watchlistHandler.Add)       // 加入关注
		authorized.POST("/remove/:id", watchlistHandler.Remove) // 取消关注

		authorized.GET("/sales", userHandler.Sales)         // 我卖出的
		authorized.GET("/purchases", userHandler.Purchases) // 我拍到的

		authorized.GET("/notifications", notificationHandler.List)              // 通知列表
		authorized.POST("/notifications/read-all", notificationHandler.ReadAll) // 全部通知标记为已读
		authorized.POST("/notifications/:id/read", notificationHandler.Read)    // 标记单条通知为已读
	}
}
