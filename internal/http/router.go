package http

import (
	"log/slog"
	"strings"

	"github.com/MaxFerr/hair-cut-api/internal/config"
	"github.com/MaxFerr/hair-cut-api/internal/http/handlers"
	"github.com/MaxFerr/hair-cut-api/internal/http/middleware"
	"github.com/MaxFerr/hair-cut-api/internal/services"
	"github.com/MaxFerr/hair-cut-api/internal/storage"
	"github.com/gin-gonic/gin"
)

type Dependencies struct {
	Config      *config.Config
	Auth        *services.AuthService
	Reset       *services.ResetService
	Articles    *services.ArticleService
	Comments    *services.CommentService
	Contact     *services.ContactService
	Uploads     *storage.Store
	Logger      *slog.Logger
	RateLimiter *middleware.RateLimiter
}

// NewRouter wires the whole public surface. The route names are the external
// contract the frontend was built against, so they stay verbatim.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(deps.Config.AllowedOrigins))

	authHandler := handlers.NewAuthHandler(deps.Auth)
	resetHandler := handlers.NewResetHandler(deps.Reset)
	articleHandler := handlers.NewArticleHandler(deps.Articles)
	commentHandler := handlers.NewCommentHandler(deps.Comments)
	contactHandler := handlers.NewContactHandler(deps.Contact)
	uploadHandler := handlers.NewUploadHandler(deps.Uploads, deps.Config.MaxUploadBytes)

	router.GET("/healthz", handlers.Health)
	router.Static(strings.TrimSuffix(storage.PublicPath, "/"), deps.Uploads.Dir())

	router.GET("/", articleHandler.List)
	router.GET("/article/:id", articleHandler.Get)
	router.GET("/comments/:id", commentHandler.ListComments)
	router.GET("/commentresponse/:id", commentHandler.ListResponses)
	router.GET("/resetPass/:token", resetHandler.Lookup)
	router.GET("/admin/:id", authHandler.Admin)

	// Credential and mail endpoints sit behind the per-IP limiter.
	limited := router.Group("")
	limited.Use(deps.RateLimiter.Middleware())
	{
		limited.POST("/register", authHandler.Register)
		limited.POST("/login", authHandler.Login)
		limited.POST("/forgot", resetHandler.Forgot)
		limited.PUT("/updatePassword", resetHandler.UpdatePassword)
		limited.POST("/sendmail", contactHandler.SendMail)
	}

	router.POST("/newarticle", articleHandler.Create)
	router.POST("/upload", uploadHandler.Upload)
	router.PUT("/modifArticle", articleHandler.Update)
	router.POST("/sendComment", commentHandler.SendComment)
	router.POST("/sendResponse", commentHandler.SendResponse)
	router.DELETE("/deleteArticle/:id", articleHandler.Delete)
	router.DELETE("/deleteArticleS/:id", articleHandler.DeleteSimple)
	router.DELETE("/deleteComment/:id", commentHandler.DeleteComment)
	router.DELETE("/deleteCommentResp/:id", commentHandler.DeleteResponse)

	return router
}
