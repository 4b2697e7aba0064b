package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shareit/internal/middleware"
	"shareit/internal/model"
)

func (srv HTTPServer) mapHandlers() {
	mw := middleware.New(srv.l, srv.rateLimit)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerDomainRoutes(srv.gin.Group(""), mw)
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(mw.Recovery(), mw.RequestID(), mw.AccessLog(), mw.RateLimit())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Running in production mode")
	} else {
		srv.l.Infof(ctx, "Running in %s mode", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires every domain. Users come first: the other usecases depend on user.UseCase.
func (srv HTTPServer) registerDomainRoutes(rg *gin.RouterGroup, mw middleware.Middleware) {
	ctx := context.Background()

	userUC := srv.setupUserDomain(ctx, rg)
	repos := srv.newSharedRepositories()

	srv.setupItemDomain(ctx, rg, mw, repos, userUC)
	srv.setupBookingDomain(ctx, rg, mw, repos, userUC)
	srv.setupRequestDomain(ctx, rg, mw, repos, userUC)
}
