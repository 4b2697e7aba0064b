package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	bookingHTTP "shareit/internal/booking/delivery/http"
	bookingRepo "shareit/internal/booking/repository"
	bookingPostgre "shareit/internal/booking/repository/postgre"
	bookingUC "shareit/internal/booking/usecase"
	itemHTTP "shareit/internal/item/delivery/http"
	itemRepo "shareit/internal/item/repository"
	itemPostgre "shareit/internal/item/repository/postgre"
	itemUC "shareit/internal/item/usecase"
	"shareit/internal/middleware"
	requestHTTP "shareit/internal/request/delivery/http"
	requestRepo "shareit/internal/request/repository"
	requestPostgre "shareit/internal/request/repository/postgre"
	requestUC "shareit/internal/request/usecase"
	"shareit/internal/user"
	userHTTP "shareit/internal/user/delivery/http"
	userCache "shareit/internal/user/repository/cache"
	userPostgre "shareit/internal/user/repository/postgre"
	userUCPkg "shareit/internal/user/usecase"
)

// sharedRepositories are read across domains: items need booking history, bookings need items.
type sharedRepositories struct {
	item    itemRepo.Repository
	booking bookingRepo.Repository
	request requestRepo.Repository
}

func (srv HTTPServer) newSharedRepositories() sharedRepositories {
	return sharedRepositories{
		item:    itemPostgre.New(srv.postgresDB, srv.l),
		booking: bookingPostgre.New(srv.postgresDB, srv.l),
		request: requestPostgre.New(srv.postgresDB, srv.l),
	}
}

func (srv HTTPServer) setupUserDomain(ctx context.Context, rg *gin.RouterGroup) user.UseCase {
	repo := userPostgre.New(srv.postgresDB, srv.l)
	if srv.redis != nil {
		repo = userCache.New(repo, srv.redis, srv.userTTL, srv.l)
		srv.l.Infof(ctx, "User cache enabled (ttl %s)", srv.userTTL)
	}

	uc := userUCPkg.New(repo, srv.l)
	userHTTP.RegisterRoutes(rg, userHTTP.New(srv.l, uc))

	srv.l.Infof(ctx, "User domain registered")
	return uc
}

func (srv HTTPServer) setupItemDomain(ctx context.Context, rg *gin.RouterGroup, mw middleware.Middleware, repos sharedRepositories, userUC user.UseCase) {
	uc := itemUC.New(srv.l, repos.item, repos.booking, repos.request, userUC)
	itemHTTP.RegisterRoutes(rg, itemHTTP.New(srv.l, uc), mw)

	srv.l.Infof(ctx, "Item domain registered")
}

func (srv HTTPServer) setupBookingDomain(ctx context.Context, rg *gin.RouterGroup, mw middleware.Middleware, repos sharedRepositories, userUC user.UseCase) {
	uc := bookingUC.New(srv.l, repos.booking, repos.item, userUC, srv.calendar, srv.calendarCfg)
	bookingHTTP.RegisterRoutes(rg, bookingHTTP.New(srv.l, uc), mw)

	if srv.calendar == nil {
		srv.l.Infof(ctx, "Booking domain registered (calendar publishing disabled)")
		return
	}
	srv.l.Infof(ctx, "Booking domain registered")
}

func (srv HTTPServer) setupRequestDomain(ctx context.Context, rg *gin.RouterGroup, mw middleware.Middleware, repos sharedRepositories, userUC user.UseCase) {
	uc := requestUC.New(srv.l, repos.request, repos.item, userUC)
	requestHTTP.RegisterRoutes(rg, requestHTTP.New(srv.l, uc), mw)

	srv.l.Infof(ctx, "Request domain registered")
}
