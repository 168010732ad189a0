package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/KarthicSuRa/mcm-alerts-aws/internal/app/server/handlers"
	"github.com/KarthicSuRa/mcm-alerts-aws/internal/app/sockets"
	"github.com/KarthicSuRa/mcm-alerts-aws/internal/config"
	"github.com/KarthicSuRa/mcm-alerts-aws/internal/core/services"
	"github.com/KarthicSuRa/mcm-alerts-aws/pkg/middleware"
)

type Server struct {
	mux         *http.ServeMux
	log         *slog.Logger
	name        string
	addr        string
	apiHandler  *handlers.APIHandler
	wsHandler   *handlers.WSHandler
	pushHandler *handlers.PushHandler
	tokenSvc    *services.TokenService
}

func NewServer(
	log *slog.Logger,
	name, addr string,
	tokenSvc *services.TokenService,
	deviceSvc *services.DeviceService,
	commentSvc *services.CommentService,
	notificationSvc *services.NotificationService,
	lifecycleSvc *services.LifecycleService,
	table *sockets.Table,
	push config.PushConfig,
) *Server {
	s := &Server{
		mux:         http.NewServeMux(),
		log:         log,
		name:        name,
		addr:        addr,
		apiHandler:  handlers.NewAPIHandler(deviceSvc, commentSvc, notificationSvc, push),
		wsHandler:   handlers.NewWSHandler(table, lifecycleSvc),
		pushHandler: handlers.NewPushHandler(table),
		tokenSvc:    tokenSvc,
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	auth := middleware.AuthMiddleware(s.tokenSvc)

	// Public
	s.mux.HandleFunc("GET /healthz", s.apiHandler.Health)

	// Transport management plane. Kept off the public edge by deployment;
	// the resolver client is its only intended caller.
	s.mux.HandleFunc("POST /connections/{connection_id}", s.pushHandler.Push)
	s.mux.HandleFunc("DELETE /connections/{connection_id}", s.pushHandler.Disconnect)

	// Protected persistence glue: the JWT 'sub' claim lands in context.
	s.mux.Handle("POST /devices", auth(http.HandlerFunc(s.apiHandler.RegisterDevice)))
	s.mux.Handle("DELETE /devices/{playerId}", auth(http.HandlerFunc(s.apiHandler.UnregisterDevice)))
	s.mux.Handle("POST /comments", auth(http.HandlerFunc(s.apiHandler.CreateComment)))
	s.mux.Handle("PUT /notifications/{notification_id}", auth(http.HandlerFunc(s.apiHandler.UpdateNotification)))

	// Live transport
	s.mux.Handle("/ws", auth(http.HandlerFunc(s.wsHandler.Handler)))
}

func (s *Server) Start() error {
	handler := middleware.RequestLogger(s.log)(
		middleware.TracerMiddleware(s.name)(
			middleware.CORS(s.mux),
		),
	)
	server := &http.Server{
		Addr:         s.addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	s.log.Info("server starting", slog.String("addr", s.addr))
	return server.ListenAndServe()
}
