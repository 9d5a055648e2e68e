package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/vietanh2810/events-api/docs"
	v1 "github.com/vietanh2810/events-api/internal/api/handler/v1"
	"github.com/vietanh2810/events-api/internal/api/middleware"
	"github.com/vietanh2810/events-api/internal/config"
	"github.com/vietanh2810/events-api/internal/logger"
	"github.com/vietanh2810/events-api/internal/pkg/upload"
	"github.com/vietanh2810/events-api/internal/repository"
	"github.com/vietanh2810/events-api/internal/repository/dao"
	"github.com/vietanh2810/events-api/internal/service"
)

const basePath = "/api/v1"

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

type handlers struct {
	auth   *v1.AuthHandler
	person *v1.PersonHandler
	event  *v1.EventHandler
	admin  *v1.AdminHandler
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	personSvc, h := s.initHandlers(db)
	s.MountHandlers(h, personSvc)

	return s
}

func (s *Server) initHandlers(db *gorm.DB) (*service.PersonService, handlers) {
	personRepo := repository.NewPersonRepository(dao.NewPersonDAO(db))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	participantRepo := repository.NewParticipantRepository(dao.NewParticipantDAO(db))

	personSvc := service.NewPersonService(personRepo)
	authSvc := service.NewAuthService(personRepo)
	eventSvc := service.NewEventService(eventRepo, participantRepo)
	participationSvc := service.NewParticipationService(participantRepo)
	adminSvc := service.NewAdminService(eventRepo, participantRepo, personRepo, s.Config.API.AdminPageSize)
	images := upload.NewImageStore(s.Config.API.MediaRoot)

	return personSvc, handlers{
		auth:   v1.NewAuthHandler(s.Config.API, authSvc),
		person: v1.NewPersonHandler(personSvc),
		event:  v1.NewEventHandler(eventSvc, participationSvc, personSvc, images),
		admin:  v1.NewAdminHandler(adminSvc),
	}
}

func (s *Server) MountMiddlewares() {
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(logger.Middleware())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(h handlers, persons middleware.PersonGetter) {
	verifyJWT := middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT()

	public := s.Router.Group(basePath)
	{
		public.GET("/hi/", h.event.HandleHello)
		public.GET("/list/", h.event.HandleList)
		public.GET("/affiche/", h.event.HandleAffiche)
		public.GET("/detailsClass/:pk", h.event.HandleDetailsClass)

		public.POST("/auth/signup", h.auth.HandleSignup)
		public.POST("/auth/login", h.auth.HandleLogin)
	}

	events := s.Router.Group(basePath, verifyJWT)
	{
		events.GET("/details/:id", h.event.HandleDetails)
		events.POST("/delete/:id", h.event.HandleDelete)
		events.GET("/deleteClass/:pk", h.event.HandleDeleteClassConfirm)
		events.POST("/deleteClass/:pk", h.event.HandleDeleteClass)
		events.POST("/participer/:id", h.event.HandleParticiper)
		events.POST("/cancel/:id", h.event.HandleCancel)
		events.GET("/add/", h.event.HandleAddForm)
		events.POST("/add/", h.event.HandleAdd)
		events.GET("/update/:pk", h.event.HandleUpdateForm)
		events.POST("/update/:pk", h.event.HandleUpdate)

		events.GET("/persons/me", h.person.HandleGetMe)
		events.PATCH("/persons/me", h.person.HandleUpdateMe)
	}

	admin := s.Router.Group(basePath+"/admin", verifyJWT, middleware.RequireStaff(persons))
	{
		admin.GET("/events", h.admin.HandleListEvents)
		admin.POST("/events/actions/accept", h.admin.HandleAcceptEvents)
		admin.POST("/events/actions/refuse", h.admin.HandleRefuseEvents)
		admin.GET("/events/:id/participants", h.admin.HandleEventParticipants)
		admin.POST("/events/:id/participants", h.admin.HandleAddParticipants)
		admin.DELETE("/events/:id/participants/:cin", h.admin.HandleRemoveParticipant)
		admin.GET("/participants", h.admin.HandleListParticipants)
		admin.GET("/persons", h.admin.HandleSearchPersons)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.Static("/media", s.Config.API.MediaRoot)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Events API"
	docs.SwaggerInfo.Description = "Event publication and participation API."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
