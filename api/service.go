package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Drolfothesgnir/castparse/entity"
	"github.com/Drolfothesgnir/castparse/tmpstore"
	"github.com/Drolfothesgnir/castparse/util"
	"github.com/gin-gonic/gin"
)

const (
	// api routes
	PingURL           = "/ping"
	EntitiesURL       = "/v1/entities"
	PostsEntitiesURL  = "/v1/posts/entities"
	RequestIDHeader   = "X-Request-Id"
	DefaultMaxTextLen = 10000
)

var (
	// api errors
	ErrInvalidParams = errors.New("invalid params")
	ErrInvalidBody   = errors.New("invalid post body")
	ErrTextTooLong   = errors.New("text is too long")
)

type Service struct {
	config util.Config
	parser *entity.Parser
	store  tmpstore.Store
	server *http.Server
	router *gin.Engine
}

// Returns new service instance with provided config, parser and cache store.
// The store may be nil, then nothing is cached.
func NewService(
	config util.Config,
	parser *entity.Parser,
	store tmpstore.Store,
) (*Service, error) {
	if parser == nil {
		return nil, errors.New("api: parser is required")
	}

	if config.MaxTextLength <= 0 {
		config.MaxTextLength = DefaultMaxTextLen
	}

	service := &Service{
		config: config,
		parser: parser,
		store:  store,
	}

	server := &http.Server{
		Addr: config.HTTPServerAddress,
	}

	// caps how long a client can take to send just the headers (blocks slowloris).
	server.ReadHeaderTimeout = 5 * time.Second
	// caps time to read the full request (incl. body).
	server.ReadTimeout = 10 * time.Second
	// caps time you’ll spend writing the response (no “forever hanging” clients)
	server.WriteTimeout = 15 * time.Second
	// how long to keep idle keep-alive connections open.
	server.IdleTimeout = 60 * time.Second

	service.setupRouter(server)

	service.server = server

	return service, nil
}

// Start runs the HTTP server
func (service *Service) Start() error {
	return service.server.ListenAndServe()
}

func (service *Service) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}
