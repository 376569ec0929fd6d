package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"reflect"
	"strings"
	"syscall"
	"time"

	"github.com/Drolfothesgnir/castparse/api"
	"github.com/Drolfothesgnir/castparse/entity"
	"github.com/Drolfothesgnir/castparse/tmpstore"
	"github.com/Drolfothesgnir/castparse/util"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

const janitorInterval = time.Minute

func main() {
	// reading .env config file
	config, err := util.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read config file")
	}

	if config.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Configure the validator to use json tags for field names in errors
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}

	parser, err := entity.NewParser(config.ParserOptions()...)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid parser configuration")
	}

	// catching interrupt signals for graceful shutdown
	// stop() or a signal catch makes context Done
	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	// waitgroup which manages goroutines for starting and stopping HTTP server
	waitGroup, ctx := errgroup.WithContext(ctx)

	store := newStore(ctx, waitGroup, config)

	RunGinServer(ctx, waitGroup, config, parser, store)

	err = waitGroup.Wait()
	if err != nil {
		log.Fatal().Err(err).Msg("error from wait group")
	}
}

// newStore connects to Redis when it is configured, and falls back to the in-process cache otherwise.
func newStore(ctx context.Context, waitGroup *errgroup.Group, config util.Config) tmpstore.Store {
	if config.RedisAddress != "" {
		rs := tmpstore.NewRedisStore(config.RedisAddress)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		// the cache is optional, the service works without it
		if err := rs.Ping(pingCtx); err != nil {
			log.Warn().Err(err).Str("address", config.RedisAddress).Msg("redis is unreachable, requests will be retried")
		} else {
			log.Info().Str("address", config.RedisAddress).Msg("using redis cache")
		}

		return rs
	}

	ms := tmpstore.NewMemoryStore()

	waitGroup.Go(func() error {
		ms.RunJanitor(ctx, janitorInterval)
		return nil
	})

	log.Info().Msg("using in-process cache")

	return ms
}

func RunGinServer(
	ctx context.Context,
	waitGroup *errgroup.Group,
	config util.Config,
	parser *entity.Parser,
	store tmpstore.Store,
) {
	service, err := api.NewService(config, parser, store)
	if err != nil {
		log.Error().Err(err).Msg("cannot create HTTP service")
		return
	}

	waitGroup.Go(func() error {
		log.Info().Msgf("start HTTP server at %s", config.HTTPServerAddress)

		err := service.Start()

		if err != nil {
			//http.ErrServerClosed is returned once the server begins shutting down
			// which is normal
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			log.Error().Err(err).Msg("cannot start HTTP server")
		}

		return err
	})

	waitGroup.Go(func() error {
		<-ctx.Done()

		log.Info().Msg("HTTP server: graceful shutdown")

		// give the server 5 secs to finish all his processes
		toCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := service.Shutdown(toCtx)

		if err != nil {
			log.Error().Err(err).Msg("cannot shutdown HTTP server gracefully")
		}

		// closing the cache connection
		if cerr := store.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("cannot close the cache store")
		}

		log.Info().Msg("HTTP server is stopped")

		return err
	})
}
