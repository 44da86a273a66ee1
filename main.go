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

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/Codycody31/changerawr-sub002/api"
	"github.com/Codycody31/changerawr-sub002/markdown"
	"github.com/Codycody31/changerawr-sub002/rendercache"
	"github.com/Codycody31/changerawr-sub002/sanitize"
	"github.com/Codycody31/changerawr-sub002/util"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

func main() {
	// reading .env config file
	config, err := util.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read config file")
	}

	if config.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
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

	// catching interrupt signals for graceful shutdown
	// stop() or a signal catch makes context Done
	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	// waitgroup which manages goroutines for starting and stopping HTTP server
	waitGroup, ctx := errgroup.WithContext(ctx)

	RunGinServer(ctx, waitGroup, config)

	err = waitGroup.Wait()
	if err != nil {
		log.Fatal().Err(err).Msg("error from wait group")
	}
}

func RunGinServer(
	ctx context.Context,
	waitGroup *errgroup.Group,
	config util.Config,
) {
	cache := rendercache.NewStore(&config)

	engine := markdown.New(
		markdown.WithEngineDevMode(config.Environment == "development"),
		markdown.WithEngineSanitizer(sanitize.New(sanitize.Options{
			LossThreshold: config.SanitizeLossThreshold,
		})),
	)

	service, err := api.NewService(config, engine, cache)

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

		log.Info().Msg("render server is stopped")

		return err
	})
}
