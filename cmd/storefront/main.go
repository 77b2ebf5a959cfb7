package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/http"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/service"
	"storefront/internal/i18n"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/cache"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/mail"
	"storefront/internal/infra/otp"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		newCacheStore,
		newMessageCatalog,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCategoryRepository,
			postgres.NewProductRepository,
			postgres.NewWishlistRepository,
			postgres.NewUserRepository,
			postgres.NewCartRepository,
			postgres.NewAddressRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newOtpIssuer,
			newMailer,
		),
	)
}

// newCacheStore builds the lookup cache from the configured sizing.
func newCacheStore(cfg *config.Config) *cache.Store {
	return cache.New(cache.Config{
		Capacity:           cfg.Cache.Capacity,
		NumShards:          cfg.Cache.Shards,
		TTL:                cfg.Cache.TTL,
		EvictionPercentage: cfg.Cache.EvictionPercentage,
	})
}

// newMessageCatalog loads the locale catalog used to render error responses.
func newMessageCatalog(cfg *config.Config) (*i18n.Catalog, error) {
	return i18n.Load(cfg.Messages.Dir, cfg.Messages.Locale)
}

func newOtpIssuer(cfg *config.Config) service.OtpIssuer {
	return otp.NewGenerator(cfg.Otp.TTL)
}

// newMailer picks the outbound mail transport. The log mailer keeps local
// development free of SMTP credentials.
func newMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.Mail.Provider == "smtp" {
		return mail.NewSMTPMailer(mail.Config{
			Host:     cfg.Mail.Host,
			Port:     cfg.Mail.Port,
			Username: cfg.Mail.Username,
			Password: cfg.Mail.Password,
			From:     cfg.Mail.From,
		})
	}

	return mail.NewLogMailer(logger), nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewAccountService,
			impl.NewCategoryService,
			impl.NewProductService,
			impl.NewWishlistService,
			impl.NewCartService,
			impl.NewAddressService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAccountHandler,
			handler.NewCategoryHandler,
			handler.NewProductHandler,
			handler.NewWishlistHandler,
			handler.NewCartHandler,
			handler.NewAddressHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
