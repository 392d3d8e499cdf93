package bootstrap

import (
	"time"

	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/brickfolio/property-portal/internal/config"
	"github.com/brickfolio/property-portal/internal/infra/db"
	"github.com/brickfolio/property-portal/internal/infra/logger"
	"github.com/brickfolio/property-portal/internal/modules/handler"
	"github.com/brickfolio/property-portal/internal/modules/model"
	"github.com/brickfolio/property-portal/internal/modules/repo"
	"github.com/brickfolio/property-portal/internal/modules/service"
	"github.com/brickfolio/property-portal/internal/pkg/security"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}

		if cfg.Telemetry.Enabled && cfg.Telemetry.OtlpEndpoint != "" {
			if err := db.RegisterOpenTelemetryPlugin(d); err != nil {
				return nil, err
			}
		}

		if cfg.Database.AutoMigrate {
			if err := d.AutoMigrate(
				&model.User{},
				&model.Property{},
				&model.PropertyImage{},
				&model.PortfolioProject{},
				&model.ServiceProject{},
				&model.PortfolioImage{},
				&model.Inquiry{},
			); err != nil {
				return nil, err
			}
		}
		return d, nil
	})

	// token codec
	do.Provide(inj, func(i *do.Injector) (*security.TokenCodec, error) {
		cfg := do.MustInvoke[*config.Config](i)
		ttl := time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute
		return security.NewTokenCodec(cfg.Auth.Secret, ttl), nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.UserRepo, error) {
		return repo.NewUserRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.PropertyRepo, error) {
		return repo.NewPropertyRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.PortfolioProjectRepo, error) {
		return repo.NewPortfolioProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ServiceProjectRepo, error) {
		return repo.NewServiceProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.InquiryRepo, error) {
		return repo.NewInquiryRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.AuthService, error) {
		return service.NewAuthService(
			do.MustInvoke[repo.UserRepo](i),
			do.MustInvoke[*security.TokenCodec](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.PropertyService, error) {
		return service.NewPropertyService(do.MustInvoke[repo.PropertyRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.PortfolioService, error) {
		return service.NewPortfolioService(do.MustInvoke[repo.PortfolioProjectRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ServiceProjectService, error) {
		return service.NewServiceProjectService(do.MustInvoke[repo.ServiceProjectRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.InquiryService, error) {
		return service.NewInquiryService(do.MustInvoke[repo.InquiryRepo](i)), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.AuthHandler, error) {
		return handler.NewAuthHandler(do.MustInvoke[service.AuthService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.PropertyHandler, error) {
		return handler.NewPropertyHandler(do.MustInvoke[service.PropertyService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.PortfolioHandler, error) {
		return handler.NewPortfolioHandler(do.MustInvoke[service.PortfolioService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ServiceProjectHandler, error) {
		return handler.NewServiceProjectHandler(do.MustInvoke[service.ServiceProjectService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.InquiryHandler, error) {
		return handler.NewInquiryHandler(do.MustInvoke[service.InquiryService](i)), nil
	})
	return inj
}
