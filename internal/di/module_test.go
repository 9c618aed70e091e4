package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/merchline/merchline/internal/app"
	"github.com/merchline/merchline/internal/cache"
	"github.com/merchline/merchline/internal/config"
	"github.com/merchline/merchline/internal/domain/repository"
	"github.com/merchline/merchline/internal/storage/postgres"
	"github.com/merchline/merchline/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:        ":0",
		DatabaseURI:       "postgres://stub",
		JWTSecret:         "secret",
		ReconcileInterval: time.Millisecond,
		WorkerPoolSize:    1,
		ShutdownTimeout:   time.Millisecond,
		MaxReconcileBatch: 1,
		ResaleMarkup:      0.2,
		CatalogCacheTTL:   time.Minute,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	var facade *app.CommerceFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(test.NewUserRepositoryStub())),
			fx.Replace(repository.ProductRepository(&test.ProductRepositoryStub{})),
			fx.Replace(repository.InventoryRepository(&test.InventoryRepositoryStub{})),
			fx.Replace(repository.CartRepository(&test.CartRepositoryStub{})),
			fx.Replace(repository.OrderRepository(&test.OrderRepositoryStub{})),
			fx.Replace(repository.TransactionRepository(&test.TransactionRepositoryStub{})),
			fx.Replace(repository.ReportRepository(&test.ReportRepositoryStub{})),
			fx.Replace(cache.CatalogCache(&test.CatalogCacheStub{})),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected commerce facade instance")
	}
}
