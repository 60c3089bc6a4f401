// Command seed-db prepares a PostgreSQL database for the boutique service:
// it runs migrations, loads the product catalog from a JSON file, installs
// the default site content and optionally registers an operator account.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/go-faster/errors"
	"golang.org/x/sync/errgroup"

	"github.com/maxpc/boutique/internal/domain/product"
	"github.com/maxpc/boutique/internal/storage/postgres"
)

// defaultContent seeds the editable page regions with their shipped text.
var defaultContent = map[string]string{
	"hero_title":    "MaxPC, dépannage et matériel informatique",
	"hero_subtitle": "Réparation, upgrade et PC reconditionnés près de chez vous",
	"shop_intro":    "Pièces testées en atelier, services sur rendez-vous",
	"contact_hours": "Du mardi au samedi, 9h-18h",
}

func main() {
	var (
		databaseURL  string
		productsFile string
		adminUserID  string
		adminEmail   string
	)

	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.StringVar(&productsFile, "products-file", "db/seed/products.json", "path to products JSON file")
	flag.StringVar(&adminUserID, "admin-user-id", "", "auth backend user id to register as operator")
	flag.StringVar(&adminEmail, "admin-email", "", "email of the operator account")
	flag.Parse()

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, databaseURL, productsFile, adminUserID, adminEmail); err != nil {
		slog.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("seed completed successfully")
}

func run(ctx context.Context, databaseURL, productsFile, adminUserID, adminEmail string) error {
	slog.Info("connecting to database")

	pool, err := postgres.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	slog.Info("running migrations")

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return seedProducts(ctx, postgres.NewProductRepository(pool), productsFile)
	})
	g.Go(func() error {
		return seedContent(ctx, postgres.NewContentRepository(pool))
	})
	if adminUserID != "" {
		g.Go(func() error {
			return seedAdmin(ctx, postgres.NewAdminDirectory(pool), adminUserID, adminEmail)
		})
	}
	return g.Wait()
}

func seedProducts(ctx context.Context, repo *postgres.ProductRepository, productsFile string) error {
	slog.Info("reading products file", slog.String("path", productsFile))

	data, err := os.ReadFile(productsFile)
	if err != nil {
		return errors.Wrap(err, "read products file")
	}

	var rows []product.Raw
	if err := json.Unmarshal(data, &rows); err != nil {
		return errors.Wrap(err, "parse products JSON")
	}

	slog.Info("inserting products", slog.Int("count", len(rows)))

	for _, row := range rows {
		p := row.Product()
		if err := repo.Insert(ctx, p); err != nil {
			return errors.Wrapf(err, "insert product %d", p.ID)
		}
		slog.Info("inserted product", slog.Int64("id", p.ID), slog.String("name", p.Name))
	}
	return nil
}

func seedContent(ctx context.Context, repo *postgres.ContentRepository) error {
	slog.Info("seeding site content", slog.Int("count", len(defaultContent)))

	for key, value := range defaultContent {
		if err := repo.Upsert(ctx, key, value); err != nil {
			return errors.Wrapf(err, "upsert content %q", key)
		}
	}
	return nil
}

func seedAdmin(ctx context.Context, dir *postgres.AdminDirectory, userID, email string) error {
	slog.Info("registering operator", slog.String("user_id", userID))

	if err := dir.AddMember(ctx, userID, email); err != nil {
		return errors.Wrap(err, "register operator")
	}
	return nil
}
