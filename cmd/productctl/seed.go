package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"productmgmt/internal/dto"
	"productmgmt/internal/model"
	"productmgmt/internal/repository"
	"productmgmt/internal/service"
)

var resetProducts bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo categories and products",
	Long: `Load a small demo catalogue. Rows whose name already exists are
skipped, so seeding twice is harmless.

Examples:
  productctl seed            # add missing demo rows
  productctl seed --reset    # delete every product first`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		return runSeed(cmd.Context(), db, resetProducts)
	},
}

func init() {
	seedCmd.Flags().BoolVar(&resetProducts, "reset", false, "Delete all products before seeding")
}

type seedProduct struct {
	category    string
	name        string
	description string
	price       float64
	quantity    int
}

var seedCategories = []string{"Tools", "Garden", "Kitchen"}

var seedProducts = []seedProduct{
	{"Tools", "Claw Hammer", "16 oz steel hammer", 24.90, 40},
	{"Tools", "Screwdriver Set", "6 piece set", 15.50, 25},
	{"Garden", "Watering Can", "10 litre", 12.00, 18},
	{"Kitchen", "Chef Knife", "8 inch blade", 49.99, 10},
}

func runSeed(ctx context.Context, db *gorm.DB, reset bool) error {
	products := repository.NewGormGateway[model.Product](repository.OrderByPrice)
	categories := repository.NewGormGateway[model.Category](repository.OrderByName)
	svc := service.NewProductService(products, categories)
	validator := service.NewProductValidator()

	if reset {
		if err := svc.DeleteAllProducts(ctx, db); err != nil {
			return err
		}
		log.Info().Msg("products deleted")
	}

	ids := make(map[string]int64, len(seedCategories))
	for _, name := range seedCategories {
		c := &model.Category{Name: name}
		err := categories.Insert(ctx, db, c)
		if errors.Is(err, repository.ErrDuplicateKey) {
			var existing model.Category
			if err := db.WithContext(ctx).Where("name = ?", name).First(&existing).Error; err != nil {
				return fmt.Errorf("lookup category %q: %w", name, err)
			}
			c = &existing
		} else if err != nil {
			return fmt.Errorf("seed category %q: %w", name, err)
		}
		ids[name] = c.ID
	}

	created := 0
	for _, sp := range seedProducts {
		id := ids[sp.category]
		req := dto.ProductCreate{
			Name:        sp.name,
			Description: &sp.description,
			Price:       &sp.price,
			Quantity:    &sp.quantity,
			CategoryID:  &id,
		}
		if err := validator.ValidateCreate(req); err != nil {
			return fmt.Errorf("seed product %q: %w", req.Name, err)
		}
		_, err := svc.CreateProduct(ctx, db, req)
		if errors.Is(err, repository.ErrDuplicateKey) {
			log.Debug().Str("name", req.Name).Msg("product exists, skipped")
			continue
		}
		if err != nil {
			return err
		}
		created++
	}
	log.Info().Int("categories", len(ids)).Int("products_created", created).Msg("seed complete")
	return nil
}
