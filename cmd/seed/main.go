// cmd/seed/main.go
//
// Seeds the database with a demo catalog and six months of randomized sales
// history. Clears all existing rows first; the whole batch runs in a single
// transaction and rolls back on any failure.
package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/MRafay620/ecommerce-api/internal/config"
	"github.com/MRafay620/ecommerce-api/internal/database"
	"github.com/MRafay620/ecommerce-api/internal/models"
)

type productFixture struct {
	Name     string
	Price    float64
	SKU      string
	Category string
	Platform string
}

var categoryFixtures = []models.Category{
	{Name: "Electronics", Description: "Electronic devices and accessories"},
	{Name: "Home & Kitchen", Description: "Home appliances and kitchen items"},
	{Name: "Books", Description: "Books and educational materials"},
	{Name: "Clothing", Description: "Apparel and fashion items"},
	{Name: "Sports & Outdoors", Description: "Sports equipment and outdoor gear"},
	{Name: "Beauty & Personal Care", Description: "Beauty products and personal care items"},
	{Name: "Toys & Games", Description: "Toys and gaming products"},
	{Name: "Health & Household", Description: "Health products and household items"},
}

var productFixtures = []productFixture{
	// Electronics
	{"Samsung Galaxy Earbuds Pro", 199.99, "SAM-EAR-001", "Electronics", "Amazon"},
	{"iPhone 15 Case", 24.99, "APL-CAS-001", "Electronics", "Amazon"},
	{"Sony WH-1000XM4 Headphones", 349.99, "SON-HEA-001", "Electronics", "Walmart"},
	{"Anker PowerBank 10000mAh", 45.99, "ANK-POW-001", "Electronics", "Amazon"},
	{"Logitech MX Master 3 Mouse", 99.99, "LOG-MOU-001", "Electronics", "Walmart"},

	// Home & Kitchen
	{"Instant Pot Duo 7-in-1", 89.99, "INS-POT-001", "Home & Kitchen", "Amazon"},
	{"KitchenAid Stand Mixer", 399.99, "KIT-MIX-001", "Home & Kitchen", "Walmart"},
	{"Ninja Blender", 79.99, "NIN-BLE-001", "Home & Kitchen", "Amazon"},
	{"Dyson V11 Vacuum", 599.99, "DYS-VAC-001", "Home & Kitchen", "Walmart"},

	// Books
	{"The Psychology of Money", 16.99, "BOO-PSY-001", "Books", "Amazon"},
	{"Atomic Habits", 18.99, "BOO-HAB-001", "Books", "Amazon"},
	{"The 7 Habits of Highly Effective People", 15.99, "BOO-HAB-002", "Books", "Walmart"},

	// Clothing
	{"Nike Air Max 270", 129.99, "NIK-SHO-001", "Clothing", "Amazon"},
	{"Levi's 501 Original Jeans", 69.99, "LEV-JEA-001", "Clothing", "Walmart"},
	{"Adidas Ultraboost 22", 179.99, "ADI-SHO-001", "Clothing", "Amazon"},

	// Sports & Outdoors
	{"Yeti Rambler 30oz", 39.99, "YET-RAM-001", "Sports & Outdoors", "Amazon"},
	{"Coleman 4-Person Tent", 119.99, "COL-TEN-001", "Sports & Outdoors", "Walmart"},
	{"Hydro Flask Water Bottle", 44.99, "HYD-BOT-001", "Sports & Outdoors", "Amazon"},

	// Beauty & Personal Care
	{"CeraVe Moisturizing Cream", 19.99, "CER-MOI-001", "Beauty & Personal Care", "Amazon"},
	{"Olay Regenerist Serum", 28.99, "OLA-SER-001", "Beauty & Personal Care", "Walmart"},
	{"Neutrogena Sunscreen SPF 50", 12.99, "NEU-SUN-001", "Beauty & Personal Care", "Amazon"},

	// Toys & Games
	{"LEGO Creator 3-in-1 Deep Sea Creatures", 79.99, "LEG-CRE-001", "Toys & Games", "Amazon"},
	{"Monopoly Classic Board Game", 24.99, "MON-CLA-001", "Toys & Games", "Walmart"},
	{"Hot Wheels 20-Car Pack", 19.99, "HOT-CAR-001", "Toys & Games", "Amazon"},

	// Health & Household
	{"Charmin Ultra Soft Toilet Paper", 24.99, "CHA-TOI-001", "Health & Household", "Walmart"},
	{"Tide Laundry Detergent Pods", 18.99, "TID-DET-001", "Health & Household", "Amazon"},
	{"Lysol Disinfecting Wipes", 4.99, "LYS-WIP-001", "Health & Household", "Walmart"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize database")
	}
	defer database.Close(db)

	if err := database.RunMigrations(db); err != nil {
		logrus.WithError(err).Fatal("Failed to run migrations")
	}

	if err := database.WithTransaction(db, seed); err != nil {
		logrus.WithError(err).Fatal("Seeding failed, batch rolled back")
	}

	logrus.Info("Demo data created successfully")
}

func seed(tx *gorm.DB) error {
	// Clear existing data, children first.
	for _, model := range []interface{}{
		&models.Sale{}, &models.Inventory{}, &models.Product{}, &models.Category{},
	} {
		if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}
	}

	logrus.Info("Creating categories...")
	categories := make(map[string]uint, len(categoryFixtures))
	for _, fixture := range categoryFixtures {
		category := fixture
		if err := tx.Create(&category).Error; err != nil {
			return fmt.Errorf("failed to create category %q: %w", category.Name, err)
		}
		categories[category.Name] = category.ID
	}

	logrus.Info("Creating products and inventory...")
	products := make([]models.Product, 0, len(productFixtures))
	for _, fixture := range productFixtures {
		product := models.Product{
			Name:        fixture.Name,
			Description: fmt.Sprintf("High-quality %s available on %s", fixture.Name, fixture.Platform),
			Price:       fixture.Price,
			SKU:         fixture.SKU,
			CategoryID:  categories[fixture.Category],
			Platform:    fixture.Platform,
			IsActive:    true,
		}
		if err := tx.Create(&product).Error; err != nil {
			return fmt.Errorf("failed to create product %q: %w", product.Name, err)
		}

		inventory := models.Inventory{
			ProductID:         product.ID,
			Quantity:          5 + rand.Intn(496),
			LowStockThreshold: 10 + rand.Intn(41),
		}
		if err := tx.Create(&inventory).Error; err != nil {
			return fmt.Errorf("failed to create inventory for %q: %w", product.Name, err)
		}

		products = append(products, product)
	}

	logrus.Info("Creating sales data...")
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -180)

	var sales []models.Sale
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		dailySales := 5 + rand.Intn(16)
		for i := 0; i < dailySales; i++ {
			product := products[rand.Intn(len(products))]
			quantity := 1 + rand.Intn(5)

			// Price variation of +/-10% around the list price.
			unitPrice := roundCents(product.Price * (0.9 + rand.Float64()*0.2))
			saleTime := day.Add(time.Duration(rand.Intn(24))*time.Hour +
				time.Duration(rand.Intn(60))*time.Minute)

			sales = append(sales, models.Sale{
				ProductID:   product.ID,
				Quantity:    quantity,
				UnitPrice:   unitPrice,
				TotalAmount: float64(quantity) * unitPrice,
				SaleDate:    saleTime,
				Platform:    product.Platform,
				OrderID:     fmt.Sprintf("ORD-%06d", 100000+rand.Intn(900000)),
			})
		}
	}

	if err := tx.CreateInBatches(sales, 500).Error; err != nil {
		return fmt.Errorf("failed to create sales: %w", err)
	}

	// Force a few products into low stock so the alert view has data.
	for _, idx := range rand.Perm(len(products))[:5] {
		err := tx.Model(&models.Inventory{}).
			Where("product_id = ?", products[idx].ID).
			Update("quantity", 1+rand.Intn(9)).Error
		if err != nil {
			return fmt.Errorf("failed to mark low stock: %w", err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"categories": len(categoryFixtures),
		"products":   len(products),
		"sales":      len(sales),
	}).Info("Seed batch prepared")

	return nil
}

func roundCents(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
