package cmd

import (
	"log"

	"food-ordering-api/config"
	"food-ordering-api/models"

	"github.com/spf13/cobra"
)

var sampleRestaurants = []models.Restaurant{
	{
		Name:        "Sunrise Diner",
		Description: "Cozy all-day diner serving breakfast favorites.",
		ImageURL:    "https://example.com/images/sunrise.jpg",
		Rating:      4.2,
		Menu: []models.MenuItem{
			{Name: "Pancake Stack", Description: "Fluffy pancakes with maple syrup", Price: 6.5},
			{Name: "Bacon & Eggs", Description: "Classic fried eggs and bacon", Price: 8.0},
		},
	},
	{
		Name:        "Spice Garden",
		Description: "Homestyle Indian dishes with bold flavors.",
		ImageURL:    "https://example.com/images/spicegarden.jpg",
		Rating:      4.6,
		Menu: []models.MenuItem{
			{Name: "Chicken Tikka Masala", Description: "Creamy tomato curry", Price: 12.5},
			{Name: "Chana Masala", Description: "Spicy chickpea curry", Price: 10.0},
			{Name: "Naan", Description: "Oven-baked flatbread", Price: 2.5},
		},
	},
	{
		Name:        "Green Leaf",
		Description: "Fresh vegan & healthy bowls and snacks.",
		ImageURL:    "https://example.com/images/greenleaf.jpg",
		Rating:      4.4,
		Menu: []models.MenuItem{
			{Name: "Quinoa Bowl", Description: "Quinoa, roasted veg, tahini dressing", Price: 11.0},
			{Name: "Avocado Toast", Description: "Sourdough, smashed avocado, chili flakes", Price: 7.5},
		},
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed sample restaurants (idempotent, upserts by name)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := config.InitDB(cfg.DBPath); err != nil {
			return err
		}

		created, updated := 0, 0
		for _, sample := range sampleRestaurants {
			var existing models.Restaurant
			err := config.DB.Where("name = ?", sample.Name).First(&existing).Error
			if err != nil {
				if err := config.DB.Create(&sample).Error; err != nil {
					return err
				}
				created++
				continue
			}

			updates := map[string]interface{}{
				"description": sample.Description,
				"image_url":   sample.ImageURL,
				"rating":      sample.Rating,
			}
			if err := config.DB.Model(&existing).Updates(updates).Error; err != nil {
				return err
			}
			// replace the menu wholesale so re-seeding picks up edits
			if err := config.DB.Where("restaurant_id = ?", existing.ID).Delete(&models.MenuItem{}).Error; err != nil {
				return err
			}
			for _, item := range sample.Menu {
				item.RestaurantID = existing.ID
				if err := config.DB.Create(&item).Error; err != nil {
					return err
				}
			}
			updated++
		}

		log.Printf("seed complete: %d created, %d updated", created, updated)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
