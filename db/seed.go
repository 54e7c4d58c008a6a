package db

import (
	"log"

	"storefront/models"

	"gorm.io/gorm"
)

func intPtr(v int) *int { return &v }

// Seed loads the default catalog and site settings. It is a no-op when the
// database already holds categories, so restarting a seeded process does
// not duplicate data.
func Seed(database *gorm.DB) error {
	var count int64
	if err := database.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []models.Category{
		{Name: "Fashion", Slug: "fashion", ImageURL: "https://images.unsplash.com/photo-1532453288672-3a27e9be9efd?auto=format&fit=crop&w=500&h=400&q=80"},
		{Name: "Skincare", Slug: "skincare", ImageURL: "https://images.unsplash.com/photo-1570172619644-dfd03ed5d881?auto=format&fit=crop&w=500&h=400&q=80"},
		{Name: "Appliances", Slug: "appliances", ImageURL: "https://images.unsplash.com/photo-1574269909862-7e1d70bb8078?auto=format&fit=crop&w=500&h=400&q=80"},
		{Name: "Utilities", Slug: "utilities", ImageURL: "https://images.unsplash.com/photo-1583947215259-38e31be8751f?auto=format&fit=crop&w=500&h=400&q=80"},
	}
	for i := range categories {
		if err := database.Create(&categories[i]).Error; err != nil {
			return err
		}
	}

	// Fashion subcategories reference their parent by id.
	fashionID := categories[0].ID
	subcategories := []models.Category{
		{Name: "Men", Slug: "men", ParentID: &fashionID},
		{Name: "Women", Slug: "women", ParentID: &fashionID},
		{Name: "Kids", Slug: "kids", ParentID: &fashionID},
	}
	for i := range subcategories {
		if err := database.Create(&subcategories[i]).Error; err != nil {
			return err
		}
	}

	products := []models.Product{
		{
			Name:        "Embroidered Senator Outfit",
			Description: "Elegant traditional Nigerian senator outfit with detailed embroidery, perfect for special occasions.",
			Price:       12500,
			ImageURL:    "https://images.unsplash.com/photo-1591019052241-e4d95a5dc3fc?auto=format&fit=crop&w=600&h=800&q=80",
			Category:    "Fashion",
			SubCategory: "Men",
			IsNew:       true,
			Rating:      4.5,
			ReviewCount: 24,
		},
		{
			Name:        "Ankara Print Maxi Dress",
			Description: "Beautiful Ankara print maxi dress featuring vibrant Nigerian patterns and comfortable fit.",
			Price:       18500,
			ImageURL:    "https://images.unsplash.com/photo-1614252235316-8c857d38b5f4?auto=format&fit=crop&w=600&h=800&q=80",
			Category:    "Fashion",
			SubCategory: "Women",
			IsNew:       true,
			Rating:      4.0,
			ReviewCount: 6,
		},
		{
			Name:        "Traditional Dashiki",
			Description: "Authentic Nigerian dashiki with colorful patterns, comfortable for everyday wear.",
			Price:       8500,
			ImageURL:    "https://images.unsplash.com/photo-1522242436218-58a4ecf2e8a1?auto=format&fit=crop&w=600&h=800&q=80",
			Category:    "Fashion",
			SubCategory: "Men",
			Rating:      4.2,
			ReviewCount: 15,
		},
		{
			Name:        "Kids Ankara Set",
			Description: "Adorable Ankara outfit set for children, featuring matching top and bottom with Nigerian patterns.",
			Price:       7500,
			ImageURL:    "https://images.unsplash.com/photo-1622290291468-a28f7a7dc6a8?auto=format&fit=crop&w=600&h=800&q=80",
			Category:    "Fashion",
			SubCategory: "Kids",
			IsNew:       true,
			Rating:      4.7,
			ReviewCount: 12,
		},
		{
			Name:        "Traditional Head Wrap",
			Description: "Beautiful Nigerian gele head wrap for special occasions and celebrations.",
			Price:       6500,
			ImageURL:    "https://images.unsplash.com/photo-1534271417223-b9dbfd8b7acd?auto=format&fit=crop&w=600&h=800&q=80",
			Category:    "Fashion",
			SubCategory: "Women",
			Rating:      4.3,
			ReviewCount: 9,
		},
		{
			Name:        "Handmade Nigerian Sandals",
			Description: "Handcrafted leather sandals made by Nigerian artisans with traditional patterns.",
			Price:       11200,
			ImageURL:    "https://images.unsplash.com/photo-1543163521-1bf539c55dd2?auto=format&fit=crop&w=600&h=800&q=80",
			Category:    "Fashion",
			SubCategory: "Men",
			Rating:      4.4,
			ReviewCount: 18,
		},
		{
			Name:         "Natural Shea Butter Moisturizer",
			Description:  "Pure and natural shea butter moisturizer sourced from Nigeria, perfect for all skin types.",
			Price:        8750,
			OldPrice:     intPtr(10000),
			ImageURL:     "https://images.unsplash.com/photo-1608248543803-ba4f8c70ae0b?auto=format&fit=crop&w=600&h=800&q=80",
			Category:     "Skincare",
			IsBestSeller: true,
			Rating:       5.0,
			ReviewCount:  42,
		},
		{
			Name:        "Natural Hibiscus Facial Serum",
			Description: "Revitalizing facial serum made with natural hibiscus extract to brighten and rejuvenate your skin.",
			Price:       9200,
			ImageURL:    "https://images.unsplash.com/photo-1599305445671-ac291c95aaa9?auto=format&fit=crop&w=600&h=800&q=80",
			Category:    "Skincare",
			IsNew:       true,
			Rating:      4.5,
			ReviewCount: 11,
		},
		{
			Name:         "African Black Soap",
			Description:  "Traditional Nigerian black soap made with natural ingredients to cleanse and purify skin.",
			Price:        5500,
			ImageURL:     "https://images.unsplash.com/photo-1614806687007-2215a9db3b1b?auto=format&fit=crop&w=600&h=800&q=80",
			Category:     "Skincare",
			IsBestSeller: true,
			Rating:       4.8,
			ReviewCount:  37,
		},
		{
			Name:        "Aloe Vera Gel",
			Description: "Pure aloe vera gel sourced from Nigerian farms, perfect for soothing skin irritations.",
			Price:       6800,
			ImageURL:    "https://images.unsplash.com/photo-1596776071613-1305b0b839ab?auto=format&fit=crop&w=600&h=800&q=80",
			Category:    "Skincare",
			Rating:      4.6,
			ReviewCount: 23,
		},
		{
			Name:        "Moringa Oil Face Mask",
			Description: "Nourishing face mask with moringa oil to deeply hydrate and repair skin.",
			Price:       7200,
			ImageURL:    "https://images.unsplash.com/photo-1596807307303-96382e7e3e9d?auto=format&fit=crop&w=600&h=800&q=80",
			Category:    "Skincare",
			IsNew:       true,
			Rating:      4.4,
			ReviewCount: 8,
		},
		{
			Name:        "Vitamin C Brightening Cream",
			Description: "Vitamin C enriched brightening cream to reduce dark spots and even skin tone.",
			Price:       8900,
			ImageURL:    "https://images.unsplash.com/photo-1531895861208-8504b98fe814?auto=format&fit=crop&w=600&h=800&q=80",
			Category:    "Skincare",
			Rating:      4.2,
			ReviewCount: 14,
		},
		{
			Name:        "Multi-Function Blender Premium",
			Description: "High-powered multi-function blender for all your kitchen needs with multiple attachments.",
			Price:       25000,
			ImageURL:    "https://images.unsplash.com/photo-1570222094114-d054a817e56b?auto=format&fit=crop&w=600&h=800&q=80",
			Category:    "Appliances",
			Rating:      4.0,
			ReviewCount: 16,
		},
		{
			Name:        "Portable Air Conditioner - Energy Saving",
			Description: "Energy efficient portable air conditioner perfect for the Nigerian climate, low electricity consumption.",
			Price:       85000,
			ImageURL:    "https://images.unsplash.com/photo-1552071379-041b32707fed?auto=format&fit=crop&w=600&h=800&q=80",
			Category:    "Appliances",
			IsNew:       true,
			Rating:      4.0,
			ReviewCount: 3,
		},
		{
			Name:         "Electric Pressure Cooker",
			Description:  "Modern electric pressure cooker to prepare Nigerian dishes quickly and efficiently.",
			Price:        32000,
			ImageURL:     "https://images.unsplash.com/photo-1585664811087-47f65abbad64?auto=format&fit=crop&w=600&h=800&q=80",
			Category:     "Appliances",
			IsBestSeller: true,
			Rating:       4.7,
			ReviewCount:  28,
		},
		{
			Name:        "Solar Powered Fan",
			Description: "Eco-friendly solar powered fan, perfect for Nigerian power outages and saving on electricity.",
			Price:       18000,
			ImageURL:    "https://images.unsplash.com/photo-1565330502541-4937be8552e3?auto=format&fit=crop&w=600&h=800&q=80",
			Category:    "Appliances",
			Rating:      4.3,
			ReviewCount: 19,
		},
		{
			Name:        "Handwoven Storage Basket Set (3)",
			Description: "Set of three handwoven storage baskets made by Nigerian artisans, perfect for organizing your home.",
			Price:       15800,
			ImageURL:    "https://images.unsplash.com/photo-1544967082-d9d25d867d66?auto=format&fit=crop&w=600&h=800&q=80",
			Category:    "Utilities",
			Rating:      3.5,
			ReviewCount: 8,
		},
		{
			Name:        "Handcrafted Wall Hanging - Tribal",
			Description: "Beautiful handcrafted tribal wall hanging to add Nigerian cultural touch to your home decor.",
			Price:       12300,
			ImageURL:    "https://images.unsplash.com/photo-1582582621959-48d27397dc69?auto=format&fit=crop&w=600&h=800&q=80",
			Category:    "Utilities",
			IsNew:       true,
			Rating:      4.0,
			ReviewCount: 2,
		},
		{
			Name:        "Decorative Throw Pillows",
			Description: "Set of decorative throw pillows with traditional Nigerian patterns to enhance your living space.",
			Price:       9500,
			ImageURL:    "https://images.unsplash.com/photo-1588098245633-71fecf1ea0d7?auto=format&fit=crop&w=600&h=800&q=80",
			Category:    "Utilities",
			Rating:      4.5,
			ReviewCount: 15,
		},
		{
			Name:        "African Print Table Runner",
			Description: "Colorful table runner with African prints to bring vibrant Nigerian aesthetics to your dining area.",
			Price:       7800,
			ImageURL:    "https://images.unsplash.com/photo-1595570932563-43c551095842?auto=format&fit=crop&w=600&h=800&q=80",
			Category:    "Utilities",
			Rating:      4.2,
			ReviewCount: 7,
		},
	}
	for i := range products {
		if err := database.Create(&products[i]).Error; err != nil {
			return err
		}
	}

	settings := models.DefaultSiteSettings()
	if err := database.Create(&settings).Error; err != nil {
		return err
	}

	log.Printf("Seeded catalog with %d categories and %d products", len(categories)+len(subcategories), len(products))
	return nil
}
