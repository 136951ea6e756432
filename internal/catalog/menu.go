package catalog

import "github.com/tejasmmali/canteen-swift/internal/domain"

// Prices are whole rupees.
var menuItems = []domain.MenuItem{
	{
		ID:              "1",
		Name:            "Masala Dosa",
		Description:     "Crispy rice crepe filled with spiced potato, served with sambar and chutneys",
		Price:           60,
		Category:        "Breakfast",
		Image:           "/assets/masala-dosa.jpg",
		Available:       true,
		PreparationTime: 10,
	},
	{
		ID:              "2",
		Name:            "Idli Sambar",
		Description:     "Soft steamed rice cakes served with lentil soup and coconut chutney",
		Price:           40,
		Category:        "Breakfast",
		Image:           "/assets/idli-sambar.jpg",
		Available:       true,
		PreparationTime: 8,
	},
	{
		ID:              "3",
		Name:            "Veg Biryani",
		Description:     "Aromatic basmati rice cooked with mixed vegetables and fragrant spices",
		Price:           90,
		Category:        "Main Course",
		Image:           "/assets/veg-biryani.jpg",
		Available:       true,
		PreparationTime: 15,
	},
	{
		ID:              "4",
		Name:            "Paneer Butter Masala",
		Description:     "Cottage cheese cubes in rich, creamy tomato gravy with butter",
		Price:           120,
		Category:        "Main Course",
		Image:           "/assets/paneer-butter-masala.jpg",
		Available:       true,
		PreparationTime: 12,
	},
	{
		ID:              "5",
		Name:            "Chicken Fried Rice",
		Description:     "Wok-tossed rice with tender chicken pieces and fresh vegetables",
		Price:           100,
		Category:        "Main Course",
		Image:           "/assets/chicken-fried-rice.jpg",
		Available:       true,
		PreparationTime: 12,
	},
	{
		ID:              "6",
		Name:            "Veg Sandwich",
		Description:     "Grilled sandwich with fresh vegetables, cheese and mint chutney",
		Price:           50,
		Category:        "Snacks",
		Image:           "/assets/veg-sandwich.jpg",
		Available:       true,
		PreparationTime: 8,
	},
	{
		ID:              "7",
		Name:            "Samosa",
		Description:     "Crispy pastry filled with spiced potatoes and peas (2 pcs)",
		Price:           30,
		Category:        "Snacks",
		Image:           "/assets/samosa.jpg",
		Available:       true,
		PreparationTime: 5,
	},
	{
		ID:              "8",
		Name:            "French Fries",
		Description:     "Golden crispy potato fries with tomato ketchup",
		Price:           60,
		Category:        "Snacks",
		Image:           "/assets/french-fries.jpg",
		Available:       true,
		PreparationTime: 8,
	},
	{
		ID:              "9",
		Name:            "Masala Chai",
		Description:     "Traditional Indian spiced tea with milk",
		Price:           20,
		Category:        "Beverages",
		Image:           "/assets/masala-chai.jpg",
		Available:       true,
		PreparationTime: 5,
	},
	{
		ID:              "10",
		Name:            "Cold Coffee",
		Description:     "Chilled coffee blended with milk and ice cream",
		Price:           50,
		Category:        "Beverages",
		Image:           "/assets/cold-coffee.jpg",
		Available:       true,
		PreparationTime: 5,
	},
	{
		ID:              "11",
		Name:            "Fresh Lime Soda",
		Description:     "Refreshing lime juice with soda water and mint",
		Price:           35,
		Category:        "Beverages",
		Image:           "/assets/lime-soda.jpg",
		Available:       true,
		PreparationTime: 3,
	},
	{
		ID:              "12",
		Name:            "Gulab Jamun",
		Description:     "Soft milk dumplings soaked in rose-flavored sugar syrup (2 pcs)",
		Price:           40,
		Category:        "Desserts",
		Image:           "/assets/gulab-jamun.jpg",
		Available:       true,
		PreparationTime: 3,
	},
}
