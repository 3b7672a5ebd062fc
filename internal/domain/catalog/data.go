package catalog

import "eventos_api/internal/domain/entities"

// Category ids with special handling in the packaged checklist.
const (
	CategoryWedding       = "wedding"
	CategoryFifteenthBday = "15th-birthday"
)

// FixedVenuePrice is discounted from a packaged plan when the customer brings their own venue.
const FixedVenuePrice int64 = 1_500_000

var eventCategories = []entities.EventCategory{
	{ID: CategoryWedding, DisplayName: "Wedding"},
	{ID: CategoryFifteenthBday, DisplayName: "Quinceañera"},
	{ID: "birthday", DisplayName: "Birthday"},
	{ID: "baby-shower", DisplayName: "Baby Shower"},
	{ID: "corporate", DisplayName: "Corporate Event"},
	{ID: "graduation", DisplayName: "Graduation"},
	{ID: "baptism", DisplayName: "Baptism"},
}

var events = []entities.EventType{
	{ID: "wedding-garden", Category: CategoryWedding, Name: "Garden Wedding", Description: "An outdoor ceremony and reception surrounded by flowers and natural light", ImageURL: "/img/events/wedding-garden.jpg"},
	{ID: "wedding-classic", Category: CategoryWedding, Name: "Classic Ballroom Wedding", Description: "A formal evening wedding in a ballroom with a plated dinner and live music", ImageURL: "/img/events/wedding-classic.jpg"},
	{ID: "wedding-beach", Category: CategoryWedding, Name: "Beach Wedding", Description: "A barefoot ceremony by the sea followed by a relaxed sunset reception", ImageURL: "/img/events/wedding-beach.jpg"},
	{ID: "quince-princess", Category: CategoryFifteenthBday, Name: "Princess Quinceañera", Description: "A fairytale fifteenth birthday with a royal entrance, waltz and crown ceremony", ImageURL: "/img/events/quince-princess.jpg"},
	{ID: "quince-modern", Category: CategoryFifteenthBday, Name: "Modern Quinceañera", Description: "A contemporary fifteenth birthday party with neon lights, DJ and dance floor", ImageURL: "/img/events/quince-modern.jpg"},
	{ID: "birthday-kids", Category: "birthday", Name: "Kids Birthday", Description: "A colorful children's party with games, entertainers and a candy table", ImageURL: "/img/events/birthday-kids.jpg"},
	{ID: "birthday-adult", Category: "birthday", Name: "Adult Birthday", Description: "An elegant birthday dinner with cocktails and music for adults", ImageURL: "/img/events/birthday-adult.jpg"},
	{ID: "baby-shower-classic", Category: "baby-shower", Name: "Classic Baby Shower", Description: "A tender afternoon celebration with pastel decoration, games and dessert table", ImageURL: "/img/events/baby-shower.jpg"},
	{ID: "gender-reveal", Category: "baby-shower", Name: "Gender Reveal", Description: "A surprise reveal party with balloons, confetti and a themed cake", ImageURL: "/img/events/gender-reveal.jpg"},
	{ID: "corporate-gala", Category: "corporate", Name: "Corporate Gala", Description: "A formal company gala with awards stage, catering and audiovisual equipment", ImageURL: "/img/events/corporate-gala.jpg"},
	{ID: "corporate-team", Category: "corporate", Name: "Team Building Day", Description: "An outdoor team building day with activities, lunch and facilitators", ImageURL: "/img/events/team-building.jpg"},
	{ID: "graduation-party", Category: "graduation", Name: "Graduation Party", Description: "A festive graduation celebration with photo booth, DJ and buffet", ImageURL: "/img/events/graduation.jpg"},
	{ID: "baptism-brunch", Category: "baptism", Name: "Baptism Brunch", Description: "A family brunch after the baptism ceremony with white floral decoration", ImageURL: "/img/events/baptism.jpg"},
}

var themes = []entities.Theme{
	{ID: "rustic", Name: "Rustic", Description: "Wood, burlap and wildflowers", Categories: []string{CategoryWedding, "baptism", "birthday"}},
	{ID: "royal", Name: "Royal", Description: "Gold accents, crowns and velvet", Categories: []string{CategoryFifteenthBday, CategoryWedding}},
	{ID: "tropical", Name: "Tropical", Description: "Palm leaves, bright colors and fruit", Categories: []string{CategoryWedding, "birthday", "graduation"}},
	{ID: "neon", Name: "Neon Glow", Description: "Black light, neon signs and glow accessories", Categories: []string{CategoryFifteenthBday, "birthday", "graduation"}},
	{ID: "pastel", Name: "Pastel Dream", Description: "Soft pastel palette with clouds and balloons", Categories: []string{"baby-shower", "baptism", CategoryFifteenthBday}},
	{ID: "minimal", Name: "Minimal Elegance", Description: "White and greenery with clean lines", Categories: []string{"corporate", CategoryWedding, "graduation"}},
}

var serviceCategories = []entities.ServiceCategory{
	{ID: "venue", Name: "Venue", Services: []entities.ServiceItem{
		{ID: "venue-hall", Name: "Event hall", Description: "Air-conditioned hall for up to 200 guests, 6 hours", UnitPrice: 1_500_000, Unit: entities.UnitPackage},
		{ID: "venue-garden", Name: "Garden", Description: "Outdoor garden with tent for up to 150 guests, 6 hours", UnitPrice: 1_200_000, Unit: entities.UnitPackage},
		{ID: "venue-extra-hour", Name: "Extra hour", Description: "Additional venue hour", UnitPrice: 250_000, Unit: entities.UnitEach},
	}},
	{ID: "catering", Name: "Catering", Services: []entities.ServiceItem{
		{ID: "dinner-plated", Name: "Plated dinner", Description: "Three-course plated dinner", UnitPrice: 45_000, Unit: entities.UnitPerson},
		{ID: "buffet", Name: "Buffet", Description: "Buffet with two proteins, sides and salad bar", UnitPrice: 38_000, Unit: entities.UnitPerson},
		{ID: "snacks", Name: "Snack station", Description: "Savory snacks served during the party", UnitPrice: 12_000, Unit: entities.UnitPerson},
		{ID: "cake", Name: "Cake", Description: "Three-tier decorated cake", UnitPrice: 350_000, Unit: entities.UnitEach},
		{ID: "dessert-table", Name: "Dessert table", Description: "Assorted desserts for the guests", UnitPrice: 400_000, Unit: entities.UnitPackage},
	}},
	{ID: "drinks", Name: "Drinks", Services: []entities.ServiceItem{
		{ID: "soft-drinks", Name: "Soft drinks", Description: "Unlimited soft drinks and water", UnitPrice: 6_000, Unit: entities.UnitPerson},
		{ID: "open-bar", Name: "Open bar", Description: "National liquor open bar, 5 hours", UnitPrice: 35_000, Unit: entities.UnitPerson},
		{ID: "toast", Name: "Champagne toast", Description: "One glass of sparkling wine per guest", UnitPrice: 9_000, Unit: entities.UnitPerson},
	}},
	{ID: "decoration", Name: "Decoration", Services: []entities.ServiceItem{
		{ID: "centerpieces", Name: "Centerpieces", Description: "Themed centerpiece per table", UnitPrice: 60_000, Unit: entities.UnitEach},
		{ID: "balloon-arch", Name: "Balloon arch", Description: "Organic balloon arch in theme colors", UnitPrice: 280_000, Unit: entities.UnitEach},
		{ID: "photo-backdrop", Name: "Photo backdrop", Description: "Themed backdrop for photos", UnitPrice: 320_000, Unit: entities.UnitEach},
		{ID: "lighting", Name: "Ambient lighting", Description: "LED uplights and string lights", UnitPrice: 450_000, Unit: entities.UnitPackage},
	}},
	{ID: "entertainment", Name: "Entertainment", Services: []entities.ServiceItem{
		{ID: "dj", Name: "DJ", Description: "DJ with sound system, 5 hours", UnitPrice: 900_000, Unit: entities.UnitPackage},
		{ID: "live-band", Name: "Live band", Description: "Four-piece band, two sets", UnitPrice: 2_200_000, Unit: entities.UnitPackage},
		{ID: "mc", Name: "Master of ceremonies", Description: "Host for the whole event", UnitPrice: 500_000, Unit: entities.UnitPackage},
		{ID: "crazy-hour", Name: "Crazy hour", Description: "Performers, masks and party props", UnitPrice: 650_000, Unit: entities.UnitPackage},
	}},
	{ID: "media", Name: "Photo & video", Services: []entities.ServiceItem{
		{ID: "photography", Name: "Photography", Description: "Photographer for 6 hours with edited digital album", UnitPrice: 1_100_000, Unit: entities.UnitPackage},
		{ID: "video", Name: "Video", Description: "Videographer with highlight film", UnitPrice: 1_400_000, Unit: entities.UnitPackage},
		{ID: "photo-booth", Name: "Photo booth", Description: "Photo booth with instant prints, 3 hours", UnitPrice: 600_000, Unit: entities.UnitPackage},
	}},
	{ID: "staff", Name: "Staff", Services: []entities.ServiceItem{
		{ID: "waiter", Name: "Waiter", Description: "Waiter for the whole event", UnitPrice: 120_000, Unit: entities.UnitEach},
		{ID: "coordinator", Name: "Event coordinator", Description: "Coordinator on the day of the event", UnitPrice: 700_000, Unit: entities.UnitPackage},
		{ID: "security", Name: "Security guard", Description: "Security guard for the whole event", UnitPrice: 150_000, Unit: entities.UnitEach},
	}},
}

// Sorted ascending; the first row is the fallback tier.
var packagedPlans = []entities.PackagedPlan{
	{PeopleCount: 50, FlatPrice: 3_000_000},
	{PeopleCount: 100, FlatPrice: 4_500_000},
	{PeopleCount: 150, FlatPrice: 6_000_000},
	{PeopleCount: 200, FlatPrice: 7_500_000},
	{PeopleCount: 300, FlatPrice: 10_500_000},
}

// Checklist keys rewritten per event category.
const (
	IncludedKit        = "kit"
	IncludedCake       = "cake"
	IncludedDecoration = "decoration"
)

// includedServices is written for a quinceañera, the flagship package.
var includedServices = []entities.IncludedService{
	{Key: "venue", Title: "Venue", Description: "Event hall for 6 hours with tables, chairs and linens"},
	{Key: "dinner", Title: "Dinner", Description: "Three-course plated dinner for every guest"},
	{Key: "drinks", Title: "Drinks", Description: "Unlimited soft drinks, water and a champagne toast"},
	{Key: IncludedCake, Title: "Cake", Description: "Three-tier cake decorated for the quinceañera"},
	{Key: IncludedDecoration, Title: "Decoration", Description: "Centerpieces and backdrop themed for the quinceañera"},
	{Key: IncludedKit, Title: "Quinceañera kit", Description: "Pillow, last doll, slippers, tiara and guest book"},
	{Key: "music", Title: "Music", Description: "DJ with sound system and dance floor lighting"},
	{Key: "photography", Title: "Photography", Description: "Photographer for 6 hours with edited digital album"},
	{Key: "staff", Title: "Staff", Description: "Waiters and an event coordinator"},
}
