package catalog

// Default returns the built-in NailsByCeline profile.
func Default() Profile {
	return Profile{
		Name:    "NailsByCeline",
		Tagline: "Where Beauty Meets Perfection",
		Phone:   "+46 76-709 84 88",
		Email:   "Nailsbyc3linee@gmail.com",
		Social: map[string]string{
			"instagram": "@nailsbyc3linee",
			"tiktok":    "@nailsbyc3line",
		},
		Hours: Hours{
			Weekdays: "Monday - Friday: 17:00 - 19:00",
			Weekend:  "Saturday - Sunday: 12:00 - 20:00",
			Schedule: []OpeningHours{
				{Day: "Monday", Opens: "17:00", Closes: "19:00"},
				{Day: "Tuesday", Opens: "17:00", Closes: "19:00"},
				{Day: "Wednesday", Opens: "17:00", Closes: "19:00"},
				{Day: "Thursday", Opens: "17:00", Closes: "19:00"},
				{Day: "Friday", Opens: "17:00", Closes: "19:00"},
				{Day: "Saturday", Opens: "12:00", Closes: "20:00"},
				{Day: "Sunday", Opens: "12:00", Closes: "20:00"},
			},
		},
		Location: &Location{Country: "SE"},
		SEO: &SEO{
			Title:        "NailsByCeline | Manicure, Gel Nails & Nail Art",
			Description:  "NailsByCeline offers classic and gel manicures, French tips and custom nail art. Book your appointment by phone.",
			Keywords:     "nail salon, manicure, gel nails, nail art, french manicure",
			CanonicalURL: "https://nailsbyceline.se",
			ImageURL:     "https://nailsbyceline.se/images/og-image.jpg",
		},
		Services: []ServiceOffering{
			{
				Name:        "Classic Manicure",
				Description: "Professional nail care with polish application",
				Price:       "250 - 350 kr",
				Duration:    "45 min",
				Keywords:    "manicure, nail care, polish",
			},
			{
				Name:        "Gel Manicure",
				Description: "Long-lasting gel polish that lasts up to 3 weeks",
				Price:       "450 - 550 kr",
				Duration:    "60 min",
				Keywords:    "gel nails, gel polish",
			},
			{
				Name:        "Nail Art Design",
				Description: "Custom nail art and decorative designs",
				Price:       "150 - 400 kr",
				Duration:    "30 - 60 min",
				Keywords:    "nail art, nail design",
			},
			{
				Name:        "French Manicure",
				Description: "Classic French tip design",
				Price:       "300 - 400 kr",
				Duration:    "45 min",
				Keywords:    "french manicure, french tips",
			},
		},
		Gallery: []GalleryImage{
			{Src: "/images/gallery/gel-manicure.svg", Alt: "Gel manicure in soft pink", Caption: "Gel Manicure"},
			{Src: "/images/gallery/french-tips.svg", Alt: "Classic French tips", Caption: "French Manicure"},
			{Src: "/images/gallery/nail-art.svg", Alt: "Floral nail art design", Caption: "Nail Art Design"},
			{Src: "/images/gallery/classic.svg", Alt: "Classic red manicure", Caption: "Classic Manicure"},
		},
	}
}
