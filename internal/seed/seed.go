// Package seed provides the bundled default content used to populate
// a first-run CMS document. The values mirror the static content the
// public site ships with; Initialization treats them as read-only.
package seed

import "github.com/yuhsien/floormat-cms/internal/models"

// Document builds a fresh default document. Version is set to the
// current schema constant; LastUpdated is left blank and stamped by
// the store's write path.
func Document() models.Document {
	return models.Document{
		Version:       models.SchemaVersion,
		Projects:      Projects(),
		Products:      Products(),
		YouTubeVideos: Videos(),
		Settings:      Settings(),
	}
}

// Settings returns the default site settings.
func Settings() models.Settings {
	return models.Settings{
		SiteName:      "YuHsien Flooring Mats",
		Tagline:       "Safe outdoor flooring for schools and playgrounds",
		Phone:         "02-2736-8899",
		Email:         "service@yuhsien-mats.com.tw",
		Address:       "No. 172, Sec. 3, Heping E. Rd., Da'an Dist., Taipei City",
		BusinessHours: "Mon-Fri 09:00-18:00",
		LineID:        "@yuhsienmats",
	}
}

// Projects returns the default case-study listings.
func Projects() []models.Project {
	return []models.Project{
		{
			ID:       "seed-daan-kindergarten",
			Title:    "Da'an Kindergarten Playground Renewal",
			Location: "Happy Seeds Kindergarten",
			City:     "Taipei",
			District: "Da'an",
			Year:     2023,
			Images: []string{
				"/images/projects/daan-kindergarten-1.jpg",
				"/images/projects/daan-kindergarten-2.jpg",
			},
			Description: "Full replacement of the outdoor play surface with interlocking drainage mats and a poured rubber top layer.",
			Tags: models.ProjectTags{
				BuildingType:     []string{"kindergarten"},
				FloorMaterial:    []string{"rubber mat"},
				InstallationType: []string{"interlocking"},
				SurfaceMaterial:  []string{"EPDM granules"},
				DrainageType:     []string{"perforated base"},
				DesignFeature:    []string{"two-tone pattern"},
				Location:         []string{"outdoor"},
			},
			Specs: models.ProjectSpecs{
				Area:  "180 sqm",
				Depth: "30 mm",
			},
		},
		{
			ID:       "seed-neihu-rooftop",
			Title:    "Neihu Office Rooftop Play Area",
			Location: "Neihu Technology Park",
			City:     "Taipei",
			District: "Neihu",
			Year:     2022,
			Images: []string{
				"/images/projects/neihu-rooftop-1.jpg",
			},
			Description: "Elevated drainage mats over a waterproof membrane, keeping the rooftop deck dry and walkable year round.",
			Tags: models.ProjectTags{
				BuildingType:     []string{"office"},
				FloorMaterial:    []string{"drainage mat"},
				InstallationType: []string{"loose-lay"},
				FramingType:      []string{"aluminum edge"},
				DrainageType:     []string{"elevated channel"},
				Location:         []string{"rooftop"},
			},
			Specs: models.ProjectSpecs{
				Area: "95 sqm",
			},
		},
		{
			ID:       "seed-taichung-school-track",
			Title:    "Taichung Elementary Running Track",
			Location: "Guangfu Elementary School",
			City:     "Taichung",
			District: "Xitun",
			Year:     2021,
			Images: []string{
				"/images/projects/taichung-track-1.jpg",
				"/images/projects/taichung-track-2.jpg",
				"/images/projects/taichung-track-3.jpg",
			},
			Description: "200-meter track resurfaced with shock-absorbing rubber tiles rated for daily PE classes.",
			Tags: models.ProjectTags{
				BuildingType:     []string{"elementary school"},
				FloorMaterial:    []string{"rubber tile"},
				InstallationType: []string{"adhesive"},
				SurfaceMaterial:  []string{"PU coating"},
				DesignFeature:    []string{"lane markings"},
				Location:         []string{"outdoor"},
			},
			Specs: models.ProjectSpecs{
				Area:   "820 sqm",
				Length: "200 m",
			},
		},
	}
}

// Products returns the default catalog entries.
func Products() []models.Product {
	return []models.Product{
		{
			ID:          "seed-interlock-30",
			Name:        "Interlocking Safety Mat 30mm",
			Category:    "Safety Mats",
			Description: "Interlocking rubber safety mat for playgrounds, fall-height rated to 1.2 m.",
			Image:       "/images/products/interlock-30.jpg",
			Specifications: models.ProductSpecs{
				Material:  "Recycled rubber with EPDM top",
				Thickness: "30 mm",
				Width:     "500 x 500 mm",
				Colors:    []string{"red", "green", "grey"},
				Features:  []string{"interlocking edges", "UV stabilized"},
			},
			Applications: []string{"playgrounds", "kindergartens", "gyms"},
		},
		{
			ID:          "seed-drain-tile",
			Name:        "Drainage Deck Tile",
			Category:    "Drainage Mats",
			Description: "Open-grid polypropylene tile that channels water away from foot traffic.",
			Image:       "/images/products/drain-tile.jpg",
			Specifications: models.ProductSpecs{
				Material:  "Polypropylene",
				Thickness: "18 mm",
				Width:     "300 x 300 mm",
				Colors:    []string{"grey", "blue"},
				Features:  []string{"open grid", "anti-slip surface"},
			},
			Applications: []string{"pool decks", "rooftops", "bathrooms"},
		},
		{
			ID:          "seed-poured-epdm",
			Name:        "Poured-in-Place EPDM Surface",
			Category:    "Poured Surfaces",
			Description: "Seamless poured rubber surface, mixed on site, for play areas with custom patterns.",
			Image:       "/images/products/poured-epdm.jpg",
			Specifications: models.ProductSpecs{
				Material: "EPDM granules with PU binder",
				Features: []string{"seamless", "custom colors and patterns"},
			},
			Applications: []string{"playgrounds", "running tracks", "fitness areas"},
			Price:        "quoted per project",
		},
	}
}

// Videos returns the default video listings.
func Videos() []models.Video {
	return []models.Video{
		{
			ID:          "seed-video-install",
			YouTubeID:   "dQw4w9WgXcQ",
			Title:       "Interlocking Mat Installation Walkthrough",
			Description: "Step-by-step installation of interlocking safety mats on a prepared base.",
			ProductID:   "seed-interlock-30",
		},
	}
}
