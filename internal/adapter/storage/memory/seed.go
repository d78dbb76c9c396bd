package memory

import (
	"cubo-pix-gateway/internal/core/domain"

	"github.com/shopspring/decimal"
)

func variant(label string, price int64) domain.Variant {
	return domain.Variant{Label: label, Price: decimal.NewFromInt(price)}
}

// Price tables shared by several pieces, smallest scale first.
func premiumScales() []domain.Variant {
	return []domain.Variant{variant("1/9", 420), variant("1/7", 500), variant("1/6", 580)}
}

func standardScales() []domain.Variant {
	return []domain.Variant{variant("1/8", 260), variant("1/7", 300), variant("1/6", 360)}
}

func dbzScales() []domain.Variant {
	return []domain.Variant{variant("1/6", 260), variant("1/5", 310), variant("1/4", 380)}
}

func smallScales() []domain.Variant {
	return []domain.Variant{variant("1/10", 110), variant("1/9", 120), variant("1/8", 140)}
}

// SeedCatalog returns the shop's launch catalog. Each call builds fresh
// values so callers may modify them.
func SeedCatalog() []domain.Product {
	return []domain.Product{
		{
			ID:             "p1",
			Name:           "Minthara (Baldur's Gate)",
			Image:          "/images/prod1.jpg",
			Images:         []string{"/images/prod1.jpg", "/images/prod1b.jpg", "/images/prod1c.jpg"},
			Model:          "/models/mintharaviewer.glb",
			Status:         domain.ProductStatusInStock,
			Tags:           []string{"Baldur's Gate", "Games", "RPG"},
			DefaultVariant: "1/7",
			Variants:       premiumScales(),
		},
		{
			ID:             "p2",
			Name:           "Majin Boo (DBZ)",
			Image:          "/images/prod2.jpg",
			Images:         []string{"/images/prod2.jpg", "/images/prod2-1.jpg"},
			Status:         domain.ProductStatusCatalog,
			Tags:           []string{"DBZ", "Animes"},
			DefaultVariant: "1/4",
			Variants:       dbzScales(),
		},
		{
			ID:             "p3",
			Name:           "Konan (Naruto)",
			Image:          "/images/prod3.jpg",
			Images:         []string{"/images/prod3.jpg", "/images/prod3-1.jpg"},
			Status:         domain.ProductStatusCatalog,
			Tags:           []string{"Naruto", "Animes"},
			DefaultVariant: "1/9",
			Variants:       smallScales(),
		},
		{
			ID:             "p4",
			Name:           "Arlequina (DC)",
			Image:          "/images/prod4.jpg",
			Images:         []string{"/images/prod4.jpg", "/images/prod4-1.jpg"},
			Status:         domain.ProductStatusCatalog,
			Tags:           []string{"DC", "Filmes", "HQs"},
			DefaultVariant: "1/7",
			Variants:       standardScales(),
		},
		{
			ID:             "p5",
			Name:           "Naruto Clássico (Naruto)",
			Image:          "/images/prod5.jpg",
			Images:         []string{"/images/prod5.jpg", "/images/prod5-1.jpg"},
			Status:         domain.ProductStatusCatalog,
			Tags:           []string{"Naruto", "Animes"},
			DefaultVariant: "1/7",
			Variants:       standardScales(),
		},
		{
			ID:             "p6",
			Name:           "Naruto Hokage (Naruto)",
			Image:          "/images/prod6.jpg",
			Images:         []string{"/images/prod6.jpg"},
			Status:         domain.ProductStatusCatalog,
			Tags:           []string{"Naruto", "Animes"},
			DefaultVariant: "1/7",
			Variants:       standardScales(),
		},
		{
			ID:             "p7",
			Name:           "Orochimaru (Naruto)",
			Image:          "/images/prod7.jpg",
			Images:         []string{"/images/prod7.jpg"},
			Status:         domain.ProductStatusCatalog,
			Tags:           []string{"Naruto", "Animes"},
			DefaultVariant: "1/7",
			Variants:       standardScales(),
		},
		{
			ID:             "p8",
			Name:           "Jiraiya Modo Sábio (Naruto)",
			Image:          "/images/prod8.jpg",
			Images:         []string{"/images/prod8.jpg"},
			Status:         domain.ProductStatusCatalog,
			Tags:           []string{"Naruto", "Animes"},
			DefaultVariant: "1/7",
			Variants:       standardScales(),
		},
		{
			ID:             "p9",
			Name:           "Hinata (Naruto)",
			Image:          "/images/prod9.jpg",
			Images:         []string{"/images/prod9.jpg", "/images/prod9-1.jpg"},
			Status:         domain.ProductStatusCatalog,
			Tags:           []string{"Naruto", "Animes"},
			DefaultVariant: "1/7",
			Variants:       standardScales(),
		},
		{
			ID:             "p10",
			Name:           "Goku Ssj 4 (DBZ)",
			Image:          "/images/prod10.jpg",
			Images:         []string{"/images/prod10.jpg", "/images/prod10-1.jpg"},
			Status:         domain.ProductStatusCatalog,
			Tags:           []string{"DBZ", "Animes"},
			DefaultVariant: "1/4",
			Variants:       dbzScales(),
		},
		{
			ID:             "p11",
			Name:           "Sr. Kaioh (DBZ)",
			Image:          "/images/prod11.jpg",
			Images:         []string{"/images/prod11.jpg", "/images/prod11-1.jpg"},
			Status:         domain.ProductStatusCatalog,
			Tags:           []string{"DBZ", "Animes"},
			DefaultVariant: "1/4",
			Variants:       dbzScales(),
		},
		{
			ID:             "p12",
			Name:           "Android 18 (DBZ)",
			Image:          "/images/prod12.jpg",
			Images:         []string{"/images/prod12.jpg", "/images/prod12-1.jpg"},
			Status:         domain.ProductStatusCatalog,
			Tags:           []string{"DBZ", "Animes"},
			DefaultVariant: "1/4",
			Variants:       dbzScales(),
		},
		{
			ID:             "p13",
			Name:           "Naruto Modo Sanin (Naruto)",
			Image:          "/images/prod13.jpg",
			Images:         []string{"/images/prod13.jpg", "/images/prod13-1.jpg"},
			Status:         domain.ProductStatusCatalog,
			Tags:           []string{"Naruto", "Animes"},
			DefaultVariant: "1/7",
			Variants:       standardScales(),
		},
		{
			ID:             "p14",
			Name:           "Naruto Modo Sanin Rasengan (Naruto)",
			Image:          "/images/prod14.jpg",
			Images:         []string{"/images/prod14.jpg", "/images/prod14-1.jpg"},
			Status:         domain.ProductStatusCatalog,
			Tags:           []string{"Naruto", "Animes"},
			DefaultVariant: "1/7",
			Variants:       standardScales(),
		},
		{
			ID:             "p15",
			Name:           "Superman (DC)",
			Image:          "/images/prod15.jpg",
			Images:         []string{"/images/prod15.jpg", "/images/prod15-1.jpg", "/images/prod15-2.jpg"},
			Status:         domain.ProductStatusCatalog,
			Tags:           []string{"DC", "Filmes", "HQs"},
			DefaultVariant: "1/7",
			Variants:       standardScales(),
		},
		{
			ID:             "p16",
			Name:           "Arlequina (DC)",
			Image:          "/images/prod16.jpg",
			Images:         []string{"/images/prod16.jpg", "/images/prod16-1.jpg"},
			Status:         domain.ProductStatusCatalog,
			Tags:           []string{"DC", "Filmes", "HQs"},
			DefaultVariant: "1/7",
			Variants:       standardScales(),
		},
	}
}
