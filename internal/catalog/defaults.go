package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/maxpc/boutique/internal/domain/product"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Defaults returns the hard-coded catalog used for offline and demo
// operation. It is deterministic: every call yields a fresh slice with the
// same ten products.
func Defaults() []product.Product {
	return []product.Product{
		{
			ID: 1, Name: "SSD NVMe 1TB PCIe 4.0", Category: "pieces", Price: dec("119.90"),
			Description: "Samsung 980 Pro / 7 000 Mo/s, idéal OS et jeux", Meta: "Rapide",
			Image: "https://images.unsplash.com/photo-1618401471353-b98afee0b2eb?auto=format&fit=crop&w=900&q=80",
		},
		{
			ID: 2, Name: "Kit RAM 32GB DDR5 6000", Category: "pieces", Price: dec("149.00"),
			Description: "Dual channel optimisé Ryzen/Intel, CL36", Meta: "Upgrade perf",
			Image: "https://images.unsplash.com/photo-1518770660439-4636190af475?auto=format&fit=crop&w=900&q=80",
		},
		{
			ID: 3, Name: "Carte graphique RTX 4070", Category: "pieces", Price: dec("599.00"),
			Description: "1440p ultra, DLSS 3 et ray tracing", Meta: "Gaming",
			Image: "https://images.unsplash.com/photo-1587202372775-98927f78b34b?auto=format&fit=crop&w=900&q=80",
		},
		{
			ID: 4, Name: "Nettoyage thermique + repaste", Category: "services", Price: dec("59.00"),
			Description: "Démontage, dépoussiérage complet et pâte thermique haute perf.", Meta: "Atelier",
			Image: "https://images.unsplash.com/photo-1587613864521-681376e8c43e?auto=format&fit=crop&w=900&q=80",
		},
		{
			ID: 5, Name: "Installation Windows + pilotes", Category: "services", Price: dec("79.00"),
			Description: "Réinstallation propre, drivers, sécurité et mises à jour", Meta: "Service",
			Image: "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?auto=format&fit=crop&w=900&q=80",
		},
		{
			ID: 6, Name: "Pack Upgrade Gaming", Category: "packs", Price: dec("299.00"),
			Description: "SSD 1TB + optimisation Windows + param tuning", Meta: "Pack rapide",
			Image: "https://images.unsplash.com/photo-1517059224940-d4af9eec41b7?auto=format&fit=crop&w=900&q=80",
		},
		{
			ID: 7, Name: "Pack Silence & Refroidissement", Category: "packs", Price: dec("189.00"),
			Description: "Ventirad tour + courbe ventilateurs + nettoyage", Meta: "Silence",
			Image: "https://images.unsplash.com/photo-1585079542156-2755d9c6a9c9?auto=format&fit=crop&w=900&q=80",
		},
		{
			ID: 8, Name: "Sauvegarde + clonage SSD", Category: "services", Price: dec("69.00"),
			Description: "Clone disque vers SSD sans perte, vérification intégrité", Meta: "Sécurité",
			Image: "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?auto=format&fit=crop&w=900&q=80",
		},
		{
			ID: 9, Name: "Routeur Wi-Fi 6 maison", Category: "pieces", Price: dec("139.00"),
			Description: "Couverture stable, QoS jeux/visio, config sécurisée", Meta: "Réseau",
			Image: "https://images.unsplash.com/photo-1527430253228-e93688616381?auto=format&fit=crop&w=900&q=80",
		},
		{
			ID: 10, Name: "PC reconditionné i5 / GTX 1660", Category: "pcs", Price: dec("549.00"),
			Description: "Tour prête à l'emploi, Windows 11, SSD 512 Go, garantie 6 mois atelier",
			Meta:        "Prêt à l'emploi", Condition: "Reconditionné A", Badge: "Reconditionné", Status: "Disponible",
			Image: "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?auto=format&fit=crop&w=1000&q=80",
			Specs: []string{"Intel Core i5", "GTX 1660 6GB", "16GB DDR4", "SSD NVMe 512GB", "Windows 11 Pro"},
		},
	}
}
