package catalog

import "github.com/mealscan/backend/internal/domain"

// fallbackFoods is the built-in canonical food set used whenever the
// persisted catalog store is missing, unreachable, or empty. Amounts are
// per 100g, taken from USDA FoodData Central Foundation records.
var fallbackFoods = []domain.CanonicalFood{
	{
		CanonicalID:   "apple-raw",
		CanonicalName: "Apple, raw",
		Source:        domain.SourceStub,
		Per100g: domain.NutrientVector{
			domain.VitaminAUg: 3, domain.VitaminCMg: 4.6, domain.VitaminEMg: 0.18,
			domain.VitaminKUg: 2.2, domain.ThiaminMg: 0.017, domain.RiboflavinMg: 0.026,
			domain.NiacinMg: 0.091, domain.VitaminB6Mg: 0.041, domain.FolateUg: 3,
			domain.CalciumMg: 6, domain.IronMg: 0.12, domain.MagnesiumMg: 5,
			domain.PhosphorusMg: 11, domain.PotassiumMg: 107, domain.ZincMg: 0.04,
			domain.Omega3G: 0.009,
		},
	},
	{
		CanonicalID:   "banana-raw",
		CanonicalName: "Banana, raw",
		Source:        domain.SourceStub,
		Per100g: domain.NutrientVector{
			domain.VitaminAUg: 3, domain.VitaminCMg: 8.7, domain.VitaminEMg: 0.1,
			domain.VitaminKUg: 0.5, domain.ThiaminMg: 0.031, domain.RiboflavinMg: 0.073,
			domain.NiacinMg: 0.665, domain.VitaminB6Mg: 0.367, domain.FolateUg: 20,
			domain.CalciumMg: 5, domain.IronMg: 0.26, domain.MagnesiumMg: 27,
			domain.PhosphorusMg: 22, domain.PotassiumMg: 358, domain.ZincMg: 0.15,
			domain.SeleniumUg: 1, domain.Omega3G: 0.027,
		},
	},
	{
		CanonicalID:   "orange-raw",
		CanonicalName: "Orange, raw",
		Source:        domain.SourceStub,
		Per100g: domain.NutrientVector{
			domain.VitaminAUg: 11, domain.VitaminCMg: 53.2, domain.VitaminEMg: 0.18,
			domain.ThiaminMg: 0.087, domain.RiboflavinMg: 0.04, domain.NiacinMg: 0.282,
			domain.VitaminB6Mg: 0.06, domain.FolateUg: 30, domain.CalciumMg: 40,
			domain.IronMg: 0.1, domain.MagnesiumMg: 10, domain.PhosphorusMg: 14,
			domain.PotassiumMg: 181, domain.ZincMg: 0.07, domain.SeleniumUg: 0.5,
			domain.Omega3G: 0.007,
		},
	},
	{
		CanonicalID:   "avocado-raw",
		CanonicalName: "Avocado, raw",
		Source:        domain.SourceStub,
		Per100g: domain.NutrientVector{
			domain.VitaminAUg: 7, domain.VitaminCMg: 10, domain.VitaminEMg: 2.07,
			domain.VitaminKUg: 21, domain.ThiaminMg: 0.067, domain.RiboflavinMg: 0.13,
			domain.NiacinMg: 1.738, domain.VitaminB6Mg: 0.257, domain.FolateUg: 81,
			domain.CalciumMg: 12, domain.IronMg: 0.55, domain.MagnesiumMg: 29,
			domain.PhosphorusMg: 52, domain.PotassiumMg: 485, domain.ZincMg: 0.64,
			domain.SeleniumUg: 0.4, domain.Omega3G: 0.111,
		},
	},
	{
		CanonicalID:   "spinach-raw",
		CanonicalName: "Spinach, raw",
		Source:        domain.SourceStub,
		Per100g: domain.NutrientVector{
			domain.VitaminAUg: 469, domain.VitaminCMg: 28.1, domain.VitaminEMg: 2.03,
			domain.VitaminKUg: 482.9, domain.ThiaminMg: 0.078, domain.RiboflavinMg: 0.189,
			domain.NiacinMg: 0.724, domain.VitaminB6Mg: 0.195, domain.FolateUg: 194,
			domain.CalciumMg: 99, domain.IronMg: 2.71, domain.MagnesiumMg: 79,
			domain.PhosphorusMg: 49, domain.PotassiumMg: 558, domain.ZincMg: 0.53,
			domain.SeleniumUg: 1, domain.Omega3G: 0.138,
		},
	},
	{
		CanonicalID:   "broccoli-cooked",
		CanonicalName: "Broccoli, cooked",
		Source:        domain.SourceStub,
		Per100g: domain.NutrientVector{
			domain.VitaminAUg: 77, domain.VitaminCMg: 64.9, domain.VitaminEMg: 1.45,
			domain.VitaminKUg: 141.1, domain.ThiaminMg: 0.063, domain.RiboflavinMg: 0.123,
			domain.NiacinMg: 0.553, domain.VitaminB6Mg: 0.2, domain.FolateUg: 108,
			domain.CalciumMg: 40, domain.IronMg: 0.67, domain.MagnesiumMg: 21,
			domain.PhosphorusMg: 67, domain.PotassiumMg: 293, domain.ZincMg: 0.45,
			domain.SeleniumUg: 1.6, domain.Omega3G: 0.119,
		},
	},
	{
		CanonicalID:   "salmon-cooked",
		CanonicalName: "Salmon, cooked",
		Source:        domain.SourceStub,
		Per100g: domain.NutrientVector{
			domain.VitaminAUg: 58, domain.VitaminDUg: 13.1, domain.VitaminEMg: 1.1,
			domain.VitaminKUg: 0.5, domain.ThiaminMg: 0.23, domain.RiboflavinMg: 0.38,
			domain.NiacinMg: 8.04, domain.VitaminB6Mg: 0.6, domain.FolateUg: 29,
			domain.VitaminB12Ug: 2.8, domain.CalciumMg: 15, domain.IronMg: 0.34,
			domain.MagnesiumMg: 30, domain.PhosphorusMg: 256, domain.PotassiumMg: 384,
			domain.ZincMg: 0.43, domain.SeleniumUg: 41.4, domain.Omega3G: 2.2,
		},
	},
	{
		CanonicalID:   "chicken-breast-cooked",
		CanonicalName: "Chicken breast, cooked",
		Source:        domain.SourceStub,
		Per100g: domain.NutrientVector{
			domain.VitaminAUg: 6, domain.VitaminDUg: 0.1, domain.VitaminEMg: 0.27,
			domain.VitaminKUg: 0.3, domain.ThiaminMg: 0.07, domain.RiboflavinMg: 0.114,
			domain.NiacinMg: 13.7, domain.VitaminB6Mg: 0.6, domain.FolateUg: 4,
			domain.VitaminB12Ug: 0.34, domain.CalciumMg: 15, domain.IronMg: 1.04,
			domain.MagnesiumMg: 29, domain.PhosphorusMg: 228, domain.PotassiumMg: 256,
			domain.ZincMg: 1, domain.SeleniumUg: 27.6, domain.Omega3G: 0.03,
		},
	},
	{
		CanonicalID:   "egg-whole",
		CanonicalName: "Egg, whole",
		Source:        domain.SourceStub,
		Per100g: domain.NutrientVector{
			domain.VitaminAUg: 160, domain.VitaminDUg: 2, domain.VitaminEMg: 1.05,
			domain.VitaminKUg: 0.3, domain.ThiaminMg: 0.04, domain.RiboflavinMg: 0.457,
			domain.NiacinMg: 0.075, domain.VitaminB6Mg: 0.17, domain.FolateUg: 47,
			domain.VitaminB12Ug: 0.89, domain.CalciumMg: 56, domain.IronMg: 1.75,
			domain.MagnesiumMg: 12, domain.PhosphorusMg: 198, domain.PotassiumMg: 138,
			domain.ZincMg: 1.29, domain.SeleniumUg: 30.7, domain.Omega3G: 0.1,
		},
	},
	{
		CanonicalID:   "milk-whole",
		CanonicalName: "Milk, whole",
		Source:        domain.SourceStub,
		Per100g: domain.NutrientVector{
			domain.VitaminAUg: 46, domain.VitaminDUg: 1.3, domain.VitaminEMg: 0.07,
			domain.VitaminKUg: 0.3, domain.ThiaminMg: 0.046, domain.RiboflavinMg: 0.169,
			domain.NiacinMg: 0.089, domain.VitaminB6Mg: 0.036, domain.FolateUg: 5,
			domain.VitaminB12Ug: 0.45, domain.CalciumMg: 113, domain.IronMg: 0.03,
			domain.MagnesiumMg: 10, domain.PhosphorusMg: 84, domain.PotassiumMg: 132,
			domain.ZincMg: 0.37, domain.SeleniumUg: 3.7, domain.Omega3G: 0.075,
		},
	},
	{
		CanonicalID:   "yogurt-plain",
		CanonicalName: "Yogurt, plain",
		Source:        domain.SourceStub,
		Per100g: domain.NutrientVector{
			domain.VitaminAUg: 27, domain.VitaminCMg: 0.5, domain.VitaminDUg: 0.1,
			domain.VitaminEMg: 0.06, domain.VitaminKUg: 0.2, domain.ThiaminMg: 0.029,
			domain.RiboflavinMg: 0.142, domain.NiacinMg: 0.075, domain.VitaminB6Mg: 0.032,
			domain.FolateUg: 7, domain.VitaminB12Ug: 0.37, domain.CalciumMg: 121,
			domain.IronMg: 0.05, domain.MagnesiumMg: 12, domain.PhosphorusMg: 95,
			domain.PotassiumMg: 155, domain.ZincMg: 0.59, domain.SeleniumUg: 2.2,
			domain.Omega3G: 0.03,
		},
	},
	{
		CanonicalID:   "rice-white-cooked",
		CanonicalName: "Rice, white, cooked",
		Source:        domain.SourceStub,
		Per100g: domain.NutrientVector{
			domain.VitaminEMg: 0.04, domain.ThiaminMg: 0.02, domain.RiboflavinMg: 0.013,
			domain.NiacinMg: 0.4, domain.VitaminB6Mg: 0.093, domain.FolateUg: 3,
			domain.CalciumMg: 10, domain.IronMg: 0.2, domain.MagnesiumMg: 12,
			domain.PhosphorusMg: 43, domain.PotassiumMg: 35, domain.ZincMg: 0.49,
			domain.SeleniumUg: 7.5, domain.Omega3G: 0.013,
		},
	},
	{
		CanonicalID:   "bread-whole-wheat",
		CanonicalName: "Bread, whole wheat",
		Source:        domain.SourceStub,
		Per100g: domain.NutrientVector{
			domain.VitaminEMg: 0.53, domain.VitaminKUg: 7.8, domain.ThiaminMg: 0.39,
			domain.RiboflavinMg: 0.167, domain.NiacinMg: 4.44, domain.VitaminB6Mg: 0.215,
			domain.FolateUg: 42, domain.CalciumMg: 161, domain.IronMg: 2.47,
			domain.MagnesiumMg: 76, domain.PhosphorusMg: 212, domain.PotassiumMg: 250,
			domain.ZincMg: 1.76, domain.SeleniumUg: 25.7, domain.Omega3G: 0.07,
		},
	},
	{
		CanonicalID:   "almonds",
		CanonicalName: "Almonds",
		Source:        domain.SourceStub,
		Per100g: domain.NutrientVector{
			domain.VitaminEMg: 25.6, domain.ThiaminMg: 0.205, domain.RiboflavinMg: 1.138,
			domain.NiacinMg: 3.618, domain.VitaminB6Mg: 0.137, domain.FolateUg: 44,
			domain.CalciumMg: 269, domain.IronMg: 3.71, domain.MagnesiumMg: 270,
			domain.PhosphorusMg: 481, domain.PotassiumMg: 733, domain.ZincMg: 3.12,
			domain.SeleniumUg: 4.1, domain.Omega3G: 0.003,
		},
	},
}

// FallbackFoods returns a fresh copy of the static fallback set, with all
// nutrient keys filled in. The food-unknown entry is not included here; New
// always adds it.
func FallbackFoods() []domain.CanonicalFood {
	out := make([]domain.CanonicalFood, len(fallbackFoods))
	for i, f := range fallbackFoods {
		f.Per100g = f.Per100g.Normalize()
		out[i] = f
	}
	return out
}
