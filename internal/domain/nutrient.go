package domain

// NutrientKey identifies one of the tracked micronutrients. The unit is baked
// into the key name (ug, mg, g per 100g of food).
type NutrientKey string

const (
	VitaminAUg   NutrientKey = "vitamin_a_ug"
	VitaminCMg   NutrientKey = "vitamin_c_mg"
	VitaminDUg   NutrientKey = "vitamin_d_ug"
	VitaminEMg   NutrientKey = "vitamin_e_mg"
	VitaminKUg   NutrientKey = "vitamin_k_ug"
	ThiaminMg    NutrientKey = "thiamin_mg"
	RiboflavinMg NutrientKey = "riboflavin_mg"
	NiacinMg     NutrientKey = "niacin_mg"
	VitaminB6Mg  NutrientKey = "vitamin_b6_mg"
	FolateUg     NutrientKey = "folate_ug"
	VitaminB12Ug NutrientKey = "vitamin_b12_ug"
	CalciumMg    NutrientKey = "calcium_mg"
	IronMg       NutrientKey = "iron_mg"
	MagnesiumMg  NutrientKey = "magnesium_mg"
	PhosphorusMg NutrientKey = "phosphorus_mg"
	PotassiumMg  NutrientKey = "potassium_mg"
	ZincMg       NutrientKey = "zinc_mg"
	SeleniumUg   NutrientKey = "selenium_ug"
	Omega3G      NutrientKey = "omega3_g"
)

// NutrientKeys is the closed set of tracked nutrients in canonical order.
// All vector iteration goes through this slice so output is deterministic.
var NutrientKeys = []NutrientKey{
	VitaminAUg,
	VitaminCMg,
	VitaminDUg,
	VitaminEMg,
	VitaminKUg,
	ThiaminMg,
	RiboflavinMg,
	NiacinMg,
	VitaminB6Mg,
	FolateUg,
	VitaminB12Ug,
	CalciumMg,
	IronMg,
	MagnesiumMg,
	PhosphorusMg,
	PotassiumMg,
	ZincMg,
	SeleniumUg,
	Omega3G,
}

// NutrientVector maps every tracked nutrient key to an amount. A valid vector
// carries all keys; a missing key means the vector was built by hand and
// should be passed through Normalize first.
type NutrientVector map[NutrientKey]float64

// ZeroVector returns a vector with every tracked key set to zero.
func ZeroVector() NutrientVector {
	v := make(NutrientVector, len(NutrientKeys))
	for _, key := range NutrientKeys {
		v[key] = 0
	}
	return v
}

// Clone returns an independent copy with all tracked keys present.
func (v NutrientVector) Clone() NutrientVector {
	out := make(NutrientVector, len(NutrientKeys))
	for _, key := range NutrientKeys {
		out[key] = v[key]
	}
	return out
}

// Normalize fills in any missing tracked keys with zero and drops keys
// outside the tracked set.
func (v NutrientVector) Normalize() NutrientVector {
	return v.Clone()
}

// DailyValues holds the reference daily intake per nutrient (FDA adult
// values). Percent-of-daily-value math divides totals by these constants.
var DailyValues = NutrientVector{
	VitaminAUg:   900,
	VitaminCMg:   90,
	VitaminDUg:   20,
	VitaminEMg:   15,
	VitaminKUg:   120,
	ThiaminMg:    1.2,
	RiboflavinMg: 1.3,
	NiacinMg:     16,
	VitaminB6Mg:  1.7,
	FolateUg:     400,
	VitaminB12Ug: 2.4,
	CalciumMg:    1300,
	IronMg:       18,
	MagnesiumMg:  420,
	PhosphorusMg: 1250,
	PotassiumMg:  4700,
	ZincMg:       11,
	SeleniumUg:   55,
	Omega3G:      1.6,
}
