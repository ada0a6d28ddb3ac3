package models

// Plan is one entry of the static plan catalog shown on the pricing page.
// The catalog is not stored in the database; only PriceID matters to the
// billing engine, the rest is display data.
type Plan struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Interval    string   `json:"interval"`
	Features    []string `json:"features"`
	PriceID     string   `json:"price_id"`
	IsActive    bool     `json:"is_active"`
	TrialDays   int64    `json:"trialDays,omitempty"`
	PromoCode   bool     `json:"promoCode,omitempty"`
	ComingSoon  bool     `json:"comingSoon"`
}

var Plans = []Plan{
	{
		ID:          "free_plan",
		Name:        FreePlan,
		Description: "Basic access to Health Rocket",
		Price:       0,
		Interval:    "month",
		Features: []string{
			"Access to all basic features",
			"Daily boosts and challenges",
			"Health tracking",
			"Community access",
			"Prize Pool Rewards not included",
		},
		PriceID:  "price_1Qt7haHPnFqUVCZdl33y9bET",
		IsActive: true,
	},
	{
		ID:          "pro_plan",
		Name:        ProPlan,
		Description: "Full access to all features",
		Price:       59.95,
		Interval:    "month",
		Features: []string{
			"All Free Plan features",
			"Premium challenges and quests",
			"Prize pool eligibility",
			"Advanced health analytics",
			"60-day free trial",
		},
		PriceID:   "price_1Qt7jVHPnFqUVCZdutw3mSWN",
		IsActive:  true,
		TrialDays: 60,
	},
	{
		ID:          "family_plan",
		Name:        "Pro + Family",
		Description: "Share with up to 5 family members",
		Price:       89.95,
		Interval:    "month",
		Features: []string{
			"All Pro Plan features",
			"Up to 5 family members",
			"Family challenges and competitions",
			"Family leaderboard",
			"Shared progress tracking",
		},
		PriceID:    "price_1Qt7lXHPnFqUVCZdlpS1vrfs",
		IsActive:   true,
		ComingSoon: true,
	},
	{
		ID:          "team_plan",
		Name:        "Pro + Team",
		Description: "For teams and organizations",
		Price:       149.95,
		Interval:    "month",
		Features: []string{
			"All Pro Plan features",
			"Up to 20 team members",
			"Team challenges and competitions",
			"Team analytics dashboard",
			"Admin controls and reporting",
		},
		PriceID:    "price_1Qt7mVHPnFqUVCZdqvWROuTD",
		IsActive:   true,
		ComingSoon: true,
	},
}
