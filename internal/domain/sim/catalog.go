package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type ClassConfig struct {
	Name          string  `yaml:"name" json:"name"`
	StartingMoney float64 `yaml:"starting_money" json:"starting_money"`
	Rent          float64 `yaml:"rent" json:"rent"`
	Groceries     float64 `yaml:"groceries" json:"groceries"`
	Transport     float64 `yaml:"transport" json:"transport"`
	Debt          float64 `yaml:"debt" json:"debt"`
	Description   string  `yaml:"description" json:"description"`
}

type EducationConfig struct {
	Name        string  `yaml:"name" json:"name"`
	Cost        float64 `yaml:"cost" json:"cost"`
	Income      float64 `yaml:"income" json:"income"`
	Description string  `yaml:"description" json:"description"`
}

type DifficultyConfig struct {
	Name             string  `yaml:"name" json:"name"`
	EmergencyChance  float64 `yaml:"emergency_chance" json:"emergency_chance"`
	MarketVolatility float64 `yaml:"market_volatility" json:"market_volatility"`
	Description      string  `yaml:"description" json:"description"`
}

type ChoiceCategory string

const (
	CategoryLeisure   ChoiceCategory = "leisure"
	CategoryRisky     ChoiceCategory = "risky"
	CategoryUtility   ChoiceCategory = "utility"
	CategoryEducation ChoiceCategory = "education"
)

type LifeChoice struct {
	Name         string         `yaml:"name" json:"name"`
	Cost         float64        `yaml:"cost" json:"cost"`
	Happiness    float64        `yaml:"happiness" json:"happiness"`
	Stress       float64        `yaml:"stress" json:"stress"`
	Category     ChoiceCategory `yaml:"category" json:"category"`
	DebuffChance float64        `yaml:"debuff_chance,omitempty" json:"debuff_chance,omitempty"`
	Debuff       Debuff         `yaml:"debuff,omitempty" json:"debuff,omitempty"`
	WinChance    float64        `yaml:"win_chance,omitempty" json:"win_chance,omitempty"`
	WinAmount    float64        `yaml:"win_amount,omitempty" json:"win_amount,omitempty"`
	OneTime      bool           `yaml:"one_time,omitempty" json:"one_time,omitempty"`
}

// EmergencyEvent is a one-shot shock. Only the fields relevant to a specific
// event are nonzero; every nonzero field is applied when the event resolves.
type EmergencyEvent struct {
	Name           string  `yaml:"name" json:"name"`
	Description    string  `yaml:"description" json:"description"`
	Cost           float64 `yaml:"cost,omitempty" json:"cost,omitempty"`
	MonthsNoIncome int     `yaml:"months_no_income,omitempty" json:"months_no_income,omitempty"`
	InvestmentLoss float64 `yaml:"investment_loss,omitempty" json:"investment_loss,omitempty"`
	StressIncrease float64 `yaml:"stress_increase,omitempty" json:"stress_increase,omitempty"`
}

// Catalog bundles every immutable preset table the engine reads.
type Catalog struct {
	Classes      map[string]ClassConfig      `yaml:"classes"`
	Educations   map[string]EducationConfig  `yaml:"educations"`
	Difficulties map[string]DifficultyConfig `yaml:"difficulties"`
	LifeChoices  map[string]LifeChoice       `yaml:"life_choices"`
	Emergencies  []EmergencyEvent            `yaml:"emergencies"`
}

func DefaultCatalog() Catalog {
	return Catalog{
		Classes: map[string]ClassConfig{
			"upper":  {Name: "Upper Class", StartingMoney: 50000, Rent: 2500, Groceries: 800, Transport: 400, Debt: 0, Description: "No debt"},
			"middle": {Name: "Middle Class", StartingMoney: 15000, Rent: 1500, Groceries: 500, Transport: 300, Debt: 5000, Description: "Some starting debt"},
			"lower":  {Name: "Lower Class", StartingMoney: 2000, Rent: 800, Groceries: 300, Transport: 150, Debt: 15000, Description: "Significant debt burden"},
		},
		Educations: map[string]EducationConfig{
			"polytechnic": {Name: "Polytechnic", Cost: 0, Income: 3500, Description: "Standard education level"},
			"university":  {Name: "University", Cost: 30000, Income: 5000, Description: "Higher earning potential, high debt"},
			"masters":     {Name: "Masters", Cost: 50000, Income: 6500, Description: "Max earning potential, massive debt"},
		},
		Difficulties: map[string]DifficultyConfig{
			"easy":   {Name: "Easy Mode", EmergencyChance: 0.05, MarketVolatility: 0.5, Description: "Fewer emergencies, stable markets"},
			"normal": {Name: "Normal Mode", EmergencyChance: 0.10, MarketVolatility: 1.0, Description: "Balanced challenge"},
			"hard":   {Name: "Hard Mode", EmergencyChance: 0.20, MarketVolatility: 1.5, Description: "Frequent emergencies, volatile markets"},
		},
		LifeChoices: map[string]LifeChoice{
			"vacation":     {Name: "Vacation", Cost: 2500, Happiness: 15, Stress: -10, Category: CategoryLeisure},
			"fineDining":   {Name: "Fine Dining", Cost: 500, Happiness: 8, Stress: -3, Category: CategoryLeisure},
			"staycation":   {Name: "Staycation", Cost: 800, Happiness: 10, Stress: -5, Category: CategoryLeisure},
			"themePark":    {Name: "Theme Park", Cost: 300, Happiness: 12, Stress: -4, Category: CategoryLeisure},
			"shopping":     {Name: "Shopping", Cost: 1000, Happiness: 10, Stress: -5, Category: CategoryRisky, DebuffChance: 0.3, Debuff: DebuffAddict},
			"gambling":     {Name: "Gambling", Cost: 1500, Happiness: 5, Stress: 0, Category: CategoryRisky, DebuffChance: 0.4, Debuff: DebuffAddict, WinChance: 0.2, WinAmount: 3000},
			"clubbing":     {Name: "Clubbing", Cost: 600, Happiness: 8, Stress: -3, Category: CategoryRisky, DebuffChance: 0.25, Debuff: DebuffAddict},
			"smoking":      {Name: "Smoking", Cost: 200, Happiness: 2, Stress: -8, Category: CategoryRisky, DebuffChance: 0.5, Debuff: DebuffAddict},
			"vehicle":      {Name: "Buy Vehicle", Cost: 25000, Happiness: 20, Stress: 0, Category: CategoryUtility, OneTime: true},
			"relationship": {Name: "Date Night", Cost: 500, Happiness: 15, Stress: -5, Category: CategoryUtility},
			"university":   {Name: "University", Cost: 30000, Category: CategoryEducation, OneTime: true},
			"masters":      {Name: "Masters", Cost: 50000, Category: CategoryEducation, OneTime: true},
		},
		Emergencies: []EmergencyEvent{
			{Name: "Medical Emergency", Description: "You've been diagnosed with a serious health condition requiring immediate treatment.", Cost: 8000, StressIncrease: 30},
			{Name: "Job Loss", Description: "Your company has downsized and you've been laid off. No income for 3 months.", MonthsNoIncome: 3, StressIncrease: 40},
			{Name: "Market Crash", Description: "The stock market has crashed! Your investments have lost significant value.", InvestmentLoss: 0.4, StressIncrease: 25},
			{Name: "Home Emergency", Description: "Major repairs needed for your living space.", Cost: 3500, StressIncrease: 15},
			{Name: "Family Emergency", Description: "A family member needs financial assistance urgently.", Cost: 5000, StressIncrease: 20},
		},
	}
}

// BurnoutEvent is the synthetic emergency dispatched when stress or happiness
// crosses the burnout threshold. Its stress increase is zero: stress is forced
// to BurnoutRecoveryStress at trigger time instead.
func BurnoutEvent() EmergencyEvent {
	return EmergencyEvent{
		Name:           "BURNOUT!",
		Description:    "You've reached your breaking point. Forced medical leave.",
		Cost:           BurnoutCost,
		MonthsNoIncome: BurnoutMonthsNoIncome,
	}
}

// LoadCatalog starts from the defaults and overlays whatever tables the YAML
// file defines. Tables absent from the file keep their default entries.
func LoadCatalog(path string) (Catalog, error) {
	cat := DefaultCatalog()
	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	var override Catalog
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	if len(override.Classes) > 0 {
		cat.Classes = override.Classes
	}
	if len(override.Educations) > 0 {
		cat.Educations = override.Educations
	}
	if len(override.Difficulties) > 0 {
		cat.Difficulties = override.Difficulties
	}
	if len(override.LifeChoices) > 0 {
		cat.LifeChoices = override.LifeChoices
	}
	if len(override.Emergencies) > 0 {
		cat.Emergencies = override.Emergencies
	}
	return cat, nil
}
