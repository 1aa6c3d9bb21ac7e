package sim

const (
	Horizon           = 24
	ActionsPerMonth   = 3
	StartingHappiness = 50

	BurnoutStressThreshold    = 100
	BurnoutHappinessThreshold = 10
	BurnoutRecoveryStress     = 50
	BurnoutCost               = 2000
	BurnoutMonthsNoIncome     = 2

	DebtMonthlyInterest          = 1.00417 // ~5%/year
	EmergencyFundMonthlyInterest = 1.00167 // ~2%/year

	MonthlyStressRelief   = 2
	MonthlyHappinessDecay = 3
	DebtPressureRatio     = 0.5
	DebtPressureStress    = 5
	ThinFundMonths        = 3
	ThinFundStress        = 2

	DistractedIncomeFactor = 0.8
	DistractedFiringChance = 0.1
	FiringMonthsNoIncome   = 2
	FiringStress           = 30
	DistractedDebuffStress = 10

	BankruptcyFloor = -10000

	MaxCustomAmount         = 100000
	EmergencyFundDepositCap = 100

	PayDebtStressRelief = 5

	RehabCost            = 1500
	RehabHappinessBonus  = 10
	TherapyCost          = 800
	TherapyStressRelief  = 20
	TherapyHappinessGain = 15

	UniversityIncomeBoost = 1500
	UniversityHappinessUp = 10
	UniversityStressUp    = 15
	MastersIncomeBoost    = 1000
	MastersHappinessUp    = 15
	MastersStressUp       = 20

	GoalNetWorthTarget      = 50000
	GoalEmergencyFundTarget = 10000
	GoalHappinessTarget     = 70

	GoalScoreBonus       = 5000
	HappinessScoreWeight = 100
	MonthScoreWeight     = 500

	EarlyWindowMonths = 6
)
