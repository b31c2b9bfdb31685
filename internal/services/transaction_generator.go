package services

import (
	"fmt"
	"math"
	"math/rand"

	"bank-statement-generator/internal/models"

	"github.com/shopspring/decimal"
)

type transactionGenerator struct {
	rng *rand.Rand
}

const (
	payrollDay             = 15
	purchaseLastDay        = 28
	checkFirstDay          = 5
	checkLastDay           = 25
	savingsLastDay         = 25
	creditLastDay          = 25
	baseCheckNumber        = 1000
	checksPerMonthStride   = 10
	minChecksPerMonth      = 1
	maxChecksPerMonth      = 10
	tripDuration           = 3
	tripProbability        = 0.30
	memoProbability        = 0.25
	savingsDepositRatio    = 0.70
	countVariance          = 0.25
	homeDescriptionPrefix  = "POS PURCHASE - "
	cardDescriptionPrefix  = "PURCHASE - "
	payrollDescription     = "DIRECT DEPOSIT - EMPLOYER PAYROLL"
	interestDescription    = "INTEREST PAYMENT"
	depositDescription     = "DEPOSIT"
	withdrawalDescription  = "WITHDRAWAL"
	checkDescriptionFormat = "CHECK #%d"
)

var payrollAmount = decimal.NewFromInt(1500)

// Amount ranges are in cents, inclusive on both ends
type centsRange struct {
	min int64
	max int64
}

var (
	checkingPurchaseRange = centsRange{500, 12099}
	checkAmountRange      = centsRange{5000, 25099}
	savingsDepositRange   = centsRange{5000, 30099}
	savingsWithdrawRange  = centsRange{2500, 12599}
	creditPurchaseRange   = centsRange{2000, 15099}
	airfareRange          = centsRange{20000, 60000}
	carRentalRange        = centsRange{10000, 30000}
	trainFareRange        = centsRange{7500, 22500}
	hotelNightRange       = centsRange{10000, 30000}
	localRideRange        = centsRange{1000, 5000}
	tripMealRange         = centsRange{2000, 10000}
	tripAttractionRange   = centsRange{1500, 7500}
	tripShoppingRange     = centsRange{2500, 12500}
)

// NewTransactionGenerator creates a transaction generator driven by the given seed
func NewTransactionGenerator(seed int64) TransactionGeneratorInterface {
	return &transactionGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// TransactionCount returns a count within 25% of the target
func (g *transactionGenerator) TransactionCount(target int) int {
	if target <= 0 {
		return 0
	}
	minCount := int(math.Floor(float64(target) * (1 - countVariance)))
	maxCount := int(math.Ceil(float64(target) * (1 + countVariance)))
	return randomIntBetween(g.rng, minCount, maxCount)
}

// GenerateChecking produces payroll, POS purchases and checks for one month of a checking account
func (g *transactionGenerator) GenerateChecking(period models.MonthPeriod, target int) ([]*models.Transaction, []models.Check) {
	purchaseCount := g.TransactionCount(target)
	transactions := make([]*models.Transaction, 0, purchaseCount+maxChecksPerMonth+1)

	payroll := models.NewTransaction(period.Day(payrollDay), payrollDescription, models.TransactionKindPayroll, payrollAmount)
	payroll.Category = models.CategoryIncome
	transactions = append(transactions, payroll)

	for i := 0; i < purchaseCount; i++ {
		merchant, label := g.RandomMerchant("")
		day := randomIntBetween(g.rng, 1, purchaseLastDay)
		amount := randomAmount(g.rng, checkingPurchaseRange)

		txn := models.NewTransaction(period.Day(day), homeDescriptionPrefix+label, models.TransactionKindPurchase, amount.Neg())
		txn.Category = merchant.Category
		transactions = append(transactions, txn)
	}

	checkCount := int(math.Ceil(float64(purchaseCount) * 0.1))
	checkCount = max(minChecksPerMonth, min(maxChecksPerMonth, checkCount))
	checks := make([]models.Check, 0, checkCount)

	for i := 0; i < checkCount; i++ {
		number := baseCheckNumber + (int(period.Month)-1)*checksPerMonthStride + i
		date := period.Day(randomIntBetween(g.rng, checkFirstDay, checkLastDay))
		amount := randomAmount(g.rng, checkAmountRange)

		txn := models.NewTransaction(date, fmt.Sprintf(checkDescriptionFormat, number), models.TransactionKindCheck, amount.Neg())
		txn.Category = models.CategoryCheck
		txn.CheckNumber = number
		transactions = append(transactions, txn)

		memo := ""
		if g.rng.Float64() < memoProbability {
			memo = fmt.Sprintf("Invoice #%d", randomIntBetween(g.rng, 10000, 99999))
		}
		checks = append(checks, models.NewCheck(number, date, amount, pick(g.rng, checkPayees), memo))
	}

	return transactions, checks
}

// GenerateSavings produces the month's interest payment and, after the first month,
// deposits and withdrawals. The interest amount is resolved from the statement's
// opening balance once it is known.
func (g *transactionGenerator) GenerateSavings(statement *models.Statement, target int, initial bool) []*models.Transaction {
	period := statement.Period()

	interest := models.NewTransaction(period.EndDate, interestDescription, models.TransactionKindInterest, decimal.Zero)
	interest.Category = models.CategoryInterest
	interest.Pending = &models.PendingAmount{Rule: models.PendingRuleInterest, Basis: statement, Sign: 1}

	transactions := []*models.Transaction{interest}
	if initial {
		return transactions
	}

	count := g.TransactionCount(target)
	for i := 0; i < count; i++ {
		date := period.Day(randomIntBetween(g.rng, 1, savingsLastDay))

		var txn *models.Transaction
		if g.rng.Float64() < savingsDepositRatio {
			txn = models.NewTransaction(date, depositDescription, models.TransactionKindDeposit, randomAmount(g.rng, savingsDepositRange))
			txn.Category = models.CategoryIncome
		} else {
			txn = models.NewTransaction(date, withdrawalDescription, models.TransactionKindWithdrawal, randomAmount(g.rng, savingsWithdrawRange).Neg())
			txn.Category = models.CategoryATMCash
		}
		transactions = append(transactions, txn)
	}

	return transactions
}

// GenerateCredit produces card purchases for one month. Purchases increase the balance owed.
func (g *transactionGenerator) GenerateCredit(period models.MonthPeriod, target int) []*models.Transaction {
	count := g.TransactionCount(target)
	transactions := make([]*models.Transaction, 0, count)

	for i := 0; i < count; i++ {
		merchant, label := g.RandomMerchant("")
		day := randomIntBetween(g.rng, 1, creditLastDay)

		txn := models.NewTransaction(period.Day(day), cardDescriptionPrefix+label, models.TransactionKindPurchase, randomAmount(g.rng, creditPurchaseRange))
		txn.Category = merchant.Category
		transactions = append(transactions, txn)
	}

	return transactions
}

// GenerateTrip returns a three day cluster of travel spending for the month, or nil
// when no trip happens. Amounts follow the sign convention of the account type.
func (g *transactionGenerator) GenerateTrip(period models.MonthPeriod, accountType string) []*models.Transaction {
	if period.DaysInMonth <= tripDuration || g.rng.Float64() >= tripProbability {
		return nil
	}

	sign := int64(-1)
	if accountType == models.AccountTypeCredit {
		sign = 1
	}

	destination := pick(g.rng, travelDestinations)
	startDay := randomIntBetween(g.rng, 1, period.DaysInMonth-tripDuration)
	endDay := min(startDay+tripDuration, period.DaysInMonth)

	var trip []*models.Transaction
	add := func(day int, prefix, label, category string, amount decimal.Decimal) {
		txn := models.NewTransaction(period.Day(day), prefix+label, models.TransactionKindPurchase, amount.Mul(decimal.NewFromInt(sign)))
		txn.Category = category
		txn.TravelRelated = true
		trip = append(trip, txn)
	}

	switch roll := g.rng.Float64(); {
	case roll < 0.7:
		add(startDay, cardDescriptionPrefix, pick(g.rng, tripAirlines)+" - "+homeDepartureCity, models.CategoryTravel, randomAmount(g.rng, airfareRange))
	case roll < 0.9:
		add(startDay, cardDescriptionPrefix, pick(g.rng, tripRentalCompanies)+" - "+homeDepartureCity, models.CategoryTravel, randomAmount(g.rng, carRentalRange))
	default:
		add(startDay, cardDescriptionPrefix, "Amtrak - "+homeDepartureCity, models.CategoryTravel, randomAmount(g.rng, trainFareRange))
	}

	nights := decimal.NewFromInt(int64(endDay - startDay))
	hotelTotal := randomAmount(g.rng, hotelNightRange).Mul(nights).Round(2)
	add(startDay, cardDescriptionPrefix, pick(g.rng, tripHotels)+" - "+destination, models.CategoryTravel, hotelTotal)

	for day := startDay; day <= endDay; day++ {
		if g.rng.Float64() < 0.7 {
			add(day, cardDescriptionPrefix, pick(g.rng, tripRideServices)+" - "+destination, models.CategoryTransportation, randomAmount(g.rng, localRideRange))
		}
	}

	for day := startDay; day <= endDay; day++ {
		daily := randomIntBetween(g.rng, 1, 3)
		for i := 0; i < daily; i++ {
			switch roll := g.rng.Float64(); {
			case roll < 0.6:
				merchant, label := g.RandomMerchant(destination)
				add(day, homeDescriptionPrefix, label, merchant.Category, randomAmount(g.rng, tripMealRange))
			case roll < 0.9:
				add(day, cardDescriptionPrefix, pick(g.rng, tripAttractions)+" - "+destination, models.CategoryEntertainment, randomAmount(g.rng, tripAttractionRange))
			default:
				merchant, label := g.RandomMerchant(destination)
				add(day, homeDescriptionPrefix, label, merchant.Category, randomAmount(g.rng, tripShoppingRange))
			}
		}
	}

	return trip
}

// RandomMerchant picks a merchant for the location and returns it with its
// "<merchant> - <city>" label. An empty location means a random home city.
func (g *transactionGenerator) RandomMerchant(location string) (models.MerchantInfo, string) {
	city := location
	if city == "" {
		city = pick(g.rng, homeCities)
	}

	typeRoll := g.rng.Float64()
	var list merchantList

	if location != "" && !isHomeCity(location) {
		switch travelRoll := g.rng.Float64(); {
		case travelRoll < 0.25:
			list = hotels
		case travelRoll < 0.5:
			list = travelServices
		case travelRoll < 0.65:
			list = attractions
		case travelRoll < 0.8:
			list = restaurants
		case typeRoll < 0.5:
			list = retailers
		default:
			list = gasStations
		}
	} else {
		switch {
		case typeRoll < 0.4:
			list = retailers
		case typeRoll < 0.7:
			list = restaurants
		default:
			list = gasStations
		}
	}

	merchant := models.MerchantInfo{Name: pick(g.rng, list.names), Category: list.category}
	return merchant, merchant.Name + " - " + city
}

// randomIntBetween returns a uniform integer in [lo, hi]
func randomIntBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// randomAmount returns a uniform amount in whole cents within the range
func randomAmount(rng *rand.Rand, r centsRange) decimal.Decimal {
	cents := r.min
	if r.max > r.min {
		cents += rng.Int63n(r.max - r.min + 1)
	}
	return decimal.New(cents, -2)
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}
