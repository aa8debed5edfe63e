package sample

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"github.com/viant/dumper"
)

type (
	// Turnover represents customer order total
	Turnover struct {
		Id  string
		Sum float64
	}

	// Location represents a customer sharing its city with a supplier
	Location struct {
		CustomerID string
		City       string
		Country    string
	}

	// MaxOrder represents customer largest order total
	MaxOrder struct {
		Id    string
		Total float64
	}

	// Since represents month and year of customer first order
	Since struct {
		Id    string
		Month int
		Year  int
	}

	// RankedSince represents customer first order period with turnover
	RankedSince struct {
		Id    string
		Month int
		Year  int
		Sum   float64
	}

	// Contact represents customer contact details
	Contact struct {
		CustomerID string
		PostalCode string
		Region     string
		Phone      string
	}

	// StockGroup represents category products sharing units in stock, sorted by price
	StockGroup struct {
		UnitsInStock int
		Products     []Product
	}

	// CategoryGroup represents category products grouped by stock
	CategoryGroup struct {
		Category string
		Stock    []StockGroup
	}

	// PriceGroup represents products in a price band
	PriceGroup struct {
		Band     string
		Products []Product
	}

	// CityStat represents city average turnover and average order count per customer
	CityStat struct {
		City          string
		Profitability float64
		Intensity     float64
	}

	// MonthStat represents order count in a month
	MonthStat struct {
		Month         int
		MonthActivity int
	}

	// YearStat represents order count in a year
	YearStat struct {
		Year         int
		YearActivity int
	}

	// YearMonthStat represents order count in a year and month
	YearMonthStat struct {
		Year              int
		Month             int
		YearMonthActivity int
	}

	// CustomerMonthStat represents customer activity per month
	CustomerMonthStat struct {
		CustomerId string
		MonthStat  []MonthStat
	}

	// CustomerYearStat represents customer activity per year
	CustomerYearStat struct {
		CustomerId string
		YearStat   []YearStat
	}

	// CustomerYearMonthStat represents customer activity per year and month
	CustomerYearMonthStat struct {
		CustomerId    string
		YearMonthStat []YearMonthStat
	}

	group[K comparable, T any] struct {
		key   K
		items []T
	}
)

// groupBy groups items by key, groups follow the first appearance of their key
func groupBy[K comparable, T any](items []T, key func(T) K) []*group[K, T] {
	var result []*group[K, T]
	index := map[K]*group[K, T]{}
	for _, item := range items {
		k := key(item)
		g, ok := index[k]
		if !ok {
			g = &group[K, T]{key: k}
			index[k] = g
			result = append(result, g)
		}
		g.items = append(g.items, item)
	}
	return result
}

func turnover(c Customer) float64 {
	sum := 0.0
	for _, o := range c.Orders {
		sum += o.Total
	}
	return sum
}

// LowNumbers returns numbers lower than limit, in source order
func LowNumbers(numbers []int, limit int) []int {
	var result []int
	for _, n := range numbers {
		if n < limit {
			result = append(result, n)
		}
	}
	return result
}

// InStock returns products with units in stock
func (d *DataSource) InStock() []Product {
	var result []Product
	for _, p := range d.Products {
		if p.UnitsInStock > 0 {
			result = append(result, p)
		}
	}
	return result
}

// CustomersIn returns customers from city
func (d *DataSource) CustomersIn(city string) []Customer {
	var result []Customer
	for _, c := range d.Customers {
		if c.City == city {
			result = append(result, c)
		}
	}
	return result
}

// TurnoverAbove returns customers whose order total exceeds limit
func (d *DataSource) TurnoverAbove(limit float64) []Turnover {
	var result []Turnover
	for _, c := range d.Customers {
		if sum := turnover(c); sum > limit {
			result = append(result, Turnover{Id: c.CustomerID, Sum: sum})
		}
	}
	return result
}

// SupplierLocations returns a row per customer and supplier located in the same country and city
func (d *DataSource) SupplierLocations() []Location {
	var result []Location
	for _, c := range d.Customers {
		for _, s := range d.Suppliers {
			if c.Country == s.Country && c.City == s.City {
				result = append(result, Location{CustomerID: c.CustomerID, City: c.City, Country: c.Country})
			}
		}
	}
	return result
}

// SupplierLocationsJoin returns the same rows as SupplierLocations using a supplier index
func (d *DataSource) SupplierLocationsJoin() []Location {
	type place struct{ country, city string }
	suppliers := map[place]int{}
	for _, s := range d.Suppliers {
		suppliers[place{s.Country, s.City}]++
	}
	var result []Location
	for _, c := range d.Customers {
		for i := 0; i < suppliers[place{c.Country, c.City}]; i++ {
			result = append(result, Location{CustomerID: c.CustomerID, City: c.City, Country: c.Country})
		}
	}
	return result
}

// LargeOrders returns customers having any order above limit with their largest order total
func (d *DataSource) LargeOrders(limit float64) []MaxOrder {
	var result []MaxOrder
	for _, c := range d.Customers {
		largest := 0.0
		for _, o := range c.Orders {
			if o.Total > largest {
				largest = o.Total
			}
		}
		if largest > limit {
			result = append(result, MaxOrder{Id: c.CustomerID, Total: largest})
		}
	}
	return result
}

// CustomersSince returns month and year of the first order of customers having orders
func (d *DataSource) CustomersSince() []Since {
	var result []Since
	for _, c := range d.Customers {
		if len(c.Orders) == 0 {
			continue
		}
		first := c.Orders[0].OrderDate
		for _, o := range c.Orders[1:] {
			if o.OrderDate.Before(first) {
				first = o.OrderDate
			}
		}
		result = append(result, Since{Id: c.CustomerID, Month: int(first.Month()), Year: first.Year()})
	}
	return result
}

// RankedCustomersSince returns CustomersSince sorted by year, month, turnover descending and company name
func (d *DataSource) RankedCustomersSince() []RankedSince {
	customers := map[string]Customer{}
	for _, c := range d.Customers {
		customers[c.CustomerID] = c
	}
	var result []RankedSince
	for _, since := range d.CustomersSince() {
		result = append(result, RankedSince{Id: since.Id, Month: since.Month, Year: since.Year, Sum: turnover(customers[since.Id])})
	}
	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		if a.Sum != b.Sum {
			return a.Sum > b.Sum
		}
		return customers[a.Id].CompanyName < customers[b.Id].CompanyName
	})
	return result
}

// IncompleteContacts returns customers with a non numeric postal code, a blank region or a phone without an area code
func (d *DataSource) IncompleteContacts() []Contact {
	var result []Contact
	for _, c := range d.Customers {
		if !isNumeric(c.PostalCode) || strings.TrimSpace(c.Region) == "" || !strings.HasPrefix(c.Phone, "(") {
			result = append(result, Contact{CustomerID: c.CustomerID, PostalCode: c.PostalCode, Region: c.Region, Phone: c.Phone})
		}
	}
	return result
}

func isNumeric(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// CategoryGroups groups products by category, then by units in stock, products in a stock group are sorted by price
func (d *DataSource) CategoryGroups() []CategoryGroup {
	var result []CategoryGroup
	for _, category := range groupBy(d.Products, func(p Product) string { return p.Category }) {
		categoryGroup := CategoryGroup{Category: category.key}
		for _, stock := range groupBy(category.items, func(p Product) int { return p.UnitsInStock }) {
			products := stock.items
			sort.SliceStable(products, func(i, j int) bool { return products[i].UnitPrice < products[j].UnitPrice })
			categoryGroup.Stock = append(categoryGroup.Stock, StockGroup{UnitsInStock: stock.key, Products: products})
		}
		result = append(result, categoryGroup)
	}
	return result
}

// PriceGroups groups products into Cheap, Average price and Expensive bands, bands follow the first product falling into them
func (d *DataSource) PriceGroups(cheap, expensive float64) []PriceGroup {
	band := func(p Product) string {
		switch {
		case p.UnitPrice < cheap:
			return "Cheap"
		case p.UnitPrice < expensive:
			return "Average price"
		}
		return "Expensive"
	}
	var result []PriceGroup
	for _, g := range groupBy(d.Products, band) {
		result = append(result, PriceGroup{Band: g.key, Products: g.items})
	}
	return result
}

// CityStats returns average turnover and average order count of customers per city
func (d *DataSource) CityStats() []CityStat {
	var result []CityStat
	for _, city := range groupBy(d.Customers, func(c Customer) string { return c.City }) {
		sum, orders := 0.0, 0
		for _, c := range city.items {
			sum += turnover(c)
			orders += len(c.Orders)
		}
		count := float64(len(city.items))
		result = append(result, CityStat{City: city.key, Profitability: sum / count, Intensity: float64(orders) / count})
	}
	return result
}

// MonthActivity returns customer order counts per month
func (d *DataSource) MonthActivity() []CustomerMonthStat {
	var result []CustomerMonthStat
	for _, c := range d.Customers {
		stat := CustomerMonthStat{CustomerId: c.CustomerID}
		for _, g := range groupBy(c.Orders, func(o Order) int { return int(o.OrderDate.Month()) }) {
			stat.MonthStat = append(stat.MonthStat, MonthStat{Month: g.key, MonthActivity: len(g.items)})
		}
		result = append(result, stat)
	}
	return result
}

// YearActivity returns customer order counts per year
func (d *DataSource) YearActivity() []CustomerYearStat {
	var result []CustomerYearStat
	for _, c := range d.Customers {
		stat := CustomerYearStat{CustomerId: c.CustomerID}
		for _, g := range groupBy(c.Orders, func(o Order) int { return o.OrderDate.Year() }) {
			stat.YearStat = append(stat.YearStat, YearStat{Year: g.key, YearActivity: len(g.items)})
		}
		result = append(result, stat)
	}
	return result
}

// YearMonthActivity returns customer order counts per year and month
func (d *DataSource) YearMonthActivity() []CustomerYearMonthStat {
	type period struct{ year, month int }
	var result []CustomerYearMonthStat
	for _, c := range d.Customers {
		stat := CustomerYearMonthStat{CustomerId: c.CustomerID}
		for _, g := range groupBy(c.Orders, func(o Order) period {
			return period{year: o.OrderDate.Year(), month: int(o.OrderDate.Month())}
		}) {
			stat.YearMonthStat = append(stat.YearMonthStat, YearMonthStat{Year: g.key.year, Month: g.key.month, YearMonthActivity: len(g.items)})
		}
		result = append(result, stat)
	}
	return result
}

func dumpEach[T any](w io.Writer, items []T, depth int) error {
	for _, item := range items {
		if err := dumper.Fdump(w, item, depth); err != nil {
			return err
		}
	}
	return nil
}

// dumpWithDetails dumps each item followed by its detail rows
func dumpWithDetails[T, D any](w io.Writer, items []T, details func(T) []D, depth int) error {
	for _, item := range items {
		if err := dumper.Fdump(w, item, depth); err != nil {
			return err
		}
		if err := dumpEach(w, details(item), depth); err != nil {
			return err
		}
	}
	return nil
}

// NewLinqRegistry creates a registry with the built-in query samples over data
func NewLinqRegistry(data *DataSource) *Registry {
	registry := NewRegistry("LINQ Module")
	const restriction = "Restriction Operators"

	registry.Register(restriction, "Where - Task 1", "Uses a where filter to find all elements of an array with a value less than 5.",
		func(w io.Writer, depth int) error {
			if _, err := fmt.Fprintln(w, "Numbers < 5:"); err != nil {
				return err
			}
			return dumper.Fdump(w, LowNumbers([]int{5, 4, 1, 3, 9, 8, 6, 7, 2, 0}, 5), depth)
		})
	registry.Register(restriction, "Where - Task 2", "Returns all products available in stock.",
		func(w io.Writer, depth int) error {
			return dumpEach(w, data.InStock(), depth)
		})
	registry.Register(restriction, "Where - Task 3", "Finds all customers from London.",
		func(w io.Writer, depth int) error {
			return dumpEach(w, data.CustomersIn("London"), depth)
		})
	registry.Register(restriction, "DQL Task 1", "A list of all customers whose total turnover (the sum of all orders) exceeds 50.",
		func(w io.Writer, depth int) error {
			return dumpEach(w, data.TurnoverAbove(50), depth)
		})
	registry.Register(restriction, "DQL Task 2a", "Customers located in the same country and city as a supplier, one row per supplier. Without join.",
		func(w io.Writer, depth int) error {
			return dumpEach(w, data.SupplierLocations(), depth)
		})
	registry.Register(restriction, "DQL Task 2b", "Customers located in the same country and city as a supplier, one row per supplier. With join.",
		func(w io.Writer, depth int) error {
			return dumpEach(w, data.SupplierLocationsJoin(), depth)
		})
	registry.Register(restriction, "DQL Task 3", "All customers who have orders that exceed 1000.",
		func(w io.Writer, depth int) error {
			return dumpEach(w, data.LargeOrders(1000), depth)
		})
	registry.Register(restriction, "DQL Task 4", "Customers with the month and year they became customers.",
		func(w io.Writer, depth int) error {
			return dumpEach(w, data.CustomersSince(), depth)
		})
	registry.Register(restriction, "DQL Task 5", "The DQL Task 4 list sorted by year, month, customer turnover (from maximum to minimum) and customer name.",
		func(w io.Writer, depth int) error {
			return dumpEach(w, data.RankedCustomersSince(), depth)
		})
	registry.Register(restriction, "DQL Task 6", "Customers who have a non-numeric postal code, an empty region or no operator code in the phone.",
		func(w io.Writer, depth int) error {
			return dumpEach(w, data.IncompleteContacts(), depth)
		})
	registry.Register(restriction, "DQL Task 7", "Products grouped by category, inside by stock availability, the last group sorted by cost.",
		func(w io.Writer, depth int) error {
			return dumper.Fdump(w, data.CategoryGroups(), depth)
		})
	registry.Register(restriction, "DQL Task 8", "Products grouped into cheap, average price and expensive.",
		func(w io.Writer, depth int) error {
			for _, group := range data.PriceGroups(25, 50) {
				if err := dumper.Fdump(w, group.Band, 0); err != nil {
					return err
				}
				if err := dumpEach(w, group.Products, depth); err != nil {
					return err
				}
			}
			return nil
		})
	registry.Register(restriction, "DQL Task 9", "Average profitability and average intensity of each city.",
		func(w io.Writer, depth int) error {
			return dumpEach(w, data.CityStats(), depth)
		})
	registry.Register(restriction, "DQL Task 10a", "Average customer activity statistics (Month).",
		func(w io.Writer, depth int) error {
			return dumpWithDetails(w, data.MonthActivity(), func(s CustomerMonthStat) []MonthStat { return s.MonthStat }, depth)
		})
	registry.Register(restriction, "DQL Task 10b", "Average customer activity statistics (Year).",
		func(w io.Writer, depth int) error {
			return dumpWithDetails(w, data.YearActivity(), func(s CustomerYearStat) []YearStat { return s.YearStat }, depth)
		})
	registry.Register(restriction, "DQL Task 10c", "Average customer activity statistics (Year and month).",
		func(w io.Writer, depth int) error {
			return dumpWithDetails(w, data.YearMonthActivity(), func(s CustomerYearMonthStat) []YearMonthStat { return s.YearMonthStat }, depth)
		})
	registry.Register("Object Dumper", "Customer orders", "Customers with their orders, expanded up to the requested depth.",
		func(w io.Writer, depth int) error {
			return dumper.Fdump(w, data.Customers, depth)
		})
	return registry
}
