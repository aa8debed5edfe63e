package sample

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLowNumbers(t *testing.T) {
	assert.EqualValues(t, []int{4, 1, 3, 2, 0}, LowNumbers([]int{5, 4, 1, 3, 9, 8, 6, 7, 2, 0}, 5))
	assert.Empty(t, LowNumbers([]int{5, 9}, 5))
}

func TestDataSource_Queries(t *testing.T) {
	data := NewDataSource()

	inStock := data.InStock()
	for _, p := range inStock {
		assert.Greater(t, p.UnitsInStock, 0, p.ProductName)
	}
	assert.Len(t, inStock, 6)

	london := data.CustomersIn("London")
	assert.Len(t, london, 2)
	assert.EqualValues(t, "AROUT", london[0].CustomerID)

	assert.EqualValues(t, []Turnover{{Id: "ALFKI", Sum: 1692.5}, {Id: "AROUT", Sum: 2786.5}}, data.TurnoverAbove(1000))
	assert.Len(t, data.TurnoverAbove(50), 3)
	assert.EqualValues(t, []MaxOrder{{Id: "AROUT", Total: 1407.5}}, data.LargeOrders(1000))
}

func TestDataSource_SupplierLocations(t *testing.T) {
	data := NewDataSource()
	expect := []Location{
		{CustomerID: "ALFKI", City: "Berlin", Country: "Germany"},
		{CustomerID: "AROUT", City: "London", Country: "UK"},
		{CustomerID: "AROUT", City: "London", Country: "UK"},
		{CustomerID: "BSBEV", City: "London", Country: "UK"},
		{CustomerID: "BSBEV", City: "London", Country: "UK"},
	}
	assert.EqualValues(t, expect, data.SupplierLocations())
	assert.EqualValues(t, expect, data.SupplierLocationsJoin())
}

func TestDataSource_CustomersSince(t *testing.T) {
	data := NewDataSource()
	assert.EqualValues(t, []Since{
		{Id: "ALFKI", Month: 8, Year: 1997},
		{Id: "AROUT", Month: 11, Year: 1996},
		{Id: "BSBEV", Month: 8, Year: 1996},
	}, data.CustomersSince())
	assert.EqualValues(t, []RankedSince{
		{Id: "BSBEV", Month: 8, Year: 1996, Sum: 479.4},
		{Id: "AROUT", Month: 11, Year: 1996, Sum: 2786.5},
		{Id: "ALFKI", Month: 8, Year: 1997, Sum: 1692.5},
	}, data.RankedCustomersSince())
}

func TestDataSource_IncompleteContacts(t *testing.T) {
	data := NewDataSource()
	var testCases = []struct {
		description string
		customer    Customer
		expect      bool
	}{
		{description: "complete", customer: Customer{PostalCode: "28034", Region: "Madrid", Phone: "(91) 555"}, expect: false},
		{description: "non numeric postal code", customer: Customer{PostalCode: "WA1 1DP", Region: "Essex", Phone: "(171) 555"}, expect: true},
		{description: "missing postal code", customer: Customer{Region: "Essex", Phone: "(171) 555"}, expect: true},
		{description: "blank region", customer: Customer{PostalCode: "12209", Region: " ", Phone: "(030) 555"}, expect: true},
		{description: "phone without area code", customer: Customer{PostalCode: "12209", Region: "Berlin", Phone: "030-0074321"}, expect: true},
	}
	for _, testCase := range testCases {
		data.Customers = []Customer{testCase.customer}
		assert.EqualValues(t, testCase.expect, len(data.IncompleteContacts()) == 1, testCase.description)
	}

	contacts := NewDataSource().IncompleteContacts()
	assert.Len(t, contacts, 3)
	assert.EqualValues(t, Contact{CustomerID: "ALFKI", PostalCode: "12209", Phone: "030-0074321"}, contacts[0])
}

func TestDataSource_CategoryGroups(t *testing.T) {
	groups := NewDataSource().CategoryGroups()
	var categories []string
	for _, group := range groups {
		categories = append(categories, group.Category)
	}
	assert.EqualValues(t, []string{"Beverages", "Condiments", "Meat/Poultry", "Seafood"}, categories)

	beverages := groups[0].Stock
	assert.Len(t, beverages, 2)
	assert.EqualValues(t, 39, beverages[0].UnitsInStock)
	assert.EqualValues(t, "Guaraná Fantástica", beverages[0].Products[0].ProductName)
	assert.EqualValues(t, "Chai", beverages[0].Products[1].ProductName)
	assert.EqualValues(t, 0, beverages[1].UnitsInStock)
	assert.EqualValues(t, "Chang", beverages[1].Products[0].ProductName)
}

func TestDataSource_PriceGroups(t *testing.T) {
	groups := NewDataSource().PriceGroups(25, 50)
	var bands []string
	for _, group := range groups {
		bands = append(bands, group.Band)
	}
	assert.EqualValues(t, []string{"Cheap", "Expensive", "Average price"}, bands)
	assert.Len(t, groups[0].Products, 6)
	assert.EqualValues(t, "Chai", groups[0].Products[0].ProductName)
	assert.EqualValues(t, "Guaraná Fantástica", groups[0].Products[5].ProductName)
	assert.EqualValues(t, "Mishi Kobe Niku", groups[1].Products[0].ProductName)
	assert.EqualValues(t, "Ikura", groups[2].Products[0].ProductName)
}

func TestDataSource_CityStats(t *testing.T) {
	stats := NewDataSource().CityStats()
	assert.Len(t, stats, 3)
	assert.EqualValues(t, CityStat{City: "Berlin", Profitability: 1692.5, Intensity: 2}, stats[0])
	assert.EqualValues(t, "London", stats[1].City)
	assert.InDelta(t, 1632.95, stats[1].Profitability, 0.001)
	assert.EqualValues(t, 2, stats[1].Intensity)
	assert.EqualValues(t, CityStat{City: "Madrid"}, stats[2])
}

func TestDataSource_Activity(t *testing.T) {
	data := NewDataSource()

	months := data.MonthActivity()
	assert.Len(t, months, 4)
	assert.EqualValues(t, CustomerMonthStat{CustomerId: "AROUT", MonthStat: []MonthStat{{11, 1}, {12, 1}, {2, 1}}}, months[1])
	assert.Nil(t, months[3].MonthStat)

	years := data.YearActivity()
	assert.EqualValues(t, CustomerYearStat{CustomerId: "AROUT", YearStat: []YearStat{{1996, 2}, {1997, 1}}}, years[1])

	periods := data.YearMonthActivity()
	assert.EqualValues(t, CustomerYearMonthStat{CustomerId: "ALFKI", YearMonthStat: []YearMonthStat{{1997, 8, 1}, {1997, 10, 1}}}, periods[0])
}

func TestRegistry_Run(t *testing.T) {
	registry := NewLinqRegistry(NewDataSource())
	var testCases = []struct {
		description string
		id          int
		depth       int
		expect      string
	}{
		{
			description: "filtered numbers",
			id:          1,
			expect:      "Numbers < 5:\n4\n1\n3\n2\n0\n",
		},
		{
			description: "turnover",
			id:          4,
			expect:      "Id=ALFKI        Sum=1692.5\nId=AROUT        Sum=2786.5\nId=BSBEV        Sum=479.4\n",
		},
		{
			description: "first order period",
			id:          8,
			expect:      "Id=ALFKI        Month=8         Year=1997\nId=AROUT        Month=11        Year=1996\nId=BSBEV        Month=8         Year=1996\n",
		},
		{
			description: "incomplete contacts",
			id:          10,
			expect: "CustomerID=ALFKI        PostalCode=12209        Region=         Phone=030-0074321\n" +
				"CustomerID=AROUT        PostalCode=WA1 1DP      Region=         Phone=(171) 555-7788\n" +
				"CustomerID=BSBEV        PostalCode=EC2 5NT      Region=         Phone=(171) 555-1212\n",
		},
		{
			description: "category groups at depth 0",
			id:          11,
			expect:      "Category=Beverages      Stock=...\nCategory=Condiments     Stock=...\nCategory=Meat/Poultry   Stock=...\nCategory=Seafood        Stock=...\n",
		},
		{
			description: "month activity",
			id:          14,
			expect: "CustomerId=ALFKI        MonthStat=...\nMonth=8         MonthActivity=1\nMonth=10        MonthActivity=1\n" +
				"CustomerId=AROUT        MonthStat=...\nMonth=11        MonthActivity=1\nMonth=12        MonthActivity=1\nMonth=2         MonthActivity=1\n" +
				"CustomerId=BSBEV        MonthStat=...\nMonth=8         MonthActivity=1\n" +
				"CustomerId=FISSA        MonthStat=null\n",
		},
	}
	for _, testCase := range testCases {
		buf := &bytes.Buffer{}
		err := registry.Run(buf, testCase.id, testCase.depth)
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, buf.String(), testCase.description)
	}
}

func TestRegistry_CustomerOrdersDepth(t *testing.T) {
	registry := NewLinqRegistry(NewDataSource())
	shallow := &bytes.Buffer{}
	assert.Nil(t, registry.Run(shallow, 17, 0))
	assert.NotContains(t, shallow.String(), "Orders: ")

	deep := &bytes.Buffer{}
	assert.Nil(t, registry.Run(deep, 17, 1))
	output := strings.Split(deep.String(), "\n")
	assert.EqualValues(t, "CustomerID=ALFKI        CompanyName=Alfreds Futterkiste         City=Berlin     Region=         PostalCode=12209        Country=Germany         Phone=030-0074321       Orders=...", output[0])
	assert.EqualValues(t, "  Orders: OrderID=10643         OrderDate=1997-08-25    Total=814.5", output[1])
	assert.Contains(t, deep.String(), "Orders=null")
}

func TestRegistry_CategoryGroupsDepth(t *testing.T) {
	registry := NewLinqRegistry(NewDataSource())
	buf := &bytes.Buffer{}
	assert.Nil(t, registry.Run(buf, 11, 2))
	assert.Contains(t, buf.String(), "  Stock: UnitsInStock=39        Products=...\n")
	assert.Contains(t, buf.String(), "ProductName=Guaraná Fantástica")
}

func TestRegistry_RunAllSamples(t *testing.T) {
	registry := NewLinqRegistry(NewDataSource())
	for _, sample := range registry.Samples() {
		for depth := 0; depth < 3; depth++ {
			assert.Nil(t, registry.Run(io.Discard, sample.ID, depth), sample.Title)
		}
	}
}

func TestRegistry_Lookup(t *testing.T) {
	registry := NewLinqRegistry(NewDataSource())
	samples := registry.Samples()
	assert.Len(t, samples, 17)
	assert.EqualValues(t, "DQL Task 10c", samples[15].Title)
	for i, sample := range samples {
		assert.EqualValues(t, i+1, sample.ID)
		assert.NotEmpty(t, sample.Category)
		assert.NotEmpty(t, sample.Description)
	}
	_, err := registry.Lookup(99)
	assert.NotNil(t, err)
	assert.NotNil(t, registry.Run(io.Discard, 99, 0))
}

func TestRegistry_RunAll(t *testing.T) {
	registry := NewLinqRegistry(NewDataSource())
	buf := &bytes.Buffer{}
	assert.Nil(t, registry.RunAll(buf, 1))
	assert.True(t, strings.HasPrefix(buf.String(), "1. Where - Task 1\n=================\nNumbers < 5:\n"))
}

func TestRegistry_Register(t *testing.T) {
	registry := NewRegistry("test")
	failure := errors.New("failed")
	sample := registry.Register("", "", "", func(w io.Writer, depth int) error { return failure })
	assert.EqualValues(t, "Miscellaneous", sample.Category)
	assert.EqualValues(t, "Sample 1", sample.Title)
	assert.EqualValues(t, "See code.", sample.Description)
	err := registry.Run(io.Discard, 1, 0)
	assert.True(t, errors.Is(err, failure))
}
