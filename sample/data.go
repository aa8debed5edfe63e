package sample

import "time"

type (
	// Product represents a catalog product
	Product struct {
		ProductID    int
		ProductName  string
		Category     string
		UnitPrice    float64
		UnitsInStock int
	}

	// Order represents a customer order
	Order struct {
		OrderID   int
		OrderDate time.Time
		Total     float64
	}

	// Customer represents a customer with orders
	Customer struct {
		CustomerID  string
		CompanyName string
		City        string
		Region      string
		PostalCode  string
		Country     string
		Phone       string
		Orders      []Order
	}

	// Supplier represents a product supplier
	Supplier struct {
		SupplierName string
		City         string
		Country      string
	}

	// DataSource holds sample data queried by samples
	DataSource struct {
		Products  []Product
		Customers []Customer
		Suppliers []Supplier
	}
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// NewDataSource returns the built-in data set
func NewDataSource() *DataSource {
	return &DataSource{
		Products: []Product{
			{ProductID: 1, ProductName: "Chai", Category: "Beverages", UnitPrice: 18, UnitsInStock: 39},
			{ProductID: 2, ProductName: "Chang", Category: "Beverages", UnitPrice: 19, UnitsInStock: 0},
			{ProductID: 3, ProductName: "Aniseed Syrup", Category: "Condiments", UnitPrice: 10, UnitsInStock: 13},
			{ProductID: 4, ProductName: "Cajun Seasoning", Category: "Condiments", UnitPrice: 22, UnitsInStock: 53},
			{ProductID: 5, ProductName: "Gumbo Mix", Category: "Condiments", UnitPrice: 21.35, UnitsInStock: 0},
			{ProductID: 6, ProductName: "Mishi Kobe Niku", Category: "Meat/Poultry", UnitPrice: 97, UnitsInStock: 29},
			{ProductID: 7, ProductName: "Ikura", Category: "Seafood", UnitPrice: 31, UnitsInStock: 31},
			{ProductID: 8, ProductName: "Guaraná Fantástica", Category: "Beverages", UnitPrice: 4.5, UnitsInStock: 39},
		},
		Customers: []Customer{
			{CustomerID: "ALFKI", CompanyName: "Alfreds Futterkiste", City: "Berlin", PostalCode: "12209", Country: "Germany", Phone: "030-0074321", Orders: []Order{
				{OrderID: 10643, OrderDate: date(1997, time.August, 25), Total: 814.5},
				{OrderID: 10692, OrderDate: date(1997, time.October, 3), Total: 878},
			}},
			{CustomerID: "AROUT", CompanyName: "Around the Horn", City: "London", PostalCode: "WA1 1DP", Country: "UK", Phone: "(171) 555-7788", Orders: []Order{
				{OrderID: 10355, OrderDate: date(1996, time.November, 15), Total: 480},
				{OrderID: 10383, OrderDate: date(1996, time.December, 16), Total: 899},
				{OrderID: 10453, OrderDate: date(1997, time.February, 21), Total: 1407.5},
			}},
			{CustomerID: "BSBEV", CompanyName: "B's Beverages", City: "London", PostalCode: "EC2 5NT", Country: "UK", Phone: "(171) 555-1212", Orders: []Order{
				{OrderID: 10289, OrderDate: date(1996, time.August, 26), Total: 479.4},
			}},
			{CustomerID: "FISSA", CompanyName: "FISSA Fabrica Inter. Salchichas S.A.", City: "Madrid", Region: "Madrid", PostalCode: "28034", Country: "Spain", Phone: "(91) 555 94 44"},
		},
		Suppliers: []Supplier{
			{SupplierName: "Exotic Liquids", City: "London", Country: "UK"},
			{SupplierName: "Specialty Biscuits, Ltd.", City: "London", Country: "UK"},
			{SupplierName: "Heli Süßwaren GmbH & Co. KG", City: "Berlin", Country: "Germany"},
			{SupplierName: "Tokyo Traders", City: "Tokyo", Country: "Japan"},
		},
	}
}
