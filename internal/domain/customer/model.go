package customer

// Customer represents one customer row as returned by usp_customer_get_all
type Customer struct {
	CustomerID           string `db:"customerId" json:"customerId"`
	CustomerName         string `db:"customerName" json:"customerName"`
	CustomerAddress1     string `db:"customerAddress1" json:"customerAddress1"`
	CustomerAddress2     string `db:"customerAddress2" json:"customerAddress2"`
	CustomerCity         string `db:"customerCity" json:"customerCity"`
	CustomerState        string `db:"customerState" json:"customerState"`
	CustomerPostalCode   string `db:"customerPostalCode" json:"customerPostalCode"`
	CustomerTelephone    string `db:"customerTelephone" json:"customerTelephone"`
	CustomerContactName  string `db:"customerContactName" json:"customerContactName"`
	CustomerEmailAddress string `db:"customerEmailAddress" json:"customerEmailAddress"`
}
