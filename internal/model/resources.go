package model

// PaymentRecords is the payment record resource. Wire names are the ones the
// admin front end was built against.
var PaymentRecords = &Schema{
	Name:     "PaymentRecord",
	Path:     "payment-records",
	Table:    "payment_records",
	IDColumn: "id",
	Fields: []Field{
		{Name: "numberCheck", Column: "number_check", Kind: KindInteger, Rules: "lte=100"},
		{Name: "isPaymentActiviy", Column: "is_payment_activity", Kind: KindBoolean},
		{Name: "datePay", Column: "date_pay", Kind: KindDate, Rules: "maxdate=2100-01-01"},
		{Name: "amoutPay", Column: "amount_pay", Kind: KindNumber, Rules: "lte=100"},
		{Name: "idPaymentMethod", Column: "id_payment_method", Kind: KindInteger, Rules: "lte=100"},
		{Name: "idFamily", Column: "id_family", Kind: KindInteger, Rules: "lte=100"},
		{Name: "idFamilyMember", Column: "id_family_member", Kind: KindInteger, Rules: "lte=100"},
	},
	DefaultSort: Sort{Column: "id", Direction: Asc},
}

// Partners is the partner resource.
var Partners = &Schema{
	Name:     "Partner",
	Path:     "partners",
	Table:    "partners",
	IDColumn: "id",
	Fields: []Field{
		{Name: "name", Column: "name", Kind: KindString, Rules: "min=1,max=150"},
		{Name: "logo", Column: "logo", Kind: KindString, Rules: "max=255,url"},
		{Name: "url", Column: "url", Kind: KindString, Rules: "max=255,url"},
	},
	DefaultSort: Sort{Column: "id", Direction: Asc},
}

// All lists every resource served by the API.
func All() []*Schema {
	return []*Schema{PaymentRecords, Partners}
}
