package checkout

// DefaultCountryCode is preselected on the checkout form.
const DefaultCountryCode = "965+"

// CheckoutForm is the contact form on the checkout page.
type CheckoutForm struct {
	FullName    string `json:"fullName" validate:"present"`
	CountryCode string `json:"countryCode"`
	Phone       string `json:"phone" validate:"present"`
	Email       string `json:"email" validate:"present,looseemail"`
	Terms       bool   `json:"terms" validate:"accepted"`
}

// PaymentForm is the card form on the payment page. Contact fields arrive
// prefilled from the checkout step but are validated again.
type PaymentForm struct {
	FullName    string `json:"fullName" validate:"present"`
	Phone       string `json:"phone" validate:"present"`
	Email       string `json:"email" validate:"present,looseemail"`
	CardNumber  string `json:"cardNumber" validate:"present,card16"`
	ExpiryMonth string `json:"expiryMonth" validate:"present,month"`
	ExpiryYear  string `json:"expiryYear" validate:"present,year2,notexpired"`
	CVV         string `json:"cvv" validate:"present,cvv3"`
}

// ErrorMap maps a form field to its first failing message. Empty means valid.
type ErrorMap map[string]string

func (e ErrorMap) Valid() bool { return len(e) == 0 }

// Messages lists the errors in form order.
func (e ErrorMap) Messages() []string {
	out := make([]string, 0, len(e))
	for _, f := range fieldOrder {
		if msg, ok := e[f]; ok {
			out = append(out, msg)
		}
	}
	return out
}

var fieldOrder = []string{
	"fullName", "phone", "email", "terms",
	"cardNumber", "expiryMonth", "expiryYear", "cvv",
}
