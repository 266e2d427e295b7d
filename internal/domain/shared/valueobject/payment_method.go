package valueobject

// PaymentMethod represents how money changed hands
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "CASH"
	PaymentMethodCard   PaymentMethod = "CARD"
	PaymentMethodBank   PaymentMethod = "BANK_TRANSFER"
	PaymentMethodWallet PaymentMethod = "MOBILE_WALLET"
	PaymentMethodCredit PaymentMethod = "ON_ACCOUNT" // Sale on credit, settled later via payment
)

// IsValid checks if the payment method is valid
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodBank, PaymentMethodWallet, PaymentMethodCredit:
		return true
	}
	return false
}

// String returns the string representation of PaymentMethod
func (m PaymentMethod) String() string {
	return string(m)
}
