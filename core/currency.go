package core

type Currency string

const (
	CurrencyBitcoin  Currency = "bitcoin"
	CurrencyEthereum Currency = "ethereum"
)

func Currencies() []Currency {
	return []Currency{CurrencyBitcoin, CurrencyEthereum}
}

func (c Currency) IsValid() bool {
	switch c {
	case CurrencyBitcoin, CurrencyEthereum:
		return true
	default:
		return false
	}
}

func (c Currency) Label() string {
	switch c {
	case CurrencyBitcoin:
		return "Bitcoin"
	case CurrencyEthereum:
		return "Ethereum"
	default:
		return "currency not found"
	}
}
