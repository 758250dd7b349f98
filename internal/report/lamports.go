package report

import (
	"math/big"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const lamportsPerSOLExp = -9

var numbers = message.NewPrinter(language.English)

// Lamports renders n with thousands separators and its SOL equivalent,
// e.g. "1,000,000 lamports (0.001 SOL)".
func Lamports(n uint64) string {
	sol := decimal.NewFromBigInt(new(big.Int).SetUint64(n), lamportsPerSOLExp)
	return numbers.Sprintf("%d lamports (%s SOL)", n, sol.String())
}
